package shift

import "time"

type ShiftStatus string

const (
	StatusDraft     ShiftStatus = "draft"
	StatusPublished ShiftStatus = "published"
	StatusOpen      ShiftStatus = "open"
	StatusClosed    ShiftStatus = "closed"
)

type Shift struct {
	ID         string
	BusinessID string
	// AssigneeID is the user assigned to work the shift; nil for an
	// unassigned slot.
	AssigneeID *string
	Position   string
	StartsAt   time.Time
	EndsAt     time.Time
	Status     ShiftStatus
	Note       *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type SwapStatus string

const (
	SwapPending  SwapStatus = "pending"
	SwapApproved SwapStatus = "approved"
	SwapDeclined SwapStatus = "declined"
)

// SwapRequest asks to hand a shift over from its current assignee to a
// counterpart. Approval reassigns the shift.
type SwapRequest struct {
	ID            string
	BusinessID    string
	ShiftID       string
	RequesterID   string
	CounterpartID string
	Reason        *string
	Status        SwapStatus
	DecidedBy     *string
	DecidedAt     *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
