package leave

import "time"

type LeaveType string

const (
	TypeAnnual LeaveType = "annual"
	TypeSick   LeaveType = "sick"
	TypeUnpaid LeaveType = "unpaid"
)

type LeaveStatus string

const (
	StatusPending  LeaveStatus = "pending"
	StatusApproved LeaveStatus = "approved"
	StatusDeclined LeaveStatus = "declined"
)

type LeaveRequest struct {
	ID         string
	BusinessID string
	UserID     string
	Type       LeaveType
	StartDate  time.Time
	EndDate    time.Time
	Days       int
	Reason     *string
	Status     LeaveStatus
	DecidedBy  *string
	DecidedAt  *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// LeaveBalance tracks allocated and used days per member per year.
// Unpaid leave does not consume the balance.
type LeaveBalance struct {
	ID            string
	BusinessID    string
	UserID        string
	Year          int
	AllocatedDays int
	UsedDays      int
	UpdatedAt     time.Time
}

// Remaining returns the days still available.
func (b LeaveBalance) Remaining() int {
	return b.AllocatedDays - b.UsedDays
}
