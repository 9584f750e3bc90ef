package attendance

import "time"

type Attendance struct {
	ID            string
	BusinessID    string
	UserID        string
	ShiftID       *string
	ClockInAt     time.Time
	ClockOutAt    *time.Time
	WorkedMinutes *int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// WorkedDuration computes the minutes between clock in and clock out.
func (a Attendance) WorkedDuration() int {
	if a.ClockOutAt == nil {
		return 0
	}
	return int(a.ClockOutAt.Sub(a.ClockInAt).Minutes())
}

type OvertimeStatus string

const (
	OvertimePending  OvertimeStatus = "pending"
	OvertimeApproved OvertimeStatus = "approved"
	OvertimeDeclined OvertimeStatus = "declined"
)

type OvertimeRequest struct {
	ID         string
	BusinessID string
	UserID     string
	Date       time.Time
	Minutes    int
	Reason     *string
	Status     OvertimeStatus
	DecidedBy  *string
	DecidedAt  *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
