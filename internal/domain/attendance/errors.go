package attendance

import "errors"

var (
	ErrAttendanceNotFound       = errors.New("attendance record not found")
	ErrAlreadyClockedIn         = errors.New("already clocked in")
	ErrNotClockedIn             = errors.New("no open attendance record to clock out of")
	ErrOvertimeNotFound         = errors.New("overtime request not found")
	ErrOvertimeAlreadyProcessed = errors.New("overtime request already processed")
	ErrInvalidOvertimeMinutes   = errors.New("overtime minutes must be positive")
)
