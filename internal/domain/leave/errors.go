package leave

import "errors"

var (
	ErrLeaveRequestNotFound         = errors.New("leave request not found")
	ErrLeaveRequestAlreadyProcessed = errors.New("leave request already processed")
	ErrInsufficientBalance          = errors.New("insufficient leave balance")
	ErrBalanceNotFound              = errors.New("leave balance not found")
	ErrInvalidDateRange             = errors.New("end_date must not be before start_date")
	ErrInvalidLeaveType             = errors.New("invalid leave type")
)
