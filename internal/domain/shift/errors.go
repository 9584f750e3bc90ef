package shift

import "errors"

var (
	ErrShiftNotFound          = errors.New("shift not found")
	ErrShiftNotPublished      = errors.New("shift is not published")
	ErrShiftAlreadyPublished  = errors.New("shift is already published")
	ErrShiftAlreadyOpen       = errors.New("shift is already open")
	ErrShiftAlreadyClosed     = errors.New("shift is already closed")
	ErrShiftNotOpen           = errors.New("shift is not open")
	ErrSwapNotFound           = errors.New("swap request not found")
	ErrSwapAlreadyProcessed   = errors.New("swap request already processed")
	ErrSwapNotShiftAssignee   = errors.New("only the shift assignee may request a swap")
	ErrSwapCounterpartMissing = errors.New("swap counterpart is not a member of this business")
	ErrInvalidShiftWindow     = errors.New("shift must end after it starts")
)
