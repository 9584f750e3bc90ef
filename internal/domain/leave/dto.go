package leave

import (
	"time"

	"github.com/crewdesk-app/crewdesk-backend-go/internal/pkg/validator"
)

type CreateLeaveRequest struct {
	BusinessID string  `json:"business_id"`
	Type       string  `json:"type"`
	StartDate  string  `json:"start_date"`
	EndDate    string  `json:"end_date"`
	Reason     *string `json:"reason"`

	startDate time.Time
	endDate   time.Time
}

func (r *CreateLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.BusinessID) {
		errs = append(errs, validator.ValidationError{
			Field:   "business_id",
			Message: "business_id is required",
		})
	}
	if !validator.IsInSlice(r.Type, []string{string(TypeAnnual), string(TypeSick), string(TypeUnpaid)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be one of: annual, sick, unpaid",
		})
	}

	var ok bool
	if r.startDate, ok = validator.IsValidDate(r.StartDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}
	if r.endDate, ok = validator.IsValidDate(r.EndDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be in YYYY-MM-DD format",
		})
	}
	if !r.startDate.IsZero() && !r.endDate.IsZero() && r.endDate.Before(r.startDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// DateRange returns the parsed range. Valid only after Validate.
func (r *CreateLeaveRequest) DateRange() (time.Time, time.Time) {
	return r.startDate, r.endDate
}

// Days counts calendar days in the range, inclusive.
func (r *CreateLeaveRequest) DayCount() int {
	return int(r.endDate.Sub(r.startDate).Hours()/24) + 1
}

type SetAllocationRequest struct {
	BusinessID    string `json:"business_id"`
	UserID        string `json:"user_id"`
	Year          int    `json:"year"`
	AllocatedDays int    `json:"allocated_days"`
}

func (r *SetAllocationRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.BusinessID) {
		errs = append(errs, validator.ValidationError{
			Field:   "business_id",
			Message: "business_id is required",
		})
	}
	if validator.IsEmpty(r.UserID) {
		errs = append(errs, validator.ValidationError{
			Field:   "user_id",
			Message: "user_id is required",
		})
	}
	if r.Year < 2000 || r.Year > 2200 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year is out of range",
		})
	}
	if r.AllocatedDays < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "allocated_days",
			Message: "allocated_days must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type LeaveRequestResponse struct {
	ID         string  `json:"id"`
	BusinessID string  `json:"business_id"`
	UserID     string  `json:"user_id"`
	Type       string  `json:"type"`
	StartDate  string  `json:"start_date"`
	EndDate    string  `json:"end_date"`
	Days       int     `json:"days"`
	Reason     *string `json:"reason,omitempty"`
	Status     string  `json:"status"`
	DecidedBy  *string `json:"decided_by,omitempty"`
}

type BalanceResponse struct {
	BusinessID    string `json:"business_id"`
	UserID        string `json:"user_id"`
	Year          int    `json:"year"`
	AllocatedDays int    `json:"allocated_days"`
	UsedDays      int    `json:"used_days"`
	RemainingDays int    `json:"remaining_days"`
}
