package attendance

import (
	"github.com/crewdesk-app/crewdesk-backend-go/internal/pkg/validator"
)

type ClockInRequest struct {
	BusinessID string  `json:"business_id"`
	ShiftID    *string `json:"shift_id"`
}

func (r *ClockInRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.BusinessID) {
		errs = append(errs, validator.ValidationError{
			Field:   "business_id",
			Message: "business_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ClockOutRequest struct {
	BusinessID string `json:"business_id"`
}

func (r *ClockOutRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.BusinessID) {
		errs = append(errs, validator.ValidationError{
			Field:   "business_id",
			Message: "business_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CreateOvertimeRequest struct {
	BusinessID string  `json:"business_id"`
	Date       string  `json:"date"`
	Minutes    int     `json:"minutes"`
	Reason     *string `json:"reason"`
}

func (r *CreateOvertimeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.BusinessID) {
		errs = append(errs, validator.ValidationError{
			Field:   "business_id",
			Message: "business_id is required",
		})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}
	if r.Minutes <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "minutes",
			Message: "minutes must be positive",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AttendanceResponse struct {
	ID            string  `json:"id"`
	BusinessID    string  `json:"business_id"`
	UserID        string  `json:"user_id"`
	ShiftID       *string `json:"shift_id,omitempty"`
	ClockInAt     string  `json:"clock_in_at"`
	ClockOutAt    *string `json:"clock_out_at,omitempty"`
	WorkedMinutes *int    `json:"worked_minutes,omitempty"`
}

type OvertimeResponse struct {
	ID         string  `json:"id"`
	BusinessID string  `json:"business_id"`
	UserID     string  `json:"user_id"`
	Date       string  `json:"date"`
	Minutes    int     `json:"minutes"`
	Reason     *string `json:"reason,omitempty"`
	Status     string  `json:"status"`
	DecidedBy  *string `json:"decided_by,omitempty"`
}
