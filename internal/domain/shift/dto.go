package shift

import (
	"time"

	"github.com/crewdesk-app/crewdesk-backend-go/internal/pkg/validator"
)

type CreateShiftRequest struct {
	BusinessID string  `json:"business_id"`
	AssigneeID *string `json:"assignee_id"`
	Position   string  `json:"position"`
	StartsAt   string  `json:"starts_at"`
	EndsAt     string  `json:"ends_at"`
	Note       *string `json:"note"`

	startsAt time.Time
	endsAt   time.Time
}

func (r *CreateShiftRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.BusinessID) {
		errs = append(errs, validator.ValidationError{
			Field:   "business_id",
			Message: "business_id is required",
		})
	}
	if validator.IsEmpty(r.Position) {
		errs = append(errs, validator.ValidationError{
			Field:   "position",
			Message: "position is required",
		})
	}

	var ok bool
	if r.startsAt, ok = validator.IsValidDateTime(r.StartsAt); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "starts_at",
			Message: "starts_at must be an ISO8601 timestamp",
		})
	}
	if r.endsAt, ok = validator.IsValidDateTime(r.EndsAt); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "ends_at",
			Message: "ends_at must be an ISO8601 timestamp",
		})
	}
	if !r.startsAt.IsZero() && !r.endsAt.IsZero() && !r.endsAt.After(r.startsAt) {
		errs = append(errs, validator.ValidationError{
			Field:   "ends_at",
			Message: "ends_at must be after starts_at",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Window returns the parsed shift window. Valid only after Validate.
func (r *CreateShiftRequest) Window() (time.Time, time.Time) {
	return r.startsAt, r.endsAt
}

type UpdateShiftRequest struct {
	AssigneeID *string `json:"assignee_id"`
	Position   *string `json:"position"`
	StartsAt   *string `json:"starts_at"`
	EndsAt     *string `json:"ends_at"`
	Note       *string `json:"note"`
}

func (r *UpdateShiftRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Position != nil && validator.IsEmpty(*r.Position) {
		errs = append(errs, validator.ValidationError{
			Field:   "position",
			Message: "position must not be empty",
		})
	}
	if r.StartsAt != nil {
		if _, ok := validator.IsValidDateTime(*r.StartsAt); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "starts_at",
				Message: "starts_at must be an ISO8601 timestamp",
			})
		}
	}
	if r.EndsAt != nil {
		if _, ok := validator.IsValidDateTime(*r.EndsAt); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "ends_at",
				Message: "ends_at must be an ISO8601 timestamp",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CreateSwapRequest struct {
	BusinessID    string  `json:"business_id"`
	ShiftID       string  `json:"shift_id"`
	CounterpartID string  `json:"counterpart_id"`
	Reason        *string `json:"reason"`
}

func (r *CreateSwapRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.BusinessID) {
		errs = append(errs, validator.ValidationError{
			Field:   "business_id",
			Message: "business_id is required",
		})
	}
	if validator.IsEmpty(r.ShiftID) {
		errs = append(errs, validator.ValidationError{
			Field:   "shift_id",
			Message: "shift_id is required",
		})
	}
	if validator.IsEmpty(r.CounterpartID) {
		errs = append(errs, validator.ValidationError{
			Field:   "counterpart_id",
			Message: "counterpart_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ShiftResponse struct {
	ID         string  `json:"id"`
	BusinessID string  `json:"business_id"`
	AssigneeID *string `json:"assignee_id,omitempty"`
	Position   string  `json:"position"`
	StartsAt   string  `json:"starts_at"`
	EndsAt     string  `json:"ends_at"`
	Status     string  `json:"status"`
	Note       *string `json:"note,omitempty"`
}

type SwapResponse struct {
	ID            string  `json:"id"`
	BusinessID    string  `json:"business_id"`
	ShiftID       string  `json:"shift_id"`
	RequesterID   string  `json:"requester_id"`
	CounterpartID string  `json:"counterpart_id"`
	Reason        *string `json:"reason,omitempty"`
	Status        string  `json:"status"`
	DecidedBy     *string `json:"decided_by,omitempty"`
}
