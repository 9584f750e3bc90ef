package job

import (
	"github.com/crewdesk-app/crewdesk-backend-go/internal/pkg/validator"
)

type CreatePostRequest struct {
	BusinessID  string   `json:"business_id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Position    string   `json:"position"`
	HourlyRate  *float64 `json:"hourly_rate"`
}

func (r *CreatePostRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.BusinessID) {
		errs = append(errs, validator.ValidationError{
			Field:   "business_id",
			Message: "business_id is required",
		})
	}
	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{
			Field:   "title",
			Message: "title is required",
		})
	}
	if len(r.Title) > 255 {
		errs = append(errs, validator.ValidationError{
			Field:   "title",
			Message: "title must not exceed 255 characters",
		})
	}
	if validator.IsEmpty(r.Position) {
		errs = append(errs, validator.ValidationError{
			Field:   "position",
			Message: "position is required",
		})
	}
	if r.HourlyRate != nil && *r.HourlyRate < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "hourly_rate",
			Message: "hourly_rate must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ApplyRequest struct {
	Message *string `json:"message"`
}

type CreateConnectionRequest struct {
	RecipientID string `json:"recipient_id"`
}

func (r *CreateConnectionRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.RecipientID) {
		errs = append(errs, validator.ValidationError{
			Field:   "recipient_id",
			Message: "recipient_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PostResponse struct {
	ID          string   `json:"id"`
	BusinessID  string   `json:"business_id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Position    string   `json:"position"`
	HourlyRate  *float64 `json:"hourly_rate,omitempty"`
	Status      string   `json:"status"`
	CreatedAt   string   `json:"created_at"`
}

type ApplicationResponse struct {
	ID          string  `json:"id"`
	PostID      string  `json:"post_id"`
	ApplicantID string  `json:"applicant_id"`
	Message     *string `json:"message,omitempty"`
	Status      string  `json:"status"`
}

type ConnectionResponse struct {
	ID          string `json:"id"`
	RequesterID string `json:"requester_id"`
	RecipientID string `json:"recipient_id"`
	Status      string `json:"status"`
}
