package business

import (
	"github.com/crewdesk-app/crewdesk-backend-go/internal/pkg/validator"
)

type CreateBusinessRequest struct {
	Name     string  `json:"name"`
	Industry *string `json:"industry"`
	Address  *string `json:"address"`
	Timezone string  `json:"timezone"`
}

func (r *CreateBusinessRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if len(r.Name) > 255 {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not exceed 255 characters",
		})
	}
	if validator.IsEmpty(r.Timezone) {
		r.Timezone = "UTC"
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateBusinessRequest struct {
	Name     *string `json:"name"`
	Industry *string `json:"industry"`
	Address  *string `json:"address"`
	Timezone *string `json:"timezone"`
}

func (r *UpdateBusinessRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not be empty",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type BusinessResponse struct {
	ID        string  `json:"id"`
	OwnerID   string  `json:"owner_id"`
	Name      string  `json:"name"`
	Industry  *string `json:"industry,omitempty"`
	Address   *string `json:"address,omitempty"`
	Timezone  string  `json:"timezone"`
	CreatedAt string  `json:"created_at"`
}

type MemberResponse struct {
	UserID   string `json:"user_id"`
	Email    string `json:"email"`
	RoleType string `json:"role_type"`
	Role     string `json:"role"`
	JoinedAt string `json:"joined_at"`
}

