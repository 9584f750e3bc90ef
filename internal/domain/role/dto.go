package role

import (
	"github.com/crewdesk-app/crewdesk-backend-go/internal/domain/permission"
	"github.com/crewdesk-app/crewdesk-backend-go/internal/pkg/validator"
)

type CreateRoleRequest struct {
	BusinessID   string          `json:"business_id"`
	Name         string          `json:"name"`
	Permissions  permission.Blob `json:"permissions"`
	IsPredefined bool            `json:"is_predefined"`
}

func (r *CreateRoleRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.BusinessID) {
		errs = append(errs, validator.ValidationError{
			Field:   "business_id",
			Message: "business_id is required",
		})
	} else if !validator.IsValidUUID(r.BusinessID) {
		errs = append(errs, validator.ValidationError{
			Field:   "business_id",
			Message: "business_id must be a valid UUID",
		})
	}
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if len(r.Name) > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not exceed 100 characters",
		})
	}
	if r.Permissions.IsLegacyFlat() {
		errs = append(errs, validator.ValidationError{
			Field:   "permissions",
			Message: "permissions must map section codes to permission codes",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type InstantiatePredefinedRequest struct {
	BusinessID string `json:"business_id"`
	Role       string `json:"role"`
}

func (r *InstantiatePredefinedRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.BusinessID) {
		errs = append(errs, validator.ValidationError{
			Field:   "business_id",
			Message: "business_id is required",
		})
	} else if !validator.IsValidUUID(r.BusinessID) {
		errs = append(errs, validator.ValidationError{
			Field:   "business_id",
			Message: "business_id must be a valid UUID",
		})
	}
	if validator.IsEmpty(r.Role) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateRoleRequest struct {
	Name        *string          `json:"name"`
	Permissions *permission.Blob `json:"permissions"`
}

func (r *UpdateRoleRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not be empty",
		})
	}
	if r.Name != nil && len(*r.Name) > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not exceed 100 characters",
		})
	}
	if r.Permissions != nil && r.Permissions.IsLegacyFlat() {
		errs = append(errs, validator.ValidationError{
			Field:   "permissions",
			Message: "permissions must map section codes to permission codes",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ReplacePermissionsRequest struct {
	Permissions permission.Blob `json:"permissions"`
}

func (r *ReplacePermissionsRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Permissions.IsLegacyFlat() {
		errs = append(errs, validator.ValidationError{
			Field:   "permissions",
			Message: "permissions must map section codes to permission codes",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AssignRoleRequest struct {
	UserID     string `json:"user_id"`
	BusinessID string `json:"business_id"`
	// Role is either a predefined identifier or the id of a custom role
	// belonging to the business.
	Role string `json:"role"`
}

func (r *AssignRoleRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.UserID) {
		errs = append(errs, validator.ValidationError{
			Field:   "user_id",
			Message: "user_id is required",
		})
	}
	if validator.IsEmpty(r.BusinessID) {
		errs = append(errs, validator.ValidationError{
			Field:   "business_id",
			Message: "business_id is required",
		})
	}
	if validator.IsEmpty(r.Role) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RoleResponse struct {
	ID           string          `json:"id"`
	BusinessID   string          `json:"business_id"`
	Name         string          `json:"name"`
	Permissions  permission.Blob `json:"permissions"`
	IsPredefined bool            `json:"is_predefined"`
	CreatedAt    string          `json:"created_at"`
	UpdatedAt    string          `json:"updated_at"`
}

type CatalogResponse struct {
	PredefinedRoles []string          `json:"predefined_roles"`
	Sections        []SectionResponse `json:"sections"`
}

type SectionResponse struct {
	Code        string               `json:"code"`
	Title       string               `json:"title"`
	Permissions []PermissionResponse `json:"permissions"`
}

type PermissionResponse struct {
	Code  string `json:"code"`
	Label string `json:"label"`
}
