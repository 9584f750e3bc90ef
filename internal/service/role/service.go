package role

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/crewdesk-app/crewdesk-backend-go/internal/domain/membership"
	"github.com/crewdesk-app/crewdesk-backend-go/internal/domain/permission"
	"github.com/crewdesk-app/crewdesk-backend-go/internal/domain/role"
)

type roleServiceImpl struct {
	roleRepo       role.CustomRoleRepository
	membershipRepo membership.MembershipRepository
	catalogService permission.CatalogService
	logger         *slog.Logger
}

func NewRoleService(
	roleRepo role.CustomRoleRepository,
	membershipRepo membership.MembershipRepository,
	catalogService permission.CatalogService,
	logger *slog.Logger,
) role.RoleService {
	return &roleServiceImpl{
		roleRepo:       roleRepo,
		membershipRepo: membershipRepo,
		catalogService: catalogService,
		logger:         logger,
	}
}

// ListByBusiness implements role.RoleService.
func (s *roleServiceImpl) ListByBusiness(ctx context.Context, businessID string) ([]role.RoleResponse, error) {
	roles, err := s.roleRepo.ListByBusiness(ctx, businessID)
	if err != nil {
		return nil, err
	}

	responses := make([]role.RoleResponse, 0, len(roles))
	for _, r := range roles {
		responses = append(responses, toRoleResponse(r))
	}
	return responses, nil
}

// GetCatalog implements role.RoleService.
func (s *roleServiceImpl) GetCatalog(ctx context.Context) (role.CatalogResponse, error) {
	sections, err := s.catalogService.GetCatalog(ctx)
	if err != nil {
		return role.CatalogResponse{}, err
	}

	response := role.CatalogResponse{
		PredefinedRoles: make([]string, 0, len(role.AllPredefined())),
		Sections:        make([]role.SectionResponse, 0, len(sections)),
	}
	for _, p := range role.AllPredefined() {
		response.PredefinedRoles = append(response.PredefinedRoles, string(p))
	}
	for _, section := range sections {
		sr := role.SectionResponse{
			Code:        section.Code,
			Title:       section.Title,
			Permissions: make([]role.PermissionResponse, 0, len(section.Permissions)),
		}
		for _, p := range section.Permissions {
			sr.Permissions = append(sr.Permissions, role.PermissionResponse{
				Code:  string(p.Code),
				Label: p.Label,
			})
		}
		response.Sections = append(response.Sections, sr)
	}
	return response, nil
}

// Create implements role.RoleService.
func (s *roleServiceImpl) Create(ctx context.Context, req role.CreateRoleRequest) (role.RoleResponse, error) {
	if err := req.Validate(); err != nil {
		return role.RoleResponse{}, err
	}

	if err := s.catalogService.Validate(ctx, req.Permissions); err != nil {
		return role.RoleResponse{}, err
	}

	exists, err := s.roleRepo.ExistsByBusinessAndName(ctx, req.BusinessID, req.Name)
	if err != nil {
		return role.RoleResponse{}, err
	}
	if exists {
		return role.RoleResponse{}, role.ErrRoleNameExists
	}

	created, err := s.roleRepo.Create(ctx, role.CustomRole{
		BusinessID:   req.BusinessID,
		Name:         req.Name,
		Permissions:  req.Permissions,
		IsPredefined: req.IsPredefined,
	})
	if err != nil {
		return role.RoleResponse{}, err
	}

	s.logger.Info("custom role created",
		slog.String("role_id", created.ID),
		slog.String("business_id", created.BusinessID),
		slog.String("name", created.Name),
	)
	return toRoleResponse(created), nil
}

// InstantiatePredefined implements role.RoleService. It materializes a
// predefined role's static permission list as a custom-role row so a
// business can tweak it. The blob is grouped by catalog section.
func (s *roleServiceImpl) InstantiatePredefined(ctx context.Context, req role.InstantiatePredefinedRequest) (role.RoleResponse, error) {
	if err := req.Validate(); err != nil {
		return role.RoleResponse{}, err
	}

	if !role.IsPredefined(req.Role) {
		return role.RoleResponse{}, role.ErrUnknownPredefined
	}

	exists, err := s.roleRepo.ExistsByBusinessAndName(ctx, req.BusinessID, req.Role)
	if err != nil {
		return role.RoleResponse{}, err
	}
	if exists {
		return role.RoleResponse{}, role.ErrRoleNameExists
	}

	blob, err := s.groupBySection(ctx, role.PermissionsFor(role.Predefined(req.Role)))
	if err != nil {
		return role.RoleResponse{}, err
	}

	created, err := s.roleRepo.Create(ctx, role.CustomRole{
		BusinessID:   req.BusinessID,
		Name:         req.Role,
		Permissions:  blob,
		IsPredefined: true,
	})
	if err != nil {
		return role.RoleResponse{}, err
	}
	return toRoleResponse(created), nil
}

// groupBySection places each static permission code under its catalog
// section, producing the canonical blob shape.
func (s *roleServiceImpl) groupBySection(ctx context.Context, codes []permission.Code) (permission.Blob, error) {
	sections, err := s.catalogService.GetCatalog(ctx)
	if err != nil {
		return permission.Blob{}, err
	}

	sectionOf := make(map[permission.Code]string)
	for _, section := range sections {
		for _, p := range section.Permissions {
			sectionOf[p.Code] = section.Code
		}
	}

	blob := permission.Blob{Sections: make(map[string][]string)}
	for _, code := range codes {
		section, ok := sectionOf[code]
		if !ok {
			continue
		}
		blob.Sections[section] = append(blob.Sections[section], string(code))
	}
	return blob, nil
}

// getOwned loads a role and hides rows outside the caller's authorized
// business behind not-found, so a role id cannot be addressed across
// businesses.
func (s *roleServiceImpl) getOwned(ctx context.Context, businessID, id string) (role.CustomRole, error) {
	found, err := s.roleRepo.GetByID(ctx, id)
	if err != nil {
		return role.CustomRole{}, err
	}
	if found.BusinessID != businessID {
		return role.CustomRole{}, role.ErrRoleNotFound
	}
	return found, nil
}

// GetByID implements role.RoleService.
func (s *roleServiceImpl) GetByID(ctx context.Context, businessID, id string) (role.RoleResponse, error) {
	found, err := s.getOwned(ctx, businessID, id)
	if err != nil {
		return role.RoleResponse{}, err
	}
	return toRoleResponse(found), nil
}

// Update implements role.RoleService.
func (s *roleServiceImpl) Update(ctx context.Context, businessID, id string, req role.UpdateRoleRequest) (role.RoleResponse, error) {
	if err := req.Validate(); err != nil {
		return role.RoleResponse{}, err
	}

	existing, err := s.getOwned(ctx, businessID, id)
	if err != nil {
		return role.RoleResponse{}, err
	}

	if req.Name != nil && *req.Name != existing.Name {
		if existing.IsPredefined {
			return role.RoleResponse{}, role.ErrPredefinedReadOnly
		}
		taken, err := s.roleRepo.ExistsByBusinessAndName(ctx, existing.BusinessID, *req.Name)
		if err != nil {
			return role.RoleResponse{}, err
		}
		if taken {
			return role.RoleResponse{}, role.ErrRoleNameExists
		}
		existing.Name = *req.Name
	}
	if req.Permissions != nil {
		if err := s.catalogService.Validate(ctx, *req.Permissions); err != nil {
			return role.RoleResponse{}, err
		}
		existing.Permissions = *req.Permissions
	}

	updated, err := s.roleRepo.Update(ctx, existing)
	if err != nil {
		return role.RoleResponse{}, err
	}
	return toRoleResponse(updated), nil
}

// ReplacePermissions implements role.RoleService.
func (s *roleServiceImpl) ReplacePermissions(ctx context.Context, businessID, id string, req role.ReplacePermissionsRequest) (role.RoleResponse, error) {
	if err := req.Validate(); err != nil {
		return role.RoleResponse{}, err
	}
	if _, err := s.getOwned(ctx, businessID, id); err != nil {
		return role.RoleResponse{}, err
	}
	if err := s.catalogService.Validate(ctx, req.Permissions); err != nil {
		return role.RoleResponse{}, err
	}

	raw, err := req.Permissions.MarshalJSON()
	if err != nil {
		return role.RoleResponse{}, err
	}

	updated, err := s.roleRepo.ReplacePermissions(ctx, id, raw)
	if err != nil {
		return role.RoleResponse{}, err
	}
	return toRoleResponse(updated), nil
}

// Delete implements role.RoleService.
func (s *roleServiceImpl) Delete(ctx context.Context, businessID, id string) error {
	if _, err := s.getOwned(ctx, businessID, id); err != nil {
		return err
	}
	return s.roleRepo.Delete(ctx, id)
}

// Assign implements role.RoleService. The role string is classified
// once here: a predefined identifier is stored as-is with the
// predefined tag, anything else must be the id of a custom role in the
// same business and is stored by name with the custom tag.
func (s *roleServiceImpl) Assign(ctx context.Context, req role.AssignRoleRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	roleType := membership.RoleTypePredefined
	roleName := req.Role
	if !role.IsPredefined(req.Role) {
		customRole, err := s.roleRepo.GetByID(ctx, req.Role)
		if err != nil {
			if errors.Is(err, role.ErrRoleNotFound) {
				return role.ErrUnknownRole
			}
			return err
		}
		if customRole.BusinessID != req.BusinessID {
			return role.ErrUnknownRole
		}
		roleType = membership.RoleTypeCustom
		roleName = customRole.Name
	}

	exists, err := s.membershipRepo.ExistsByUserAndBusiness(ctx, req.UserID, req.BusinessID)
	if err != nil {
		return err
	}
	if exists {
		return s.membershipRepo.UpdateRole(ctx, req.UserID, req.BusinessID, roleType, roleName)
	}

	_, err = s.membershipRepo.Create(ctx, membership.Membership{
		UserID:     req.UserID,
		BusinessID: req.BusinessID,
		RoleType:   roleType,
		Role:       roleName,
	})
	return err
}

func toRoleResponse(r role.CustomRole) role.RoleResponse {
	return role.RoleResponse{
		ID:           r.ID,
		BusinessID:   r.BusinessID,
		Name:         r.Name,
		Permissions:  r.Permissions,
		IsPredefined: r.IsPredefined,
		CreatedAt:    r.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    r.UpdatedAt.Format(time.RFC3339),
	}
}
