package role

import "context"

type RoleService interface {
	ListByBusiness(ctx context.Context, businessID string) ([]RoleResponse, error)
	GetCatalog(ctx context.Context) (CatalogResponse, error)
	Create(ctx context.Context, req CreateRoleRequest) (RoleResponse, error)
	InstantiatePredefined(ctx context.Context, req InstantiatePredefinedRequest) (RoleResponse, error)
	GetByID(ctx context.Context, businessID, id string) (RoleResponse, error)
	Update(ctx context.Context, businessID, id string, req UpdateRoleRequest) (RoleResponse, error)
	ReplacePermissions(ctx context.Context, businessID, id string, req ReplacePermissionsRequest) (RoleResponse, error)
	Delete(ctx context.Context, businessID, id string) error
	Assign(ctx context.Context, req AssignRoleRequest) error
}
