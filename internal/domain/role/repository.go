package role

import "context"

type CustomRoleRepository interface {
	Create(ctx context.Context, newRole CustomRole) (CustomRole, error)
	GetByID(ctx context.Context, id string) (CustomRole, error)
	// GetByBusinessAndName looks a role up by its unique (business, name)
	// pair; this is the lookup the permission resolver performs.
	GetByBusinessAndName(ctx context.Context, businessID, name string) (CustomRole, error)
	ListByBusiness(ctx context.Context, businessID string) ([]CustomRole, error)
	Update(ctx context.Context, updated CustomRole) (CustomRole, error)
	ReplacePermissions(ctx context.Context, id string, permissions []byte) (CustomRole, error)
	Delete(ctx context.Context, id string) error
	ExistsByBusinessAndName(ctx context.Context, businessID, name string) (bool, error)
}
