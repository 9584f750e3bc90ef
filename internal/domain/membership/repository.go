package membership

import "context"

type MembershipRepository interface {
	Create(ctx context.Context, newMembership Membership) (Membership, error)
	GetByUserAndBusiness(ctx context.Context, userID, businessID string) (Membership, error)
	ListByUser(ctx context.Context, userID string) ([]Membership, error)
	ListByBusiness(ctx context.Context, businessID string) ([]Membership, error)
	UpdateRole(ctx context.Context, userID, businessID string, roleType RoleType, role string) error
	Delete(ctx context.Context, userID, businessID string) error
	ExistsByUserAndBusiness(ctx context.Context, userID, businessID string) (bool, error)
}
