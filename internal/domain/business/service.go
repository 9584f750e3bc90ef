package business

import "context"

type BusinessService interface {
	Create(ctx context.Context, ownerID string, req CreateBusinessRequest) (BusinessResponse, error)
	GetByID(ctx context.Context, id string) (BusinessResponse, error)
	ListMine(ctx context.Context, userID string) ([]BusinessResponse, error)
	Update(ctx context.Context, id string, req UpdateBusinessRequest) (BusinessResponse, error)
	Delete(ctx context.Context, id string) error
	ListMembers(ctx context.Context, businessID string) ([]MemberResponse, error)
}
