package business

import "context"

type BusinessRepository interface {
	Create(ctx context.Context, newBusiness Business) (Business, error)
	GetByID(ctx context.Context, id string) (Business, error)
	ListByOwner(ctx context.Context, ownerID string) ([]Business, error)
	Update(ctx context.Context, updated Business) (Business, error)
	Delete(ctx context.Context, id string) error
	ExistsByID(ctx context.Context, id string) (bool, error)
}
