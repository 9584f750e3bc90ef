package coin

import "context"

type LedgerRepository interface {
	Append(ctx context.Context, entry Entry) (Entry, error)
	GetBalance(ctx context.Context, businessID, userID string) (int, error)
	ListByUser(ctx context.Context, businessID, userID string, limit int) ([]Entry, error)
}

type RewardRepository interface {
	Create(ctx context.Context, reward Reward) (Reward, error)
	GetByID(ctx context.Context, id string) (Reward, error)
	ListByBusiness(ctx context.Context, businessID string, activeOnly bool) ([]Reward, error)
	Update(ctx context.Context, reward Reward) (Reward, error)
	Delete(ctx context.Context, id string) error
}
