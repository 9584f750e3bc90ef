package coin

import "context"

type CoinService interface {
	GetBalance(ctx context.Context, businessID, userID string) (BalanceResponse, error)
	ListLedger(ctx context.Context, businessID, userID string, limit int) ([]EntryResponse, error)
	Award(ctx context.Context, req AwardCoinsRequest) (EntryResponse, error)
	// Earn appends an automatic entry produced by another module, e.g.
	// closing a shift.
	Earn(ctx context.Context, businessID, userID string, amount int, source EntrySource, refID *string) error

	CreateReward(ctx context.Context, req CreateRewardRequest) (RewardResponse, error)
	ListRewards(ctx context.Context, businessID string, activeOnly bool) ([]RewardResponse, error)
	Redeem(ctx context.Context, businessID, rewardID, userID string) (EntryResponse, error)
}
