package coin

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/crewdesk-app/crewdesk-backend-go/internal/domain/coin"
	"github.com/stretchr/testify/assert"
)

type fakeRewardRepo struct {
	rewards map[string]coin.Reward
}

func (f *fakeRewardRepo) Create(ctx context.Context, reward coin.Reward) (coin.Reward, error) {
	f.rewards[reward.ID] = reward
	return reward, nil
}

func (f *fakeRewardRepo) GetByID(ctx context.Context, id string) (coin.Reward, error) {
	reward, ok := f.rewards[id]
	if !ok {
		return coin.Reward{}, coin.ErrRewardNotFound
	}
	return reward, nil
}

func (f *fakeRewardRepo) ListByBusiness(ctx context.Context, businessID string, activeOnly bool) ([]coin.Reward, error) {
	return nil, nil
}

func (f *fakeRewardRepo) Update(ctx context.Context, reward coin.Reward) (coin.Reward, error) {
	f.rewards[reward.ID] = reward
	return reward, nil
}

func (f *fakeRewardRepo) Delete(ctx context.Context, id string) error {
	delete(f.rewards, id)
	return nil
}

func testCoinService() (coin.CoinService, *fakeRewardRepo) {
	rewardRepo := &fakeRewardRepo{rewards: make(map[string]coin.Reward)}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewCoinService(nil, nil, rewardRepo, nil, logger), rewardRepo
}

func TestRedeem_InactiveReward(t *testing.T) {
	service, rewardRepo := testCoinService()
	rewardRepo.rewards["rw-1"] = coin.Reward{
		ID:         "rw-1",
		BusinessID: "biz-1",
		Name:       "Free meal",
		CostCoins:  50,
		Active:     false,
	}

	_, err := service.Redeem(context.Background(), "biz-1", "rw-1", "user-1")
	assert.ErrorIs(t, err, coin.ErrRewardInactive)
}

func TestRedeem_OtherBusinessRewardInvisible(t *testing.T) {
	service, rewardRepo := testCoinService()
	rewardRepo.rewards["rw-1"] = coin.Reward{
		ID:         "rw-1",
		BusinessID: "biz-2",
		Name:       "Free meal",
		CostCoins:  50,
		Active:     true,
	}

	_, err := service.Redeem(context.Background(), "biz-1", "rw-1", "user-1")
	assert.ErrorIs(t, err, coin.ErrRewardNotFound)
}
