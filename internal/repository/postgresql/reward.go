package postgresql

import (
	"context"
	"errors"

	"github.com/crewdesk-app/crewdesk-backend-go/internal/domain/coin"
	"github.com/crewdesk-app/crewdesk-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type rewardRepositoryImpl struct {
	db *database.DB
}

func NewRewardRepository(db *database.DB) coin.RewardRepository {
	return &rewardRepositoryImpl{db: db}
}

const rewardColumns = `id, business_id, name, description, cost_coins, active, created_at, updated_at`

func scanReward(row pgx.Row) (coin.Reward, error) {
	var found coin.Reward
	err := row.Scan(
		&found.ID,
		&found.BusinessID,
		&found.Name,
		&found.Description,
		&found.CostCoins,
		&found.Active,
		&found.CreatedAt,
		&found.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return coin.Reward{}, coin.ErrRewardNotFound
		}
		return coin.Reward{}, err
	}
	return found, nil
}

// Create implements coin.RewardRepository.
func (r *rewardRepositoryImpl) Create(ctx context.Context, reward coin.Reward) (coin.Reward, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO rewards (business_id, name, description, cost_coins, active)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + rewardColumns

	return scanReward(q.QueryRow(ctx, query,
		reward.BusinessID,
		reward.Name,
		reward.Description,
		reward.CostCoins,
		reward.Active,
	))
}

// GetByID implements coin.RewardRepository.
func (r *rewardRepositoryImpl) GetByID(ctx context.Context, id string) (coin.Reward, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + rewardColumns + ` FROM rewards WHERE id = $1`
	return scanReward(q.QueryRow(ctx, query, id))
}

// ListByBusiness implements coin.RewardRepository.
func (r *rewardRepositoryImpl) ListByBusiness(ctx context.Context, businessID string, activeOnly bool) ([]coin.Reward, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + rewardColumns + ` FROM rewards WHERE business_id = $1`
	if activeOnly {
		query += ` AND active = TRUE`
	}
	query += ` ORDER BY created_at`

	rows, err := q.Query(ctx, query, businessID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []coin.Reward
	for rows.Next() {
		rw, err := scanReward(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, rw)
	}
	return result, rows.Err()
}

// Update implements coin.RewardRepository.
func (r *rewardRepositoryImpl) Update(ctx context.Context, reward coin.Reward) (coin.Reward, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE rewards
		SET name = $1, description = $2, cost_coins = $3, active = $4, updated_at = NOW()
		WHERE id = $5
		RETURNING ` + rewardColumns

	return scanReward(q.QueryRow(ctx, query,
		reward.Name,
		reward.Description,
		reward.CostCoins,
		reward.Active,
		reward.ID,
	))
}

// Delete implements coin.RewardRepository.
func (r *rewardRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `DELETE FROM rewards WHERE id = $1`, id)
	return err
}
