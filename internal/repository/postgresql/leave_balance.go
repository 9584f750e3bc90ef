package postgresql

import (
	"context"
	"errors"

	"github.com/crewdesk-app/crewdesk-backend-go/internal/domain/leave"
	"github.com/crewdesk-app/crewdesk-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type leaveBalanceRepositoryImpl struct {
	db *database.DB
}

func NewLeaveBalanceRepository(db *database.DB) leave.LeaveBalanceRepository {
	return &leaveBalanceRepositoryImpl{db: db}
}

const leaveBalanceColumns = `id, business_id, user_id, year, allocated_days, used_days, updated_at`

func scanLeaveBalance(row pgx.Row) (leave.LeaveBalance, error) {
	var found leave.LeaveBalance
	err := row.Scan(
		&found.ID,
		&found.BusinessID,
		&found.UserID,
		&found.Year,
		&found.AllocatedDays,
		&found.UsedDays,
		&found.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveBalance{}, leave.ErrBalanceNotFound
		}
		return leave.LeaveBalance{}, err
	}
	return found, nil
}

// Get implements leave.LeaveBalanceRepository.
func (r *leaveBalanceRepositoryImpl) Get(ctx context.Context, businessID, userID string, year int) (leave.LeaveBalance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveBalanceColumns + `
		FROM leave_balances
		WHERE business_id = $1 AND user_id = $2 AND year = $3
	`
	return scanLeaveBalance(q.QueryRow(ctx, query, businessID, userID, year))
}

// Upsert implements leave.LeaveBalanceRepository.
func (r *leaveBalanceRepositoryImpl) Upsert(ctx context.Context, balance leave.LeaveBalance) (leave.LeaveBalance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_balances (business_id, user_id, year, allocated_days, used_days)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (business_id, user_id, year) DO UPDATE SET updated_at = NOW()
		RETURNING ` + leaveBalanceColumns

	return scanLeaveBalance(q.QueryRow(ctx, query,
		balance.BusinessID,
		balance.UserID,
		balance.Year,
		balance.AllocatedDays,
		balance.UsedDays,
	))
}

// AddUsedDays implements leave.LeaveBalanceRepository.
func (r *leaveBalanceRepositoryImpl) AddUsedDays(ctx context.Context, businessID, userID string, year, days int) (leave.LeaveBalance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_balances
		SET used_days = used_days + $1, updated_at = NOW()
		WHERE business_id = $2 AND user_id = $3 AND year = $4
		RETURNING ` + leaveBalanceColumns

	return scanLeaveBalance(q.QueryRow(ctx, query, days, businessID, userID, year))
}

// SetAllocation implements leave.LeaveBalanceRepository.
func (r *leaveBalanceRepositoryImpl) SetAllocation(ctx context.Context, businessID, userID string, year, allocatedDays int) (leave.LeaveBalance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_balances (business_id, user_id, year, allocated_days, used_days)
		VALUES ($1, $2, $3, $4, 0)
		ON CONFLICT (business_id, user_id, year)
		DO UPDATE SET allocated_days = EXCLUDED.allocated_days, updated_at = NOW()
		RETURNING ` + leaveBalanceColumns

	return scanLeaveBalance(q.QueryRow(ctx, query, businessID, userID, year, allocatedDays))
}
