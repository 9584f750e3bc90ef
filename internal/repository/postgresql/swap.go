package postgresql

import (
	"context"
	"errors"

	"github.com/crewdesk-app/crewdesk-backend-go/internal/domain/shift"
	"github.com/crewdesk-app/crewdesk-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type swapRepositoryImpl struct {
	db *database.DB
}

func NewSwapRepository(db *database.DB) shift.SwapRepository {
	return &swapRepositoryImpl{db: db}
}

const swapColumns = `id, business_id, shift_id, requester_id, counterpart_id, reason, status, decided_by, decided_at, created_at, updated_at`

func scanSwap(row pgx.Row) (shift.SwapRequest, error) {
	var found shift.SwapRequest
	err := row.Scan(
		&found.ID,
		&found.BusinessID,
		&found.ShiftID,
		&found.RequesterID,
		&found.CounterpartID,
		&found.Reason,
		&found.Status,
		&found.DecidedBy,
		&found.DecidedAt,
		&found.CreatedAt,
		&found.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return shift.SwapRequest{}, shift.ErrSwapNotFound
		}
		return shift.SwapRequest{}, err
	}
	return found, nil
}

// Create implements shift.SwapRepository.
func (r *swapRepositoryImpl) Create(ctx context.Context, req shift.SwapRequest) (shift.SwapRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO swap_requests (business_id, shift_id, requester_id, counterpart_id, reason, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + swapColumns

	return scanSwap(q.QueryRow(ctx, query,
		req.BusinessID,
		req.ShiftID,
		req.RequesterID,
		req.CounterpartID,
		req.Reason,
		req.Status,
	))
}

// GetByID implements shift.SwapRepository.
func (r *swapRepositoryImpl) GetByID(ctx context.Context, id string) (shift.SwapRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + swapColumns + ` FROM swap_requests WHERE id = $1`
	return scanSwap(q.QueryRow(ctx, query, id))
}

// ListByBusiness implements shift.SwapRepository.
func (r *swapRepositoryImpl) ListByBusiness(ctx context.Context, businessID string, status *shift.SwapStatus) ([]shift.SwapRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + swapColumns + ` FROM swap_requests WHERE business_id = $1`
	args := []interface{}{businessID}
	if status != nil {
		query += ` AND status = $2`
		args = append(args, *status)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []shift.SwapRequest
	for rows.Next() {
		s, err := scanSwap(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, s)
	}
	return result, rows.Err()
}

// Decide implements shift.SwapRepository.
func (r *swapRepositoryImpl) Decide(ctx context.Context, id string, status shift.SwapStatus, decidedBy string) (shift.SwapRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE swap_requests
		SET status = $1, decided_by = $2, decided_at = NOW(), updated_at = NOW()
		WHERE id = $3
		RETURNING ` + swapColumns

	return scanSwap(q.QueryRow(ctx, query, status, decidedBy, id))
}
