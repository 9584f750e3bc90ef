package postgresql

import (
	"context"
	"errors"

	"github.com/crewdesk-app/crewdesk-backend-go/internal/domain/attendance"
	"github.com/crewdesk-app/crewdesk-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type overtimeRepositoryImpl struct {
	db *database.DB
}

func NewOvertimeRepository(db *database.DB) attendance.OvertimeRepository {
	return &overtimeRepositoryImpl{db: db}
}

const overtimeColumns = `id, business_id, user_id, date, minutes, reason, status, decided_by, decided_at, created_at, updated_at`

func scanOvertime(row pgx.Row) (attendance.OvertimeRequest, error) {
	var found attendance.OvertimeRequest
	err := row.Scan(
		&found.ID,
		&found.BusinessID,
		&found.UserID,
		&found.Date,
		&found.Minutes,
		&found.Reason,
		&found.Status,
		&found.DecidedBy,
		&found.DecidedAt,
		&found.CreatedAt,
		&found.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.OvertimeRequest{}, attendance.ErrOvertimeNotFound
		}
		return attendance.OvertimeRequest{}, err
	}
	return found, nil
}

// Create implements attendance.OvertimeRepository.
func (r *overtimeRepositoryImpl) Create(ctx context.Context, req attendance.OvertimeRequest) (attendance.OvertimeRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO overtime_requests (business_id, user_id, date, minutes, reason, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + overtimeColumns

	return scanOvertime(q.QueryRow(ctx, query,
		req.BusinessID,
		req.UserID,
		req.Date,
		req.Minutes,
		req.Reason,
		req.Status,
	))
}

// GetByID implements attendance.OvertimeRepository.
func (r *overtimeRepositoryImpl) GetByID(ctx context.Context, id string) (attendance.OvertimeRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + overtimeColumns + ` FROM overtime_requests WHERE id = $1`
	return scanOvertime(q.QueryRow(ctx, query, id))
}

// ListByBusiness implements attendance.OvertimeRepository.
func (r *overtimeRepositoryImpl) ListByBusiness(ctx context.Context, businessID string, status *attendance.OvertimeStatus) ([]attendance.OvertimeRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + overtimeColumns + ` FROM overtime_requests WHERE business_id = $1`
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

	var result []attendance.OvertimeRequest
	for rows.Next() {
		o, err := scanOvertime(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, o)
	}
	return result, rows.Err()
}

// Decide implements attendance.OvertimeRepository.
func (r *overtimeRepositoryImpl) Decide(ctx context.Context, id string, status attendance.OvertimeStatus, decidedBy string) (attendance.OvertimeRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE overtime_requests
		SET status = $1, decided_by = $2, decided_at = NOW(), updated_at = NOW()
		WHERE id = $3
		RETURNING ` + overtimeColumns

	return scanOvertime(q.QueryRow(ctx, query, status, decidedBy, id))
}
