package postgresql

import (
	"context"
	"errors"

	"github.com/crewdesk-app/crewdesk-backend-go/internal/domain/leave"
	"github.com/crewdesk-app/crewdesk-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type leaveRequestRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.LeaveRequestRepository {
	return &leaveRequestRepositoryImpl{db: db}
}

const leaveRequestColumns = `id, business_id, user_id, type, start_date, end_date, days, reason, status, decided_by, decided_at, created_at, updated_at`

func scanLeaveRequest(row pgx.Row) (leave.LeaveRequest, error) {
	var found leave.LeaveRequest
	err := row.Scan(
		&found.ID,
		&found.BusinessID,
		&found.UserID,
		&found.Type,
		&found.StartDate,
		&found.EndDate,
		&found.Days,
		&found.Reason,
		&found.Status,
		&found.DecidedBy,
		&found.DecidedAt,
		&found.CreatedAt,
		&found.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
		}
		return leave.LeaveRequest{}, err
	}
	return found, nil
}

// Create implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) Create(ctx context.Context, req leave.LeaveRequest) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_requests (business_id, user_id, type, start_date, end_date, days, reason, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + leaveRequestColumns

	return scanLeaveRequest(q.QueryRow(ctx, query,
		req.BusinessID,
		req.UserID,
		req.Type,
		req.StartDate,
		req.EndDate,
		req.Days,
		req.Reason,
		req.Status,
	))
}

// GetByID implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + leaveRequestColumns + ` FROM leave_requests WHERE id = $1`
	return scanLeaveRequest(q.QueryRow(ctx, query, id))
}

// ListByUser implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) ListByUser(ctx context.Context, businessID, userID string) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveRequestColumns + `
		FROM leave_requests
		WHERE business_id = $1 AND user_id = $2
		ORDER BY created_at DESC
	`
	rows, err := q.Query(ctx, query, businessID, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []leave.LeaveRequest
	for rows.Next() {
		lr, err := scanLeaveRequest(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, lr)
	}
	return result, rows.Err()
}

// ListByBusiness implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) ListByBusiness(ctx context.Context, businessID string, status *leave.LeaveStatus) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + leaveRequestColumns + ` FROM leave_requests WHERE business_id = $1`
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

	var result []leave.LeaveRequest
	for rows.Next() {
		lr, err := scanLeaveRequest(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, lr)
	}
	return result, rows.Err()
}

// Decide implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) Decide(ctx context.Context, id string, status leave.LeaveStatus, decidedBy string) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_requests
		SET status = $1, decided_by = $2, decided_at = NOW(), updated_at = NOW()
		WHERE id = $3
		RETURNING ` + leaveRequestColumns

	return scanLeaveRequest(q.QueryRow(ctx, query, status, decidedBy, id))
}
