package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/crewdesk-app/crewdesk-backend-go/internal/domain/shift"
	"github.com/crewdesk-app/crewdesk-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type shiftRepositoryImpl struct {
	db *database.DB
}

func NewShiftRepository(db *database.DB) shift.ShiftRepository {
	return &shiftRepositoryImpl{db: db}
}

const shiftColumns = `id, business_id, assignee_id, position, starts_at, ends_at, status, note, created_at, updated_at`

func scanShift(row pgx.Row) (shift.Shift, error) {
	var found shift.Shift
	err := row.Scan(
		&found.ID,
		&found.BusinessID,
		&found.AssigneeID,
		&found.Position,
		&found.StartsAt,
		&found.EndsAt,
		&found.Status,
		&found.Note,
		&found.CreatedAt,
		&found.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return shift.Shift{}, shift.ErrShiftNotFound
		}
		return shift.Shift{}, err
	}
	return found, nil
}

func collectShifts(rows pgx.Rows) ([]shift.Shift, error) {
	defer rows.Close()

	var result []shift.Shift
	for rows.Next() {
		s, err := scanShift(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, s)
	}
	return result, rows.Err()
}

// Create implements shift.ShiftRepository.
func (r *shiftRepositoryImpl) Create(ctx context.Context, newShift shift.Shift) (shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO shifts (business_id, assignee_id, position, starts_at, ends_at, status, note)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + shiftColumns

	return scanShift(q.QueryRow(ctx, query,
		newShift.BusinessID,
		newShift.AssigneeID,
		newShift.Position,
		newShift.StartsAt,
		newShift.EndsAt,
		newShift.Status,
		newShift.Note,
	))
}

// GetByID implements shift.ShiftRepository.
func (r *shiftRepositoryImpl) GetByID(ctx context.Context, id string) (shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + shiftColumns + ` FROM shifts WHERE id = $1`
	return scanShift(q.QueryRow(ctx, query, id))
}

// ListByBusiness implements shift.ShiftRepository.
func (r *shiftRepositoryImpl) ListByBusiness(ctx context.Context, businessID string, from, to time.Time) ([]shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + shiftColumns + `
		FROM shifts
		WHERE business_id = $1 AND starts_at >= $2 AND starts_at < $3
		ORDER BY starts_at
	`
	rows, err := q.Query(ctx, query, businessID, from, to)
	if err != nil {
		return nil, err
	}
	return collectShifts(rows)
}

// ListByAssignee implements shift.ShiftRepository.
func (r *shiftRepositoryImpl) ListByAssignee(ctx context.Context, businessID, userID string, from, to time.Time) ([]shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + shiftColumns + `
		FROM shifts
		WHERE business_id = $1 AND assignee_id = $2 AND starts_at >= $3 AND starts_at < $4
		ORDER BY starts_at
	`
	rows, err := q.Query(ctx, query, businessID, userID, from, to)
	if err != nil {
		return nil, err
	}
	return collectShifts(rows)
}

// Update implements shift.ShiftRepository.
func (r *shiftRepositoryImpl) Update(ctx context.Context, updated shift.Shift) (shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE shifts
		SET assignee_id = $1, position = $2, starts_at = $3, ends_at = $4, note = $5, updated_at = NOW()
		WHERE id = $6
		RETURNING ` + shiftColumns

	return scanShift(q.QueryRow(ctx, query,
		updated.AssigneeID,
		updated.Position,
		updated.StartsAt,
		updated.EndsAt,
		updated.Note,
		updated.ID,
	))
}

// UpdateStatus implements shift.ShiftRepository.
func (r *shiftRepositoryImpl) UpdateStatus(ctx context.Context, id string, status shift.ShiftStatus) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `UPDATE shifts SET status = $1, updated_at = NOW() WHERE id = $2`, status, id)
	return err
}

// Reassign implements shift.ShiftRepository.
func (r *shiftRepositoryImpl) Reassign(ctx context.Context, id string, assigneeID string) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `UPDATE shifts SET assignee_id = $1, updated_at = NOW() WHERE id = $2`, assigneeID, id)
	return err
}

// Delete implements shift.ShiftRepository.
func (r *shiftRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `DELETE FROM shifts WHERE id = $1`, id)
	return err
}
