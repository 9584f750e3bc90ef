package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/crewdesk-app/crewdesk-backend-go/internal/domain/attendance"
	"github.com/crewdesk-app/crewdesk-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

const attendanceColumns = `id, business_id, user_id, shift_id, clock_in_at, clock_out_at, worked_minutes, created_at, updated_at`

func scanAttendance(row pgx.Row) (attendance.Attendance, error) {
	var found attendance.Attendance
	err := row.Scan(
		&found.ID,
		&found.BusinessID,
		&found.UserID,
		&found.ShiftID,
		&found.ClockInAt,
		&found.ClockOutAt,
		&found.WorkedMinutes,
		&found.CreatedAt,
		&found.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, err
	}
	return found, nil
}

func collectAttendance(rows pgx.Rows) ([]attendance.Attendance, error) {
	defer rows.Close()

	var result []attendance.Attendance
	for rows.Next() {
		a, err := scanAttendance(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, a)
	}
	return result, rows.Err()
}

// Create implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Create(ctx context.Context, record attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance_records (business_id, user_id, shift_id, clock_in_at)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + attendanceColumns

	return scanAttendance(q.QueryRow(ctx, query,
		record.BusinessID,
		record.UserID,
		record.ShiftID,
		record.ClockInAt,
	))
}

// GetOpenByUser implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) GetOpenByUser(ctx context.Context, businessID, userID string) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance_records
		WHERE business_id = $1 AND user_id = $2 AND clock_out_at IS NULL
		ORDER BY clock_in_at DESC
		LIMIT 1
	`
	return scanAttendance(q.QueryRow(ctx, query, businessID, userID))
}

// ClockOut implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ClockOut(ctx context.Context, id string, at time.Time, workedMinutes int) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendance_records
		SET clock_out_at = $1, worked_minutes = $2, updated_at = NOW()
		WHERE id = $3
		RETURNING ` + attendanceColumns

	return scanAttendance(q.QueryRow(ctx, query, at, workedMinutes, id))
}

// ListByUser implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ListByUser(ctx context.Context, businessID, userID string, from, to time.Time) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance_records
		WHERE business_id = $1 AND user_id = $2 AND clock_in_at >= $3 AND clock_in_at < $4
		ORDER BY clock_in_at DESC
	`
	rows, err := q.Query(ctx, query, businessID, userID, from, to)
	if err != nil {
		return nil, err
	}
	return collectAttendance(rows)
}

// ListByBusiness implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ListByBusiness(ctx context.Context, businessID string, from, to time.Time) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance_records
		WHERE business_id = $1 AND clock_in_at >= $2 AND clock_in_at < $3
		ORDER BY clock_in_at DESC
	`
	rows, err := q.Query(ctx, query, businessID, from, to)
	if err != nil {
		return nil, err
	}
	return collectAttendance(rows)
}
