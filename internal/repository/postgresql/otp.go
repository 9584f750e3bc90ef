package postgresql

import (
	"context"
	"errors"

	"github.com/crewdesk-app/crewdesk-backend-go/internal/domain/auth"
	"github.com/crewdesk-app/crewdesk-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type otpRepositoryImpl struct {
	db *database.DB
}

func NewOTPRepository(db *database.DB) auth.OTPRepository {
	return &otpRepositoryImpl{db: db}
}

const otpColumns = `id, user_id, code_hash, purpose, attempts, consumed_at, expires_at, created_at`

func scanOTP(row pgx.Row) (auth.OTPCode, error) {
	var code auth.OTPCode
	err := row.Scan(
		&code.ID,
		&code.UserID,
		&code.CodeHash,
		&code.Purpose,
		&code.Attempts,
		&code.ConsumedAt,
		&code.ExpiresAt,
		&code.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return auth.OTPCode{}, auth.ErrOTPNotFound
		}
		return auth.OTPCode{}, err
	}
	return code, nil
}

// Create implements auth.OTPRepository.
func (r *otpRepositoryImpl) Create(ctx context.Context, code auth.OTPCode) (auth.OTPCode, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO otp_codes (user_id, code_hash, purpose, expires_at)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + otpColumns

	return scanOTP(q.QueryRow(ctx, query, code.UserID, code.CodeHash, code.Purpose, code.ExpiresAt))
}

// GetActiveByUser implements auth.OTPRepository.
func (r *otpRepositoryImpl) GetActiveByUser(ctx context.Context, userID, purpose string) (auth.OTPCode, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + otpColumns + `
		FROM otp_codes
		WHERE user_id = $1 AND purpose = $2 AND consumed_at IS NULL AND expires_at > NOW()
		ORDER BY created_at DESC
		LIMIT 1
	`

	return scanOTP(q.QueryRow(ctx, query, userID, purpose))
}

// IncrementAttempts implements auth.OTPRepository.
func (r *otpRepositoryImpl) IncrementAttempts(ctx context.Context, id string) (int, error) {
	q := GetQuerier(ctx, r.db)

	var attempts int
	err := q.QueryRow(ctx, `
		UPDATE otp_codes SET attempts = attempts + 1 WHERE id = $1 RETURNING attempts
	`, id).Scan(&attempts)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, auth.ErrOTPNotFound
		}
		return 0, err
	}
	return attempts, nil
}

// Consume implements auth.OTPRepository.
func (r *otpRepositoryImpl) Consume(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `UPDATE otp_codes SET consumed_at = NOW() WHERE id = $1 AND consumed_at IS NULL`, id)
	return err
}

// InvalidateByUser implements auth.OTPRepository.
func (r *otpRepositoryImpl) InvalidateByUser(ctx context.Context, userID, purpose string) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `
		UPDATE otp_codes SET consumed_at = NOW()
		WHERE user_id = $1 AND purpose = $2 AND consumed_at IS NULL
	`, userID, purpose)
	return err
}

// DeleteExpired implements auth.OTPRepository.
func (r *otpRepositoryImpl) DeleteExpired(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM otp_codes WHERE expires_at < NOW() - INTERVAL '1 day'`)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
