package postgresql

import (
	"context"
	"errors"

	"github.com/crewdesk-app/crewdesk-backend-go/internal/domain/auth"
	"github.com/crewdesk-app/crewdesk-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type refreshTokenRepositoryImpl struct {
	db *database.DB
}

func NewRefreshTokenRepository(db *database.DB) auth.RefreshTokenRepository {
	return &refreshTokenRepositoryImpl{db: db}
}

func scanRefreshToken(row pgx.Row) (auth.RefreshToken, error) {
	var found auth.RefreshToken
	err := row.Scan(
		&found.ID,
		&found.UserID,
		&found.Token,
		&found.IPAddress,
		&found.UserAgent,
		&found.RevokedAt,
		&found.ExpiresAt,
		&found.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return auth.RefreshToken{}, auth.ErrInvalidToken
		}
		return auth.RefreshToken{}, err
	}
	return found, nil
}

// Create implements auth.RefreshTokenRepository.
func (r *refreshTokenRepositoryImpl) Create(ctx context.Context, token auth.RefreshToken) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `
		INSERT INTO refresh_tokens (user_id, token, ip_address, user_agent, expires_at)
		VALUES ($1, $2, $3, $4, $5)
	`, token.UserID, token.Token, token.IPAddress, token.UserAgent, token.ExpiresAt)
	return err
}

// GetByToken implements auth.RefreshTokenRepository.
func (r *refreshTokenRepositoryImpl) GetByToken(ctx context.Context, token string) (auth.RefreshToken, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, token, ip_address, user_agent, revoked_at, expires_at, created_at
		FROM refresh_tokens
		WHERE token = $1
	`

	return scanRefreshToken(q.QueryRow(ctx, query, token))
}

// Revoke implements auth.RefreshTokenRepository.
func (r *refreshTokenRepositoryImpl) Revoke(ctx context.Context, token string) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `
		UPDATE refresh_tokens SET revoked_at = NOW() WHERE token = $1 AND revoked_at IS NULL
	`, token)
	return err
}

// RevokeAllByUser implements auth.RefreshTokenRepository.
func (r *refreshTokenRepositoryImpl) RevokeAllByUser(ctx context.Context, userID string) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `
		UPDATE refresh_tokens SET revoked_at = NOW() WHERE user_id = $1 AND revoked_at IS NULL
	`, userID)
	return err
}

// DeleteExpired implements auth.RefreshTokenRepository.
func (r *refreshTokenRepositoryImpl) DeleteExpired(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM refresh_tokens WHERE expires_at < NOW()`)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
