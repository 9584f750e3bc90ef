package postgresql

import (
	"context"

	"github.com/crewdesk-app/crewdesk-backend-go/internal/domain/coin"
	"github.com/crewdesk-app/crewdesk-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type ledgerRepositoryImpl struct {
	db *database.DB
}

func NewLedgerRepository(db *database.DB) coin.LedgerRepository {
	return &ledgerRepositoryImpl{db: db}
}

const entryColumns = `id, business_id, user_id, amount, source, reason, ref_id, created_at`

func scanEntry(row pgx.Row) (coin.Entry, error) {
	var found coin.Entry
	err := row.Scan(
		&found.ID,
		&found.BusinessID,
		&found.UserID,
		&found.Amount,
		&found.Source,
		&found.Reason,
		&found.RefID,
		&found.CreatedAt,
	)
	if err != nil {
		return coin.Entry{}, err
	}
	return found, nil
}

// Append implements coin.LedgerRepository.
func (r *ledgerRepositoryImpl) Append(ctx context.Context, entry coin.Entry) (coin.Entry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO coin_entries (business_id, user_id, amount, source, reason, ref_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + entryColumns

	return scanEntry(q.QueryRow(ctx, query,
		entry.BusinessID,
		entry.UserID,
		entry.Amount,
		entry.Source,
		entry.Reason,
		entry.RefID,
	))
}

// GetBalance implements coin.LedgerRepository.
func (r *ledgerRepositoryImpl) GetBalance(ctx context.Context, businessID, userID string) (int, error) {
	q := GetQuerier(ctx, r.db)

	var balance int
	err := q.QueryRow(ctx, `
		SELECT COALESCE(SUM(amount), 0) FROM coin_entries WHERE business_id = $1 AND user_id = $2
	`, businessID, userID).Scan(&balance)
	if err != nil {
		return 0, err
	}
	return balance, nil
}

// ListByUser implements coin.LedgerRepository.
func (r *ledgerRepositoryImpl) ListByUser(ctx context.Context, businessID, userID string, limit int) ([]coin.Entry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + entryColumns + `
		FROM coin_entries
		WHERE business_id = $1 AND user_id = $2
		ORDER BY created_at DESC
		LIMIT $3
	`
	rows, err := q.Query(ctx, query, businessID, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []coin.Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, e)
	}
	return result, rows.Err()
}
