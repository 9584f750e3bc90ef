package postgresql

import (
	"context"
	"errors"

	"github.com/crewdesk-app/crewdesk-backend-go/internal/domain/business"
	"github.com/crewdesk-app/crewdesk-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type businessRepositoryImpl struct {
	db *database.DB
}

func NewBusinessRepository(db *database.DB) business.BusinessRepository {
	return &businessRepositoryImpl{db: db}
}

const businessColumns = `id, owner_id, name, industry, address, timezone, created_at, updated_at`

func scanBusiness(row pgx.Row) (business.Business, error) {
	var found business.Business
	err := row.Scan(
		&found.ID,
		&found.OwnerID,
		&found.Name,
		&found.Industry,
		&found.Address,
		&found.Timezone,
		&found.CreatedAt,
		&found.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return business.Business{}, business.ErrBusinessNotFound
		}
		return business.Business{}, err
	}
	return found, nil
}

// Create implements business.BusinessRepository.
func (r *businessRepositoryImpl) Create(ctx context.Context, newBusiness business.Business) (business.Business, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO businesses (owner_id, name, industry, address, timezone)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + businessColumns

	return scanBusiness(q.QueryRow(ctx, query,
		newBusiness.OwnerID,
		newBusiness.Name,
		newBusiness.Industry,
		newBusiness.Address,
		newBusiness.Timezone,
	))
}

// GetByID implements business.BusinessRepository.
func (r *businessRepositoryImpl) GetByID(ctx context.Context, id string) (business.Business, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + businessColumns + ` FROM businesses WHERE id = $1`
	return scanBusiness(q.QueryRow(ctx, query, id))
}

// ListByOwner implements business.BusinessRepository.
func (r *businessRepositoryImpl) ListByOwner(ctx context.Context, ownerID string) ([]business.Business, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + businessColumns + ` FROM businesses WHERE owner_id = $1 ORDER BY created_at`
	rows, err := q.Query(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []business.Business
	for rows.Next() {
		b, err := scanBusiness(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, b)
	}
	return result, rows.Err()
}

// Update implements business.BusinessRepository.
func (r *businessRepositoryImpl) Update(ctx context.Context, updated business.Business) (business.Business, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE businesses
		SET name = $1, industry = $2, address = $3, timezone = $4, updated_at = NOW()
		WHERE id = $5
		RETURNING ` + businessColumns

	return scanBusiness(q.QueryRow(ctx, query,
		updated.Name,
		updated.Industry,
		updated.Address,
		updated.Timezone,
		updated.ID,
	))
}

// Delete implements business.BusinessRepository.
func (r *businessRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `DELETE FROM businesses WHERE id = $1`, id)
	return err
}

// ExistsByID implements business.BusinessRepository.
func (r *businessRepositoryImpl) ExistsByID(ctx context.Context, id string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM businesses WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}
