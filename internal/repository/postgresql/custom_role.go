package postgresql

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/crewdesk-app/crewdesk-backend-go/internal/domain/role"
	"github.com/crewdesk-app/crewdesk-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type customRoleRepositoryImpl struct {
	db *database.DB
}

func NewCustomRoleRepository(db *database.DB) role.CustomRoleRepository {
	return &customRoleRepositoryImpl{db: db}
}

const customRoleColumns = `id, business_id, name, permissions, is_predefined, created_at, updated_at`

// scanCustomRole decodes a row, including the permissions jsonb column.
// The column may hold any of the historical blob shapes; decoding is
// delegated to permission.Blob.
func scanCustomRole(row pgx.Row) (role.CustomRole, error) {
	var (
		found role.CustomRole
		raw   []byte
	)
	err := row.Scan(
		&found.ID,
		&found.BusinessID,
		&found.Name,
		&raw,
		&found.IsPredefined,
		&found.CreatedAt,
		&found.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return role.CustomRole{}, role.ErrRoleNotFound
		}
		return role.CustomRole{}, err
	}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &found.Permissions); err != nil {
			return role.CustomRole{}, err
		}
	}
	return found, nil
}

// Create implements role.CustomRoleRepository.
func (r *customRoleRepositoryImpl) Create(ctx context.Context, newRole role.CustomRole) (role.CustomRole, error) {
	q := GetQuerier(ctx, r.db)

	permissions, err := json.Marshal(newRole.Permissions)
	if err != nil {
		return role.CustomRole{}, err
	}

	query := `
		INSERT INTO custom_roles (business_id, name, permissions, is_predefined)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + customRoleColumns

	return scanCustomRole(q.QueryRow(ctx, query,
		newRole.BusinessID,
		newRole.Name,
		permissions,
		newRole.IsPredefined,
	))
}

// GetByID implements role.CustomRoleRepository.
func (r *customRoleRepositoryImpl) GetByID(ctx context.Context, id string) (role.CustomRole, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + customRoleColumns + ` FROM custom_roles WHERE id = $1`
	return scanCustomRole(q.QueryRow(ctx, query, id))
}

// GetByBusinessAndName implements role.CustomRoleRepository.
func (r *customRoleRepositoryImpl) GetByBusinessAndName(ctx context.Context, businessID, name string) (role.CustomRole, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + customRoleColumns + ` FROM custom_roles WHERE business_id = $1 AND name = $2`
	return scanCustomRole(q.QueryRow(ctx, query, businessID, name))
}

// ListByBusiness implements role.CustomRoleRepository.
func (r *customRoleRepositoryImpl) ListByBusiness(ctx context.Context, businessID string) ([]role.CustomRole, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + customRoleColumns + ` FROM custom_roles WHERE business_id = $1 ORDER BY created_at`
	rows, err := q.Query(ctx, query, businessID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []role.CustomRole
	for rows.Next() {
		cr, err := scanCustomRole(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, cr)
	}
	return result, rows.Err()
}

// Update implements role.CustomRoleRepository.
func (r *customRoleRepositoryImpl) Update(ctx context.Context, updated role.CustomRole) (role.CustomRole, error) {
	q := GetQuerier(ctx, r.db)

	permissions, err := json.Marshal(updated.Permissions)
	if err != nil {
		return role.CustomRole{}, err
	}

	query := `
		UPDATE custom_roles
		SET name = $1, permissions = $2, updated_at = NOW()
		WHERE id = $3
		RETURNING ` + customRoleColumns

	return scanCustomRole(q.QueryRow(ctx, query, updated.Name, permissions, updated.ID))
}

// ReplacePermissions implements role.CustomRoleRepository.
func (r *customRoleRepositoryImpl) ReplacePermissions(ctx context.Context, id string, permissions []byte) (role.CustomRole, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE custom_roles
		SET permissions = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING ` + customRoleColumns

	return scanCustomRole(q.QueryRow(ctx, query, permissions, id))
}

// Delete implements role.CustomRoleRepository.
func (r *customRoleRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `DELETE FROM custom_roles WHERE id = $1`, id)
	return err
}

// ExistsByBusinessAndName implements role.CustomRoleRepository.
func (r *customRoleRepositoryImpl) ExistsByBusinessAndName(ctx context.Context, businessID, name string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM custom_roles WHERE business_id = $1 AND name = $2)
	`, businessID, name).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}
