package postgresql

import (
	"context"
	"errors"

	"github.com/crewdesk-app/crewdesk-backend-go/internal/domain/membership"
	"github.com/crewdesk-app/crewdesk-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type membershipRepositoryImpl struct {
	db *database.DB
}

func NewMembershipRepository(db *database.DB) membership.MembershipRepository {
	return &membershipRepositoryImpl{db: db}
}

const membershipColumns = `id, user_id, business_id, role_type, role, created_at, updated_at`

func scanMembership(row pgx.Row) (membership.Membership, error) {
	var found membership.Membership
	err := row.Scan(
		&found.ID,
		&found.UserID,
		&found.BusinessID,
		&found.RoleType,
		&found.Role,
		&found.CreatedAt,
		&found.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return membership.Membership{}, membership.ErrMembershipNotFound
		}
		return membership.Membership{}, err
	}
	return found, nil
}

// Create implements membership.MembershipRepository.
func (r *membershipRepositoryImpl) Create(ctx context.Context, newMembership membership.Membership) (membership.Membership, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO memberships (user_id, business_id, role_type, role)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + membershipColumns

	return scanMembership(q.QueryRow(ctx, query,
		newMembership.UserID,
		newMembership.BusinessID,
		newMembership.RoleType,
		newMembership.Role,
	))
}

// GetByUserAndBusiness implements membership.MembershipRepository.
func (r *membershipRepositoryImpl) GetByUserAndBusiness(ctx context.Context, userID, businessID string) (membership.Membership, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + membershipColumns + ` FROM memberships WHERE user_id = $1 AND business_id = $2`
	return scanMembership(q.QueryRow(ctx, query, userID, businessID))
}

// ListByUser implements membership.MembershipRepository.
func (r *membershipRepositoryImpl) ListByUser(ctx context.Context, userID string) ([]membership.Membership, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT m.id, m.user_id, m.business_id, m.role_type, m.role, m.created_at, m.updated_at, b.name
		FROM memberships m
		JOIN businesses b ON b.id = m.business_id
		WHERE m.user_id = $1
		ORDER BY m.created_at
	`
	rows, err := q.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []membership.Membership
	for rows.Next() {
		var m membership.Membership
		err := rows.Scan(
			&m.ID,
			&m.UserID,
			&m.BusinessID,
			&m.RoleType,
			&m.Role,
			&m.CreatedAt,
			&m.UpdatedAt,
			&m.BusinessName,
		)
		if err != nil {
			return nil, err
		}
		result = append(result, m)
	}
	return result, rows.Err()
}

// ListByBusiness implements membership.MembershipRepository.
func (r *membershipRepositoryImpl) ListByBusiness(ctx context.Context, businessID string) ([]membership.Membership, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT m.id, m.user_id, m.business_id, m.role_type, m.role, m.created_at, m.updated_at, u.email
		FROM memberships m
		JOIN users u ON u.id = m.user_id
		WHERE m.business_id = $1
		ORDER BY m.created_at
	`
	rows, err := q.Query(ctx, query, businessID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []membership.Membership
	for rows.Next() {
		var m membership.Membership
		err := rows.Scan(
			&m.ID,
			&m.UserID,
			&m.BusinessID,
			&m.RoleType,
			&m.Role,
			&m.CreatedAt,
			&m.UpdatedAt,
			&m.UserEmail,
		)
		if err != nil {
			return nil, err
		}
		result = append(result, m)
	}
	return result, rows.Err()
}

// UpdateRole implements membership.MembershipRepository.
func (r *membershipRepositoryImpl) UpdateRole(ctx context.Context, userID, businessID string, roleType membership.RoleType, role string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE memberships SET role_type = $1, role = $2, updated_at = NOW()
		WHERE user_id = $3 AND business_id = $4
	`, roleType, role, userID, businessID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return membership.ErrMembershipNotFound
	}
	return nil
}

// Delete implements membership.MembershipRepository.
func (r *membershipRepositoryImpl) Delete(ctx context.Context, userID, businessID string) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `DELETE FROM memberships WHERE user_id = $1 AND business_id = $2`, userID, businessID)
	return err
}

// ExistsByUserAndBusiness implements membership.MembershipRepository.
func (r *membershipRepositoryImpl) ExistsByUserAndBusiness(ctx context.Context, userID, businessID string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM memberships WHERE user_id = $1 AND business_id = $2)
	`, userID, businessID).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}
