package postgresql

import (
	"context"
	"errors"

	"github.com/crewdesk-app/crewdesk-backend-go/internal/domain/job"
	"github.com/crewdesk-app/crewdesk-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type jobPostRepositoryImpl struct {
	db *database.DB
}

func NewJobPostRepository(db *database.DB) job.PostRepository {
	return &jobPostRepositoryImpl{db: db}
}

const jobPostColumns = `id, business_id, title, description, position, hourly_rate, status, created_by, created_at, updated_at`

func scanJobPost(row pgx.Row) (job.Post, error) {
	var found job.Post
	err := row.Scan(
		&found.ID,
		&found.BusinessID,
		&found.Title,
		&found.Description,
		&found.Position,
		&found.HourlyRate,
		&found.Status,
		&found.CreatedBy,
		&found.CreatedAt,
		&found.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return job.Post{}, job.ErrPostNotFound
		}
		return job.Post{}, err
	}
	return found, nil
}

// Create implements job.PostRepository.
func (r *jobPostRepositoryImpl) Create(ctx context.Context, post job.Post) (job.Post, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO job_posts (business_id, title, description, position, hourly_rate, status, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + jobPostColumns

	return scanJobPost(q.QueryRow(ctx, query,
		post.BusinessID,
		post.Title,
		post.Description,
		post.Position,
		post.HourlyRate,
		post.Status,
		post.CreatedBy,
	))
}

// GetByID implements job.PostRepository.
func (r *jobPostRepositoryImpl) GetByID(ctx context.Context, id string) (job.Post, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + jobPostColumns + ` FROM job_posts WHERE id = $1`
	return scanJobPost(q.QueryRow(ctx, query, id))
}

// ListOpen implements job.PostRepository.
func (r *jobPostRepositoryImpl) ListOpen(ctx context.Context, limit int) ([]job.Post, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + jobPostColumns + `
		FROM job_posts
		WHERE status = 'open'
		ORDER BY created_at DESC
		LIMIT $1`

	rows, err := q.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectJobPosts(rows)
}

// ListByBusiness implements job.PostRepository.
func (r *jobPostRepositoryImpl) ListByBusiness(ctx context.Context, businessID string) ([]job.Post, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + jobPostColumns + `
		FROM job_posts
		WHERE business_id = $1
		ORDER BY created_at DESC`

	rows, err := q.Query(ctx, query, businessID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectJobPosts(rows)
}

func collectJobPosts(rows pgx.Rows) ([]job.Post, error) {
	var result []job.Post
	for rows.Next() {
		post, err := scanJobPost(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, post)
	}
	return result, rows.Err()
}

// UpdateStatus implements job.PostRepository.
func (r *jobPostRepositoryImpl) UpdateStatus(ctx context.Context, id string, status job.PostStatus) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE job_posts SET status = $1, updated_at = NOW() WHERE id = $2`, status, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return job.ErrPostNotFound
	}
	return nil
}

// Delete implements job.PostRepository.
func (r *jobPostRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `DELETE FROM job_posts WHERE id = $1`, id)
	return err
}

type jobApplicationRepositoryImpl struct {
	db *database.DB
}

func NewJobApplicationRepository(db *database.DB) job.ApplicationRepository {
	return &jobApplicationRepositoryImpl{db: db}
}

const jobApplicationColumns = `id, post_id, applicant_id, message, status, created_at, updated_at`

func scanJobApplication(row pgx.Row) (job.Application, error) {
	var found job.Application
	err := row.Scan(
		&found.ID,
		&found.PostID,
		&found.ApplicantID,
		&found.Message,
		&found.Status,
		&found.CreatedAt,
		&found.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return job.Application{}, job.ErrApplicationNotFound
		}
		return job.Application{}, err
	}
	return found, nil
}

// Create implements job.ApplicationRepository.
func (r *jobApplicationRepositoryImpl) Create(ctx context.Context, application job.Application) (job.Application, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO job_applications (post_id, applicant_id, message, status)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + jobApplicationColumns

	return scanJobApplication(q.QueryRow(ctx, query,
		application.PostID,
		application.ApplicantID,
		application.Message,
		application.Status,
	))
}

// GetByID implements job.ApplicationRepository.
func (r *jobApplicationRepositoryImpl) GetByID(ctx context.Context, id string) (job.Application, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + jobApplicationColumns + ` FROM job_applications WHERE id = $1`
	return scanJobApplication(q.QueryRow(ctx, query, id))
}

// ListByPost implements job.ApplicationRepository.
func (r *jobApplicationRepositoryImpl) ListByPost(ctx context.Context, postID string) ([]job.Application, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + jobApplicationColumns + `
		FROM job_applications
		WHERE post_id = $1
		ORDER BY created_at`

	rows, err := q.Query(ctx, query, postID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []job.Application
	for rows.Next() {
		app, err := scanJobApplication(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, app)
	}
	return result, rows.Err()
}

// ExistsByPostAndApplicant implements job.ApplicationRepository.
func (r *jobApplicationRepositoryImpl) ExistsByPostAndApplicant(ctx context.Context, postID, applicantID string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM job_applications WHERE post_id = $1 AND applicant_id = $2)`,
		postID, applicantID,
	).Scan(&exists)
	return exists, err
}

// UpdateStatus implements job.ApplicationRepository.
func (r *jobApplicationRepositoryImpl) UpdateStatus(ctx context.Context, id string, status job.ApplicationStatus) (job.Application, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE job_applications
		SET status = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING ` + jobApplicationColumns

	return scanJobApplication(q.QueryRow(ctx, query, status, id))
}

type connectionRepositoryImpl struct {
	db *database.DB
}

func NewConnectionRepository(db *database.DB) job.ConnectionRepository {
	return &connectionRepositoryImpl{db: db}
}

const connectionColumns = `id, requester_id, recipient_id, status, created_at, updated_at`

func scanConnection(row pgx.Row) (job.Connection, error) {
	var found job.Connection
	err := row.Scan(
		&found.ID,
		&found.RequesterID,
		&found.RecipientID,
		&found.Status,
		&found.CreatedAt,
		&found.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return job.Connection{}, job.ErrConnectionNotFound
		}
		return job.Connection{}, err
	}
	return found, nil
}

// Create implements job.ConnectionRepository.
func (r *connectionRepositoryImpl) Create(ctx context.Context, connection job.Connection) (job.Connection, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO connections (requester_id, recipient_id, status)
		VALUES ($1, $2, $3)
		RETURNING ` + connectionColumns

	return scanConnection(q.QueryRow(ctx, query,
		connection.RequesterID,
		connection.RecipientID,
		connection.Status,
	))
}

// GetByID implements job.ConnectionRepository.
func (r *connectionRepositoryImpl) GetByID(ctx context.Context, id string) (job.Connection, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + connectionColumns + ` FROM connections WHERE id = $1`
	return scanConnection(q.QueryRow(ctx, query, id))
}

// ExistsBetween implements job.ConnectionRepository.
func (r *connectionRepositoryImpl) ExistsBetween(ctx context.Context, userA, userB string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx, `
		SELECT EXISTS(
			SELECT 1 FROM connections
			WHERE (requester_id = $1 AND recipient_id = $2)
			   OR (requester_id = $2 AND recipient_id = $1)
		)`, userA, userB,
	).Scan(&exists)
	return exists, err
}

// Accept implements job.ConnectionRepository.
func (r *connectionRepositoryImpl) Accept(ctx context.Context, id string) (job.Connection, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE connections
		SET status = 'accepted', updated_at = NOW()
		WHERE id = $1
		RETURNING ` + connectionColumns

	return scanConnection(q.QueryRow(ctx, query, id))
}

// ListByUser implements job.ConnectionRepository.
func (r *connectionRepositoryImpl) ListByUser(ctx context.Context, userID string) ([]job.Connection, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + connectionColumns + `
		FROM connections
		WHERE requester_id = $1 OR recipient_id = $1
		ORDER BY created_at DESC`

	rows, err := q.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []job.Connection
	for rows.Next() {
		conn, err := scanConnection(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, conn)
	}
	return result, rows.Err()
}
