package job

import "context"

type PostRepository interface {
	Create(ctx context.Context, post Post) (Post, error)
	GetByID(ctx context.Context, id string) (Post, error)
	ListOpen(ctx context.Context, limit int) ([]Post, error)
	ListByBusiness(ctx context.Context, businessID string) ([]Post, error)
	UpdateStatus(ctx context.Context, id string, status PostStatus) error
	Delete(ctx context.Context, id string) error
}

type ApplicationRepository interface {
	Create(ctx context.Context, application Application) (Application, error)
	GetByID(ctx context.Context, id string) (Application, error)
	ListByPost(ctx context.Context, postID string) ([]Application, error)
	ExistsByPostAndApplicant(ctx context.Context, postID, applicantID string) (bool, error)
	UpdateStatus(ctx context.Context, id string, status ApplicationStatus) (Application, error)
}

type ConnectionRepository interface {
	Create(ctx context.Context, connection Connection) (Connection, error)
	GetByID(ctx context.Context, id string) (Connection, error)
	// ExistsBetween checks both directions.
	ExistsBetween(ctx context.Context, userA, userB string) (bool, error)
	Accept(ctx context.Context, id string) (Connection, error)
	ListByUser(ctx context.Context, userID string) ([]Connection, error)
}
