package job

import "context"

type JobService interface {
	CreatePost(ctx context.Context, createdBy string, req CreatePostRequest) (PostResponse, error)
	GetPost(ctx context.Context, id string) (PostResponse, error)
	ListOpenPosts(ctx context.Context, limit int) ([]PostResponse, error)
	ListBusinessPosts(ctx context.Context, businessID string) ([]PostResponse, error)
	ClosePost(ctx context.Context, businessID, id string) (PostResponse, error)

	Apply(ctx context.Context, postID, applicantID string, req ApplyRequest) (ApplicationResponse, error)
	ListApplications(ctx context.Context, businessID, postID string) ([]ApplicationResponse, error)
	DecideApplication(ctx context.Context, businessID, id string, accept bool) (ApplicationResponse, error)

	Connect(ctx context.Context, requesterID string, req CreateConnectionRequest) (ConnectionResponse, error)
	AcceptConnection(ctx context.Context, id, userID string) (ConnectionResponse, error)
	ListConnections(ctx context.Context, userID string) ([]ConnectionResponse, error)
}
