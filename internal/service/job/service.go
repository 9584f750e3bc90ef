package job

import (
	"context"
	"log/slog"
	"time"

	"github.com/crewdesk-app/crewdesk-backend-go/internal/domain/job"
)

type jobServiceImpl struct {
	postRepo        job.PostRepository
	applicationRepo job.ApplicationRepository
	connectionRepo  job.ConnectionRepository
	logger          *slog.Logger
}

func NewJobService(
	postRepo job.PostRepository,
	applicationRepo job.ApplicationRepository,
	connectionRepo job.ConnectionRepository,
	logger *slog.Logger,
) job.JobService {
	return &jobServiceImpl{
		postRepo:        postRepo,
		applicationRepo: applicationRepo,
		connectionRepo:  connectionRepo,
		logger:          logger,
	}
}

// CreatePost implements job.JobService.
func (s *jobServiceImpl) CreatePost(ctx context.Context, createdBy string, req job.CreatePostRequest) (job.PostResponse, error) {
	if err := req.Validate(); err != nil {
		return job.PostResponse{}, err
	}

	created, err := s.postRepo.Create(ctx, job.Post{
		BusinessID:  req.BusinessID,
		Title:       req.Title,
		Description: req.Description,
		Position:    req.Position,
		HourlyRate:  req.HourlyRate,
		Status:      job.PostOpen,
		CreatedBy:   createdBy,
	})
	if err != nil {
		return job.PostResponse{}, err
	}
	return toPostResponse(created), nil
}

// GetPost implements job.JobService.
func (s *jobServiceImpl) GetPost(ctx context.Context, id string) (job.PostResponse, error) {
	found, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return job.PostResponse{}, err
	}
	return toPostResponse(found), nil
}

// ListOpenPosts implements job.JobService.
func (s *jobServiceImpl) ListOpenPosts(ctx context.Context, limit int) ([]job.PostResponse, error) {
	if limit <= 0 || limit > 100 {
		limit = 25
	}
	posts, err := s.postRepo.ListOpen(ctx, limit)
	if err != nil {
		return nil, err
	}
	return toPostResponses(posts), nil
}

// ListBusinessPosts implements job.JobService.
func (s *jobServiceImpl) ListBusinessPosts(ctx context.Context, businessID string) ([]job.PostResponse, error) {
	posts, err := s.postRepo.ListByBusiness(ctx, businessID)
	if err != nil {
		return nil, err
	}
	return toPostResponses(posts), nil
}

// getOwnedPost loads a post and hides rows outside the caller's
// authorized business behind not-found.
func (s *jobServiceImpl) getOwnedPost(ctx context.Context, businessID, id string) (job.Post, error) {
	found, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return job.Post{}, err
	}
	if found.BusinessID != businessID {
		return job.Post{}, job.ErrPostNotFound
	}
	return found, nil
}

// ClosePost implements job.JobService.
func (s *jobServiceImpl) ClosePost(ctx context.Context, businessID, id string) (job.PostResponse, error) {
	found, err := s.getOwnedPost(ctx, businessID, id)
	if err != nil {
		return job.PostResponse{}, err
	}
	if found.Status == job.PostClosed {
		return job.PostResponse{}, job.ErrPostClosed
	}
	if err := s.postRepo.UpdateStatus(ctx, id, job.PostClosed); err != nil {
		return job.PostResponse{}, err
	}
	found.Status = job.PostClosed
	return toPostResponse(found), nil
}

// Apply implements job.JobService. One application per applicant per post.
func (s *jobServiceImpl) Apply(ctx context.Context, postID, applicantID string, req job.ApplyRequest) (job.ApplicationResponse, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return job.ApplicationResponse{}, err
	}
	if post.Status != job.PostOpen {
		return job.ApplicationResponse{}, job.ErrPostClosed
	}

	exists, err := s.applicationRepo.ExistsByPostAndApplicant(ctx, postID, applicantID)
	if err != nil {
		return job.ApplicationResponse{}, err
	}
	if exists {
		return job.ApplicationResponse{}, job.ErrAlreadyApplied
	}

	created, err := s.applicationRepo.Create(ctx, job.Application{
		PostID:      postID,
		ApplicantID: applicantID,
		Message:     req.Message,
		Status:      job.ApplicationPending,
	})
	if err != nil {
		return job.ApplicationResponse{}, err
	}
	return toApplicationResponse(created), nil
}

// ListApplications implements job.JobService.
func (s *jobServiceImpl) ListApplications(ctx context.Context, businessID, postID string) ([]job.ApplicationResponse, error) {
	if _, err := s.getOwnedPost(ctx, businessID, postID); err != nil {
		return nil, err
	}
	applications, err := s.applicationRepo.ListByPost(ctx, postID)
	if err != nil {
		return nil, err
	}

	responses := make([]job.ApplicationResponse, 0, len(applications))
	for _, a := range applications {
		responses = append(responses, toApplicationResponse(a))
	}
	return responses, nil
}

// DecideApplication implements job.JobService. The application is
// addressed through its post's business so one business cannot decide
// another's applicants.
func (s *jobServiceImpl) DecideApplication(ctx context.Context, businessID, id string, accept bool) (job.ApplicationResponse, error) {
	found, err := s.applicationRepo.GetByID(ctx, id)
	if err != nil {
		return job.ApplicationResponse{}, err
	}
	if _, err := s.getOwnedPost(ctx, businessID, found.PostID); err != nil {
		return job.ApplicationResponse{}, job.ErrApplicationNotFound
	}

	status := job.ApplicationRejected
	if accept {
		status = job.ApplicationAccepted
	}
	decided, err := s.applicationRepo.UpdateStatus(ctx, id, status)
	if err != nil {
		return job.ApplicationResponse{}, err
	}
	return toApplicationResponse(decided), nil
}

// Connect implements job.JobService.
func (s *jobServiceImpl) Connect(ctx context.Context, requesterID string, req job.CreateConnectionRequest) (job.ConnectionResponse, error) {
	if err := req.Validate(); err != nil {
		return job.ConnectionResponse{}, err
	}
	if requesterID == req.RecipientID {
		return job.ConnectionResponse{}, job.ErrConnectionSelf
	}

	exists, err := s.connectionRepo.ExistsBetween(ctx, requesterID, req.RecipientID)
	if err != nil {
		return job.ConnectionResponse{}, err
	}
	if exists {
		return job.ConnectionResponse{}, job.ErrConnectionExists
	}

	created, err := s.connectionRepo.Create(ctx, job.Connection{
		RequesterID: requesterID,
		RecipientID: req.RecipientID,
		Status:      job.ConnectionPending,
	})
	if err != nil {
		return job.ConnectionResponse{}, err
	}
	return toConnectionResponse(created), nil
}

// AcceptConnection implements job.JobService.
func (s *jobServiceImpl) AcceptConnection(ctx context.Context, id, userID string) (job.ConnectionResponse, error) {
	found, err := s.connectionRepo.GetByID(ctx, id)
	if err != nil {
		return job.ConnectionResponse{}, err
	}
	if found.RecipientID != userID {
		return job.ConnectionResponse{}, job.ErrConnectionNotRecipient
	}

	accepted, err := s.connectionRepo.Accept(ctx, id)
	if err != nil {
		return job.ConnectionResponse{}, err
	}
	return toConnectionResponse(accepted), nil
}

// ListConnections implements job.JobService.
func (s *jobServiceImpl) ListConnections(ctx context.Context, userID string) ([]job.ConnectionResponse, error) {
	connections, err := s.connectionRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	responses := make([]job.ConnectionResponse, 0, len(connections))
	for _, c := range connections {
		responses = append(responses, toConnectionResponse(c))
	}
	return responses, nil
}

func toPostResponse(p job.Post) job.PostResponse {
	return job.PostResponse{
		ID:          p.ID,
		BusinessID:  p.BusinessID,
		Title:       p.Title,
		Description: p.Description,
		Position:    p.Position,
		HourlyRate:  p.HourlyRate,
		Status:      string(p.Status),
		CreatedAt:   p.CreatedAt.Format(time.RFC3339),
	}
}

func toPostResponses(posts []job.Post) []job.PostResponse {
	responses := make([]job.PostResponse, 0, len(posts))
	for _, p := range posts {
		responses = append(responses, toPostResponse(p))
	}
	return responses
}

func toApplicationResponse(a job.Application) job.ApplicationResponse {
	return job.ApplicationResponse{
		ID:          a.ID,
		PostID:      a.PostID,
		ApplicantID: a.ApplicantID,
		Message:     a.Message,
		Status:      string(a.Status),
	}
}

func toConnectionResponse(c job.Connection) job.ConnectionResponse {
	return job.ConnectionResponse{
		ID:          c.ID,
		RequesterID: c.RequesterID,
		RecipientID: c.RecipientID,
		Status:      string(c.Status),
	}
}
