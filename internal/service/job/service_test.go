package job

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/crewdesk-app/crewdesk-backend-go/internal/domain/job"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePostRepo struct {
	posts map[string]job.Post
}

func (f *fakePostRepo) Create(ctx context.Context, post job.Post) (job.Post, error) {
	f.posts[post.ID] = post
	return post, nil
}

func (f *fakePostRepo) GetByID(ctx context.Context, id string) (job.Post, error) {
	post, ok := f.posts[id]
	if !ok {
		return job.Post{}, job.ErrPostNotFound
	}
	return post, nil
}

func (f *fakePostRepo) ListOpen(ctx context.Context, limit int) ([]job.Post, error) {
	return nil, nil
}

func (f *fakePostRepo) ListByBusiness(ctx context.Context, businessID string) ([]job.Post, error) {
	return nil, nil
}

func (f *fakePostRepo) UpdateStatus(ctx context.Context, id string, status job.PostStatus) error {
	post, ok := f.posts[id]
	if !ok {
		return job.ErrPostNotFound
	}
	post.Status = status
	f.posts[id] = post
	return nil
}

func (f *fakePostRepo) Delete(ctx context.Context, id string) error {
	delete(f.posts, id)
	return nil
}

type fakeApplicationRepo struct {
	applications map[string]job.Application
}

func (f *fakeApplicationRepo) Create(ctx context.Context, application job.Application) (job.Application, error) {
	f.applications[application.ID] = application
	return application, nil
}

func (f *fakeApplicationRepo) GetByID(ctx context.Context, id string) (job.Application, error) {
	application, ok := f.applications[id]
	if !ok {
		return job.Application{}, job.ErrApplicationNotFound
	}
	return application, nil
}

func (f *fakeApplicationRepo) ListByPost(ctx context.Context, postID string) ([]job.Application, error) {
	var out []job.Application
	for _, a := range f.applications {
		if a.PostID == postID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeApplicationRepo) ExistsByPostAndApplicant(ctx context.Context, postID, applicantID string) (bool, error) {
	for _, a := range f.applications {
		if a.PostID == postID && a.ApplicantID == applicantID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeApplicationRepo) UpdateStatus(ctx context.Context, id string, status job.ApplicationStatus) (job.Application, error) {
	application, ok := f.applications[id]
	if !ok {
		return job.Application{}, job.ErrApplicationNotFound
	}
	application.Status = status
	f.applications[id] = application
	return application, nil
}

func testJobService() (job.JobService, *fakePostRepo, *fakeApplicationRepo) {
	postRepo := &fakePostRepo{posts: make(map[string]job.Post)}
	applicationRepo := &fakeApplicationRepo{applications: make(map[string]job.Application)}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewJobService(postRepo, applicationRepo, nil, logger), postRepo, applicationRepo
}

func seedPostAndApplication(postRepo *fakePostRepo, applicationRepo *fakeApplicationRepo, businessID string) {
	postRepo.posts["post-1"] = job.Post{
		ID:         "post-1",
		BusinessID: businessID,
		Title:      "Weekend bartender",
		Position:   "bartender",
		Status:     job.PostOpen,
	}
	applicationRepo.applications["app-1"] = job.Application{
		ID:          "app-1",
		PostID:      "post-1",
		ApplicantID: "user-applicant",
		Status:      job.ApplicationPending,
	}
}

func TestDecideApplication_Accept(t *testing.T) {
	service, postRepo, applicationRepo := testJobService()
	seedPostAndApplication(postRepo, applicationRepo, "biz-1")

	decided, err := service.DecideApplication(context.Background(), "biz-1", "app-1", true)
	require.NoError(t, err)
	assert.Equal(t, string(job.ApplicationAccepted), decided.Status)
}

func TestDecideApplication_OtherBusinessPostInvisible(t *testing.T) {
	service, postRepo, applicationRepo := testJobService()
	seedPostAndApplication(postRepo, applicationRepo, "biz-2")

	_, err := service.DecideApplication(context.Background(), "biz-1", "app-1", true)
	assert.ErrorIs(t, err, job.ErrApplicationNotFound)

	assert.Equal(t, job.ApplicationPending, applicationRepo.applications["app-1"].Status)
}

func TestClosePost_OtherBusinessPostInvisible(t *testing.T) {
	service, postRepo, applicationRepo := testJobService()
	seedPostAndApplication(postRepo, applicationRepo, "biz-2")

	_, err := service.ClosePost(context.Background(), "biz-1", "post-1")
	assert.ErrorIs(t, err, job.ErrPostNotFound)
	assert.Equal(t, job.PostOpen, postRepo.posts["post-1"].Status)
}

func TestListApplications_OtherBusinessPostInvisible(t *testing.T) {
	service, postRepo, applicationRepo := testJobService()
	seedPostAndApplication(postRepo, applicationRepo, "biz-2")

	_, err := service.ListApplications(context.Background(), "biz-1", "post-1")
	assert.ErrorIs(t, err, job.ErrPostNotFound)
}
