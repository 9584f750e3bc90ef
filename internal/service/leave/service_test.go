package leave

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/crewdesk-app/crewdesk-backend-go/internal/domain/leave"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLeaveRequestRepo struct {
	requests map[string]leave.LeaveRequest
}

func (f *fakeLeaveRequestRepo) Create(ctx context.Context, req leave.LeaveRequest) (leave.LeaveRequest, error) {
	f.requests[req.ID] = req
	return req, nil
}

func (f *fakeLeaveRequestRepo) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	req, ok := f.requests[id]
	if !ok {
		return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
	}
	return req, nil
}

func (f *fakeLeaveRequestRepo) ListByUser(ctx context.Context, businessID, userID string) ([]leave.LeaveRequest, error) {
	return nil, nil
}

func (f *fakeLeaveRequestRepo) ListByBusiness(ctx context.Context, businessID string, status *leave.LeaveStatus) ([]leave.LeaveRequest, error) {
	return nil, nil
}

func (f *fakeLeaveRequestRepo) Decide(ctx context.Context, id string, status leave.LeaveStatus, decidedBy string) (leave.LeaveRequest, error) {
	req, ok := f.requests[id]
	if !ok {
		return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
	}
	req.Status = status
	req.DecidedBy = &decidedBy
	f.requests[id] = req
	return req, nil
}

func testLeaveService() (leave.LeaveService, *fakeLeaveRequestRepo) {
	requestRepo := &fakeLeaveRequestRepo{requests: make(map[string]leave.LeaveRequest)}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewLeaveService(nil, requestRepo, nil, nil, logger), requestRepo
}

func TestDecide_Decline(t *testing.T) {
	service, requestRepo := testLeaveService()
	requestRepo.requests["lr-1"] = leave.LeaveRequest{
		ID:         "lr-1",
		BusinessID: "biz-1",
		UserID:     "user-1",
		Type:       leave.TypeAnnual,
		Days:       3,
		Status:     leave.StatusPending,
	}

	decided, err := service.Decide(context.Background(), "biz-1", "lr-1", false, "user-manager")
	require.NoError(t, err)
	assert.Equal(t, string(leave.StatusDeclined), decided.Status)
}

func TestDecide_AlreadyProcessed(t *testing.T) {
	service, requestRepo := testLeaveService()
	requestRepo.requests["lr-1"] = leave.LeaveRequest{
		ID:         "lr-1",
		BusinessID: "biz-1",
		Status:     leave.StatusApproved,
	}

	_, err := service.Decide(context.Background(), "biz-1", "lr-1", false, "user-manager")
	assert.ErrorIs(t, err, leave.ErrLeaveRequestAlreadyProcessed)
}

func TestDecide_OtherBusinessRequestInvisible(t *testing.T) {
	service, requestRepo := testLeaveService()
	requestRepo.requests["lr-1"] = leave.LeaveRequest{
		ID:         "lr-1",
		BusinessID: "biz-2",
		Status:     leave.StatusPending,
	}

	_, err := service.Decide(context.Background(), "biz-1", "lr-1", false, "user-manager")
	assert.ErrorIs(t, err, leave.ErrLeaveRequestNotFound)

	assert.Equal(t, leave.StatusPending, requestRepo.requests["lr-1"].Status)
}
