package attendance

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/crewdesk-app/crewdesk-backend-go/internal/domain/attendance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeOvertimeRepo struct {
	requests map[string]attendance.OvertimeRequest
}

func (f *fakeOvertimeRepo) Create(ctx context.Context, req attendance.OvertimeRequest) (attendance.OvertimeRequest, error) {
	f.requests[req.ID] = req
	return req, nil
}

func (f *fakeOvertimeRepo) GetByID(ctx context.Context, id string) (attendance.OvertimeRequest, error) {
	req, ok := f.requests[id]
	if !ok {
		return attendance.OvertimeRequest{}, attendance.ErrOvertimeNotFound
	}
	return req, nil
}

func (f *fakeOvertimeRepo) ListByBusiness(ctx context.Context, businessID string, status *attendance.OvertimeStatus) ([]attendance.OvertimeRequest, error) {
	return nil, nil
}

func (f *fakeOvertimeRepo) Decide(ctx context.Context, id string, status attendance.OvertimeStatus, decidedBy string) (attendance.OvertimeRequest, error) {
	req, ok := f.requests[id]
	if !ok {
		return attendance.OvertimeRequest{}, attendance.ErrOvertimeNotFound
	}
	req.Status = status
	req.DecidedBy = &decidedBy
	f.requests[id] = req
	return req, nil
}

func testOvertimeService() (attendance.AttendanceService, *fakeOvertimeRepo) {
	overtimeRepo := &fakeOvertimeRepo{requests: make(map[string]attendance.OvertimeRequest)}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewAttendanceService(nil, overtimeRepo, nil, nil, logger), overtimeRepo
}

func TestDecideOvertime_Approve(t *testing.T) {
	service, overtimeRepo := testOvertimeService()
	overtimeRepo.requests["ot-1"] = attendance.OvertimeRequest{
		ID:         "ot-1",
		BusinessID: "biz-1",
		UserID:     "user-1",
		Minutes:    90,
		Status:     attendance.OvertimePending,
	}

	decided, err := service.DecideOvertime(context.Background(), "biz-1", "ot-1", true, "user-manager")
	require.NoError(t, err)
	assert.Equal(t, string(attendance.OvertimeApproved), decided.Status)
}

func TestDecideOvertime_AlreadyProcessed(t *testing.T) {
	service, overtimeRepo := testOvertimeService()
	overtimeRepo.requests["ot-1"] = attendance.OvertimeRequest{
		ID:         "ot-1",
		BusinessID: "biz-1",
		Status:     attendance.OvertimeDeclined,
	}

	_, err := service.DecideOvertime(context.Background(), "biz-1", "ot-1", true, "user-manager")
	assert.ErrorIs(t, err, attendance.ErrOvertimeAlreadyProcessed)
}

func TestDecideOvertime_OtherBusinessRequestInvisible(t *testing.T) {
	service, overtimeRepo := testOvertimeService()
	overtimeRepo.requests["ot-1"] = attendance.OvertimeRequest{
		ID:         "ot-1",
		BusinessID: "biz-2",
		Status:     attendance.OvertimePending,
	}

	_, err := service.DecideOvertime(context.Background(), "biz-1", "ot-1", true, "user-manager")
	assert.ErrorIs(t, err, attendance.ErrOvertimeNotFound)

	// The owning business's request is still pending.
	assert.Equal(t, attendance.OvertimePending, overtimeRepo.requests["ot-1"].Status)
}
