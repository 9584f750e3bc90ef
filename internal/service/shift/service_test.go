package shift

import (
	"context"
	"io"
	"log/slog"
	"strconv"
	"testing"
	"time"

	"github.com/crewdesk-app/crewdesk-backend-go/internal/domain/membership"
	"github.com/crewdesk-app/crewdesk-backend-go/internal/domain/shift"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testBusinessID = "biz-1"
	testAssignee   = "user-assignee"
	testOther      = "user-other"
)

type fakeShiftRepo struct {
	shifts map[string]shift.Shift
	nextID int
}

func (f *fakeShiftRepo) Create(ctx context.Context, newShift shift.Shift) (shift.Shift, error) {
	f.nextID++
	newShift.ID = "shift-" + strconv.Itoa(f.nextID)
	f.shifts[newShift.ID] = newShift
	return newShift, nil
}

func (f *fakeShiftRepo) GetByID(ctx context.Context, id string) (shift.Shift, error) {
	sh, ok := f.shifts[id]
	if !ok {
		return shift.Shift{}, shift.ErrShiftNotFound
	}
	return sh, nil
}

func (f *fakeShiftRepo) ListByBusiness(ctx context.Context, businessID string, from, to time.Time) ([]shift.Shift, error) {
	return nil, nil
}

func (f *fakeShiftRepo) ListByAssignee(ctx context.Context, businessID, userID string, from, to time.Time) ([]shift.Shift, error) {
	return nil, nil
}

func (f *fakeShiftRepo) Update(ctx context.Context, updated shift.Shift) (shift.Shift, error) {
	f.shifts[updated.ID] = updated
	return updated, nil
}

func (f *fakeShiftRepo) UpdateStatus(ctx context.Context, id string, status shift.ShiftStatus) error {
	sh, ok := f.shifts[id]
	if !ok {
		return shift.ErrShiftNotFound
	}
	sh.Status = status
	f.shifts[id] = sh
	return nil
}

func (f *fakeShiftRepo) Reassign(ctx context.Context, id string, assigneeID string) error {
	sh, ok := f.shifts[id]
	if !ok {
		return shift.ErrShiftNotFound
	}
	sh.AssigneeID = &assigneeID
	f.shifts[id] = sh
	return nil
}

func (f *fakeShiftRepo) Delete(ctx context.Context, id string) error {
	delete(f.shifts, id)
	return nil
}

type fakeSwapRepo struct {
	swaps map[string]shift.SwapRequest
}

func (f *fakeSwapRepo) Create(ctx context.Context, req shift.SwapRequest) (shift.SwapRequest, error) {
	req.ID = "swap-" + strconv.Itoa(len(f.swaps)+1)
	f.swaps[req.ID] = req
	return req, nil
}

func (f *fakeSwapRepo) GetByID(ctx context.Context, id string) (shift.SwapRequest, error) {
	sw, ok := f.swaps[id]
	if !ok {
		return shift.SwapRequest{}, shift.ErrSwapNotFound
	}
	return sw, nil
}

func (f *fakeSwapRepo) ListByBusiness(ctx context.Context, businessID string, status *shift.SwapStatus) ([]shift.SwapRequest, error) {
	return nil, nil
}

func (f *fakeSwapRepo) Decide(ctx context.Context, id string, status shift.SwapStatus, decidedBy string) (shift.SwapRequest, error) {
	sw, ok := f.swaps[id]
	if !ok {
		return shift.SwapRequest{}, shift.ErrSwapNotFound
	}
	sw.Status = status
	sw.DecidedBy = &decidedBy
	f.swaps[id] = sw
	return sw, nil
}

type memberSet map[string]struct{}

func (m memberSet) Create(ctx context.Context, mem membership.Membership) (membership.Membership, error) {
	return mem, nil
}

func (m memberSet) GetByUserAndBusiness(ctx context.Context, userID, businessID string) (membership.Membership, error) {
	if _, ok := m[userID+"/"+businessID]; !ok {
		return membership.Membership{}, membership.ErrMembershipNotFound
	}
	return membership.Membership{UserID: userID, BusinessID: businessID}, nil
}

func (m memberSet) ListByUser(ctx context.Context, userID string) ([]membership.Membership, error) {
	return nil, nil
}

func (m memberSet) ListByBusiness(ctx context.Context, businessID string) ([]membership.Membership, error) {
	return nil, nil
}

func (m memberSet) UpdateRole(ctx context.Context, userID, businessID string, roleType membership.RoleType, role string) error {
	return nil
}

func (m memberSet) Delete(ctx context.Context, userID, businessID string) error {
	return nil
}

func (m memberSet) ExistsByUserAndBusiness(ctx context.Context, userID, businessID string) (bool, error) {
	_, ok := m[userID+"/"+businessID]
	return ok, nil
}

func testShiftService() (shift.ShiftService, *fakeShiftRepo) {
	shiftRepo := &fakeShiftRepo{shifts: make(map[string]shift.Shift)}
	swapRepo := &fakeSwapRepo{swaps: make(map[string]shift.SwapRequest)}
	members := memberSet{
		testAssignee + "/" + testBusinessID: {},
		testOther + "/" + testBusinessID:    {},
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewShiftService(nil, shiftRepo, swapRepo, members, logger), shiftRepo
}

func draftShift(t *testing.T, service shift.ShiftService) shift.ShiftResponse {
	t.Helper()
	assignee := testAssignee
	created, err := service.Create(context.Background(), shift.CreateShiftRequest{
		BusinessID: testBusinessID,
		AssigneeID: &assignee,
		Position:   "bartender",
		StartsAt:   "2026-09-01T18:00:00Z",
		EndsAt:     "2026-09-02T02:00:00Z",
	})
	require.NoError(t, err)
	return created
}

func TestCreate_StartsAsDraft(t *testing.T) {
	service, _ := testShiftService()

	created := draftShift(t, service)
	assert.Equal(t, string(shift.StatusDraft), created.Status)
}

func TestCreate_AssigneeMustBeMember(t *testing.T) {
	service, _ := testShiftService()

	outsider := "user-outsider"
	_, err := service.Create(context.Background(), shift.CreateShiftRequest{
		BusinessID: testBusinessID,
		AssigneeID: &outsider,
		Position:   "bartender",
		StartsAt:   "2026-09-01T18:00:00Z",
		EndsAt:     "2026-09-02T02:00:00Z",
	})
	assert.ErrorIs(t, err, membership.ErrMembershipNotFound)
}

func TestCreate_WindowMustBePositive(t *testing.T) {
	service, _ := testShiftService()

	_, err := service.Create(context.Background(), shift.CreateShiftRequest{
		BusinessID: testBusinessID,
		Position:   "bartender",
		StartsAt:   "2026-09-02T02:00:00Z",
		EndsAt:     "2026-09-01T18:00:00Z",
	})
	assert.Error(t, err)
}

func TestLifecycle_DraftPublishOpenClose(t *testing.T) {
	service, _ := testShiftService()
	ctx := context.Background()
	created := draftShift(t, service)

	published, err := service.Publish(ctx, testBusinessID, created.ID)
	require.NoError(t, err)
	assert.Equal(t, string(shift.StatusPublished), published.Status)

	opened, err := service.Open(ctx, testBusinessID, created.ID)
	require.NoError(t, err)
	assert.Equal(t, string(shift.StatusOpen), opened.Status)

	closed, err := service.Close(ctx, testBusinessID, created.ID)
	require.NoError(t, err)
	assert.Equal(t, string(shift.StatusClosed), closed.Status)
}

func TestLifecycle_IllegalTransitions(t *testing.T) {
	service, _ := testShiftService()
	ctx := context.Background()
	created := draftShift(t, service)

	// Draft shifts cannot be opened or closed.
	_, err := service.Open(ctx, testBusinessID, created.ID)
	assert.ErrorIs(t, err, shift.ErrShiftNotPublished)
	_, err = service.Close(ctx, testBusinessID, created.ID)
	assert.ErrorIs(t, err, shift.ErrShiftNotOpen)

	_, err = service.Publish(ctx, testBusinessID, created.ID)
	require.NoError(t, err)
	_, err = service.Publish(ctx, testBusinessID, created.ID)
	assert.ErrorIs(t, err, shift.ErrShiftAlreadyPublished)

	_, err = service.Open(ctx, testBusinessID, created.ID)
	require.NoError(t, err)
	_, err = service.Open(ctx, testBusinessID, created.ID)
	assert.ErrorIs(t, err, shift.ErrShiftAlreadyOpen)

	_, err = service.Close(ctx, testBusinessID, created.ID)
	require.NoError(t, err)
	_, err = service.Close(ctx, testBusinessID, created.ID)
	assert.ErrorIs(t, err, shift.ErrShiftAlreadyClosed)
	_, err = service.Open(ctx, testBusinessID, created.ID)
	assert.ErrorIs(t, err, shift.ErrShiftAlreadyClosed)
	_, err = service.Publish(ctx, testBusinessID, created.ID)
	assert.ErrorIs(t, err, shift.ErrShiftAlreadyClosed)
}

func TestRequestSwap_OnlyAssignee(t *testing.T) {
	service, _ := testShiftService()
	ctx := context.Background()
	created := draftShift(t, service)

	_, err := service.RequestSwap(ctx, testBusinessID, testOther, shift.CreateSwapRequest{
		BusinessID:    testBusinessID,
		ShiftID:       created.ID,
		CounterpartID: testOther,
	})
	assert.ErrorIs(t, err, shift.ErrSwapNotShiftAssignee)

	swap, err := service.RequestSwap(ctx, testBusinessID, testAssignee, shift.CreateSwapRequest{
		BusinessID:    testBusinessID,
		ShiftID:       created.ID,
		CounterpartID: testOther,
	})
	require.NoError(t, err)
	assert.Equal(t, string(shift.SwapPending), swap.Status)
}

func TestRequestSwap_CounterpartMustBeMember(t *testing.T) {
	service, _ := testShiftService()
	created := draftShift(t, service)

	_, err := service.RequestSwap(context.Background(), testBusinessID, testAssignee, shift.CreateSwapRequest{
		BusinessID:    testBusinessID,
		ShiftID:       created.ID,
		CounterpartID: "user-outsider",
	})
	assert.ErrorIs(t, err, shift.ErrSwapCounterpartMissing)
}

func TestShiftOwnedByOtherBusinessIsInvisible(t *testing.T) {
	service, shiftRepo := testShiftService()
	ctx := context.Background()
	created := draftShift(t, service)

	const intruder = "biz-2"

	t.Run("get", func(t *testing.T) {
		_, err := service.GetByID(ctx, intruder, created.ID)
		assert.ErrorIs(t, err, shift.ErrShiftNotFound)
	})
	t.Run("publish", func(t *testing.T) {
		_, err := service.Publish(ctx, intruder, created.ID)
		assert.ErrorIs(t, err, shift.ErrShiftNotFound)
	})
	t.Run("delete", func(t *testing.T) {
		err := service.Delete(ctx, intruder, created.ID)
		assert.ErrorIs(t, err, shift.ErrShiftNotFound)
	})
	t.Run("swap against it", func(t *testing.T) {
		_, err := service.RequestSwap(ctx, intruder, testAssignee, shift.CreateSwapRequest{
			BusinessID:    intruder,
			ShiftID:       created.ID,
			CounterpartID: testOther,
		})
		assert.ErrorIs(t, err, shift.ErrShiftNotFound)
	})

	// The owning business's row is untouched.
	stored := shiftRepo.shifts[created.ID]
	assert.Equal(t, shift.StatusDraft, stored.Status)
}

func TestDecideSwap_OtherBusinessSwapInvisible(t *testing.T) {
	service, _ := testShiftService()
	ctx := context.Background()
	created := draftShift(t, service)

	swap, err := service.RequestSwap(ctx, testBusinessID, testAssignee, shift.CreateSwapRequest{
		BusinessID:    testBusinessID,
		ShiftID:       created.ID,
		CounterpartID: testOther,
	})
	require.NoError(t, err)

	_, err = service.DecideSwap(ctx, "biz-2", swap.ID, true, testOther)
	assert.ErrorIs(t, err, shift.ErrSwapNotFound)
}
