package shift

import (
	"context"
	"log/slog"
	"time"

	"github.com/crewdesk-app/crewdesk-backend-go/internal/domain/membership"
	"github.com/crewdesk-app/crewdesk-backend-go/internal/domain/shift"
	"github.com/crewdesk-app/crewdesk-backend-go/internal/pkg/database"
	"github.com/crewdesk-app/crewdesk-backend-go/internal/pkg/validator"
	"github.com/crewdesk-app/crewdesk-backend-go/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
)

type shiftServiceImpl struct {
	db             *database.DB
	shiftRepo      shift.ShiftRepository
	swapRepo       shift.SwapRepository
	membershipRepo membership.MembershipRepository
	logger         *slog.Logger
}

func NewShiftService(
	db *database.DB,
	shiftRepo shift.ShiftRepository,
	swapRepo shift.SwapRepository,
	membershipRepo membership.MembershipRepository,
	logger *slog.Logger,
) shift.ShiftService {
	return &shiftServiceImpl{
		db:             db,
		shiftRepo:      shiftRepo,
		swapRepo:       swapRepo,
		membershipRepo: membershipRepo,
		logger:         logger,
	}
}

// Create implements shift.ShiftService. New shifts start as drafts.
func (s *shiftServiceImpl) Create(ctx context.Context, req shift.CreateShiftRequest) (shift.ShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.ShiftResponse{}, err
	}
	startsAt, endsAt := req.Window()

	if req.AssigneeID != nil {
		isMember, err := s.membershipRepo.ExistsByUserAndBusiness(ctx, *req.AssigneeID, req.BusinessID)
		if err != nil {
			return shift.ShiftResponse{}, err
		}
		if !isMember {
			return shift.ShiftResponse{}, membership.ErrMembershipNotFound
		}
	}

	created, err := s.shiftRepo.Create(ctx, shift.Shift{
		BusinessID: req.BusinessID,
		AssigneeID: req.AssigneeID,
		Position:   req.Position,
		StartsAt:   startsAt,
		EndsAt:     endsAt,
		Status:     shift.StatusDraft,
		Note:       req.Note,
	})
	if err != nil {
		return shift.ShiftResponse{}, err
	}
	return toShiftResponse(created), nil
}

// getOwned loads a shift and hides rows outside the caller's
// authorized business behind not-found.
func (s *shiftServiceImpl) getOwned(ctx context.Context, businessID, id string) (shift.Shift, error) {
	found, err := s.shiftRepo.GetByID(ctx, id)
	if err != nil {
		return shift.Shift{}, err
	}
	if found.BusinessID != businessID {
		return shift.Shift{}, shift.ErrShiftNotFound
	}
	return found, nil
}

// GetByID implements shift.ShiftService.
func (s *shiftServiceImpl) GetByID(ctx context.Context, businessID, id string) (shift.ShiftResponse, error) {
	found, err := s.getOwned(ctx, businessID, id)
	if err != nil {
		return shift.ShiftResponse{}, err
	}
	return toShiftResponse(found), nil
}

// ListByBusiness implements shift.ShiftService.
func (s *shiftServiceImpl) ListByBusiness(ctx context.Context, businessID string, from, to time.Time) ([]shift.ShiftResponse, error) {
	shifts, err := s.shiftRepo.ListByBusiness(ctx, businessID, from, to)
	if err != nil {
		return nil, err
	}

	responses := make([]shift.ShiftResponse, 0, len(shifts))
	for _, sh := range shifts {
		responses = append(responses, toShiftResponse(sh))
	}
	return responses, nil
}

// Update implements shift.ShiftService.
func (s *shiftServiceImpl) Update(ctx context.Context, businessID, id string, req shift.UpdateShiftRequest) (shift.ShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.ShiftResponse{}, err
	}

	existing, err := s.getOwned(ctx, businessID, id)
	if err != nil {
		return shift.ShiftResponse{}, err
	}

	if req.AssigneeID != nil {
		isMember, err := s.membershipRepo.ExistsByUserAndBusiness(ctx, *req.AssigneeID, existing.BusinessID)
		if err != nil {
			return shift.ShiftResponse{}, err
		}
		if !isMember {
			return shift.ShiftResponse{}, membership.ErrMembershipNotFound
		}
		existing.AssigneeID = req.AssigneeID
	}
	if req.Position != nil {
		existing.Position = *req.Position
	}
	if req.StartsAt != nil {
		existing.StartsAt, _ = validator.IsValidDateTime(*req.StartsAt)
	}
	if req.EndsAt != nil {
		existing.EndsAt, _ = validator.IsValidDateTime(*req.EndsAt)
	}
	if req.Note != nil {
		existing.Note = req.Note
	}
	if !existing.EndsAt.After(existing.StartsAt) {
		return shift.ShiftResponse{}, shift.ErrInvalidShiftWindow
	}

	updated, err := s.shiftRepo.Update(ctx, existing)
	if err != nil {
		return shift.ShiftResponse{}, err
	}
	return toShiftResponse(updated), nil
}

// Publish implements shift.ShiftService.
func (s *shiftServiceImpl) Publish(ctx context.Context, businessID, id string) (shift.ShiftResponse, error) {
	return s.transition(ctx, businessID, id, shift.StatusPublished, func(current shift.ShiftStatus) error {
		switch current {
		case shift.StatusDraft:
			return nil
		case shift.StatusPublished:
			return shift.ErrShiftAlreadyPublished
		case shift.StatusOpen:
			return shift.ErrShiftAlreadyOpen
		default:
			return shift.ErrShiftAlreadyClosed
		}
	})
}

// Open implements shift.ShiftService.
func (s *shiftServiceImpl) Open(ctx context.Context, businessID, id string) (shift.ShiftResponse, error) {
	return s.transition(ctx, businessID, id, shift.StatusOpen, func(current shift.ShiftStatus) error {
		switch current {
		case shift.StatusPublished:
			return nil
		case shift.StatusOpen:
			return shift.ErrShiftAlreadyOpen
		case shift.StatusClosed:
			return shift.ErrShiftAlreadyClosed
		default:
			return shift.ErrShiftNotPublished
		}
	})
}

// Close implements shift.ShiftService.
func (s *shiftServiceImpl) Close(ctx context.Context, businessID, id string) (shift.ShiftResponse, error) {
	return s.transition(ctx, businessID, id, shift.StatusClosed, func(current shift.ShiftStatus) error {
		switch current {
		case shift.StatusOpen:
			return nil
		case shift.StatusClosed:
			return shift.ErrShiftAlreadyClosed
		default:
			return shift.ErrShiftNotOpen
		}
	})
}

// transition loads a shift, checks the status move and persists it.
func (s *shiftServiceImpl) transition(ctx context.Context, businessID, id string, target shift.ShiftStatus, check func(shift.ShiftStatus) error) (shift.ShiftResponse, error) {
	existing, err := s.getOwned(ctx, businessID, id)
	if err != nil {
		return shift.ShiftResponse{}, err
	}
	if err := check(existing.Status); err != nil {
		return shift.ShiftResponse{}, err
	}
	if err := s.shiftRepo.UpdateStatus(ctx, id, target); err != nil {
		return shift.ShiftResponse{}, err
	}
	existing.Status = target
	return toShiftResponse(existing), nil
}

// Delete implements shift.ShiftService.
func (s *shiftServiceImpl) Delete(ctx context.Context, businessID, id string) error {
	if _, err := s.getOwned(ctx, businessID, id); err != nil {
		return err
	}
	return s.shiftRepo.Delete(ctx, id)
}

// RequestSwap implements shift.ShiftService. Only the current assignee
// may put their shift up for a swap, and the counterpart must belong to
// the same business.
func (s *shiftServiceImpl) RequestSwap(ctx context.Context, businessID, requesterID string, req shift.CreateSwapRequest) (shift.SwapResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.SwapResponse{}, err
	}

	target, err := s.getOwned(ctx, businessID, req.ShiftID)
	if err != nil {
		return shift.SwapResponse{}, err
	}
	if target.AssigneeID == nil || *target.AssigneeID != requesterID {
		return shift.SwapResponse{}, shift.ErrSwapNotShiftAssignee
	}

	isMember, err := s.membershipRepo.ExistsByUserAndBusiness(ctx, req.CounterpartID, target.BusinessID)
	if err != nil {
		return shift.SwapResponse{}, err
	}
	if !isMember {
		return shift.SwapResponse{}, shift.ErrSwapCounterpartMissing
	}

	created, err := s.swapRepo.Create(ctx, shift.SwapRequest{
		BusinessID:    target.BusinessID,
		ShiftID:       req.ShiftID,
		RequesterID:   requesterID,
		CounterpartID: req.CounterpartID,
		Reason:        req.Reason,
		Status:        shift.SwapPending,
	})
	if err != nil {
		return shift.SwapResponse{}, err
	}
	return toSwapResponse(created), nil
}

// ListSwaps implements shift.ShiftService.
func (s *shiftServiceImpl) ListSwaps(ctx context.Context, businessID string, status *shift.SwapStatus) ([]shift.SwapResponse, error) {
	swaps, err := s.swapRepo.ListByBusiness(ctx, businessID, status)
	if err != nil {
		return nil, err
	}

	responses := make([]shift.SwapResponse, 0, len(swaps))
	for _, sw := range swaps {
		responses = append(responses, toSwapResponse(sw))
	}
	return responses, nil
}

// DecideSwap implements shift.ShiftService. An approval reassigns the
// shift to the counterpart in the same transaction as the decision.
func (s *shiftServiceImpl) DecideSwap(ctx context.Context, businessID, id string, approve bool, decidedBy string) (shift.SwapResponse, error) {
	pending, err := s.swapRepo.GetByID(ctx, id)
	if err != nil {
		return shift.SwapResponse{}, err
	}
	if pending.BusinessID != businessID {
		return shift.SwapResponse{}, shift.ErrSwapNotFound
	}
	if pending.Status != shift.SwapPending {
		return shift.SwapResponse{}, shift.ErrSwapAlreadyProcessed
	}

	status := shift.SwapDeclined
	if approve {
		status = shift.SwapApproved
	}

	var decided shift.SwapRequest
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := postgresql.TxContext(ctx, tx)

		var err error
		decided, err = s.swapRepo.Decide(txCtx, id, status, decidedBy)
		if err != nil {
			return err
		}
		if approve {
			return s.shiftRepo.Reassign(txCtx, pending.ShiftID, pending.CounterpartID)
		}
		return nil
	})
	if err != nil {
		return shift.SwapResponse{}, err
	}

	s.logger.Info("swap request decided",
		slog.String("swap_id", id),
		slog.String("status", string(status)),
		slog.String("decided_by", decidedBy),
	)
	return toSwapResponse(decided), nil
}

func toShiftResponse(sh shift.Shift) shift.ShiftResponse {
	return shift.ShiftResponse{
		ID:         sh.ID,
		BusinessID: sh.BusinessID,
		AssigneeID: sh.AssigneeID,
		Position:   sh.Position,
		StartsAt:   sh.StartsAt.Format(time.RFC3339),
		EndsAt:     sh.EndsAt.Format(time.RFC3339),
		Status:     string(sh.Status),
		Note:       sh.Note,
	}
}

func toSwapResponse(sw shift.SwapRequest) shift.SwapResponse {
	return shift.SwapResponse{
		ID:            sw.ID,
		BusinessID:    sw.BusinessID,
		ShiftID:       sw.ShiftID,
		RequesterID:   sw.RequesterID,
		CounterpartID: sw.CounterpartID,
		Reason:        sw.Reason,
		Status:        string(sw.Status),
		DecidedBy:     sw.DecidedBy,
	}
}
