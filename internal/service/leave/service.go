package leave

import (
	"context"
	"log/slog"
	"time"

	"github.com/crewdesk-app/crewdesk-backend-go/internal/domain/leave"
	"github.com/crewdesk-app/crewdesk-backend-go/internal/domain/membership"
	"github.com/crewdesk-app/crewdesk-backend-go/internal/pkg/database"
	"github.com/crewdesk-app/crewdesk-backend-go/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
)

// defaultAllocationDays seeds a balance row the first time a member's
// balance is touched in a year.
const defaultAllocationDays = 20

type leaveServiceImpl struct {
	db             *database.DB
	requestRepo    leave.LeaveRequestRepository
	balanceRepo    leave.LeaveBalanceRepository
	membershipRepo membership.MembershipRepository
	logger         *slog.Logger
}

func NewLeaveService(
	db *database.DB,
	requestRepo leave.LeaveRequestRepository,
	balanceRepo leave.LeaveBalanceRepository,
	membershipRepo membership.MembershipRepository,
	logger *slog.Logger,
) leave.LeaveService {
	return &leaveServiceImpl{
		db:             db,
		requestRepo:    requestRepo,
		balanceRepo:    balanceRepo,
		membershipRepo: membershipRepo,
		logger:         logger,
	}
}

// Request implements leave.LeaveService. The balance is checked up
// front for annual leave so an obviously unfillable request fails fast;
// the authoritative deduction happens at approval.
func (s *leaveServiceImpl) Request(ctx context.Context, userID string, req leave.CreateLeaveRequest) (leave.LeaveRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequestResponse{}, err
	}
	startDate, endDate := req.DateRange()

	isMember, err := s.membershipRepo.ExistsByUserAndBusiness(ctx, userID, req.BusinessID)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}
	if !isMember {
		return leave.LeaveRequestResponse{}, membership.ErrMembershipNotFound
	}

	days := req.DayCount()
	if leave.LeaveType(req.Type) == leave.TypeAnnual {
		balance, err := s.currentBalance(ctx, req.BusinessID, userID, startDate.Year())
		if err != nil {
			return leave.LeaveRequestResponse{}, err
		}
		if balance.Remaining() < days {
			return leave.LeaveRequestResponse{}, leave.ErrInsufficientBalance
		}
	}

	created, err := s.requestRepo.Create(ctx, leave.LeaveRequest{
		BusinessID: req.BusinessID,
		UserID:     userID,
		Type:       leave.LeaveType(req.Type),
		StartDate:  startDate,
		EndDate:    endDate,
		Days:       days,
		Reason:     req.Reason,
		Status:     leave.StatusPending,
	})
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}
	return toLeaveResponse(created), nil
}

// ListMine implements leave.LeaveService.
func (s *leaveServiceImpl) ListMine(ctx context.Context, businessID, userID string) ([]leave.LeaveRequestResponse, error) {
	requests, err := s.requestRepo.ListByUser(ctx, businessID, userID)
	if err != nil {
		return nil, err
	}
	return toLeaveResponses(requests), nil
}

// ListByBusiness implements leave.LeaveService.
func (s *leaveServiceImpl) ListByBusiness(ctx context.Context, businessID string, status *leave.LeaveStatus) ([]leave.LeaveRequestResponse, error) {
	requests, err := s.requestRepo.ListByBusiness(ctx, businessID, status)
	if err != nil {
		return nil, err
	}
	return toLeaveResponses(requests), nil
}

// Decide implements leave.LeaveService. Approving an annual request
// deducts the days from the balance in the same transaction as the
// status change, so a balance can never go stale against its requests.
func (s *leaveServiceImpl) Decide(ctx context.Context, businessID, id string, approve bool, decidedBy string) (leave.LeaveRequestResponse, error) {
	pending, err := s.requestRepo.GetByID(ctx, id)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}
	if pending.BusinessID != businessID {
		return leave.LeaveRequestResponse{}, leave.ErrLeaveRequestNotFound
	}
	if pending.Status != leave.StatusPending {
		return leave.LeaveRequestResponse{}, leave.ErrLeaveRequestAlreadyProcessed
	}

	if !approve {
		declined, err := s.requestRepo.Decide(ctx, id, leave.StatusDeclined, decidedBy)
		if err != nil {
			return leave.LeaveRequestResponse{}, err
		}
		return toLeaveResponse(declined), nil
	}

	var approved leave.LeaveRequest
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := postgresql.TxContext(ctx, tx)

		if pending.Type == leave.TypeAnnual {
			balance, err := s.currentBalance(txCtx, pending.BusinessID, pending.UserID, pending.StartDate.Year())
			if err != nil {
				return err
			}
			if balance.Remaining() < pending.Days {
				return leave.ErrInsufficientBalance
			}
			if _, err := s.balanceRepo.AddUsedDays(txCtx, pending.BusinessID, pending.UserID, pending.StartDate.Year(), pending.Days); err != nil {
				return err
			}
		}

		var err error
		approved, err = s.requestRepo.Decide(txCtx, id, leave.StatusApproved, decidedBy)
		return err
	})
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	s.logger.Info("leave request approved",
		slog.String("leave_id", id),
		slog.String("decided_by", decidedBy),
	)
	return toLeaveResponse(approved), nil
}

// GetBalance implements leave.LeaveService.
func (s *leaveServiceImpl) GetBalance(ctx context.Context, businessID, userID string, year int) (leave.BalanceResponse, error) {
	if year == 0 {
		year = time.Now().Year()
	}
	balance, err := s.currentBalance(ctx, businessID, userID, year)
	if err != nil {
		return leave.BalanceResponse{}, err
	}
	return toBalanceResponse(balance), nil
}

// SetAllocation implements leave.LeaveService.
func (s *leaveServiceImpl) SetAllocation(ctx context.Context, req leave.SetAllocationRequest) (leave.BalanceResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.BalanceResponse{}, err
	}

	balance, err := s.balanceRepo.SetAllocation(ctx, req.BusinessID, req.UserID, req.Year, req.AllocatedDays)
	if err != nil {
		return leave.BalanceResponse{}, err
	}
	return toBalanceResponse(balance), nil
}

// currentBalance returns the member's balance for the year, creating
// the row with the default allocation on first touch.
func (s *leaveServiceImpl) currentBalance(ctx context.Context, businessID, userID string, year int) (leave.LeaveBalance, error) {
	return s.balanceRepo.Upsert(ctx, leave.LeaveBalance{
		BusinessID:    businessID,
		UserID:        userID,
		Year:          year,
		AllocatedDays: defaultAllocationDays,
	})
}

func toLeaveResponse(r leave.LeaveRequest) leave.LeaveRequestResponse {
	return leave.LeaveRequestResponse{
		ID:         r.ID,
		BusinessID: r.BusinessID,
		UserID:     r.UserID,
		Type:       string(r.Type),
		StartDate:  r.StartDate.Format("2006-01-02"),
		EndDate:    r.EndDate.Format("2006-01-02"),
		Days:       r.Days,
		Reason:     r.Reason,
		Status:     string(r.Status),
		DecidedBy:  r.DecidedBy,
	}
}

func toLeaveResponses(requests []leave.LeaveRequest) []leave.LeaveRequestResponse {
	responses := make([]leave.LeaveRequestResponse, 0, len(requests))
	for _, r := range requests {
		responses = append(responses, toLeaveResponse(r))
	}
	return responses
}

func toBalanceResponse(b leave.LeaveBalance) leave.BalanceResponse {
	return leave.BalanceResponse{
		BusinessID:    b.BusinessID,
		UserID:        b.UserID,
		Year:          b.Year,
		AllocatedDays: b.AllocatedDays,
		UsedDays:      b.UsedDays,
		RemainingDays: b.Remaining(),
	}
}
