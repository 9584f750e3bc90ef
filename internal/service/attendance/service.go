package attendance

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/crewdesk-app/crewdesk-backend-go/internal/domain/attendance"
	"github.com/crewdesk-app/crewdesk-backend-go/internal/domain/coin"
	"github.com/crewdesk-app/crewdesk-backend-go/internal/domain/membership"
	"github.com/crewdesk-app/crewdesk-backend-go/internal/pkg/validator"
)

// clockInCoins is the automatic award for showing up.
const clockInCoins = 5

type attendanceServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	overtimeRepo   attendance.OvertimeRepository
	membershipRepo membership.MembershipRepository
	coinService    coin.CoinService
	logger         *slog.Logger
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	overtimeRepo attendance.OvertimeRepository,
	membershipRepo membership.MembershipRepository,
	coinService coin.CoinService,
	logger *slog.Logger,
) attendance.AttendanceService {
	return &attendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		overtimeRepo:   overtimeRepo,
		membershipRepo: membershipRepo,
		coinService:    coinService,
		logger:         logger,
	}
}

// ClockIn implements attendance.AttendanceService. One open record per
// member per business at a time.
func (s *attendanceServiceImpl) ClockIn(ctx context.Context, userID string, req attendance.ClockInRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	if _, err := s.attendanceRepo.GetOpenByUser(ctx, req.BusinessID, userID); err == nil {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyClockedIn
	} else if !errors.Is(err, attendance.ErrAttendanceNotFound) {
		return attendance.AttendanceResponse{}, err
	}

	created, err := s.attendanceRepo.Create(ctx, attendance.Attendance{
		BusinessID: req.BusinessID,
		UserID:     userID,
		ShiftID:    req.ShiftID,
		ClockInAt:  time.Now(),
	})
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	if err := s.coinService.Earn(ctx, req.BusinessID, userID, clockInCoins, coin.SourceClockIn, &created.ID); err != nil {
		// The clock-in stands even if the award fails.
		s.logger.Error("failed to award clock-in coins",
			slog.String("user_id", userID),
			slog.Any("error", err),
		)
	}

	return toAttendanceResponse(created), nil
}

// ClockOut implements attendance.AttendanceService.
func (s *attendanceServiceImpl) ClockOut(ctx context.Context, userID string, req attendance.ClockOutRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	open, err := s.attendanceRepo.GetOpenByUser(ctx, req.BusinessID, userID)
	if err != nil {
		if errors.Is(err, attendance.ErrAttendanceNotFound) {
			return attendance.AttendanceResponse{}, attendance.ErrNotClockedIn
		}
		return attendance.AttendanceResponse{}, err
	}

	now := time.Now()
	worked := int(now.Sub(open.ClockInAt).Minutes())
	closed, err := s.attendanceRepo.ClockOut(ctx, open.ID, now, worked)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	return toAttendanceResponse(closed), nil
}

// ListMine implements attendance.AttendanceService.
func (s *attendanceServiceImpl) ListMine(ctx context.Context, businessID, userID string, from, to time.Time) ([]attendance.AttendanceResponse, error) {
	records, err := s.attendanceRepo.ListByUser(ctx, businessID, userID, from, to)
	if err != nil {
		return nil, err
	}
	return toAttendanceResponses(records), nil
}

// ListTeam implements attendance.AttendanceService.
func (s *attendanceServiceImpl) ListTeam(ctx context.Context, businessID string, from, to time.Time) ([]attendance.AttendanceResponse, error) {
	records, err := s.attendanceRepo.ListByBusiness(ctx, businessID, from, to)
	if err != nil {
		return nil, err
	}
	return toAttendanceResponses(records), nil
}

// RequestOvertime implements attendance.AttendanceService.
func (s *attendanceServiceImpl) RequestOvertime(ctx context.Context, userID string, req attendance.CreateOvertimeRequest) (attendance.OvertimeResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.OvertimeResponse{}, err
	}
	date, _ := validator.IsValidDate(req.Date)

	isMember, err := s.membershipRepo.ExistsByUserAndBusiness(ctx, userID, req.BusinessID)
	if err != nil {
		return attendance.OvertimeResponse{}, err
	}
	if !isMember {
		return attendance.OvertimeResponse{}, membership.ErrMembershipNotFound
	}

	created, err := s.overtimeRepo.Create(ctx, attendance.OvertimeRequest{
		BusinessID: req.BusinessID,
		UserID:     userID,
		Date:       date,
		Minutes:    req.Minutes,
		Reason:     req.Reason,
		Status:     attendance.OvertimePending,
	})
	if err != nil {
		return attendance.OvertimeResponse{}, err
	}
	return toOvertimeResponse(created), nil
}

// ListOvertime implements attendance.AttendanceService.
func (s *attendanceServiceImpl) ListOvertime(ctx context.Context, businessID string, status *attendance.OvertimeStatus) ([]attendance.OvertimeResponse, error) {
	requests, err := s.overtimeRepo.ListByBusiness(ctx, businessID, status)
	if err != nil {
		return nil, err
	}

	responses := make([]attendance.OvertimeResponse, 0, len(requests))
	for _, r := range requests {
		responses = append(responses, toOvertimeResponse(r))
	}
	return responses, nil
}

// DecideOvertime implements attendance.AttendanceService.
func (s *attendanceServiceImpl) DecideOvertime(ctx context.Context, businessID, id string, approve bool, decidedBy string) (attendance.OvertimeResponse, error) {
	pending, err := s.overtimeRepo.GetByID(ctx, id)
	if err != nil {
		return attendance.OvertimeResponse{}, err
	}
	if pending.BusinessID != businessID {
		return attendance.OvertimeResponse{}, attendance.ErrOvertimeNotFound
	}
	if pending.Status != attendance.OvertimePending {
		return attendance.OvertimeResponse{}, attendance.ErrOvertimeAlreadyProcessed
	}

	status := attendance.OvertimeDeclined
	if approve {
		status = attendance.OvertimeApproved
	}
	decided, err := s.overtimeRepo.Decide(ctx, id, status, decidedBy)
	if err != nil {
		return attendance.OvertimeResponse{}, err
	}
	return toOvertimeResponse(decided), nil
}

func toAttendanceResponse(a attendance.Attendance) attendance.AttendanceResponse {
	response := attendance.AttendanceResponse{
		ID:            a.ID,
		BusinessID:    a.BusinessID,
		UserID:        a.UserID,
		ShiftID:       a.ShiftID,
		ClockInAt:     a.ClockInAt.Format(time.RFC3339),
		WorkedMinutes: a.WorkedMinutes,
	}
	if a.ClockOutAt != nil {
		out := a.ClockOutAt.Format(time.RFC3339)
		response.ClockOutAt = &out
	}
	return response
}

func toAttendanceResponses(records []attendance.Attendance) []attendance.AttendanceResponse {
	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, a := range records {
		responses = append(responses, toAttendanceResponse(a))
	}
	return responses
}

func toOvertimeResponse(r attendance.OvertimeRequest) attendance.OvertimeResponse {
	return attendance.OvertimeResponse{
		ID:         r.ID,
		BusinessID: r.BusinessID,
		UserID:     r.UserID,
		Date:       r.Date.Format("2006-01-02"),
		Minutes:    r.Minutes,
		Reason:     r.Reason,
		Status:     string(r.Status),
		DecidedBy:  r.DecidedBy,
	}
}
