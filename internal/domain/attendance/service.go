package attendance

import (
	"context"
	"time"
)

type AttendanceService interface {
	ClockIn(ctx context.Context, userID string, req ClockInRequest) (AttendanceResponse, error)
	ClockOut(ctx context.Context, userID string, req ClockOutRequest) (AttendanceResponse, error)
	ListMine(ctx context.Context, businessID, userID string, from, to time.Time) ([]AttendanceResponse, error)
	ListTeam(ctx context.Context, businessID string, from, to time.Time) ([]AttendanceResponse, error)

	RequestOvertime(ctx context.Context, userID string, req CreateOvertimeRequest) (OvertimeResponse, error)
	ListOvertime(ctx context.Context, businessID string, status *OvertimeStatus) ([]OvertimeResponse, error)
	DecideOvertime(ctx context.Context, businessID, id string, approve bool, decidedBy string) (OvertimeResponse, error)
}
