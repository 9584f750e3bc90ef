package attendance

import (
	"context"
	"time"
)

type AttendanceRepository interface {
	Create(ctx context.Context, record Attendance) (Attendance, error)
	// GetOpenByUser returns the record the user is currently clocked
	// into, if any.
	GetOpenByUser(ctx context.Context, businessID, userID string) (Attendance, error)
	ClockOut(ctx context.Context, id string, at time.Time, workedMinutes int) (Attendance, error)
	ListByUser(ctx context.Context, businessID, userID string, from, to time.Time) ([]Attendance, error)
	ListByBusiness(ctx context.Context, businessID string, from, to time.Time) ([]Attendance, error)
}

type OvertimeRepository interface {
	Create(ctx context.Context, req OvertimeRequest) (OvertimeRequest, error)
	GetByID(ctx context.Context, id string) (OvertimeRequest, error)
	ListByBusiness(ctx context.Context, businessID string, status *OvertimeStatus) ([]OvertimeRequest, error)
	Decide(ctx context.Context, id string, status OvertimeStatus, decidedBy string) (OvertimeRequest, error)
}
