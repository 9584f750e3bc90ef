package leave

import "context"

type LeaveRequestRepository interface {
	Create(ctx context.Context, req LeaveRequest) (LeaveRequest, error)
	GetByID(ctx context.Context, id string) (LeaveRequest, error)
	ListByUser(ctx context.Context, businessID, userID string) ([]LeaveRequest, error)
	ListByBusiness(ctx context.Context, businessID string, status *LeaveStatus) ([]LeaveRequest, error)
	Decide(ctx context.Context, id string, status LeaveStatus, decidedBy string) (LeaveRequest, error)
}

type LeaveBalanceRepository interface {
	Get(ctx context.Context, businessID, userID string, year int) (LeaveBalance, error)
	// Upsert creates the balance row for a member/year if missing,
	// otherwise leaves it as is, and returns the current row.
	Upsert(ctx context.Context, balance LeaveBalance) (LeaveBalance, error)
	AddUsedDays(ctx context.Context, businessID, userID string, year, days int) (LeaveBalance, error)
	SetAllocation(ctx context.Context, businessID, userID string, year, allocatedDays int) (LeaveBalance, error)
}
