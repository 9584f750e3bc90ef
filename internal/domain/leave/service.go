package leave

import "context"

type LeaveService interface {
	Request(ctx context.Context, userID string, req CreateLeaveRequest) (LeaveRequestResponse, error)
	ListMine(ctx context.Context, businessID, userID string) ([]LeaveRequestResponse, error)
	ListByBusiness(ctx context.Context, businessID string, status *LeaveStatus) ([]LeaveRequestResponse, error)
	Decide(ctx context.Context, businessID, id string, approve bool, decidedBy string) (LeaveRequestResponse, error)
	GetBalance(ctx context.Context, businessID, userID string, year int) (BalanceResponse, error)
	SetAllocation(ctx context.Context, req SetAllocationRequest) (BalanceResponse, error)
}
