package shift

import (
	"context"
	"time"
)

type ShiftRepository interface {
	Create(ctx context.Context, newShift Shift) (Shift, error)
	GetByID(ctx context.Context, id string) (Shift, error)
	ListByBusiness(ctx context.Context, businessID string, from, to time.Time) ([]Shift, error)
	ListByAssignee(ctx context.Context, businessID, userID string, from, to time.Time) ([]Shift, error)
	Update(ctx context.Context, updated Shift) (Shift, error)
	UpdateStatus(ctx context.Context, id string, status ShiftStatus) error
	Reassign(ctx context.Context, id string, assigneeID string) error
	Delete(ctx context.Context, id string) error
}

type SwapRepository interface {
	Create(ctx context.Context, req SwapRequest) (SwapRequest, error)
	GetByID(ctx context.Context, id string) (SwapRequest, error)
	ListByBusiness(ctx context.Context, businessID string, status *SwapStatus) ([]SwapRequest, error)
	Decide(ctx context.Context, id string, status SwapStatus, decidedBy string) (SwapRequest, error)
}
