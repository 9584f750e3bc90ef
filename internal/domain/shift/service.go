package shift

import (
	"context"
	"time"
)

type ShiftService interface {
	Create(ctx context.Context, req CreateShiftRequest) (ShiftResponse, error)
	GetByID(ctx context.Context, businessID, id string) (ShiftResponse, error)
	ListByBusiness(ctx context.Context, businessID string, from, to time.Time) ([]ShiftResponse, error)
	Update(ctx context.Context, businessID, id string, req UpdateShiftRequest) (ShiftResponse, error)
	Publish(ctx context.Context, businessID, id string) (ShiftResponse, error)
	Open(ctx context.Context, businessID, id string) (ShiftResponse, error)
	Close(ctx context.Context, businessID, id string) (ShiftResponse, error)
	Delete(ctx context.Context, businessID, id string) error

	RequestSwap(ctx context.Context, businessID, requesterID string, req CreateSwapRequest) (SwapResponse, error)
	ListSwaps(ctx context.Context, businessID string, status *SwapStatus) ([]SwapResponse, error)
	DecideSwap(ctx context.Context, businessID, id string, approve bool, decidedBy string) (SwapResponse, error)
}
