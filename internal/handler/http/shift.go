package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/crewdesk-app/crewdesk-backend-go/internal/domain/shift"
	"github.com/crewdesk-app/crewdesk-backend-go/internal/handler/http/middleware"
	"github.com/crewdesk-app/crewdesk-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type ShiftHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Publish(w http.ResponseWriter, r *http.Request)
	Open(w http.ResponseWriter, r *http.Request)
	Close(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)

	RequestSwap(w http.ResponseWriter, r *http.Request)
	ListSwaps(w http.ResponseWriter, r *http.Request)
	ApproveSwap(w http.ResponseWriter, r *http.Request)
	DeclineSwap(w http.ResponseWriter, r *http.Request)
}

type ShiftHandlerImpl struct {
	shiftService shift.ShiftService
}

func NewShiftHandler(shiftService shift.ShiftService) ShiftHandler {
	return &ShiftHandlerImpl{shiftService: shiftService}
}

// Create implements ShiftHandler.
func (h *ShiftHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq shift.CreateShiftRequest
	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("CreateShift decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.shiftService.Create(r.Context(), createReq)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Shift created", result)
}

// Get implements ShiftHandler.
func (h *ShiftHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	result, err := h.shiftService.GetByID(r.Context(), authorizedBusinessID(r), chi.URLParam(r, "shiftID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// List implements ShiftHandler. The window defaults to the current week.
func (h *ShiftHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	businessID := r.URL.Query().Get("business_id")
	if businessID == "" {
		response.BadRequest(w, "business_id is required", nil)
		return
	}

	from, to := parseWindow(r)
	result, err := h.shiftService.ListByBusiness(r.Context(), businessID, from, to)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// Update implements ShiftHandler.
func (h *ShiftHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var updateReq shift.UpdateShiftRequest
	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("UpdateShift decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.shiftService.Update(r.Context(), authorizedBusinessID(r), chi.URLParam(r, "shiftID"), updateReq)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// Publish implements ShiftHandler.
func (h *ShiftHandlerImpl) Publish(w http.ResponseWriter, r *http.Request) {
	result, err := h.shiftService.Publish(r.Context(), authorizedBusinessID(r), chi.URLParam(r, "shiftID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Shift published", result)
}

// Open implements ShiftHandler.
func (h *ShiftHandlerImpl) Open(w http.ResponseWriter, r *http.Request) {
	result, err := h.shiftService.Open(r.Context(), authorizedBusinessID(r), chi.URLParam(r, "shiftID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Shift opened", result)
}

// Close implements ShiftHandler.
func (h *ShiftHandlerImpl) Close(w http.ResponseWriter, r *http.Request) {
	result, err := h.shiftService.Close(r.Context(), authorizedBusinessID(r), chi.URLParam(r, "shiftID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Shift closed", result)
}

// Delete implements ShiftHandler.
func (h *ShiftHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.shiftService.Delete(r.Context(), authorizedBusinessID(r), chi.URLParam(r, "shiftID")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Shift deleted", nil)
}

// RequestSwap implements ShiftHandler.
func (h *ShiftHandlerImpl) RequestSwap(w http.ResponseWriter, r *http.Request) {
	var swapReq shift.CreateSwapRequest
	if err := json.NewDecoder(r.Body).Decode(&swapReq); err != nil {
		slog.Error("RequestSwap decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.shiftService.RequestSwap(r.Context(), authorizedBusinessID(r), middleware.UserID(r.Context()), swapReq)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Swap requested", result)
}

// ListSwaps implements ShiftHandler.
func (h *ShiftHandlerImpl) ListSwaps(w http.ResponseWriter, r *http.Request) {
	businessID := r.URL.Query().Get("business_id")
	if businessID == "" {
		response.BadRequest(w, "business_id is required", nil)
		return
	}

	var status *shift.SwapStatus
	if s := r.URL.Query().Get("status"); s != "" {
		st := shift.SwapStatus(s)
		status = &st
	}

	result, err := h.shiftService.ListSwaps(r.Context(), businessID, status)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// ApproveSwap implements ShiftHandler.
func (h *ShiftHandlerImpl) ApproveSwap(w http.ResponseWriter, r *http.Request) {
	result, err := h.shiftService.DecideSwap(r.Context(), authorizedBusinessID(r), chi.URLParam(r, "swapID"), true, middleware.UserID(r.Context()))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Swap approved", result)
}

// DeclineSwap implements ShiftHandler.
func (h *ShiftHandlerImpl) DeclineSwap(w http.ResponseWriter, r *http.Request) {
	result, err := h.shiftService.DecideSwap(r.Context(), authorizedBusinessID(r), chi.URLParam(r, "swapID"), false, middleware.UserID(r.Context()))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Swap declined", result)
}

// parseWindow reads from/to query params, defaulting to the seven days
// starting today.
func parseWindow(r *http.Request) (time.Time, time.Time) {
	now := time.Now().Truncate(24 * time.Hour)
	from, to := now, now.AddDate(0, 0, 7)

	if s := r.URL.Query().Get("from"); s != "" {
		if parsed, err := time.Parse("2006-01-02", s); err == nil {
			from = parsed
		}
	}
	if s := r.URL.Query().Get("to"); s != "" {
		if parsed, err := time.Parse("2006-01-02", s); err == nil {
			to = parsed
		}
	}
	return from, to
}
