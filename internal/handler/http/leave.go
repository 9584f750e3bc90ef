package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/crewdesk-app/crewdesk-backend-go/internal/domain/leave"
	"github.com/crewdesk-app/crewdesk-backend-go/internal/handler/http/middleware"
	"github.com/crewdesk-app/crewdesk-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type LeaveHandler interface {
	CreateRequest(w http.ResponseWriter, r *http.Request)
	GetMyRequests(w http.ResponseWriter, r *http.Request)
	ListRequests(w http.ResponseWriter, r *http.Request)
	ApproveRequest(w http.ResponseWriter, r *http.Request)
	DeclineRequest(w http.ResponseWriter, r *http.Request)
	GetMyBalance(w http.ResponseWriter, r *http.Request)
	SetAllocation(w http.ResponseWriter, r *http.Request)
}

type LeaveHandlerImpl struct {
	leaveService leave.LeaveService
}

func NewLeaveHandler(leaveService leave.LeaveService) LeaveHandler {
	return &LeaveHandlerImpl{leaveService: leaveService}
}

// CreateRequest implements LeaveHandler.
func (l *LeaveHandlerImpl) CreateRequest(w http.ResponseWriter, r *http.Request) {
	var createReq leave.CreateLeaveRequest
	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("CreateLeaveRequest decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := l.leaveService.Request(r.Context(), middleware.UserID(r.Context()), createReq)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Leave requested", result)
}

// GetMyRequests implements LeaveHandler.
func (l *LeaveHandlerImpl) GetMyRequests(w http.ResponseWriter, r *http.Request) {
	businessID := r.URL.Query().Get("business_id")
	if businessID == "" {
		response.BadRequest(w, "business_id is required", nil)
		return
	}

	result, err := l.leaveService.ListMine(r.Context(), businessID, middleware.UserID(r.Context()))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// ListRequests implements LeaveHandler.
func (l *LeaveHandlerImpl) ListRequests(w http.ResponseWriter, r *http.Request) {
	businessID := r.URL.Query().Get("business_id")
	if businessID == "" {
		response.BadRequest(w, "business_id is required", nil)
		return
	}

	var status *leave.LeaveStatus
	if s := r.URL.Query().Get("status"); s != "" {
		st := leave.LeaveStatus(s)
		status = &st
	}

	result, err := l.leaveService.ListByBusiness(r.Context(), businessID, status)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// ApproveRequest implements LeaveHandler.
func (l *LeaveHandlerImpl) ApproveRequest(w http.ResponseWriter, r *http.Request) {
	result, err := l.leaveService.Decide(r.Context(), authorizedBusinessID(r), chi.URLParam(r, "leaveID"), true, middleware.UserID(r.Context()))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Leave approved", result)
}

// DeclineRequest implements LeaveHandler.
func (l *LeaveHandlerImpl) DeclineRequest(w http.ResponseWriter, r *http.Request) {
	result, err := l.leaveService.Decide(r.Context(), authorizedBusinessID(r), chi.URLParam(r, "leaveID"), false, middleware.UserID(r.Context()))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Leave declined", result)
}

// GetMyBalance implements LeaveHandler.
func (l *LeaveHandlerImpl) GetMyBalance(w http.ResponseWriter, r *http.Request) {
	businessID := r.URL.Query().Get("business_id")
	if businessID == "" {
		response.BadRequest(w, "business_id is required", nil)
		return
	}

	year := 0
	if s := r.URL.Query().Get("year"); s != "" {
		year, _ = strconv.Atoi(s)
	}

	result, err := l.leaveService.GetBalance(r.Context(), businessID, middleware.UserID(r.Context()), year)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// SetAllocation implements LeaveHandler.
func (l *LeaveHandlerImpl) SetAllocation(w http.ResponseWriter, r *http.Request) {
	var allocReq leave.SetAllocationRequest
	if err := json.NewDecoder(r.Body).Decode(&allocReq); err != nil {
		slog.Error("SetAllocation decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := l.leaveService.SetAllocation(r.Context(), allocReq)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}
