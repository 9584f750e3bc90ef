package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/crewdesk-app/crewdesk-backend-go/internal/domain/attendance"
	"github.com/crewdesk-app/crewdesk-backend-go/internal/handler/http/middleware"
	"github.com/crewdesk-app/crewdesk-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type AttendanceHandler interface {
	ClockIn(w http.ResponseWriter, r *http.Request)
	ClockOut(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
	ListTeam(w http.ResponseWriter, r *http.Request)

	RequestOvertime(w http.ResponseWriter, r *http.Request)
	ListOvertime(w http.ResponseWriter, r *http.Request)
	ApproveOvertime(w http.ResponseWriter, r *http.Request)
	DeclineOvertime(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &AttendanceHandlerImpl{attendanceService: attendanceService}
}

// ClockIn implements AttendanceHandler.
func (h *AttendanceHandlerImpl) ClockIn(w http.ResponseWriter, r *http.Request) {
	var clockInReq attendance.ClockInRequest
	if err := json.NewDecoder(r.Body).Decode(&clockInReq); err != nil {
		slog.Error("ClockIn decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.attendanceService.ClockIn(r.Context(), middleware.UserID(r.Context()), clockInReq)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Clocked in", result)
}

// ClockOut implements AttendanceHandler.
func (h *AttendanceHandlerImpl) ClockOut(w http.ResponseWriter, r *http.Request) {
	var clockOutReq attendance.ClockOutRequest
	if err := json.NewDecoder(r.Body).Decode(&clockOutReq); err != nil {
		slog.Error("ClockOut decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.attendanceService.ClockOut(r.Context(), middleware.UserID(r.Context()), clockOutReq)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Clocked out", result)
}

// ListMine implements AttendanceHandler.
func (h *AttendanceHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
	businessID := r.URL.Query().Get("business_id")
	if businessID == "" {
		response.BadRequest(w, "business_id is required", nil)
		return
	}

	from, to := parseWindow(r)
	result, err := h.attendanceService.ListMine(r.Context(), businessID, middleware.UserID(r.Context()), from, to)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// ListTeam implements AttendanceHandler.
func (h *AttendanceHandlerImpl) ListTeam(w http.ResponseWriter, r *http.Request) {
	businessID := r.URL.Query().Get("business_id")
	if businessID == "" {
		response.BadRequest(w, "business_id is required", nil)
		return
	}

	from, to := parseWindow(r)
	result, err := h.attendanceService.ListTeam(r.Context(), businessID, from, to)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// RequestOvertime implements AttendanceHandler.
func (h *AttendanceHandlerImpl) RequestOvertime(w http.ResponseWriter, r *http.Request) {
	var overtimeReq attendance.CreateOvertimeRequest
	if err := json.NewDecoder(r.Body).Decode(&overtimeReq); err != nil {
		slog.Error("RequestOvertime decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.attendanceService.RequestOvertime(r.Context(), middleware.UserID(r.Context()), overtimeReq)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Overtime requested", result)
}

// ListOvertime implements AttendanceHandler.
func (h *AttendanceHandlerImpl) ListOvertime(w http.ResponseWriter, r *http.Request) {
	businessID := r.URL.Query().Get("business_id")
	if businessID == "" {
		response.BadRequest(w, "business_id is required", nil)
		return
	}

	var status *attendance.OvertimeStatus
	if s := r.URL.Query().Get("status"); s != "" {
		st := attendance.OvertimeStatus(s)
		status = &st
	}

	result, err := h.attendanceService.ListOvertime(r.Context(), businessID, status)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// ApproveOvertime implements AttendanceHandler.
func (h *AttendanceHandlerImpl) ApproveOvertime(w http.ResponseWriter, r *http.Request) {
	result, err := h.attendanceService.DecideOvertime(r.Context(), authorizedBusinessID(r), chi.URLParam(r, "overtimeID"), true, middleware.UserID(r.Context()))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Overtime approved", result)
}

// DeclineOvertime implements AttendanceHandler.
func (h *AttendanceHandlerImpl) DeclineOvertime(w http.ResponseWriter, r *http.Request) {
	result, err := h.attendanceService.DecideOvertime(r.Context(), authorizedBusinessID(r), chi.URLParam(r, "overtimeID"), false, middleware.UserID(r.Context()))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Overtime declined", result)
}
