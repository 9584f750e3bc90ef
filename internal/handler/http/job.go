package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/crewdesk-app/crewdesk-backend-go/internal/domain/job"
	"github.com/crewdesk-app/crewdesk-backend-go/internal/handler/http/middleware"
	"github.com/crewdesk-app/crewdesk-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type JobHandler interface {
	CreatePost(w http.ResponseWriter, r *http.Request)
	GetPost(w http.ResponseWriter, r *http.Request)
	ListOpenPosts(w http.ResponseWriter, r *http.Request)
	ListBusinessPosts(w http.ResponseWriter, r *http.Request)
	ClosePost(w http.ResponseWriter, r *http.Request)

	Apply(w http.ResponseWriter, r *http.Request)
	ListApplications(w http.ResponseWriter, r *http.Request)
	AcceptApplication(w http.ResponseWriter, r *http.Request)
	RejectApplication(w http.ResponseWriter, r *http.Request)

	Connect(w http.ResponseWriter, r *http.Request)
	AcceptConnection(w http.ResponseWriter, r *http.Request)
	ListConnections(w http.ResponseWriter, r *http.Request)
}

type JobHandlerImpl struct {
	jobService job.JobService
}

func NewJobHandler(jobService job.JobService) JobHandler {
	return &JobHandlerImpl{jobService: jobService}
}

// CreatePost implements JobHandler.
func (h *JobHandlerImpl) CreatePost(w http.ResponseWriter, r *http.Request) {
	var createReq job.CreatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("CreateJobPost decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.jobService.CreatePost(r.Context(), middleware.UserID(r.Context()), createReq)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Job post created", result)
}

// GetPost implements JobHandler.
func (h *JobHandlerImpl) GetPost(w http.ResponseWriter, r *http.Request) {
	result, err := h.jobService.GetPost(r.Context(), chi.URLParam(r, "postID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// ListOpenPosts implements JobHandler.
func (h *JobHandlerImpl) ListOpenPosts(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if s := r.URL.Query().Get("limit"); s != "" {
		limit, _ = strconv.Atoi(s)
	}

	result, err := h.jobService.ListOpenPosts(r.Context(), limit)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// ListBusinessPosts implements JobHandler.
func (h *JobHandlerImpl) ListBusinessPosts(w http.ResponseWriter, r *http.Request) {
	businessID := r.URL.Query().Get("business_id")
	if businessID == "" {
		response.BadRequest(w, "business_id is required", nil)
		return
	}

	result, err := h.jobService.ListBusinessPosts(r.Context(), businessID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// ClosePost implements JobHandler.
func (h *JobHandlerImpl) ClosePost(w http.ResponseWriter, r *http.Request) {
	result, err := h.jobService.ClosePost(r.Context(), authorizedBusinessID(r), chi.URLParam(r, "postID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Job post closed", result)
}

// Apply implements JobHandler.
func (h *JobHandlerImpl) Apply(w http.ResponseWriter, r *http.Request) {
	var applyReq job.ApplyRequest
	if r.Body != nil {
		_ = json.NewDecoder(r.Body).Decode(&applyReq)
	}

	result, err := h.jobService.Apply(r.Context(), chi.URLParam(r, "postID"), middleware.UserID(r.Context()), applyReq)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Application submitted", result)
}

// ListApplications implements JobHandler.
func (h *JobHandlerImpl) ListApplications(w http.ResponseWriter, r *http.Request) {
	result, err := h.jobService.ListApplications(r.Context(), authorizedBusinessID(r), chi.URLParam(r, "postID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// AcceptApplication implements JobHandler.
func (h *JobHandlerImpl) AcceptApplication(w http.ResponseWriter, r *http.Request) {
	result, err := h.jobService.DecideApplication(r.Context(), authorizedBusinessID(r), chi.URLParam(r, "applicationID"), true)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Application accepted", result)
}

// RejectApplication implements JobHandler.
func (h *JobHandlerImpl) RejectApplication(w http.ResponseWriter, r *http.Request) {
	result, err := h.jobService.DecideApplication(r.Context(), authorizedBusinessID(r), chi.URLParam(r, "applicationID"), false)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Application rejected", result)
}

// Connect implements JobHandler.
func (h *JobHandlerImpl) Connect(w http.ResponseWriter, r *http.Request) {
	var connectReq job.CreateConnectionRequest
	if err := json.NewDecoder(r.Body).Decode(&connectReq); err != nil {
		slog.Error("Connect decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.jobService.Connect(r.Context(), middleware.UserID(r.Context()), connectReq)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Connection requested", result)
}

// AcceptConnection implements JobHandler.
func (h *JobHandlerImpl) AcceptConnection(w http.ResponseWriter, r *http.Request) {
	result, err := h.jobService.AcceptConnection(r.Context(), chi.URLParam(r, "connectionID"), middleware.UserID(r.Context()))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Connection accepted", result)
}

// ListConnections implements JobHandler.
func (h *JobHandlerImpl) ListConnections(w http.ResponseWriter, r *http.Request) {
	result, err := h.jobService.ListConnections(r.Context(), middleware.UserID(r.Context()))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}
