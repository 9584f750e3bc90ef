package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/crewdesk-app/crewdesk-backend-go/internal/domain/business"
	"github.com/crewdesk-app/crewdesk-backend-go/internal/handler/http/middleware"
	"github.com/crewdesk-app/crewdesk-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type BusinessHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	ListMembers(w http.ResponseWriter, r *http.Request)
}

type BusinessHandlerImpl struct {
	businessService business.BusinessService
}

func NewBusinessHandler(businessService business.BusinessService) BusinessHandler {
	return &BusinessHandlerImpl{businessService: businessService}
}

// Create implements BusinessHandler.
func (b *BusinessHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq business.CreateBusinessRequest
	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("CreateBusiness decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := b.businessService.Create(r.Context(), middleware.UserID(r.Context()), createReq)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Business created", result)
}

// Get implements BusinessHandler.
func (b *BusinessHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	businessID := chi.URLParam(r, "businessID")
	if businessID == "" {
		response.BadRequest(w, "Business ID is required", nil)
		return
	}

	result, err := b.businessService.GetByID(r.Context(), businessID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// ListMine implements BusinessHandler.
func (b *BusinessHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
	result, err := b.businessService.ListMine(r.Context(), middleware.UserID(r.Context()))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// Update implements BusinessHandler.
func (b *BusinessHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	businessID := chi.URLParam(r, "businessID")

	var updateReq business.UpdateBusinessRequest
	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("UpdateBusiness decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := b.businessService.Update(r.Context(), businessID, updateReq)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// Delete implements BusinessHandler.
func (b *BusinessHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	businessID := chi.URLParam(r, "businessID")

	if err := b.businessService.Delete(r.Context(), businessID); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Business deleted", nil)
}

// ListMembers implements BusinessHandler.
func (b *BusinessHandlerImpl) ListMembers(w http.ResponseWriter, r *http.Request) {
	businessID := chi.URLParam(r, "businessID")

	result, err := b.businessService.ListMembers(r.Context(), businessID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}
