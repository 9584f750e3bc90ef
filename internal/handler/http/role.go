package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/crewdesk-app/crewdesk-backend-go/internal/domain/role"
	"github.com/crewdesk-app/crewdesk-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type RoleHandler interface {
	Catalog(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	InstantiatePredefined(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	ReplacePermissions(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	Assign(w http.ResponseWriter, r *http.Request)
}

type RoleHandlerImpl struct {
	roleService role.RoleService
}

func NewRoleHandler(roleService role.RoleService) RoleHandler {
	return &RoleHandlerImpl{roleService: roleService}
}

// Catalog implements RoleHandler. The catalog is global, not scoped to
// a business, so any authenticated caller may read it.
func (h *RoleHandlerImpl) Catalog(w http.ResponseWriter, r *http.Request) {
	result, err := h.roleService.GetCatalog(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// List implements RoleHandler.
func (h *RoleHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	businessID := authorizedBusinessID(r)
	if businessID == "" {
		response.BadRequest(w, "business_id is required", nil)
		return
	}

	result, err := h.roleService.ListByBusiness(r.Context(), businessID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// Create implements RoleHandler.
func (h *RoleHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq role.CreateRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("CreateRole decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.roleService.Create(r.Context(), createReq)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Role created", result)
}

// InstantiatePredefined implements RoleHandler.
func (h *RoleHandlerImpl) InstantiatePredefined(w http.ResponseWriter, r *http.Request) {
	var instReq role.InstantiatePredefinedRequest
	if err := json.NewDecoder(r.Body).Decode(&instReq); err != nil {
		slog.Error("InstantiatePredefined decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.roleService.InstantiatePredefined(r.Context(), instReq)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Predefined role instantiated", result)
}

// Get implements RoleHandler.
func (h *RoleHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	roleID := chi.URLParam(r, "roleID")
	if roleID == "" {
		response.BadRequest(w, "Role ID is required", nil)
		return
	}

	result, err := h.roleService.GetByID(r.Context(), authorizedBusinessID(r), roleID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// Update implements RoleHandler.
func (h *RoleHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	roleID := chi.URLParam(r, "roleID")

	var updateReq role.UpdateRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("UpdateRole decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.roleService.Update(r.Context(), authorizedBusinessID(r), roleID, updateReq)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// ReplacePermissions implements RoleHandler.
func (h *RoleHandlerImpl) ReplacePermissions(w http.ResponseWriter, r *http.Request) {
	roleID := chi.URLParam(r, "roleID")

	var replaceReq role.ReplacePermissionsRequest
	if err := json.NewDecoder(r.Body).Decode(&replaceReq); err != nil {
		slog.Error("ReplacePermissions decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.roleService.ReplacePermissions(r.Context(), authorizedBusinessID(r), roleID, replaceReq)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// Delete implements RoleHandler.
func (h *RoleHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	roleID := chi.URLParam(r, "roleID")

	if err := h.roleService.Delete(r.Context(), authorizedBusinessID(r), roleID); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Role deleted", nil)
}

// Assign implements RoleHandler.
func (h *RoleHandlerImpl) Assign(w http.ResponseWriter, r *http.Request) {
	var assignReq role.AssignRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&assignReq); err != nil {
		slog.Error("AssignRole decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.roleService.Assign(r.Context(), assignReq); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Role assigned", nil)
}
