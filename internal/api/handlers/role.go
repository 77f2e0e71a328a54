package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/dcastro/clientadmin/internal/domain"
	"github.com/dcastro/clientadmin/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type RoleHandler struct {
	roleService *service.RoleService
}

func NewRoleHandler(roleService *service.RoleService) *RoleHandler {
	return &RoleHandler{roleService: roleService}
}

type RoleRequest struct {
	Name string `json:"name"`
}

type RoleResponse struct {
	Data    any    `json:"data"`
	Message string `json:"message"`
}

func (h *RoleHandler) List(w http.ResponseWriter, r *http.Request) {
	roles, err := h.roleService.List(r.Context())
	if err != nil {
		log.Printf("ERROR [role.List] %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to list roles")
		return
	}

	respondJSON(w, http.StatusOK, RoleResponse{Data: roles, Message: "Roles retrieved successfully"})
}

func (h *RoleHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req RoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Name == "" {
		respondError(w, http.StatusBadRequest, "Name is required")
		return
	}

	role, err := h.roleService.Create(r.Context(), req.Name)
	if err != nil {
		if errors.Is(err, domain.ErrRoleExists) {
			respondError(w, http.StatusConflict, "Role already exists")
			return
		}
		log.Printf("ERROR [role.Create] %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to create role")
		return
	}

	respondJSON(w, http.StatusCreated, RoleResponse{Data: role, Message: "Role created successfully"})
}

func (h *RoleHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid role ID")
		return
	}

	var req RoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Name == "" {
		respondError(w, http.StatusBadRequest, "Name is required")
		return
	}

	role, err := h.roleService.Update(r.Context(), id, req.Name)
	if err != nil {
		if errors.Is(err, domain.ErrRoleNotFound) {
			respondError(w, http.StatusNotFound, "Role not found")
			return
		}
		log.Printf("ERROR [role.Update] %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to update role")
		return
	}

	respondJSON(w, http.StatusOK, RoleResponse{Data: role, Message: "Role updated successfully"})
}

func (h *RoleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid role ID")
		return
	}

	if err := h.roleService.Delete(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, domain.ErrRoleNotFound):
			respondError(w, http.StatusNotFound, "Role not found")
		case errors.Is(err, domain.ErrRoleInUse):
			respondError(w, http.StatusBadRequest, "Role is assigned to users")
		default:
			log.Printf("ERROR [role.Delete] %v", err)
			respondError(w, http.StatusInternalServerError, "Failed to delete role")
		}
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "Role deleted successfully"})
}
