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

type CredentialHandler struct {
	authService *service.AuthService
}

func NewCredentialHandler(authService *service.AuthService) *CredentialHandler {
	return &CredentialHandler{authService: authService}
}

// UpdatePasswordRequest carries presence-conditional fields: a field may
// be omitted, but if present it must be non-empty.
type UpdatePasswordRequest struct {
	Password        *string `json:"password"`
	NewPassword     *string `json:"newPassword"`
	ConfirmPassword *string `json:"confirmPassword"`
}

func (r *UpdatePasswordRequest) Validate() string {
	if r.Password != nil && *r.Password == "" {
		return "Password cannot be empty"
	}
	if r.NewPassword != nil && *r.NewPassword == "" {
		return "New password cannot be empty"
	}
	if r.ConfirmPassword != nil && *r.ConfirmPassword == "" {
		return "Password confirmation cannot be empty"
	}
	return ""
}

type UpdateStatusRequest struct {
	UserID   string `json:"_id"`
	IsActive *bool  `json:"isActive"`
}

type CredentialResponse struct {
	Data    *domain.Credential `json:"data"`
	Message string             `json:"message"`
}

// UpdatePassword handles PUT /credentials/{id}/password. The path id is
// the owning user's id, not the credential id.
func (h *CredentialHandler) UpdatePassword(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	var req UpdatePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if msg := req.Validate(); msg != "" {
		respondError(w, http.StatusBadRequest, msg)
		return
	}

	input := service.UpdatePasswordInput{}
	if req.Password != nil {
		input.Password = *req.Password
	}
	if req.NewPassword != nil {
		input.NewPassword = *req.NewPassword
	}
	if req.ConfirmPassword != nil {
		input.ConfirmPassword = *req.ConfirmPassword
	}

	cred, err := h.authService.UpdatePassword(r.Context(), userID, input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrCredentialNotFound):
			respondError(w, http.StatusNotFound, "Credential not found")
		case errors.Is(err, domain.ErrInvalidCredentials):
			respondError(w, http.StatusBadRequest, "Current password is incorrect")
		case errors.Is(err, domain.ErrPasswordMismatch):
			respondError(w, http.StatusBadRequest, "New passwords do not match")
		default:
			log.Printf("ERROR [credential.UpdatePassword] %v", err)
			respondError(w, http.StatusInternalServerError, "Failed to update credential")
		}
		return
	}

	respondJSON(w, http.StatusOK, CredentialResponse{
		Data:    cred,
		Message: "Credential updated successfully",
	})
}

// UpdateStatus handles PATCH /credentials/status.
func (h *CredentialHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid user ID")
		return
	}
	if req.IsActive == nil {
		respondError(w, http.StatusBadRequest, "isActive is required")
		return
	}

	cred, err := h.authService.UpdateStatus(r.Context(), userID, *req.IsActive)
	if err != nil {
		if errors.Is(err, domain.ErrCredentialNotFound) {
			respondError(w, http.StatusNotFound, "Credential not found")
			return
		}
		log.Printf("ERROR [credential.UpdateStatus] %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to update credential status")
		return
	}

	message := "Credential deactivated successfully"
	if cred.IsActive {
		message = "Credential activated successfully"
	}

	respondJSON(w, http.StatusOK, CredentialResponse{
		Data:    cred,
		Message: message,
	})
}
