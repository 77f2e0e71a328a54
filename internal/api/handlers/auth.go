package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"regexp"

	"github.com/dcastro/clientadmin/internal/domain"
	"github.com/dcastro/clientadmin/internal/service"
)

var (
	emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	dniRegex   = regexp.MustCompile(`^\d{10,}$`)
)

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() string {
	if r.Email == "" {
		return "Email is required"
	}
	if !emailRegex.MatchString(r.Email) {
		return "Email format is invalid"
	}
	if r.Password == "" {
		return "Password is required"
	}
	return ""
}

type LoginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

type ResetPasswordRequest struct {
	Email string `json:"email"`
}

func (r *ResetPasswordRequest) Validate() string {
	if r.Email == "" {
		return "Email is required"
	}
	if !emailRegex.MatchString(r.Email) {
		return "Email format is invalid"
	}
	return ""
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if msg := req.Validate(); msg != "" {
		respondError(w, http.StatusBadRequest, msg)
		return
	}

	result, err := h.authService.Login(r.Context(), service.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			respondError(w, http.StatusBadRequest, "User not found")
		case errors.Is(err, domain.ErrInactiveAccount):
			respondError(w, http.StatusBadRequest, "User is inactive")
		case errors.Is(err, domain.ErrInvalidCredentials):
			respondError(w, http.StatusBadRequest, "Invalid password")
		default:
			log.Printf("ERROR [auth.Login] %v", err)
			respondError(w, http.StatusInternalServerError, "Failed to log in")
		}
		return
	}

	respondJSON(w, http.StatusOK, LoginResponse{
		Message: "Login successful",
		Token:   result.Token,
	})
}

func (h *AuthHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req ResetPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if msg := req.Validate(); msg != "" {
		respondError(w, http.StatusBadRequest, msg)
		return
	}

	err := h.authService.ResetPassword(r.Context(), req.Email)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			respondError(w, http.StatusBadRequest, "User not found")
		case errors.Is(err, domain.ErrInactiveAccount):
			respondError(w, http.StatusBadRequest, "User is inactive")
		default:
			log.Printf("ERROR [auth.ResetPassword] %v", err)
			respondError(w, http.StatusInternalServerError, "Failed to reset password")
		}
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "Password reset successfully"})
}
