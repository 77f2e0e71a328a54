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

type UserHandler struct {
	userService *service.UserService
}

func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

type CreateUserRequest struct {
	Name     string `json:"name"`
	LastName string `json:"lastName"`
	Address  string `json:"address"`
	DNI      string `json:"dni"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	RoleID   string `json:"role"`
}

func (r *CreateUserRequest) Validate() string {
	if r.Name == "" {
		return "Name is required"
	}
	if r.LastName == "" {
		return "Last name is required"
	}
	if r.Email == "" {
		return "Email is required"
	}
	if !emailRegex.MatchString(r.Email) {
		return "Email format is invalid"
	}
	if r.DNI != "" && !dniRegex.MatchString(r.DNI) {
		return "DNI must be at least 10 digits"
	}
	if r.RoleID == "" {
		return "Role is required"
	}
	return ""
}

type UpdateUserRequest struct {
	Name     *string `json:"name"`
	LastName *string `json:"lastName"`
	Address  *string `json:"address"`
	DNI      *string `json:"dni"`
	Phone    *string `json:"phone"`
	RoleID   *string `json:"role"`
}

type UserResponse struct {
	Data    any    `json:"data"`
	Message string `json:"message"`
}

func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.List(r.Context())
	if err != nil {
		log.Printf("ERROR [user.List] %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to list users")
		return
	}

	respondJSON(w, http.StatusOK, UserResponse{Data: users, Message: "Users retrieved successfully"})
}

func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	user, err := h.userService.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			respondError(w, http.StatusNotFound, "User not found")
			return
		}
		log.Printf("ERROR [user.Get] %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to get user")
		return
	}

	respondJSON(w, http.StatusOK, UserResponse{Data: user, Message: "User retrieved successfully"})
}

func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if msg := req.Validate(); msg != "" {
		respondError(w, http.StatusBadRequest, msg)
		return
	}

	roleID, err := uuid.Parse(req.RoleID)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid role ID")
		return
	}

	user, err := h.userService.Create(r.Context(), service.CreateUserInput{
		Name:     req.Name,
		LastName: req.LastName,
		Address:  req.Address,
		DNI:      req.DNI,
		Email:    req.Email,
		Phone:    req.Phone,
		RoleID:   roleID,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmailExists):
			respondError(w, http.StatusConflict, "Email already registered")
		case errors.Is(err, domain.ErrRoleNotFound):
			respondError(w, http.StatusBadRequest, "Role not found")
		default:
			log.Printf("ERROR [user.Create] %v", err)
			respondError(w, http.StatusInternalServerError, "Failed to create user")
		}
		return
	}

	respondJSON(w, http.StatusCreated, UserResponse{Data: user, Message: "User created successfully"})
}

func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	var req UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	input := service.UpdateUserInput{
		Name:     req.Name,
		LastName: req.LastName,
		Address:  req.Address,
		DNI:      req.DNI,
		Phone:    req.Phone,
	}
	if req.RoleID != nil {
		roleID, err := uuid.Parse(*req.RoleID)
		if err != nil {
			respondError(w, http.StatusBadRequest, "Invalid role ID")
			return
		}
		input.RoleID = &roleID
	}

	user, err := h.userService.Update(r.Context(), id, input)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			respondError(w, http.StatusNotFound, "User not found")
			return
		}
		log.Printf("ERROR [user.Update] %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to update user")
		return
	}

	respondJSON(w, http.StatusOK, UserResponse{Data: user, Message: "User updated successfully"})
}

func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	if err := h.userService.Deactivate(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			respondError(w, http.StatusNotFound, "User not found")
			return
		}
		log.Printf("ERROR [user.Delete] %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to deactivate user")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "User deactivated successfully"})
}
