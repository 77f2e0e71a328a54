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

type ClientHandler struct {
	clientService *service.ClientService
}

func NewClientHandler(clientService *service.ClientService) *ClientHandler {
	return &ClientHandler{clientService: clientService}
}

type CreateClientRequest struct {
	Name     string `json:"name"`
	LastName string `json:"lastName"`
	Address  string `json:"address"`
	DNI      string `json:"dni"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
}

func (r *CreateClientRequest) Validate() string {
	if r.Name == "" {
		return "Name is required"
	}
	if r.LastName == "" {
		return "Last name is required"
	}
	if r.Email != "" && !emailRegex.MatchString(r.Email) {
		return "Email format is invalid"
	}
	if r.DNI != "" && !dniRegex.MatchString(r.DNI) {
		return "DNI must be at least 10 digits"
	}
	return ""
}

type UpdateClientRequest struct {
	Name     *string `json:"name"`
	LastName *string `json:"lastName"`
	Address  *string `json:"address"`
	DNI      *string `json:"dni"`
	Email    *string `json:"email"`
	Phone    *string `json:"phone"`
}

type ClientResponse struct {
	Data    any    `json:"data"`
	Message string `json:"message"`
}

func (h *ClientHandler) List(w http.ResponseWriter, r *http.Request) {
	clients, err := h.clientService.List(r.Context())
	if err != nil {
		log.Printf("ERROR [client.List] %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to list clients")
		return
	}

	respondJSON(w, http.StatusOK, ClientResponse{Data: clients, Message: "Clients retrieved successfully"})
}

func (h *ClientHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid client ID")
		return
	}

	client, err := h.clientService.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrClientNotFound) {
			respondError(w, http.StatusNotFound, "Client not found")
			return
		}
		log.Printf("ERROR [client.Get] %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to get client")
		return
	}

	respondJSON(w, http.StatusOK, ClientResponse{Data: client, Message: "Client retrieved successfully"})
}

func (h *ClientHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateClientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if msg := req.Validate(); msg != "" {
		respondError(w, http.StatusBadRequest, msg)
		return
	}

	client, err := h.clientService.Create(r.Context(), service.CreateClientInput{
		Name:     req.Name,
		LastName: req.LastName,
		Address:  req.Address,
		DNI:      req.DNI,
		Email:    req.Email,
		Phone:    req.Phone,
	})
	if err != nil {
		log.Printf("ERROR [client.Create] %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to create client")
		return
	}

	respondJSON(w, http.StatusCreated, ClientResponse{Data: client, Message: "Client created successfully"})
}

func (h *ClientHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid client ID")
		return
	}

	var req UpdateClientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	client, err := h.clientService.Update(r.Context(), id, service.UpdateClientInput{
		Name:     req.Name,
		LastName: req.LastName,
		Address:  req.Address,
		DNI:      req.DNI,
		Email:    req.Email,
		Phone:    req.Phone,
	})
	if err != nil {
		if errors.Is(err, domain.ErrClientNotFound) {
			respondError(w, http.StatusNotFound, "Client not found")
			return
		}
		log.Printf("ERROR [client.Update] %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to update client")
		return
	}

	respondJSON(w, http.StatusOK, ClientResponse{Data: client, Message: "Client updated successfully"})
}

func (h *ClientHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid client ID")
		return
	}

	if err := h.clientService.Deactivate(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrClientNotFound) {
			respondError(w, http.StatusNotFound, "Client not found")
			return
		}
		log.Printf("ERROR [client.Delete] %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to deactivate client")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "Client deactivated successfully"})
}
