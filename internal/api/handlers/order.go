package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/dcastro/clientadmin/internal/domain"
	"github.com/dcastro/clientadmin/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type OrderHandler struct {
	orderService *service.OrderService
}

func NewOrderHandler(orderService *service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

type CreateOrderRequest struct {
	DateOrder          *time.Time `json:"dateOrder"`
	NumberOrder        int        `json:"numberOrder"`
	ConsumptionAccount float64    `json:"consumptionAccount"`
	Balance            float64    `json:"balance"`
	Total              float64    `json:"total"`
	ClientID           string     `json:"client"`
}

func (r *CreateOrderRequest) Validate() string {
	if r.NumberOrder <= 0 {
		return "Order number must be positive"
	}
	if r.ClientID == "" {
		return "Client is required"
	}
	return ""
}

type UpdateOrderRequest struct {
	ConsumptionAccount *float64 `json:"consumptionAccount"`
	Balance            *float64 `json:"balance"`
	Total              *float64 `json:"total"`
	PaymentState       *string  `json:"paymentState"`
}

type OrderResponse struct {
	Data    any    `json:"data"`
	Message string `json:"message"`
}

func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orderService.List(r.Context())
	if err != nil {
		log.Printf("ERROR [order.List] %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to list orders")
		return
	}

	respondJSON(w, http.StatusOK, OrderResponse{Data: orders, Message: "Orders retrieved successfully"})
}

func (h *OrderHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid order ID")
		return
	}

	order, err := h.orderService.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrOrderNotFound) {
			respondError(w, http.StatusNotFound, "Order not found")
			return
		}
		log.Printf("ERROR [order.Get] %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to get order")
		return
	}

	respondJSON(w, http.StatusOK, OrderResponse{Data: order, Message: "Order retrieved successfully"})
}

func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if msg := req.Validate(); msg != "" {
		respondError(w, http.StatusBadRequest, msg)
		return
	}

	clientID, err := uuid.Parse(req.ClientID)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid client ID")
		return
	}

	input := service.CreateOrderInput{
		NumberOrder:        req.NumberOrder,
		ConsumptionAccount: req.ConsumptionAccount,
		Balance:            req.Balance,
		Total:              req.Total,
		ClientID:           clientID,
	}
	if req.DateOrder != nil {
		input.DateOrder = *req.DateOrder
	}

	order, err := h.orderService.Create(r.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrClientNotFound):
			respondError(w, http.StatusBadRequest, "Client not found")
		case errors.Is(err, domain.ErrOrderNumberExists):
			respondError(w, http.StatusConflict, "Order number already exists")
		default:
			log.Printf("ERROR [order.Create] %v", err)
			respondError(w, http.StatusInternalServerError, "Failed to create order")
		}
		return
	}

	respondJSON(w, http.StatusCreated, OrderResponse{Data: order, Message: "Order created successfully"})
}

func (h *OrderHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid order ID")
		return
	}

	var req UpdateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	input := service.UpdateOrderInput{
		ConsumptionAccount: req.ConsumptionAccount,
		Balance:            req.Balance,
		Total:              req.Total,
	}
	if req.PaymentState != nil {
		state := domain.PaymentState(*req.PaymentState)
		input.PaymentState = &state
	}

	order, err := h.orderService.Update(r.Context(), id, input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrOrderNotFound):
			respondError(w, http.StatusNotFound, "Order not found")
		case errors.Is(err, domain.ErrInvalidPaymentState):
			respondError(w, http.StatusBadRequest, "Invalid payment state")
		default:
			log.Printf("ERROR [order.Update] %v", err)
			respondError(w, http.StatusInternalServerError, "Failed to update order")
		}
		return
	}

	respondJSON(w, http.StatusOK, OrderResponse{Data: order, Message: "Order updated successfully"})
}

func (h *OrderHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid order ID")
		return
	}

	if err := h.orderService.Deactivate(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrOrderNotFound) {
			respondError(w, http.StatusNotFound, "Order not found")
			return
		}
		log.Printf("ERROR [order.Delete] %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to deactivate order")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "Order deactivated successfully"})
}
