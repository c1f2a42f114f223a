package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/saree-store/backend/internal/models"
	"github.com/saree-store/backend/internal/service"
	"github.com/saree-store/backend/internal/validation"
)

// OrderHandler handles order-related HTTP requests
type OrderHandler struct {
	orderService *service.OrderService
	validator    *validation.Validator
	log          *slog.Logger
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderService *service.OrderService, validator *validation.Validator, log *slog.Logger) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
		validator:    validator,
		log:          log,
	}
}

// CreateOrder handles POST /api/orders
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req models.CreateOrderRequest

	// Parse and validate request body
	if err := h.validator.Decode(r.Body, &req); err != nil {
		var verrs validation.Errors
		if errors.As(err, &verrs) {
			h.log.Warn("invalid order request", "error", err)
			WriteValidationError(w, verrs, h.log)
			return
		}
		h.log.Error("failed to validate order request", "error", err)
		WriteError(w, http.StatusInternalServerError, err.Error(), h.log)
		return
	}

	receipt, err := h.orderService.CreateOrder(r.Context(), req.Order())
	if err != nil {
		h.log.Error("failed to create order", "error", err)
		WriteError(w, http.StatusInternalServerError, err.Error(), h.log)
		return
	}

	WriteJSON(w, http.StatusOK, receipt, h.log)
}
