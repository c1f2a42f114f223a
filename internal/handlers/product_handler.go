package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/saree-store/backend/internal/models"
	"github.com/saree-store/backend/internal/service"
	"github.com/saree-store/backend/internal/validation"
)

// ProductHandler handles product-related HTTP requests
type ProductHandler struct {
	service   *service.ProductService
	validator *validation.Validator
	logger    *slog.Logger
}

// NewProductHandler creates a new product handler
func NewProductHandler(service *service.ProductService, validator *validation.Validator, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{
		service:   service,
		validator: validator,
		logger:    logger,
	}
}

// ListProducts handles GET /api/products
// Returns every product, seeding the catalogue on first use
func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.service.ListProducts(r.Context())
	if err != nil {
		h.logger.Error("failed to list products", "error", err)
		WriteError(w, http.StatusInternalServerError, err.Error(), h.logger)
		return
	}

	WriteJSON(w, http.StatusOK, products, h.logger)
}

// CreateProduct handles POST /api/products
func (h *ProductHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req models.CreateProductRequest
	if err := h.validator.Decode(r.Body, &req); err != nil {
		var verrs validation.Errors
		if errors.As(err, &verrs) {
			h.logger.Warn("invalid product request", "error", err)
			WriteValidationError(w, verrs, h.logger)
			return
		}
		h.logger.Error("failed to validate product request", "error", err)
		WriteError(w, http.StatusInternalServerError, err.Error(), h.logger)
		return
	}

	id, err := h.service.CreateProduct(r.Context(), req.Product())
	if err != nil {
		h.logger.Error("failed to create product", "error", err)
		WriteError(w, http.StatusInternalServerError, err.Error(), h.logger)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]string{"id": id}, h.logger)
}
