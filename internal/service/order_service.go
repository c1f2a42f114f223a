package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/saree-store/backend/internal/models"
	"github.com/saree-store/backend/internal/serializer"
)

// OrderRepository interface for order data access
type OrderRepository interface {
	Create(ctx context.Context, o models.Order) (string, error)
}

// OrderService handles order business logic
//
// Item prices and totals are stored as submitted; they are not checked
// against the product catalogue.
type OrderService struct {
	repo   OrderRepository
	logger *slog.Logger
	now    func() time.Time
}

// NewOrderService creates a new order service
func NewOrderService(repo OrderRepository, logger *slog.Logger) *OrderService {
	return &OrderService{
		repo:   repo,
		logger: logger,
		now:    time.Now,
	}
}

// CreateOrder stores a validated order and returns its receipt
func (s *OrderService) CreateOrder(ctx context.Context, order models.Order) (*models.OrderReceipt, error) {
	id, err := s.repo.Create(ctx, order)
	if err != nil {
		return nil, err
	}

	s.logger.Info("order created", "order_id", id, "items_count", len(order.Items), "total", order.Total)

	return &models.OrderReceipt{
		ID:        id,
		Status:    models.OrderStatusReceived,
		CreatedAt: serializer.FormatTime(s.now()),
	}, nil
}
