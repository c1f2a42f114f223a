package repository

import (
	"context"

	"github.com/saree-store/backend/internal/models"
)

// OrderRepository writes the order collection
type OrderRepository struct {
	store DocumentStore
}

// NewOrderRepository creates an order repository
func NewOrderRepository(store DocumentStore) *OrderRepository {
	return &OrderRepository{store: store}
}

// Create inserts an order and returns its id
func (r *OrderRepository) Create(ctx context.Context, o models.Order) (string, error) {
	if r.store == nil {
		return "", ErrStoreUnavailable
	}
	return r.store.CreateDocument(ctx, CollectionOrders, o)
}
