package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/saree-store/backend/internal/models"
	"github.com/saree-store/backend/internal/repository"
	"github.com/saree-store/backend/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderService_CreateOrder(t *testing.T) {
	store := repository.NewMemoryStore("test")
	svc := NewOrderService(repository.NewOrderRepository(store), logger.New("error"))
	fixed := time.Date(2024, 6, 1, 9, 15, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }
	ctx := context.Background()

	tests := []struct {
		name  string
		order models.Order
	}{
		{
			name: "single item",
			order: models.Order{
				CustomerName:    "Asha",
				CustomerEmail:   "asha@example.com",
				CustomerAddress: "12 Temple Street, Chennai",
				Items:           []models.OrderItem{{ProductID: "p1", Title: "Saree A", Price: 100.0, Quantity: 2}},
				Subtotal:        200,
				Shipping:        10,
				Total:           210,
			},
		},
		{
			name: "empty items",
			order: models.Order{
				CustomerName:    "Ravi",
				CustomerEmail:   "ravi@example.com",
				CustomerAddress: "Madurai",
				Items:           []models.OrderItem{},
			},
		},
		{
			name: "client totals are not recomputed",
			order: models.Order{
				CustomerName:    "Meera",
				CustomerEmail:   "meera@example.com",
				CustomerAddress: "Kochi",
				Items:           []models.OrderItem{{ProductID: "unknown", Title: "Ghost", Price: 5, Quantity: 1}},
				Subtotal:        1,
				Total:           1,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			receipt, err := svc.CreateOrder(ctx, tt.order)
			require.NoError(t, err)

			assert.NotEmpty(t, receipt.ID)
			assert.Equal(t, "received", receipt.Status)
			assert.Equal(t, "2024-06-01T09:15:00Z", receipt.CreatedAt)
		})
	}

	docs, err := store.GetDocuments(ctx, repository.CollectionOrders)
	require.NoError(t, err)
	require.Len(t, docs, len(tests))
	assert.Equal(t, 1.0, docs[2]["total"])
}

type failingOrderRepo struct{ err error }

func (r failingOrderRepo) Create(ctx context.Context, o models.Order) (string, error) {
	return "", r.err
}

func TestOrderService_CreateOrder_StoreError(t *testing.T) {
	boom := errors.New("write concern error")
	svc := NewOrderService(failingOrderRepo{err: boom}, logger.New("error"))

	receipt, err := svc.CreateOrder(context.Background(), models.Order{})
	assert.Nil(t, receipt)
	assert.ErrorIs(t, err, boom)
}
