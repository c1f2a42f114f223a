package repository

import (
	"context"

	"github.com/saree-store/backend/internal/models"
)

// ProductRepository reads and writes the product collection
type ProductRepository struct {
	store DocumentStore
}

// NewProductRepository creates a product repository. A nil store makes every
// call fail with ErrStoreUnavailable.
func NewProductRepository(store DocumentStore) *ProductRepository {
	return &ProductRepository{store: store}
}

// GetAll returns all raw product documents
func (r *ProductRepository) GetAll(ctx context.Context) ([]Document, error) {
	if r.store == nil {
		return nil, ErrStoreUnavailable
	}
	return r.store.GetDocuments(ctx, CollectionProducts)
}

// Create inserts a product and returns its id
func (r *ProductRepository) Create(ctx context.Context, p models.Product) (string, error) {
	if r.store == nil {
		return "", ErrStoreUnavailable
	}
	return r.store.CreateDocument(ctx, CollectionProducts, p)
}
