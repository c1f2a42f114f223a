package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/saree-store/backend/internal/models"
	"github.com/saree-store/backend/internal/repository"
	"github.com/saree-store/backend/internal/serializer"
)

// ProductRepository interface for product data access
type ProductRepository interface {
	GetAll(ctx context.Context) ([]repository.Document, error)
	Create(ctx context.Context, p models.Product) (string, error)
}

// ProductService handles business logic for products
type ProductService struct {
	repo   ProductRepository
	logger *slog.Logger
}

// NewProductService creates a new product service
func NewProductService(repo ProductRepository, logger *slog.Logger) *ProductService {
	return &ProductService{
		repo:   repo,
		logger: logger,
	}
}

// ListProducts returns all products serialized for the API. An empty
// collection is seeded with the sample catalogue first.
//
// The emptiness check and the inserts are not atomic: concurrent first
// calls can each seed the catalogue.
func (s *ProductService) ListProducts(ctx context.Context) ([]map[string]any, error) {
	docs, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	if len(docs) == 0 {
		if err := s.seed(ctx); err != nil {
			return nil, err
		}
		if docs, err = s.repo.GetAll(ctx); err != nil {
			return nil, err
		}
	}

	return serializer.Products.SerializeAll(docs), nil
}

// CreateProduct stores p and returns its id
func (s *ProductService) CreateProduct(ctx context.Context, p models.Product) (string, error) {
	id, err := s.repo.Create(ctx, p)
	if err != nil {
		return "", err
	}

	s.logger.Info("product created", "product_id", id, "title", p.Title)
	return id, nil
}

func (s *ProductService) seed(ctx context.Context) error {
	samples := sampleProducts()
	for _, p := range samples {
		if _, err := s.repo.Create(ctx, p); err != nil {
			return fmt.Errorf("failed to seed product %q: %w", p.Title, err)
		}
	}

	s.logger.Info("seeded sample products", "count", len(samples))
	return nil
}
