package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Collection names, the lowercase entity name
const (
	CollectionProducts = "product"
	CollectionOrders   = "order"
)

var (
	ErrStoreUnavailable = errors.New("database not available: check DATABASE_URL and DATABASE_NAME environment variables")
)

// Document is a raw stored record as returned by the store
type Document = map[string]any

// DocumentStore is the minimal persistence surface the service needs
type DocumentStore interface {
	CreateDocument(ctx context.Context, collection string, v any) (string, error)
	GetDocuments(ctx context.Context, collection string) ([]Document, error)
}

// DatabaseProbe exposes what the diagnostics endpoint reports about the store
type DatabaseProbe interface {
	Name() string
	ListCollectionNames(ctx context.Context) ([]string, error)
}

// Store is implemented by every concrete document store
type Store interface {
	DocumentStore
	DatabaseProbe
	Close(ctx context.Context) error
}

// NewDocument converts v into the BSON document shape the store persists and
// stamps created_at and updated_at with now.
func NewDocument(v any, now time.Time) (bson.M, error) {
	raw, err := bson.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to encode document: %w", err)
	}

	doc := bson.M{}
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode document: %w", err)
	}

	ts := primitive.NewDateTimeFromTime(now.UTC())
	doc["created_at"] = ts
	doc["updated_at"] = ts
	return doc, nil
}
