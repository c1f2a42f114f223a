package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/saree-store/backend/internal/serializer"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// MongoStore implements Store on a MongoDB database
type MongoStore struct {
	client *mongo.Client
	db     *mongo.Database
	now    func() time.Time
}

// ConnectMongo creates a client for uri and selects database name. The driver
// connects lazily, so an unreachable server is not an error here; use Ping to
// check reachability.
func ConnectMongo(ctx context.Context, uri, name string) (*MongoStore, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}

	return &MongoStore{
		client: client,
		db:     client.Database(name),
		now:    time.Now,
	}, nil
}

// Ping checks that the primary is reachable
func (s *MongoStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, readpref.Primary())
}

// CreateDocument inserts v into collection and returns the new id as a string
func (s *MongoStore) CreateDocument(ctx context.Context, collection string, v any) (string, error) {
	doc, err := NewDocument(v, s.now())
	if err != nil {
		return "", err
	}

	res, err := s.db.Collection(collection).InsertOne(ctx, doc)
	if err != nil {
		return "", err
	}

	return serializer.FormatID(res.InsertedID), nil
}

// GetDocuments returns every document in collection. Errors come straight
// from the driver, as in CreateDocument, so handlers report them verbatim.
func (s *MongoStore) GetDocuments(ctx context.Context, collection string) ([]Document, error) {
	cur, err := s.db.Collection(collection).Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}

	var raw []bson.M
	if err := cur.All(ctx, &raw); err != nil {
		return nil, err
	}

	docs := make([]Document, 0, len(raw))
	for _, d := range raw {
		docs = append(docs, d)
	}
	return docs, nil
}

// ListCollectionNames returns the collections of the selected database.
// Driver errors are returned unwrapped since /test shows only their first
// characters.
func (s *MongoStore) ListCollectionNames(ctx context.Context) ([]string, error) {
	return s.db.ListCollectionNames(ctx, bson.D{})
}

// Name returns the database name
func (s *MongoStore) Name() string {
	return s.db.Name()
}

// Close disconnects the client
func (s *MongoStore) Close(ctx context.Context) error {
	if err := s.client.Disconnect(ctx); err != nil && !errors.Is(err, mongo.ErrClientDisconnected) {
		return fmt.Errorf("failed to disconnect database: %w", err)
	}
	return nil
}
