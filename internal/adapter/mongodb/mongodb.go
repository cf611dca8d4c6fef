// Package mongodb implements the domain repositories using MongoDB.
package mongodb

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

const connectTimeout = 5 * time.Second

// Store wraps the shared database handle used by the repositories.
type Store struct {
	client *mongo.Client
	db     *mongo.Database
}

// Close disconnects the underlying client.
func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// Connector lazily establishes the process-wide Store. The first caller of
// Get performs the connection; racing callers share that single in-flight
// initialization, and the result (handle or failure) is cached until
// process exit.
type Connector struct {
	uri  string
	name string

	once  sync.Once
	store *Store
	err   error

	dial func(ctx context.Context, uri, name string) (*Store, error)
}

// NewConnector creates a Connector for the given raw connection string and
// database name. The connection string is sanitized here, once, and the raw
// form is discarded.
func NewConnector(rawURI, name string) *Connector {
	return &Connector{uri: SanitizeURI(rawURI), name: name, dial: dial}
}

// Get returns the shared Store, connecting on first use.
func (c *Connector) Get(ctx context.Context) (*Store, error) {
	c.once.Do(func() {
		c.store, c.err = c.dial(ctx, c.uri, c.name)
	})
	return c.store, c.err
}

func dial(ctx context.Context, uri, name string) (*Store, error) {
	client, err := mongo.Connect(options.Client().ApplyURI(uri).SetServerSelectionTimeout(connectTimeout))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo ping: %w", err)
	}

	db := client.Database(name)
	if err := ensureIndexes(ctx, db); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}
	return &Store{client: client, db: db}, nil
}

// ensureIndexes enforces the at-most-one-record-per-email invariant at the
// store level. Single-document upserts rely on this for atomicity.
func ensureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection("users").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("ensure users index: %w", err)
	}
	return nil
}
