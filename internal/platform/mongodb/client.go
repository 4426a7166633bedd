// Package mongodb implements the store interfaces on top of a MongoDB
// document database.
package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/rkshop/admin-api/internal/config"
)

// Collection names used by the store implementations.
const (
	usersCollection      = "users"
	productsCollection   = "products"
	categoriesCollection = "categories"
)

const connectTimeout = 10 * time.Second

// Connect establishes a client connection to the configured database and
// verifies it with a ping. The returned database handle is shared by all
// store implementations; the caller owns the client's lifecycle.
func Connect(ctx context.Context, cfg config.DatabaseConfig) (*mongo.Client, *mongo.Database, error) {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	db := client.Database(cfg.Name)

	// Registration relies on email uniqueness; enforce it at the store
	// level rather than trusting the pre-insert lookup alone.
	_, err = db.Collection(usersCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		_ = client.Disconnect(ctx)
		return nil, nil, fmt.Errorf("failed to ensure email index: %w", err)
	}

	return client, db, nil
}
