package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/rkshop/admin-api/internal/domain"
	"github.com/rkshop/admin-api/internal/store"
)

// MongoUserStore implements store.UserStore backed by the users collection.
type MongoUserStore struct {
	coll *mongo.Collection
}

var _ store.UserStore = (*MongoUserStore)(nil)

// NewUserStore creates a MongoDB implementation of store.UserStore.
func NewUserStore(db *mongo.Database) *MongoUserStore {
	return &MongoUserStore{coll: db.Collection(usersCollection)}
}

// Create implements store.UserStore.Create.
func (s *MongoUserStore) Create(ctx context.Context, user *domain.User) error {
	if err := user.Validate(); err != nil {
		return err
	}

	if _, err := s.coll.InsertOne(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("insert user: %w", store.ErrEmailExists)
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByEmail implements store.UserStore.GetByEmail.
func (s *MongoUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	err := s.coll.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("find user by email: %w", store.ErrUserNotFound)
		}
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return &user, nil
}
