package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/sync/errgroup"

	"github.com/rkshop/admin-api/internal/domain"
	"github.com/rkshop/admin-api/internal/store"
)

// MongoProductStore implements store.ProductStore backed by the products
// collection.
type MongoProductStore struct {
	coll *mongo.Collection
}

var _ store.ProductStore = (*MongoProductStore)(nil)

// NewProductStore creates a MongoDB implementation of store.ProductStore.
func NewProductStore(db *mongo.Database) *MongoProductStore {
	return &MongoProductStore{coll: db.Collection(productsCollection)}
}

// Create implements store.ProductStore.Create.
func (s *MongoProductStore) Create(ctx context.Context, product *domain.Product) error {
	if _, err := s.coll.InsertOne(ctx, product); err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// List implements store.ProductStore.List. The page read and the total
// count are independent, so they run concurrently and join before
// returning.
func (s *MongoProductStore) List(ctx context.Context, page, limit int64) (*store.ProductPage, error) {
	var (
		items []domain.Product
		total int64
	)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		opts := options.Find().
			SetSort(bson.D{{Key: "createdAt", Value: -1}}).
			SetSkip((page - 1) * limit).
			SetLimit(limit)

		cursor, err := s.coll.Find(ctx, bson.M{}, opts)
		if err != nil {
			return fmt.Errorf("find products: %w", err)
		}
		defer func() { _ = cursor.Close(ctx) }()

		if err := cursor.All(ctx, &items); err != nil {
			return fmt.Errorf("decode products: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		count, err := s.coll.CountDocuments(ctx, bson.M{})
		if err != nil {
			return fmt.Errorf("count products: %w", err)
		}
		total = count
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if items == nil {
		items = []domain.Product{}
	}
	return &store.ProductPage{Items: items, TotalCount: total}, nil
}

// GetByID implements store.ProductStore.GetByID.
func (s *MongoProductStore) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Product, error) {
	var product domain.Product
	err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&product)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("find product: %w", store.ErrProductNotFound)
		}
		return nil, fmt.Errorf("find product: %w", err)
	}
	return &product, nil
}

// Update implements store.ProductStore.Update.
func (s *MongoProductStore) Update(ctx context.Context, product *domain.Product) error {
	update := bson.M{"$set": bson.M{
		"name":        product.Name,
		"code":        product.Code,
		"color":       product.Color,
		"description": product.Description,
		"price":       product.Price,
		"image":       product.Image,
		"categoryId":  product.CategoryID,
		"updatedAt":   time.Now().UTC(),
	}}

	result, err := s.coll.UpdateByID(ctx, product.ID, update)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("update product: %w", store.ErrProductNotFound)
	}
	return nil
}

// Delete implements store.ProductStore.Delete.
func (s *MongoProductStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := s.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("delete product: %w", store.ErrProductNotFound)
	}
	return nil
}
