package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/rkshop/admin-api/internal/domain"
	"github.com/rkshop/admin-api/internal/store"
)

// MongoCategoryStore implements store.CategoryStore backed by the
// categories collection.
type MongoCategoryStore struct {
	coll *mongo.Collection
}

var _ store.CategoryStore = (*MongoCategoryStore)(nil)

// NewCategoryStore creates a MongoDB implementation of store.CategoryStore.
func NewCategoryStore(db *mongo.Database) *MongoCategoryStore {
	return &MongoCategoryStore{coll: db.Collection(categoriesCollection)}
}

// Create implements store.CategoryStore.Create.
func (s *MongoCategoryStore) Create(ctx context.Context, category *domain.Category) error {
	if err := category.Validate(); err != nil {
		return err
	}

	if _, err := s.coll.InsertOne(ctx, category); err != nil {
		return fmt.Errorf("insert category: %w", err)
	}
	return nil
}

// ListTopLevel implements store.CategoryStore.ListTopLevel. It reads the
// parentless categories and their children in two queries and stitches the
// hierarchy together in memory; a nil parentId matches both explicit nulls
// and legacy documents missing the field.
func (s *MongoCategoryStore) ListTopLevel(ctx context.Context) ([]domain.Category, error) {
	sortByCreated := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})

	parents, err := s.find(ctx, bson.M{"parentId": nil}, sortByCreated)
	if err != nil {
		return nil, err
	}

	children, err := s.find(ctx, bson.M{"parentId": bson.M{"$ne": nil}}, sortByCreated)
	if err != nil {
		return nil, err
	}

	byParent := make(map[string][]domain.Category, len(parents))
	for _, child := range children {
		if child.ParentID == nil {
			continue
		}
		key := child.ParentID.Hex()
		byParent[key] = append(byParent[key], child)
	}

	for i := range parents {
		subs := byParent[parents[i].ID.Hex()]
		if subs == nil {
			subs = []domain.Category{}
		}
		parents[i].SubCategories = subs
	}

	return parents, nil
}

func (s *MongoCategoryStore) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]domain.Category, error) {
	cursor, err := s.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("find categories: %w", err)
	}
	defer func() { _ = cursor.Close(ctx) }()

	var categories []domain.Category
	if err := cursor.All(ctx, &categories); err != nil {
		return nil, fmt.Errorf("decode categories: %w", err)
	}
	if categories == nil {
		categories = []domain.Category{}
	}
	return categories, nil
}
