package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/rkshop/admin-api/internal/domain"
)

// ProductPage bundles one page of products with the collection-wide count,
// both read in a single List call.
type ProductPage struct {
	Items      []domain.Product
	TotalCount int64
}

// ProductStore defines the interface for product persistence.
type ProductStore interface {
	// Create saves a new product.
	Create(ctx context.Context, product *domain.Product) error

	// List returns one page of products, newest first, together with the
	// total product count. Page numbering starts at 1.
	List(ctx context.Context, page, limit int64) (*ProductPage, error)

	// GetByID retrieves a product by its ObjectID.
	// Returns ErrProductNotFound if it does not exist.
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Product, error)

	// Update replaces the mutable fields of an existing product.
	// Returns ErrProductNotFound if it does not exist.
	Update(ctx context.Context, product *domain.Product) error

	// Delete removes a product.
	// Returns ErrProductNotFound if it does not exist.
	Delete(ctx context.Context, id primitive.ObjectID) error
}
