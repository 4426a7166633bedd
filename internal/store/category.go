package store

import (
	"context"

	"github.com/rkshop/admin-api/internal/domain"
)

// CategoryStore defines the interface for category persistence.
type CategoryStore interface {
	// Create saves a new category.
	Create(ctx context.Context, category *domain.Category) error

	// ListTopLevel returns all categories without a parent, each with its
	// immediate children attached under SubCategories.
	ListTopLevel(ctx context.Context) ([]domain.Category, error)
}
