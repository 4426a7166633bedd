package mocks

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/rkshop/admin-api/internal/domain"
	"github.com/rkshop/admin-api/internal/store"
)

// MockUserStore implements store.UserStore for testing.
type MockUserStore struct {
	CreateFn     func(ctx context.Context, user *domain.User) error
	GetByEmailFn func(ctx context.Context, email string) (*domain.User, error)
}

// Create implements store.UserStore.
func (m *MockUserStore) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, user)
	}
	return nil
}

// GetByEmail implements store.UserStore.
func (m *MockUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.GetByEmailFn != nil {
		return m.GetByEmailFn(ctx, email)
	}
	return nil, store.ErrUserNotFound
}

// MockProductStore implements store.ProductStore for testing.
type MockProductStore struct {
	CreateFn  func(ctx context.Context, product *domain.Product) error
	ListFn    func(ctx context.Context, page, limit int64) (*store.ProductPage, error)
	GetByIDFn func(ctx context.Context, id primitive.ObjectID) (*domain.Product, error)
	UpdateFn  func(ctx context.Context, product *domain.Product) error
	DeleteFn  func(ctx context.Context, id primitive.ObjectID) error
}

// Create implements store.ProductStore.
func (m *MockProductStore) Create(ctx context.Context, product *domain.Product) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, product)
	}
	return nil
}

// List implements store.ProductStore.
func (m *MockProductStore) List(ctx context.Context, page, limit int64) (*store.ProductPage, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, page, limit)
	}
	return &store.ProductPage{Items: []domain.Product{}}, nil
}

// GetByID implements store.ProductStore.
func (m *MockProductStore) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Product, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, store.ErrProductNotFound
}

// Update implements store.ProductStore.
func (m *MockProductStore) Update(ctx context.Context, product *domain.Product) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, product)
	}
	return nil
}

// Delete implements store.ProductStore.
func (m *MockProductStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}

// MockCategoryStore implements store.CategoryStore for testing.
type MockCategoryStore struct {
	CreateFn       func(ctx context.Context, category *domain.Category) error
	ListTopLevelFn func(ctx context.Context) ([]domain.Category, error)
}

// Create implements store.CategoryStore.
func (m *MockCategoryStore) Create(ctx context.Context, category *domain.Category) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, category)
	}
	return nil
}

// ListTopLevel implements store.CategoryStore.
func (m *MockCategoryStore) ListTopLevel(ctx context.Context) ([]domain.Category, error) {
	if m.ListTopLevelFn != nil {
		return m.ListTopLevelFn(ctx)
	}
	return []domain.Category{}, nil
}
