package api

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/rkshop/admin-api/internal/domain"
	"github.com/rkshop/admin-api/internal/mocks"
)

func TestCategoryHandler_Create(t *testing.T) {
	t.Parallel()

	t.Run("success with parent", func(t *testing.T) {
		t.Parallel()

		parentID := primitive.NewObjectID()

		var created *domain.Category
		categoryStore := &mocks.MockCategoryStore{
			CreateFn: func(_ context.Context, category *domain.Category) error {
				created = category
				return nil
			},
		}
		handler := NewCategoryHandler(categoryStore, nil)

		recorder := postJSON(t, handler.Create, "/api/category",
			`{"categoryName":"Shoes","categoryParentId":"`+parentID.Hex()+`","categoryUrl":"https://shop.example.com/shoes","categoryStatus":1}`)

		assert.Equal(t, http.StatusCreated, recorder.Code)
		envelope := decodeEnvelope(t, recorder)
		assert.True(t, envelope.Success)
		assert.Equal(t, "Category added successfully", envelope.Message)

		require.NotNil(t, created)
		assert.Equal(t, "Shoes", created.Name)
		require.NotNil(t, created.ParentID)
		assert.Equal(t, parentID, *created.ParentID)
		assert.Equal(t, domain.CategoryStatusActive, created.Status)
	})

	t.Run("success without parent", func(t *testing.T) {
		t.Parallel()

		var created *domain.Category
		categoryStore := &mocks.MockCategoryStore{
			CreateFn: func(_ context.Context, category *domain.Category) error {
				created = category
				return nil
			},
		}
		handler := NewCategoryHandler(categoryStore, nil)

		recorder := postJSON(t, handler.Create, "/api/category",
			`{"categoryName":"Shoes","categoryUrl":"https://shop.example.com/shoes","categoryStatus":0}`)

		assert.Equal(t, http.StatusCreated, recorder.Code)
		require.NotNil(t, created)
		assert.Nil(t, created.ParentID)
		assert.True(t, created.IsTopLevel())
		// A zero status is a valid, deliberate value.
		assert.Equal(t, domain.CategoryStatusInactive, created.Status)
	})

	t.Run("status outside enum", func(t *testing.T) {
		t.Parallel()

		handler := NewCategoryHandler(&mocks.MockCategoryStore{}, nil)

		recorder := postJSON(t, handler.Create, "/api/category",
			`{"categoryName":"Shoes","categoryUrl":"https://shop.example.com/shoes","categoryStatus":7}`)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		envelope := decodeEnvelope(t, recorder)
		assert.Equal(t, "Validation failed for given parameters", envelope.Message)

		// Create paths use the legacy "error" list key.
		require.Len(t, envelope.Error, 1)
		assert.Equal(t, "categoryStatus", envelope.Error[0].Field)
		assert.Equal(t, "categoryStatus must be one of [0, 1]", envelope.Error[0].Message)
	})

	t.Run("malformed parent id", func(t *testing.T) {
		t.Parallel()

		handler := NewCategoryHandler(&mocks.MockCategoryStore{}, nil)

		recorder := postJSON(t, handler.Create, "/api/category",
			`{"categoryName":"Shoes","categoryParentId":"nope","categoryUrl":"https://shop.example.com/shoes","categoryStatus":1}`)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		envelope := decodeEnvelope(t, recorder)
		require.Len(t, envelope.Error, 1)
		assert.Equal(t, "categoryParentId contains an invalid value", envelope.Error[0].Message)
	})
}

func TestCategoryHandler_List(t *testing.T) {
	t.Parallel()

	parentID := primitive.NewObjectID()
	child := domain.Category{
		ID:       primitive.NewObjectID(),
		ParentID: &parentID,
		Name:     "Sneakers",
	}
	top := domain.Category{
		ID:            parentID,
		Name:          "Shoes",
		SubCategories: []domain.Category{child},
	}

	categoryStore := &mocks.MockCategoryStore{
		ListTopLevelFn: func(_ context.Context) ([]domain.Category, error) {
			return []domain.Category{top}, nil
		},
	}
	handler := NewCategoryHandler(categoryStore, nil)

	recorder := postJSON(t, func(w http.ResponseWriter, r *http.Request) {
		handler.List(w, r)
	}, "/api/category", "")

	assert.Equal(t, http.StatusOK, recorder.Code)
	envelope := decodeEnvelope(t, recorder)
	assert.True(t, envelope.Success)

	data, ok := envelope.Data.([]interface{})
	require.True(t, ok)
	require.Len(t, data, 1)

	entry, ok := data[0].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Shoes", entry["name"])
	assert.Nil(t, entry["parentId"])

	subs, ok := entry["subCategories"].([]interface{})
	require.True(t, ok)
	require.Len(t, subs, 1)
	sub, ok := subs[0].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Sneakers", sub["name"])
}
