package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Category status values accepted from the API. The stored field allows the
// wider 0-255 range for forward compatibility with the legacy data set.
const (
	CategoryStatusInactive = 0
	CategoryStatusActive   = 1

	categoryStatusMax = 255
)

// Category is a node in the category hierarchy. A nil ParentID marks a
// top-level category. SubCategories is a derived relationship attached by
// the list operation and is never persisted.
type Category struct {
	ID            primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	ParentID      *primitive.ObjectID `bson:"parentId"      json:"parentId"`
	Name          string              `bson:"name"          json:"name"`
	URL           string              `bson:"url"           json:"url"`
	Description   string              `bson:"description"   json:"description"`
	Status        int                 `bson:"status"        json:"status"`
	SubCategories []Category          `bson:"-"             json:"subCategories"`
	CreatedAt     time.Time           `bson:"createdAt"     json:"createdAt"`
	UpdatedAt     time.Time           `bson:"updatedAt"     json:"updatedAt"`
}

// IsTopLevel reports whether the category has no parent.
func (c *Category) IsTopLevel() bool {
	return c.ParentID == nil
}

// Validate checks the invariants a stored category must satisfy.
func (c *Category) Validate() error {
	if c.Name == "" || c.URL == "" {
		return ErrValidation
	}
	if c.Status < 0 || c.Status > categoryStatusMax {
		return ErrInvalidStatus
	}
	return nil
}
