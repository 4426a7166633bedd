package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProductImage is a reference to an image already uploaded to the external
// image host. Both fields are assigned by the host, not by this service.
type ProductImage struct {
	PublicID  string `bson:"publicId"  json:"publicId"`
	SecureURL string `bson:"secureUrl" json:"secureUrl"`
}

// Product is a catalog item managed through the admin API.
type Product struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name"          json:"name"`
	Code        string             `bson:"code"          json:"code"`
	Color       string             `bson:"color"         json:"color"`
	Description string             `bson:"description"   json:"description"`
	Price       int64              `bson:"price"         json:"price"`
	Image       ProductImage       `bson:"image"         json:"image"`
	CategoryID  primitive.ObjectID `bson:"categoryId"    json:"categoryId"`
	CreatedAt   time.Time          `bson:"createdAt"     json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt"     json:"updatedAt"`
}
