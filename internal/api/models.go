package api

// Typed request and response models, one per endpoint. The validate tags
// are the endpoint's declarative rule set; the validation package evaluates
// them without short-circuiting.

// LoginRequest defines the payload for the login endpoint.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RegisterRequest defines the payload for the registration endpoint.
type RegisterRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// LoginResponse is the data payload of a successful login. The password
// hash is never part of any response.
type LoginResponse struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	AccessToken string `json:"accessToken"`
}

// ProductImageRequest is the nested image reference on product writes.
// Both sub-fields come from a prior media upload.
type ProductImageRequest struct {
	PublicID  string `json:"publicId"  validate:"required"`
	SecureURL string `json:"secureUrl" validate:"required,url"`
}

// ProductRequest defines the payload for product create and edit.
type ProductRequest struct {
	ProductName        string              `json:"productName"        validate:"required"`
	ProductCode        string              `json:"productCode"        validate:"required"`
	ProductColor       string              `json:"productColor"       validate:"required"`
	ProductDescription string              `json:"productDescription"`
	ProductPrice       *int64              `json:"productPrice"       validate:"required"`
	ProductImage       ProductImageRequest `json:"productImage"`
	CategoryID         string              `json:"categoryId"         validate:"required,objectid"`
}

// ProductListQuery defines the pagination query for product list.
// Both values are required positive integers.
type ProductListQuery struct {
	Page  int64 `json:"page"  validate:"required,gt=0"`
	Limit int64 `json:"limit" validate:"required,gt=0"`
}

// ProductIDParam wraps the path identifier so it runs through the same
// rule engine as request bodies.
type ProductIDParam struct {
	ProductID string `json:"productId" validate:"required,objectid"`
}

// CategoryRequest defines the payload for category create.
type CategoryRequest struct {
	CategoryName        string `json:"categoryName"        validate:"required"`
	CategoryParentID    string `json:"categoryParentId"    validate:"omitempty,objectid"`
	CategoryURL         string `json:"categoryUrl"         validate:"required"`
	CategoryDescription string `json:"categoryDescription"`
	CategoryStatus      *int   `json:"categoryStatus"      validate:"required,oneof=0 1"`
}

// MediaUploadResponse is one uploaded file's host-assigned identifiers.
type MediaUploadResponse struct {
	PublicID  string `json:"public_id"`
	SecureURL string `json:"secure_url"`
}
