package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents a registered administrator of the shop API.
// The password hash is stored under the legacy "password" field name
// and is never serialized to JSON.
type User struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name           string             `bson:"name"          json:"name"`
	Email          string             `bson:"email"         json:"email"`
	HashedPassword string             `bson:"password"      json:"-"`
	CreatedAt      time.Time          `bson:"createdAt"     json:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt"     json:"updatedAt"`
}

// NewUser creates a User with a fresh ObjectID and timestamps.
// The caller must supply an already-hashed password; plaintext never
// reaches the domain layer.
func NewUser(name, email, hashedPassword string) (*User, error) {
	now := time.Now().UTC()
	user := &User{
		ID:             primitive.NewObjectID(),
		Name:           name,
		Email:          email,
		HashedPassword: hashedPassword,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := user.Validate(); err != nil {
		return nil, err
	}
	return user, nil
}

// Validate checks the invariants a stored user must satisfy.
func (u *User) Validate() error {
	if u.Email == "" {
		return ErrEmptyEmail
	}
	if u.HashedPassword == "" {
		return ErrEmptyHashedPassword
	}
	return nil
}
