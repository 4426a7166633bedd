// Package store defines the persistence interfaces the API depends on.
// Implementations live under internal/platform.
package store

import "errors"

// Sentinel errors returned by store implementations. Handlers map these to
// HTTP responses with errors.Is, so implementations must wrap rather than
// replace them.
var (
	ErrUserNotFound     = errors.New("user not found")
	ErrEmailExists      = errors.New("email already exists")
	ErrProductNotFound  = errors.New("product not found")
	ErrCategoryNotFound = errors.New("category not found")
)
