package auth

import "golang.org/x/crypto/bcrypt"

// bcryptCost matches the cost factor the legacy user records were hashed
// with; raising it would not invalidate existing hashes but keeps new and
// old records comparable.
const bcryptCost = 10

// PasswordHasher defines the interface for one-way password hashing.
type PasswordHasher interface {
	// Hash transforms a plaintext password into a salted hash.
	Hash(password string) (string, error)
}

// PasswordVerifier defines the interface for comparing passwords.
type PasswordVerifier interface {
	// Compare checks a plaintext password against a stored hash.
	// It fails closed: an empty or malformed stored hash is a mismatch,
	// never an internal error.
	Compare(hashedPassword, password string) bool
}

// BcryptService implements PasswordHasher and PasswordVerifier using bcrypt.
type BcryptService struct{}

// NewBcryptService creates a new BcryptService.
func NewBcryptService() *BcryptService {
	return &BcryptService{}
}

// Hash implements PasswordHasher.
func (s *BcryptService) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Compare implements PasswordVerifier. bcrypt reports a malformed hash as
// an error, which collapses to false here so callers always treat it as a
// failed authentication.
func (s *BcryptService) Compare(hashedPassword, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password)) == nil
}
