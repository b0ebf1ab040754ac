package credentials

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// DefaultCost matches the work factor the service has always used.
const DefaultCost = 10

// ErrMalformedDigest is returned by VerifyPassword when the stored
// digest is not a bcrypt hash at all, as opposed to a mismatch.
var ErrMalformedDigest = errors.New("credentials: malformed password digest")

// HashPassword hashes a plaintext password using bcrypt. Cost values
// outside bcrypt's range fall back to DefaultCost.
func HashPassword(password string, cost int) (string, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultCost
	}

	bytes, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// VerifyPassword compares a plaintext password with a stored digest.
// A mismatch returns bcrypt.ErrMismatchedHashAndPassword; anything that
// is not a comparison outcome is reported as ErrMalformedDigest.
func VerifyPassword(digest string, password string) error {
	err := bcrypt.CompareHashAndPassword([]byte(digest), []byte(password))
	if err == nil || errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return err
	}
	return ErrMalformedDigest
}
