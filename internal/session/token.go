package session

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

// tokenBytes gives 256 bits of entropy per session token, enough that
// guessing one is not a practical attack.
const tokenBytes = 32

// NewToken mints the opaque identifier a session is keyed by.
func NewToken() (string, error) {
	b := make([]byte, tokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("session: token generation: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
