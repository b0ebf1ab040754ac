package store

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrNotFound is returned when no user matches the lookup key.
	ErrNotFound = errors.New("store: user not found")

	// ErrDuplicateEmail is returned when an insert loses the uniqueness
	// race on email. Callers treat it as "someone else just created it".
	ErrDuplicateEmail = errors.New("store: email already registered")
)

// CredentialKind tags how an account proves its identity.
type CredentialKind int

const (
	// CredentialLocal means a bcrypt digest is on file.
	CredentialLocal CredentialKind = iota

	// CredentialExternalOnly means the account was provisioned through an
	// external provider and has no usable local password.
	CredentialExternalOnly
)

// Credential is the tagged variant stored per user. Digest is only
// meaningful for CredentialLocal.
type Credential struct {
	Kind   CredentialKind
	Digest string
}

func LocalCredential(digest string) Credential {
	return Credential{Kind: CredentialLocal, Digest: digest}
}

func ExternalOnlyCredential() Credential {
	return Credential{Kind: CredentialExternalOnly}
}

// User is the durable identity keyed by email. Email matching is
// exact (case-sensitive); the store never normalizes it.
type User struct {
	ID         uuid.UUID
	Email      string
	Credential Credential
	Secret     string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Store is the persistence boundary for user identities. Create must be
// a single atomic insert that surfaces ErrDuplicateEmail on conflict,
// never an exists-check followed by an insert.
type Store interface {
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)
	Create(ctx context.Context, email string, cred Credential) (*User, error)
	UpdateSecret(ctx context.Context, id uuid.UUID, secret string) error
}
