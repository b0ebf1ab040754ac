package credentials

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/AyushSingh012/Secret-App/internal/store"
)

var (
	ErrInvalidCredentials = errors.New("credentials: invalid email or password")
	ErrAlreadyRegistered  = errors.New("credentials: account already exists")
)

// dummyDigest is compared against when no local digest exists for the
// presented email, so that "unknown user" and "wrong password" burn the
// same hashing cost. The comparison result is always discarded.
const dummyDigest = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// Service is the local (email + password) identity resolver.
type Service struct {
	store store.Store
	cost  int
}

func NewService(st store.Store, cost int) *Service {
	return &Service{store: st, cost: cost}
}

// Register creates a new local account. The insert is a single atomic
// operation; a uniqueness conflict surfaces as ErrAlreadyRegistered and
// never disturbs the existing row.
func (s *Service) Register(ctx context.Context, email, password string) (uuid.UUID, error) {
	digest, err := HashPassword(password, s.cost)
	if err != nil {
		return uuid.Nil, fmt.Errorf("credentials: hash password: %w", err)
	}

	u, err := s.store.Create(ctx, email, store.LocalCredential(digest))
	if err != nil {
		if errors.Is(err, store.ErrDuplicateEmail) {
			return uuid.Nil, ErrAlreadyRegistered
		}
		return uuid.Nil, err
	}

	return u.ID, nil
}

// Authenticate verifies a password against the stored digest and
// returns the user ID. Unknown user, external-only account and wrong
// password all collapse into ErrInvalidCredentials, and every failure
// path performs one bcrypt comparison.
func (s *Service) Authenticate(ctx context.Context, email, password string) (uuid.UUID, error) {
	u, err := s.store.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			_ = VerifyPassword(dummyDigest, password)
			return uuid.Nil, ErrInvalidCredentials
		}
		return uuid.Nil, err
	}

	if u.Credential.Kind != store.CredentialLocal {
		_ = VerifyPassword(dummyDigest, password)
		return uuid.Nil, ErrInvalidCredentials
	}

	if err := VerifyPassword(u.Credential.Digest, password); err != nil {
		if errors.Is(err, ErrMalformedDigest) {
			return uuid.Nil, err
		}
		return uuid.Nil, ErrInvalidCredentials
	}

	return u.ID, nil
}
