package resolver

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/AyushSingh012/Secret-App/internal/auth"
	"github.com/AyushSingh012/Secret-App/internal/store"
)

// DBResolver resolves provider identities against the user store. The
// email is the sole identity key: a provider login for an email that
// already has a local account links to that account and never alters
// its stored credential.
type DBResolver struct {
	store store.Store
}

func NewDBResolver(st store.Store) *DBResolver {
	return &DBResolver{store: st}
}

func (r *DBResolver) Resolve(ctx context.Context, identity *auth.Identity) (uuid.UUID, error) {
	if identity == nil {
		return uuid.Nil, errors.New("resolver: identity is nil")
	}
	if identity.Email == "" {
		return uuid.Nil, errors.New("resolver: identity has no email")
	}

	u, err := r.store.FindByEmail(ctx, identity.Email)
	if err == nil {
		return u.ID, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return uuid.Nil, fmt.Errorf("resolver: lookup: %w", err)
	}

	created, err := r.store.Create(ctx, identity.Email, store.ExternalOnlyCredential())
	if err == nil {
		return created.ID, nil
	}

	// Lost the insert race: another request provisioned the email
	// between lookup and insert. The winner's row is the identity.
	if errors.Is(err, store.ErrDuplicateEmail) {
		u, err = r.store.FindByEmail(ctx, identity.Email)
		if err != nil {
			return uuid.Nil, fmt.Errorf("resolver: lookup after conflict: %w", err)
		}
		return u.ID, nil
	}

	return uuid.Nil, fmt.Errorf("resolver: provision: %w", err)
}
