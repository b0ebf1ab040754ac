package secrets

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/AyushSingh012/Secret-App/internal/store"
)

// Service reads and writes the single per-user secret. The user record
// is re-fetched through the store on every read; nothing is cached in
// session state.
type Service struct {
	store store.Store
}

func NewService(st store.Store) *Service {
	return &Service{store: st}
}

// Get returns the stored secret for the user, or "" when none has been
// submitted yet. The "you should submit a secret" wording is a
// presentation concern and lives in the handler layer.
func (s *Service) Get(ctx context.Context, userID uuid.UUID) (string, error) {
	u, err := s.store.FindByID(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("secrets: load user: %w", err)
	}
	return u.Secret, nil
}

// Submit replaces the user's secret.
func (s *Service) Submit(ctx context.Context, userID uuid.UUID, secret string) error {
	if err := s.store.UpdateSecret(ctx, userID, secret); err != nil {
		return fmt.Errorf("secrets: store secret: %w", err)
	}
	return nil
}
