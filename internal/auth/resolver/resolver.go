package resolver

import (
	"context"

	"github.com/google/uuid"

	"github.com/AyushSingh012/Secret-App/internal/auth"
)

// Resolver determines which durable user an external identity belongs
// to. It is the only place where identity-to-user mapping logic lives.
type Resolver interface {
	Resolve(ctx context.Context, identity *auth.Identity) (uuid.UUID, error)
}
