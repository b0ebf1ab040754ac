package session

import (
	"context"
	"time"
)

// Session binds one browser context to one resolved identity. It
// intentionally stores only an identity reference, never the user
// record or its credential.
type Session struct {
	SessionID string    // opaque random token
	UserID    string    // references users.id
	CreatedAt time.Time //
	ExpiresAt time.Time // absolute expiry time
}

// Store defines how sessions are stored and retrieved. Get returns
// (nil, nil) for an absent or expired token; Delete is idempotent.
type Store interface {
	Create(ctx context.Context, s Session) error
	Get(ctx context.Context, sessionID string) (*Session, error)
	Delete(ctx context.Context, sessionID string) error
}
