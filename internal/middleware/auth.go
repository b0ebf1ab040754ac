package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/AyushSingh012/Secret-App/internal/session"
)

// unexported, collision-proof context key
type userIDContextKeyType struct{}

var userIDKey = userIDContextKeyType{}

// UserIDFromContext extracts the authenticated user ID from context.
func UserIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userIDKey).(string)
	return id, ok
}

func contextWithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// AuthMiddleware is the gate in front of protected pages: a request
// passes iff its session cookie resolves to a live session. Failures
// redirect to the login page; the user store is never consulted here.
type AuthMiddleware struct {
	Store session.Store
}

func NewAuthMiddleware(store session.Store) *AuthMiddleware {
	return &AuthMiddleware{Store: store}
}

// authenticate resolves the request's session token to a user ID.
// Expired sessions are revoked on sight.
func (a *AuthMiddleware) authenticate(r *http.Request) (string, bool) {
	token := session.ReadToken(r)
	if token == "" {
		return "", false
	}

	sess, err := a.Store.Get(r.Context(), token)
	if err != nil || sess == nil {
		return "", false
	}

	if time.Now().After(sess.ExpiresAt) {
		_ = a.Store.Delete(r.Context(), token)
		return "", false
	}

	return sess.UserID, true
}

// RequireAuth wraps a plain net/http handler with the gate.
func (a *AuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := a.authenticate(r)
		if !ok {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}

		next.ServeHTTP(w, r.WithContext(contextWithUserID(r.Context(), userID)))
	})
}
