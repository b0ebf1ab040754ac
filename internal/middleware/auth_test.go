package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AyushSingh012/Secret-App/internal/session"
)

func protectedEcho(t *testing.T) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := UserIDFromContext(r.Context())
		require.True(t, ok)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(id))
	})
}

func doRequest(t *testing.T, handler http.Handler, cookie *http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/secrets", nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestRequireAuthNoCookieRedirects(t *testing.T) {
	mw := NewAuthMiddleware(session.NewMemoryStore())
	rec := doRequest(t, mw.RequireAuth(protectedEcho(t)), nil)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
}

func TestRequireAuthUnknownTokenRedirects(t *testing.T) {
	mw := NewAuthMiddleware(session.NewMemoryStore())
	rec := doRequest(t, mw.RequireAuth(protectedEcho(t)), &http.Cookie{
		Name:  session.CookieName(false),
		Value: "bogus",
	})

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
}

func TestRequireAuthValidSessionPasses(t *testing.T) {
	store := session.NewMemoryStore()
	mw := NewAuthMiddleware(store)

	require.NoError(t, store.Create(context.Background(), session.Session{
		SessionID: "tok",
		UserID:    "user-42",
		CreatedAt: time.Now(),
		ExpiresAt: time.Now().Add(time.Hour),
	}))

	rec := doRequest(t, mw.RequireAuth(protectedEcho(t)), &http.Cookie{
		Name:  session.CookieName(false),
		Value: "tok",
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "user-42", rec.Body.String())
}

func TestRequireAuthExpiredSessionRevokedAndRedirected(t *testing.T) {
	store := session.NewMemoryStore()
	mw := NewAuthMiddleware(store)

	require.NoError(t, store.Create(context.Background(), session.Session{
		SessionID: "tok",
		UserID:    "user-42",
		CreatedAt: time.Now(),
		ExpiresAt: time.Now().Add(10 * time.Millisecond),
	}))
	time.Sleep(20 * time.Millisecond)

	rec := doRequest(t, mw.RequireAuth(protectedEcho(t)), &http.Cookie{
		Name:  session.CookieName(false),
		Value: "tok",
	})

	assert.Equal(t, http.StatusSeeOther, rec.Code)

	got, err := store.Get(context.Background(), "tok")
	require.NoError(t, err)
	assert.Nil(t, got)
}
