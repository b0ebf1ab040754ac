package session

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func issuedCookie(t *testing.T, opts CookieOptions) *http.Cookie {
	t.Helper()

	rec := httptest.NewRecorder()
	SetCookie(rec, "tok", time.Now().Add(time.Hour), opts)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	return cookies[0]
}

func TestSecureCookieUsesHostPrefix(t *testing.T) {
	c := issuedCookie(t, CookieOptions{Secure: true, SameSite: http.SameSiteLaxMode})

	assert.Equal(t, "__Host-session", c.Name)
	assert.True(t, c.Secure)
	assert.True(t, c.HttpOnly)
	assert.Equal(t, "/", c.Path)
}

func TestInsecureCookieDropsHostPrefix(t *testing.T) {
	// The __Host- prefix mandates Secure; a prefixed cookie without it
	// would be silently rejected by browsers.
	c := issuedCookie(t, CookieOptions{Secure: false, SameSite: http.SameSiteLaxMode})

	assert.Equal(t, "session", c.Name)
	assert.False(t, c.Secure)
}

func TestReadTokenFindsEitherCookieName(t *testing.T) {
	for _, name := range []string{"__Host-session", "session"} {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: name, Value: "tok-" + name})
		assert.Equal(t, "tok-"+name, ReadToken(req))
	}

	empty := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Empty(t, ReadToken(empty))
}

func TestClearCookieExpiresMatchingName(t *testing.T) {
	rec := httptest.NewRecorder()
	ClearCookie(rec, CookieOptions{Secure: true})

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "__Host-session", cookies[0].Name)
	assert.Negative(t, cookies[0].MaxAge)
	assert.Empty(t, cookies[0].Value)
}
