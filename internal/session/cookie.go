package session

import (
	"net/http"
	"time"
)

// Cookie names per transport. Browsers enforce Secure for the __Host-
// prefix, so plain-HTTP deployments (COOKIE_SECURE=false) get an
// unprefixed cookie instead of one the browser would drop.
const (
	secureCookieName   = "__Host-session"
	insecureCookieName = "session"
)

// CookieName returns the session cookie name used for the given
// transport security setting.
func CookieName(secure bool) string {
	if secure {
		return secureCookieName
	}
	return insecureCookieName
}

// ReadToken extracts the session token carried by the request, trying
// the secure name first. Returns "" when no session cookie is present.
func ReadToken(r *http.Request) string {
	for _, name := range []string{secureCookieName, insecureCookieName} {
		if c, err := r.Cookie(name); err == nil && c.Value != "" {
			return c.Value
		}
	}
	return ""
}

// CookieOptions is the small slice of cookie policy this app actually
// varies. Path, HttpOnly and the name are fixed by the session design.
type CookieOptions struct {
	Secure   bool
	SameSite http.SameSite
}

// SetCookie hands the session token to the browser.
func SetCookie(w http.ResponseWriter, token string, expiresAt time.Time, opts CookieOptions) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName(opts.Secure),
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		HttpOnly: true,
		Secure:   opts.Secure,
		SameSite: opts.SameSite,
	})
}

// ClearCookie tells the browser to forget the session token.
func ClearCookie(w http.ResponseWriter, opts CookieOptions) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName(opts.Secure),
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   opts.Secure,
		SameSite: opts.SameSite,
	})
}
