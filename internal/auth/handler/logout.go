package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AyushSingh012/Secret-App/internal/session"
)

// Logout revokes the current session if one exists. Revocation is
// idempotent: logging out twice is not an error.
func (h *Handler) Logout(c *gin.Context) {
	if token := session.ReadToken(c.Request); token != "" {
		_ = h.sessionStore.Delete(c.Request.Context(), token)
	}

	session.ClearCookie(c.Writer, session.CookieOptions{
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	})

	c.Redirect(http.StatusSeeOther, "/")
}
