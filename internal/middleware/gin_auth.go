package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GinRequireAuth applies the same gate as RequireAuth to a gin route
// group. The decision stays session-based and provider-agnostic.
func GinRequireAuth(a *AuthMiddleware) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := a.authenticate(c.Request)
		if !ok {
			c.Redirect(http.StatusSeeOther, "/login")
			c.Abort()
			return
		}

		ctx := contextWithUserID(c.Request.Context(), userID)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
