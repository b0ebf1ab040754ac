package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/AyushSingh012/Secret-App/internal/logger"
	"github.com/AyushSingh012/Secret-App/internal/middleware"
)

const noSecretPlaceholder = "You should submit a secret"

// currentUserID pulls the authenticated user's ID out of the request
// context. The auth gate guarantees it is present on protected routes.
func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	raw, ok := middleware.UserIDFromContext(c.Request.Context())
	if !ok {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

func (h *Handler) Secrets(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.Redirect(http.StatusSeeOther, "/login")
		return
	}

	secret, err := h.secretService.Get(c.Request.Context(), userID)
	if err != nil {
		logger.Error("failed to load secret", zap.Error(err))
		c.String(http.StatusInternalServerError, "something went wrong")
		return
	}

	if secret == "" {
		secret = noSecretPlaceholder
	}

	c.HTML(http.StatusOK, "secrets.html", gin.H{
		"secret": secret,
	})
}

func (h *Handler) Submit(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.Redirect(http.StatusSeeOther, "/login")
		return
	}

	secret := c.PostForm("secret")
	if secret == "" {
		c.Redirect(http.StatusSeeOther, "/submit")
		return
	}

	if err := h.secretService.Submit(c.Request.Context(), userID, secret); err != nil {
		logger.Error("failed to store secret", zap.Error(err))
		c.String(http.StatusInternalServerError, "something went wrong")
		return
	}

	c.Redirect(http.StatusSeeOther, "/secrets")
}
