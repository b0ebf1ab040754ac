package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/AyushSingh012/Secret-App/internal/auth/credentials"
	"github.com/AyushSingh012/Secret-App/internal/logger"
)

// Register creates a local account and logs the new user straight in.
// An already-registered email redirects to the login page; it must
// never silently authenticate against the existing account.
func (h *Handler) Register(c *gin.Context) {
	email := c.PostForm("username")
	password := c.PostForm("password")

	if email == "" || password == "" {
		c.Redirect(http.StatusSeeOther, "/register")
		return
	}

	userID, err := h.credentialService.Register(
		c.Request.Context(),
		email,
		password,
	)
	if err != nil {
		if errors.Is(err, credentials.ErrAlreadyRegistered) {
			c.Redirect(http.StatusSeeOther, "/login")
			return
		}
		logger.Error("registration failed", zap.Error(err))
		c.String(http.StatusInternalServerError, "something went wrong")
		return
	}

	if err := h.issueSession(c, userID.String()); err != nil {
		logger.Error("failed to issue session", zap.Error(err))
		c.String(http.StatusInternalServerError, "something went wrong")
		return
	}

	c.Redirect(http.StatusSeeOther, "/secrets")
}
