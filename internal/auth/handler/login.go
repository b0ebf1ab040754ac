package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/AyushSingh012/Secret-App/internal/auth/credentials"
	"github.com/AyushSingh012/Secret-App/internal/logger"
)

// Login handles the local login form. The form field is named
// "username" but carries the email address. Unknown user and wrong
// password are indistinguishable in the response.
func (h *Handler) Login(c *gin.Context) {
	email := c.PostForm("username")
	password := c.PostForm("password")

	if email == "" || password == "" {
		c.Redirect(http.StatusSeeOther, "/login")
		return
	}

	userID, err := h.credentialService.Authenticate(
		c.Request.Context(),
		email,
		password,
	)
	if err != nil {
		if !errors.Is(err, credentials.ErrInvalidCredentials) {
			logger.Error("login failed", zap.Error(err))
		}
		c.Redirect(http.StatusSeeOther, "/login")
		return
	}

	if err := h.issueSession(c, userID.String()); err != nil {
		logger.Error("failed to issue session", zap.Error(err))
		c.String(http.StatusInternalServerError, "something went wrong")
		return
	}

	c.Redirect(http.StatusSeeOther, "/secrets")
}
