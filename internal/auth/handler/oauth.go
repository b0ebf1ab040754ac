package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/AyushSingh012/Secret-App/internal/logger"
)

func (h *Handler) oauthLogin(c *gin.Context) {
	providerName := c.Param("provider")

	p, err := h.providers.Get(providerName)
	if err != nil {
		c.Redirect(http.StatusSeeOther, "/login")
		return
	}

	state := generateState(c)
	_, codeChallenge := generatePKCE(c)

	authURL := p.AuthCodeURL(state, codeChallenge)
	c.Redirect(http.StatusFound, authURL)
}

// oauthCallback finishes the provider round-trip: validate state,
// exchange the code, resolve the asserted identity to a durable user
// and bind a session. Every failure lands back on the login page.
func (h *Handler) oauthCallback(c *gin.Context) {
	providerName := c.Param("provider")

	p, err := h.providers.Get(providerName)
	if err != nil {
		c.Redirect(http.StatusSeeOther, "/login")
		return
	}

	if !validateState(c) {
		logger.Warn("oauth callback with invalid state",
			zap.String("provider", providerName),
		)
		c.Redirect(http.StatusSeeOther, "/login")
		return
	}

	if errParam := c.Query("error"); errParam != "" {
		logger.Warn("oauth callback returned error",
			zap.String("provider", providerName),
			zap.String("error", errParam),
		)
		c.Redirect(http.StatusSeeOther, "/login")
		return
	}

	code := c.Query("code")
	if code == "" {
		c.Redirect(http.StatusSeeOther, "/login")
		return
	}

	codeVerifier := getPKCEVerifier(c)
	if codeVerifier == "" {
		c.Redirect(http.StatusSeeOther, "/login")
		return
	}

	identity, err := p.ExchangeCode(c.Request.Context(), code, codeVerifier)
	if err != nil {
		logger.Error("oauth exchange failed",
			zap.String("provider", providerName),
			zap.Error(err),
		)
		c.Redirect(http.StatusSeeOther, "/login")
		return
	}

	userID, err := h.resolver.Resolve(c.Request.Context(), identity)
	if err != nil {
		logger.Error("failed to resolve identity", zap.Error(err))
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
