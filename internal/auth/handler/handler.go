package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/AyushSingh012/Secret-App/internal/auth/credentials"
	"github.com/AyushSingh012/Secret-App/internal/auth/provider"
	"github.com/AyushSingh012/Secret-App/internal/auth/resolver"
	"github.com/AyushSingh012/Secret-App/internal/middleware"
	"github.com/AyushSingh012/Secret-App/internal/secrets"
	"github.com/AyushSingh012/Secret-App/internal/session"
)

type Handler struct {
	credentialService *credentials.Service
	secretService     *secrets.Service
	providers         *provider.Registry
	sessionStore      session.Store
	resolver          resolver.Resolver

	sessionTTL   time.Duration
	cookieSecure bool
}

func NewHandler(
	credentialService *credentials.Service,
	secretService *secrets.Service,
	registry *provider.Registry,
	sessionStore session.Store,
	resolver resolver.Resolver,
	sessionTTL time.Duration,
	cookieSecure bool,
) *Handler {
	return &Handler{
		credentialService: credentialService,
		secretService:     secretService,
		providers:         registry,
		sessionStore:      sessionStore,
		resolver:          resolver,
		sessionTTL:        sessionTTL,
		cookieSecure:      cookieSecure,
	}
}

func (h *Handler) RegisterRoutes(r *gin.Engine, auth *middleware.AuthMiddleware) {
	r.GET("/", h.homePage)
	r.GET("/login", h.loginPage)
	r.GET("/register", h.registerPage)
	r.POST("/login", h.Login)
	r.POST("/register", h.Register)
	r.GET("/logout", h.Logout)

	r.GET("/auth/:provider", h.oauthLogin)
	r.GET("/auth/:provider/callback", h.oauthCallback)

	protected := r.Group("/")
	protected.Use(middleware.GinRequireAuth(auth))
	protected.GET("/secrets", h.Secrets)
	protected.GET("/submit", h.submitPage)
	protected.POST("/submit", h.Submit)
}

func (h *Handler) homePage(c *gin.Context) {
	c.HTML(http.StatusOK, "home.html", nil)
}

func (h *Handler) loginPage(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", nil)
}

func (h *Handler) registerPage(c *gin.Context) {
	c.HTML(http.StatusOK, "register.html", nil)
}

func (h *Handler) submitPage(c *gin.Context) {
	c.HTML(http.StatusOK, "submit.html", nil)
}

// issueSession binds a freshly resolved identity to a new opaque token
// and hands the token to the browser. The session holds the user ID
// only; the record is re-fetched per request.
func (h *Handler) issueSession(c *gin.Context, userID string) error {
	sessionID, err := session.NewToken()
	if err != nil {
		return err
	}

	now := time.Now()
	expiresAt := now.Add(h.sessionTTL)

	if err := h.sessionStore.Create(c.Request.Context(), session.Session{
		SessionID: sessionID,
		UserID:    userID,
		CreatedAt: now,
		ExpiresAt: expiresAt,
	}); err != nil {
		return err
	}

	session.SetCookie(c.Writer, sessionID, expiresAt, session.CookieOptions{
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	})

	return nil
}
