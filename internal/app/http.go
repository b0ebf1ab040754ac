package app

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/AyushSingh012/Secret-App/internal/auth/credentials"
	"github.com/AyushSingh012/Secret-App/internal/auth/handler"
	"github.com/AyushSingh012/Secret-App/internal/auth/provider"
	"github.com/AyushSingh012/Secret-App/internal/auth/provider/google"
	"github.com/AyushSingh012/Secret-App/internal/auth/resolver"
	"github.com/AyushSingh012/Secret-App/internal/config"
	"github.com/AyushSingh012/Secret-App/internal/logger"
	"github.com/AyushSingh012/Secret-App/internal/middleware"
	"github.com/AyushSingh012/Secret-App/internal/secrets"
	"github.com/AyushSingh012/Secret-App/internal/store"
	"github.com/AyushSingh012/Secret-App/web"
)

func setupHTTP(ctx context.Context, cfg config.Config) (*gin.Engine, func() error, error) {

	infra, err := setupInfra(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	// ----------------------------
	// Dependencies
	// ----------------------------

	userStore := store.NewPostgresStore(infra.DB)

	credentialService := credentials.NewService(userStore, cfg.BcryptCost)
	secretService := secrets.NewService(userStore)
	identityResolver := resolver.NewDBResolver(userStore)

	var providers []provider.OAuthProvider
	if cfg.GoogleEnabled() {
		googleProvider, err := google.New(
			ctx,
			cfg.GoogleClientID,
			cfg.GoogleClientSecret,
			cfg.GoogleRedirectURL,
		)
		if err != nil {
			return nil, nil, err
		}
		providers = append(providers, googleProvider)
	} else {
		logger.Warn("google oauth not configured, /auth/google disabled")
	}

	registry := provider.NewRegistry(providers...)

	authHandler := handler.NewHandler(
		credentialService,
		secretService,
		registry,
		infra.Sessions,
		identityResolver,
		cfg.SessionTTL,
		cfg.CookieSecure,
	)

	authMiddleware := middleware.NewAuthMiddleware(infra.Sessions)

	// ----------------------------
	// Router
	// ----------------------------

	router := gin.New()
	router.Use(gin.Recovery())
	router.SetHTMLTemplate(web.Templates())

	authHandler.RegisterRoutes(router, authMiddleware)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	return router, infra.Close, nil
}
