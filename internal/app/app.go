package app

import (
	"context"
	"net/http"

	"github.com/AyushSingh012/Secret-App/internal/config"
)

// App ties the HTTP server to the infrastructure handles behind it, so
// one Shutdown call quiesces requests and then releases connections.
type App struct {
	server  *http.Server
	cleanup func() error
}

func New(ctx context.Context, cfg config.Config) (*App, error) {
	router, cleanup, err := setupHTTP(ctx, cfg)
	if err != nil {
		return nil, err
	}

	return &App{
		server: &http.Server{
			Addr:    ":" + cfg.AppPort,
			Handler: router,
		},
		cleanup: cleanup,
	}, nil
}

func (a *App) Run() error {
	return a.server.ListenAndServe()
}

// Shutdown drains in-flight requests and closes infra even when the
// drain itself fails; the first error wins.
func (a *App) Shutdown(ctx context.Context) error {
	err := a.server.Shutdown(ctx)
	if a.cleanup != nil {
		if cerr := a.cleanup(); err == nil {
			err = cerr
		}
	}
	return err
}
