package provider

import (
	"context"
	"fmt"

	"github.com/AyushSingh012/Secret-App/internal/auth"
)

// OAuthProvider is one external login backend (Google today). A
// provider hands back identity facts; creating users, linking accounts
// and issuing sessions all happen elsewhere.
type OAuthProvider interface {
	// Name is the identifier the /auth/:provider routes dispatch on.
	Name() string

	// AuthCodeURL builds the URL the browser is sent to. The caller
	// supplies the anti-CSRF state and the PKCE challenge.
	AuthCodeURL(state string, codeChallenge string) string

	// ExchangeCode trades the callback's authorization code for a
	// verified identity.
	ExchangeCode(ctx context.Context, code string, codeVerifier string) (*auth.Identity, error)
}

// Registry resolves the :provider path segment to a configured
// provider. An app without OAuth credentials runs with an empty one.
type Registry struct {
	byName map[string]OAuthProvider
}

func NewRegistry(list ...OAuthProvider) *Registry {
	byName := make(map[string]OAuthProvider, len(list))
	for _, p := range list {
		byName[p.Name()] = p
	}
	return &Registry{byName: byName}
}

func (r *Registry) Get(name string) (OAuthProvider, error) {
	p, ok := r.byName[name]
	if !ok {
		return nil, fmt.Errorf("unknown oauth provider: %s", name)
	}
	return p, nil
}
