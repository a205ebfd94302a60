package oidc

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/ibradi0157/mon-blog/internal/config"
	"github.com/ibradi0157/mon-blog/pkg/middleware"
)

// Verifier checks ID/access tokens against an OIDC provider (Keycloak).
type Verifier struct {
	verifier *oidc.IDTokenVerifier
}

// NewVerifier discovers the provider at issuer and returns a verifier for clientID.
func NewVerifier(ctx context.Context, issuer, clientID string) (*Verifier, error) {
	provider, err := oidc.NewProvider(ctx, issuer)
	if err != nil {
		return nil, fmt.Errorf("failed to discover OIDC provider: %w", err)
	}
	return &Verifier{verifier: provider.Verifier(&oidc.Config{ClientID: clientID})}, nil
}

// KeycloakIssuer builds the realm issuer URL. With an empty realm the URL is
// assumed to already point at the realm.
func KeycloakIssuer(kc config.KeycloakConfig) string {
	base := strings.TrimRight(kc.URL, "/")
	if kc.Realm == "" {
		return base
	}
	return base + "/realms/" + kc.Realm
}

// NewKeycloakVerifier builds a Verifier from Keycloak settings.
func NewKeycloakVerifier(ctx context.Context, kc config.KeycloakConfig) (*Verifier, error) {
	if kc.URL == "" || kc.ClientID == "" {
		return nil, errors.New("keycloak url and client id are required")
	}
	return NewVerifier(ctx, KeycloakIssuer(kc), kc.ClientID)
}

func (v *Verifier) Verify(ctx context.Context, raw string) (middleware.Token, error) {
	idToken, err := v.verifier.Verify(ctx, raw)
	if err != nil {
		return nil, err
	}
	return idToken, nil
}
