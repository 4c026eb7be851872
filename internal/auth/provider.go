// Package auth abstracts the external identity provider.
package auth

import (
	"context"
	"errors"
	"strings"
)

// Identity is an authenticated account as reported by the provider.
type Identity struct {
	UID   string
	Email string
	// Token is the provider-issued session token for this sign-in.
	Token string
}

// Event describes an identity change pushed by the provider.
type Event struct {
	UID string
	// SignedIn is false when the identity was revoked or signed out.
	SignedIn bool
}

// Error types for authentication failures.
var (
	// ErrInvalidCredentials indicates a rejected email/secret pair.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrEmailInUse indicates sign-up with an already registered email.
	ErrEmailInUse = errors.New("email already in use")

	// ErrWeakSecret indicates the provider rejected the secret strength.
	ErrWeakSecret = errors.New("secret too weak")

	// ErrNoToken indicates a missing Authorization header.
	ErrNoToken = errors.New("missing authorization header")

	// ErrInvalidToken indicates an invalid bearer token format.
	ErrInvalidToken = errors.New("invalid token")

	// ErrUnavailable indicates the provider could not be reached.
	ErrUnavailable = errors.New("identity provider unavailable")
)

// Provider is the external sign-in/sign-up surface.
type Provider interface {
	SignIn(ctx context.Context, email, secret string) (*Identity, error)
	SignUp(ctx context.Context, email, secret string) (*Identity, error)
	SignOut(ctx context.Context, token string) error
	// OnIdentityChanged registers a callback invoked when the provider
	// reports an identity change (e.g. remote revocation). The returned
	// function unregisters it.
	OnIdentityChanged(fn func(Event)) func()
}

// ExtractBearerToken extracts the token from an Authorization header.
func ExtractBearerToken(header string) (string, error) {
	if header == "" {
		return "", ErrNoToken
	}
	parts := strings.Fields(header)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
		return "", ErrInvalidToken
	}
	return parts[1], nil
}
