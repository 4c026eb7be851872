package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/jardinverde/gardenia/internal/common"
)

const (
	defaultBaseURL = "https://identitytoolkit.googleapis.com/v1"
	userAgent      = "gardenia"
)

// FirebaseProvider implements Provider against the Firebase Identity
// Toolkit REST API. The Admin SDK has no email/password sign-in, so this
// speaks the same endpoint the web SDK uses. When the
// FIREBASE_AUTH_EMULATOR_HOST environment variable is set, requests go to
// the emulator instead.
type FirebaseProvider struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string

	mu        sync.Mutex
	listeners map[int]func(Event)
	nextID    int
}

// Option configures a FirebaseProvider.
type Option func(*FirebaseProvider)

// WithBaseURL sets a custom base URL (useful for testing).
func WithBaseURL(url string) Option {
	return func(p *FirebaseProvider) {
		p.baseURL = url
	}
}

// NewFirebaseProvider creates a provider using the given web API key.
func NewFirebaseProvider(httpClient *http.Client, apiKey string, opts ...Option) *FirebaseProvider {
	p := &FirebaseProvider{
		httpClient: httpClient,
		baseURL:    defaultBaseURL,
		apiKey:     apiKey,
		listeners:  make(map[int]func(Event)),
	}
	if host := os.Getenv("FIREBASE_AUTH_EMULATOR_HOST"); host != "" {
		p.baseURL = fmt.Sprintf("http://%s/identitytoolkit.googleapis.com/v1", host)
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

type signInRequest struct {
	Email             string `json:"email"`
	Password          string `json:"password"`
	ReturnSecureToken bool   `json:"returnSecureToken"`
}

type signInResponse struct {
	LocalID string `json:"localId"`
	Email   string `json:"email"`
	IDToken string `json:"idToken"`
}

type apiError struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (p *FirebaseProvider) SignIn(ctx context.Context, email, secret string) (*Identity, error) {
	return p.credentialCall(ctx, "accounts:signInWithPassword", email, secret)
}

func (p *FirebaseProvider) SignUp(ctx context.Context, email, secret string) (*Identity, error) {
	return p.credentialCall(ctx, "accounts:signUp", email, secret)
}

func (p *FirebaseProvider) credentialCall(ctx context.Context, endpoint, email, secret string) (*Identity, error) {
	body, err := json.Marshal(signInRequest{Email: email, Password: secret, ReturnSecureToken: true})
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/%s?key=%s", p.baseURL, endpoint, p.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := p.httpClient.Do(req)
	if err != nil {
		common.Logger().Error("identity provider unreachable", zap.String("endpoint", endpoint), zap.Error(err))
		return nil, ErrUnavailable
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		var ae apiError
		_ = json.NewDecoder(resp.Body).Decode(&ae)
		return nil, mapAPIError(resp.StatusCode, ae.Error.Message)
	}

	var sr signInResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		return nil, err
	}
	return &Identity{UID: sr.LocalID, Email: strings.ToLower(sr.Email), Token: sr.IDToken}, nil
}

// SignOut is a local operation for this provider; Identity Toolkit tokens
// are stateless and simply stop being honored by the session layer.
func (p *FirebaseProvider) SignOut(ctx context.Context, token string) error {
	return nil
}

func (p *FirebaseProvider) OnIdentityChanged(fn func(Event)) func() {
	p.mu.Lock()
	defer p.mu.Unlock()
	id := p.nextID
	p.nextID++
	p.listeners[id] = fn
	return func() {
		p.mu.Lock()
		defer p.mu.Unlock()
		delete(p.listeners, id)
	}
}

func mapAPIError(status int, message string) error {
	switch {
	case strings.Contains(message, "EMAIL_EXISTS"):
		return ErrEmailInUse
	case strings.Contains(message, "WEAK_PASSWORD"):
		return ErrWeakSecret
	case strings.Contains(message, "EMAIL_NOT_FOUND"),
		strings.Contains(message, "INVALID_PASSWORD"),
		strings.Contains(message, "INVALID_LOGIN_CREDENTIALS"),
		strings.Contains(message, "USER_DISABLED"):
		return ErrInvalidCredentials
	case status >= 500:
		return ErrUnavailable
	default:
		return fmt.Errorf("identity provider error: %s", message)
	}
}

// Compile-time interface check
var _ Provider = (*FirebaseProvider)(nil)
