package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func identityServer(t *testing.T, status int, payload any) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.URL.Path, "accounts:") {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.URL.Query().Get("key") != "test-key" {
			t.Errorf("api key missing from query: %s", r.URL.RawQuery)
		}
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(payload)
	}))
}

func TestSignInSuccess(t *testing.T) {
	srv := identityServer(t, http.StatusOK, map[string]string{
		"localId": "uid-123",
		"email":   "Ana@JardinVerde.com",
		"idToken": "tok-abc",
	})
	defer srv.Close()

	p := NewFirebaseProvider(srv.Client(), "test-key", WithBaseURL(srv.URL))
	id, err := p.SignIn(context.Background(), "ana@jardinverde.com", "secret1")
	if err != nil {
		t.Fatalf("sign in: %v", err)
	}
	if id.UID != "uid-123" || id.Token != "tok-abc" {
		t.Errorf("unexpected identity: %+v", id)
	}
	if id.Email != "ana@jardinverde.com" {
		t.Errorf("email must be lowercased, got %q", id.Email)
	}
}

func TestSignInErrorMapping(t *testing.T) {
	tests := []struct {
		message string
		status  int
		want    error
	}{
		{"INVALID_LOGIN_CREDENTIALS", http.StatusBadRequest, ErrInvalidCredentials},
		{"EMAIL_NOT_FOUND", http.StatusBadRequest, ErrInvalidCredentials},
		{"USER_DISABLED", http.StatusBadRequest, ErrInvalidCredentials},
		{"EMAIL_EXISTS", http.StatusBadRequest, ErrEmailInUse},
		{"WEAK_PASSWORD : Password should be at least 6 characters", http.StatusBadRequest, ErrWeakSecret},
		{"anything", http.StatusInternalServerError, ErrUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.message, func(t *testing.T) {
			srv := identityServer(t, tt.status, map[string]any{
				"error": map[string]any{"message": tt.message},
			})
			defer srv.Close()

			p := NewFirebaseProvider(srv.Client(), "test-key", WithBaseURL(srv.URL))
			_, err := p.SignIn(context.Background(), "ana@jardinverde.com", "x")
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestSignInProviderUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close() // connection refused from here on

	p := NewFirebaseProvider(http.DefaultClient, "test-key", WithBaseURL(srv.URL))
	_, err := p.SignIn(context.Background(), "ana@jardinverde.com", "x")
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}

func TestExtractBearerToken(t *testing.T) {
	token, err := ExtractBearerToken("Bearer tok-abc")
	if err != nil || token != "tok-abc" {
		t.Fatalf("expected tok-abc, got %q %v", token, err)
	}

	if _, err := ExtractBearerToken(""); !errors.Is(err, ErrNoToken) {
		t.Errorf("expected ErrNoToken for empty header, got %v", err)
	}
	if _, err := ExtractBearerToken("Basic abc"); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken for wrong scheme, got %v", err)
	}
	if _, err := ExtractBearerToken("Bearer "); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken for empty token, got %v", err)
	}
}
