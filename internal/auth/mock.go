package auth

import (
	"context"
	"fmt"
	"strings"
	"sync"
)

// MockProvider implements Provider for unit tests.
type MockProvider struct {
	mu        sync.Mutex
	accounts  map[string]string // email -> secret
	uids      map[string]string // email -> uid
	listeners map[int]func(Event)
	nextID    int
	nextUID   int

	// SignInErr, when set, is returned by SignIn regardless of input.
	SignInErr error
}

// NewMockProvider creates an empty mock provider.
func NewMockProvider() *MockProvider {
	return &MockProvider{
		accounts:  make(map[string]string),
		uids:      make(map[string]string),
		listeners: make(map[int]func(Event)),
	}
}

// AddAccount registers an account and returns its UID.
func (m *MockProvider) AddAccount(email, secret string) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.addLocked(email, secret)
}

func (m *MockProvider) addLocked(email, secret string) string {
	email = strings.ToLower(email)
	m.accounts[email] = secret
	uid := fmt.Sprintf("uid-%d", m.nextUID)
	m.nextUID++
	m.uids[email] = uid
	return uid
}

func (m *MockProvider) SignIn(ctx context.Context, email, secret string) (*Identity, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.SignInErr != nil {
		return nil, m.SignInErr
	}
	email = strings.ToLower(email)
	stored, ok := m.accounts[email]
	if !ok || stored != secret {
		return nil, ErrInvalidCredentials
	}
	return &Identity{
		UID:   m.uids[email],
		Email: email,
		Token: "token-" + m.uids[email],
	}, nil
}

func (m *MockProvider) SignUp(ctx context.Context, email, secret string) (*Identity, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	email = strings.ToLower(email)
	if _, ok := m.accounts[email]; ok {
		return nil, ErrEmailInUse
	}
	if len(secret) < 6 {
		return nil, ErrWeakSecret
	}
	uid := m.addLocked(email, secret)
	return &Identity{UID: uid, Email: email, Token: "token-" + uid}, nil
}

func (m *MockProvider) SignOut(ctx context.Context, token string) error {
	return nil
}

func (m *MockProvider) OnIdentityChanged(fn func(Event)) func() {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := m.nextID
	m.nextID++
	m.listeners[id] = fn
	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		delete(m.listeners, id)
	}
}

// Revoke simulates a provider-side revocation event for the given UID.
func (m *MockProvider) Revoke(uid string) {
	m.mu.Lock()
	fns := make([]func(Event), 0, len(m.listeners))
	for _, fn := range m.listeners {
		fns = append(fns, fn)
	}
	m.mu.Unlock()

	for _, fn := range fns {
		fn(Event{UID: uid, SignedIn: false})
	}
}

// Compile-time interface check
var _ Provider = (*MockProvider)(nil)
