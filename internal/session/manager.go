// Package session tracks authenticated identities and gates protected
// access on them.
package session

import (
	"context"
	"errors"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/jardinverde/gardenia/internal/auth"
	"github.com/jardinverde/gardenia/internal/common"
	"github.com/jardinverde/gardenia/internal/entity"
	"github.com/jardinverde/gardenia/internal/store"
)

// State of a session. Established on sign-in; marked anonymous again when
// the session closes, so a retained pointer never passes the gate after
// logout.
type State string

const (
	StateAnonymous   State = "anonymous"
	StateEstablished State = "established"
)

var (
	// ErrProfileMissing is the integrity fault: the provider authenticated
	// an identity that has no stored profile record. The session must not
	// be established in that case.
	ErrProfileMissing = errors.New("authenticated identity has no profile record")

	// ErrNoSession indicates a protected operation without a session.
	ErrNoSession = errors.New("sign-in required")

	// ErrForbidden indicates a role-gated operation by a non-admin.
	ErrForbidden = errors.New("admin role required")
)

// Session is one established identity context.
type Session struct {
	Token   string
	Profile entity.Profile
	State   State
}

// IsAdmin reports whether the session carries the elevated role.
func (s *Session) IsAdmin() bool {
	return s != nil && s.Profile.Role == entity.RoleAdmin
}

// Established reports whether the session is live. False for nil and for
// sessions already closed by logout or revocation.
func (s *Session) Established() bool {
	return s != nil && s.State == StateEstablished
}

// RegisterParams for creating a new account plus profile.
type RegisterParams struct {
	Name    string
	Surname string
	Email   string
	Secret  string
}

// Manager resolves provider identities to profile records and drives the
// protected-mirror lifecycle: mirrors open when the first session is
// established and are cleared when the last one closes.
type Manager struct {
	provider auth.Provider
	hub      *store.Hub

	// subCtx parents the protected subscriptions; they must outlive any
	// single request.
	subCtx context.Context

	adminEmails map[string]struct{}

	mu       sync.Mutex
	sessions map[string]*Session
	unsub    func()
}

// NewManager creates a session manager. adminEmails is the configured
// allow-list whose members are forced to the admin role regardless of the
// stored role value; an empty list disables the override.
func NewManager(ctx context.Context, provider auth.Provider, hub *store.Hub, adminEmails []string) *Manager {
	m := &Manager{
		provider:    provider,
		hub:         hub,
		subCtx:      ctx,
		adminEmails: make(map[string]struct{}, len(adminEmails)),
		sessions:    make(map[string]*Session),
	}
	for _, e := range adminEmails {
		e = strings.ToLower(strings.TrimSpace(e))
		if e != "" {
			m.adminEmails[e] = struct{}{}
		}
	}
	m.unsub = provider.OnIdentityChanged(m.onIdentityChanged)
	return m
}

// Close unregisters the provider listener and drops all sessions.
func (m *Manager) Close() {
	if m.unsub != nil {
		m.unsub()
	}
	m.mu.Lock()
	for _, s := range m.sessions {
		s.State = StateAnonymous
	}
	m.sessions = make(map[string]*Session)
	m.mu.Unlock()
	m.hub.CloseProtected()
}

// Login signs in against the provider and resolves the identity to its
// profile record by exact id lookup. A missing profile is a
// data-integrity fault: it is logged and the session is not established.
func (m *Manager) Login(ctx context.Context, email, secret string) (*Session, error) {
	identity, err := m.provider.SignIn(ctx, email, secret)
	if err != nil {
		common.Logger().Info("sign-in rejected", zap.String("email", email), zap.Error(err))
		return nil, err
	}

	profile, err := m.resolveProfile(ctx, identity)
	if err != nil {
		return nil, err
	}
	return m.establish(identity.Token, profile)
}

// Register creates the provider account and its profile record with the
// default user role, then establishes the session.
func (m *Manager) Register(ctx context.Context, params RegisterParams) (*Session, error) {
	identity, err := m.provider.SignUp(ctx, params.Email, params.Secret)
	if err != nil {
		return nil, err
	}

	profile := entity.Profile{
		ID:      identity.UID,
		Name:    params.Name,
		Surname: params.Surname,
		Email:   strings.ToLower(strings.TrimSpace(params.Email)),
		Role:    entity.RoleUser,
	}
	m.applyRoleOverride(&profile)

	if err := m.hub.Remote().Set(ctx, store.ColProfiles, identity.UID, profile); err != nil {
		common.Logger().Error("profile write failed during registration",
			zap.String("uid", identity.UID), zap.Error(err))
		return nil, err
	}
	return m.establish(identity.Token, profile)
}

// Logout clears the session synchronously. When it was the last active
// session the protected mirrors are cleared before control returns.
func (m *Manager) Logout(ctx context.Context, token string) {
	if err := m.provider.SignOut(ctx, token); err != nil {
		common.Logger().Warn("provider sign-out failed", zap.Error(err))
	}

	m.mu.Lock()
	if s, ok := m.sessions[token]; ok {
		s.State = StateAnonymous
	}
	delete(m.sessions, token)
	last := len(m.sessions) == 0
	m.mu.Unlock()

	if last {
		m.hub.CloseProtected()
	}
}

// SessionFor resolves a bearer token to its established session.
func (m *Manager) SessionFor(token string) (*Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[token]
	return s, ok
}

// Active reports the number of established sessions.
func (m *Manager) Active() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// Users lists the mirrored profile records, optionally filtered by a
// case-insensitive match on name or email. Admin only; this is the view
// behind the grant-admin flow.
func (m *Manager) Users(sess *Session, search string) ([]entity.Profile, error) {
	if !sess.Established() {
		return nil, ErrNoSession
	}
	if !sess.IsAdmin() {
		return nil, ErrForbidden
	}

	users := m.hub.Profiles.Items()
	search = strings.ToLower(strings.TrimSpace(search))
	if search == "" {
		return users, nil
	}
	filtered := users[:0]
	for _, u := range users {
		if strings.Contains(strings.ToLower(u.Email), search) ||
			strings.Contains(strings.ToLower(u.Name), search) {
			filtered = append(filtered, u)
		}
	}
	return filtered, nil
}

// GrantAdmin promotes the profile with the given email to the admin role.
// Only an established admin session may do this; otherwise it is a no-op
// failure.
func (m *Manager) GrantAdmin(ctx context.Context, sess *Session, email string) error {
	if !sess.Established() {
		return ErrNoSession
	}
	if !sess.IsAdmin() {
		return ErrForbidden
	}

	email = strings.ToLower(strings.TrimSpace(email))
	docs, err := m.hub.Remote().Query(ctx, store.ColProfiles, "email", "==", email)
	if err != nil {
		return err
	}
	if len(docs) == 0 {
		return store.ErrNotFound
	}

	var profile entity.Profile
	if err := store.Decode(docs[0].Data, &profile); err != nil {
		return err
	}
	profile.Role = entity.RoleAdmin
	if err := m.hub.Remote().Set(ctx, store.ColProfiles, docs[0].ID, profile); err != nil {
		return err
	}

	common.Logger().Info("role promoted",
		zap.String("by", sess.Profile.ID), zap.String("email", email))
	return nil
}

func (m *Manager) resolveProfile(ctx context.Context, identity *auth.Identity) (entity.Profile, error) {
	doc, err := m.hub.Remote().Read(ctx, store.ColProfiles, identity.UID)
	if errors.Is(err, store.ErrNotFound) {
		common.Logger().Error("identity has no profile record; session not established",
			zap.String("uid", identity.UID), zap.String("email", identity.Email))
		return entity.Profile{}, ErrProfileMissing
	}
	if err != nil {
		return entity.Profile{}, err
	}

	var profile entity.Profile
	if err := store.Decode(doc.Data, &profile); err != nil {
		return entity.Profile{}, err
	}
	profile.ID = identity.UID
	m.applyRoleOverride(&profile)
	return profile, nil
}

// applyRoleOverride forces the admin role for allow-listed addresses.
// Maintenance override inherited from the previous system; disabled when
// the list is empty.
func (m *Manager) applyRoleOverride(p *entity.Profile) {
	if _, ok := m.adminEmails[strings.ToLower(p.Email)]; ok {
		p.Role = entity.RoleAdmin
	}
}

func (m *Manager) establish(token string, profile entity.Profile) (*Session, error) {
	sess := &Session{Token: token, Profile: profile, State: StateEstablished}

	m.mu.Lock()
	first := len(m.sessions) == 0
	m.sessions[token] = sess
	m.mu.Unlock()

	if first {
		if err := m.hub.OpenProtected(m.subCtx); err != nil {
			common.Logger().Error("opening protected mirrors failed", zap.Error(err))
		}
	}

	common.Logger().Info("session established",
		zap.String("uid", profile.ID), zap.String("role", string(profile.Role)))
	return sess, nil
}

// onIdentityChanged drops sessions the provider no longer honors.
func (m *Manager) onIdentityChanged(ev auth.Event) {
	if ev.SignedIn {
		return
	}

	m.mu.Lock()
	for token, s := range m.sessions {
		if s.Profile.ID == ev.UID {
			s.State = StateAnonymous
			delete(m.sessions, token)
		}
	}
	last := len(m.sessions) == 0
	m.mu.Unlock()

	if last {
		m.hub.CloseProtected()
	}
}
