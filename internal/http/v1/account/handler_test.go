package account

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	humachi "github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/jardinverde/gardenia/internal/auth"
	"github.com/jardinverde/gardenia/internal/entity"
	appmiddleware "github.com/jardinverde/gardenia/internal/middleware"
	"github.com/jardinverde/gardenia/internal/respond"
	"github.com/jardinverde/gardenia/internal/session"
	"github.com/jardinverde/gardenia/internal/store"
)

type testFixture struct {
	router   chi.Router
	manager  *session.Manager
	provider *auth.MockProvider
	remote   *store.MemoryRemote
}

func newTestFixture(t *testing.T) *testFixture {
	t.Helper()
	remote := store.NewMemoryRemote()
	hub := store.NewHub(remote)
	if err := hub.Start(context.Background()); err != nil {
		t.Fatalf("hub start: %v", err)
	}
	t.Cleanup(hub.Close)

	provider := auth.NewMockProvider()
	manager := session.NewManager(context.Background(), provider, hub, nil)
	t.Cleanup(manager.Close)

	router := chi.NewRouter()
	router.Use(
		appmiddleware.RequestID(),
		chimiddleware.RealIP,
		appmiddleware.RequestLogger(),
		respond.Recoverer(),
	)
	api := humachi.New(router, huma.DefaultConfig("AccountTest", "test"))
	api.UseMiddleware(session.NewMiddleware(api, manager))
	Register(api, manager)

	return &testFixture{router: router, manager: manager, provider: provider, remote: remote}
}

func (f *testFixture) seedAccount(t *testing.T, email string, role entity.Role) string {
	t.Helper()
	uid := f.provider.AddAccount(email, "secret1")
	err := f.remote.Set(context.Background(), store.ColProfiles, uid, entity.Profile{
		ID: uid, Name: "Ana", Surname: "Flores", Email: email, Role: role,
	})
	if err != nil {
		t.Fatalf("seed profile: %v", err)
	}
	return uid
}

func (f *testFixture) do(method, path, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp := httptest.NewRecorder()
	f.router.ServeHTTP(resp, req)
	return resp
}

func TestLoginSuccess(t *testing.T) {
	f := newTestFixture(t)
	uid := f.seedAccount(t, "ana@jardinverde.com", entity.RoleUser)

	resp := f.do(http.MethodPost, "/account/login", "",
		`{"email":"ana@jardinverde.com","password":"secret1"}`)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var sess Session
	if err := json.Unmarshal(resp.Body.Bytes(), &sess); err != nil {
		t.Fatalf("json unmarshal: %v", err)
	}
	if sess.Token == "" {
		t.Error("expected a session token")
	}
	if sess.Profile.ID != uid {
		t.Errorf("expected profile %s, got %s", uid, sess.Profile.ID)
	}
	if sess.Profile.Role != "user" {
		t.Errorf("expected role user, got %s", sess.Profile.Role)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	f := newTestFixture(t)
	f.seedAccount(t, "ana@jardinverde.com", entity.RoleUser)

	resp := f.do(http.MethodPost, "/account/login", "",
		`{"email":"ana@jardinverde.com","password":"secret2"}`)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d: %s", resp.Code, resp.Body.String())
	}
}

func TestLoginMissingProfile(t *testing.T) {
	f := newTestFixture(t)
	// Provider account exists but no profile document was ever written.
	f.provider.AddAccount("ghost@jardinverde.com", "secret1")

	resp := f.do(http.MethodPost, "/account/login", "",
		`{"email":"ghost@jardinverde.com","password":"secret1"}`)
	if resp.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d: %s", resp.Code, resp.Body.String())
	}
	if f.manager.Active() != 0 {
		t.Errorf("expected no active sessions, got %d", f.manager.Active())
	}
}

func TestRegisterCreatesAccount(t *testing.T) {
	f := newTestFixture(t)

	body := `{"name":"Pedro","surname":"Rojas","email":"pedro@jardinverde.com","password":"secret1"}`
	resp := f.do(http.MethodPost, "/account/register", "", body)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", resp.Code, resp.Body.String())
	}

	var sess Session
	if err := json.Unmarshal(resp.Body.Bytes(), &sess); err != nil {
		t.Fatalf("json unmarshal: %v", err)
	}
	if sess.Profile.Email != "pedro@jardinverde.com" {
		t.Errorf("unexpected email %s", sess.Profile.Email)
	}
	if sess.Profile.Role != "user" {
		t.Errorf("new accounts must default to user, got %s", sess.Profile.Role)
	}
}

func TestMeRequiresSession(t *testing.T) {
	f := newTestFixture(t)

	resp := f.do(http.MethodGet, "/account/me", "", "")
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d: %s", resp.Code, resp.Body.String())
	}
	if got := resp.Header().Get("WWW-Authenticate"); !strings.Contains(got, "Bearer") {
		t.Errorf("expected WWW-Authenticate challenge, got %q", got)
	}
}

func TestLogoutInvalidatesToken(t *testing.T) {
	f := newTestFixture(t)
	f.seedAccount(t, "ana@jardinverde.com", entity.RoleUser)

	login := f.do(http.MethodPost, "/account/login", "",
		`{"email":"ana@jardinverde.com","password":"secret1"}`)
	if login.Code != http.StatusOK {
		t.Fatalf("login: %d: %s", login.Code, login.Body.String())
	}
	var sess Session
	if err := json.Unmarshal(login.Body.Bytes(), &sess); err != nil {
		t.Fatalf("json unmarshal: %v", err)
	}

	me := f.do(http.MethodGet, "/account/me", sess.Token, "")
	if me.Code != http.StatusOK {
		t.Fatalf("me with token: %d: %s", me.Code, me.Body.String())
	}

	logout := f.do(http.MethodPost, "/account/logout", sess.Token, "")
	if logout.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d: %s", logout.Code, logout.Body.String())
	}

	after := f.do(http.MethodGet, "/account/me", sess.Token, "")
	if after.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 after logout, got %d", after.Code)
	}
}

func TestListUsers(t *testing.T) {
	f := newTestFixture(t)
	f.seedAccount(t, "dueno@jardinverde.com", entity.RoleAdmin)
	f.seedAccount(t, "pedro@jardinverde.com", entity.RoleUser)

	login := f.do(http.MethodPost, "/account/login", "",
		`{"email":"dueno@jardinverde.com","password":"secret1"}`)
	var sess Session
	if err := json.Unmarshal(login.Body.Bytes(), &sess); err != nil {
		t.Fatalf("json unmarshal: %v", err)
	}

	resp := f.do(http.MethodGet, "/account/users", sess.Token, "")
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	var out struct {
		Users []Profile `json:"users"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &out); err != nil {
		t.Fatalf("json unmarshal: %v", err)
	}
	if len(out.Users) != 2 {
		t.Fatalf("expected 2 users, got %+v", out.Users)
	}

	filtered := f.do(http.MethodGet, "/account/users?search=pedro", sess.Token, "")
	if filtered.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", filtered.Code, filtered.Body.String())
	}
	if err := json.Unmarshal(filtered.Body.Bytes(), &out); err != nil {
		t.Fatalf("json unmarshal: %v", err)
	}
	if len(out.Users) != 1 || out.Users[0].Email != "pedro@jardinverde.com" {
		t.Fatalf("expected only pedro, got %+v", out.Users)
	}
}

func TestListUsersForbiddenForUser(t *testing.T) {
	f := newTestFixture(t)
	f.seedAccount(t, "pedro@jardinverde.com", entity.RoleUser)

	login := f.do(http.MethodPost, "/account/login", "",
		`{"email":"pedro@jardinverde.com","password":"secret1"}`)
	var sess Session
	if err := json.Unmarshal(login.Body.Bytes(), &sess); err != nil {
		t.Fatalf("json unmarshal: %v", err)
	}

	resp := f.do(http.MethodGet, "/account/users", sess.Token, "")
	if resp.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d: %s", resp.Code, resp.Body.String())
	}
}

func TestGrantAdminForbiddenForUser(t *testing.T) {
	f := newTestFixture(t)
	f.seedAccount(t, "ana@jardinverde.com", entity.RoleUser)
	f.seedAccount(t, "pedro@jardinverde.com", entity.RoleUser)

	login := f.do(http.MethodPost, "/account/login", "",
		`{"email":"ana@jardinverde.com","password":"secret1"}`)
	var sess Session
	if err := json.Unmarshal(login.Body.Bytes(), &sess); err != nil {
		t.Fatalf("json unmarshal: %v", err)
	}

	resp := f.do(http.MethodPost, "/account/grant-admin", sess.Token,
		`{"email":"pedro@jardinverde.com"}`)
	if resp.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d: %s", resp.Code, resp.Body.String())
	}
}

func TestGrantAdminPromotes(t *testing.T) {
	f := newTestFixture(t)
	f.seedAccount(t, "dueno@jardinverde.com", entity.RoleAdmin)
	target := f.seedAccount(t, "pedro@jardinverde.com", entity.RoleUser)

	login := f.do(http.MethodPost, "/account/login", "",
		`{"email":"dueno@jardinverde.com","password":"secret1"}`)
	var sess Session
	if err := json.Unmarshal(login.Body.Bytes(), &sess); err != nil {
		t.Fatalf("json unmarshal: %v", err)
	}

	resp := f.do(http.MethodPost, "/account/grant-admin", sess.Token,
		`{"email":"pedro@jardinverde.com"}`)
	if resp.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d: %s", resp.Code, resp.Body.String())
	}

	doc, err := f.remote.Read(context.Background(), store.ColProfiles, target)
	if err != nil {
		t.Fatalf("read profile: %v", err)
	}
	var promoted entity.Profile
	if err := store.Decode(doc.Data, &promoted); err != nil {
		t.Fatalf("decode profile: %v", err)
	}
	if promoted.Role != entity.RoleAdmin {
		t.Errorf("expected promoted role, got %q", promoted.Role)
	}
}
