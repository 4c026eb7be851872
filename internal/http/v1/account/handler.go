package account

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/jardinverde/gardenia/internal/auth"
	"github.com/jardinverde/gardenia/internal/session"
	"github.com/jardinverde/gardenia/internal/store"
)

// Register registers account and session endpoints.
func Register(api huma.API, manager *session.Manager) {
	huma.Register(api, huma.Operation{
		OperationID: "login",
		Method:      http.MethodPost,
		Path:        "/account/login",
		Summary:     "Sign in",
		Description: "Signs in against the identity provider and establishes a session.",
		Tags:        []string{"Account"},
	}, func(ctx context.Context, input *LoginInput) (*LoginOutput, error) {
		sess, err := manager.Login(ctx, input.Body.Email, input.Body.Password)
		if err != nil {
			return nil, mapSessionError(err)
		}
		return &LoginOutput{Body: Session{
			Token:   sess.Token,
			Profile: toHTTPProfile(sess.Profile),
		}}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID:   "register-account",
		Method:        http.MethodPost,
		Path:          "/account/register",
		Summary:       "Create account",
		Description:   "Creates a provider account plus its profile record and establishes a session.",
		Tags:          []string{"Account"},
		DefaultStatus: http.StatusCreated,
	}, func(ctx context.Context, input *RegisterInput) (*RegisterOutput, error) {
		sess, err := manager.Register(ctx, session.RegisterParams{
			Name:    input.Body.Name,
			Surname: input.Body.Surname,
			Email:   input.Body.Email,
			Secret:  input.Body.Password,
		})
		if err != nil {
			return nil, mapSessionError(err)
		}
		return &RegisterOutput{Body: Session{
			Token:   sess.Token,
			Profile: toHTTPProfile(sess.Profile),
		}}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID:   "logout",
		Method:        http.MethodPost,
		Path:          "/account/logout",
		Summary:       "Sign out",
		Description:   "Closes the caller's session. The last session to close clears all protected data mirrors.",
		Tags:          []string{"Account"},
		DefaultStatus: http.StatusNoContent,
		Security: []map[string][]string{
			{"bearerAuth": {}},
		},
	}, func(ctx context.Context, _ *LogoutInput) (*struct{}, error) {
		sess := session.FromContext(ctx)
		manager.Logout(ctx, sess.Token)
		return nil, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "get-account",
		Method:      http.MethodGet,
		Path:        "/account/me",
		Summary:     "Get current profile",
		Description: "Returns the profile bound to the caller's session.",
		Tags:        []string{"Account"},
		Security: []map[string][]string{
			{"bearerAuth": {}},
		},
	}, func(ctx context.Context, _ *MeInput) (*MeOutput, error) {
		sess := session.FromContext(ctx)
		return &MeOutput{Body: toHTTPProfile(sess.Profile)}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "list-users",
		Method:      http.MethodGet,
		Path:        "/account/users",
		Summary:     "List user accounts",
		Description: "Lists registered profiles, optionally filtered by name or email. Requires an admin session.",
		Tags:        []string{"Account"},
		Security: []map[string][]string{
			{"bearerAuth": {}},
		},
	}, func(ctx context.Context, input *ListUsersInput) (*ListUsersOutput, error) {
		sess := session.FromContext(ctx)
		users, err := manager.Users(sess, input.Search)
		if err != nil {
			return nil, mapSessionError(err)
		}
		out := &ListUsersOutput{}
		out.Body.Users = make([]Profile, 0, len(users))
		for _, u := range users {
			out.Body.Users = append(out.Body.Users, toHTTPProfile(u))
		}
		return out, nil
	})

	huma.Register(api, huma.Operation{
		OperationID:   "grant-admin",
		Method:        http.MethodPost,
		Path:          "/account/grant-admin",
		Summary:       "Promote a profile to admin",
		Description:   "Promotes the profile with the given email to the admin role. Requires an admin session.",
		Tags:          []string{"Account"},
		DefaultStatus: http.StatusNoContent,
		Security: []map[string][]string{
			{"bearerAuth": {}},
		},
	}, func(ctx context.Context, input *GrantAdminInput) (*struct{}, error) {
		sess := session.FromContext(ctx)
		if err := manager.GrantAdmin(ctx, sess, input.Body.Email); err != nil {
			return nil, mapSessionError(err)
		}
		return nil, nil
	})
}

func mapSessionError(err error) error {
	switch {
	case errors.Is(err, auth.ErrInvalidCredentials):
		return huma.Error401Unauthorized("invalid email or password")
	case errors.Is(err, auth.ErrEmailInUse):
		return huma.Error409Conflict("email already registered")
	case errors.Is(err, auth.ErrWeakSecret):
		return huma.Error422UnprocessableEntity("password is too weak")
	case errors.Is(err, session.ErrProfileMissing):
		return huma.Error409Conflict("account has no profile record")
	case errors.Is(err, session.ErrNoSession):
		return huma.Error401Unauthorized("sign-in required")
	case errors.Is(err, session.ErrForbidden):
		return huma.Error403Forbidden("admin role required")
	case errors.Is(err, store.ErrNotFound):
		return huma.Error404NotFound("profile not found")
	default:
		return huma.Error500InternalServerError("internal error")
	}
}
