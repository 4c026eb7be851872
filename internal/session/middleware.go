package session

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"go.uber.org/zap"

	"github.com/jardinverde/gardenia/internal/auth"
	appmiddleware "github.com/jardinverde/gardenia/internal/middleware"
)

// sessionContextKey is the context key for the established session.
type sessionContextKey struct{}

// NewMiddleware creates huma middleware that resolves the bearer token to
// an established session for operations declaring a security requirement.
// Operations without one pass through; handlers that only optionally use
// the session read it via FromContext.
func NewMiddleware(api huma.API, manager *Manager) func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		token, err := auth.ExtractBearerToken(ctx.Header("Authorization"))
		if err == nil {
			if sess, ok := manager.SessionFor(token); ok {
				ctx = huma.WithValue(ctx, sessionContextKey{}, sess)
				next(ctx)
				return
			}
		}

		if len(ctx.Operation().Security) == 0 {
			next(ctx)
			return
		}

		appmiddleware.LogWarn(ctx.Context(), "request without established session",
			zap.String("operation", ctx.Operation().OperationID))
		ctx.SetHeader("WWW-Authenticate", "Bearer")
		_ = huma.WriteErr(api, ctx, http.StatusUnauthorized, "sign-in required")
	}
}

// FromContext retrieves the established session, nil when anonymous.
func FromContext(ctx context.Context) *Session {
	sess, _ := ctx.Value(sessionContextKey{}).(*Session)
	return sess
}
