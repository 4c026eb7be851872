package session

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/jardinverde/gardenia/internal/common"
	"github.com/jardinverde/gardenia/internal/store"
)

// Gate is the single choke point for mutations to protected collections.
// Without an established session the remote write is never attempted.
// When a remote write fails, the failure is surfaced to the caller and
// local state is reconciled from the next snapshot (or an explicit
// Resync), never assumed correct.
type Gate struct {
	remote store.Remote
}

// NewGate creates a gate over the given remote store.
func NewGate(remote store.Remote) *Gate {
	return &Gate{remote: remote}
}

// Set writes a record, provided sess is established. A session already
// closed by logout is rejected the same as no session at all.
func (g *Gate) Set(ctx context.Context, sess *Session, collection, id string, record any) error {
	if !sess.Established() {
		g.audit(ctx, "write", "", collection, id, "rejected")
		return ErrNoSession
	}
	if err := g.remote.Set(ctx, collection, id, record); err != nil {
		g.audit(ctx, "write", sess.Profile.ID, collection, id, "failure")
		return fmt.Errorf("saving %s/%s: %w", collection, id, err)
	}
	g.audit(ctx, "write", sess.Profile.ID, collection, id, "success")
	return nil
}

// Delete removes a record, provided sess is established.
func (g *Gate) Delete(ctx context.Context, sess *Session, collection, id string) error {
	if !sess.Established() {
		g.audit(ctx, "delete", "", collection, id, "rejected")
		return ErrNoSession
	}
	if err := g.remote.Delete(ctx, collection, id); err != nil {
		g.audit(ctx, "delete", sess.Profile.ID, collection, id, "failure")
		return fmt.Errorf("deleting %s/%s: %w", collection, id, err)
	}
	g.audit(ctx, "delete", sess.Profile.ID, collection, id, "success")
	return nil
}

// audit logs a structured audit event for every gate decision.
func (g *Gate) audit(ctx context.Context, action, userID, collection, id, result string) {
	common.Logger().Info("audit event",
		zap.String("audit.action", action),
		zap.String("audit.user_id", userID),
		zap.String("audit.collection", collection),
		zap.String("audit.resource_id", id),
		zap.String("audit.result", result),
	)
}
