package advice

import (
	"context"

	"github.com/jardinverde/gardenia/internal/entity"
)

// MockService implements Service for unit tests.
type MockService struct {
	// Reply is returned for every question; empty means the apology.
	Reply string

	// LastQuery records the most recent question.
	LastQuery string
}

func (m *MockService) Ask(ctx context.Context, query string, products []entity.Product) string {
	m.LastQuery = query
	if m.Reply == "" {
		return Apology
	}
	return m.Reply
}

// Compile-time interface check
var _ Service = (*MockService)(nil)
