package driven

import (
	"context"

	"github.com/custodia-labs/credcascade/internal/core/domain"
)

// HistoryStore persists an audit trail of cascade invocations.
// Records never contain usernames or passwords.
type HistoryStore interface {
	// Record stores one invocation.
	Record(ctx context.Context, inv domain.Invocation) error

	// List returns the most recent invocations, newest first.
	// A limit of zero or less returns all records.
	List(ctx context.Context, limit int) ([]domain.Invocation, error)

	// Clear removes all records.
	Clear(ctx context.Context) error
}
