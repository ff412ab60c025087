package driving

import (
	"context"

	"github.com/custodia-labs/credcascade/internal/core/domain"
)

// CascadeService resolves, stores and erases credentials through the
// configured helper programs.
type CascadeService interface {
	// Invoke runs action through every helper in order.
	// For Get it returns the Outcome, which may be incomplete; for Store and
	// Erase it returns nil. The action's context is mutated in place and keeps
	// its changes when an error is returned.
	Invoke(ctx context.Context, action *domain.Action, prompt domain.PromptOptions) (*domain.Outcome, error)

	// Programs returns the helpers in invocation order.
	Programs() []domain.Program
}

// HistoryService exposes the invocation audit trail.
type HistoryService interface {
	// Record stores the result of one invocation.
	Record(ctx context.Context, action *domain.Action, outcome *domain.Outcome, invokeErr error) error

	// Recent lists the newest invocations first.
	Recent(ctx context.Context, limit int) ([]domain.Invocation, error)

	// Clear removes all records.
	Clear(ctx context.Context) error
}
