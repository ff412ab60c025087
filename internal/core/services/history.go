package services

import (
	"context"
	"errors"
	"time"

	"github.com/custodia-labs/credcascade/internal/core/domain"
	"github.com/custodia-labs/credcascade/internal/core/ports/driven"
	"github.com/custodia-labs/credcascade/internal/core/ports/driving"
)

// Ensure HistoryService implements the interface.
var _ driving.HistoryService = (*HistoryService)(nil)

// HistoryService records which resources credentials were requested for and
// how each request ended. It never stores usernames or passwords.
type HistoryService struct {
	store driven.HistoryStore
	now   func() time.Time
}

// NewHistoryService creates a history service. A nil store disables recording.
func NewHistoryService(store driven.HistoryStore) *HistoryService {
	return &HistoryService{
		store: store,
		now:   time.Now,
	}
}

// Record stores the result of one cascade invocation. The store assigns the ID.
func (s *HistoryService) Record(ctx context.Context, action *domain.Action, outcome *domain.Outcome, invokeErr error) error {
	if s.store == nil {
		return nil
	}
	if action == nil {
		return domain.ErrInvalidInput
	}

	inv := domain.Invocation{
		Action:    action.Kind.String(),
		Status:    statusOf(action, outcome, invokeErr),
		CreatedAt: s.now().UTC(),
	}
	if c := action.Context; c != nil {
		inv.Protocol = domain.Value(c.Protocol)
		inv.Host = domain.Value(c.Host)
		inv.Path = domain.Value(c.Path)
	}
	if invokeErr != nil {
		inv.Error = errorKind(invokeErr)
	}
	return s.store.Record(ctx, inv)
}

// Recent lists the newest invocations first.
func (s *HistoryService) Recent(ctx context.Context, limit int) ([]domain.Invocation, error) {
	if s.store == nil {
		return nil, nil
	}
	return s.store.List(ctx, limit)
}

// Clear removes all records.
func (s *HistoryService) Clear(ctx context.Context) error {
	if s.store == nil {
		return nil
	}
	return s.store.Clear(ctx)
}

func statusOf(action *domain.Action, outcome *domain.Outcome, err error) domain.InvocationStatus {
	switch {
	case err != nil:
		return domain.StatusFailed
	case !action.IsGet() || outcome == nil:
		return domain.StatusDone
	case outcome.Quit:
		return domain.StatusQuit
	case outcome.Complete():
		return domain.StatusComplete
	default:
		return domain.StatusPartial
	}
}

// errorKind keeps only the error class; messages may quote URLs or helper output.
func errorKind(err error) string {
	switch {
	case errors.Is(err, domain.ErrParse):
		return "parse"
	case errors.Is(err, domain.ErrHelperCommunication):
		return "helper_communication"
	case errors.Is(err, domain.ErrPrompt):
		return "prompt"
	default:
		return "other"
	}
}
