package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/credcascade/internal/core/domain"
	"github.com/custodia-labs/credcascade/internal/core/ports/driven"
)

// timeLayout has fixed width so created_at sorts lexically.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// historyStore implements driven.HistoryStore.
type historyStore struct {
	store *Store
}

var _ driven.HistoryStore = (*historyStore)(nil)

// Record stores an invocation, assigning an ID when it has none.
func (s *historyStore) Record(ctx context.Context, inv domain.Invocation) error {
	if inv.ID == "" {
		inv.ID = uuid.New().String()
	}
	if inv.CreatedAt.IsZero() {
		inv.CreatedAt = time.Now()
	}

	_, err := s.store.db.ExecContext(ctx, `
		INSERT INTO invocations (id, action, protocol, host, path, status, error, created_at, seq)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, (SELECT COALESCE(MAX(seq), 0) + 1 FROM invocations))
	`,
		inv.ID,
		inv.Action,
		inv.Protocol,
		inv.Host,
		inv.Path,
		string(inv.Status),
		inv.Error,
		inv.CreatedAt.UTC().Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("saving invocation: %w", err)
	}
	return nil
}

// List returns the most recent invocations first.
func (s *historyStore) List(ctx context.Context, limit int) ([]domain.Invocation, error) {
	if limit <= 0 {
		limit = -1 // SQLite: no limit
	}

	rows, err := s.store.db.QueryContext(ctx, `
		SELECT id, action, protocol, host, path, status, error, created_at
		FROM invocations
		ORDER BY created_at DESC, seq DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying invocations: %w", err)
	}
	defer rows.Close()

	var result []domain.Invocation //nolint:prealloc // size unknown from query
	for rows.Next() {
		var (
			inv       domain.Invocation
			status    string
			createdAt string
		)
		if err := rows.Scan(&inv.ID, &inv.Action, &inv.Protocol, &inv.Host, &inv.Path,
			&status, &inv.Error, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning invocation: %w", err)
		}
		inv.Status = domain.InvocationStatus(status)
		if t, err := time.Parse(timeLayout, createdAt); err == nil {
			inv.CreatedAt = t
		}
		result = append(result, inv)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating invocations: %w", err)
	}
	return result, nil
}

// Clear removes all records.
func (s *historyStore) Clear(ctx context.Context) error {
	if _, err := s.store.db.ExecContext(ctx, "DELETE FROM invocations"); err != nil {
		return fmt.Errorf("clearing invocations: %w", err)
	}
	return nil
}
