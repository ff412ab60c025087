package driven

import (
	"context"

	"github.com/custodia-labs/credcascade/internal/core/domain"
)

// HelperInvoker runs one credential helper for an action.
//
// Implementations return:
//   - nil bytes and nil error when the helper produced no output
//   - the raw "key=value" reply when it did
//   - an error wrapping domain.ErrHelperUnusable when the helper could not be
//     run or reported failure; the cascade skips such helpers
//   - any other error for communication failures
type HelperInvoker interface {
	Invoke(ctx context.Context, program domain.Program, action *domain.Action) ([]byte, error)
}

// URLParser splits a credential URL into its components.
type URLParser interface {
	Parse(rawURL string) (domain.URLParts, error)
}
