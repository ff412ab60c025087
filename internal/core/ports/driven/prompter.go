package driven

import "github.com/custodia-labs/credcascade/internal/core/domain"

// Prompter asks the user for a single missing field.
// The cascade never calls Ask with domain.PromptDisabled.
type Prompter interface {
	// Ask shows message and returns the answer. opts.Mode selects echoed
	// (PromptVisible) or masked (PromptHidden) input.
	Ask(message string, opts domain.PromptOptions) (string, error)
}
