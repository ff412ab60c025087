package prompt

import (
	"github.com/custodia-labs/credcascade/internal/core/domain"
	"github.com/custodia-labs/credcascade/internal/core/ports/driven"
)

// Ensure Dispatcher implements the interface.
var _ driven.Prompter = (*Dispatcher)(nil)

// Dispatcher uses Askpass whenever the options name an askpass program and
// Interactive otherwise. A nil Interactive means there is no terminal.
type Dispatcher struct {
	Askpass     driven.Prompter
	Interactive driven.Prompter
}

// Ask routes the question.
func (d *Dispatcher) Ask(message string, opts domain.PromptOptions) (string, error) {
	if opts.AskpassProgram != "" && d.Askpass != nil {
		return d.Askpass.Ask(message, opts)
	}
	if d.Interactive == nil {
		return "", ErrNoTerminal
	}
	return d.Interactive.Ask(message, opts)
}
