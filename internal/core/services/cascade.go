package services

import (
	"context"
	"errors"

	"github.com/custodia-labs/credcascade/internal/core/domain"
	"github.com/custodia-labs/credcascade/internal/core/ports/driven"
	"github.com/custodia-labs/credcascade/internal/core/ports/driving"
	"github.com/custodia-labs/credcascade/internal/logger"
)

// Ensure Cascade implements the interface.
var _ driving.CascadeService = (*Cascade)(nil)

// Cascade asks an ordered list of credential helpers for credentials and
// falls back to prompting the user for whatever they did not supply.
//
// Earlier helpers take precedence only in the sense that the loop stops as
// soon as the credentials are complete; a later helper that answers
// overwrites the fields it supplies.
type Cascade struct {
	programs []domain.Program
	stderr   bool
	invoker  driven.HelperInvoker
	parser   driven.URLParser
	prompter driven.Prompter
}

// CascadeOption configures a Cascade.
type CascadeOption func(*Cascade)

// WithPrompter sets the interactive fallback. Without one, missing fields
// are left empty even when prompting is enabled.
func WithPrompter(p driven.Prompter) CascadeOption {
	return func(c *Cascade) {
		c.prompter = p
	}
}

// WithStderr controls whether helpers may write to the user's stderr.
func WithStderr(enabled bool) CascadeOption {
	return func(c *Cascade) {
		c.stderr = enabled
	}
}

// WithPrograms appends helpers to the cascade.
func WithPrograms(programs ...domain.Program) CascadeOption {
	return func(c *Cascade) {
		c.programs = append(c.programs, programs...)
	}
}

// NewCascade creates a cascade without helpers. Helper stderr is visible by default.
func NewCascade(invoker driven.HelperInvoker, parser driven.URLParser, opts ...CascadeOption) *Cascade {
	c := &Cascade{
		stderr:  true,
		invoker: invoker,
		parser:  parser,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Extend appends programs to the end of the helper list.
func (c *Cascade) Extend(programs ...domain.Program) *Cascade {
	c.programs = append(c.programs, programs...)
	return c
}

// Programs returns a copy of the helper list in invocation order.
func (c *Cascade) Programs() []domain.Program {
	out := make([]domain.Program, len(c.programs))
	copy(out, c.programs)
	return out
}

// Invoke runs action through the helpers.
//
// Get stops at the first helper after which both username and password are
// known, or that asks to quit. Store and Erase visit every helper and ignore
// their failures. For Get, missing fields are then prompted for unless
// prompt.Mode is domain.PromptDisabled.
//
// A Get succeeds even when the credentials remain incomplete; check
// Outcome.Complete.
func (c *Cascade) Invoke(ctx context.Context, action *domain.Action, prompt domain.PromptOptions) (*domain.Outcome, error) {
	if action == nil || (action.IsGet() && action.Context == nil) {
		return nil, domain.ErrInvalidInput
	}

	if action.Context != nil && action.Context.HasURL() {
		if err := c.destructure(action.Context); err != nil {
			return nil, err
		}
	}

	logger.Section("Credential cascade: " + action.Kind.String())
	for i := range c.programs {
		c.programs[i].Stderr = c.stderr
		stop, err := c.consult(ctx, c.programs[i], action)
		if err != nil {
			return nil, err
		}
		if stop {
			break
		}
	}

	if !action.IsGet() {
		return nil, nil
	}

	if err := c.promptMissing(action.Context, prompt); err != nil {
		return nil, err
	}

	next := action.Context.Clone()
	return &domain.Outcome{
		Username: next.Username,
		Password: next.Password,
		Quit:     next.ShouldQuit(),
		Next:     next,
	}, nil
}

// consult invokes one helper and merges its reply. It reports whether the
// cascade should stop.
func (c *Cascade) consult(ctx context.Context, program domain.Program, action *domain.Action) (bool, error) {
	name := program.Name()
	out, err := c.invoker.Invoke(ctx, program, action)
	if err == nil && out != nil && action.IsGet() {
		var reply *domain.Context
		reply, err = domain.ParseContext(out)
		if err == nil {
			return c.merge(name, action.Context, reply)
		}
	}

	switch {
	case errors.Is(err, domain.ErrHelperUnusable):
		logger.Debug("helper %s unusable, skipping: %v", name, err)
		return false, nil
	case err != nil && action.IsGet():
		return false, &domain.HelperCommunicationError{Program: name, Err: err}
	case err != nil:
		logger.Warn("helper %s failed during %s, continuing: %v", name, action.Kind, err)
		return false, nil
	}

	logger.Debug("helper %s: no output", name)
	return false, nil
}

func (c *Cascade) merge(name string, dst, reply *domain.Context) (bool, error) {
	dst.Merge(reply)
	if reply.HasURL() {
		if err := c.destructure(dst); err != nil {
			return false, err
		}
	}
	logger.Debug("helper %s answered: username=%t password=%t", name, reply.Username != nil, reply.Password != nil)

	// Complete credentials end the loop before quit is looked at, so a
	// helper answering both does not discard its answer.
	if dst.HasCredentials() {
		logger.Debug("credentials complete after helper %s", name)
		return true, nil
	}
	if reply.ShouldQuit() {
		dst.Quit = domain.Bool(true)
		logger.Debug("helper %s asked to quit", name)
		return true, nil
	}
	return false, nil
}

func (c *Cascade) destructure(dst *domain.Context) error {
	raw := domain.Value(dst.URL)
	parts, err := c.parser.Parse(raw)
	if err != nil {
		return &domain.ParseError{URL: logger.RedactURL(raw), Err: err}
	}
	dst.ApplyURLParts(parts)
	return nil
}

// promptMissing asks for the username, then the password, when absent.
// Each prompt gets its own options value.
func (c *Cascade) promptMissing(dst *domain.Context, prompt domain.PromptOptions) error {
	if prompt.Mode == domain.PromptDisabled || c.prompter == nil {
		return nil
	}

	fields := []struct {
		label string
		mode  domain.PromptMode
		slot  **string
	}{
		{"Username", domain.PromptVisible, &dst.Username},
		{"Password", domain.PromptHidden, &dst.Password},
	}
	for _, f := range fields {
		if *f.slot != nil {
			continue
		}
		message := dst.PromptLabel(f.label)
		answer, err := c.prompter.Ask(message, prompt.WithMode(f.mode))
		if err != nil {
			return &domain.PromptError{Prompt: message, Err: err}
		}
		*f.slot = domain.String(answer)
	}
	return nil
}
