// Package process runs credential helpers as external programs speaking
// git's credential helper protocol over stdin and stdout.
package process

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/exec"

	"github.com/custodia-labs/credcascade/internal/core/domain"
	"github.com/custodia-labs/credcascade/internal/core/ports/driven"
)

// Ensure Invoker implements the interface.
var _ driven.HelperInvoker = (*Invoker)(nil)

// Invoker spawns one helper per call through the shell, the same way git
// does: `sh -c '<script> "$@"' <script> <action>`.
type Invoker struct {
	shell  string
	stderr io.Writer
	env    []string
}

// Option configures an Invoker.
type Option func(*Invoker)

// WithShell overrides the shell used to run helpers. Defaults to "sh".
func WithShell(shell string) Option {
	return func(i *Invoker) {
		i.shell = shell
	}
}

// WithStderr sets where visible helper stderr goes. Defaults to os.Stderr.
func WithStderr(w io.Writer) Option {
	return func(i *Invoker) {
		i.stderr = w
	}
}

// WithEnv appends environment variables for helpers.
func WithEnv(env ...string) Option {
	return func(i *Invoker) {
		i.env = append(i.env, env...)
	}
}

// NewInvoker creates a process based helper invoker.
func NewInvoker(opts ...Option) *Invoker {
	i := &Invoker{
		shell:  "sh",
		stderr: os.Stderr,
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// Invoke runs program with the action verb as its only argument and the
// action's context on stdin. Only Get returns output; an empty reply is
// reported as no output.
func (i *Invoker) Invoke(ctx context.Context, program domain.Program, action *domain.Action) ([]byte, error) {
	var input []byte
	if action.Context != nil {
		var err error
		if input, err = action.Context.Bytes(); err != nil {
			return nil, fmt.Errorf("encoding request for %s: %w", program.Name(), err)
		}
	}

	script := program.Script()
	cmd := exec.CommandContext(ctx, i.shell, "-c", script+` "$@"`, script, action.Kind.String())
	cmd.Stdin = bytes.NewReader(input)
	if len(i.env) > 0 {
		cmd.Env = append(os.Environ(), i.env...)
	}
	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	if program.Stderr {
		cmd.Stderr = i.stderr
	}

	if err := cmd.Run(); err != nil {
		return nil, classify(ctx, program, err)
	}

	if !action.IsGet() || stdout.Len() == 0 {
		return nil, nil
	}
	return stdout.Bytes(), nil
}

// classify separates helpers that could not do their job (skipped by the
// cascade) from failures talking to them.
func classify(ctx context.Context, program domain.Program, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return fmt.Errorf("running %s: %w", program.Name(), ctxErr)
	}

	var exitErr *exec.ExitError
	switch {
	case errors.As(err, &exitErr):
		return fmt.Errorf("%w: %s exited with status %d", domain.ErrHelperUnusable, program.Name(), exitErr.ExitCode())
	case errors.Is(err, exec.ErrNotFound), errors.Is(err, fs.ErrNotExist), errors.Is(err, fs.ErrPermission):
		return fmt.Errorf("%w: %s: %v", domain.ErrHelperUnusable, program.Name(), err)
	default:
		return fmt.Errorf("running %s: %w", program.Name(), err)
	}
}
