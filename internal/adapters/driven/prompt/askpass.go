package prompt

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/custodia-labs/credcascade/internal/core/domain"
	"github.com/custodia-labs/credcascade/internal/core/ports/driven"
)

// Ensure Askpass implements the interface.
var _ driven.Prompter = (*Askpass)(nil)

// Askpass runs opts.AskpassProgram with the prompt as its only argument and
// uses the first line it prints as the answer.
type Askpass struct {
	ctx context.Context
}

// NewAskpass creates an askpass prompter bound to ctx.
func NewAskpass(ctx context.Context) *Askpass {
	return &Askpass{ctx: ctx}
}

// Ask runs the askpass program. The echo mode is up to the program.
func (a *Askpass) Ask(message string, opts domain.PromptOptions) (string, error) {
	if opts.Mode == domain.PromptDisabled {
		return "", ErrDisabled
	}
	if opts.AskpassProgram == "" {
		return "", errors.New("no askpass program configured")
	}

	var stdout bytes.Buffer
	cmd := exec.CommandContext(a.ctx, opts.AskpassProgram, message)
	cmd.Stdout = &stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("running askpass %s: %w", opts.AskpassProgram, err)
	}

	line, err := bufio.NewReader(&stdout).ReadString('\n')
	if err != nil && line == "" {
		return "", nil
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// AskpassFromEnv returns the askpass program git would use: GIT_ASKPASS,
// then SSH_ASKPASS.
func AskpassFromEnv() string {
	for _, key := range []string{"GIT_ASKPASS", "SSH_ASKPASS"} {
		if v := strings.TrimSpace(os.Getenv(key)); v != "" {
			return v
		}
	}
	return ""
}
