package prompt

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/credcascade/internal/core/domain"
)

func writeAskpass(t *testing.T, body string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("askpass scripts require a POSIX shell")
	}
	path := filepath.Join(t.TempDir(), "askpass.sh")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0o755))
	return path
}

func TestAskpass_UsesFirstLine(t *testing.T) {
	program := writeAskpass(t, `printf 'answer to %s\nsecond line\n' "$1"`)

	got, err := NewAskpass(context.Background()).Ask("Username: ",
		domain.PromptOptions{Mode: domain.PromptVisible, AskpassProgram: program})

	require.NoError(t, err)
	assert.Equal(t, "answer to Username: ", got)
}

func TestAskpass_Failure(t *testing.T) {
	program := writeAskpass(t, "exit 1")

	_, err := NewAskpass(context.Background()).Ask("Password: ",
		domain.PromptOptions{Mode: domain.PromptHidden, AskpassProgram: program})

	assert.ErrorContains(t, err, "running askpass")
}

func TestAskpass_RequiresProgram(t *testing.T) {
	_, err := NewAskpass(context.Background()).Ask("Password: ", domain.PromptOptions{Mode: domain.PromptHidden})
	assert.Error(t, err)
}

func TestAskpassFromEnv(t *testing.T) {
	t.Setenv("GIT_ASKPASS", "")
	t.Setenv("SSH_ASKPASS", "/usr/bin/ssh-askpass")
	assert.Equal(t, "/usr/bin/ssh-askpass", AskpassFromEnv())

	t.Setenv("GIT_ASKPASS", "/usr/bin/git-askpass")
	assert.Equal(t, "/usr/bin/git-askpass", AskpassFromEnv())
}

type recordingPrompter struct {
	name   string
	called *string
}

func (r recordingPrompter) Ask(string, domain.PromptOptions) (string, error) {
	*r.called = r.name
	return r.name, nil
}

func TestDispatcher_Routes(t *testing.T) {
	var called string
	d := &Dispatcher{
		Askpass:     recordingPrompter{"askpass", &called},
		Interactive: recordingPrompter{"interactive", &called},
	}

	_, err := d.Ask("Username: ", domain.PromptOptions{Mode: domain.PromptVisible, AskpassProgram: "x"})
	require.NoError(t, err)
	assert.Equal(t, "askpass", called)

	_, err = d.Ask("Username: ", domain.PromptOptions{Mode: domain.PromptVisible})
	require.NoError(t, err)
	assert.Equal(t, "interactive", called)
}

func TestDispatcher_NoTerminal(t *testing.T) {
	_, err := (&Dispatcher{}).Ask("Username: ", domain.PromptOptions{Mode: domain.PromptVisible})
	assert.ErrorIs(t, err, ErrNoTerminal)
}
