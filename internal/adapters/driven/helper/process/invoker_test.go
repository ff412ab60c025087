package process

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/credcascade/internal/core/domain"
)

func skipWithoutShell(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("helper scripts require a POSIX shell")
	}
}

// writeHelper creates an executable shell script and returns its path.
func writeHelper(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "helper.sh")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0o755))
	return path
}

func TestInvoker_GetReturnsReply(t *testing.T) {
	skipWithoutShell(t)
	dir := t.TempDir()
	stdinFile := filepath.Join(dir, "stdin")
	argsFile := filepath.Join(dir, "args")
	helper := writeHelper(t, `echo "$@" > `+argsFile+`
cat > `+stdinFile+`
echo username=u
echo password=p`)

	action := domain.Get(&domain.Context{Protocol: domain.String("https"), Host: domain.String("h")})
	out, err := NewInvoker().Invoke(context.Background(), domain.ParseProgram(helper), action)

	require.NoError(t, err)
	assert.Equal(t, "username=u\npassword=p\n", string(out))

	args, err := os.ReadFile(argsFile)
	require.NoError(t, err)
	assert.Equal(t, "get\n", string(args))

	stdin, err := os.ReadFile(stdinFile)
	require.NoError(t, err)
	assert.Equal(t, "protocol=https\nhost=h\n\n", string(stdin))
}

func TestInvoker_EmptyReplyIsNoOutput(t *testing.T) {
	skipWithoutShell(t)
	helper := writeHelper(t, "exit 0")

	out, err := NewInvoker().Invoke(context.Background(), domain.ParseProgram(helper), domain.Get(&domain.Context{}))

	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestInvoker_StoreDiscardsOutput(t *testing.T) {
	skipWithoutShell(t)
	helper := writeHelper(t, "echo password=ignored")

	out, err := NewInvoker().Invoke(context.Background(), domain.ParseProgram(helper), domain.Store(&domain.Context{}))

	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestInvoker_ShellDefinition(t *testing.T) {
	skipWithoutShell(t)
	program := domain.ParseProgram(`!f() { test "$1" = get && echo password=from-shell; }; f`)

	out, err := NewInvoker().Invoke(context.Background(), program, domain.Get(&domain.Context{}))

	require.NoError(t, err)
	assert.Equal(t, "password=from-shell\n", string(out))
}

func TestInvoker_FailuresAreUnusable(t *testing.T) {
	skipWithoutShell(t)
	tests := map[string]domain.Program{
		"non-zero exit":  domain.ParseProgram(writeHelper(t, "exit 1")),
		"missing binary": domain.ParseProgram(filepath.Join(t.TempDir(), "does-not-exist")),
		"missing name":   domain.ParseProgram("!credcascade-test-no-such-helper"),
	}

	for name, program := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := NewInvoker().Invoke(context.Background(), program, domain.Get(&domain.Context{}))
			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrHelperUnusable), err.Error())
		})
	}
}

func TestInvoker_MissingShellIsUnusable(t *testing.T) {
	inv := NewInvoker(WithShell(filepath.Join(t.TempDir(), "no-shell")))

	_, err := inv.Invoke(context.Background(), domain.ParseProgram("store"), domain.Get(&domain.Context{}))

	assert.ErrorIs(t, err, domain.ErrHelperUnusable)
}

func TestInvoker_CancelledContextIsCommunicationFailure(t *testing.T) {
	skipWithoutShell(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewInvoker().Invoke(ctx, domain.ParseProgram(writeHelper(t, "echo password=p")), domain.Get(&domain.Context{}))

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, errors.Is(err, domain.ErrHelperUnusable))
}

func TestInvoker_InvalidRequestIsCommunicationFailure(t *testing.T) {
	_, err := NewInvoker().Invoke(context.Background(), domain.ParseProgram("store"),
		domain.Get(&domain.Context{Password: domain.String("a\nb")}))

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.False(t, errors.Is(err, domain.ErrHelperUnusable))
}

func TestInvoker_StderrVisibility(t *testing.T) {
	skipWithoutShell(t)
	helper := writeHelper(t, "echo oops >&2")

	var visible bytes.Buffer
	program := domain.ParseProgram(helper)
	_, err := NewInvoker(WithStderr(&visible)).Invoke(context.Background(), program, domain.Get(&domain.Context{}))
	require.NoError(t, err)
	assert.Equal(t, "oops\n", visible.String())

	var hidden bytes.Buffer
	program.Stderr = false
	_, err = NewInvoker(WithStderr(&hidden)).Invoke(context.Background(), program, domain.Get(&domain.Context{}))
	require.NoError(t, err)
	assert.Empty(t, hidden.String())
}

func TestInvoker_Env(t *testing.T) {
	skipWithoutShell(t)
	helper := writeHelper(t, `echo "password=$CREDCASCADE_TEST_VALUE"`)

	out, err := NewInvoker(WithEnv("CREDCASCADE_TEST_VALUE=xyz")).
		Invoke(context.Background(), domain.ParseProgram(helper), domain.Get(&domain.Context{}))

	require.NoError(t, err)
	assert.Equal(t, "password=xyz\n", string(out))
}
