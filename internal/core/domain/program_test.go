package domain

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseProgram(t *testing.T) {
	abs := "/usr/local/bin/helper"
	if runtime.GOOS == "windows" {
		abs = `C:\tools\helper.exe`
	}

	tests := []struct {
		name       string
		definition string
		kind       ProgramKind
		script     string
	}{
		{"bare name", "store", ProgramName, "git credential-store"},
		{"name with args", "store --file /tmp/creds", ProgramName, "git credential-store --file /tmp/creds"},
		{"shell", "!echo password=x", ProgramShell, "echo password=x"},
		{"absolute path", abs + " --flag", ProgramPath, abs + " --flag"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := ParseProgram(tt.definition)
			assert.Equal(t, tt.kind, p.Kind)
			assert.Equal(t, tt.script, p.Script())
			assert.True(t, p.Stderr)
		})
	}
}

func TestProgram_Name(t *testing.T) {
	assert.Equal(t, "!f", ParseProgram("!f").Name())
	assert.Equal(t, "cache", ParseProgram("cache").Name())
}

func TestPlatformBuiltin(t *testing.T) {
	tests := map[string]string{
		"darwin":  "osxkeychain",
		"linux":   "libsecret",
		"windows": "manager-core",
	}
	for goos, name := range tests {
		programs := platformBuiltin(goos)
		require.Len(t, programs, 1, goos)
		assert.Equal(t, name, programs[0].Definition)
		assert.Equal(t, ProgramName, programs[0].Kind)
	}
	assert.Empty(t, platformBuiltin("plan9"))
}

func TestActionKind_RoundTrip(t *testing.T) {
	for _, k := range []ActionKind{ActionGet, ActionStore, ActionErase} {
		parsed, err := ParseActionKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, parsed)
	}
	_, err := ParseActionKind("fill")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestOutcome_Complete(t *testing.T) {
	assert.False(t, (&Outcome{}).Complete())
	assert.True(t, (&Outcome{Username: String("u"), Password: String("")}).Complete())
}

func TestPromptOptions_WithModeCopies(t *testing.T) {
	base := PromptOptions{Mode: PromptVisible, AskpassProgram: "askpass"}
	hidden := base.WithMode(PromptHidden)

	assert.Equal(t, PromptVisible, base.Mode)
	assert.Equal(t, PromptHidden, hidden.Mode)
	assert.Equal(t, "askpass", hidden.AskpassProgram)
}
