package domain

import (
	"path/filepath"
	"runtime"
	"strings"
)

// ProgramKind describes how a helper definition is turned into a command.
type ProgramKind int

const (
	// ProgramName is a bare helper name, run as "git credential-<name>".
	ProgramName ProgramKind = iota
	// ProgramPath is an absolute path to an executable, optionally with arguments.
	ProgramPath
	// ProgramShell is a shell snippet, written with a leading "!" in configuration.
	ProgramShell
)

// Program describes one external credential helper.
type Program struct {
	// Definition is the helper as configured, e.g. "store --file ~/.creds".
	Definition string
	Kind       ProgramKind
	// Stderr controls whether the helper's stderr reaches the user.
	// The cascade overwrites it before every invocation.
	Stderr bool
}

// ParseProgram interprets a helper definition the way git does.
func ParseProgram(definition string) Program {
	def := strings.TrimSpace(definition)
	if rest, ok := strings.CutPrefix(def, "!"); ok {
		return Program{Definition: rest, Kind: ProgramShell, Stderr: true}
	}
	first, _, _ := strings.Cut(def, " ")
	if filepath.IsAbs(first) {
		return Program{Definition: def, Kind: ProgramPath, Stderr: true}
	}
	return Program{Definition: def, Kind: ProgramName, Stderr: true}
}

// Script returns the command line to hand to the shell.
func (p Program) Script() string {
	if p.Kind == ProgramName {
		return "git credential-" + p.Definition
	}
	return p.Definition
}

// Name returns a short label for logs and listings.
func (p Program) Name() string {
	switch p.Kind {
	case ProgramShell:
		return "!" + p.Definition
	default:
		return p.Definition
	}
}

// PlatformBuiltin returns the helpers a typical git installation enables on
// the current platform. Missing helpers are ignored by the cascade, so using
// them unconditionally is safe.
func PlatformBuiltin() []Program {
	return platformBuiltin(runtime.GOOS)
}

func platformBuiltin(goos string) []Program {
	var name string
	switch goos {
	case "darwin":
		name = "osxkeychain"
	case "linux":
		name = "libsecret"
	case "windows":
		name = "manager-core"
	default:
		return nil
	}
	return []Program{ParseProgram(name)}
}
