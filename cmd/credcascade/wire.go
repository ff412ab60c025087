package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/custodia-labs/credcascade/internal/adapters/driven/config/file"
	"github.com/custodia-labs/credcascade/internal/adapters/driven/giturl"
	"github.com/custodia-labs/credcascade/internal/adapters/driven/helper/process"
	"github.com/custodia-labs/credcascade/internal/adapters/driven/prompt"
	"github.com/custodia-labs/credcascade/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/credcascade/internal/adapters/driving/cli"
	"github.com/custodia-labs/credcascade/internal/core/domain"
	"github.com/custodia-labs/credcascade/internal/core/ports/driven"
	"github.com/custodia-labs/credcascade/internal/core/services"
	"github.com/custodia-labs/credcascade/internal/logger"
)

// Prompt styles accepted in prompt.style.
const (
	styleTerminal = "terminal"
	styleForm     = "form"
)

// newApp is the composition root: it reads the config file and connects the
// adapters to the core services.
func newApp(ctx context.Context, opts cli.Options) (*cli.App, error) {
	cfg, err := file.NewConfigStore(opts.ConfigDir)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	logger.Debug("config: %s", cfg.Path())

	var closers []func() error
	closeAll := func() error {
		var errs []error
		for i := len(closers) - 1; i >= 0; i-- {
			errs = append(errs, closers[i]())
		}
		return errors.Join(errs...)
	}

	promptOpts := promptOptions(cfg, opts.NoPrompt)
	var prompter driven.Prompter
	if promptOpts.Mode != domain.PromptDisabled {
		interactive, closer := openInteractive(cfg.GetString(driven.ConfigPromptStyle))
		if closer != nil {
			closers = append(closers, closer)
		}
		prompter = &prompt.Dispatcher{
			Askpass:     prompt.NewAskpass(ctx),
			Interactive: interactive,
		}
	}

	cascade := services.NewCascade(
		process.NewInvoker(),
		giturl.NewParser(),
		services.WithPrograms(programs(cfg, opts.Helpers)...),
		services.WithStderr(cfg.GetBool(driven.ConfigStderr, true) && !opts.QuietHelpers),
		services.WithPrompter(prompter),
	)

	var historyStore driven.HistoryStore
	if cfg.GetBool(driven.ConfigHistoryEnabled, false) {
		store, err := sqlite.NewStore(dataDir(opts.ConfigDir))
		if err != nil {
			_ = closeAll()
			return nil, fmt.Errorf("opening history: %w", err)
		}
		closers = append(closers, store.Close)
		historyStore = store.HistoryStore()
	}

	return &cli.App{
		Cascade: cascade,
		History: services.NewHistoryService(historyStore),
		Prompt:  promptOpts,
		Close:   closeAll,
	}, nil
}

// programs builds the helper list: platform helpers, then configured ones,
// then those given on the command line.
func programs(cfg driven.ConfigStore, extra []string) []domain.Program {
	var out []domain.Program
	if cfg.GetBool(driven.ConfigPlatformDefaults, true) {
		out = append(out, domain.PlatformBuiltin()...)
	}
	for _, def := range append(cfg.GetStringSlice(driven.ConfigHelpers), extra...) {
		if strings.TrimSpace(def) == "" {
			continue
		}
		out = append(out, domain.ParseProgram(def))
	}
	return out
}

// promptOptions decides whether prompting is enabled and which askpass
// program to use.
func promptOptions(cfg driven.ConfigStore, noPrompt bool) domain.PromptOptions {
	opts := domain.PromptOptions{Mode: domain.PromptVisible}
	if noPrompt || strings.EqualFold(cfg.GetString(driven.ConfigPromptMode), "disabled") || !envEnabled(os.Getenv("GIT_TERMINAL_PROMPT")) {
		opts.Mode = domain.PromptDisabled
		return opts
	}

	opts.AskpassProgram = cfg.GetString(driven.ConfigPromptAskpass)
	if opts.AskpassProgram == "" {
		opts.AskpassProgram = prompt.AskpassFromEnv()
	}
	return opts
}

// envEnabled treats an unset variable as enabled, like git does for
// GIT_TERMINAL_PROMPT.
func envEnabled(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "0", "false", "no", "off":
		return false
	default:
		return true
	}
}

// openInteractive returns the prompter for style, or nil when there is no
// terminal to ask on.
func openInteractive(style string) (driven.Prompter, func() error) {
	if strings.EqualFold(style, styleForm) {
		if prompt.IsTerminal(os.Stdin) {
			return prompt.Form{}, nil
		}
		logger.Debug("prompt style %q needs a terminal on stdin, falling back to %s", styleForm, styleTerminal)
	}
	term, closer, err := prompt.OpenTerminal()
	if err != nil {
		logger.Debug("no terminal for prompting: %v", err)
		return nil, nil
	}
	return term, closer.Close
}

func dataDir(configDir string) string {
	if configDir == "" {
		return ""
	}
	return filepath.Join(configDir, "data")
}
