package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/credcascade/internal/core/domain"
	"github.com/custodia-labs/credcascade/internal/core/ports/driving"
	"github.com/custodia-labs/credcascade/internal/logger"
)

// version is set at build time with -ldflags "-X ...cli.version=v1.2.3".
var version = "dev"

// Global flags.
var (
	configDir    string
	helperFlags  []string
	noPrompt     bool
	verbose      bool
	quietHelpers bool
)

// Options are the global flags handed to the App factory.
type Options struct {
	// ConfigDir overrides ~/.credcascade.
	ConfigDir string
	// Helpers are appended after the configured helpers.
	Helpers []string
	// NoPrompt disables the interactive fallback.
	NoPrompt bool
	// QuietHelpers hides helper stderr.
	QuietHelpers bool
}

// App bundles what the commands need from the composition root.
type App struct {
	Cascade driving.CascadeService
	History driving.HistoryService
	Prompt  domain.PromptOptions
	// Close releases the terminal and the history database. May be nil.
	Close func() error
}

// Factory builds an App from the global flags.
type Factory func(ctx context.Context, opts Options) (*App, error)

var appFactory Factory

// SetAppFactory sets how commands obtain their services.
func SetAppFactory(f Factory) {
	appFactory = f
}

var rootCmd = &cobra.Command{
	Use:   "credcascade",
	Short: "Resolve credentials through a cascade of credential helpers",
	Long: `credcascade asks an ordered list of git-compatible credential helpers for
credentials, merges their answers and prompts for whatever is still missing.

Credential descriptions are read from stdin as key=value lines, the same
format git uses:

  protocol=https
  host=example.com
  path=org/repo.git`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		logger.SetOutput(cmd.ErrOrStderr())
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "",
		"configuration directory (default ~/.credcascade)")
	rootCmd.PersistentFlags().StringArrayVar(&helperFlags, "helper", nil,
		"additional credential helper, may be repeated")
	rootCmd.PersistentFlags().BoolVar(&noPrompt, "no-prompt", false,
		"never prompt for missing credentials")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"log each helper decision to stderr")
	rootCmd.PersistentFlags().BoolVar(&quietHelpers, "quiet-helpers", false,
		"hide credential helper stderr")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func currentOptions() Options {
	return Options{
		ConfigDir:    configDir,
		Helpers:      append([]string(nil), helperFlags...),
		NoPrompt:     noPrompt,
		QuietHelpers: quietHelpers,
	}
}

// openApp builds the services for one command run. The returned release
// function is always safe to call.
func openApp(cmd *cobra.Command) (*App, func(), error) {
	if appFactory == nil {
		return nil, func() {}, errors.New("application not configured")
	}
	app, err := appFactory(commandContext(cmd), currentOptions())
	if err != nil {
		return nil, func() {}, err
	}
	release := func() {
		if app.Close == nil {
			return
		}
		if err := app.Close(); err != nil {
			logger.Warn("closing resources: %v", err)
		}
	}
	return app, release, nil
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
