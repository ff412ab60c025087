package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/credcascade/internal/core/domain"
	"github.com/custodia-labs/credcascade/internal/logger"
)

// ErrIncomplete is returned by fill when no helper or prompt produced both a
// username and a password.
var ErrIncomplete = errors.New("credentials incomplete")

// ErrQuit is returned by fill when a helper asked to stop.
var ErrQuit = errors.New("credential helper requested quit")

var fillCmd = &cobra.Command{
	Use:   "fill",
	Short: "Obtain credentials for the description on stdin",
	Long: `Reads a credential description from stdin, asks each helper in turn and
prompts for anything still missing. The full result is written to stdout in
the same key=value format.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runCredential(cmd, domain.ActionGet)
	},
}

var approveCmd = &cobra.Command{
	Use:   "approve",
	Short: "Tell every helper to store the credentials on stdin",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runCredential(cmd, domain.ActionStore)
	},
}

var rejectCmd = &cobra.Command{
	Use:   "reject",
	Short: "Tell every helper to erase the credentials on stdin",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runCredential(cmd, domain.ActionErase)
	},
}

func init() {
	rootCmd.AddCommand(fillCmd)
	rootCmd.AddCommand(approveCmd)
	rootCmd.AddCommand(rejectCmd)
}

func runCredential(cmd *cobra.Command, kind domain.ActionKind) error {
	input, err := domain.DecodeContext(cmd.InOrStdin())
	if err != nil {
		return fmt.Errorf("reading credential description: %w", err)
	}

	app, release, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer release()

	ctx := commandContext(cmd)
	action := &domain.Action{Kind: kind, Context: input}
	outcome, invokeErr := app.Cascade.Invoke(ctx, action, app.Prompt)

	if app.History != nil {
		if err := app.History.Record(ctx, action, outcome, invokeErr); err != nil {
			logger.Warn("recording history: %v", err)
		}
	}

	if invokeErr != nil {
		return fmt.Errorf("%s failed: %w", kind, invokeErr)
	}
	if outcome == nil {
		return nil
	}

	if outcome.Quit {
		return ErrQuit
	}
	if !outcome.Complete() {
		return fmt.Errorf("%w for %s", ErrIncomplete, describe(outcome.Next))
	}
	return outcome.Next.Encode(cmd.OutOrStdout())
}

// describe names the resource without credentials.
func describe(c *domain.Context) string {
	if c == nil {
		return "request"
	}
	if u := c.ToURL(); u != "" {
		return logger.RedactURL(u)
	}
	return "request"
}
