package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/credcascade/internal/core/domain"
)

var (
	historyLimit int
	historyJSON  bool
	historyClear bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent credential requests",
	Long: `Lists recent fill, approve and reject runs with the resource they were
for and how they ended. Usernames and passwords are never recorded.

Recording is off unless history.enabled = true is set in the config file.`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "maximum number of entries")
	historyCmd.Flags().BoolVar(&historyJSON, "json", false, "output entries as JSON")
	historyCmd.Flags().BoolVar(&historyClear, "clear", false, "delete all entries")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, _ []string) error {
	app, release, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer release()

	if app.History == nil {
		return errors.New("history service not configured")
	}

	ctx := commandContext(cmd)
	if historyClear {
		if err := app.History.Clear(ctx); err != nil {
			return fmt.Errorf("failed to clear history: %w", err)
		}
		cmd.Println("History cleared.")
		return nil
	}

	entries, err := app.History.Recent(ctx, historyLimit)
	if err != nil {
		return fmt.Errorf("failed to list history: %w", err)
	}

	if historyJSON {
		if entries == nil {
			entries = []domain.Invocation{}
		}
		data, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal history: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	if len(entries) == 0 {
		cmd.Println("No history recorded.")
		return nil
	}

	st := newStyles(cmd.OutOrStdout())
	cmd.Println(st.Title.Render("Recent requests"))
	for i := range entries {
		e := &entries[i]
		line := fmt.Sprintf("  %s  %-6s %s  %s",
			st.Muted.Render(e.CreatedAt.Local().Format(time.DateTime)),
			e.Action,
			resource(e),
			st.status(e.Status))
		if e.Error != "" {
			line += " " + st.Error.Render("("+e.Error+")")
		}
		cmd.Println(line)
	}
	return nil
}

func resource(e *domain.Invocation) string {
	if e.Host == "" {
		return "-"
	}
	r := e.Host
	if e.Protocol != "" {
		r = e.Protocol + "://" + r
	}
	if e.Path != "" {
		r += "/" + e.Path
	}
	return r
}
