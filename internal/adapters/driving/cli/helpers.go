package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/credcascade/internal/core/domain"
)

var helpersCmd = &cobra.Command{
	Use:   "helpers",
	Short: "List the credential helpers in invocation order",
	Args:  cobra.NoArgs,
	RunE:  runHelpers,
}

func init() {
	rootCmd.AddCommand(helpersCmd)
}

func runHelpers(cmd *cobra.Command, _ []string) error {
	app, release, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer release()

	st := newStyles(cmd.OutOrStdout())
	programs := app.Cascade.Programs()
	if len(programs) == 0 {
		cmd.Println("No credential helpers configured.")
		return nil
	}

	cmd.Println(st.Title.Render("Credential helpers"))
	for i, p := range programs {
		cmd.Printf("  %d. %s %s\n", i+1, p.Name(), st.Muted.Render("("+kindLabel(p.Kind)+")"))
	}
	return nil
}

func kindLabel(k domain.ProgramKind) string {
	switch k {
	case domain.ProgramShell:
		return "shell"
	case domain.ProgramPath:
		return "path"
	default:
		return "helper"
	}
}
