package cmd

import (
	"strings"

	"github.com/AsilbekT/secman/internal/ui"
	"github.com/AsilbekT/secman/internal/workflows"

	"github.com/spf13/cobra"
)

var removeCmd = &cobra.Command{
	Use:   "remove <NAME>",
	Short: "Remove a secret from the secrets file",
	Long: `Removes the named secret's line and its encrypted companion line, if any.
All other lines, including the key declaration, are left untouched.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		Logger.Infof("Starting remove command for %s", name)
		spinner, cleanup := startSpinner("Removing secret...", verbose)
		defer cleanup()

		result, err := workflows.Remove(cmd.Context(), workflows.RemoveOptions{
			Name:         name,
			FilePatterns: filePatterns,
		})
		if err != nil {
			Logger.Errorf("Remove failed: %v", err)
			spinner.FinalMSG = renderError(err)
			return err
		}

		spinner.FinalMSG = ui.Success.Sprint("✓") + " Removed " + ui.Secret.Sprint(name) +
			" from " + ui.Path.Sprint(strings.Join(result.Files, ", "))
		return nil
	},
}
