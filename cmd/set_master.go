package cmd

import (
	"github.com/AsilbekT/secman/internal/ui"
	"github.com/AsilbekT/secman/internal/workflows"

	"github.com/spf13/cobra"
)

var setMasterCmd = &cobra.Command{
	Use:   "set-master <ENV_NAME>",
	Short: "Set which environment variable holds the master key",
	Long: `Rewrites the secrets file's key declaration line to name the given
environment variable. The variable itself is not read or validated here;
it is resolved when encrypting or decrypting.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		envName := args[0]
		Logger.Infof("Starting set-master command with %s", envName)
		spinner, cleanup := startSpinner("Updating key declaration...", verbose)
		defer cleanup()

		result, err := workflows.SetMaster(cmd.Context(), workflows.SetMasterOptions{
			EnvName:      envName,
			FilePatterns: filePatterns,
		})
		if err != nil {
			Logger.Errorf("Set-master failed: %v", err)
			spinner.FinalMSG = renderError(err)
			return err
		}

		msg := ""
		for _, file := range result.Updated {
			msg += ui.Success.Sprint("✓") + " Key declaration in " + ui.Path.Sprint(file) +
				" now names " + ui.Secret.Sprint(envName) + "\n"
		}
		for _, file := range result.Missing {
			msg += ui.Warning.Sprint("!") + " " + ui.Path.Sprint(file) +
				" has no key declaration line; nothing changed\n" +
				ui.Info.Sprint("→") + " Add one by re-running " + ui.Code.Sprint("secman init") +
				" in a fresh directory, or insert the line manually\n"
		}
		spinner.FinalMSG = msg
		return nil
	},
}
