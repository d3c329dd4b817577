package cmd

import (
	"github.com/AsilbekT/secman/internal/ui"
	"github.com/AsilbekT/secman/internal/workflows"

	"github.com/spf13/cobra"
)

var (
	initProjectName string
	initSecretsFile string
	initKeyEnvName  string
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize secman in the current directory",
	Long: `Creates the project configuration (.secman.toml) and a fresh secrets file
with the standard header block and a key declaration line. An existing
secrets file is left untouched.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting init command")
		spinner, cleanup := startSpinner("Initializing project...", verbose)
		defer cleanup()

		result, err := workflows.Init(cmd.Context(), workflows.InitOptions{
			ProjectName: initProjectName,
			SecretsFile: initSecretsFile,
			KeyEnvName:  initKeyEnvName,
		})
		if err != nil {
			Logger.Errorf("Init failed: %v", err)
			spinner.FinalMSG = renderError(err)
			return err
		}

		msg := ui.Success.Sprint("✓") + " Created " + ui.Path.Sprint(result.ConfigPath) + "\n"
		if result.FileExisted {
			msg += ui.Warning.Sprint("!") + " Secrets file " + ui.Path.Sprint(result.SecretsFile) +
				" already exists; left untouched\n"
		} else {
			msg += ui.Success.Sprint("✓") + " Created " + ui.Path.Sprint(result.SecretsFile) + "\n"
		}
		if initKeyEnvName == "" {
			msg += ui.Info.Sprint("→") + " Next, run " + ui.Code.Sprint("secman set-master <ENV_NAME>") +
				" to name the master key variable"
		}
		spinner.FinalMSG = msg
		return nil
	},
}

func init() {
	initCmd.Flags().StringVar(&initProjectName, "name", "", "project name recorded in the config")
	initCmd.Flags().StringVar(&initSecretsFile, "secrets-file", "", "secrets file to create (default project_secrets.env)")
	initCmd.Flags().StringVar(&initKeyEnvName, "master-env", "", "environment variable name for the key declaration")
}
