package cmd

import (
	"fmt"

	"github.com/AsilbekT/secman/internal/ui"
	"github.com/AsilbekT/secman/internal/workflows"

	"github.com/spf13/cobra"
)

var convertCmd = &cobra.Command{
	Use:   "convert <OLD_ENV_NAME> <NEW_ENV_NAME>",
	Short: "Re-encrypt all secrets under a different master key",
	Long: `Decrypts every encrypted secret with the key held in OLD_ENV_NAME and
re-encrypts it with the key held in NEW_ENV_NAME, re-stamping the
provenance metadata and rewriting the key declaration line.

Signatures are verified first, and the operation is all-or-nothing: if any
record fails verification or decryption under the old key, the file is not
written at all.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		oldEnv, newEnv := args[0], args[1]
		Logger.Infof("Starting convert command from %s to %s", oldEnv, newEnv)
		spinner, cleanup := startSpinner("Converting secrets to the new key...", verbose)
		defer cleanup()

		result, err := workflows.Convert(cmd.Context(), workflows.ConvertOptions{
			OldEnvName:   oldEnv,
			NewEnvName:   newEnv,
			FilePatterns: filePatterns,
		})
		if err != nil {
			Logger.Errorf("Convert failed: %v", err)
			spinner.FinalMSG = renderError(err)
			return err
		}

		spinner.FinalMSG = ui.Success.Sprint("✓") +
			fmt.Sprintf(" Converted %d secret(s) to the key in ", result.Total) +
			ui.Secret.Sprint(newEnv)
		return nil
	},
}
