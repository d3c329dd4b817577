package cmd

import (
	"fmt"

	"github.com/AsilbekT/secman/internal/ui"
	"github.com/AsilbekT/secman/internal/workflows"

	"github.com/spf13/cobra"
)

var decryptCmd = &cobra.Command{
	Use:   "decrypt",
	Short: "Decrypt all encrypted secrets in the secrets file",
	Long: `Restores every encrypted secret to its plaintext value and removes the
encrypted companion lines. Each record's signature is verified before
decryption; a mismatch aborts without touching the file.

Decryption is destructive to the encrypted form. Running encrypt again
recomputes ciphertext and metadata from scratch.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting decrypt command")
		spinner, cleanup := startSpinner("Decrypting secrets...", verbose)
		defer cleanup()

		result, err := workflows.Decrypt(cmd.Context(), workflows.DecryptOptions{
			FilePatterns: filePatterns,
		})
		if err != nil {
			Logger.Errorf("Decrypt failed: %v", err)
			spinner.FinalMSG = renderError(err)
			return err
		}

		spinner.FinalMSG = ui.Success.Sprint("✓") +
			fmt.Sprintf(" Done. %d secret(s) decrypted.", result.Total)
		return nil
	},
}
