package cmd

import (
	"fmt"
	"strings"

	"github.com/AsilbekT/secman/internal/ui"
	"github.com/AsilbekT/secman/internal/workflows"

	"github.com/spf13/cobra"
)

var encryptCmd = &cobra.Command{
	Use:   "encrypt",
	Short: "Encrypt all plain secrets in the secrets file",
	Long: `Encrypts every secret that still holds a plaintext value, using the master
key named by the file's key declaration line. The plaintext is erased and
replaced by an empty value plus an encrypted companion line carrying the
ciphertext and its provenance metadata.

Empty values are treated as unset and never encrypted. Secrets that already
have an encrypted companion are skipped; delete the companion line first to
re-encrypt one.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting encrypt command")
		spinner, cleanup := startSpinner("Encrypting secrets...", verbose)
		defer cleanup()

		result, err := workflows.Encrypt(cmd.Context(), workflows.EncryptOptions{
			FilePatterns: filePatterns,
		})
		if err != nil {
			Logger.Errorf("Encrypt failed: %v", err)
			spinner.FinalMSG = renderError(err)
			return err
		}

		var b strings.Builder
		for _, report := range result.Reports {
			for _, name := range report.Encrypted {
				Logger.Infof("Encrypted %s in %s", name, report.File)
				b.WriteString(ui.Success.Sprint("✓") + " Encrypted " + ui.Secret.Sprint(name) +
					": plaintext removed from the file\n")
			}
			for _, name := range report.Skipped {
				b.WriteString(ui.Warning.Sprint("!") + " Skipping " + ui.Secret.Sprint(name) +
					": already encrypted in the file\n" +
					ui.Info.Sprint("→") + " To re-encrypt it, delete its " +
					ui.Code.Sprint("_ENCRYPTED") + " line and run encrypt again\n")
			}
		}
		b.WriteString(ui.Success.Sprint("✓") + fmt.Sprintf(" Done. %d secret(s) encrypted.", result.Total))

		spinner.FinalMSG = b.String()
		return nil
	},
}
