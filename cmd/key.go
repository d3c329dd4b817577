package cmd

import (
	"fmt"

	"github.com/AsilbekT/secman/internal/secrets"

	"github.com/spf13/cobra"
)

var keyCmd = &cobra.Command{
	Use:   "key",
	Short: "Generate a fresh master key",
	Long: `Prints a newly generated master key in the encoding the cipher expects
(url-safe base64 of 32 random bytes). The key is written to stdout with no
decoration so it can be piped or exported directly:

  export APP_KEY=$(secman key)`,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Generating a new master key")
		key, err := secrets.GenerateMasterKey()
		if err != nil {
			Logger.Errorf("Key generation failed: %v", err)
			return err
		}
		fmt.Println(key)
		return nil
	},
}
