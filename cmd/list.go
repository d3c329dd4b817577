package cmd

import (
	"fmt"

	"github.com/AsilbekT/secman/internal/workflows"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the names declared in the secrets file",
	Long: `Prints the name of every secret, encrypted companion, and key declaration
in the secrets file, one per line. Comments and blank lines are skipped.
The file is never modified.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting list command")

		result, err := workflows.List(cmd.Context(), workflows.ListOptions{
			FilePatterns: filePatterns,
		})
		if err != nil {
			Logger.Errorf("List failed: %v", err)
			fmt.Println(renderError(err))
			return err
		}

		for _, listing := range result.Listings {
			if len(result.Listings) > 1 {
				fmt.Printf("%s:\n", listing.File)
			}
			for _, name := range listing.Names {
				fmt.Println(name)
			}
		}
		return nil
	},
}
