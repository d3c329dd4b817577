package cmd

import (
	logger "github.com/AsilbekT/secman/internal/logging"

	"github.com/common-nighthawk/go-figure"
	"github.com/spf13/cobra"
)

var (
	verbose      bool
	debug        bool
	filePatterns []string
	Logger       logger.Logger

	RootCmd = &cobra.Command{
		Use:   "secman",
		Short: "Manage secrets stored in a project's text-based secrets file",
		Long: `Secman manages named configuration values in a human-editable secrets file.

Secret values are encrypted in place with a symmetric master key resolved
from an environment variable, leaving the file safe to commit. Each
encrypted value carries provenance metadata (key name, signature,
timestamp) so tampering and hand edits are detected before decryption.

Run 'secman help <command>' for details on a specific command.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			Logger = logger.Logger{
				Verbose: verbose,
				Debug:   debug,
			}
			Logger.Debugf("Initializing secman with verbose=%t, debug=%t", verbose, debug)
		},
		Run: func(cmd *cobra.Command, args []string) {
			figure.NewColorFigure("secman", "alligator2", "green", true).Print()
			_ = cmd.Help()
		},
	}
)

func init() {
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	RootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug output")
	RootCmd.PersistentFlags().StringSliceVarP(&filePatterns, "file", "f", nil,
		"target secrets file(s); globs are allowed, defaults to the configured file")

	RootCmd.AddCommand(initCmd)
	RootCmd.AddCommand(listCmd)
	RootCmd.AddCommand(encryptCmd)
	RootCmd.AddCommand(decryptCmd)
	RootCmd.AddCommand(removeCmd)
	RootCmd.AddCommand(setMasterCmd)
	RootCmd.AddCommand(convertCmd)
	RootCmd.AddCommand(keyCmd)
}

// Execute runs the root command.
func Execute() error {
	return RootCmd.Execute()
}

// ResetGlobalState resets all global flag variables to their defaults for testing.
func ResetGlobalState() {
	verbose = false
	debug = false
	filePatterns = nil
}
