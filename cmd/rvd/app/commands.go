// Package app provides the entry point for the revend command-line application.
package app

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/revend/revend/pkg/logger"
)

var rootCmd = &cobra.Command{
	Use:               "rvd",
	DisableAutoGenTag: true,
	Short:             "Revend (rvd) keeps vendored copies of external repositories up to date",
	Long: `Revend (rvd) synchronizes a local directory tree with selected files and
folders from the latest release of an external GitHub repository.

It resolves the latest published release, compares it against the version
recorded at the destination, and when they differ checks out the released
revision into a temporary snapshot and copies the configured files and
folders into place, preserving or flattening directory structure per rule.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.Initialize()
	},
	Run: func(cmd *cobra.Command, _ []string) {
		// If no subcommand is provided, print help
		if err := cmd.Help(); err != nil {
			logger.Errorf("error displaying help: %v", err)
		}
	},
}

// NewRootCmd creates a new root command for the revend CLI.
func NewRootCmd() *cobra.Command {
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	if err := viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug")); err != nil {
		logger.Errorf("failed to bind flag: %v", err)
	}

	rootCmd.AddCommand(newSyncCmd())
	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}
