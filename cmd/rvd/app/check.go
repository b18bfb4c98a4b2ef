package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/revend/revend/pkg/config"
	"github.com/revend/revend/pkg/git"
	"github.com/revend/revend/pkg/github"
	"github.com/revend/revend/pkg/logger"
	"github.com/revend/revend/pkg/vendoring"
)

var checkConfigPath string

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Show the latest and currently vendored versions without vendoring",
		Args:  cobra.NoArgs,
		RunE:  checkCmdFunc,
	}

	cmd.Flags().StringVar(&checkConfigPath, "config", "", "Path to the vendor configuration file")
	if err := cmd.MarkFlagRequired("config"); err != nil {
		logger.Errorf("failed to mark flag required: %v", err)
	}

	return cmd
}

func checkCmdFunc(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(checkConfigPath)
	if err != nil {
		return err
	}

	updater := vendoring.NewUpdater(cfg, github.NewReleaseClient(), git.NewDefaultClient())

	latest, current, err := updater.Check(cmd.Context())
	if err != nil {
		logger.Errorf("error checking for updates: %v", err)
		return nil
	}

	commit := latest.CommitSHA
	if len(commit) > 8 {
		commit = commit[:8]
	}
	newer := current == "" || vendoring.IsNewer(current, latest.Version)
	if current == "" {
		current = "none"
	}

	fmt.Printf("Latest version: %s (commit: %s)\n", latest.Version, commit)
	fmt.Printf("Current version: %s\n", current)
	if newer {
		fmt.Println("A newer version is available.")
	}
	return nil
}
