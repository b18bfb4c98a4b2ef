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

var (
	syncConfigPath string
	syncForce      bool
)

func newSyncCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Check for a new release and vendor the configured files",
		Long: `Check the configured repository for a new release and, if the vendored
version is out of date (or --force is given), vendor the configured files and
folders into the destination tree.

Vendoring failures are reported and folded into the update status; only a
configuration load failure yields a non-zero exit code. The update status is
printed as VENDOR_UPDATED=true|false for consumption by CI workflows.`,
		Args: cobra.NoArgs,
		RunE: syncCmdFunc,
	}

	cmd.Flags().StringVar(&syncConfigPath, "config", "", "Path to the vendor configuration file")
	if err := cmd.MarkFlagRequired("config"); err != nil {
		logger.Errorf("failed to mark flag required: %v", err)
	}
	cmd.Flags().BoolVar(&syncForce, "force", false, "Force update even if the version hasn't changed")

	return cmd
}

func syncCmdFunc(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(syncConfigPath)
	if err != nil {
		// Configuration failures abort before any network or file work.
		return err
	}

	updater := vendoring.NewUpdater(cfg, github.NewReleaseClient(), git.NewDefaultClient())

	updated, err := updater.CheckAndUpdate(cmd.Context(), syncForce)
	if err != nil {
		logger.Errorf("error during update: %v", err)
	}

	fmt.Printf("VENDOR_UPDATED=%t\n", updated)
	return nil
}
