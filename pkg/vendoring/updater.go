// Package vendoring contains the vendoring engine: pattern matching, file
// selection and copying, and the check-and-update orchestration.
package vendoring

import (
	"context"
	"strings"

	"golang.org/x/mod/semver"

	"github.com/revend/revend/pkg/config"
	"github.com/revend/revend/pkg/errors"
	"github.com/revend/revend/pkg/git"
	"github.com/revend/revend/pkg/github"
	"github.com/revend/revend/pkg/ledger"
	"github.com/revend/revend/pkg/logger"
)

// Updater ties together release resolution, snapshot materialization, file
// copying and the version ledger for one destination tree.
type Updater struct {
	cfg       *config.Config
	releases  github.ReleaseClient
	gitClient git.Client
}

// NewUpdater creates an Updater for the given configuration.
func NewUpdater(cfg *config.Config, releases github.ReleaseClient, gitClient git.Client) *Updater {
	return &Updater{
		cfg:       cfg,
		releases:  releases,
		gitClient: gitClient,
	}
}

// Check resolves the latest published release and reads the currently
// vendored version without performing any vendoring.
func (u *Updater) Check(ctx context.Context) (*github.ReleaseInfo, string, error) {
	vendor := u.cfg.Vendor

	latest, err := u.releases.GetLatestRelease(ctx, vendor.Repository.Owner, vendor.Repository.Repo)
	if err != nil {
		return nil, "", err
	}

	current, err := ledger.ReadCurrent(vendor.Destination)
	if err != nil {
		return nil, "", errors.NewInternalError("failed to read vendored version", err)
	}

	return latest, current, nil
}

// CheckAndUpdate compares the currently vendored version against the latest
// published release and, if they differ (or force is set), vendors the
// configured files and folders from a snapshot of the released revision.
// It returns whether an update was performed.
//
// The ephemeral snapshot is always discarded, whether or not vendoring
// succeeded. There is no rollback of files already copied when a failure
// occurs mid-copy; the ledger is only written after a fully successful pass,
// so the next run will vendor again.
func (u *Updater) CheckAndUpdate(ctx context.Context, force bool) (bool, error) {
	vendor := u.cfg.Vendor
	logger.Infof("checking for updates to %s", vendor.Repository)

	latest, current, err := u.Check(ctx)
	if err != nil {
		return false, err
	}

	logger.Infow("resolved versions",
		"latest", latest.Version,
		"commit", shortSHA(latest.CommitSHA),
		"current", orNone(current))

	if !force && current == latest.Version {
		logger.Info("no updates available")
		return false, nil
	}

	logger.Infof("updating to version %s", latest.Version)

	snapshot, err := u.gitClient.Materialize(ctx, vendor.Repository.CloneURL(), latest.CommitSHA)
	if err != nil {
		return false, err
	}
	defer func() {
		if err := snapshot.Cleanup(); err != nil {
			logger.Warnf("failed to remove snapshot directory %s: %v", snapshot.Dir, err)
		}
	}()

	copier := NewCopier(snapshot, vendor.Destination)
	if err := copier.CopyFiles(vendor.Files); err != nil {
		return false, err
	}
	for _, rule := range vendor.Folders {
		if err := copier.CopyFolder(rule); err != nil {
			return false, err
		}
	}

	if err := ledger.WriteEntry(vendor.Destination, latest.Version, latest.CommitSHA, vendor.Repository.String()); err != nil {
		return false, errors.NewInternalError("failed to record vendored version", err)
	}

	logger.Infof("successfully vendored version %s", latest.Version)
	return true, nil
}

// IsNewer reports whether latest is a semantically newer version than
// current. Both values are normalized to a "v" prefix; values that still do
// not parse as semver compare as not newer. Informational only: the update
// decision itself is exact tag equality.
func IsNewer(current, latest string) bool {
	if !strings.HasPrefix(current, "v") {
		current = "v" + current
	}
	if !strings.HasPrefix(latest, "v") {
		latest = "v" + latest
	}
	if !semver.IsValid(current) || !semver.IsValid(latest) {
		return false
	}
	return semver.Compare(semver.Canonical(current), semver.Canonical(latest)) < 0
}

func shortSHA(sha string) string {
	if len(sha) > 8 {
		return sha[:8]
	}
	return sha
}

func orNone(version string) string {
	if version == "" {
		return "none"
	}
	return version
}
