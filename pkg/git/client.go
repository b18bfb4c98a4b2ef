// Package git materializes a repository revision into an ephemeral local
// snapshot using go-git.
package git

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"

	"github.com/revend/revend/pkg/errors"
	"github.com/revend/revend/pkg/logger"
)

// Snapshot is a temporary checkout of a repository pinned to a specific
// revision. It is exclusively owned by one materialize-then-copy operation
// and must be removed via Cleanup once that operation completes or fails.
type Snapshot struct {
	// Dir is the root of the checkout.
	Dir string
}

// Path returns the absolute path of a snapshot-relative file or folder.
func (s *Snapshot) Path(rel string) string {
	return filepath.Join(s.Dir, filepath.FromSlash(rel))
}

// Cleanup removes the snapshot directory and everything below it.
func (s *Snapshot) Cleanup() error {
	return os.RemoveAll(s.Dir)
}

// Client defines the interface for materializing repository snapshots.
type Client interface {
	// Materialize clones the repository and switches the checkout to the
	// given revision, returning the resulting ephemeral snapshot.
	Materialize(ctx context.Context, cloneURL, revision string) (*Snapshot, error)
}

// DefaultClient implements Client using go-git.
type DefaultClient struct {
	// tempParent is the parent directory for snapshot checkouts.
	// Empty means the system default temp directory.
	tempParent string
}

// NewDefaultClient creates a new DefaultClient.
func NewDefaultClient() *DefaultClient {
	return &DefaultClient{}
}

// Materialize creates a fresh temporary directory, performs a shallow clone
// of the repository's default branch and checks out the exact revision.
// Only the selected revision's file contents matter, not history, so the
// clone uses depth 1. On any failure the partially-created directory is
// removed before the error propagates.
func (c *DefaultClient) Materialize(ctx context.Context, cloneURL, revision string) (*Snapshot, error) {
	dir, err := os.MkdirTemp(c.tempParent, "revend-*")
	if err != nil {
		return nil, errors.NewMaterializeError("failed to create temporary directory", err)
	}

	repo, err := gogit.PlainCloneContext(ctx, dir, false, &gogit.CloneOptions{
		URL:   cloneURL,
		Depth: 1,
	})
	if err != nil {
		_ = os.RemoveAll(dir)
		return nil, errors.NewMaterializeError(fmt.Sprintf("failed to clone %s", cloneURL), err)
	}

	if revision != "" {
		if err := checkoutRevision(repo, revision); err != nil {
			_ = os.RemoveAll(dir)
			return nil, err
		}
	}

	logger.Debugw("materialized snapshot", "url", cloneURL, "revision", revision, "dir", dir)
	return &Snapshot{Dir: dir}, nil
}

// checkoutRevision switches the worktree to the given revision. The revision
// may be a commit hash, a branch name or a tag, matching what
// `git checkout <commitish>` accepts.
func checkoutRevision(repo *gogit.Repository, revision string) error {
	hash, err := repo.ResolveRevision(plumbing.Revision(revision))
	if err != nil {
		return errors.NewMaterializeError(fmt.Sprintf("failed to resolve revision %q", revision), err)
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return errors.NewMaterializeError("failed to get worktree", err)
	}

	if err := worktree.Checkout(&gogit.CheckoutOptions{Hash: *hash}); err != nil {
		return errors.NewMaterializeError(fmt.Sprintf("failed to checkout revision %q", revision), err)
	}

	return nil
}
