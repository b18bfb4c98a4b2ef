package vendoring

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	cp "github.com/otiai10/copy"

	"github.com/revend/revend/pkg/config"
	"github.com/revend/revend/pkg/git"
	"github.com/revend/revend/pkg/logger"
)

// Copier copies selected files and folders from a materialized snapshot into
// the destination tree.
type Copier struct {
	snapshot    *git.Snapshot
	destination string
}

// NewCopier creates a Copier reading from the given snapshot and writing to
// the destination root.
func NewCopier(snapshot *git.Snapshot, destination string) *Copier {
	return &Copier{
		snapshot:    snapshot,
		destination: destination,
	}
}

// copyOptions preserves permission bits and modification times on every
// vendored file.
var copyOptions = cp.Options{
	PreserveTimes: true,
}

// CopyFiles copies each listed snapshot-relative file into the destination
// root using only its base name. A missing source file is a warning, not a
// failure; copying continues with the remaining files.
func (c *Copier) CopyFiles(files []string) error {
	if err := os.MkdirAll(c.destination, 0755); err != nil {
		return fmt.Errorf("failed to create destination directory: %w", err)
	}

	for _, file := range files {
		src := c.snapshot.Path(file)
		if _, err := os.Stat(src); err != nil {
			logger.Warnf("file %s not found in repository", file)
			continue
		}

		dst := filepath.Join(c.destination, filepath.Base(file))
		if err := cp.Copy(src, dst, copyOptions); err != nil {
			return fmt.Errorf("failed to copy %s: %w", file, err)
		}
		logger.Debugw("vendored file", "src", file, "dst", dst)
	}

	return nil
}

// CopyFolder recursively copies one folder rule's subtree. Subdirectories
// whose name matches an exclude pattern are pruned from traversal entirely.
// Each remaining file is tested against the rule's patterns by its path
// relative to the rule folder; matches land under
// <destination>/<folderBaseName>, with the relative path preserved or
// flattened to the base name per the rule. A missing or non-directory source
// is a warning and the rule is skipped.
func (c *Copier) CopyFolder(rule config.FolderRule) error {
	srcFolder := c.snapshot.Path(rule.Path)

	info, err := os.Stat(srcFolder)
	if err != nil {
		logger.Warnf("folder %s not found in repository", rule.Path)
		return nil
	}
	if !info.IsDir() {
		logger.Warnf("%s is not a directory", rule.Path)
		return nil
	}

	logger.Infof("vendoring folder: %s", rule.Path)
	folderDest := filepath.Join(c.destination, filepath.Base(rule.Path))

	err = filepath.WalkDir(srcFolder, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}

		if d.IsDir() {
			if path != srcFolder && matchesAny(d.Name(), rule.Exclude) {
				return filepath.SkipDir
			}
			return nil
		}

		rel, err := filepath.Rel(srcFolder, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		if !ShouldInclude(rel, rule.Include, rule.Exclude) {
			return nil
		}

		var dst string
		if rule.PreserveStructure {
			dst = filepath.Join(folderDest, filepath.FromSlash(rel))
		} else {
			dst = filepath.Join(folderDest, d.Name())
		}

		if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
			return err
		}
		if err := cp.Copy(path, dst, copyOptions); err != nil {
			return err
		}
		logger.Debugw("vendored file", "src", fmt.Sprintf("%s/%s", rule.Path, rel), "dst", dst)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to vendor folder %s: %w", rule.Path, err)
	}

	return nil
}
