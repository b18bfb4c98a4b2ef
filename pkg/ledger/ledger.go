// Package ledger persists which external version is currently vendored at a
// destination directory.
//
// Two files live at the destination root: a plain-text version marker that is
// the authority for "what is currently vendored", and a JSON record with the
// full vendoring metadata. They are only ever written together.
package ledger

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const (
	// VersionFileName is the plain-text marker holding the vendored version tag.
	VersionFileName = ".vendor_version"
	// InfoFileName is the JSON record with the full vendoring metadata.
	InfoFileName = ".vendor_info"
)

// Entry is the persisted vendoring record. Exactly one entry exists per
// destination directory; it is overwritten on each successful vendor operation.
type Entry struct {
	Version    string `json:"version"`
	CommitSHA  string `json:"commit_sha"`
	VendoredAt string `json:"vendored_at"`
	Repository string `json:"repository"`
}

// ReadCurrent returns the currently vendored version tag, or the empty string
// if the destination has never been vendored.
func ReadCurrent(destination string) (string, error) {
	data, err := os.ReadFile(filepath.Join(destination, VersionFileName))
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("failed to read version file: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

// ReadEntry returns the persisted metadata record, or nil if the destination
// has never been vendored.
func ReadEntry(destination string) (*Entry, error) {
	data, err := os.ReadFile(filepath.Join(destination, InfoFileName))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read info file: %w", err)
	}

	var entry Entry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, fmt.Errorf("failed to parse info file: %w", err)
	}
	return &entry, nil
}

// WriteEntry records the vendored version at the destination, creating the
// destination directory tree if absent. Any prior record is overwritten.
// The version tag and the revision identifier are always written in the same
// operation so the marker never diverges from the metadata record.
func WriteEntry(destination, version, commitSHA, repository string) error {
	if err := os.MkdirAll(destination, 0755); err != nil {
		return fmt.Errorf("failed to create destination directory: %w", err)
	}

	versionFile := filepath.Join(destination, VersionFileName)
	if err := os.WriteFile(versionFile, []byte(version+"\n"), 0644); err != nil {
		return fmt.Errorf("failed to write version file: %w", err)
	}

	entry := Entry{
		Version:    version,
		CommitSHA:  commitSHA,
		VendoredAt: time.Now().Format(time.RFC3339),
		Repository: repository,
	}
	data, err := json.MarshalIndent(entry, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal info record: %w", err)
	}

	infoFile := filepath.Join(destination, InfoFileName)
	if err := os.WriteFile(infoFile, data, 0644); err != nil {
		return fmt.Errorf("failed to write info file: %w", err)
	}

	return nil
}
