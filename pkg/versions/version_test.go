package versions

import (
	"fmt"
	"runtime"
	"strings"
	"testing"
)

func TestGetVersionInfo(t *testing.T) { //nolint:paralleltest // Modifies global variables
	// Save original values
	origVersion := Version
	origCommit := Commit
	origBuildDate := BuildDate

	tests := []struct {
		name      string
		version   string
		commit    string
		buildDate string
		wantCheck func(VersionInfo) bool
	}{
		{
			name:      "dev version with unknown commit",
			version:   "dev",
			commit:    unknownStr,
			buildDate: unknownStr,
			wantCheck: func(v VersionInfo) bool {
				return strings.HasPrefix(v.Version, "build-") &&
					v.Commit == unknownStr &&
					v.BuildDate == unknownStr &&
					v.GoVersion == runtime.Version() &&
					v.Platform == fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH)
			},
		},
		{
			name:      "dev version with commit",
			version:   "dev",
			commit:    "abc123def456789",
			buildDate: unknownStr,
			wantCheck: func(v VersionInfo) bool {
				// Pseudo-version uses the first 8 characters of the commit.
				return v.Version == "build-abc123de" &&
					v.Commit == "abc123def456789"
			},
		},
		{
			name:      "dev version with short commit",
			version:   "dev",
			commit:    "short",
			buildDate: unknownStr,
			wantCheck: func(v VersionInfo) bool {
				return v.Version == "build-short" &&
					v.Commit == "short"
			},
		},
		{
			name:      "release version",
			version:   "v1.2.3",
			commit:    "abc123def456789",
			buildDate: "2024-01-15T10:30:00Z",
			wantCheck: func(v VersionInfo) bool {
				return v.Version == "v1.2.3" &&
					v.BuildDate == "2024-01-15 10:30:00 UTC"
			},
		},
		{
			name:      "invalid date format",
			version:   "v2.0.0",
			commit:    "def456",
			buildDate: "not-a-date",
			wantCheck: func(v VersionInfo) bool {
				// Should remain unchanged if not parseable
				return v.Version == "v2.0.0" &&
					v.BuildDate == "not-a-date"
			},
		},
	}

	for _, tt := range tests { //nolint:paralleltest // Test modifies global variables
		t.Run(tt.name, func(t *testing.T) {
			Version = tt.version
			Commit = tt.commit
			BuildDate = tt.buildDate

			got := GetVersionInfo()

			if !tt.wantCheck(got) {
				t.Errorf("GetVersionInfo() check failed, got = %+v", got)
			}
		})
	}

	// Restore original values
	Version = origVersion
	Commit = origCommit
	BuildDate = origBuildDate
}

func TestUserAgent(t *testing.T) { //nolint:paralleltest // Modifies global variables
	origVersion := Version
	Version = "v0.3.0"
	defer func() { Version = origVersion }()

	if got := UserAgent(); got != "revend/v0.3.0" {
		t.Errorf("UserAgent() = %v, want revend/v0.3.0", got)
	}
}
