// Package github resolves the latest published release of a repository
// through the GitHub REST API.
package github

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/revend/revend/pkg/errors"
	"github.com/revend/revend/pkg/versions"
)

// ReleaseInfo holds the human-readable version tag and the revision the
// release points at, as reported by the "latest release" endpoint.
type ReleaseInfo struct {
	// Version is the release tag name, e.g. "v2.3.0".
	Version string
	// CommitSHA is the target commitish of the release. GitHub may report
	// either a commit hash or a branch name here; both are valid checkout
	// targets.
	CommitSHA string
}

// ReleaseClient is an interface for resolving the latest release of a repository.
type ReleaseClient interface {
	GetLatestRelease(ctx context.Context, owner, repo string) (*ReleaseInfo, error)
}

const defaultAPIBaseURL = "https://api.github.com"

// NewReleaseClient creates a new instance of ReleaseClient backed by the
// public GitHub API.
func NewReleaseClient() ReleaseClient {
	return &defaultReleaseClient{
		apiBaseURL: defaultAPIBaseURL,
		client:     &http.Client{},
	}
}

type defaultReleaseClient struct {
	apiBaseURL string
	client     *http.Client
}

// GetLatestRelease sends a GET request to the latest-release endpoint and
// returns the tag name and target commitish from the response. A transport
// failure or a non-200 status aborts the operation; there are no retries,
// since vendoring is typically run on a schedule and a later run retries
// naturally.
func (d *defaultReleaseClient) GetLatestRelease(ctx context.Context, owner, repo string) (*ReleaseInfo, error) {
	url := fmt.Sprintf("%s/repos/%s/%s/releases/latest", d.apiBaseURL, owner, repo)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.NewRemoteQueryError("failed to create request", err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("User-Agent", versions.UserAgent())

	resp, err := d.client.Do(req)
	if err != nil {
		return nil, errors.NewRemoteQueryError(fmt.Sprintf("failed to query latest release of %s/%s", owner, repo), err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.NewRemoteQueryError(
			fmt.Sprintf("latest release query for %s/%s returned status %d", owner, repo, resp.StatusCode), nil)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.NewRemoteQueryError("failed to read response body", err)
	}

	var release struct {
		TagName         string `json:"tag_name"`
		TargetCommitish string `json:"target_commitish"`
	}
	if err := json.Unmarshal(body, &release); err != nil {
		return nil, errors.NewRemoteQueryError("failed to parse release response", err)
	}

	if release.TagName == "" {
		return nil, errors.NewRemoteQueryError(
			fmt.Sprintf("release response for %s/%s has no tag name", owner, repo), nil)
	}

	return &ReleaseInfo{
		Version:   release.TagName,
		CommitSHA: release.TargetCommitish,
	}, nil
}
