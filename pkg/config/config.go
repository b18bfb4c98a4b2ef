// Package config contains the definition of the vendor configuration
// structure and the logic required to load and validate it.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/revend/revend/pkg/errors"
)

// Config represents the top-level configuration file.
type Config struct {
	Vendor VendorConfig `yaml:"vendor"`
}

// VendorConfig identifies the source repository, the destination tree and
// the files and folders to vendor. It is loaded once and immutable for the run.
type VendorConfig struct {
	Repository  Repository   `yaml:"repository"`
	Destination string       `yaml:"destination"`
	Files       []string     `yaml:"files"`
	Folders     []FolderRule `yaml:"folders"`
}

// Repository identifies a GitHub repository by owner and name.
type Repository struct {
	Owner string `yaml:"owner"`
	Repo  string `yaml:"repo"`
}

// String returns the repository identity in "owner/repo" form.
func (r Repository) String() string {
	return fmt.Sprintf("%s/%s", r.Owner, r.Repo)
}

// CloneURL returns the HTTPS clone URL for the repository.
func (r Repository) CloneURL() string {
	return fmt.Sprintf("https://github.com/%s/%s.git", r.Owner, r.Repo)
}

// FolderRule defines one recursive copy operation: a source-relative folder,
// include/exclude glob pattern sets and whether the directory structure below
// the folder is preserved at the destination.
type FolderRule struct {
	Path              string   `yaml:"path"`
	Include           []string `yaml:"include"`
	Exclude           []string `yaml:"exclude"`
	PreserveStructure bool     `yaml:"preserve_structure"`
}

// UnmarshalYAML decodes a folder rule, defaulting preserve_structure to true
// when the key is omitted.
func (r *FolderRule) UnmarshalYAML(value *yaml.Node) error {
	type rawRule FolderRule
	raw := rawRule{PreserveStructure: true}
	if err := value.Decode(&raw); err != nil {
		return err
	}
	*r = FolderRule(raw)
	return nil
}

// Load reads and validates the configuration file at the given path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewConfigError(fmt.Sprintf("failed to read configuration file %s", path), err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.NewConfigError(fmt.Sprintf("failed to parse configuration file %s", path), err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Vendor.Repository.Owner == "" {
		return errors.NewConfigError("vendor.repository.owner is required", nil)
	}
	if c.Vendor.Repository.Repo == "" {
		return errors.NewConfigError("vendor.repository.repo is required", nil)
	}
	if c.Vendor.Destination == "" {
		return errors.NewConfigError("vendor.destination is required", nil)
	}
	for i, rule := range c.Vendor.Folders {
		if rule.Path == "" {
			return errors.NewConfigError(fmt.Sprintf("vendor.folders[%d].path is required", i), nil)
		}
	}
	return nil
}
