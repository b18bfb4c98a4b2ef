package app

import (
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/revend/revend/pkg/errors"
)

func TestNewRootCmd(t *testing.T) {
	cmd := NewRootCmd()

	var names []string
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	assert.Contains(t, names, "sync")
	assert.Contains(t, names, "check")
	assert.Contains(t, names, "version")

	assert.NotNil(t, cmd.PersistentFlags().Lookup("debug"))
}

func TestSyncCmdConfigLoadFailure(t *testing.T) {
	prev := syncConfigPath
	syncConfigPath = filepath.Join(t.TempDir(), "missing.yaml")
	t.Cleanup(func() { syncConfigPath = prev })

	err := syncCmdFunc(&cobra.Command{}, nil)
	require.Error(t, err)
	assert.True(t, errors.IsConfig(err))
}

func TestCheckCmdConfigLoadFailure(t *testing.T) {
	prev := checkConfigPath
	checkConfigPath = filepath.Join(t.TempDir(), "missing.yaml")
	t.Cleanup(func() { checkConfigPath = prev })

	err := checkCmdFunc(&cobra.Command{}, nil)
	require.Error(t, err)
	assert.True(t, errors.IsConfig(err))
}
