package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/freedomd-dev/freedomd/internal/config"
	"github.com/freedomd-dev/freedomd/internal/gitops"
	"github.com/freedomd-dev/freedomd/internal/store"
)

func TestRunInit(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, runInit(dir, "Ada", true))

	// Directory structure.
	for _, d := range []string{"logs", "import", "import/processed"} {
		info, err := os.Stat(filepath.Join(dir, d))
		require.NoError(t, err, d)
		assert.True(t, info.IsDir())
	}

	// Config was written with git disabled.
	cfg, err := config.Load(filepath.Join(dir, "freedomd.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "Ada", cfg.Owner.Name)
	assert.False(t, cfg.Git.AutoCommit)

	// Seed profile is loadable.
	p, err := store.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "Ada", p.Owner)
	require.Len(t, p.Accounts, 1)

	// --no-git means no repository.
	assert.False(t, gitops.IsRepo(dir))
}

func TestRunInit_WithGit(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, runInit(dir, "Ada", false))
	assert.True(t, gitops.IsRepo(dir))
}

func TestRunInit_ExistingProfile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, store.Save(dir, store.Default("Ada")))

	err := runInit(dir, "Ada", true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}
