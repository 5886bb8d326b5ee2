package paths

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tempHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv(EnvHome, home)
	t.Setenv(EnvConfigDir, "")
	return home
}

func TestConfigDirRespectsOverride(t *testing.T) {
	tempHome(t)
	t.Setenv(EnvConfigDir, "/custom/rigup")

	assert.Equal(t, "/custom/rigup", ConfigDir())
	assert.Equal(t, "/custom/rigup/rigup.toml", ConfigFile())
	assert.Equal(t, "/custom/rigup/packages.yaml", CatalogFile())
	assert.Equal(t, "/custom/rigup/aliases.sh", AliasesFile())
}

func TestConfigDirDefaultsUnderHome(t *testing.T) {
	home := tempHome(t)

	assert.Equal(t, filepath.Join(home, ".config", "rigup"), ConfigDir())
}

func TestShellRC(t *testing.T) {
	home := tempHome(t)

	t.Setenv(EnvShell, "/bin/zsh")
	rc, err := ShellRC()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".zshrc"), rc)

	t.Setenv(EnvShell, "/bin/bash")
	rc, err = ShellRC()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".bashrc"), rc)

	t.Setenv(EnvShell, "")
	rc, err = ShellRC()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".bashrc"), rc)
}

func TestHomeRelativeFiles(t *testing.T) {
	home := tempHome(t)

	tmux, err := TmuxConf()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".tmux.conf"), tmux)

	tpm, err := TmuxPluginDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".tmux", "plugins", "tpm"), tpm)
}
