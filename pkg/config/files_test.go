package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/rigup/pkg/testutil"
	"github.com/arthur-debert/rigup/pkg/types"
)

func TestManagedFiles(t *testing.T) {
	home := testutil.WithTempHome(t)

	files, err := ManagedFiles()
	require.NoError(t, err)
	require.Len(t, files, 3)

	byName := make(map[string]types.ManagedFile)
	for _, f := range files {
		byName[f.Name] = f
	}

	rc := byName[FileShellRC]
	assert.Equal(t, filepath.Join(home, ".zshrc"), rc.Path, "SHELL=/bin/zsh selects .zshrc")
	assert.Equal(t, types.ModeAppendMarkedBlock, rc.Mode)
	assert.Equal(t, RCMarkerBegin, rc.MarkerBegin)
	assert.Equal(t, RCMarkerEnd, rc.MarkerEnd)
	assert.Contains(t, rc.Content, ".local/bin")

	tmux := byName[FileTmuxConf]
	assert.Equal(t, filepath.Join(home, ".tmux.conf"), tmux.Path)
	assert.Equal(t, types.ModeFullOverwrite, tmux.Mode)
	assert.NotEmpty(t, tmux.Content)

	aliases := byName[FileAliases]
	assert.Equal(t, types.ModeFullOverwrite, aliases.Mode)
	assert.Contains(t, rc.Content, aliases.Path,
		"the rc block must source the aliases file it manages")
}

func TestManagedFilesBashFallback(t *testing.T) {
	home := testutil.WithTempHome(t)
	t.Setenv("SHELL", "/usr/bin/fish")

	files, err := ManagedFiles()
	require.NoError(t, err)

	for _, f := range files {
		if f.Name == FileShellRC {
			assert.Equal(t, filepath.Join(home, ".bashrc"), f.Path)
		}
	}
}
