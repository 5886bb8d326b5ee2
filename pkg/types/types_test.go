package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPackageSpecBinary(t *testing.T) {
	assert.Equal(t, "ripgrep", PackageSpec{Name: "ripgrep"}.Binary())
	assert.Equal(t, "rg", PackageSpec{Name: "ripgrep", CheckBinary: "rg"}.Binary())
}

func TestPackageSpecNameFor(t *testing.T) {
	spec := PackageSpec{
		Name:  "fd",
		Names: map[ManagerID]string{ManagerApt: "fd-find"},
	}

	name, ok := spec.NameFor(ManagerApt)
	assert.True(t, ok)
	assert.Equal(t, "fd-find", name)

	_, ok = spec.NameFor(ManagerBrew)
	assert.False(t, ok)
}

func TestManagedFileBackupPath(t *testing.T) {
	f := ManagedFile{Path: "/home/u/.tmux.conf"}
	assert.Equal(t, "/home/u/.tmux.conf.bak", f.BackupPath())
}

func TestHostFactsLookups(t *testing.T) {
	facts := HostFacts{
		AvailableManagers: map[ManagerID]string{ManagerBrew: "/opt/homebrew/bin/brew"},
		AvailableBinaries: map[string]string{"git": "/usr/bin/git"},
	}

	assert.True(t, facts.HasManager(ManagerBrew))
	assert.False(t, facts.HasManager(ManagerApt))

	assert.True(t, facts.HasBinary("git"))
	path, ok := facts.BinaryPath("git")
	assert.True(t, ok)
	assert.Equal(t, "/usr/bin/git", path)

	_, ok = facts.BinaryPath("tmux")
	assert.False(t, ok)
}
