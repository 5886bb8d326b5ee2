// Package paths provides centralized path handling for rigup.
// It implements XDG Base Directory compliance and resolves the
// well-known locations of the files rigup manages.
package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/rigup/pkg/errors"
)

// Environment variable names
const (
	// EnvConfigDir overrides the XDG config directory for rigup
	EnvConfigDir = "RIGUP_CONFIG_DIR"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"

	// EnvShell is consulted to pick the shell rc file
	EnvShell = "SHELL"
)

// Default file names
const (
	// AppDirName is the directory name for rigup-specific files
	AppDirName = "rigup"

	// ConfigFileName is the name of the rigup configuration file
	ConfigFileName = "rigup.toml"

	// CatalogFileName is the optional user package catalog
	CatalogFileName = "packages.yaml"

	// AliasesFileName is the managed shell aliases file
	AliasesFileName = "aliases.sh"
)

// Home returns the user's home directory, honoring $HOME.
func Home() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, errors.ErrNotFound, "cannot determine home directory")
	}
	return home, nil
}

// ConfigDir returns the rigup configuration directory, honoring the
// RIGUP_CONFIG_DIR override and XDG_CONFIG_HOME.
func ConfigDir() string {
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		return dir
	}
	if home, err := Home(); err == nil {
		// xdg caches XDG_CONFIG_HOME at init, which breaks tests that
		// relocate HOME. Only trust it when it lives under the current home.
		if strings.HasPrefix(xdg.ConfigHome, home) {
			return filepath.Join(xdg.ConfigHome, AppDirName)
		}
		return filepath.Join(home, ".config", AppDirName)
	}
	return filepath.Join(xdg.ConfigHome, AppDirName)
}

// ConfigFile returns the path of the user configuration file.
func ConfigFile() string {
	return filepath.Join(ConfigDir(), ConfigFileName)
}

// CatalogFile returns the path of the optional user package catalog.
func CatalogFile() string {
	return filepath.Join(ConfigDir(), CatalogFileName)
}

// AliasesFile returns the path of the managed shell aliases file.
func AliasesFile() string {
	return filepath.Join(ConfigDir(), AliasesFileName)
}

// ShellRC returns the rc file of the user's login shell. Zsh maps to
// ~/.zshrc, everything else falls back to ~/.bashrc.
func ShellRC() (string, error) {
	home, err := Home()
	if err != nil {
		return "", err
	}
	shell := filepath.Base(os.Getenv(EnvShell))
	if shell == "zsh" {
		return filepath.Join(home, ".zshrc"), nil
	}
	return filepath.Join(home, ".bashrc"), nil
}

// TmuxConf returns the path of the managed tmux configuration.
func TmuxConf() (string, error) {
	home, err := Home()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".tmux.conf"), nil
}

// TmuxPluginDir returns the destination for the tmux plugin manager clone.
func TmuxPluginDir() (string, error) {
	home, err := Home()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".tmux", "plugins", "tpm"), nil
}
