package testutil

import (
	"path/filepath"
	"testing"
)

// WithTempHome relocates HOME and the rigup config dir into a temp
// directory for the duration of the test, returning the new home path.
func WithTempHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("RIGUP_CONFIG_DIR", filepath.Join(home, ".config", "rigup"))
	t.Setenv("SHELL", "/bin/zsh")
	return home
}
