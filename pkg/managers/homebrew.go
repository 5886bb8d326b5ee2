package managers

import "github.com/arthur-debert/rigup/pkg/types"

// HomebrewManager drives Homebrew. It is the native manager on macOS and
// a valid fallback on Linux (linuxbrew).
type HomebrewManager struct{}

// NewHomebrewManager creates a new Homebrew manager
func NewHomebrewManager() *HomebrewManager {
	return &HomebrewManager{}
}

func (m *HomebrewManager) ID() types.ManagerID {
	return types.ManagerBrew
}

func (m *HomebrewManager) Binary() string {
	return "brew"
}

func (m *HomebrewManager) Title() string {
	return "Homebrew"
}

// InstallArgv builds a batched `brew install`. Homebrew refuses to run as
// root, so asRoot is ignored.
func (m *HomebrewManager) InstallArgv(names []string, asRoot bool) []string {
	return append([]string{"brew", "install"}, names...)
}
