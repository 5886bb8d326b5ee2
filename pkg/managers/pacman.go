package managers

import "github.com/arthur-debert/rigup/pkg/types"

// PacmanManager drives pacman on Arch-family distributions.
type PacmanManager struct{}

// NewPacmanManager creates a new pacman manager
func NewPacmanManager() *PacmanManager {
	return &PacmanManager{}
}

func (m *PacmanManager) ID() types.ManagerID {
	return types.ManagerPacman
}

func (m *PacmanManager) Binary() string {
	return "pacman"
}

func (m *PacmanManager) Title() string {
	return "pacman"
}

// InstallArgv builds a batched, non-interactive pacman install.
// --needed keeps re-runs idempotent at the manager level.
func (m *PacmanManager) InstallArgv(names []string, asRoot bool) []string {
	argv := []string{"pacman", "-S", "--noconfirm", "--needed"}
	argv = append(argv, names...)
	if !asRoot {
		argv = append([]string{"sudo"}, argv...)
	}
	return argv
}
