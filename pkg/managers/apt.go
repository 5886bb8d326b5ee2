package managers

import "github.com/arthur-debert/rigup/pkg/types"

// AptManager drives apt-get on Debian-family distributions.
type AptManager struct{}

// NewAptManager creates a new apt manager
func NewAptManager() *AptManager {
	return &AptManager{}
}

func (m *AptManager) ID() types.ManagerID {
	return types.ManagerApt
}

func (m *AptManager) Binary() string {
	return "apt-get"
}

func (m *AptManager) Title() string {
	return "APT"
}

// InstallArgv builds a batched, non-interactive apt-get install.
func (m *AptManager) InstallArgv(names []string, asRoot bool) []string {
	argv := []string{"apt-get", "install", "-y"}
	argv = append(argv, names...)
	if !asRoot {
		argv = append([]string{"sudo"}, argv...)
	}
	return argv
}
