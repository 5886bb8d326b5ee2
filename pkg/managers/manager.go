// Package managers abstracts the supported package managers behind a
// uniform capability set: map a logical package name to a manager-specific
// identifier and install a batch of packages in a single invocation.
package managers

import "github.com/arthur-debert/rigup/pkg/types"

// Manager is the capability set rigup needs from a package manager.
// Installation always happens through a single batched subprocess call;
// the exit code is the sole success signal.
type Manager interface {
	// ID returns the manager identifier used in package specs
	ID() types.ManagerID

	// Binary is the executable probed to detect the manager
	Binary() string

	// Title is the human-readable name used in reports
	Title() string

	// InstallArgv builds the full argv for a batched install. asRoot
	// indicates the current process already runs as root, so managers
	// that need elevation can skip sudo.
	InstallArgv(names []string, asRoot bool) []string
}
