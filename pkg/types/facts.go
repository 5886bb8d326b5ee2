package types

// OSFamily classifies the host operating system.
type OSFamily string

const (
	// OSFamilyMacOS is any Darwin host
	OSFamilyMacOS OSFamily = "macos"

	// OSFamilyLinux is any Linux host, including WSL
	OSFamilyLinux OSFamily = "linux"

	// OSFamilyOther is everything rigup does not support
	OSFamilyOther OSFamily = "other"
)

// HostFacts is an immutable snapshot of the host environment, computed once
// at startup by the prober. Components read it, they never mutate it.
type HostFacts struct {
	// OSFamily is the coarse OS classification
	OSFamily OSFamily

	// IsWSL is true when running under Windows Subsystem for Linux
	IsWSL bool

	// Distro is the Linux distribution id (e.g. "arch", "ubuntu"), empty
	// on macOS or when detection failed
	Distro string

	// DistroFamily is the distribution family (e.g. "arch", "debian")
	DistroFamily string

	// AvailableManagers maps each package manager found on PATH to the
	// absolute path of its binary
	AvailableManagers map[ManagerID]string

	// AvailableBinaries maps each probed tool binary found on PATH to its
	// absolute path
	AvailableBinaries map[string]string
}

// HasManager reports whether the given package manager was found on PATH.
func (f HostFacts) HasManager(id ManagerID) bool {
	_, ok := f.AvailableManagers[id]
	return ok
}

// HasBinary reports whether the given binary was found on PATH.
func (f HostFacts) HasBinary(name string) bool {
	_, ok := f.AvailableBinaries[name]
	return ok
}

// BinaryPath returns the absolute path of a probed binary, if found.
func (f HostFacts) BinaryPath(name string) (string, bool) {
	path, ok := f.AvailableBinaries[name]
	return path, ok
}
