package types

// ManagerID identifies a supported package manager.
type ManagerID string

const (
	// ManagerBrew is Homebrew (macOS native, also available on Linux)
	ManagerBrew ManagerID = "brew"

	// ManagerPacman is pacman (Arch family)
	ManagerPacman ManagerID = "pacman"

	// ManagerApt is apt-get (Debian family)
	ManagerApt ManagerID = "apt"
)

// KnownManagers lists every manager rigup can drive, in no particular order.
func KnownManagers() []ManagerID {
	return []ManagerID{ManagerBrew, ManagerPacman, ManagerApt}
}

// PackageSpec maps a logical package name to manager-specific identifiers.
// A manager missing from Names means the package is unsupported there.
type PackageSpec struct {
	// Name is the logical package name used in config toggles and reports
	Name string `koanf:"name" toml:"name" yaml:"name"`

	// Required marks packages the run cannot be considered healthy without
	Required bool `koanf:"required" toml:"required" yaml:"required"`

	// CheckBinary is the binary probed to decide whether the package is
	// already installed. Defaults to Name when empty.
	CheckBinary string `koanf:"check" toml:"check,omitempty" yaml:"check,omitempty"`

	// Alternatives are binaries that satisfy this package when the primary
	// check binary is absent (e.g. fdfind for fd)
	Alternatives []string `koanf:"alternatives" toml:"alternatives,omitempty" yaml:"alternatives,omitempty"`

	// Names holds the manager-specific package identifiers
	Names map[ManagerID]string `koanf:"names" toml:"names" yaml:"names"`
}

// Binary returns the binary name used for presence checks.
func (s PackageSpec) Binary() string {
	if s.CheckBinary != "" {
		return s.CheckBinary
	}
	return s.Name
}

// NameFor returns the manager-specific package name, and whether the
// package is supported on that manager at all.
func (s PackageSpec) NameFor(id ManagerID) (string, bool) {
	name, ok := s.Names[id]
	return name, ok
}
