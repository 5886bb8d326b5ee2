package types

// WriteMode selects how the reconciler applies a managed file.
type WriteMode string

const (
	// ModeFullOverwrite replaces the whole file with the desired content,
	// backing up any pre-existing original first
	ModeFullOverwrite WriteMode = "overwrite"

	// ModeAppendMarkedBlock maintains a single delimited block inside a
	// file that rigup does not otherwise own
	ModeAppendMarkedBlock WriteMode = "append-block"
)

// BackupSuffix is appended to a managed file's path to form its one-time
// backup sibling.
const BackupSuffix = ".bak"

// ManagedFile declares a configuration file whose content lifecycle is
// owned by rigup. Managed files are declared statically and reconciled
// once per run.
type ManagedFile struct {
	// Name is the logical name used in config toggles and reports
	Name string

	// Path is the absolute target path
	Path string

	// Mode selects overwrite vs. marked-block semantics
	Mode WriteMode

	// Content is the desired file content (ModeFullOverwrite) or block
	// body (ModeAppendMarkedBlock)
	Content string

	// MarkerBegin and MarkerEnd delimit the managed block. Only used in
	// ModeAppendMarkedBlock, where both must be non-empty.
	MarkerBegin string
	MarkerEnd   string
}

// BackupPath returns the path of the one-time backup sibling.
func (m ManagedFile) BackupPath() string {
	return m.Path + BackupSuffix
}
