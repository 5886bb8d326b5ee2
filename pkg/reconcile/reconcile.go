// Package reconcile applies managed file declarations to the filesystem.
// It owns the only real state machine in rigup: decide per file whether to
// skip, backup-and-overwrite, or maintain a marked block, and apply the
// decision atomically so an interrupted run leaves every file either
// untouched or fully written.
package reconcile

import (
	"bytes"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/rigup/pkg/errors"
	"github.com/arthur-debert/rigup/pkg/logging"
	"github.com/arthur-debert/rigup/pkg/types"
)

// Outcome is what Apply decided to do with a managed file.
type Outcome string

const (
	// OutcomeSkipped means the file was already current
	OutcomeSkipped Outcome = "skipped"

	// OutcomeWritten means the full desired content was written
	OutcomeWritten Outcome = "written"

	// OutcomeBlockAppended means the marked block was added
	OutcomeBlockAppended Outcome = "block-appended"

	// OutcomeBlockRefreshed means a stale marked block was rewritten
	OutcomeBlockRefreshed Outcome = "block-refreshed"

	// OutcomeFailed means the file could not be reconciled
	OutcomeFailed Outcome = "failed"
)

// defaultPerm is used for files rigup creates from scratch.
const defaultPerm fs.FileMode = 0644

// Result records what happened to a single managed file. A failed file
// never aborts the run; the caller aggregates results into the final
// exit status.
type Result struct {
	File          types.ManagedFile
	Outcome       Outcome
	BackupCreated bool
	Err           error
}

// Reconciler applies managed files against an FS.
type Reconciler struct {
	fs     types.FS
	logger zerolog.Logger
	dryRun bool
}

// New creates a reconciler. With dryRun set, Apply reports the decision
// it would take without touching the filesystem.
func New(filesystem types.FS, dryRun bool) *Reconciler {
	return &Reconciler{
		fs:     filesystem,
		logger: logging.GetLogger("reconcile"),
		dryRun: dryRun,
	}
}

// Apply reconciles one managed file and reports the outcome. Errors are
// recorded in the result, not returned: a permission problem on one file
// must not stop the files after it.
func (r *Reconciler) Apply(file types.ManagedFile) Result {
	result := Result{File: file, Outcome: OutcomeFailed}

	if err := validate(file); err != nil {
		result.Err = err
		return result
	}

	var err error
	switch file.Mode {
	case types.ModeFullOverwrite:
		result.Outcome, result.BackupCreated, err = r.applyOverwrite(file)
	case types.ModeAppendMarkedBlock:
		result.Outcome, err = r.applyBlock(file)
	}

	if err != nil {
		result.Outcome = OutcomeFailed
		result.Err = err
		r.logger.Warn().
			Err(err).
			Str("file", file.Name).
			Str("path", file.Path).
			Msg("failed to reconcile file, continuing")
		return result
	}

	r.logger.Info().
		Str("file", file.Name).
		Str("path", file.Path).
		Str("outcome", string(result.Outcome)).
		Bool("backup", result.BackupCreated).
		Msg("reconciled file")

	return result
}

// applyOverwrite implements Absent -> BackedUp -> Written. The backup is
// taken at most once per path and preserves the pre-bootstrap original.
func (r *Reconciler) applyOverwrite(file types.ManagedFile) (Outcome, bool, error) {
	desired := []byte(file.Content)

	existing, perm, exists, err := r.read(file.Path)
	if err != nil {
		return OutcomeFailed, false, err
	}

	if exists && bytes.Equal(existing, desired) {
		return OutcomeSkipped, false, nil
	}

	if r.dryRun {
		return OutcomeWritten, exists && !r.backupExists(file), nil
	}

	backedUp := false
	if exists {
		backedUp, err = r.ensureBackup(file, existing, perm)
		if err != nil {
			return OutcomeFailed, false, err
		}
	}

	if err := r.writeAtomic(file.Path, desired, perm); err != nil {
		return OutcomeFailed, backedUp, err
	}
	return OutcomeWritten, backedUp, nil
}

// applyBlock implements Absent/Present -> BlockPresent, keeping at most
// one marked block per file. A present block whose body no longer matches
// the desired content is rewritten in place rather than silently accepted
// as current.
func (r *Reconciler) applyBlock(file types.ManagedFile) (Outcome, error) {
	existing, perm, exists, err := r.read(file.Path)
	if err != nil {
		return OutcomeFailed, err
	}
	if !exists {
		perm = defaultPerm
	}

	updated, outcome := upsertBlock(existing, file)
	if outcome == OutcomeSkipped {
		return OutcomeSkipped, nil
	}
	if r.dryRun {
		return outcome, nil
	}

	if err := r.writeAtomic(file.Path, updated, perm); err != nil {
		return OutcomeFailed, err
	}
	return outcome, nil
}

func (r *Reconciler) read(path string) (data []byte, perm fs.FileMode, exists bool, err error) {
	info, statErr := r.fs.Stat(path)
	if statErr != nil {
		if os.IsNotExist(statErr) {
			return nil, defaultPerm, false, nil
		}
		return nil, 0, false, wrapFSError(statErr, path, "stat")
	}

	data, readErr := r.fs.ReadFile(path)
	if readErr != nil {
		return nil, 0, false, wrapFSError(readErr, path, "read")
	}
	return data, info.Mode().Perm(), true, nil
}

// writeAtomic writes via a temp sibling and rename, so a crash mid-write
// leaves the target either untouched or fully written.
func (r *Reconciler) writeAtomic(path string, data []byte, perm fs.FileMode) error {
	if err := r.fs.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return wrapFSError(err, path, "create parent directory for")
	}

	tmp := path + ".rigup.tmp"
	if err := r.fs.WriteFile(tmp, data, perm); err != nil {
		return wrapFSError(err, path, "write")
	}
	if err := r.fs.Rename(tmp, path); err != nil {
		// best effort cleanup, the temp file is inert either way
		_ = r.fs.Remove(tmp)
		return wrapFSError(err, path, "replace")
	}
	return nil
}

func validate(file types.ManagedFile) error {
	if file.Path == "" {
		return errors.Newf(errors.ErrInvalidInput, "managed file %q has no path", file.Name)
	}
	switch file.Mode {
	case types.ModeFullOverwrite:
		return nil
	case types.ModeAppendMarkedBlock:
		if file.MarkerBegin == "" || file.MarkerEnd == "" {
			return errors.Newf(errors.ErrInvalidInput,
				"managed file %q uses marked-block mode without markers", file.Name)
		}
		return nil
	default:
		return errors.Newf(errors.ErrInvalidInput,
			"managed file %q has unknown mode %q", file.Name, file.Mode)
	}
}

func wrapFSError(err error, path, verb string) error {
	code := errors.ErrFileAccess
	if os.IsPermission(err) {
		code = errors.ErrPermission
	}
	return errors.Wrapf(err, code, "cannot %s %s", verb, path)
}
