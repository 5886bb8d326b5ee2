package reconcile

import (
	"io/fs"
	"os"

	"github.com/arthur-debert/rigup/pkg/errors"
	"github.com/arthur-debert/rigup/pkg/types"
)

// ensureBackup copies the current file bytes verbatim to the .bak sibling,
// preserving permissions. It is a one-time operation: an existing backup
// is never overwritten, so the pre-bootstrap original survives every
// later run.
func (r *Reconciler) ensureBackup(file types.ManagedFile, current []byte, perm fs.FileMode) (bool, error) {
	if r.backupExists(file) {
		return false, nil
	}

	if err := r.fs.WriteFile(file.BackupPath(), current, perm); err != nil {
		code := errors.ErrBackupFailed
		if os.IsPermission(err) {
			code = errors.ErrPermission
		}
		return false, errors.Wrapf(err, code, "cannot back up %s", file.Path)
	}

	r.logger.Info().
		Str("path", file.Path).
		Str("backup", file.BackupPath()).
		Msg("backed up original file")

	return true, nil
}

func (r *Reconciler) backupExists(file types.ManagedFile) bool {
	_, err := r.fs.Stat(file.BackupPath())
	return err == nil
}
