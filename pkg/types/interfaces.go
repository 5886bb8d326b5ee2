package types

import (
	"context"
	"io/fs"
)

// FS abstracts the filesystem operations rigup performs, so the prober and
// reconciler can run against an in-memory filesystem in tests.
type FS interface {
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error
	MkdirAll(path string, perm fs.FileMode) error
	Rename(oldpath, newpath string) error
	Remove(name string) error
}

// Runner abstracts subprocess execution. Exit codes are the sole
// success/failure signal; output is only captured for logging.
type Runner interface {
	// Run executes a command and waits for it, honoring ctx cancellation
	Run(ctx context.Context, name string, args ...string) error

	// LookPath resolves a binary on PATH
	LookPath(name string) (string, error)
}
