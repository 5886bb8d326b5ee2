// Package executor runs external commands for rigup. Package managers and
// git are driven exclusively through their exit codes; output is captured
// for logging only, never parsed.
package executor

import (
	"bytes"
	"context"
	"os/exec"
	"time"

	"github.com/arthur-debert/rigup/pkg/errors"
	"github.com/arthur-debert/rigup/pkg/logging"
	"github.com/arthur-debert/rigup/pkg/types"
	"github.com/rs/zerolog"
)

// DefaultTimeout bounds a single subprocess invocation. A hung package
// manager aborts that step, not the whole run.
const DefaultTimeout = 5 * time.Minute

// OSRunner implements types.Runner using os/exec
type OSRunner struct {
	logger  zerolog.Logger
	timeout time.Duration
}

// NewRunner creates a runner with the given per-invocation timeout.
// A zero timeout falls back to DefaultTimeout.
func NewRunner(timeout time.Duration) *OSRunner {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &OSRunner{
		logger:  logging.GetLogger("executor"),
		timeout: timeout,
	}
}

// Run executes a command and waits for it. The context bounds the whole
// invocation; cancellation (SIGINT) and timeout both kill the subprocess.
func (r *OSRunner) Run(ctx context.Context, name string, args ...string) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	r.logger.Info().
		Str("command", name).
		Strs("args", args).
		Msg("Executing command")

	cmd := exec.CommandContext(ctx, name, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	err := cmd.Run()
	duration := time.Since(start)

	if stdout.Len() > 0 {
		r.logger.Debug().Str("command", name).Str("stdout", stdout.String()).Msg("Command output")
	}
	if stderr.Len() > 0 {
		r.logger.Debug().Str("command", name).Str("stderr", stderr.String()).Msg("Command stderr")
	}

	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return errors.Wrapf(err, errors.ErrSubprocessTimeout,
				"command %s timed out after %s", name, r.timeout)
		}
		return errors.Wrapf(err, errors.ErrSubprocess,
			"command %s failed", name).WithDetail("stderr", stderr.String())
	}

	r.logger.Debug().
		Str("command", name).
		Dur("duration", duration).
		Msg("Command completed")

	return nil
}

// LookPath resolves a binary on PATH.
func (r *OSRunner) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}

var _ types.Runner = (*OSRunner)(nil)
