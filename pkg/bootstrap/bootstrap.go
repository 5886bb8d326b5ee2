// Package bootstrap orchestrates a full run: probe the host, resolve a
// package manager, install the catalog, clone auxiliary repositories and
// reconcile the managed files. Everything after the probe degrades
// gracefully; only an unsupported environment aborts.
package bootstrap

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/rigup/pkg/config"
	"github.com/arthur-debert/rigup/pkg/logging"
	"github.com/arthur-debert/rigup/pkg/managers"
	"github.com/arthur-debert/rigup/pkg/probe"
	"github.com/arthur-debert/rigup/pkg/reconcile"
	"github.com/arthur-debert/rigup/pkg/types"
)

// Options wires the collaborators of a run. FS and Runner are injected so
// tests can drive a complete bootstrap against fakes.
type Options struct {
	Config  *config.BootstrapConfig
	Catalog []types.PackageSpec
	Files   []types.ManagedFile
	FS      types.FS
	Runner  types.Runner

	// AsRoot indicates the process already runs as root
	AsRoot bool

	// ProbeOptions lets tests pin the probed OS or distro
	ProbeOptions []probe.Option
}

// CloneOutcome describes a single clone step.
type CloneOutcome string

const (
	CloneDone    CloneOutcome = "cloned"
	CloneSkipped CloneOutcome = "skipped"
	CloneFailed  CloneOutcome = "failed"
)

// CloneResult records one clone step.
type CloneResult struct {
	Name    string
	Dest    string
	Outcome CloneOutcome
	Err     error
}

// FileResult wraps a reconcile result with the toggle decision taken
// before the reconciler ran.
type FileResult struct {
	reconcile.Result

	// DisabledByToggle marks files skipped because overwriting an
	// existing file was disabled in config
	DisabledByToggle bool
}

// Result aggregates everything a run did. The CLI renders it and turns
// it into the process exit code.
type Result struct {
	Facts   types.HostFacts
	Manager types.ManagerID
	Install managers.InstallReport
	Clones  []CloneResult
	Files   []FileResult
	DryRun  bool
}

// Failed reports whether a required step failed: the batched install
// subprocess, or any managed file. Clone steps are best-effort extras
// and only ever warn.
func (r *Result) Failed() bool {
	if r.Install.Failed() {
		return true
	}
	for _, f := range r.Files {
		if f.Outcome == reconcile.OutcomeFailed {
			return true
		}
	}
	return false
}

// ExitCode maps the aggregate result onto the process exit status.
func (r *Result) ExitCode() int {
	if r.Failed() {
		return 1
	}
	return 0
}

// Run executes the full bootstrap. The returned error is non-nil only for
// fatal environment problems, before any mutation; every other failure is
// recorded in the result.
func Run(ctx context.Context, opts Options) (*Result, error) {
	logger := logging.GetLogger("bootstrap")
	cfg := opts.Config

	registry := managers.NewRegistry()
	prober := probe.New(opts.FS, opts.Runner, registry.Binaries(), opts.ProbeOptions...)

	facts, err := prober.Probe(ctx, opts.Catalog)
	if err != nil {
		return nil, err
	}

	mgr, err := registry.Resolve(facts)
	if err != nil {
		return nil, err
	}

	result := &Result{Facts: facts, Manager: mgr.ID(), DryRun: cfg.DryRun}

	wanted := make([]types.PackageSpec, 0, len(opts.Catalog))
	for _, spec := range opts.Catalog {
		if cfg.PackageEnabled(spec.Name) {
			wanted = append(wanted, spec)
		} else {
			logger.Debug().Str("package", spec.Name).Msg("disabled in config, skipping")
		}
	}

	result.Install = managers.InstallAll(ctx, opts.Runner, mgr, wanted, facts, opts.AsRoot, cfg.DryRun)

	for _, clone := range cfg.Clones {
		result.Clones = append(result.Clones, runClone(ctx, opts, clone))
	}

	reconciler := reconcile.New(opts.FS, cfg.DryRun)
	for _, file := range opts.Files {
		result.Files = append(result.Files, runFile(reconciler, opts, file))
	}

	logger.Info().
		Str("manager", string(result.Manager)).
		Int("installed", len(result.Install.Installed)).
		Int("files", len(result.Files)).
		Bool("failed", result.Failed()).
		Msg("bootstrap complete")

	return result, nil
}

// runClone clones one auxiliary repository, skipping when the destination
// already exists. The git exit code is the only success signal.
func runClone(ctx context.Context, opts Options, clone config.CloneSpec) CloneResult {
	logger := logging.GetLogger("bootstrap.clone")

	dest, err := expandHome(clone.Dest)
	if err != nil {
		return CloneResult{Name: clone.Name, Dest: clone.Dest, Outcome: CloneFailed, Err: err}
	}

	if _, err := opts.FS.Stat(dest); err == nil {
		logger.Debug().Str("name", clone.Name).Str("dest", dest).Msg("clone destination exists, skipping")
		return CloneResult{Name: clone.Name, Dest: dest, Outcome: CloneSkipped}
	}

	if opts.Config.DryRun {
		return CloneResult{Name: clone.Name, Dest: dest, Outcome: CloneDone}
	}

	if err := opts.Runner.Run(ctx, "git", "clone", "--depth", "1", clone.Repo, dest); err != nil {
		logger.Warn().Err(err).Str("name", clone.Name).Msg("clone failed, continuing")
		return CloneResult{Name: clone.Name, Dest: dest, Outcome: CloneFailed, Err: err}
	}

	return CloneResult{Name: clone.Name, Dest: dest, Outcome: CloneDone}
}

// runFile applies the overwrite toggle, then hands the file to the
// reconciler. Marked-block files are never gated by the toggle.
func runFile(reconciler *reconcile.Reconciler, opts Options, file types.ManagedFile) FileResult {
	if file.Mode == types.ModeFullOverwrite && !opts.Config.OverwriteAllowed(file.Name) {
		if _, err := opts.FS.Stat(file.Path); err == nil {
			logger := logging.GetLogger("bootstrap")
			logger.Info().
				Str("file", file.Name).
				Msg("existing file kept, overwrite disabled in config")
			return FileResult{
				Result:           reconcile.Result{File: file, Outcome: reconcile.OutcomeSkipped},
				DisabledByToggle: true,
			}
		}
	}
	return FileResult{Result: reconciler.Apply(file)}
}

func expandHome(path string) (string, error) {
	if !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, path[2:]), nil
}
