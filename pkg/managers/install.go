package managers

import (
	"context"
	"sort"

	"github.com/arthur-debert/rigup/pkg/logging"
	"github.com/arthur-debert/rigup/pkg/types"
)

// InstallReport records what a single install pass did, per logical
// package name. Unsupported packages are warnings, never fatal; a
// subprocess failure is recorded and left for the caller to aggregate.
type InstallReport struct {
	Manager types.ManagerID

	// Requested is every logical name the pass considered
	Requested []string

	// AlreadyPresent were skipped because their check binary is on PATH
	AlreadyPresent []string

	// Unsupported have no mapping for this manager
	Unsupported []string

	// Installed are the manager-specific names passed to the batched call
	Installed []string

	// DryRun marks a pass that built the batch but did not run it
	DryRun bool

	// Err is the batched subprocess failure, if any
	Err error
}

// Failed reports whether the install subprocess itself failed.
func (r InstallReport) Failed() bool {
	return r.Err != nil
}

// InstallAll installs every resolvable package in a single batched
// invocation of the manager. Packages whose check binary (or an accepted
// alternative) is already on PATH are skipped, which keeps re-runs cheap
// and idempotent.
func InstallAll(ctx context.Context, runner types.Runner, mgr Manager, specs []types.PackageSpec, facts types.HostFacts, asRoot, dryRun bool) InstallReport {
	logger := logging.GetLogger("managers.install")

	report := InstallReport{Manager: mgr.ID(), DryRun: dryRun}
	var batch []string

	for _, spec := range specs {
		report.Requested = append(report.Requested, spec.Name)

		if present(facts, spec) {
			logger.Debug().Str("package", spec.Name).Msg("already installed, skipping")
			report.AlreadyPresent = append(report.AlreadyPresent, spec.Name)
			continue
		}

		name, ok := spec.NameFor(mgr.ID())
		if !ok {
			logger.Warn().
				Str("package", spec.Name).
				Str("manager", string(mgr.ID())).
				Msg("package unsupported on this manager, skipping")
			report.Unsupported = append(report.Unsupported, spec.Name)
			continue
		}
		batch = append(batch, name)
	}

	sort.Strings(batch)
	report.Installed = batch

	if len(batch) == 0 {
		logger.Info().Str("manager", string(mgr.ID())).Msg("nothing to install")
		return report
	}

	argv := mgr.InstallArgv(batch, asRoot)
	logger.Info().
		Str("manager", string(mgr.ID())).
		Strs("packages", batch).
		Bool("dryRun", dryRun).
		Msg("installing packages")

	if dryRun {
		return report
	}

	if err := runner.Run(ctx, argv[0], argv[1:]...); err != nil {
		logger.Warn().Err(err).Str("manager", string(mgr.ID())).Msg("package install failed")
		report.Err = err
	}

	return report
}

func present(facts types.HostFacts, spec types.PackageSpec) bool {
	if facts.HasBinary(spec.Binary()) {
		return true
	}
	for _, alt := range spec.Alternatives {
		if facts.HasBinary(alt) {
			return true
		}
	}
	return false
}
