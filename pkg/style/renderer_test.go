package style

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arthur-debert/rigup/pkg/bootstrap"
	"github.com/arthur-debert/rigup/pkg/doctor"
	"github.com/arthur-debert/rigup/pkg/errors"
	"github.com/arthur-debert/rigup/pkg/managers"
	"github.com/arthur-debert/rigup/pkg/reconcile"
	"github.com/arthur-debert/rigup/pkg/types"
)

func TestRenderRunResult(t *testing.T) {
	AutoDetectColor()

	res := &bootstrap.Result{
		Manager: types.ManagerPacman,
		Install: managers.InstallReport{
			Installed:      []string{"tmux"},
			AlreadyPresent: []string{"git"},
			Unsupported:    []string{"onlymac"},
		},
		Clones: []bootstrap.CloneResult{
			{Name: "tpm", Dest: "/home/u/.tmux/plugins/tpm", Outcome: bootstrap.CloneDone},
		},
		Files: []bootstrap.FileResult{
			{Result: reconcile.Result{
				File:          types.ManagedFile{Name: "tmux_conf", Path: "/home/u/.tmux.conf"},
				Outcome:       reconcile.OutcomeWritten,
				BackupCreated: true,
			}},
			{Result: reconcile.Result{
				File:    types.ManagedFile{Name: "shell_rc", Path: "/home/u/.zshrc"},
				Outcome: reconcile.OutcomeBlockAppended,
			}},
		},
	}

	out := RenderRunResult(res)

	assert.Contains(t, out, "pacman")
	assert.Contains(t, out, "installed: tmux")
	assert.Contains(t, out, "already present: git")
	assert.Contains(t, out, "unsupported on pacman: onlymac")
	assert.Contains(t, out, "tpm")
	assert.Contains(t, out, "original backed up")
	assert.Contains(t, out, "block added")
	assert.Contains(t, out, "bootstrap complete")
	assert.NotContains(t, out, "DRY RUN")
}

func TestRenderRunResultDryRunAndFailure(t *testing.T) {
	AutoDetectColor()

	res := &bootstrap.Result{
		Manager: types.ManagerBrew,
		DryRun:  true,
		Install: managers.InstallReport{
			DryRun: true,
			Err:    errors.New(errors.ErrSubprocess, "command brew failed"),
		},
	}

	out := RenderRunResult(res)

	assert.Contains(t, out, "DRY RUN MODE")
	assert.Contains(t, out, "install failed")
	assert.Contains(t, out, "finished with failures")
}

func TestRenderFileResultToggle(t *testing.T) {
	AutoDetectColor()

	out := renderFileResult(bootstrap.FileResult{
		Result: reconcile.Result{
			File:    types.ManagedFile{Name: "tmux_conf", Path: "/home/u/.tmux.conf"},
			Outcome: reconcile.OutcomeSkipped,
		},
		DisabledByToggle: true,
	})

	assert.Contains(t, out, "overwrite disabled")
}

func TestRenderDoctorReport(t *testing.T) {
	AutoDetectColor()

	report := doctor.Report{
		Tools: []doctor.ToolStatus{
			{Name: "fd", Found: true, Path: "/usr/bin/fdfind", ViaAlternative: "fdfind"},
			{Name: "git", Found: true, Path: "/usr/bin/git"},
			{Name: "jq", Hints: []string{"brew install jq"}},
			{Name: "tmux", Required: true, Hints: []string{"sudo pacman -S tmux"}},
		},
		Found:           2,
		Missing:         2,
		MissingRequired: 1,
	}

	out := RenderDoctorReport(report)

	assert.Contains(t, out, "git")
	assert.Contains(t, out, "fd via fdfind")
	assert.Contains(t, out, "missing (required)")
	assert.Contains(t, out, "brew install jq")
	assert.Contains(t, out, "2 found, 2 missing")
}

func TestRenderError(t *testing.T) {
	AutoDetectColor()

	out := RenderError(errors.New(errors.ErrEnvUnsupported, "no supported package manager"))

	assert.Contains(t, out, "Error:")
	assert.Contains(t, out, "no supported package manager")
}
