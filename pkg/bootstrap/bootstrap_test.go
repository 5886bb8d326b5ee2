package bootstrap

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/rigup/pkg/config"
	"github.com/arthur-debert/rigup/pkg/errors"
	"github.com/arthur-debert/rigup/pkg/probe"
	"github.com/arthur-debert/rigup/pkg/reconcile"
	"github.com/arthur-debert/rigup/pkg/testutil"
	"github.com/arthur-debert/rigup/pkg/types"
)

func archLinux(context.Context) (string, string, string, error) {
	return "arch", "arch", "rolling", nil
}

func testCatalog() []types.PackageSpec {
	names := func(n string) map[types.ManagerID]string {
		return map[types.ManagerID]string{
			types.ManagerBrew:   n,
			types.ManagerPacman: n,
			types.ManagerApt:    n,
		}
	}
	return []types.PackageSpec{
		{Name: "git", Required: true, Names: names("git")},
		{Name: "tmux", Required: true, Names: names("tmux")},
		{Name: "node", Names: names("nodejs")},
	}
}

func testFiles(home string) []types.ManagedFile {
	return []types.ManagedFile{
		{
			Name:        "shell_rc",
			Path:        filepath.Join(home, ".zshrc"),
			Mode:        types.ModeAppendMarkedBlock,
			Content:     "alias ll='ls -la'",
			MarkerBegin: "# >>> rigup managed block >>>",
			MarkerEnd:   "# <<< rigup managed block <<<",
		},
		{
			Name:    "tmux_conf",
			Path:    filepath.Join(home, ".tmux.conf"),
			Mode:    types.ModeFullOverwrite,
			Content: "set -g mouse on\n",
		},
	}
}

func testOptions(t *testing.T, runner *testutil.FakeRunner, fs *testutil.MemFS) (Options, string) {
	t.Helper()
	home := testutil.WithTempHome(t)
	cfg := &config.BootstrapConfig{
		Timeout: "5m",
		Packages: config.PackagesConfig{
			Enabled: map[string]bool{"node": false},
		},
		Files: config.FilesConfig{
			Overwrite: map[string]bool{"tmux_conf": true},
		},
	}
	opts := Options{
		Config:  cfg,
		Catalog: testCatalog(),
		Files:   testFiles(home),
		FS:      fs,
		Runner:  runner,
		AsRoot:  true,
		ProbeOptions: []probe.Option{
			probe.WithGOOS("linux"),
			probe.WithPlatformInfo(archLinux),
		},
	}
	return opts, home
}

func TestRunFullBootstrap(t *testing.T) {
	fs := testutil.NewMemFS()
	runner := testutil.NewFakeRunner("pacman", "git")
	opts, home := testOptions(t, runner, fs)

	result, err := Run(context.Background(), opts)

	require.NoError(t, err)
	assert.False(t, result.Failed())
	assert.Equal(t, 0, result.ExitCode())
	assert.Equal(t, types.ManagerPacman, result.Manager)

	// git is on PATH, node is disabled, so only tmux gets installed
	assert.Equal(t, []string{"git"}, result.Install.AlreadyPresent)
	assert.Equal(t, []string{"tmux"}, result.Install.Installed)
	calls := runner.CallsFor("pacman")
	require.Len(t, calls, 1)
	assert.Contains(t, calls[0], "tmux")
	assert.NotContains(t, calls[0], "nodejs")

	require.Len(t, result.Files, 2)
	rc, ok := fs.Content(filepath.Join(home, ".zshrc"))
	require.True(t, ok)
	assert.Contains(t, rc, "alias ll='ls -la'")
	tmux, ok := fs.Content(filepath.Join(home, ".tmux.conf"))
	require.True(t, ok)
	assert.Equal(t, "set -g mouse on\n", tmux)
}

func TestRunSecondPassIsIdempotent(t *testing.T) {
	fs := testutil.NewMemFS()
	runner := testutil.NewFakeRunner("pacman", "git", "tmux")
	opts, home := testOptions(t, runner, fs)

	_, err := Run(context.Background(), opts)
	require.NoError(t, err)
	rcAfterFirst, _ := fs.Content(filepath.Join(home, ".zshrc"))

	result, err := Run(context.Background(), opts)
	require.NoError(t, err)

	assert.Empty(t, runner.CallsFor("pacman"), "everything present, no install call")
	rcAfterSecond, _ := fs.Content(filepath.Join(home, ".zshrc"))
	assert.Equal(t, rcAfterFirst, rcAfterSecond)
	for _, f := range result.Files {
		assert.Equal(t, reconcile.OutcomeSkipped, f.Outcome)
	}
}

func TestRunAbortsWithoutManager(t *testing.T) {
	fs := testutil.NewMemFS()
	runner := testutil.NewFakeRunner() // no manager binary anywhere
	opts, _ := testOptions(t, runner, fs)

	_, err := Run(context.Background(), opts)

	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrEnvUnsupported))
	assert.Empty(t, fs.Paths(), "fatal probe failures must precede any mutation")
}

func TestRunOverwriteToggleKeepsExistingFile(t *testing.T) {
	fs := testutil.NewMemFS()
	runner := testutil.NewFakeRunner("pacman", "git", "tmux")
	opts, home := testOptions(t, runner, fs)
	opts.Config.Files.Overwrite["tmux_conf"] = false
	fs.Seed(filepath.Join(home, ".tmux.conf"), "my own tmux config\n")

	result, err := Run(context.Background(), opts)
	require.NoError(t, err)

	var tmuxResult FileResult
	for _, f := range result.Files {
		if f.File.Name == "tmux_conf" {
			tmuxResult = f
		}
	}
	assert.True(t, tmuxResult.DisabledByToggle)
	assert.Equal(t, reconcile.OutcomeSkipped, tmuxResult.Outcome)

	content, _ := fs.Content(filepath.Join(home, ".tmux.conf"))
	assert.Equal(t, "my own tmux config\n", content)
	_, hasBackup := fs.Content(filepath.Join(home, ".tmux.conf.bak"))
	assert.False(t, hasBackup)
}

func TestRunToggleDoesNotGateAbsentFiles(t *testing.T) {
	fs := testutil.NewMemFS()
	runner := testutil.NewFakeRunner("pacman", "git", "tmux")
	opts, home := testOptions(t, runner, fs)
	opts.Config.Files.Overwrite["tmux_conf"] = false

	result, err := Run(context.Background(), opts)
	require.NoError(t, err)

	content, ok := fs.Content(filepath.Join(home, ".tmux.conf"))
	require.True(t, ok, "toggle only protects pre-existing files")
	assert.Equal(t, "set -g mouse on\n", content)
	assert.False(t, result.Failed())
}

func TestRunClonesOnce(t *testing.T) {
	fs := testutil.NewMemFS()
	runner := testutil.NewFakeRunner("pacman", "git", "tmux")
	opts, home := testOptions(t, runner, fs)
	opts.Config.Clones = []config.CloneSpec{
		{Name: "tpm", Repo: "https://github.com/tmux-plugins/tpm", Dest: "~/.tmux/plugins/tpm"},
	}

	result, err := Run(context.Background(), opts)
	require.NoError(t, err)

	require.Len(t, result.Clones, 1)
	dest := filepath.Join(home, ".tmux", "plugins", "tpm")
	assert.Equal(t, CloneDone, result.Clones[0].Outcome)
	assert.Equal(t, dest, result.Clones[0].Dest)

	calls := runner.CallsFor("git")
	require.Len(t, calls, 1)
	assert.Equal(t,
		[]string{"git", "clone", "--depth", "1", "https://github.com/tmux-plugins/tpm", dest},
		calls[0])

	// second run: destination exists, clone is skipped
	fs.Seed(filepath.Join(dest, ".git", "HEAD"), "ref: refs/heads/master\n")
	fs.MkdirAll(dest, 0755)
	runner.Calls = nil

	result, err = Run(context.Background(), opts)
	require.NoError(t, err)
	assert.Equal(t, CloneSkipped, result.Clones[0].Outcome)
	assert.Empty(t, runner.CallsFor("git"))
}

func TestRunCloneFailureIsWarningNotFailure(t *testing.T) {
	fs := testutil.NewMemFS()
	runner := testutil.NewFakeRunner("pacman", "git", "tmux")
	runner.Errs["git"] = assert.AnError
	opts, _ := testOptions(t, runner, fs)
	opts.Config.Clones = []config.CloneSpec{
		{Name: "tpm", Repo: "https://example.com/tpm", Dest: "~/.tmux/plugins/tpm"},
	}

	result, err := Run(context.Background(), opts)
	require.NoError(t, err)

	require.Len(t, result.Clones, 1)
	assert.Equal(t, CloneFailed, result.Clones[0].Outcome)
	assert.False(t, result.Failed(), "clone steps are best-effort")
	assert.Equal(t, 0, result.ExitCode())
}

func TestRunFileFailureSetsExitCode(t *testing.T) {
	fs := testutil.NewMemFS()
	runner := testutil.NewFakeRunner("pacman", "git", "tmux")
	opts, home := testOptions(t, runner, fs)
	fs.FailWrites(filepath.Join(home, ".tmux.conf.rigup.tmp"))
	fs.Seed(filepath.Join(home, ".tmux.conf"), "old\n")

	result, err := Run(context.Background(), opts)
	require.NoError(t, err, "file failures are aggregated, not returned")

	assert.True(t, result.Failed())
	assert.Equal(t, 1, result.ExitCode())

	// the failing file does not stop the others
	_, ok := fs.Content(filepath.Join(home, ".zshrc"))
	assert.True(t, ok)
}

func TestRunDryRunTouchesNothing(t *testing.T) {
	fs := testutil.NewMemFS()
	runner := testutil.NewFakeRunner("pacman", "git")
	opts, _ := testOptions(t, runner, fs)
	opts.Config.DryRun = true
	opts.Config.Clones = []config.CloneSpec{
		{Name: "tpm", Repo: "https://example.com/tpm", Dest: "~/.tmux/plugins/tpm"},
	}

	result, err := Run(context.Background(), opts)
	require.NoError(t, err)

	assert.True(t, result.DryRun)
	assert.Equal(t, []string{"tmux"}, result.Install.Installed)
	assert.Empty(t, runner.CallsFor("pacman"))
	assert.Empty(t, runner.CallsFor("git"))
	assert.Empty(t, fs.Paths())
	assert.False(t, result.Failed())
}
