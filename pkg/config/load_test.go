package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/rigup/pkg/testutil"
)

func writeUserConfig(t *testing.T, content string) {
	t.Helper()
	dir := os.Getenv("RIGUP_CONFIG_DIR")
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "rigup.toml"), []byte(content), 0644))
}

func TestLoadDefaults(t *testing.T) {
	testutil.WithTempHome(t)

	cfg, err := Load()

	require.NoError(t, err)
	assert.False(t, cfg.DryRun)
	assert.Equal(t, "5m", cfg.Timeout)
	assert.True(t, cfg.PackageEnabled("git"))
	assert.False(t, cfg.PackageEnabled("node"), "node is opt-in by default")
	assert.True(t, cfg.OverwriteAllowed("tmux_conf"))
	assert.False(t, cfg.OverwriteAllowed("shell_rc"),
		"unlisted files must not be overwritten")
	require.Len(t, cfg.Clones, 1)
	assert.Equal(t, "tpm", cfg.Clones[0].Name)
	assert.Equal(t, "~/.tmux/plugins/tpm", cfg.Clones[0].Dest)
}

func TestLoadUserFileOverridesDefaults(t *testing.T) {
	testutil.WithTempHome(t)
	writeUserConfig(t, `
timeout = "30s"

[packages.enabled]
tmux = false
`)

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "30s", cfg.Timeout)
	assert.False(t, cfg.PackageEnabled("tmux"))
	assert.True(t, cfg.PackageEnabled("git"), "untouched defaults survive the overlay")
}

func TestLoadEnvTogglesWinOverFile(t *testing.T) {
	testutil.WithTempHome(t)
	writeUserConfig(t, `
[packages.enabled]
tmux = false
`)
	t.Setenv("INSTALL_TMUX", "1")
	t.Setenv("INSTALL_GIT", "0")
	t.Setenv("OVERWRITE_TMUX_CONF", "0")

	cfg, err := Load()

	require.NoError(t, err)
	assert.True(t, cfg.PackageEnabled("tmux"))
	assert.False(t, cfg.PackageEnabled("git"))
	assert.False(t, cfg.OverwriteAllowed("tmux_conf"))
}

func TestLoadDryRunFromEnvironment(t *testing.T) {
	testutil.WithTempHome(t)
	t.Setenv("RIGUP_DRY_RUN", "1")

	cfg, err := Load()

	require.NoError(t, err)
	assert.True(t, cfg.DryRun)
}

func TestLoadRejectsMalformedUserFile(t *testing.T) {
	testutil.WithTempHome(t)
	writeUserConfig(t, "timeout = [not toml")

	_, err := Load()

	assert.Error(t, err)
}

func TestEnvToKeyIgnoresUnrelatedVariables(t *testing.T) {
	assert.Equal(t, "", envToKey("PATH"))
	assert.Equal(t, "", envToKey("INSTALLER_PROMPT"), "prefix must match exactly")
	assert.Equal(t, "packages.enabled.neovim", envToKey("INSTALL_NEOVIM"))
	assert.Equal(t, "files.overwrite.aliases", envToKey("OVERWRITE_ALIASES"))
	assert.Equal(t, "dry_run", envToKey("RIGUP_DRY_RUN"))
}

func TestTimeoutDurationFallsBack(t *testing.T) {
	assert.Equal(t, "5m0s", (&BootstrapConfig{Timeout: "garbage"}).TimeoutDuration().String())
	assert.Equal(t, "5m0s", (&BootstrapConfig{}).TimeoutDuration().String())
	assert.Equal(t, "45s", (&BootstrapConfig{Timeout: "45s"}).TimeoutDuration().String())
}

func TestMarshalTOMLRoundTripsDefaults(t *testing.T) {
	testutil.WithTempHome(t)

	cfg, err := Defaults()
	require.NoError(t, err)

	data, err := MarshalTOML(cfg)
	require.NoError(t, err)

	out := string(data)
	assert.Contains(t, out, "timeout = '5m'")
	assert.Contains(t, out, "[packages.enabled]")
	assert.Contains(t, out, "[[clones]]")
}
