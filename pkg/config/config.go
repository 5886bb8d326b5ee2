// Package config builds the BootstrapConfig: embedded defaults, an
// optional user file, and the environment toggles, merged once at startup
// and passed around explicitly from there.
package config

import (
	"time"
)

// BootstrapConfig is the fully merged run configuration. It is populated
// once at startup; nothing reads environment variables after that.
type BootstrapConfig struct {
	// DryRun previews every step without mutating the host
	DryRun bool `koanf:"dry_run" toml:"dry_run"`

	// Timeout bounds each subprocess invocation, as a duration string
	Timeout string `koanf:"timeout" toml:"timeout"`

	Packages PackagesConfig `koanf:"packages" toml:"packages"`
	Files    FilesConfig    `koanf:"files" toml:"files"`
	Clones   []CloneSpec    `koanf:"clones" toml:"clones"`
}

// PackagesConfig toggles package installation per logical name.
type PackagesConfig struct {
	// Enabled maps logical package names to install toggles. Packages
	// absent from the map are installed; listing one with false opts out.
	Enabled map[string]bool `koanf:"enabled" toml:"enabled"`
}

// FilesConfig toggles managed file reconciliation.
type FilesConfig struct {
	// Overwrite gates whether a full-overwrite managed file may replace
	// a pre-existing file. Marked-block files are unaffected.
	Overwrite map[string]bool `koanf:"overwrite" toml:"overwrite"`
}

// CloneSpec declares a git repository cloned during the clone pass.
// Dest may start with "~/" for home-relative destinations.
type CloneSpec struct {
	Name string `koanf:"name" toml:"name"`
	Repo string `koanf:"repo" toml:"repo"`
	Dest string `koanf:"dest" toml:"dest"`
}

// PackageEnabled reports whether a logical package should be installed.
func (c *BootstrapConfig) PackageEnabled(name string) bool {
	enabled, listed := c.Packages.Enabled[name]
	if !listed {
		return true
	}
	return enabled
}

// OverwriteAllowed reports whether a full-overwrite managed file may
// replace an existing file.
func (c *BootstrapConfig) OverwriteAllowed(name string) bool {
	allowed, listed := c.Files.Overwrite[name]
	if !listed {
		return false
	}
	return allowed
}

// TimeoutDuration parses the configured subprocess timeout, falling back
// to five minutes on a missing or malformed value.
func (c *BootstrapConfig) TimeoutDuration() time.Duration {
	d, err := time.ParseDuration(c.Timeout)
	if err != nil || d <= 0 {
		return 5 * time.Minute
	}
	return d
}
