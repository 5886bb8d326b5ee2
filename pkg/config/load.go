package config

import (
	_ "embed"
	"os"
	"strings"

	ktoml "github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
	gotoml "github.com/pelletier/go-toml/v2"

	"github.com/arthur-debert/rigup/pkg/errors"
	"github.com/arthur-debert/rigup/pkg/paths"
)

//go:embed defaults.toml
var defaultsTOML []byte

// Load merges the configuration layers in precedence order: embedded
// defaults, then the user file at $XDG_CONFIG_HOME/rigup/rigup.toml,
// then the environment toggles.
func Load() (*BootstrapConfig, error) {
	k := koanf.New(".")

	if err := k.Load(rawbytes.Provider(defaultsTOML), ktoml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load default config")
	}

	userFile := paths.ConfigFile()
	if _, err := os.Stat(userFile); err == nil {
		if err := k.Load(file.Provider(userFile), ktoml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse,
				"failed to load config from %s", userFile)
		}
	}

	if err := k.Load(env.Provider("", ".", envToKey), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment toggles")
	}

	var cfg BootstrapConfig
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigValid, "invalid configuration")
	}
	return &cfg, nil
}

// Defaults returns the embedded default configuration alone, with no user
// file or environment applied.
func Defaults() (*BootstrapConfig, error) {
	k := koanf.New(".")
	if err := k.Load(rawbytes.Provider(defaultsTOML), ktoml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load default config")
	}
	var cfg BootstrapConfig
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigValid, "invalid default configuration")
	}
	return &cfg, nil
}

// MarshalTOML renders a configuration as TOML, for genconfig.
func MarshalTOML(cfg *BootstrapConfig) ([]byte, error) {
	data, err := gotoml.Marshal(cfg)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to marshal config")
	}
	return data, nil
}

// envToKey maps the supported environment toggles onto config keys.
// INSTALL_<NAME>=1/0 toggles a package, OVERWRITE_<NAME>=1/0 toggles a
// managed file, RIGUP_DRY_RUN=1 enables dry-run. Everything else is
// ignored, so unrelated environment variables never leak into config.
func envToKey(name string) string {
	switch {
	case name == "RIGUP_DRY_RUN":
		return "dry_run"
	case strings.HasPrefix(name, "INSTALL_"):
		return "packages.enabled." + strings.ToLower(strings.TrimPrefix(name, "INSTALL_"))
	case strings.HasPrefix(name, "OVERWRITE_"):
		return "files.overwrite." + strings.ToLower(strings.TrimPrefix(name, "OVERWRITE_"))
	}
	return ""
}
