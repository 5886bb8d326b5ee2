package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/rigup/pkg/errors"
	"github.com/arthur-debert/rigup/pkg/paths"
	"github.com/arthur-debert/rigup/pkg/types"
)

// builtinCatalog is the fixed list of tools rigup knows how to install.
// Per-manager names differ where the ecosystems disagree (fd-find,
// nodejs); the Alternatives field covers distros that rename binaries
// (fdfind on Debian).
var builtinCatalog = []types.PackageSpec{
	{
		Name:     "git",
		Required: true,
		Names: map[types.ManagerID]string{
			types.ManagerBrew:   "git",
			types.ManagerPacman: "git",
			types.ManagerApt:    "git",
		},
	},
	{
		Name:     "curl",
		Required: true,
		Names: map[types.ManagerID]string{
			types.ManagerBrew:   "curl",
			types.ManagerPacman: "curl",
			types.ManagerApt:    "curl",
		},
	},
	{
		Name:     "tmux",
		Required: true,
		Names: map[types.ManagerID]string{
			types.ManagerBrew:   "tmux",
			types.ManagerPacman: "tmux",
			types.ManagerApt:    "tmux",
		},
	},
	{
		Name:        "ripgrep",
		CheckBinary: "rg",
		Names: map[types.ManagerID]string{
			types.ManagerBrew:   "ripgrep",
			types.ManagerPacman: "ripgrep",
			types.ManagerApt:    "ripgrep",
		},
	},
	{
		Name:         "fd",
		Alternatives: []string{"fdfind"},
		Names: map[types.ManagerID]string{
			types.ManagerBrew:   "fd",
			types.ManagerPacman: "fd",
			types.ManagerApt:    "fd-find",
		},
	},
	{
		Name: "fzf",
		Names: map[types.ManagerID]string{
			types.ManagerBrew:   "fzf",
			types.ManagerPacman: "fzf",
			types.ManagerApt:    "fzf",
		},
	},
	{
		Name: "jq",
		Names: map[types.ManagerID]string{
			types.ManagerBrew:   "jq",
			types.ManagerPacman: "jq",
			types.ManagerApt:    "jq",
		},
	},
	{
		Name:        "neovim",
		CheckBinary: "nvim",
		Names: map[types.ManagerID]string{
			types.ManagerBrew:   "neovim",
			types.ManagerPacman: "neovim",
			types.ManagerApt:    "neovim",
		},
	},
	{
		Name: "node",
		Names: map[types.ManagerID]string{
			types.ManagerBrew:   "node",
			types.ManagerPacman: "nodejs",
			types.ManagerApt:    "nodejs",
		},
	},
}

// userCatalog is the shape of the optional packages.yaml overlay.
type userCatalog struct {
	Packages []types.PackageSpec `yaml:"packages"`
}

// Catalog returns the package catalog: the built-in list, overlaid with
// the user's packages.yaml when present. User entries replace built-ins
// with the same logical name and append otherwise.
func Catalog() ([]types.PackageSpec, error) {
	catalog := make([]types.PackageSpec, len(builtinCatalog))
	copy(catalog, builtinCatalog)

	data, err := os.ReadFile(paths.CatalogFile())
	if err != nil {
		if os.IsNotExist(err) {
			return catalog, nil
		}
		return nil, errors.Wrapf(err, errors.ErrConfigLoad,
			"cannot read package catalog %s", paths.CatalogFile())
	}

	var user userCatalog
	if err := yaml.Unmarshal(data, &user); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigParse,
			"invalid package catalog %s", paths.CatalogFile())
	}

	for _, spec := range user.Packages {
		if spec.Name == "" {
			continue
		}
		replaced := false
		for i := range catalog {
			if catalog[i].Name == spec.Name {
				catalog[i] = spec
				replaced = true
				break
			}
		}
		if !replaced {
			catalog = append(catalog, spec)
		}
	}

	return catalog, nil
}
