package config

import (
	_ "embed"
	"fmt"

	"github.com/arthur-debert/rigup/pkg/paths"
	"github.com/arthur-debert/rigup/pkg/types"
)

//go:embed templates/tmux.conf
var tmuxConfTemplate string

//go:embed templates/aliases.sh
var aliasesTemplate string

// Marker lines delimiting the rigup-managed block in the shell rc file.
const (
	RCMarkerBegin = "# >>> rigup managed block >>>"
	RCMarkerEnd   = "# <<< rigup managed block <<<"
)

// Managed file names, used as toggle keys and in reports.
const (
	FileShellRC  = "shell_rc"
	FileTmuxConf = "tmux_conf"
	FileAliases  = "aliases"
)

// ManagedFiles declares the files rigup owns: the shell rc marked block,
// the tmux configuration, and the aliases file the block sources.
func ManagedFiles() ([]types.ManagedFile, error) {
	rcPath, err := paths.ShellRC()
	if err != nil {
		return nil, err
	}
	tmuxPath, err := paths.TmuxConf()
	if err != nil {
		return nil, err
	}
	aliasesPath := paths.AliasesFile()

	return []types.ManagedFile{
		{
			Name:        FileShellRC,
			Path:        rcPath,
			Mode:        types.ModeAppendMarkedBlock,
			Content:     rcBlock(aliasesPath),
			MarkerBegin: RCMarkerBegin,
			MarkerEnd:   RCMarkerEnd,
		},
		{
			Name:    FileTmuxConf,
			Path:    tmuxPath,
			Mode:    types.ModeFullOverwrite,
			Content: tmuxConfTemplate,
		},
		{
			Name:    FileAliases,
			Path:    aliasesPath,
			Mode:    types.ModeFullOverwrite,
			Content: aliasesTemplate,
		},
	}, nil
}

// rcBlock builds the shell rc block body: source the managed aliases and
// make sure ~/.local/bin is on PATH.
func rcBlock(aliasesPath string) string {
	return fmt.Sprintf(`[ -f "%s" ] && . "%s"
case ":$PATH:" in
    *":$HOME/.local/bin:"*) ;;
    *) PATH="$HOME/.local/bin:$PATH" ;;
esac`, aliasesPath, aliasesPath)
}
