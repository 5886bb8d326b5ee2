package main

// Short messages (one-liners)
const (
	MsgRootShort = "Bootstrap a developer workstation"
	MsgRootLong = `rigup bootstraps a developer workstation: it detects the OS and package
manager, installs a fixed set of command-line tools in a single batched
call, clones auxiliary repositories, and reconciles the configuration
files it owns (shell rc block, tmux config, aliases).

Run with no arguments to perform the full bootstrap. Environment toggles
like INSTALL_NODE=1 or OVERWRITE_TMUX_CONF=0 adjust individual steps.`

	MsgDoctorShort = "Report which expected tools are present"
	MsgDoctorLong = `doctor probes the host and reports which of the expected tools are
present, with install hints for the package managers found on this host.
It never mutates anything.`

	MsgGenconfigShort = "Print the default configuration as TOML"
	MsgGenconfigLong = `genconfig prints the built-in defaults in TOML form, ready to be saved
as ~/.config/rigup/rigup.toml and edited.`

	MsgGuideShort   = "Show the rigup usage guide"
	MsgVersionShort = "Print version information"

	MsgRunFailed = "bootstrap finished with failures"
)
