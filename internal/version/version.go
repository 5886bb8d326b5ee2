// Package version holds build-time version information.
package version

// Version is set at build time via ldflags
var Version = "dev"

// Commit is set at build time via ldflags
var Commit = "none"
