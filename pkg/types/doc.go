// Package types defines the core types shared across rigup: host facts
// produced by the prober, package specs consumed by the manager registry,
// managed file declarations consumed by the reconciler, and the small
// interfaces (FS, Runner) that keep the rest of the codebase testable.
package types
