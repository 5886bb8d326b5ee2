// Package testutil provides shared test helpers: an in-memory filesystem,
// a recording command runner, and environment setup for tests that touch
// home-relative paths.
package testutil
