// Package filesystem provides filesystem implementations for rigup.
//
// This package contains implementations of the types.FS interface.
// The in-memory test filesystem lives in pkg/testutil.
package filesystem
