package testutil

import (
	"context"
	"os/exec"

	"github.com/arthur-debert/rigup/pkg/types"
)

// FakeRunner records every command it is asked to run and serves LookPath
// from a fixed table. It never spawns a process.
type FakeRunner struct {
	// Binaries maps binary names to the paths LookPath reports
	Binaries map[string]string

	// Errs maps a command name to the error Run should return for it
	Errs map[string]error

	// Calls records every Run invocation as [name, args...]
	Calls [][]string
}

// NewFakeRunner creates a runner that knows about the given binaries.
func NewFakeRunner(binaries ...string) *FakeRunner {
	r := &FakeRunner{
		Binaries: make(map[string]string),
		Errs:     make(map[string]error),
	}
	for _, b := range binaries {
		r.Binaries[b] = "/usr/bin/" + b
	}
	return r
}

func (r *FakeRunner) Run(ctx context.Context, name string, args ...string) error {
	call := append([]string{name}, args...)
	r.Calls = append(r.Calls, call)
	if err := ctx.Err(); err != nil {
		return err
	}
	return r.Errs[name]
}

func (r *FakeRunner) LookPath(name string) (string, error) {
	if path, ok := r.Binaries[name]; ok {
		return path, nil
	}
	return "", &exec.Error{Name: name, Err: exec.ErrNotFound}
}

// CallsFor returns the recorded invocations of a single command.
func (r *FakeRunner) CallsFor(name string) [][]string {
	var calls [][]string
	for _, c := range r.Calls {
		if c[0] == name {
			calls = append(calls, c)
		}
	}
	return calls
}

var _ types.Runner = (*FakeRunner)(nil)
