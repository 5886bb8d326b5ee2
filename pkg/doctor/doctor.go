// Package doctor reports which expected tools are present on the host.
// It is a pure presence/absence report over HostFacts: no probing of its
// own, no mutation.
package doctor

import (
	"fmt"
	"sort"

	"github.com/arthur-debert/rigup/pkg/types"
)

// ToolStatus classifies one logical tool.
type ToolStatus struct {
	Name     string
	Required bool
	Found    bool

	// Path is the resolved binary path when found
	Path string

	// ViaAlternative names the alternative binary that satisfied the
	// check, when the primary one was absent
	ViaAlternative string

	// Hints are manager-specific install suggestions for missing tools
	Hints []string
}

// Report aggregates tool statuses.
type Report struct {
	Tools           []ToolStatus
	Found           int
	Missing         int
	MissingRequired int
}

// Healthy reports whether every required tool is present.
func (r Report) Healthy() bool {
	return r.MissingRequired == 0
}

// Check classifies every catalog entry against the probed facts.
func Check(facts types.HostFacts, specs []types.PackageSpec) Report {
	var report Report

	for _, spec := range specs {
		status := ToolStatus{Name: spec.Name, Required: spec.Required}

		if path, ok := facts.BinaryPath(spec.Binary()); ok {
			status.Found = true
			status.Path = path
		} else {
			for _, alt := range spec.Alternatives {
				if path, ok := facts.BinaryPath(alt); ok {
					status.Found = true
					status.Path = path
					status.ViaAlternative = alt
					break
				}
			}
		}

		if status.Found {
			report.Found++
		} else {
			status.Hints = installHints(facts, spec)
			report.Missing++
			if spec.Required {
				report.MissingRequired++
			}
		}

		report.Tools = append(report.Tools, status)
	}

	sort.Slice(report.Tools, func(i, j int) bool {
		return report.Tools[i].Name < report.Tools[j].Name
	})

	return report
}

// installHints suggests how to install a missing tool with the managers
// actually present on this host.
func installHints(facts types.HostFacts, spec types.PackageSpec) []string {
	type hintFormat struct {
		id     types.ManagerID
		format string
	}
	formats := []hintFormat{
		{types.ManagerBrew, "brew install %s"},
		{types.ManagerPacman, "sudo pacman -S %s"},
		{types.ManagerApt, "sudo apt install %s"},
	}

	var hints []string
	for _, f := range formats {
		if !facts.HasManager(f.id) {
			continue
		}
		if name, ok := spec.NameFor(f.id); ok {
			hints = append(hints, fmt.Sprintf(f.format, name))
		}
	}

	if len(hints) == 0 {
		hints = append(hints, fmt.Sprintf("install %s with your platform's package manager", spec.Name))
	}
	return hints
}
