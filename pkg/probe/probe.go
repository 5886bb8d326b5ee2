// Package probe inspects the host and produces the immutable HostFacts
// snapshot the rest of the run is driven by. Probing has no side effects
// and fails only when the OS is entirely unrecognized.
package probe

import (
	"context"
	"runtime"
	"strings"

	"github.com/shirou/gopsutil/v4/host"

	"github.com/arthur-debert/rigup/pkg/errors"
	"github.com/arthur-debert/rigup/pkg/logging"
	"github.com/arthur-debert/rigup/pkg/types"
)

// wslMarkerFile identifies WSL kernels by their version banner.
const wslMarkerFile = "/proc/version"

// PlatformInfoFunc reports Linux distribution details: platform id,
// family and version. The default implementation uses gopsutil.
type PlatformInfoFunc func(ctx context.Context) (platform, family, version string, err error)

// Prober computes HostFacts. All host access goes through the injected
// FS, Runner and PlatformInfoFunc so tests can fake any environment.
type Prober struct {
	fs              types.FS
	runner          types.Runner
	goos            string
	managerBinaries map[types.ManagerID]string
	platformInfo    PlatformInfoFunc
}

// Option configures a Prober.
type Option func(*Prober)

// WithGOOS overrides the detected operating system (tests only).
func WithGOOS(goos string) Option {
	return func(p *Prober) { p.goos = goos }
}

// WithPlatformInfo overrides the distro detection function.
func WithPlatformInfo(fn PlatformInfoFunc) Option {
	return func(p *Prober) { p.platformInfo = fn }
}

// New creates a Prober. managerBinaries maps each manager to the binary
// whose presence marks the manager as available.
func New(fs types.FS, runner types.Runner, managerBinaries map[types.ManagerID]string, opts ...Option) *Prober {
	p := &Prober{
		fs:              fs,
		runner:          runner,
		goos:            runtime.GOOS,
		managerBinaries: managerBinaries,
		platformInfo:    gopsutilPlatformInfo,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Probe inspects the host. specs drive which tool binaries are looked up.
// The only failure mode is an unrecognized OS; distro detection and
// missing binaries degrade gracefully.
func (p *Prober) Probe(ctx context.Context, specs []types.PackageSpec) (types.HostFacts, error) {
	logger := logging.GetLogger("probe")

	facts := types.HostFacts{
		AvailableManagers: make(map[types.ManagerID]string),
		AvailableBinaries: make(map[string]string),
	}

	switch p.goos {
	case "darwin":
		facts.OSFamily = types.OSFamilyMacOS
	case "linux":
		facts.OSFamily = types.OSFamilyLinux
	default:
		facts.OSFamily = types.OSFamilyOther
		return facts, errors.Newf(errors.ErrEnvUnsupported,
			"unsupported operating system %q", p.goos)
	}

	if facts.OSFamily == types.OSFamilyLinux {
		facts.IsWSL = p.detectWSL()
		p.detectDistro(ctx, &facts)
	}

	for id, binary := range p.managerBinaries {
		if path, err := p.runner.LookPath(binary); err == nil {
			facts.AvailableManagers[id] = path
		}
	}

	for _, spec := range specs {
		p.lookupBinary(spec.Binary(), facts.AvailableBinaries)
		for _, alt := range spec.Alternatives {
			p.lookupBinary(alt, facts.AvailableBinaries)
		}
	}

	logger.Debug().
		Str("osFamily", string(facts.OSFamily)).
		Bool("wsl", facts.IsWSL).
		Str("distro", facts.Distro).
		Int("managers", len(facts.AvailableManagers)).
		Int("binaries", len(facts.AvailableBinaries)).
		Msg("probe complete")

	return facts, nil
}

func (p *Prober) lookupBinary(name string, into map[string]string) {
	if name == "" {
		return
	}
	if _, done := into[name]; done {
		return
	}
	if path, err := p.runner.LookPath(name); err == nil {
		into[name] = path
	}
}

func (p *Prober) detectWSL() bool {
	data, err := p.fs.ReadFile(wslMarkerFile)
	if err != nil {
		return false
	}
	return strings.Contains(strings.ToLower(string(data)), "microsoft")
}

// detectDistro fills distro fields on a best-effort basis. Failure leaves
// them empty; manager resolution then falls back to the default order.
func (p *Prober) detectDistro(ctx context.Context, facts *types.HostFacts) {
	platform, family, _, err := p.platformInfo(ctx)
	if err != nil {
		logger := logging.GetLogger("probe")
		logger.Debug().Err(err).Msg("distro detection failed, continuing without it")
		return
	}
	facts.Distro = strings.ToLower(platform)
	facts.DistroFamily = normalizeFamily(family)
}

func gopsutilPlatformInfo(ctx context.Context) (string, string, string, error) {
	return host.PlatformInformationWithContext(ctx)
}

// normalizeFamily folds gopsutil's family strings onto the two families
// the registry keys preference on.
func normalizeFamily(family string) string {
	switch strings.ToLower(family) {
	case "arch":
		return "arch"
	case "debian", "ubuntu":
		return "debian"
	default:
		return strings.ToLower(family)
	}
}
