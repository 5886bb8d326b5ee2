package managers

import (
	"github.com/arthur-debert/rigup/pkg/errors"
	"github.com/arthur-debert/rigup/pkg/logging"
	"github.com/arthur-debert/rigup/pkg/types"
)

// Registry holds the known managers in default preference order and
// resolves the one to use for a given host.
type Registry struct {
	managers []Manager
}

// NewRegistry creates a registry with all built-in managers.
// Default preference order: brew, pacman, apt.
func NewRegistry() *Registry {
	return &Registry{
		managers: []Manager{
			NewHomebrewManager(),
			NewPacmanManager(),
			NewAptManager(),
		},
	}
}

// Get returns the manager with the given id.
func (r *Registry) Get(id types.ManagerID) (Manager, bool) {
	for _, m := range r.managers {
		if m.ID() == id {
			return m, true
		}
	}
	return nil, false
}

// Binaries maps every known manager to the binary the prober should look
// for.
func (r *Registry) Binaries() map[types.ManagerID]string {
	bins := make(map[types.ManagerID]string, len(r.managers))
	for _, m := range r.managers {
		bins[m.ID()] = m.Binary()
	}
	return bins
}

// Resolve picks the manager to use for this host. On macOS that is always
// Homebrew. On Linux the distro-native manager is preferred (pacman for
// the arch family, apt for debian), then the remaining candidates in
// default order. A host with no known manager present is unsupported.
func (r *Registry) Resolve(facts types.HostFacts) (Manager, error) {
	logger := logging.GetLogger("managers.registry")

	if facts.OSFamily == types.OSFamilyMacOS {
		if m, ok := r.Get(types.ManagerBrew); ok && facts.HasManager(types.ManagerBrew) {
			return m, nil
		}
		return nil, errors.New(errors.ErrEnvUnsupported,
			"Homebrew not found; install it from https://brew.sh first")
	}

	for _, id := range r.preference(facts) {
		if !facts.HasManager(id) {
			continue
		}
		m, ok := r.Get(id)
		if !ok {
			continue
		}
		logger.Debug().
			Str("manager", string(id)).
			Str("distroFamily", facts.DistroFamily).
			Msg("resolved package manager")
		return m, nil
	}

	return nil, errors.New(errors.ErrEnvUnsupported, "no supported package manager found on this host")
}

// preference returns manager ids ordered for this host, native first.
func (r *Registry) preference(facts types.HostFacts) []types.ManagerID {
	var native types.ManagerID
	switch facts.DistroFamily {
	case "arch":
		native = types.ManagerPacman
	case "debian":
		native = types.ManagerApt
	}

	order := make([]types.ManagerID, 0, len(r.managers))
	if native != "" {
		order = append(order, native)
	}
	for _, m := range r.managers {
		if m.ID() != native {
			order = append(order, m.ID())
		}
	}
	return order
}
