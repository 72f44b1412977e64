package registry

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/specialistvlad/rteopts/internal/armcc"
	"github.com/specialistvlad/rteopts/internal/optionid"
)

// Module is the interface that all toolchain modules must implement to be
// registered.
type Module interface {
	Register(r *Registry)
}

type entry struct {
	prefix   *optionid.ID
	strategy armcc.Strategy
}

// Registry holds the registered strategies of a single application instance.
type Registry struct {
	entries  map[string]*entry
	fallback armcc.Strategy
}

// New creates a Registry whose fallback is the default ARM Compiler strategy.
func New() *Registry {
	return &Registry{
		entries:  make(map[string]*entry),
		fallback: armcc.Default(),
	}
}

// Register binds a strategy to a toolchain identifier prefix. Registering the
// same prefix twice or an unparsable prefix is a programming error and panics.
func (r *Registry) Register(prefix string, s armcc.Strategy) {
	id, err := optionid.Parse(prefix)
	if err != nil {
		panic(fmt.Sprintf("invalid toolchain prefix '%s': %v", prefix, err))
	}
	key := id.String()
	if _, exists := r.entries[key]; exists {
		panic(fmt.Sprintf("strategy for toolchain prefix '%s' already registered", key))
	}
	slog.Debug("Registering toolchain strategy.", "prefix", key, "strategy", s.Name)
	r.entries[key] = &entry{prefix: id, strategy: s}
}

// Lookup returns the strategy for a toolchain base identifier. The longest
// matching prefix wins; identifiers that match nothing, or do not parse, get
// the fallback strategy.
func (r *Registry) Lookup(baseID string) armcc.Strategy {
	id, err := optionid.Parse(baseID)
	if err != nil {
		return r.fallback
	}

	var best *entry
	for _, e := range r.entries {
		if !id.HasPrefix(e.prefix) {
			continue
		}
		if best == nil || e.prefix.Len() > best.prefix.Len() {
			best = e
		}
	}
	if best == nil {
		return r.fallback
	}
	return best.strategy
}

// Prefixes returns the registered prefixes, sorted.
func (r *Registry) Prefixes() []string {
	keys := make([]string, 0, len(r.entries))
	for k := range r.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
