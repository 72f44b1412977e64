// Package settings provides the read-only build settings a resolution pass
// consumes: option values keyed by option.Kind and the device attributes
// (core, FPU, endianness) of the selected device.
//
// # Characteristics
//
//   - **Immutable:** a Store is fully populated by NewStore and never changes
//     afterwards, so it may be shared between goroutines without locking.
//   - **Copy-out:** list getters return fresh slices; callers may edit them
//     freely without affecting the store or other readers.
package settings

import (
	"maps"
	"slices"

	"github.com/specialistvlad/rteopts/internal/option"
)

// BuildSettings is the read-only view of a configuration's declared
// requirements.
type BuildSettings interface {
	// StringValue returns the scalar value stored for a kind.
	StringValue(k option.Kind) (string, bool)
	// StringListValue returns a copy of the list stored for a kind.
	StringListValue(k option.Kind) ([]string, bool)
	// DeviceAttribute returns a device characteristic such as the core name.
	DeviceAttribute(a Attribute) (string, bool)
}

// Store is the map-backed implementation of BuildSettings.
type Store struct {
	scalars map[option.Kind]string
	lists   map[option.Kind][]string
	device  map[Attribute]string
}

// StoreOption populates a Store under construction.
type StoreOption func(*Store)

// WithString stores a scalar value for a kind.
func WithString(k option.Kind, v string) StoreOption {
	return func(s *Store) {
		s.scalars[k] = v
	}
}

// WithList stores a copy of items for a kind. Repeated calls for the same
// kind append.
func WithList(k option.Kind, items ...string) StoreOption {
	return func(s *Store) {
		s.lists[k] = append(s.lists[k], items...)
	}
}

// WithDeviceAttribute stores a device characteristic. Empty values are ignored
// so that a missing attribute and an empty one behave the same.
func WithDeviceAttribute(a Attribute, v string) StoreOption {
	return func(s *Store) {
		if v == "" {
			return
		}
		s.device[a] = v
	}
}

// NewStore creates a Store populated by opts.
func NewStore(opts ...StoreOption) *Store {
	s := &Store{
		scalars: make(map[option.Kind]string),
		lists:   make(map[option.Kind][]string),
		device:  make(map[Attribute]string),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// StringValue implements BuildSettings. A nil Store holds nothing.
func (s *Store) StringValue(k option.Kind) (string, bool) {
	if s == nil {
		return "", false
	}
	v, ok := s.scalars[k]
	return v, ok
}

// StringListValue implements BuildSettings.
func (s *Store) StringListValue(k option.Kind) ([]string, bool) {
	if s == nil {
		return nil, false
	}
	v, ok := s.lists[k]
	if !ok {
		return nil, false
	}
	return slices.Clone(v), true
}

// DeviceAttribute implements BuildSettings.
func (s *Store) DeviceAttribute(a Attribute) (string, bool) {
	if s == nil {
		return "", false
	}
	v, ok := s.device[a]
	return v, ok
}

// Kinds returns every kind that carries a scalar or list value, sorted.
func (s *Store) Kinds() []option.Kind {
	if s == nil {
		return nil
	}
	kinds := slices.Collect(maps.Keys(s.scalars))
	for k := range s.lists {
		if _, dup := s.scalars[k]; !dup {
			kinds = append(kinds, k)
		}
	}
	slices.Sort(kinds)
	return kinds
}
