// internal/optionid/id.go
package optionid

import (
	"slices"
	"strings"
)

// String serializes the ID into its canonical dotted form.
func (id *ID) String() string {
	if id == nil {
		return ""
	}
	return strings.Join(id.Segments, ".")
}

// Equal checks for segment-wise equality between two IDs.
func (id *ID) Equal(other *ID) bool {
	if id == nil || other == nil {
		return id == other
	}
	return slices.Equal(id.Segments, other.Segments)
}

// HasPrefix reports whether prefix's segments open id. Every ID has the nil
// or empty prefix.
func (id *ID) HasPrefix(prefix *ID) bool {
	if prefix.Len() == 0 {
		return true
	}
	if id.Len() < prefix.Len() {
		return false
	}
	return slices.Equal(id.Segments[:prefix.Len()], prefix.Segments)
}
