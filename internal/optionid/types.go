// internal/optionid/types.go
package optionid

// ID is the structured form of a dotted toolchain or option identifier.
type ID struct {
	Segments []string
}

// Len returns the number of segments.
func (id *ID) Len() int {
	if id == nil {
		return 0
	}
	return len(id.Segments)
}
