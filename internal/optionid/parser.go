// internal/optionid/parser.go
package optionid

import (
	"fmt"
	"regexp"
	"strings"
)

// segmentRegex matches a single segment, e.g. `cpu_fpu` or `useMicroLib`.
var segmentRegex = regexp.MustCompile(`^[a-zA-Z0-9_+-]+$`)

// isValidSegmentName rejects names the regex lets through but no plug-in uses.
func isValidSegmentName(name string) bool {
	if name == "-" || name == "+" || name == "_" {
		return false
	}
	return true
}

// Parse creates an ID from its dotted string form.
func Parse(raw string) (*ID, error) {
	if raw == "" {
		return nil, fmt.Errorf("identifier cannot be empty")
	}

	id := &ID{}
	for _, segment := range strings.Split(raw, ".") {
		if segment == "" {
			return nil, fmt.Errorf("identifier %q contains empty segment", raw)
		}
		if !segmentRegex.MatchString(segment) {
			return nil, fmt.Errorf("invalid segment format: %q", segment)
		}
		if !isValidSegmentName(segment) {
			return nil, fmt.Errorf("invalid segment name: %q", segment)
		}
		id.Segments = append(id.Segments, segment)
	}

	return id, nil
}

// MustParse is like Parse but panics on error. It is meant for identifiers
// compiled into the binary.
func MustParse(raw string) *ID {
	id, err := Parse(raw)
	if err != nil {
		panic(fmt.Sprintf("optionid: %v", err))
	}
	return id
}
