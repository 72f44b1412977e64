package toolchain

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Generation is the major ARM Compiler generation a configuration targets.
type Generation int

const (
	V5 Generation = 5
	V6 Generation = 6
)

// v6Prefix marks toolchain base identifiers of ARM Compiler 6.
const v6Prefix = "com.arm.toolchain.v6"

// String returns the short product name, "AC5" or "AC6".
func (g Generation) String() string {
	switch g {
	case V6:
		return "AC6"
	case V5:
		return "AC5"
	default:
		return fmt.Sprintf("AC%d", int(g))
	}
}

// MarshalText lets Generation appear by name in JSON output.
func (g Generation) MarshalText() ([]byte, error) {
	return []byte(g.String()), nil
}

// IsV6 reports whether the generation is ARM Compiler 6 or newer.
func (g Generation) IsV6() bool {
	return g >= V6
}

// Detect derives the generation from a toolchain base identifier.
func Detect(baseID string) Generation {
	if strings.HasPrefix(baseID, v6Prefix) {
		return V6
	}
	return V5
}

// FromVersion derives the generation from a compiler version such as "6.19"
// or "5.6.750". Versions with a major number of 6 or above are V6.
func FromVersion(version string) (Generation, error) {
	v, err := semver.NewVersion(strings.TrimSpace(version))
	if err != nil {
		return V5, fmt.Errorf("invalid compiler version %q: %w", version, err)
	}
	if v.Major() >= 6 {
		return V6, nil
	}
	return V5, nil
}

// Resolve picks the generation for a configuration. The toolchain identifier
// wins; the version is consulted only when no identifier is known. Without
// either the generation defaults to V5.
func Resolve(baseID, version string) (Generation, error) {
	if baseID != "" {
		return Detect(baseID), nil
	}
	if version != "" {
		return FromVersion(version)
	}
	return V5, nil
}
