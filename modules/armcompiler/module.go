// Package armcompiler registers the ARM Compiler 5 (armcc) and ARM Compiler 6
// (armclang) toolchains.
package armcompiler

import (
	"github.com/specialistvlad/rteopts/internal/armcc"
	"github.com/specialistvlad/rteopts/internal/registry"
)

// Toolchain identifier prefixes of the ARM Compiler plug-in.
const (
	AC5Prefix = "com.arm.toolchain.ac5"
	AC6Prefix = "com.arm.toolchain.v6"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register registers both compiler generations with the registry.
func (m *Module) Register(r *registry.Registry) {
	ac5 := armcc.Default()
	ac5.Name = "armcc"
	r.Register(AC5Prefix, ac5)

	ac6 := armcc.Default()
	ac6.Name = "armclang"
	r.Register(AC6Prefix, ac6)
}
