package config

import (
	"strings"

	"github.com/specialistvlad/rteopts/internal/option"
)

// Model is the unified, format-agnostic representation of one or more
// settings files.
type Model struct {
	Configurations []*Configuration
}

// Merge appends the configurations of other to m.
func (m *Model) Merge(other *Model) {
	if other == nil {
		return
	}
	m.Configurations = append(m.Configurations, other.Configurations...)
}

// Configuration is one build configuration of a project, e.g. "Debug".
type Configuration struct {
	Name string
	// Toolchain is the base identifier of the toolchain, e.g.
	// "com.arm.toolchain.v6.base".
	Toolchain       string
	CompilerVersion string
	Device          Device

	Defines      []string
	IncludePaths []string
	Libraries    []string
	LibraryPaths []string
	CMisc        []string
	AsmMisc      []string
	LinkerMisc   []string

	LinkerScript string
	UseMicrolib  *bool

	Memory  []MemoryRegion
	Options []OptionSlot

	// SourceFile is the settings file the configuration was read from.
	SourceFile string
}

// Device carries the device characteristics published by the device pack.
type Device struct {
	Name   string
	Core   string
	FPU    string
	Endian string
}

// MemoryRegion is a memory range of the device.
type MemoryRegion struct {
	Name  string
	Start uint64
	Size  uint64
	// Access lists the permitted accesses: "r", "w" and "x" in any order.
	Access string
	// Startup marks the region holding the reset vector.
	Startup bool
}

// ReadOnly reports whether the region cannot be written.
func (r MemoryRegion) ReadOnly() bool {
	return !strings.Contains(r.Access, "w")
}

// OptionSlot is a toolchain option to be resolved, together with the value it
// currently holds in the project.
type OptionSlot struct {
	ID      string
	Current option.Value
}
