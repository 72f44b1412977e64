package linkerscript

import (
	"errors"
	"io"

	"github.com/specialistvlad/rteopts/internal/config"
)

// ErrNoReadOnlyRegion is returned when the memory map offers no region to
// place code in.
var ErrNoReadOnlyRegion = errors.New("memory map has no read-only region")

// Generator writes a linker script for a memory map.
type Generator interface {
	Generate(w io.Writer, regions []config.MemoryRegion) error
	// Extension is the file extension of generated scripts, e.g. ".sct".
	Extension() string
}
