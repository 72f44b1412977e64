package linkerscript

import (
	"fmt"
	"io"

	"github.com/specialistvlad/rteopts/internal/config"
	"github.com/specialistvlad/rteopts/internal/toolchain"
)

// ScatterFileGenerator writes armlink scatter-loading description files.
type ScatterFileGenerator struct {
	Generation toolchain.Generation
}

// NewScatterFileGenerator creates a scatter file generator for a compiler
// generation.
func NewScatterFileGenerator(gen toolchain.Generation) *ScatterFileGenerator {
	return &ScatterFileGenerator{Generation: gen}
}

// Extension implements Generator.
func (g *ScatterFileGenerator) Extension() string {
	return ".sct"
}

// Generate implements Generator. Code goes to the startup region, or to the
// first read-only region when none is marked; every writable region becomes
// an RW_ execution region.
func (g *ScatterFileGenerator) Generate(w io.Writer, regions []config.MemoryRegion) error {
	rom, ok := codeRegion(regions)
	if !ok {
		return ErrNoReadOnlyRegion
	}

	sw := &scatterWriter{w: w}
	sw.printf("; *************************************************************\n")
	sw.printf("; *** Scatter-Loading Description File generated by rteopts ***\n")
	sw.printf("; *************************************************************\n\n")

	sw.printf("LR_%s 0x%08X 0x%08X  {    ; load region size_region\n", rom.Name, rom.Start, rom.Size)
	sw.printf("  ER_%s 0x%08X 0x%08X  {  ; load address = execution address\n", rom.Name, rom.Start, rom.Size)
	sw.printf("   *.o (RESET, +First)\n")
	sw.printf("   *(InRoot$$Sections)\n")
	sw.printf("   .ANY (+RO)\n")
	if g.Generation.IsV6() {
		sw.printf("   .ANY (+XO)\n")
	}
	sw.printf("  }\n")
	for _, r := range regions {
		if r.ReadOnly() {
			continue
		}
		sw.printf("  RW_%s 0x%08X 0x%08X  {  ; RW data\n", r.Name, r.Start, r.Size)
		sw.printf("   .ANY (+RW +ZI)\n")
		sw.printf("  }\n")
	}
	sw.printf("}\n")

	return sw.err
}

func codeRegion(regions []config.MemoryRegion) (config.MemoryRegion, bool) {
	var first *config.MemoryRegion
	for i := range regions {
		r := &regions[i]
		if !r.ReadOnly() {
			continue
		}
		if r.Startup {
			return *r, true
		}
		if first == nil {
			first = r
		}
	}
	if first == nil {
		return config.MemoryRegion{}, false
	}
	return *first, true
}

// scatterWriter stops writing after the first error.
type scatterWriter struct {
	w   io.Writer
	err error
}

func (s *scatterWriter) printf(format string, args ...any) {
	if s.err != nil {
		return
	}
	_, s.err = fmt.Fprintf(s.w, format, args...)
}
