package armcc

import (
	"errors"
	"fmt"

	"github.com/specialistvlad/rteopts/internal/linkerscript"
	"github.com/specialistvlad/rteopts/internal/option"
	"github.com/specialistvlad/rteopts/internal/toolchain"
)

// Strategy bundles the toolchain specific hooks of a resolution pass.
type Strategy struct {
	Name        string
	Classify    func(id string) option.Kind
	ShouldClear func(option.Kind) bool
	Synthesizer Synthesizer
	// LinkerScript returns the linker script generator for a generation.
	LinkerScript func(toolchain.Generation) linkerscript.Generator
}

// Default returns the ARM Compiler strategy shared by both generations.
func Default() Strategy {
	return Strategy{
		Name:        "armcc",
		Classify:    option.Classify,
		ShouldClear: option.ShouldClear,
		LinkerScript: func(gen toolchain.Generation) linkerscript.Generator {
			return linkerscript.NewScatterFileGenerator(gen)
		},
	}
}

// Validate reports missing hooks.
func (s Strategy) Validate() error {
	var errs []error
	if s.Name == "" {
		errs = append(errs, errors.New("strategy has no name"))
	}
	if s.Classify == nil {
		errs = append(errs, fmt.Errorf("strategy '%s' has no classifier", s.Name))
	}
	if s.ShouldClear == nil {
		errs = append(errs, fmt.Errorf("strategy '%s' has no list sanitizer", s.Name))
	}
	if s.LinkerScript == nil {
		errs = append(errs, fmt.Errorf("strategy '%s' has no linker script generator", s.Name))
	}
	return errors.Join(errs...)
}
