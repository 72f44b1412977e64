// Package cpufpu maps a device's core and FPU attributes to the value of the
// ARM Compiler "cpu_fpu" target option, e.g. "Cortex-M7.FPv5_D16".
package cpufpu

import (
	"strings"

	"github.com/specialistvlad/rteopts/internal/settings"
	"github.com/specialistvlad/rteopts/internal/toolchain"
)

// NoFPU is the suffix selected when the core has no floating-point unit.
const NoFPU = "NoFPU"

const (
	cortexAPrefix = "Cortex-A"
	genericPrefix = "Generic"
)

// variants holds the suffix for each generation and precision.
type variants struct {
	v5SP, v5DP, v6SP, v6DP string
}

func same(s string) variants {
	return variants{s, s, s, s}
}

var suffixes = map[string]variants{
	"Cortex-M4":  {v5SP: "FPv4_SP", v5DP: "FPv4_SP", v6SP: "FPv4_SP_D16", v6DP: "FPv4_SP_D16"},
	"Cortex-M7":  {v5SP: "FPv5_SP", v5DP: "FPv5_D16", v6SP: "FPv5_SP_D16", v6DP: "FPv5_D16"},
	"Cortex-R4":  same("VFPv3_D16"),
	"Cortex-R5":  same("VFPv3_D16"),
	"Cortex-R7":  same("VFPv3_D16_FP16"),
	"Cortex-R8":  same("VFPv3_D16_FP16"),
	"Cortex-A5":  {v5SP: "VFPv4.Neon", v5DP: "VFPv4_D16", v6SP: "VFPv4.Neon", v6DP: "VFPv4"},
	"Cortex-A7":  {v5SP: "VFPv4.Neon", v5DP: "VFPv4_D16", v6SP: "VFPv4.Neon", v6DP: "VFPv4"},
	"Cortex-A53": {v5SP: "VFPv4.Neon", v5DP: "VFPv4_D16", v6SP: "VFPv4.Neon", v6DP: "VFPv4"},
	"Cortex-A57": {v5SP: "VFPv4.Neon", v5DP: "VFPv4_D16", v6SP: "VFPv4.Neon", v6DP: "VFPv4"},
	"Cortex-A72": {v5SP: "VFPv4.Neon", v5DP: "VFPv4_D16", v6SP: "VFPv4.Neon", v6DP: "VFPv4"},
	"Cortex-A8":  {v5SP: "VFPv3", v5DP: "VFPv3", v6SP: "VFPv3.Neon", v6DP: "VFPv3.Neon"},
	"Cortex-A9":  {v5SP: "VFPv3_FP16.Neon", v5DP: "VFPv3_D16_FP16", v6SP: "VFPv3_FP16.Neon", v6DP: "VFPv3_D16_FP16"},
	"Cortex-A15": {v5SP: "VFPv4.Neon", v5DP: "VFPv4_D16", v6SP: "VFPv4.Neon", v6DP: "VFPv4_D16"},
	"Cortex-A12": same("VFPv4.Neon"),
	"Cortex-A17": same("VFPv4.Neon"),
	"ARMV8MML":   same("FPv5_D16"),
}

// Cores that are never built with an FPU.
var noFPUCores = map[string]struct{}{
	"Cortex-M0":  {},
	"Cortex-M0+": {},
	"Cortex-M1":  {},
	"Cortex-M3":  {},
	"Cortex-M23": {},
	"SC000":      {},
	"SC300":      {},
	"ARMV8MBL":   {},
}

var prefixes = map[string]string{
	"Cortex-M0+": "Cortex-M0.Plus",
	"ARMV8MBL":   genericPrefix + ".ARMv8-M.Base",
	"ARMV8MML":   genericPrefix + ".ARMv8-M.Main",
}

// HasFPU reports whether the core can carry an FPU at all.
func HasFPU(core string) bool {
	_, none := noFPUCores[core]
	return !none
}

// FPUSuffix returns the FPU part of the option value for a core.
//
// hasFPU is false when the device declares no FPU attribute. An fpu value of
// settings.NoFPU, an FPU-less core, or a core missing from the table all yield
// NoFPU. settings.DPFPU selects double precision; any other value is treated
// as single precision.
func FPUSuffix(core, fpu string, hasFPU bool, gen toolchain.Generation) string {
	if !hasFPU || fpu == settings.NoFPU || !HasFPU(core) {
		return NoFPU
	}
	v, ok := suffixes[core]
	if !ok {
		return NoFPU
	}

	dp := fpu == settings.DPFPU
	switch {
	case gen.IsV6() && dp:
		return v.v6DP
	case gen.IsV6():
		return v.v6SP
	case dp:
		return v.v5DP
	default:
		return v.v5SP
	}
}

// NormalizePrefix rewrites the core spellings the toolchain names differently.
// All other names pass through unchanged.
func NormalizePrefix(core string) string {
	if p, ok := prefixes[core]; ok {
		return p
	}
	return core
}

// ComposeOption builds the cpu_fpu option value from the device attributes.
//
// It reports false, meaning "leave the option alone", when the device has no
// core, or when a Cortex-A or generic ARMv8-M core is already selected in
// current. The core must match a whole name segment of current, so
// Cortex-A5 does not keep a Cortex-A53 value. The IDE offers several variants for those families and a user's
// choice among them is kept.
func ComposeOption(s settings.BuildSettings, current string, gen toolchain.Generation) (string, bool) {
	core, ok := settings.DeviceAttribute(settings.CPUOption, s)
	if !ok || core == "" {
		return "", false
	}

	value := NormalizePrefix(core)
	if strings.HasPrefix(value, cortexAPrefix) || strings.HasPrefix(value, genericPrefix) {
		if current == value || strings.HasPrefix(current, value+".") {
			return "", false
		}
	}

	fpu, hasFPU := settings.DeviceAttribute(settings.FPUOption, s)
	if suffix := FPUSuffix(core, fpu, hasFPU, gen); suffix != "" {
		value += "." + suffix
	}
	return value, true
}
