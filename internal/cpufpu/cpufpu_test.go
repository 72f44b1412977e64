package cpufpu

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/specialistvlad/rteopts/internal/settings"
	"github.com/specialistvlad/rteopts/internal/toolchain"
	"github.com/stretchr/testify/assert"
)

func TestFPUSuffix_Golden(t *testing.T) {
	const (
		sp = settings.SPFPU
		dp = settings.DPFPU
	)
	testCases := []struct {
		core     string
		fpu      string
		gen      toolchain.Generation
		expected string
	}{
		{"Cortex-M4", sp, toolchain.V5, "FPv4_SP"},
		{"Cortex-M4", dp, toolchain.V5, "FPv4_SP"},
		{"Cortex-M4", sp, toolchain.V6, "FPv4_SP_D16"},
		{"Cortex-M4", dp, toolchain.V6, "FPv4_SP_D16"},

		{"Cortex-M7", sp, toolchain.V5, "FPv5_SP"},
		{"Cortex-M7", dp, toolchain.V5, "FPv5_D16"},
		{"Cortex-M7", sp, toolchain.V6, "FPv5_SP_D16"},
		{"Cortex-M7", dp, toolchain.V6, "FPv5_D16"},

		{"Cortex-R4", sp, toolchain.V5, "VFPv3_D16"},
		{"Cortex-R5", dp, toolchain.V6, "VFPv3_D16"},
		{"Cortex-R7", sp, toolchain.V6, "VFPv3_D16_FP16"},
		{"Cortex-R8", dp, toolchain.V5, "VFPv3_D16_FP16"},

		{"Cortex-A5", sp, toolchain.V5, "VFPv4.Neon"},
		{"Cortex-A5", dp, toolchain.V5, "VFPv4_D16"},
		{"Cortex-A7", sp, toolchain.V6, "VFPv4.Neon"},
		{"Cortex-A7", dp, toolchain.V6, "VFPv4"},
		{"Cortex-A53", dp, toolchain.V5, "VFPv4_D16"},
		{"Cortex-A57", dp, toolchain.V6, "VFPv4"},
		{"Cortex-A72", sp, toolchain.V6, "VFPv4.Neon"},

		{"Cortex-A8", sp, toolchain.V5, "VFPv3"},
		{"Cortex-A8", dp, toolchain.V5, "VFPv3"},
		{"Cortex-A8", sp, toolchain.V6, "VFPv3.Neon"},
		{"Cortex-A8", dp, toolchain.V6, "VFPv3.Neon"},

		{"Cortex-A9", sp, toolchain.V5, "VFPv3_FP16.Neon"},
		{"Cortex-A9", dp, toolchain.V5, "VFPv3_D16_FP16"},
		{"Cortex-A9", sp, toolchain.V6, "VFPv3_FP16.Neon"},
		{"Cortex-A9", dp, toolchain.V6, "VFPv3_D16_FP16"},

		{"Cortex-A15", sp, toolchain.V5, "VFPv4.Neon"},
		{"Cortex-A15", dp, toolchain.V5, "VFPv4_D16"},
		{"Cortex-A15", sp, toolchain.V6, "VFPv4.Neon"},
		{"Cortex-A15", dp, toolchain.V6, "VFPv4_D16"},

		{"Cortex-A12", dp, toolchain.V6, "VFPv4.Neon"},
		{"Cortex-A17", sp, toolchain.V5, "VFPv4.Neon"},

		{"ARMV8MML", sp, toolchain.V5, "FPv5_D16"},
		{"ARMV8MML", dp, toolchain.V6, "FPv5_D16"},

		{"Cortex-M4", "FPU", toolchain.V5, "FPv4_SP"},
		{"Cortex-M7", "1", toolchain.V6, "FPv5_SP_D16"},

		{"Cortex-M3", sp, toolchain.V5, NoFPU},
		{"Cortex-M0+", dp, toolchain.V6, NoFPU},
		{"ARMV8MBL", sp, toolchain.V6, NoFPU},
		{"Cortex-M33", sp, toolchain.V6, NoFPU},
		{"Cortex-M4", settings.NoFPU, toolchain.V6, NoFPU},
	}

	for _, tc := range testCases {
		t.Run(tc.core+"/"+tc.fpu+"/"+tc.gen.String(), func(t *testing.T) {
			assert.Equal(t, tc.expected, FPUSuffix(tc.core, tc.fpu, true, tc.gen))
		})
	}
}

func TestFPUSuffix_AbsentFPUIsNoFPU(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	cores := make([]interface{}, 0, len(suffixes))
	for core := range suffixes {
		cores = append(cores, core)
	}

	properties.Property("known cores without fpu attribute", prop.ForAll(
		func(core string, v6 bool) bool {
			g := toolchain.V5
			if v6 {
				g = toolchain.V6
			}
			return FPUSuffix(core, "", false, g) == NoFPU
		},
		gen.OneConstOf(cores...),
		gen.Bool(),
	))

	properties.Property("arbitrary cores without fpu attribute", prop.ForAll(
		func(core, fpu string) bool {
			return FPUSuffix(core, fpu, false, toolchain.V6) == NoFPU
		},
		gen.AnyString(),
		gen.AnyString(),
	))

	properties.TestingRun(t)
}

func TestNormalizePrefix(t *testing.T) {
	testCases := []struct {
		core     string
		expected string
	}{
		{"Cortex-M0+", "Cortex-M0.Plus"},
		{"ARMV8MBL", "Generic.ARMv8-M.Base"},
		{"ARMV8MML", "Generic.ARMv8-M.Main"},
		{"Cortex-M4", "Cortex-M4"},
		{"Cortex-A9", "Cortex-A9"},
		{"", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.core, func(t *testing.T) {
			assert.Equal(t, tc.expected, NormalizePrefix(tc.core))
		})
	}
}

func TestComposeOption(t *testing.T) {
	testCases := []struct {
		name     string
		settings settings.BuildSettings
		current  string
		gen      toolchain.Generation
		expected string
		ok       bool
	}{
		{
			name:     "no settings",
			settings: nil,
			gen:      toolchain.V5,
		},
		{
			name:     "no core",
			settings: settings.NewStore(settings.WithDeviceAttribute(settings.FPUOption, settings.SPFPU)),
			gen:      toolchain.V5,
		},
		{
			name: "m7 double precision v6",
			settings: settings.NewStore(
				settings.WithDeviceAttribute(settings.CPUOption, "Cortex-M7"),
				settings.WithDeviceAttribute(settings.FPUOption, settings.DPFPU),
			),
			gen:      toolchain.V6,
			expected: "Cortex-M7.FPv5_D16",
			ok:       true,
		},
		{
			name:     "m0 plus without fpu",
			settings: settings.NewStore(settings.WithDeviceAttribute(settings.CPUOption, "Cortex-M0+")),
			gen:      toolchain.V5,
			expected: "Cortex-M0.Plus.NoFPU",
			ok:       true,
		},
		{
			name: "m4 overrides current value",
			settings: settings.NewStore(
				settings.WithDeviceAttribute(settings.CPUOption, "Cortex-M4"),
				settings.WithDeviceAttribute(settings.FPUOption, settings.SPFPU),
			),
			current:  "Cortex-M4.NoFPU",
			gen:      toolchain.V5,
			expected: "Cortex-M4.FPv4_SP",
			ok:       true,
		},
		{
			name: "cortex-a keeps current variant",
			settings: settings.NewStore(
				settings.WithDeviceAttribute(settings.CPUOption, "Cortex-A9"),
				settings.WithDeviceAttribute(settings.FPUOption, settings.DPFPU),
			),
			current: "Cortex-A9.VFPv3_FP16.Neon",
			gen:     toolchain.V6,
		},
		{
			name: "cortex-a with foreign current value",
			settings: settings.NewStore(
				settings.WithDeviceAttribute(settings.CPUOption, "Cortex-A9"),
				settings.WithDeviceAttribute(settings.FPUOption, settings.DPFPU),
			),
			current:  "Cortex-M4.FPv4_SP",
			gen:      toolchain.V6,
			expected: "Cortex-A9.VFPv3_D16_FP16",
			ok:       true,
		},
		{
			name: "cortex-a keeps bare core value",
			settings: settings.NewStore(
				settings.WithDeviceAttribute(settings.CPUOption, "Cortex-A9"),
				settings.WithDeviceAttribute(settings.FPUOption, settings.DPFPU),
			),
			current: "Cortex-A9",
			gen:     toolchain.V6,
		},
		{
			name: "cortex-a5 replaces a cortex-a53 value",
			settings: settings.NewStore(
				settings.WithDeviceAttribute(settings.CPUOption, "Cortex-A5"),
				settings.WithDeviceAttribute(settings.FPUOption, settings.DPFPU),
			),
			current:  "Cortex-A53.VFPv4",
			gen:      toolchain.V5,
			expected: "Cortex-A5.VFPv4_D16",
			ok:       true,
		},
		{
			name:     "generic main keeps current variant",
			settings: settings.NewStore(settings.WithDeviceAttribute(settings.CPUOption, "ARMV8MML")),
			current:  "Generic.ARMv8-M.Main.DSP",
			gen:      toolchain.V6,
		},
		{
			name: "generic main without current value",
			settings: settings.NewStore(
				settings.WithDeviceAttribute(settings.CPUOption, "ARMV8MML"),
				settings.WithDeviceAttribute(settings.FPUOption, settings.SPFPU),
			),
			gen:      toolchain.V6,
			expected: "Generic.ARMv8-M.Main.FPv5_D16",
			ok:       true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ComposeOption(tc.settings, tc.current, tc.gen)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.expected, got)
		})
	}
}
