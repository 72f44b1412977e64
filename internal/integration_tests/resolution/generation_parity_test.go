package integration_tests

import (
	"testing"

	"github.com/specialistvlad/rteopts/internal/app"
	it "github.com/specialistvlad/rteopts/internal/integration_tests"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestResolution_GenerationParity resolves the same device for both compiler
// generations and checks every generation specific rule.
func TestResolution_GenerationParity(t *testing.T) {
	t.Parallel()

	settings := `
configuration "AC6" {
  toolchain = "com.arm.toolchain.v6.base"
  device {
    core   = "Cortex-M4"
    fpu    = "SP_FPU"
    endian = "Big-endian"
  }
  c_misc = "--C99 -O2 --C99"

  option "com.arm.toolchain.v6.base.options.target.cpu_fpu" {}
  option "com.arm.tool.c.compiler.v6.base.option.implicit.flags" {}
  option "com.arm.toolchain.v6.base.options.endian" {}
  option "com.arm.tool.c.compiler.v6.base.option.lang" {}
  option "com.arm.tool.c.compiler.v6.base.options.target.enableToolSpecificSettings" {}
}

configuration "AC5" {
  toolchain = "com.arm.toolchain.ac5"
  device {
    core   = "Cortex-M4"
    fpu    = "SP_FPU"
    endian = "Big-endian"
  }
  c_misc = "--C99 -O2 --C99"

  option "com.arm.toolchain.ac5.option.target.cpu_fpu" {}
  option "com.arm.tool.c.compiler.option.implicit.flags" {}
  option "com.arm.toolchain.ac5.option.endian" {}
  option "com.arm.tool.c.compile.option.lang" {}
  option "com.arm.tool.c.compiler.option.target.enableToolSpecificSettings" {}
}
`
	result := it.Run(t, map[string]string{"parity.hcl": settings}, app.Config{Format: "json"})
	require.NoError(t, result.Err)

	cfgs, values := decodeReport(t, result.Out)
	require.Len(t, cfgs, 2)
	assert.Equal(t, "AC6", cfgs[0].Generation)
	assert.Equal(t, "AC5", cfgs[1].Generation)

	ac6, ac5 := values[0], values[1]

	assert.Equal(t, "Cortex-M4.FPv4_SP_D16", ac6["com.arm.toolchain.v6.base.options.target.cpu_fpu"])
	assert.Equal(t, "Cortex-M4.FPv4_SP", ac5["com.arm.toolchain.ac5.option.target.cpu_fpu"])

	assert.Equal(t, []any{"-O2"}, ac6["com.arm.tool.c.compiler.v6.base.option.implicit.flags"])
	assert.Equal(t, []any{"--C99", "-O2", "--C99"}, ac5["com.arm.tool.c.compiler.option.implicit.flags"])

	assert.Equal(t, "com.arm.tool.c.compiler.v6.base.option.endian.big", ac6["com.arm.toolchain.v6.base.options.endian"])
	assert.Equal(t, "com.arm.tool.c.compiler.option.endian.big", ac5["com.arm.toolchain.ac5.option.endian"])

	assert.Equal(t, "com.arm.tool.c.compiler.v6.base.option.lang.c99", ac6["com.arm.tool.c.compiler.v6.base.option.lang"])
	assert.Equal(t, "com.arm.tool.c.compile.option.lang.c99", ac5["com.arm.tool.c.compile.option.lang"])

	assert.Equal(t, "0", ac6["com.arm.tool.c.compiler.v6.base.options.target.enableToolSpecificSettings"])
	assert.Equal(t, "0", ac5["com.arm.tool.c.compiler.option.target.enableToolSpecificSettings"])
}

// TestResolution_GenerationFromCompilerVersion covers configurations that
// name a compiler version instead of a toolchain.
func TestResolution_GenerationFromCompilerVersion(t *testing.T) {
	t.Parallel()

	settings := `
configurations:
  - name: Six
    compiler_version: "6.18"
  - name: Five
    compiler_version: "5.6.750"
  - name: Neither
`
	result := it.Run(t, map[string]string{"versions.yaml": settings}, app.Config{Format: "json"})
	require.NoError(t, result.Err)

	cfgs, _ := decodeReport(t, result.Out)
	require.Len(t, cfgs, 3)
	assert.Equal(t, "AC6", cfgs[0].Generation)
	assert.Equal(t, "AC5", cfgs[1].Generation)
	assert.Equal(t, "AC5", cfgs[2].Generation)
}
