package testutil

// CortexM7HCL is an HCL settings file with one AC6 and one AC5
// configuration of a Cortex-M7 device.
const CortexM7HCL = `
configuration "Debug" {
  toolchain        = "com.arm.toolchain.v6.base"
  compiler_version = "6.19"

  device {
    name   = "ARMCM7_DP"
    core   = "Cortex-M7"
    fpu    = "DP_FPU"
    endian = "Little-endian"
  }

  defines       = ["ARMCM7_DP", "DEBUG=1"]
  include_paths = ["RTE/_Debug", "RTE/Device/ARMCM7_DP"]
  libraries     = ["/opt/cmsis/lib/arm_cortexM7lfdp_math.lib"]
  library_paths = ["/opt/cmsis/lib"]
  c_misc        = "--C99 -O0 '-DNAME=a b'"
  linker_script = "RTE/Device/ARMCM7_DP/ARMCM7_ac6.sct"
  use_microlib  = true

  memory "IROM1" {
    start   = 0
    size    = 262144
    access  = "rx"
    startup = true
  }

  memory "IRAM1" {
    start  = 536870912
    size   = 131072
    access = "rwx"
  }

  option "com.arm.toolchain.v6.base.options.target.cpu_fpu" {
    value = "Cortex-M7.NoFPU"
  }
  option "com.arm.tool.c.compiler.v6.base.option.implicit.flags" {
    values = ["--C99"]
  }
  option "com.arm.tool.c.compiler.v6.base.option.implicit.defmac" {}
  option "com.arm.tool.assembler.v6.base.option.implicit.incpath" {}
  option "com.arm.toolchain.v6.base.options.endian" {}
  option "com.arm.tool.c.compiler.v6.base.option.lang" {}
  option "com.vendor.unrelated.option" {}
}

configuration "Legacy" {
  toolchain = "com.arm.toolchain.ac5.exe"

  device {
    core = "Cortex-M3"
  }

  defines = ["STM32F103xB", "HSE_VALUE=8000000"]

  option "com.arm.tool.assembler.option.implicit.predefine" {}
  option "com.arm.toolchain.ac5.option.target.cpu_fpu" {}
  option "com.arm.tool.c.linker.implicit.libs" {}
}
`

// CortexM7YAML describes the same configurations as CortexM7HCL.
const CortexM7YAML = `
configurations:
  - name: Debug
    toolchain: com.arm.toolchain.v6.base
    compiler_version: "6.19"
    device:
      name: ARMCM7_DP
      core: Cortex-M7
      fpu: DP_FPU
      endian: Little-endian
    defines: [ARMCM7_DP, DEBUG=1]
    include_paths: [RTE/_Debug, RTE/Device/ARMCM7_DP]
    libraries: [/opt/cmsis/lib/arm_cortexM7lfdp_math.lib]
    library_paths: [/opt/cmsis/lib]
    c_misc: "--C99 -O0 '-DNAME=a b'"
    linker_script: RTE/Device/ARMCM7_DP/ARMCM7_ac6.sct
    use_microlib: true
    memory:
      - name: IROM1
        start: 0
        size: 0x40000
        access: rx
        startup: true
      - name: IRAM1
        start: 0x20000000
        size: 0x20000
        access: rwx
    options:
      - id: com.arm.toolchain.v6.base.options.target.cpu_fpu
        value: Cortex-M7.NoFPU
      - id: com.arm.tool.c.compiler.v6.base.option.implicit.flags
        values: ["--C99"]
      - id: com.arm.tool.c.compiler.v6.base.option.implicit.defmac
      - id: com.arm.tool.assembler.v6.base.option.implicit.incpath
      - id: com.arm.toolchain.v6.base.options.endian
      - id: com.arm.tool.c.compiler.v6.base.option.lang
      - id: com.vendor.unrelated.option

  - name: Legacy
    toolchain: com.arm.toolchain.ac5.exe
    device:
      core: Cortex-M3
    defines: [STM32F103xB, HSE_VALUE=8000000]
    options:
      - id: com.arm.tool.assembler.option.implicit.predefine
      - id: com.arm.toolchain.ac5.option.target.cpu_fpu
      - id: com.arm.tool.c.linker.implicit.libs
`
