// Package yaml_adapter is the YAML implementation of config.Loader. It reads
// `.yaml` and `.yml` settings files holding a top-level `configurations`
// sequence and translates them into the format-agnostic config.Model.
//
// The document layout mirrors the HCL one attribute for attribute, so the
// same project can be described in either format:
//
//	configurations:
//	  - name: Debug
//	    toolchain: com.arm.toolchain.v6.base
//	    device: {core: Cortex-M7, fpu: DP_FPU}
//	    c_misc: "--C99 -O0"
//	    memory:
//	      - {name: IROM1, start: 0x0, size: 0x40000, access: rx, startup: true}
//	    options:
//	      - id: com.arm.toolchain.v6.base.options.target.cpu_fpu
//	        value: Cortex-M7.NoFPU
//
// Unknown keys are rejected.
package yaml_adapter
