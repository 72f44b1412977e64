// This file contains the gohcl schema of settings files.

package hcl_adapter

import "github.com/hashicorp/hcl/v2"

// fileRoot is a struct used to decode all possible top-level blocks from any file.
type fileRoot struct {
	Configurations []*Configuration `hcl:"configuration,block"`
	Remain         hcl.Body         `hcl:",remain"`
}

// Configuration is the HCL schema of a `configuration` block. The `device`
// block is left in Remain and decoded separately so that duplicates can be
// reported with their location.
type Configuration struct {
	Name            string   `hcl:"name,label"`
	Toolchain       string   `hcl:"toolchain,optional"`
	CompilerVersion string   `hcl:"compiler_version,optional"`
	Defines         []string `hcl:"defines,optional"`
	IncludePaths    []string `hcl:"include_paths,optional"`
	Libraries       []string `hcl:"libraries,optional"`
	LibraryPaths    []string `hcl:"library_paths,optional"`
	LinkerScript    string   `hcl:"linker_script,optional"`
	UseMicrolib     *bool    `hcl:"use_microlib,optional"`

	// Misc flags are a list of strings or one shell-quoted string.
	CMisc      hcl.Expression `hcl:"c_misc,optional"`
	AsmMisc    hcl.Expression `hcl:"asm_misc,optional"`
	LinkerMisc hcl.Expression `hcl:"linker_misc,optional"`

	Memory  []*Memory `hcl:"memory,block"`
	Options []*Option `hcl:"option,block"`
	Remain  hcl.Body  `hcl:",remain"`
}

// Device is the HCL schema of a `device` block.
type Device struct {
	Name   string `hcl:"name,optional"`
	Core   string `hcl:"core,optional"`
	FPU    string `hcl:"fpu,optional"`
	Endian string `hcl:"endian,optional"`
}

// Memory is the HCL schema of a `memory` block. Start and size accept numbers
// or strings such as "0x20000000".
type Memory struct {
	Name    string         `hcl:"name,label"`
	Start   hcl.Expression `hcl:"start"`
	Size    hcl.Expression `hcl:"size"`
	Access  string         `hcl:"access"`
	Startup bool           `hcl:"startup,optional"`
}

// Option is the HCL schema of an `option` block.
type Option struct {
	ID     string         `hcl:"id,label"`
	Value  *string        `hcl:"value,optional"`
	Values hcl.Expression `hcl:"values,optional"`
}

// deviceSchema picks the device blocks out of a configuration's remaining body.
var deviceSchema = &hcl.BodySchema{
	Blocks: []hcl.BlockHeaderSchema{{Type: "device"}},
}
