package app

import (
	"github.com/specialistvlad/rteopts/internal/config"
	"github.com/specialistvlad/rteopts/internal/hcl_adapter"
	"github.com/specialistvlad/rteopts/internal/registry"
	"github.com/specialistvlad/rteopts/internal/yaml_adapter"
	"github.com/specialistvlad/rteopts/modules/armcompiler"
)

// coreModules is the definitive list of all toolchain modules that are
// compiled into the rteopts binary.
var coreModules = []registry.Module{
	&armcompiler.Module{},
}

// DefaultLoader returns a loader that reads HCL and YAML settings files.
func DefaultLoader() config.Loader {
	d := config.NewDispatcher()
	d.Register(hcl_adapter.NewLoader(), hcl_adapter.Extension)
	d.Register(yaml_adapter.NewLoader(), yaml_adapter.Extensions...)
	return d
}
