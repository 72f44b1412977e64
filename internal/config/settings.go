package config

import (
	"strconv"

	"github.com/specialistvlad/rteopts/internal/option"
	"github.com/specialistvlad/rteopts/internal/settings"
)

// BuildSettings exposes the configuration through the read-only settings
// store the resolver consumes.
func (c *Configuration) BuildSettings() *settings.Store {
	opts := []settings.StoreOption{
		settings.WithDeviceAttribute(settings.CPUOption, c.Device.Core),
		settings.WithDeviceAttribute(settings.FPUOption, c.Device.FPU),
		settings.WithDeviceAttribute(settings.EndianOption, c.Device.Endian),
	}
	if c.UseMicrolib != nil {
		opts = append(opts, settings.WithString(option.UseMicrolib, strconv.FormatBool(*c.UseMicrolib)))
	}
	if c.LinkerScript != "" {
		opts = append(opts, settings.WithString(option.LinkerScript, c.LinkerScript))
	}
	if c.Device.Core != "" {
		opts = append(opts, settings.WithString(option.CPU, c.Device.Core))
	}
	if c.Device.FPU != "" {
		opts = append(opts, settings.WithString(option.FPU, c.Device.FPU))
	}

	lists := []struct {
		kind  option.Kind
		items []string
	}{
		{option.Defines, c.Defines},
		{option.IncludePath, c.IncludePaths},
		{option.Libraries, c.Libraries},
		{option.LibraryPaths, c.LibraryPaths},
		{option.CMisc, c.CMisc},
		{option.AsmMisc, c.AsmMisc},
		{option.LinkerMisc, c.LinkerMisc},
	}
	for _, l := range lists {
		if l.items != nil {
			opts = append(opts, settings.WithList(l.kind, l.items...))
		}
	}

	return settings.NewStore(opts...)
}
