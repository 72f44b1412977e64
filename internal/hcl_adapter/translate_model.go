// This file contains the logic for translating HCL schema structs into the
// format-agnostic configuration model defined in the config package.

package hcl_adapter

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/specialistvlad/rteopts/internal/config"
	"github.com/specialistvlad/rteopts/internal/ctxlog"
	"github.com/specialistvlad/rteopts/internal/option"
)

// translateConfiguration converts the HCL-specific configuration schema into the agnostic model.
func (l *Loader) translateConfiguration(ctx context.Context, c *Configuration, file string) (*config.Configuration, error) {
	ctx, logger := ctxlog.With(ctx, "configuration", c.Name)
	logger.Debug("Translating HCL configuration to internal config model.")

	cfg := &config.Configuration{
		Name:            c.Name,
		Toolchain:       c.Toolchain,
		CompilerVersion: c.CompilerVersion,
		Defines:         c.Defines,
		IncludePaths:    c.IncludePaths,
		Libraries:       c.Libraries,
		LibraryPaths:    c.LibraryPaths,
		LinkerScript:    c.LinkerScript,
		UseMicrolib:     c.UseMicrolib,
		SourceFile:      file,
	}

	device, err := translateDevice(c)
	if err != nil {
		return nil, err
	}
	cfg.Device = device

	if cfg.CMisc, err = stringList(ctx, c.CMisc, "c_misc", true); err != nil {
		return nil, fmt.Errorf("configuration '%s': %w", c.Name, err)
	}
	if cfg.AsmMisc, err = stringList(ctx, c.AsmMisc, "asm_misc", true); err != nil {
		return nil, fmt.Errorf("configuration '%s': %w", c.Name, err)
	}
	if cfg.LinkerMisc, err = stringList(ctx, c.LinkerMisc, "linker_misc", true); err != nil {
		return nil, fmt.Errorf("configuration '%s': %w", c.Name, err)
	}

	for _, m := range c.Memory {
		region, err := translateMemory(m)
		if err != nil {
			return nil, fmt.Errorf("configuration '%s': %w", c.Name, err)
		}
		cfg.Memory = append(cfg.Memory, region)
	}

	for _, o := range c.Options {
		slot, err := translateOption(ctx, o)
		if err != nil {
			return nil, fmt.Errorf("configuration '%s': %w", c.Name, err)
		}
		cfg.Options = append(cfg.Options, slot)
	}

	logger.Debug("HCL configuration translated.", "options", len(cfg.Options), "memory_regions", len(cfg.Memory))
	return cfg, nil
}

// translateDevice decodes the optional, unique `device` block.
func translateDevice(c *Configuration) (config.Device, error) {
	if c.Remain == nil {
		return config.Device{}, nil
	}
	content, diags := c.Remain.Content(deviceSchema)
	if diags.HasErrors() {
		return config.Device{}, fmt.Errorf("configuration '%s': %w", c.Name, diags)
	}
	block, diags := FindUniqueBlock(content.Blocks, "device")
	if diags.HasErrors() {
		return config.Device{}, fmt.Errorf("configuration '%s': %w", c.Name, diags)
	}
	if block == nil {
		return config.Device{}, nil
	}

	var d Device
	if diags := gohcl.DecodeBody(block.Body, nil, &d); diags.HasErrors() {
		return config.Device{}, fmt.Errorf("configuration '%s': %w", c.Name, diags)
	}
	return config.Device{Name: d.Name, Core: d.Core, FPU: d.FPU, Endian: d.Endian}, nil
}

func translateMemory(m *Memory) (config.MemoryRegion, error) {
	start, err := address(m.Start, "start")
	if err != nil {
		return config.MemoryRegion{}, fmt.Errorf("memory '%s': %w", m.Name, err)
	}
	size, err := address(m.Size, "size")
	if err != nil {
		return config.MemoryRegion{}, fmt.Errorf("memory '%s': %w", m.Name, err)
	}
	return config.MemoryRegion{
		Name:    m.Name,
		Start:   start,
		Size:    size,
		Access:  m.Access,
		Startup: m.Startup,
	}, nil
}

// translateOption reads the current value of an option slot: a scalar
// `value`, a list `values`, or neither.
func translateOption(ctx context.Context, o *Option) (config.OptionSlot, error) {
	values, err := stringList(ctx, o.Values, "values", false)
	if err != nil {
		return config.OptionSlot{}, fmt.Errorf("option '%s': %w", o.ID, err)
	}
	hasValues := isExprDefined(ctx, o.Values, "values")

	slot := config.OptionSlot{ID: o.ID}
	switch {
	case o.Value != nil && hasValues:
		return config.OptionSlot{}, fmt.Errorf("option '%s': 'value' and 'values' are mutually exclusive", o.ID)
	case o.Value != nil:
		slot.Current = option.Scalar(*o.Value)
	case hasValues:
		slot.Current = option.List(values)
	}
	return slot, nil
}
