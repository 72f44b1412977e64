package yaml_adapter

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/specialistvlad/rteopts/internal/config"
	"github.com/specialistvlad/rteopts/internal/ctxlog"
	"github.com/specialistvlad/rteopts/internal/fsutil"
	"github.com/specialistvlad/rteopts/internal/option"
	"gopkg.in/yaml.v3"
)

// Extensions are the file extensions of YAML settings files.
var Extensions = []string{".yaml", ".yml"}

// Loader is the YAML implementation of config.Loader.
type Loader struct{}

// NewLoader creates a new YAML configuration loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads every YAML settings file under paths.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("YAML loader started.", "path_count", len(paths))

	files, err := fsutil.FindFiles(paths, Extensions...)
	if err != nil {
		return nil, err
	}

	model := &config.Model{}
	for _, file := range files {
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", file, err)
		}

		var root fileRoot
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&root); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("failed to parse YAML file %s: %w", file, err)
		}

		for _, c := range root.Configurations {
			cfg, err := translateConfiguration(c, file)
			if err != nil {
				return nil, fmt.Errorf("in YAML file %s: %w", file, err)
			}
			model.Configurations = append(model.Configurations, cfg)
		}
		logger.Debug("YAML file decoded.", "file", file, "configurations", len(root.Configurations))
	}

	return model, nil
}

func translateConfiguration(c *Configuration, file string) (*config.Configuration, error) {
	if c == nil {
		return nil, errors.New("empty configuration entry")
	}

	cfg := &config.Configuration{
		Name:            c.Name,
		Toolchain:       c.Toolchain,
		CompilerVersion: c.CompilerVersion,
		Defines:         c.Defines,
		IncludePaths:    c.IncludePaths,
		Libraries:       c.Libraries,
		LibraryPaths:    c.LibraryPaths,
		CMisc:           c.CMisc,
		AsmMisc:         c.AsmMisc,
		LinkerMisc:      c.LinkerMisc,
		LinkerScript:    c.LinkerScript,
		UseMicrolib:     c.UseMicrolib,
		SourceFile:      file,
	}
	if c.Device != nil {
		cfg.Device = config.Device(*c.Device)
	}

	for _, m := range c.Memory {
		cfg.Memory = append(cfg.Memory, config.MemoryRegion{
			Name:    m.Name,
			Start:   uint64(m.Start),
			Size:    uint64(m.Size),
			Access:  m.Access,
			Startup: m.Startup,
		})
	}

	for _, o := range c.Options {
		slot := config.OptionSlot{ID: o.ID}
		switch {
		case o.Value != nil && o.Values != nil:
			return nil, fmt.Errorf("configuration '%s': option '%s': 'value' and 'values' are mutually exclusive", c.Name, o.ID)
		case o.Value != nil:
			slot.Current = option.Scalar(*o.Value)
		case o.Values != nil:
			slot.Current = option.List(*o.Values)
		}
		cfg.Options = append(cfg.Options, slot)
	}
	return cfg, nil
}
