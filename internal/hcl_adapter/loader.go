package hcl_adapter

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/rteopts/internal/config"
	"github.com/specialistvlad/rteopts/internal/ctxlog"
	"github.com/specialistvlad/rteopts/internal/fsutil"
)

// Extension is the file extension of HCL settings files.
const Extension = ".hcl"

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL configuration loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load parses every .hcl file under paths and translates the configuration
// blocks into the format-agnostic model.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	hclFiles, err := fsutil.FindFiles(paths, Extension)
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered HCL files.", "count", len(hclFiles))

	model := &config.Model{}
	parser := hclparse.NewParser()

	for _, file := range hclFiles {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}

		var root fileRoot
		diags = gohcl.DecodeBody(hclFile.Body, nil, &root)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
		}

		for _, c := range root.Configurations {
			cfg, err := l.translateConfiguration(ctx, c, file)
			if err != nil {
				return nil, fmt.Errorf("in HCL file %s: %w", file, err)
			}
			model.Configurations = append(model.Configurations, cfg)
		}
	}

	logger.Debug("HCL loading complete.", "configurations", len(model.Configurations))
	return model, nil
}
