package config

import (
	"context"
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/specialistvlad/rteopts/internal/ctxlog"
	"github.com/specialistvlad/rteopts/internal/fsutil"
)

// Dispatcher is a Loader that hands every discovered file to the Loader
// registered for its extension. Configurations keep the order of the files
// they came from.
type Dispatcher struct {
	loaders map[string]Loader
}

// NewDispatcher creates a Dispatcher without any registered formats.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{loaders: make(map[string]Loader)}
}

// Register binds a loader to one or more file extensions such as ".hcl".
func (d *Dispatcher) Register(l Loader, extensions ...string) {
	for _, ext := range extensions {
		if _, exists := d.loaders[ext]; exists {
			panic(fmt.Sprintf("loader for extension '%s' already registered", ext))
		}
		d.loaders[ext] = l
	}
}

// Extensions returns the registered extensions, sorted.
func (d *Dispatcher) Extensions() []string {
	exts := make([]string, 0, len(d.loaders))
	for ext := range d.loaders {
		exts = append(exts, ext)
	}
	slices.Sort(exts)
	return exts
}

// Load implements Loader. The merged model is validated before it is
// returned.
func (d *Dispatcher) Load(ctx context.Context, paths ...string) (*Model, error) {
	logger := ctxlog.FromContext(ctx)
	exts := d.Extensions()

	files, err := fsutil.FindFiles(paths, exts...)
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered settings files.", "count", len(files), "extensions", exts)

	model := &Model{}
	for _, file := range files {
		ext := filepath.Ext(file)
		loader, ok := d.loaders[ext]
		if !ok {
			return nil, fmt.Errorf("unsupported settings file %s: extension must be one of %s", file, strings.Join(exts, ", "))
		}
		m, err := loader.Load(ctx, file)
		if err != nil {
			return nil, err
		}
		logger.Debug("Settings file loaded.", "file", file, "configurations", len(m.Configurations))
		model.Merge(m)
	}

	if err := model.Validate(); err != nil {
		return nil, err
	}
	logger.Debug("Settings loading complete.", "files", len(files), "configurations", len(model.Configurations))
	return model, nil
}
