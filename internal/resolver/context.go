package resolver

import (
	"errors"
	"fmt"

	"github.com/specialistvlad/rteopts/internal/armcc"
	"github.com/specialistvlad/rteopts/internal/config"
	"github.com/specialistvlad/rteopts/internal/settings"
	"github.com/specialistvlad/rteopts/internal/toolchain"
)

// ErrNilConfiguration is returned when a pass is started without a
// configuration.
var ErrNilConfiguration = errors.New("configuration is nil")

// Context is the state of one resolution pass. It is immutable once built.
type Context struct {
	name       string
	toolchain  string
	generation toolchain.Generation
	settings   settings.BuildSettings
	strategy   armcc.Strategy
	memory     []config.MemoryRegion
}

// NewContext derives the compiler generation and build settings of cfg.
func NewContext(cfg *config.Configuration, strategy armcc.Strategy) (*Context, error) {
	if cfg == nil {
		return nil, ErrNilConfiguration
	}
	gen, err := toolchain.Resolve(cfg.Toolchain, cfg.CompilerVersion)
	if err != nil {
		return nil, fmt.Errorf("configuration '%s': %w", cfg.Name, err)
	}
	return &Context{
		name:       cfg.Name,
		toolchain:  cfg.Toolchain,
		generation: gen,
		settings:   cfg.BuildSettings(),
		strategy:   strategy,
		memory:     append([]config.MemoryRegion(nil), cfg.Memory...),
	}, nil
}

// Name returns the configuration name.
func (c *Context) Name() string { return c.name }

// Toolchain returns the toolchain base identifier.
func (c *Context) Toolchain() string { return c.toolchain }

// Generation returns the compiler generation of the pass.
func (c *Context) Generation() toolchain.Generation { return c.generation }

// Settings returns the read-only build settings of the pass.
func (c *Context) Settings() settings.BuildSettings { return c.settings }

// Strategy returns the toolchain strategy of the pass.
func (c *Context) Strategy() armcc.Strategy { return c.strategy }

// Memory returns a copy of the device memory map.
func (c *Context) Memory() []config.MemoryRegion {
	return append([]config.MemoryRegion(nil), c.memory...)
}

// RteOptions returns the attributes a component filter matches against. The
// "Toptions" attribute names the compiler generation, "AC5" or "AC6".
func RteOptions(c *Context) map[string]string {
	return map[string]string{"Toptions": c.generation.String()}
}
