package resolver

import (
	"context"
	"fmt"

	"github.com/specialistvlad/rteopts/internal/armcc"
	"github.com/specialistvlad/rteopts/internal/config"
	"github.com/specialistvlad/rteopts/internal/ctxlog"
	"github.com/specialistvlad/rteopts/internal/option"
	"github.com/specialistvlad/rteopts/internal/toolchain"
	"golang.org/x/sync/errgroup"
)

// StrategySource hands out the strategy for a toolchain base identifier.
type StrategySource interface {
	Lookup(baseID string) armcc.Strategy
}

// Result is the outcome of resolving one configuration.
type Result struct {
	Configuration string               `json:"configuration"`
	Toolchain     string               `json:"toolchain"`
	Generation    toolchain.Generation `json:"generation"`
	Strategy      string               `json:"strategy"`
	RteOptions    map[string]string    `json:"rte_options"`
	Options       []option.Resolved    `json:"options"`

	// Context is the pass the result was produced by.
	Context *Context `json:"-"`
}

// ResolveAll resolves every configuration with at most workers passes in
// flight. Results are returned in the order of cfgs. The first failure
// cancels the remaining passes.
func ResolveAll(ctx context.Context, cfgs []*config.Configuration, src StrategySource, workers int) ([]Result, error) {
	if workers < 1 {
		workers = 1
	}
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Resolving configurations.", "count", len(cfgs), "workers", workers)

	results := make([]Result, len(cfgs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, cfg := range cfgs {
		g.Go(func() error {
			if cfg == nil {
				return fmt.Errorf("configuration #%d: %w", i, ErrNilConfiguration)
			}
			cctx, clog := ctxlog.With(gctx, "configuration", cfg.Name)

			strategy := src.Lookup(cfg.Toolchain)
			rc, err := NewContext(cfg, strategy)
			if err != nil {
				return err
			}
			opts, err := Resolve(cctx, rc, cfg.Options)
			if err != nil {
				return fmt.Errorf("configuration '%s': %w", cfg.Name, err)
			}

			results[i] = Result{
				Configuration: cfg.Name,
				Toolchain:     cfg.Toolchain,
				Generation:    rc.Generation(),
				Strategy:      strategy.Name,
				RteOptions:    RteOptions(rc),
				Options:       opts,
				Context:       rc,
			}
			clog.Debug("Configuration resolved.", "strategy", strategy.Name, "options", len(opts))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
