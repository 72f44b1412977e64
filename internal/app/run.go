package app

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/specialistvlad/rteopts/internal/ctxlog"
	"github.com/specialistvlad/rteopts/internal/linkerscript"
	"github.com/specialistvlad/rteopts/internal/macroscan"
	"github.com/specialistvlad/rteopts/internal/option"
	"github.com/specialistvlad/rteopts/internal/resolver"
)

// MacroValue is the token the #define scanner reports.
const MacroValue macroscan.Token = "macro_value"

// Run executes the main application logic based on the provided configuration.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	if a.config.ListOptions {
		if err := a.report.Classifier(option.KnownIdentifiers()); err != nil {
			return fmt.Errorf("failed to write classifier table: %w", err)
		}
	}

	if a.config.ScanFile != "" {
		if err := a.scan(ctx, a.config.ScanFile); err != nil {
			return err
		}
	}

	if a.config.SettingsPath != "" {
		if err := a.resolve(ctx); err != nil {
			return err
		}
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}

func (a *App) scan(ctx context.Context, path string) error {
	logger := ctxlog.FromContext(ctx)

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file to scan: %w", err)
	}

	var opts []macroscan.RuleOption
	if a.config.Tabs {
		opts = append(opts, macroscan.WithTabSeparators())
	}
	matches := macroscan.FindAll(string(data), macroscan.NewMacroValueRule(MacroValue, opts...))
	logger.Info("Scan finished.", "file", path, "matches", len(matches))

	return a.report.Matches(path, matches)
}

func (a *App) resolve(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)

	model, err := a.loader.Load(ctx, a.config.SettingsPath)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}
	logger.Info("Settings loaded.", "configurations", len(model.Configurations))

	results, err := resolver.ResolveAll(ctx, model.Configurations, a.registry, a.config.WorkerCount)
	if err != nil {
		return fmt.Errorf("resolution failed: %w", err)
	}
	logger.Info("Options resolved.", "configurations", len(results))

	if err := a.report.Results(results); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	if a.config.LinkerScriptDir != "" {
		return a.writeLinkerScripts(ctx, results)
	}
	return nil
}

// writeLinkerScripts writes one linker script per configuration that has a
// read-only memory region.
func (a *App) writeLinkerScripts(ctx context.Context, results []resolver.Result) error {
	logger := ctxlog.FromContext(ctx)
	if err := os.MkdirAll(a.config.LinkerScriptDir, 0755); err != nil {
		return fmt.Errorf("failed to create linker script directory: %w", err)
	}

	for _, res := range results {
		rc := res.Context
		gen := rc.Strategy().LinkerScript(rc.Generation())

		var buf bytes.Buffer
		err := gen.Generate(&buf, rc.Memory())
		if errors.Is(err, linkerscript.ErrNoReadOnlyRegion) {
			logger.Warn("Skipping linker script.", "configuration", res.Configuration, "reason", err)
			continue
		}
		if err != nil {
			return fmt.Errorf("configuration '%s': %w", res.Configuration, err)
		}

		name := strings.ReplaceAll(res.Configuration, string(filepath.Separator), "_") + gen.Extension()
		path := filepath.Join(a.config.LinkerScriptDir, name)
		if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
			return fmt.Errorf("configuration '%s': %w", res.Configuration, err)
		}
		logger.Info("Linker script written.", "configuration", res.Configuration, "path", path)
	}
	return nil
}
