package app

import (
	"context"
	"io"
	"log/slog"

	"github.com/specialistvlad/rteopts/internal/config"
	"github.com/specialistvlad/rteopts/internal/ctxlog"
	"github.com/specialistvlad/rteopts/internal/registry"
	"github.com/specialistvlad/rteopts/internal/report"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	config   *Config
	logger   *slog.Logger
	registry *registry.Registry
	loader   config.Loader
	report   *report.Writer
}

// NewApp is the constructor for the main application. Reports go to outW and
// logs to logW. It returns a fully initialized App instance, including its
// own isolated logger and registry. With no modules given, the core modules
// are registered.
func NewApp(outW, logW io.Writer, appConfig *Config, loader config.Loader, modules ...registry.Module) *App {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, logW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	reg := registry.New()
	if len(modules) == 0 {
		modules = coreModules
	}
	for _, mod := range modules {
		mod.Register(reg)
	}
	logger.Debug("All toolchain modules registered.", "count", len(modules), "prefixes", reg.Prefixes())

	if err := reg.ValidateRegistry(ctx); err != nil {
		// This is a programmer error (a module with missing hooks), so we panic.
		panic(err)
	}
	logger.Debug("Registry validation passed.")

	// NewConfig has already validated the format.
	format, _ := report.ParseFormat(appConfig.Format)

	return &App{
		config:   appConfig,
		logger:   logger,
		registry: reg,
		loader:   loader,
		report:   report.New(outW, format, !appConfig.NoColor),
	}
}

// Registry returns the application's registry. This is primarily for testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}
