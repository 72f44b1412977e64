package app

import (
	"errors"
	"fmt"

	"github.com/specialistvlad/rteopts/internal/report"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	SettingsPath string // .hcl, .yaml or .yml files

	// ScanFile lists the #define directives of a source file.
	ScanFile string
	Tabs     bool

	ListOptions     bool
	LinkerScriptDir string

	Format      string
	NoColor     bool
	LogFormat   string
	LogLevel    string
	WorkerCount int
}

// NewConfig validates cfg and fills in defaults.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.SettingsPath == "" && cfg.ScanFile == "" && !cfg.ListOptions {
		return nil, errors.New("nothing to do: a settings path, a file to scan or -list-options is required")
	}
	if cfg.LinkerScriptDir != "" && cfg.SettingsPath == "" {
		return nil, errors.New("linker scripts can only be generated from a settings path")
	}

	if cfg.Format == "" {
		cfg.Format = string(report.Text)
	}
	if _, err := report.ParseFormat(cfg.Format); err != nil {
		return nil, err
	}

	if cfg.WorkerCount == 0 {
		cfg.WorkerCount = 1
	}
	if cfg.WorkerCount < 0 {
		return nil, fmt.Errorf("worker count must be positive, got %d", cfg.WorkerCount)
	}

	return &cfg, nil
}
