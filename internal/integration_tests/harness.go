package integration_tests

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/specialistvlad/rteopts/internal/app"
	"github.com/specialistvlad/rteopts/internal/registry"
	"github.com/specialistvlad/rteopts/internal/testutil"
	"github.com/stretchr/testify/require"
)

// Result holds the outcome of an integration test run.
type Result struct {
	Out       string
	LogOutput string
	Err       error
	// Dir is the temporary directory the files were written to.
	Dir string
}

// Run writes files into a temporary directory and runs an App configured by
// cfg against it. Relative SettingsPath, ScanFile and LinkerScriptDir values
// are resolved against that directory; an empty SettingsPath means the whole
// directory unless the run only scans or lists options.
func Run(t *testing.T, files map[string]string, cfg app.Config, modules ...registry.Module) *Result {
	t.Helper()

	dir := testutil.WriteFiles(t, files)
	within := func(p string) string {
		if p == "" || filepath.IsAbs(p) {
			return p
		}
		return filepath.Join(dir, p)
	}

	if cfg.SettingsPath == "" && cfg.ScanFile == "" && !cfg.ListOptions {
		cfg.SettingsPath = dir
	} else {
		cfg.SettingsPath = within(cfg.SettingsPath)
	}
	cfg.ScanFile = within(cfg.ScanFile)
	cfg.LinkerScriptDir = within(cfg.LinkerScriptDir)
	cfg.NoColor = true
	if cfg.LogLevel == "" {
		cfg.LogLevel = "debug"
	}

	appConfig, err := app.NewConfig(cfg)
	require.NoError(t, err)

	out := &bytes.Buffer{}
	logs := &testutil.SafeBuffer{}
	a := app.NewApp(out, logs, appConfig, app.DefaultLoader(), modules...)
	runErr := a.Run(context.Background())

	t.Cleanup(func() {
		if os.Getenv("RTEOPTS_TEST_LOGS") == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logs.String())
		}
	})

	return &Result{Out: out.String(), LogOutput: logs.String(), Err: runErr, Dir: dir}
}
