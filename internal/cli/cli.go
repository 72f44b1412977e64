package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/specialistvlad/rteopts/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("rteopts", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
rteopts - resolves ARM Compiler 5 and 6 toolchain options from device and
build settings.

Usage:
  rteopts [options] [SETTINGS_PATH]
  rteopts -scan FILE
  rteopts -list-options

Arguments:
  SETTINGS_PATH
    Path to a .hcl, .yaml or .yml settings file, or a directory containing them.

Options:
`)
		flagSet.PrintDefaults()
	}

	settingsFlag := flagSet.String("settings", "", "Path to the settings file or directory.")
	sFlag := flagSet.String("s", "", "Path to the settings file or directory (shorthand).")
	formatFlag := flagSet.String("format", "text", "Report format. Options: 'text' or 'json'.")
	noColorFlag := flagSet.Bool("no-color", false, "Disable colored text output.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "warn", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	workersFlag := flagSet.Int("workers", 4, "Number of configurations resolved concurrently.")
	scanFlag := flagSet.String("scan", "", "List the #define NAME VALUE directives of a source file.")
	tabsFlag := flagSet.Bool("tabs", false, "Accept tabs as separators when scanning.")
	listFlag := flagSet.Bool("list-options", false, "Print the known option identifiers and their kinds.")
	linkerScriptFlag := flagSet.String("linker-script", "", "Directory to write generated scatter files to.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	path := ""
	if *settingsFlag != "" {
		path = *settingsFlag
	} else if *sFlag != "" {
		path = *sFlag
	} else if flagSet.NArg() > 0 {
		path = flagSet.Arg(0)
	}
	slog.Debug("Settings path determined.", "path", path)

	if path == "" && *scanFlag == "" && !*listFlag {
		slog.Debug("Nothing to do, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		SettingsPath:    path,
		ScanFile:        *scanFlag,
		Tabs:            *tabsFlag,
		ListOptions:     *listFlag,
		LinkerScriptDir: *linkerScriptFlag,
		Format:          strings.ToLower(*formatFlag),
		NoColor:         *noColorFlag,
		LogFormat:       logFormat,
		LogLevel:        logLevel,
		WorkerCount:     *workersFlag,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
