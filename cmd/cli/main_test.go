package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/specialistvlad/rteopts/internal/testutil"
	"github.com/stretchr/testify/require"
)

func TestRun_ResolvesSettings(t *testing.T) {
	t.Parallel()

	dir := testutil.WriteFiles(t, map[string]string{"project.hcl": testutil.CortexM7HCL})
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}

	err := run(context.Background(), out, errOut, []string{"-no-color", dir})

	require.NoError(t, err)
	require.Contains(t, out.String(), "Configuration Debug")
	require.Contains(t, out.String(), "Cortex-M7.FPv5_D16")
}

func TestRun_LoadError(t *testing.T) {
	t.Parallel()

	// A settings file with a syntax error fails during loading.
	tempDir := t.TempDir()
	filePath := filepath.Join(tempDir, "main.hcl")
	require.NoError(t, os.WriteFile(filePath, []byte("configuration \"Debug\" {\n"), 0600))

	err := run(context.Background(), &bytes.Buffer{}, &bytes.Buffer{}, []string{filePath})

	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to parse")
}

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	// The "-h" (help) flag should cause cli.Parse to return `shouldExit=true`.
	out := &bytes.Buffer{}
	err := run(context.Background(), out, &bytes.Buffer{}, []string{"-h"})

	require.NoError(t, err, "run() should return a nil error when shouldExit is true")
	require.Contains(t, out.String(), "Usage:", "Expected help text to be printed to the output buffer")
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	err := run(context.Background(), &bytes.Buffer{}, &bytes.Buffer{}, []string{"--this-is-not-a-valid-flag"})

	require.Error(t, err, "run() should return an error when argument parsing fails")
	require.Contains(t, err.Error(), "flag provided but not defined: -this-is-not-a-valid-flag")
}

func TestRun_ListOptions(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	err := run(context.Background(), out, &bytes.Buffer{}, []string{"-list-options", "-format", "json"})

	require.NoError(t, err)
	require.Contains(t, out.String(), `"kind": "cpu_fpu"`)
}
