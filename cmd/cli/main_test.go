package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/specialistvlad/pagegrid/internal/descriptor"
)

func TestRun_PrintsDescriptor(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	tempDir := t.TempDir()
	filePath := filepath.Join(tempDir, "site.hcl")
	err := os.WriteFile(filePath, []byte(`
build "site" {
  modules      = ["index", "article"]
  entry_dir    = "src/build"
  template_dir = "src/html"
}
`), 0600)
	require.NoError(t, err, "failed to set up test file")

	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}

	// --- Act ---
	err = run(context.Background(), out, errOut, []string{"--log-level", "warn", filePath})

	// --- Assert ---
	require.NoError(t, err)
	require.Contains(t, out.String(), `"common": "`+filepath.Join(tempDir, "src", "build", "common.js")+`"`)
	require.Contains(t, out.String(), `"html/article.html"`)
	require.Empty(t, errOut.String(), "warn level should keep info logs quiet")
}

func TestRun_ConfigurationError(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// An empty module list passes HCL decoding but cannot produce a descriptor.
	tempDir := t.TempDir()
	filePath := filepath.Join(tempDir, "site.hcl")
	err := os.WriteFile(filePath, []byte(`
build "site" {
  modules      = []
  entry_dir    = "src/build"
  template_dir = "src/html"
}
`), 0600)
	require.NoError(t, err, "failed to set up test file")

	// --- Act ---
	runErr := run(context.Background(), &bytes.Buffer{}, &bytes.Buffer{}, []string{filePath})

	// --- Assert ---
	var cfgErr *descriptor.ConfigurationError
	require.ErrorAs(t, runErr, &cfgErr)
	require.Equal(t, "invalid build configuration: module list is empty", runErr.Error())
}

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// The "-h" (help) flag should cause cli.Parse to return `shouldExit=true`.
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(context.Background(), out, &bytes.Buffer{}, []string{"-h"})

	// --- Assert ---
	require.NoError(t, err, "run() should return a nil error when shouldExit is true")
	require.Contains(t, out.String(), "Usage:", "Expected help text to be printed to the output buffer")
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	// --- Act ---
	err := run(context.Background(), &bytes.Buffer{}, &bytes.Buffer{}, []string{"--this-is-not-a-valid-flag"})

	// --- Assert ---
	require.Error(t, err, "run() should return an error when argument parsing fails")
	require.Contains(t, err.Error(), "unknown flag: --this-is-not-a-valid-flag")
}
