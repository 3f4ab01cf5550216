package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRunFormatsStdin(t *testing.T) {
	var out bytes.Buffer
	code := run(nil, strings.NewReader(`{"a":1}`), &out)
	require.Equal(t, 0, code)
	require.Equal(t, "{ \"a\": 1 }\n", out.String())
}

func TestRunReportsMalformedStdin(t *testing.T) {
	var out bytes.Buffer
	code := run(nil, strings.NewReader(`{"a":}`), &out)
	require.Equal(t, 1, code)
	require.Empty(t, out.String())
}

func TestRunFormatsFileArgument(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "in.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"a":1}`), 0o644))

	var out bytes.Buffer
	code := run([]string{path}, strings.NewReader(""), &out)
	require.Equal(t, 0, code)
	require.Equal(t, "{ \"a\": 1 }\n", out.String())
}

func TestRunInPlaceRewritesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "in.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"a":1}`), 0o644))

	var out bytes.Buffer
	code := run([]string{"-i", path}, strings.NewReader(""), &out)
	require.Equal(t, 0, code)
	require.Empty(t, out.String())

	rewritten, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "{ \"a\": 1 }\n", string(rewritten))
}

func TestRunMissingFileReturnsNonZero(t *testing.T) {
	var out bytes.Buffer
	code := run([]string{"/nonexistent/path/does-not-exist.json"}, strings.NewReader(""), &out)
	require.Equal(t, 1, code)
}

func TestRunUnknownFlagReturnsUsageExitCode(t *testing.T) {
	var out bytes.Buffer
	code := run([]string{"-bogus"}, strings.NewReader(""), &out)
	require.Equal(t, 2, code)
}
