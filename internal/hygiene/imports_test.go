// Package hygiene provides programmatic verification of layering invariants.
package hygiene

import (
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// TestFoundationImports verifies that foundation tier packages do not import
// core or top tier packages. This test is the authoritative gate for
// dependency hygiene.
//
// Foundation tier packages and their constraints:
//   - position: stdlib + golang.org/x/text/unicode/norm only
//   - token: stdlib + position only
//   - measure: stdlib + golang.org/x/text/width only
//   - item: stdlib + position only
//   - ferr: stdlib + position only
//   - jsonopt: stdlib + measure only
//
// Core tier packages (scan, parse, widthpass, padtok, table, layout,
// linebuf) may depend on foundation packages and each other, but never on
// the top tier (nativevalue, jsonfmt) or cmd.
//
// The -test flag is used to include test dependencies, catching cases where
// test files violate layering even if production code is clean.
//
// Packages that don't exist yet are skipped. Once a foundation package is
// created, it will automatically be tested.
func TestFoundationImports(t *testing.T) {
	modRoot := findModuleRoot(t)
	modPath := getModulePath(t, modRoot)

	coreAndTop := []string{
		"/scan", "/parse", "/widthpass", "/padtok", "/table", "/layout",
		"/linebuf", "/nativevalue", "/jsonfmt", "/cmd",
	}

	cases := []struct {
		pkg             string   // relative to module root (without ./)
		forbiddenSuffix []string // suffixes to append to module path for forbidden imports
	}{
		{pkg: "position", forbiddenSuffix: append([]string{"/ferr", "/token", "/item", "/jsonopt", "/measure"}, coreAndTop...)},
		{pkg: "token", forbiddenSuffix: append([]string{"/ferr", "/item", "/jsonopt", "/measure"}, coreAndTop...)},
		{pkg: "measure", forbiddenSuffix: append([]string{"/ferr", "/token", "/item", "/jsonopt", "/position"}, coreAndTop...)},
		{pkg: "item", forbiddenSuffix: append([]string{"/ferr", "/token", "/jsonopt", "/measure"}, coreAndTop...)},
		{pkg: "ferr", forbiddenSuffix: append([]string{"/token", "/item", "/jsonopt", "/measure"}, coreAndTop...)},
		{pkg: "jsonopt", forbiddenSuffix: append([]string{"/ferr", "/token", "/item", "/position"}, coreAndTop...)},
	}

	for _, tc := range cases {
		t.Run(tc.pkg, func(t *testing.T) {
			pkgDir := filepath.Join(modRoot, tc.pkg)
			if _, err := os.Stat(pkgDir); os.IsNotExist(err) {
				t.Skipf("package %s not yet implemented", tc.pkg)
			}

			// Build full forbidden paths from module path + suffixes
			forbidden := make([]string, len(tc.forbiddenSuffix))
			for i, suffix := range tc.forbiddenSuffix {
				forbidden[i] = modPath + suffix
			}

			// -test includes test dependencies
			// Package path is validated against the cases table; not user input.
			ctx := t.Context()
			cmd := exec.CommandContext(ctx, "go", "list", "-deps", "-test", "-f", "{{.ImportPath}}", "./"+tc.pkg) //nolint:gosec // pkg is from test table, not user input
			cmd.Dir = modRoot

			out, err := cmd.Output()
			if err != nil {
				var exitErr *exec.ExitError
				if errors.As(err, &exitErr) {
					t.Fatalf("go list failed: %v\nstderr: %s", err, exitErr.Stderr)
				}
				t.Fatalf("go list failed: %v", err)
			}

			for imp := range strings.SplitSeq(strings.TrimSpace(string(out)), "\n") {
				for _, forbiddenPath := range forbidden {
					if strings.Contains(imp, forbiddenPath) {
						t.Errorf("forbidden import %q in %s", imp, tc.pkg)
					}
				}
			}
		})
	}
}

// findModuleRoot locates the module root from the test's location.
func findModuleRoot(t *testing.T) string {
	t.Helper()
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("unable to determine test file location")
	}
	// imports_test.go is in internal/hygiene/
	// walk up to module root
	return filepath.Join(filepath.Dir(file), "..", "..")
}

// getModulePath returns the module path by invoking 'go list -m'.
func getModulePath(t *testing.T, modRoot string) string {
	t.Helper()
	ctx := t.Context()
	cmd := exec.CommandContext(ctx, "go", "list", "-m", "-f", "{{.Path}}")
	cmd.Dir = modRoot
	out, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			t.Fatalf("go list -m failed: %v\nstderr: %s", err, exitErr.Stderr)
		}
		t.Fatalf("go list -m failed: %v", err)
	}
	return strings.TrimSpace(string(out))
}
