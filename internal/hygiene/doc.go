// Package hygiene provides programmatic verification of architectural invariants.
//
// This package contains tests that enforce layering constraints across the
// module. These tests serve as the authoritative gate for dependency hygiene;
// shell snippets in documentation are for convenience only.
//
// # Foundation Tier Import Rules
//
// The module has a tiered architecture where foundation packages must not
// import core or top tier packages:
//
//   - position: stdlib + golang.org/x/text/unicode/norm only
//   - token: stdlib + position only
//   - measure: stdlib + golang.org/x/text/width only
//   - item: stdlib + position only
//   - ferr: stdlib + position only
//   - jsonopt: stdlib + measure only
//
// Core and top tier packages that foundation packages must NOT import:
//
//   - scan, parse, widthpass, padtok, table, layout, linebuf
//   - nativevalue, jsonfmt
//   - cmd/*
//
// # Test Coverage
//
// [TestFoundationImports] verifies these constraints using `go list -deps -test`,
// which includes both production and test dependencies. This catches cases where
// test files violate layering even if production code is clean.
//
// Packages that don't exist yet are skipped. Once a foundation package is
// created, it will automatically be tested.
package hygiene
