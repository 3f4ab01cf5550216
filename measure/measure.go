// Package measure provides the pluggable string-length hook the rest of
// this module builds on: every width computation — padding tokens, item
// widths, table columns — routes through the same func(string) int so a
// caller who swaps it gets consistent column arithmetic everywhere, not
// just in one component.
package measure

import "unicode/utf8"

// Func measures the rendered width of s. Implementations must be pure and
// side-effect free; the formatter calls them from hot measurement loops.
type Func func(s string) int

// Runes is the default Func: code-point count, via utf8.RuneCountInString.
// This matches what most terminals and editors mean by "one character" for
// the Latin/Cyrillic/Greek scripts JSON property names and string values
// are usually written in.
func Runes(s string) int {
	return utf8.RuneCountInString(s)
}
