package measure

import "golang.org/x/text/width"

// EastAsian measures s the way a terminal rendering East Asian scripts
// does: wide and fullwidth runes (as classified by golang.org/x/text/width)
// count for 2 columns, everything else for 1. Callers format CJK-heavy
// JSON documents by passing jsonopt.WithStringWidth(measure.EastAsian)
// instead of accepting the default code-point count.
func EastAsian(s string) int {
	total := 0
	for _, r := range s {
		switch width.LookupRune(r).Kind() {
		case width.EastAsianWide, width.EastAsianFullwidth:
			total += 2
		default:
			total++
		}
	}
	return total
}
