package position

import "golang.org/x/text/unicode/norm"

// NormalizeSourceLabel canonicalizes a document label for display (a file
// path, "<stdin>", or any caller-supplied label); ferr.Error itself carries
// no label. Unicode normalization form differences between
// filesystems can otherwise make the same label compare unequal or render
// with visually duplicated combining marks; NFC is the form editors and
// terminals expect.
//
// Source labels here are arbitrary document labels, not necessarily file
// paths, since this module has no notion of a file-backed source registry.
func NormalizeSourceLabel(label string) string {
	if label == "" {
		return label
	}
	return norm.NFC.String(label)
}
