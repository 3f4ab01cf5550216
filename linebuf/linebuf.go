// Package linebuf implements component G: a write-only buffer that
// coalesces fragments into lines, right-trimming trailing whitespace
// before each line terminator so column padding never leaks trailing
// spaces into the output.
package linebuf

import "strings"

// spaceCache holds pre-built space strings for common indent/padding
// widths so repeated calls to Spaces don't reallocate.
var spaceCache = []string{"", " ", "  ", "   ", "    ", "     ", "      ", "       ", "        "}

// Buffer accumulates output. It is not safe for concurrent use; one
// Buffer belongs to one format invocation.
type Buffer struct {
	out     strings.Builder
	pending strings.Builder
}

// New returns an empty Buffer.
func New() *Buffer { return &Buffer{} }

// Add appends each fragment to the current pending line, unflushed.
func (b *Buffer) Add(frags ...string) {
	for _, f := range frags {
		b.pending.WriteString(f)
	}
}

// Spaces appends n literal spaces to the current pending line.
func (b *Buffer) Spaces(n int) {
	if n <= 0 {
		return
	}
	if n < len(spaceCache) {
		b.pending.WriteString(spaceCache[n])
		return
	}
	b.pending.WriteString(spaceCache[len(spaceCache)-1])
	b.Spaces(n - (len(spaceCache) - 1))
}

// EndLine right-trims the pending line's trailing whitespace, appends eol,
// and flushes it to the document buffer.
func (b *Buffer) EndLine(eol string) {
	line := strings.TrimRight(b.pending.String(), " \t")
	b.out.WriteString(line)
	b.out.WriteString(eol)
	b.pending.Reset()
}

// HasPending reports whether any fragment has been added since the last
// EndLine.
func (b *Buffer) HasPending() bool { return b.pending.Len() > 0 }

// String returns everything flushed so far. Any unflushed pending
// fragments are not included; callers must call EndLine before String if
// they want a final partial line captured.
func (b *Buffer) String() string { return b.out.String() }
