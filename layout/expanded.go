package layout

import (
	"strings"

	"github.com/simon-lentz/jsonfmt/item"
	"github.com/simon-lentz/jsonfmt/padtok"
)

// normalizeCommentLines splits a (possibly multi-comment, possibly
// multi-line block-comment) middle-comment string into display lines:
// empty lines are discarded, and continuation lines have up to the first
// line's leading-whitespace column stripped, preserving any relative
// indentation beyond that column.
func normalizeCommentLines(text string) []string {
	raw := strings.Split(text, "\n")
	var nonEmpty []string
	for _, l := range raw {
		if strings.TrimSpace(l) != "" {
			nonEmpty = append(nonEmpty, l)
		}
	}
	if len(nonEmpty) == 0 {
		return nil
	}
	col := leadingSpaceCount(nonEmpty[0])
	out := make([]string, len(nonEmpty))
	out[0] = strings.TrimLeft(nonEmpty[0], " \t")
	for i := 1; i < len(nonEmpty); i++ {
		out[i] = stripLeading(nonEmpty[i], col)
	}
	return out
}

func leadingSpaceCount(s string) int {
	n := 0
	for _, r := range s {
		if r != ' ' && r != '\t' {
			break
		}
		n++
	}
	return n
}

func stripLeading(s string, n int) string {
	i := 0
	for i < n && i < len(s) && (s[i] == ' ' || s[i] == '\t') {
		i++
	}
	return s[i:]
}

// emitExpanded renders it with each child on its own line at depth+1
// . For objects, property names are
// additionally aligned to the width of the longest member name (see
// objectNameAlignment) when the spread is within maxPropNamePadding, no
// middle comment forces a line break, and the padded rows still fit.
func (e *Emitter) emitExpanded(it *item.Item, depth int) error {
	br := brackets(e.tok, it)
	e.buf.Add(br.Open[padtok.Empty])
	e.buf.EndLine(e.tok.EOL)

	children := it.Children
	alignTo := 0
	if it.Kind == item.Object {
		alignTo = e.objectNameAlignment(it, depth)
	}

	for i, child := range children {
		if !child.IsValue() {
			e.emitStandalone(child, depth+1)
			continue
		}
		e.buf.Add(e.tok.Indent(depth + 1))
		if alignTo > 0 && child.PrefixComment == "" {
			e.padName(child, alignTo)
		}
		last := isLastValue(children, i)
		if err := e.emitMember(child, depth+1, !last); err != nil {
			return err
		}
		e.finishRow(child, !last)
	}

	e.buf.Add(e.tok.Indent(depth), br.Close[padtok.Empty])
	return nil
}

// padName writes leading spaces before child's property name so every
// member in the container lines up at column alignTo once emitMember
// writes the name itself.
func (e *Emitter) padName(child *item.Item, alignTo int) {
	width := e.opts.StringWidth(child.Name)
	if width < alignTo {
		e.buf.Spaces(alignTo - width)
	}
}

func isLastValue(children []*item.Item, i int) bool {
	for j := i + 1; j < len(children); j++ {
		if children[j].IsValue() {
			return false
		}
	}
	return true
}

// objectNameAlignment returns the column to pad property names to, or 0
// if alignment is disabled for this container: either the spread between
// the longest and shortest name exceeds maxPropNamePadding, or padding
// some row's name up to the shared column would push that row past the
// width budget for depth+1, where the aligned members are written.
func (e *Emitter) objectNameAlignment(it *item.Item, depth int) int {
	children := valueChildren(it)
	if len(children) == 0 {
		return 0
	}
	nameLen, nameMin := 0, 0
	for _, c := range children {
		if c.MiddleCommentHasNewline {
			return 0
		}
		w := e.opts.StringWidth(c.Name)
		if w > nameLen {
			nameLen = w
		}
		if nameMin == 0 || (w > 0 && w < nameMin) {
			nameMin = w
		}
	}
	if nameLen-nameMin > e.opts.MaxPropNamePadding {
		return 0
	}

	avail := e.availableWidth(depth + 1)
	for _, c := range children {
		extra := nameLen - e.opts.StringWidth(c.Name)
		if extra < 0 {
			extra = 0
		}
		if c.MinimumTotalLength+extra > avail {
			return 0
		}
	}
	return nameLen
}
