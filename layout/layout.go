// Package layout implements the layout selector and emitter. For each
// container it tries inline, compact-multiline, table, and expanded
// layouts in that order and commits to the first that succeeds.
package layout

import (
	"github.com/simon-lentz/jsonfmt/item"
	"github.com/simon-lentz/jsonfmt/jsonopt"
	"github.com/simon-lentz/jsonfmt/linebuf"
	"github.com/simon-lentz/jsonfmt/padtok"
)

// rowComma is the literal comma used to end a row in expanded and table
// layouts, where the next sibling always starts a new line, so comma
// padding would only be trimmed away again by linebuf. Padded commas
// (tok.Comma) are used for same-line joins, in inline rendering and
// between the cells of a compact-multiline row.
const rowComma = ","

// Emitter renders a parsed top-level item list to text.
type Emitter struct {
	buf  *linebuf.Buffer
	tok  *padtok.Tokens
	opts jsonopt.Options
}

// Emit renders top (the parser's ordered top-level item list: optional
// leading standalone items, exactly one value, optional trailing
// standalone items) to a complete document string.
func Emit(top []*item.Item, opts jsonopt.Options) (string, error) {
	e := &Emitter{buf: linebuf.New(), tok: padtok.New(opts), opts: opts}
	for _, it := range top {
		if err := e.emitTopLevel(it); err != nil {
			return "", err
		}
	}
	return e.buf.String(), nil
}

func (e *Emitter) emitTopLevel(it *item.Item) error {
	switch it.Kind {
	case item.BlankLine:
		e.buf.EndLine(e.tok.EOL)
		return nil
	case item.LineComment, item.BlockComment:
		e.buf.Add(it.Value)
		e.buf.EndLine(e.tok.EOL)
		return nil
	default:
		if err := e.emitMember(it, 0, false); err != nil {
			return err
		}
		e.finishRow(it, false)
		return nil
	}
}

// availableWidth is the budget a container at depth may use for its own
// line: maxTotalLineLength minus the prefix-string width minus
// depth·indentSpaces.
func (e *Emitter) availableWidth(depth int) int {
	return e.opts.MaxTotalLineLength - e.opts.StringWidth(e.opts.PrefixString) - depth*e.opts.IndentSpaces
}

func bracketStyle(it *item.Item) padtok.BracketStyle {
	if len(valueChildren(it)) == 0 {
		return padtok.Empty
	}
	for _, c := range it.Children {
		if c.Kind.IsContainer() && len(valueChildren(c)) > 0 {
			return padtok.Complex
		}
	}
	return padtok.Simple
}

// valueChildren filters out standalone blank-line/comment children,
// returning only the actual array elements or object members.
func valueChildren(it *item.Item) []*item.Item {
	out := make([]*item.Item, 0, len(it.Children))
	for _, c := range it.Children {
		if c.IsValue() {
			out = append(out, c)
		}
	}
	return out
}

func brackets(tok *padtok.Tokens, it *item.Item) padtok.Brackets {
	if it.Kind == item.Object {
		return tok.Object
	}
	return tok.Array
}

// emitMember writes the prefix comment, name/colon (for object members),
// and middle comment of it, then its value body, leaving the last written
// line pending so the caller can append a trailing comma and/or postfix
// comment before ending it.
func (e *Emitter) emitMember(it *item.Item, depth int, reserveComma bool) error {
	if it.PrefixComment != "" {
		e.buf.Add(it.PrefixComment, e.tok.CommentPad)
	}
	if it.Name != "" {
		e.buf.Add(it.Name, e.tok.Colon)
	}

	valueDepth := depth
	if it.MiddleComment != "" {
		if it.MiddleCommentHasNewline {
			e.buf.EndLine(e.tok.EOL)
			for _, line := range normalizeCommentLines(it.MiddleComment) {
				e.buf.Add(e.tok.Indent(depth + 1))
				e.buf.Add(line)
				e.buf.EndLine(e.tok.EOL)
			}
			valueDepth = depth + 1
			e.buf.Add(e.tok.Indent(valueDepth))
		} else {
			e.buf.Add(it.MiddleComment, e.tok.CommentPad)
		}
	}

	return e.emitBody(it, valueDepth, reserveComma)
}

// emitBody writes just the scalar text or container structure, with no
// comment/name handling, selecting a container's layout as needed.
func (e *Emitter) emitBody(it *item.Item, depth int, reserveComma bool) error {
	if !it.Kind.IsContainer() {
		e.buf.Add(it.Value)
		return nil
	}
	return e.emitContainer(it, depth, reserveComma)
}

// finishRow appends a trailing comma (if requested) and/or postfix
// comment to the current pending line and ends it. A line-style postfix
// comment always forces the comma before it so the line stays lexically
// valid.
func (e *Emitter) finishRow(it *item.Item, comma bool) {
	switch {
	case comma && it.PostfixComment != "" && it.IsPostCommentLineStyle:
		e.buf.Add(rowComma, e.tok.CommentPad, it.PostfixComment)
	case comma && it.PostfixComment != "":
		e.buf.Add(e.tok.CommentPad, it.PostfixComment, rowComma)
	case comma:
		e.buf.Add(rowComma)
	case it.PostfixComment != "":
		e.buf.Add(e.tok.CommentPad, it.PostfixComment)
	}
	e.buf.EndLine(e.tok.EOL)
}

// emitStandalone writes a standalone blank-line/comment row at depth's
// indent.
func (e *Emitter) emitStandalone(it *item.Item, depth int) {
	if it.Kind == item.BlankLine {
		e.buf.EndLine(e.tok.EOL)
		return
	}
	e.buf.Add(e.tok.Indent(depth), it.Value)
	e.buf.EndLine(e.tok.EOL)
}
