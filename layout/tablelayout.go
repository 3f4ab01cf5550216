package layout

import (
	"github.com/simon-lentz/jsonfmt/item"
	"github.com/simon-lentz/jsonfmt/jsonopt"
	"github.com/simon-lentz/jsonfmt/padtok"
	"github.com/simon-lentz/jsonfmt/table"
)

// tryTable attempts the table layout: one row per element/member, every
// value aligned to a shared column width.
func (e *Emitter) tryTable(it *item.Item, depth int, avail int, commaWidth int) (bool, error) {
	if it.Complexity > e.opts.MaxTableRowComplexity+1 {
		return false, nil
	}
	if it.RequiresMultipleLines {
		return false, nil
	}
	children := valueChildren(it)
	if len(children) == 0 {
		return false, nil
	}
	rowAvail := avail - commaWidth
	for _, c := range children {
		if c.MinimumTotalLength > rowAvail {
			return false, nil
		}
	}

	tmpl := table.Build(children, e.opts, 1)
	if tmpl.Type == table.Mixed || tmpl.Type == table.Unknown {
		return false, nil
	}
	if !tmpl.TryToFit(rowAvail, e.opts.MaxTableRowComplexity+1) {
		return false, nil
	}

	e.emitTableRows(it, depth, tmpl)
	return true, nil
}

func (e *Emitter) emitTableRows(it *item.Item, depth int, tmpl *table.Template) {
	br := brackets(e.tok, it)
	e.buf.Add(br.Open[padtok.Empty])
	e.buf.EndLine(e.tok.EOL)

	anyPostfix := tmpl.PostfixCommentLength > 0
	children := it.Children

	for i, c := range children {
		if !c.IsValue() {
			e.emitStandalone(c, depth+1)
			continue
		}
		last := isLastValue(children, i)
		e.buf.Add(e.tok.Indent(depth + 1))

		if it.Kind == item.Object {
			e.buf.Add(padRight(c.Name, tmpl.NameLength, e.opts.StringWidth))
			e.buf.Add(e.tok.Colon)
		}
		if c.MiddleComment != "" {
			e.buf.Add(c.MiddleComment, e.tok.CommentPad)
		}

		e.emitTableCell(c, tmpl, !last, anyPostfix)
		e.buf.EndLine(e.tok.EOL)
	}

	e.buf.Add(e.tok.Indent(depth), br.Close[padtok.Empty])
}

// emitTableCell writes one row's value, comma, and postfix comment
// according to the container's comma-placement option.
func (e *Emitter) emitTableCell(c *item.Item, tmpl *table.Template, hasComma bool, anyPostfix bool) {
	raw, ok := renderValueOnly(c, e.tok)
	if !ok {
		raw = c.Value
	}
	padded := raw
	if tmpl.Type == table.Number && c.Kind != item.Null {
		padded = alignNumberCell(raw, tmpl, e.opts.StringWidth)
	} else {
		padded = padRight(raw, tmpl.CompositeValueLength, e.opts.StringWidth)
	}

	useAfter := e.opts.TableCommaPlacement == jsonopt.AfterPadding ||
		(e.opts.TableCommaPlacement == jsonopt.BeforePaddingExceptNumbers && tmpl.Type == table.Number)

	comma := ""
	switch {
	case hasComma:
		comma = rowComma
	case anyPostfix:
		comma = e.tok.DummyComma
	}

	if useAfter {
		e.buf.Add(padded)
		e.buf.Add(comma)
	} else {
		e.buf.Add(raw)
		e.buf.Add(comma)
		if pad := tmpl.CompositeValueLength - e.opts.StringWidth(raw); pad > 0 {
			e.buf.Spaces(pad)
		}
	}

	if c.PostfixComment != "" {
		e.buf.Add(e.tok.CommentPad, c.PostfixComment)
	}
}

// renderValueOnly renders c's bracket/scalar body without its name,
// prefix, middle, or postfix comment slots (those are handled by the
// table row loop directly).
func renderValueOnly(c *item.Item, tok *padtok.Tokens) (string, bool) {
	if c.RequiresMultipleLines {
		return "", false
	}
	if !c.Kind.IsContainer() {
		return c.Value, true
	}
	return renderContainerInline(c, tok)
}
