package layout

import (
	"github.com/simon-lentz/jsonfmt/item"
	"github.com/simon-lentz/jsonfmt/padtok"
	"github.com/simon-lentz/jsonfmt/table"
)

// tryCompactMultiline attempts the arrays-only compact-multiline layout:
// every element rendered inline, packed greedily onto as few lines as fit,
// optionally column-aligned via a shared table template.
func (e *Emitter) tryCompactMultiline(it *item.Item, depth int, avail int) (bool, error) {
	children := valueChildren(it)
	if len(children) < e.opts.MinCompactArrayRowItems {
		return false, nil
	}
	if it.Complexity > e.opts.MaxCompactArrayComplexity {
		return false, nil
	}
	if it.RequiresMultipleLines {
		return false, nil
	}

	tmpl := table.Build(children, e.opts, 1)
	aligned := tmpl.Type != table.Mixed && tmpl.Type != table.Unknown

	cells := make([]string, len(children))
	for i, c := range children {
		cells[i] = e.compactCell(c, tmpl, aligned)
		if cells[i] == "" {
			return false, nil
		}
	}

	br := brackets(e.tok, it)
	e.buf.Add(br.Open[padtok.Empty])
	e.buf.EndLine(e.tok.EOL)

	indent := e.tok.Indent(depth + 1)
	line := indent
	wrote := false
	for i, cell := range cells {
		piece := cell
		if i < len(cells)-1 {
			piece += e.tok.Comma
		}
		pieceLen := e.opts.StringWidth(piece)
		if wrote && e.opts.StringWidth(line)+pieceLen > avail {
			e.buf.Add(line)
			e.buf.EndLine(e.tok.EOL)
			line = indent
			wrote = false
		}
		line += piece
		wrote = true
	}
	if wrote {
		e.buf.Add(line)
		e.buf.EndLine(e.tok.EOL)
	}

	e.buf.Add(e.tok.Indent(depth), br.Close[padtok.Empty])
	return true, nil
}

func (e *Emitter) compactCell(c *item.Item, tmpl *table.Template, aligned bool) string {
	text, ok := renderInline(c, e.tok)
	if !ok {
		return ""
	}
	if !aligned {
		return text
	}
	if tmpl.Type == table.Number && c.Kind != item.Null {
		return alignNumberCell(text, tmpl, e.opts.StringWidth)
	}
	return padRight(text, tmpl.CompositeValueLength, e.opts.StringWidth)
}
