package layout

import (
	"strings"

	"github.com/simon-lentz/jsonfmt/item"
	"github.com/simon-lentz/jsonfmt/padtok"
)

// renderInline renders it as a single-line string, returning ok=false if
// it (or any descendant) requires multiple lines.
func renderInline(it *item.Item, tok *padtok.Tokens) (string, bool) {
	if it.RequiresMultipleLines {
		return "", false
	}
	var sb strings.Builder
	if it.PrefixComment != "" {
		sb.WriteString(it.PrefixComment)
		sb.WriteString(tok.CommentPad)
	}
	if it.Name != "" {
		sb.WriteString(it.Name)
		sb.WriteString(tok.Colon)
	}
	if it.MiddleComment != "" {
		sb.WriteString(it.MiddleComment)
		sb.WriteString(tok.CommentPad)
	}
	if it.Kind.IsContainer() {
		body, ok := renderContainerInline(it, tok)
		if !ok {
			return "", false
		}
		sb.WriteString(body)
	} else {
		sb.WriteString(it.Value)
	}
	if it.PostfixComment != "" {
		sb.WriteString(tok.CommentPad)
		sb.WriteString(it.PostfixComment)
	}
	return sb.String(), true
}

func renderContainerInline(it *item.Item, tok *padtok.Tokens) (string, bool) {
	children := valueChildren(it)
	style := bracketStyle(it)
	br := brackets(tok, it)

	if len(children) == 0 {
		return br.Open[padtok.Empty] + br.Close[padtok.Empty], true
	}

	parts := make([]string, 0, len(children))
	for _, c := range children {
		s, ok := renderInline(c, tok)
		if !ok {
			return "", false
		}
		parts = append(parts, s)
	}
	return br.Open[style] + strings.Join(parts, tok.Comma) + br.Close[style], true
}
