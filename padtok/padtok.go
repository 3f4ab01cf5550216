// Package padtok precomputes every padding token the emitter needs from a
// resolved set of options. The token strings are built once per format
// invocation rather than per occurrence; only the comma is measured through
// the configured string-width hook, to size DummyComma.
package padtok

import (
	"strings"

	"github.com/simon-lentz/jsonfmt/jsonopt"
)

// BracketStyle selects one of the three padding variants a container's
// open/close brackets can use.
type BracketStyle int

const (
	// Empty is used for an empty array/object: "[]" or "{}", no interior
	// padding regardless of SimpleBracketPadding/NestedBracketPadding.
	Empty BracketStyle = iota
	// Simple is used for a non-empty container with only scalar children:
	// governed by SimpleBracketPadding.
	Simple
	// Complex is used for a non-empty container holding at least one
	// non-empty nested array/object: governed by NestedBracketPadding.
	Complex
)

// Brackets holds the three open/close pairs for one container kind (array
// or object), indexed by BracketStyle.
type Brackets struct {
	Open  [3]string
	Close [3]string
}

// Tokens is the full precomputed bundle derived from an Options value. It
// is built once per format invocation and then only read.
type Tokens struct {
	EOL string

	Comma      string
	DummyComma string // spaces matching Comma's width, for column alignment
	Colon      string

	CommentPad string // single space before a postfix/prefix comment, or "" per CommentPadding

	Array  Brackets
	Object Brackets

	indentUnit string
	indentTabs bool
	cache      []string // cache[level] is the precomputed indent string for that nesting level
}

// New precomputes every token opts' settings imply.
func New(opts jsonopt.Options) *Tokens {
	t := &Tokens{
		EOL:   opts.EOL.Bytes(),
		Colon: colonToken(opts),
	}

	t.Comma = ","
	if opts.CommaPadding {
		t.Comma = ", "
	}
	t.DummyComma = strings.Repeat(" ", opts.StringWidth(t.Comma))

	if opts.CommentPadding {
		t.CommentPad = " "
	}

	t.Array = bracketSet("[", "]", opts.SimpleBracketPadding, opts.NestedBracketPadding)
	t.Object = bracketSet("{", "}", opts.SimpleBracketPadding, opts.NestedBracketPadding)

	if opts.UseTabToIndent {
		t.indentUnit = "\t"
		t.indentTabs = true
	} else {
		t.indentUnit = strings.Repeat(" ", opts.IndentSpaces)
	}
	t.cache = []string{""}

	return t
}

func colonToken(opts jsonopt.Options) string {
	switch {
	case opts.ColonPadding && opts.ColonBeforePropNamePadding:
		return " : "
	case opts.ColonPadding:
		return ": "
	case opts.ColonBeforePropNamePadding:
		return " :"
	default:
		return ":"
	}
}

func bracketSet(open, close string, simplePad, nestedPad bool) Brackets {
	var b Brackets
	b.Open[Empty], b.Close[Empty] = open, close
	if simplePad {
		b.Open[Simple], b.Close[Simple] = open+" ", " "+close
	} else {
		b.Open[Simple], b.Close[Simple] = open, close
	}
	if nestedPad {
		b.Open[Complex], b.Close[Complex] = open+" ", " "+close
	} else {
		b.Open[Complex], b.Close[Complex] = open, close
	}
	return b
}

// Indent returns the indent string for nesting level (0-based). Levels are
// built lazily and cached, so a document that never nests deeply never
// pays for indent strings it doesn't use.
func (t *Tokens) Indent(level int) string {
	for len(t.cache) <= level {
		t.cache = append(t.cache, t.cache[len(t.cache)-1]+t.indentUnit)
	}
	return t.cache[level]
}
