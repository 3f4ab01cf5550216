// Package item defines the parsed document tree: the node type comment
// attachment, measurement, and layout selection all operate on. Items are
// created once by package parse (or by package
// nativevalue when serializing a live Go value), have their width fields
// filled in once by package widthpass, and are then read-only for the rest
// of the pipeline.
//
// Item is a value type with exported fields, the same convention
// position.Position and position.Span use for tree/range types that are
// built once and then only read.
package item

import "github.com/simon-lentz/jsonfmt/position"

// Kind enumerates the node kinds an Item can hold.
type Kind uint8

const (
	Null Kind = iota
	True
	False
	String
	Number
	Object
	Array
	BlankLine
	LineComment
	BlockComment
)

func (k Kind) String() string {
	switch k {
	case Null:
		return "Null"
	case True:
		return "True"
	case False:
		return "False"
	case String:
		return "String"
	case Number:
		return "Number"
	case Object:
		return "Object"
	case Array:
		return "Array"
	case BlankLine:
		return "BlankLine"
	case LineComment:
		return "LineComment"
	case BlockComment:
		return "BlockComment"
	default:
		return "Unknown"
	}
}

// IsContainer reports whether k is Object or Array.
func (k Kind) IsContainer() bool { return k == Object || k == Array }

// IsStandaloneComment reports whether k is a tree node that exists purely
// to carry a blank line or a freestanding comment between siblings — never
// a value, never commented itself.
func (k Kind) IsStandaloneComment() bool {
	return k == BlankLine || k == LineComment || k == BlockComment
}

// Item is the formatting pipeline's tree node.
type Item struct {
	Kind     Kind
	Position position.Position

	// Complexity is 0 for scalars and empty containers; otherwise
	// 1 + max(child.Complexity).
	Complexity int

	// Name is empty, or the quoted property-name text (quotes included)
	// when this Item is an object member.
	Name string

	// Value is the verbatim scalar text (including quotes for strings,
	// original digits for numbers); empty for containers.
	Value string

	// Children holds ordered child Items: array elements, object members,
	// and any in-body blank lines or standalone comments.
	Children []*Item

	// PrefixComment is a block comment on the same line, just before this
	// element.
	PrefixComment string

	// MiddleComment holds comment text between an object member's name and
	// its value; may contain embedded newlines when multiple comments were
	// concatenated.
	MiddleComment           string
	MiddleCommentHasNewline bool

	// PostfixComment is a comment after this element on the same line.
	PostfixComment string

	// IsPostCommentLineStyle is true when PostfixComment was a `//` comment,
	// which forces a sibling comma (if any) to be emitted before it so the
	// line stays lexically valid.
	IsPostCommentLineStyle bool

	// Width fields, populated once by package widthpass.
	NameLength           int
	ValueLength          int
	PrefixCommentLength  int
	MiddleCommentLength  int
	PostfixCommentLength int
	MinimumTotalLength   int

	// RequiresMultipleLines is true if this item cannot be rendered on one
	// line: an embedded newline in any slot, a child that requires multiple
	// lines, or a descendant whose postfix line-comment forbids a closing
	// bracket on the same line.
	RequiresMultipleLines bool
}

// IsValue reports whether the item is a JSON value node (scalar or
// container) as opposed to a standalone blank-line/comment row.
func (it *Item) IsValue() bool {
	return !it.Kind.IsStandaloneComment()
}

// HasComments reports whether any of the three comment slots is non-empty.
func (it *Item) HasComments() bool {
	return it.PrefixComment != "" || it.MiddleComment != "" || it.PostfixComment != ""
}
