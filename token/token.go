// Package token defines the lexical units the scanner produces: its
// output alphabet and nothing else. Tokens are immutable and
// carry the verbatim source text plus a position, so later stages never
// need to re-derive either.
package token

import "github.com/simon-lentz/jsonfmt/position"

// Kind enumerates the token alphabet produced by the scanner.
type Kind uint8

const (
	BeginArray Kind = iota
	EndArray
	BeginObject
	EndObject
	Comma
	Colon
	String
	Number
	True
	False
	Null
	BlockComment
	LineComment
	BlankLine
	EOF
)

// String returns the token kind's canonical label, used in error messages
// and tests.
func (k Kind) String() string {
	switch k {
	case BeginArray:
		return "BeginArray"
	case EndArray:
		return "EndArray"
	case BeginObject:
		return "BeginObject"
	case EndObject:
		return "EndObject"
	case Comma:
		return "Comma"
	case Colon:
		return "Colon"
	case String:
		return "String"
	case Number:
		return "Number"
	case True:
		return "True"
	case False:
		return "False"
	case Null:
		return "Null"
	case BlockComment:
		return "BlockComment"
	case LineComment:
		return "LineComment"
	case BlankLine:
		return "BlankLine"
	case EOF:
		return "EOF"
	default:
		return "Unknown"
	}
}

// IsComment reports whether k is one of the two comment kinds.
func (k Kind) IsComment() bool {
	return k == BlockComment || k == LineComment
}

// Token is an immutable lexical unit: a kind, the verbatim source text that
// produced it (quotes included for strings, original digits for numbers,
// comment delimiters included), and the position of its first character.
type Token struct {
	Kind Kind
	Text string
	Pos  position.Position
}
