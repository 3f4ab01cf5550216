// Package scan implements component A of the formatting pipeline: a lazy,
// byte-indexed scanner turning raw JSONC text into a stream of tokens,
// tolerant of comments and blank lines.
package scan

import (
	"unicode/utf8"

	"github.com/simon-lentz/jsonfmt/ferr"
	"github.com/simon-lentz/jsonfmt/position"
	"github.com/simon-lentz/jsonfmt/token"
)

// maxInputBytes caps input size so position arithmetic (byte offsets) never
// overflows an int on 32-bit platforms.
const maxInputBytes = 2_000_000_000

// Scanner is a lazy producer of tokens over a byte-indexed text. It does
// not buffer tokens; each call to Next consumes exactly one token's worth
// of input (plus any leading whitespace).
type Scanner struct {
	src []byte
	pos position.Position

	// sawContentOnLine tracks whether any non-whitespace byte has been seen
	// since the last newline, to decide whether a '\n' produces a synthetic
	// BlankLine token.
	sawContentOnLine bool
}

// New returns a Scanner over text. text is not copied; the caller must not
// mutate it while the Scanner is in use.
func New(text []byte) (*Scanner, error) {
	if len(text) > maxInputBytes {
		return nil, ferr.At(ferr.EInputTooLarge, position.Zero, "input exceeds maximum scannable size")
	}
	return &Scanner{src: text}, nil
}

func (s *Scanner) eof() bool { return s.pos.Offset >= len(s.src) }

func (s *Scanner) byteAt(off int) (byte, bool) {
	if off < 0 || off >= len(s.src) {
		return 0, false
	}
	return s.src[off], true
}

func (s *Scanner) peek() (byte, bool) { return s.byteAt(s.pos.Offset) }

// advanceByte consumes one byte (assumed single-byte ASCII, e.g. a
// structural character) and returns the position it started at.
func (s *Scanner) advanceByte() position.Position {
	start := s.pos
	b := s.src[s.pos.Offset]
	s.pos = s.pos.Advance(rune(b), 1)
	return start
}

// advanceRune consumes one UTF-8 rune (used inside string/comment bodies,
// where content may be multibyte) and returns the position it started at.
func (s *Scanner) advanceRune() position.Position {
	start := s.pos
	r, size := utf8.DecodeRune(s.src[s.pos.Offset:])
	if r == utf8.RuneError && size <= 1 {
		size = 1
	}
	s.pos = s.pos.Advance(r, size)
	return start
}

// skipWhitespace consumes space/tab/\r silently and
// handles '\n': advance row, and if the line had no non-whitespace
// content, emit a synthetic BlankLine token immediately.
//
// Returns (tok, true) if a BlankLine token was produced and should be
// returned to the caller of Next; otherwise (zero, false) and the scanner
// is positioned at the next non-whitespace byte (or EOF).
func (s *Scanner) skipWhitespace() (token.Token, bool) {
	for {
		b, ok := s.peek()
		if !ok {
			return token.Token{}, false
		}
		switch b {
		case ' ', '\t', '\r':
			s.advanceByte()
		case '\n':
			start := s.pos
			wasBlank := !s.sawContentOnLine
			s.advanceByte()
			s.sawContentOnLine = false
			if wasBlank {
				return token.Token{Kind: token.BlankLine, Text: "\n", Pos: start}, true
			}
		default:
			return token.Token{}, false
		}
	}
}

// Next returns the next token in the stream, or a token.EOF kind token once
// the input is exhausted. It returns an error positioned at the offending
// byte for any malformed sequence.
func (s *Scanner) Next() (token.Token, error) {
	for {
		if tok, got := s.skipWhitespace(); got {
			return tok, nil
		}
		if s.eof() {
			return token.Token{Kind: token.EOF, Pos: s.pos}, nil
		}
		b, _ := s.peek()

		switch b {
		case '{':
			s.sawContentOnLine = true
			p := s.advanceByte()
			return token.Token{Kind: token.BeginObject, Text: "{", Pos: p}, nil
		case '}':
			s.sawContentOnLine = true
			p := s.advanceByte()
			return token.Token{Kind: token.EndObject, Text: "}", Pos: p}, nil
		case '[':
			s.sawContentOnLine = true
			p := s.advanceByte()
			return token.Token{Kind: token.BeginArray, Text: "[", Pos: p}, nil
		case ']':
			s.sawContentOnLine = true
			p := s.advanceByte()
			return token.Token{Kind: token.EndArray, Text: "]", Pos: p}, nil
		case ',':
			s.sawContentOnLine = true
			p := s.advanceByte()
			return token.Token{Kind: token.Comma, Text: ",", Pos: p}, nil
		case ':':
			s.sawContentOnLine = true
			p := s.advanceByte()
			return token.Token{Kind: token.Colon, Text: ":", Pos: p}, nil
		case '"':
			s.sawContentOnLine = true
			return s.scanString()
		case 't':
			s.sawContentOnLine = true
			return s.scanKeyword("true", token.True)
		case 'f':
			s.sawContentOnLine = true
			return s.scanKeyword("false", token.False)
		case 'n':
			s.sawContentOnLine = true
			return s.scanKeyword("null", token.Null)
		case '/':
			s.sawContentOnLine = true
			return s.scanComment()
		default:
			if b == '-' || (b >= '0' && b <= '9') {
				s.sawContentOnLine = true
				return s.scanNumber()
			}
			p := s.pos
			s.advanceRune()
			return token.Token{}, ferr.At(ferr.EBadChar, p, "unexpected character")
		}
	}
}
