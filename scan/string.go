package scan

import (
	"github.com/simon-lentz/jsonfmt/ferr"
	"github.com/simon-lentz/jsonfmt/token"
)

// isHexDigit reports whether b is one of 0-9, a-f, A-F.
func isHexDigit(b byte) bool {
	return (b >= '0' && b <= '9') || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

// scanString scans a double-quoted string, verbatim text included (quotes
// and all). Escapes must be one of `" \ / b f n r t u`; `\u` requires four
// hex digits; bytes 0x00-0x1F and 0x7F are rejected unescaped. Multibyte
// UTF-8 continuation bytes (0x80-0xBF) are not control characters and pass
// through untouched — the check below only ever compares against the
// single-byte ASCII control range.
func (s *Scanner) scanString() (token.Token, error) {
	start := s.pos
	s.advanceByte() // opening quote

	for {
		b, ok := s.peek()
		if !ok {
			return token.Token{}, ferr.At(ferr.EBadString, start, "unterminated string")
		}
		switch {
		case b == '"':
			s.advanceByte()
			text := string(s.src[start.Offset:s.pos.Offset])
			return token.Token{Kind: token.String, Text: text, Pos: start}, nil
		case b == '\\':
			escPos := s.pos
			s.advanceByte()
			eb, ok := s.peek()
			if !ok {
				return token.Token{}, ferr.At(ferr.EBadString, escPos, "unterminated escape sequence")
			}
			switch eb {
			case '"', '\\', '/', 'b', 'f', 'n', 'r', 't':
				s.advanceByte()
			case 'u':
				s.advanceByte()
				for i := 0; i < 4; i++ {
					hb, ok := s.peek()
					if !ok || !isHexDigit(hb) {
						return token.Token{}, ferr.At(ferr.EBadString, escPos, "invalid \\u escape: expected four hex digits")
					}
					s.advanceByte()
				}
			default:
				return token.Token{}, ferr.At(ferr.EBadString, escPos, "invalid escape sequence")
			}
		case b <= 0x1F || b == 0x7F:
			return token.Token{}, ferr.At(ferr.EBadString, s.pos, "unescaped control character in string")
		default:
			s.advanceRune()
		}
	}
}
