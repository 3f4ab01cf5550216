package scan

import (
	"github.com/simon-lentz/jsonfmt/ferr"
	"github.com/simon-lentz/jsonfmt/token"
)

// scanKeyword matches word letter-by-letter; any deviation is an error.
func (s *Scanner) scanKeyword(word string, kind token.Kind) (token.Token, error) {
	start := s.pos
	for i := 0; i < len(word); i++ {
		b, ok := s.peek()
		if !ok || b != word[i] {
			return token.Token{}, ferr.At(ferr.EBadKeyword, start, "invalid keyword literal")
		}
		s.advanceByte()
	}
	return token.Token{Kind: kind, Text: word, Pos: start}, nil
}
