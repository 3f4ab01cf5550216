package scan

import (
	"github.com/simon-lentz/jsonfmt/ferr"
	"github.com/simon-lentz/jsonfmt/token"
)

// scanComment scans a "//line" or "/*block*/" comment. The scanner always
// emits comment tokens regardless of CommentPolicy — the policy only
// matters to a downstream consumer, and it is the parser that rejects
// them when CommentPolicy is TreatAsError.
func (s *Scanner) scanComment() (token.Token, error) {
	start := s.pos
	s.advanceByte() // leading '/'

	b, ok := s.peek()
	if !ok {
		return token.Token{}, ferr.At(ferr.EBadChar, start, "'/' is not a valid token on its own")
	}

	switch b {
	case '/':
		s.advanceByte()
		for {
			nb, ok := s.peek()
			if !ok || nb == '\n' {
				break
			}
			s.advanceRune()
		}
		return token.Token{Kind: token.LineComment, Text: string(s.src[start.Offset:s.pos.Offset]), Pos: start}, nil
	case '*':
		s.advanceByte()
		for {
			cb, ok := s.peek()
			if !ok {
				return token.Token{}, ferr.At(ferr.EBadChar, start, "unterminated block comment")
			}
			if cb == '*' {
				s.advanceByte()
				nb, ok := s.peek()
				if ok && nb == '/' {
					s.advanceByte()
					return token.Token{Kind: token.BlockComment, Text: string(s.src[start.Offset:s.pos.Offset]), Pos: start}, nil
				}
				continue
			}
			s.advanceRune()
		}
	default:
		return token.Token{}, ferr.At(ferr.EBadChar, start, "'/' is not a valid token on its own")
	}
}
