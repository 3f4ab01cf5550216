// Package parse implements component B of the formatting pipeline: a
// single-pass, recursive-descent parser turning a token stream into the
// item tree defined by package item, attaching comments and blank lines to
// the element they visually belong to.
package parse

import (
	"strings"

	"github.com/simon-lentz/jsonfmt/ferr"
	"github.com/simon-lentz/jsonfmt/item"
	"github.com/simon-lentz/jsonfmt/jsonopt"
	"github.com/simon-lentz/jsonfmt/scan"
	"github.com/simon-lentz/jsonfmt/token"
)

// Parser is a single-pass, recursive-descent parser. Exactly one top-level
// value is permitted; blank lines and comments may surround it.
type Parser struct {
	toks []token.Token
	pos  int
	opts jsonopt.Options
}

// New tokenizes src in full (memory is already proportional to input size
// once it becomes an item tree, so buffering tokens upfront costs nothing
// extra) and returns a Parser ready to produce the top-level item list.
func New(src []byte, opts jsonopt.Options) (*Parser, error) {
	sc, err := scan.New(src)
	if err != nil {
		return nil, err
	}
	var toks []token.Token
	for {
		tok, err := sc.Next()
		if err != nil {
			return nil, err
		}
		toks = append(toks, tok)
		if tok.Kind == token.EOF {
			break
		}
	}
	return &Parser{toks: toks, opts: opts}, nil
}

func (p *Parser) peek() token.Token    { return p.toks[p.pos] }
func (p *Parser) advance() token.Token { t := p.toks[p.pos]; p.pos++; return t }

// Parse returns the ordered top-level item list: any leading standalone
// comments/blank lines, exactly one value item, and any trailing standalone
// comments/blank lines.
func (p *Parser) Parse() ([]*item.Item, error) {
	var top []*item.Item

	prefix, leading, err := p.collectLeading()
	if err != nil {
		return nil, err
	}
	top = append(top, leading...)

	if p.peek().Kind == token.EOF {
		return nil, ferr.At(ferr.ENoTopLevelValue, p.peek().Pos, "input contains no JSON value")
	}

	root, err := p.parseValue()
	if err != nil {
		return nil, err
	}
	root.PrefixComment = prefix
	top = append(top, root)

	if err := p.attachPostfixIfSameRow(root); err != nil {
		return nil, err
	}

	_, trailing, err := p.collectLeading()
	if err != nil {
		return nil, err
	}
	top = append(top, trailing...)

	if p.peek().Kind != token.EOF {
		return nil, ferr.At(ferr.ESecondTopLevelValue, p.peek().Pos, "unexpected second top-level value")
	}

	return top, nil
}

// parseValue dispatches on the current token's kind.
func (p *Parser) parseValue() (*item.Item, error) {
	tok := p.peek()
	switch tok.Kind {
	case token.BeginArray:
		return p.parseArray()
	case token.BeginObject:
		return p.parseObject()
	case token.String:
		p.advance()
		return &item.Item{Kind: item.String, Position: tok.Pos, Value: tok.Text}, nil
	case token.Number:
		p.advance()
		return &item.Item{Kind: item.Number, Position: tok.Pos, Value: tok.Text}, nil
	case token.True:
		p.advance()
		return &item.Item{Kind: item.True, Position: tok.Pos, Value: tok.Text}, nil
	case token.False:
		p.advance()
		return &item.Item{Kind: item.False, Position: tok.Pos, Value: tok.Text}, nil
	case token.Null:
		p.advance()
		return &item.Item{Kind: item.Null, Position: tok.Pos, Value: tok.Text}, nil
	default:
		return nil, ferr.At(ferr.EUnexpectedToken, tok.Pos, "expected a JSON value")
	}
}

// policyFilterComment applies CommentPolicy to a scanned comment token: it
// errors under TreatAsError, reports "discard" under Remove, and reports
// "keep" under Preserve.
func (p *Parser) policyFilterComment(tok token.Token) (keep bool, err error) {
	switch p.opts.CommentPolicy {
	case jsonopt.TreatAsError:
		return false, ferr.At(ferr.ECommentsDisallowed, tok.Pos, "comments are not permitted by CommentPolicy")
	case jsonopt.Remove:
		return false, nil
	default:
		return true, nil
	}
}

// nextRealRow returns the row of the first token at or after index i that is
// not itself a comment, used by the "unplaced comment" lookahead rule.
func (p *Parser) nextRealRow(i int) (row int, isClose bool) {
	for j := i; j < len(p.toks); j++ {
		k := p.toks[j].Kind
		if k.IsComment() {
			continue
		}
		return p.toks[j].Pos.Line, k == token.EndArray || k == token.EndObject
	}
	return -1, true
}

// collectLeading consumes any run of blank-line and comment tokens before
// the next real token. Comments that share a row with the upcoming real
// token are returned as a prefix-comment candidate for that token's owning
// element; all others are returned as standalone sibling items.
func (p *Parser) collectLeading() (prefixCandidate string, standalone []*item.Item, err error) {
	for {
		tok := p.peek()
		switch {
		case tok.Kind == token.BlankLine:
			p.advance()
			if p.opts.PreserveBlankLines {
				standalone = append(standalone, &item.Item{Kind: item.BlankLine, Position: tok.Pos})
			}
		case tok.Kind.IsComment():
			keep, perr := p.policyFilterComment(tok)
			if perr != nil {
				return "", nil, perr
			}
			p.advance()
			if !keep {
				continue
			}
			nextRow, isClose := p.nextRealRow(p.pos)
			if !isClose && nextRow == tok.Pos.Line {
				if prefixCandidate == "" {
					prefixCandidate = tok.Text
				} else {
					prefixCandidate += "\n" + tok.Text
				}
				continue
			}
			standalone = append(standalone, standaloneCommentItem(tok))
		default:
			return prefixCandidate, standalone, nil
		}
	}
}

func standaloneCommentItem(tok token.Token) *item.Item {
	k := item.BlockComment
	if tok.Kind == token.LineComment {
		k = item.LineComment
	}
	return &item.Item{Kind: k, Position: tok.Pos, Value: tok.Text}
}

// attachPostfixIfSameRow looks for a comment sharing val's row, either
// immediately after val or immediately after a comma that follows val on
// the same row, and attaches it as val's PostfixComment. A block comment
// that itself spans multiple lines is left untouched here: it is always a
// standalone child, and the next collectLeading call classifies it as one
// since its starting row won't match the row of whatever real token
// follows it.
func (p *Parser) attachPostfixIfSameRow(val *item.Item) error {
	row := val.Position.Line
	if tok := p.peek(); tok.Kind.IsComment() && tok.Pos.Line == row {
		if strings.Contains(tok.Text, "\n") {
			return nil
		}
		keep, err := p.policyFilterComment(tok)
		if err != nil {
			return err
		}
		p.advance()
		if keep {
			setPostfix(val, tok)
		}
		return nil
	}
	if p.peek().Kind == token.Comma && p.peek().Pos.Line == row && p.pos+1 < len(p.toks) {
		if tok := p.toks[p.pos+1]; tok.Kind.IsComment() && tok.Pos.Line == row && !strings.Contains(tok.Text, "\n") {
			keep, err := p.policyFilterComment(tok)
			if err != nil {
				return err
			}
			if keep {
				setPostfix(val, tok)
			}
			// Splice the comment out of the stream: it is now attached to
			// val, and the comma must remain the next token for the
			// enclosing array/object loop's comma-state machine to see.
			p.toks = append(p.toks[:p.pos+1], p.toks[p.pos+2:]...)
		}
	}
	return nil
}

func setPostfix(val *item.Item, tok token.Token) {
	val.PostfixComment = tok.Text
	val.IsPostCommentLineStyle = tok.Kind == token.LineComment
}

// collectMiddle gathers every comment between an object member's name and
// its value (spanning the colon), concatenating with "\n".
func (p *Parser) collectMiddle() (text string, hasNewline bool, err error) {
	count := 0
	for p.peek().Kind.IsComment() {
		tok := p.peek()
		keep, perr := p.policyFilterComment(tok)
		if perr != nil {
			return "", false, perr
		}
		p.advance()
		if !keep {
			continue
		}
		if tok.Kind == token.LineComment {
			hasNewline = true
		}
		count++
		if text == "" {
			text = tok.Text
		} else {
			text += "\n" + tok.Text
			hasNewline = true
		}
	}
	return text, hasNewline, nil
}
