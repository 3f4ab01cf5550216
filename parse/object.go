package parse

import (
	"github.com/simon-lentz/jsonfmt/ferr"
	"github.com/simon-lentz/jsonfmt/item"
	"github.com/simon-lentz/jsonfmt/token"
)

// parseObject consumes a BeginObject token and everything up to and
// including its matching EndObject.
func (p *Parser) parseObject() (*item.Item, error) {
	open := p.advance() // BeginObject
	obj := &item.Item{Kind: item.Object, Position: open.Pos}

	status := emptyCollection
	var lastCommaPos = open.Pos
	maxChildComplexity := -1

	for {
		prefix, leading, err := p.collectLeading()
		if err != nil {
			return nil, err
		}
		obj.Children = append(obj.Children, leading...)

		tok := p.peek()
		switch tok.Kind {
		case token.EndObject:
			if status == commaSeen && !p.opts.AllowTrailingCommas {
				return nil, ferr.At(ferr.ETrailingComma, lastCommaPos, "trailing comma not allowed in object")
			}
			p.advance()
			if maxChildComplexity >= 0 {
				obj.Complexity = 1 + maxChildComplexity
			}
			return obj, nil

		case token.Comma:
			if status != elementSeen {
				return nil, ferr.At(ferr.EUnexpectedToken, tok.Pos, "unexpected comma in object")
			}
			lastCommaPos = tok.Pos
			p.advance()
			status = commaSeen

		case token.EOF:
			return nil, ferr.At(ferr.EUnclosedContainer, open.Pos, "unclosed object")

		case token.String:
			if status == elementSeen {
				return nil, ferr.At(ferr.EUnexpectedToken, tok.Pos, "expected comma between object members")
			}
			member, err := p.parseMember(prefix)
			if err != nil {
				return nil, err
			}
			obj.Children = append(obj.Children, member)
			if member.Complexity > maxChildComplexity {
				maxChildComplexity = member.Complexity
			}
			status = elementSeen

		default:
			return nil, ferr.At(ferr.EUnexpectedToken, tok.Pos, "expected a quoted property name")
		}
	}
}

// parseMember parses one "name": value pair, attaching the prefix comment
// collected before the name and any comments found between the name and
// the value as the member's middle comment.
func (p *Parser) parseMember(prefix string) (*item.Item, error) {
	nameTok := p.advance() // String

	mid1, nl1, err := p.collectMiddle()
	if err != nil {
		return nil, err
	}

	if p.peek().Kind != token.Colon {
		return nil, ferr.At(ferr.EUnexpectedToken, p.peek().Pos, "expected ':' after property name")
	}
	p.advance()

	mid2, nl2, err := p.collectMiddle()
	if err != nil {
		return nil, err
	}

	middle, hasNewline := joinMiddle(mid1, nl1, mid2, nl2)

	val, err := p.parseValue()
	if err != nil {
		return nil, err
	}
	val.Name = nameTok.Text
	val.MiddleComment = middle
	val.MiddleCommentHasNewline = hasNewline

	if err := p.attachPostfixIfSameRow(val); err != nil {
		return nil, err
	}
	val.PrefixComment = prefix
	return val, nil
}

func joinMiddle(a string, aNL bool, b string, bNL bool) (string, bool) {
	switch {
	case a == "":
		return b, bNL
	case b == "":
		return a, aNL
	default:
		return a + "\n" + b, true
	}
}
