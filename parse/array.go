package parse

import (
	"github.com/simon-lentz/jsonfmt/ferr"
	"github.com/simon-lentz/jsonfmt/item"
	"github.com/simon-lentz/jsonfmt/token"
)

// commaStatus tracks an array's comma state.
type commaStatus int

const (
	emptyCollection commaStatus = iota
	elementSeen
	commaSeen
)

// parseArray consumes a BeginArray token and everything up to and
// including its matching EndArray.
func (p *Parser) parseArray() (*item.Item, error) {
	open := p.advance() // BeginArray
	arr := &item.Item{Kind: item.Array, Position: open.Pos}

	status := emptyCollection
	var lastCommaPos = open.Pos
	maxChildComplexity := -1

	for {
		prefix, leading, err := p.collectLeading()
		if err != nil {
			return nil, err
		}
		arr.Children = append(arr.Children, leading...)

		tok := p.peek()
		switch tok.Kind {
		case token.EndArray:
			if status == commaSeen && !p.opts.AllowTrailingCommas {
				return nil, ferr.At(ferr.ETrailingComma, lastCommaPos, "trailing comma not allowed in array")
			}
			p.advance()
			if maxChildComplexity >= 0 {
				arr.Complexity = 1 + maxChildComplexity
			}
			return arr, nil

		case token.Comma:
			if status != elementSeen {
				return nil, ferr.At(ferr.EUnexpectedToken, tok.Pos, "unexpected comma in array")
			}
			lastCommaPos = tok.Pos
			p.advance()
			status = commaSeen

		case token.EOF:
			return nil, ferr.At(ferr.EUnclosedContainer, open.Pos, "unclosed array")

		default:
			if status == elementSeen {
				return nil, ferr.At(ferr.EUnexpectedToken, tok.Pos, "expected comma between array elements")
			}
			val, err := p.parseValue()
			if err != nil {
				return nil, err
			}
			val.PrefixComment = prefix
			if err := p.attachPostfixIfSameRow(val); err != nil {
				return nil, err
			}
			arr.Children = append(arr.Children, val)
			if val.Complexity > maxChildComplexity {
				maxChildComplexity = val.Complexity
			}
			status = elementSeen
		}
	}
}
