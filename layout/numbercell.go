package layout

import (
	"strconv"
	"strings"

	"github.com/simon-lentz/jsonfmt/jsonopt"
	"github.com/simon-lentz/jsonfmt/measure"
	"github.com/simon-lentz/jsonfmt/table"
)

// alignNumberCell pads or reformats raw (a number column's verbatim or
// normalized text) to the column's resolved alignment mode.
func alignNumberCell(raw string, tmpl *table.Template, width measure.Func) string {
	switch tmpl.Alignment {
	case jsonopt.Right:
		return padLeft(raw, tmpl.CompositeValueLength, width)
	case jsonopt.Decimal, jsonopt.Normalize:
		return alignDecimal(raw, tmpl, width)
	default: // Left
		return padRight(raw, tmpl.CompositeValueLength, width)
	}
}

func alignDecimal(raw string, tmpl *table.Template, width measure.Func) string {
	value := raw
	if tmpl.Alignment == jsonopt.Normalize {
		if f, err := strconv.ParseFloat(raw, 64); err == nil {
			value = strconv.FormatFloat(f, 'f', tmpl.MaxDigAfterDec, 64)
		}
	}
	sign, intPart, fracPart, hasFrac := splitDecimalCell(value)

	var sb strings.Builder
	sb.WriteString(strings.Repeat(" ", maxInt(0, tmpl.MaxDigBeforeDec-len(intPart))))
	sb.WriteString(sign)
	sb.WriteString(intPart)
	if tmpl.MaxDigAfterDec > 0 {
		if hasFrac {
			sb.WriteString(".")
			sb.WriteString(fracPart)
			sb.WriteString(strings.Repeat(" ", maxInt(0, tmpl.MaxDigAfterDec-len(fracPart))))
		} else {
			sb.WriteString(strings.Repeat(" ", tmpl.MaxDigAfterDec+1))
		}
	}
	return sb.String()
}

func splitDecimalCell(raw string) (sign, intPart, fracPart string, hasFrac bool) {
	s := raw
	if i := strings.IndexAny(s, "eE"); i >= 0 {
		s = s[:i]
	}
	if strings.HasPrefix(s, "-") || strings.HasPrefix(s, "+") {
		sign, s = s[:1], s[1:]
	}
	if i := strings.IndexByte(s, '.'); i >= 0 {
		return sign, s[:i], s[i+1:], true
	}
	return sign, s, "", false
}

func padLeft(s string, width int, wf measure.Func) string {
	w := wf(s)
	if w >= width {
		return s
	}
	return strings.Repeat(" ", width-w) + s
}

func padRight(s string, width int, wf measure.Func) string {
	w := wf(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
