package table

import (
	"strconv"
	"strings"

	"github.com/simon-lentz/jsonfmt/item"
	"github.com/simon-lentz/jsonfmt/jsonopt"
)

// measureNumbers computes the digit-grouping measurements a Number column
// needs for every alignment mode, then resolves CompositeValueLength and
// the final Alignment (degrading Normalize to Left when it cannot apply
// safely).
func measureNumbers(t *Template, rows []*item.Item, mo measureOptions) {
	t.Alignment = mo.alignment
	anyFractional := false

	for _, row := range rows {
		if row.Kind == item.Null {
			// A null slot still counts toward "digits before decimal" so a
			// null doesn't break decimal alignment.
			t.MaxDigBeforeDec = maxInt(t.MaxDigBeforeDec, 4)
			continue
		}
		v := mo.width(row.Value)
		t.MaxValueLength = maxInt(t.MaxValueLength, v)
		t.MaxAtomicValueLength = maxInt(t.MaxAtomicValueLength, v)

		before, after, hasFrac := splitDecimal(row.Value)
		t.MaxDigBeforeDec = maxInt(t.MaxDigBeforeDec, before)
		if hasFrac {
			anyFractional = true
			t.MaxDigAfterDec = maxInt(t.MaxDigAfterDec, after)
		}
	}

	if t.Alignment == jsonopt.Normalize && shouldDegrade(rows) {
		t.Alignment = jsonopt.Left
	}

	switch t.Alignment {
	case jsonopt.Decimal, jsonopt.Normalize:
		t.CompositeValueLength = t.MaxDigBeforeDec + t.MaxDigAfterDec
		if anyFractional {
			t.CompositeValueLength++
		}
	default:
		t.CompositeValueLength = t.MaxValueLength
	}
}

// splitDecimal reports the digit count before and after a decimal point in
// a JSON number's verbatim text, ignoring sign and any exponent suffix.
func splitDecimal(raw string) (before, after int, hasFrac bool) {
	s := raw
	if i := strings.IndexAny(s, "eE"); i >= 0 {
		s = s[:i]
	}
	s = strings.TrimPrefix(s, "-")
	s = strings.TrimPrefix(s, "+")
	if i := strings.IndexByte(s, '.'); i >= 0 {
		return len(s[:i]), len(s[i+1:]), true
	}
	return len(s), 0, false
}

// shouldDegrade reports whether any row in a Normalize-mode column forces
// degradation to Left alignment: NaN/±Inf, a value over 16 characters, an
// exponent, or a value that parses as zero without being textually zero.
func shouldDegrade(rows []*item.Item) bool {
	for _, row := range rows {
		if row.Kind == item.Null {
			continue
		}
		v := row.Value
		if len(v) > 16 {
			return true
		}
		if strings.ContainsAny(v, "eE") {
			return true
		}
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return true
		}
		if f == 0 && !isTextuallyZero(v) {
			return true
		}
	}
	return false
}

func isTextuallyZero(v string) bool {
	s := strings.TrimPrefix(v, "-")
	s = strings.TrimPrefix(s, "+")
	for _, r := range s {
		if r != '0' && r != '.' {
			return false
		}
	}
	return true
}
