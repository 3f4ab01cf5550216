// Package table implements component E, the per-container table template
// analysis the layout selector uses to decide whether a container's
// children can be rendered as a column-aligned table or compact-multiline
// block.
package table

import (
	"github.com/simon-lentz/jsonfmt/item"
	"github.com/simon-lentz/jsonfmt/jsonopt"
	"github.com/simon-lentz/jsonfmt/measure"
)

// ColumnType classifies the values a table column (or a whole container
// being considered for table layout) holds.
type ColumnType int

const (
	Unknown ColumnType = iota
	Simple
	Number
	Array
	Object
	Mixed
)

// PadType selects which bracket-padding variant a nested Array/Object
// column renders its cells with.
type PadType int

const (
	PadSimple PadType = iota
	PadComplex
)

// Template is the per-column analysis of one container's children, or,
// recursively, of a column that is itself an array/object.
type Template struct {
	LocationInParent string // property name this column binds to; "" when positional

	Type ColumnType

	NameLength, NameMinimum                                        int
	MaxValueLength, MaxAtomicValueLength                           int
	PrefixCommentLength, MiddleCommentLength, PostfixCommentLength int

	AnyMiddleCommentHasNewline bool
	IsAnyPostCommentLineStyle  bool
	RequiresMultipleLines      bool
	ContainsNull               bool

	// Children holds, for Array/Object columns, the recursively-built
	// sub-templates: keyed by property name for Object, by stringified
	// index for Array.
	Children   map[string]*Template
	childOrder []string

	MaxDigBeforeDec, MaxDigAfterDec int
	Alignment                       jsonopt.NumberAlignment
	PadType                         PadType

	CompositeValueLength      int
	ShorterThanNullAdjustment int
	TotalLength               int

	rows []*item.Item // the items this column was measured from
}

// Rows exposes the items this template was measured over, in order.
func (t *Template) Rows() []*item.Item { return t.rows }

// measureOptions bundles the knobs measurement needs, threaded down
// through recursive Build calls without re-reading the full Options value
// at every level.
type measureOptions struct {
	width     measure.Func
	alignment jsonopt.NumberAlignment
	maxDepth  int
}

// Build analyzes rows (a container's Children, already filtered down to
// value items — no standalone comments/blank lines) as a single table
// column, recursing into nested Array/Object structure up to maxDepth
// levels (spec: "Recursion proceeds only while ... enabled by the
// caller").
func Build(rows []*item.Item, opts jsonopt.Options, maxDepth int) *Template {
	return build(rows, "", measureOptions{width: opts.StringWidth, alignment: opts.NumberListAlignment, maxDepth: maxDepth})
}

func build(rows []*item.Item, location string, mo measureOptions) *Template {
	t := &Template{LocationInParent: location, rows: rows}

	for _, row := range rows {
		t.NameLength = maxInt(t.NameLength, mo.width(row.Name))
		if row.Name != "" {
			t.NameMinimum = minPositive(t.NameMinimum, mo.width(row.Name))
		}
		t.PrefixCommentLength = maxInt(t.PrefixCommentLength, mo.width(row.PrefixComment))
		t.MiddleCommentLength = maxInt(t.MiddleCommentLength, mo.width(row.MiddleComment))
		t.PostfixCommentLength = maxInt(t.PostfixCommentLength, mo.width(row.PostfixComment))
		if row.MiddleCommentHasNewline {
			t.AnyMiddleCommentHasNewline = true
		}
		if row.IsPostCommentLineStyle && row.PostfixComment != "" {
			t.IsAnyPostCommentLineStyle = true
		}
		if row.RequiresMultipleLines {
			t.RequiresMultipleLines = true
		}

		rowType := kindToColumnType(row.Kind)
		if row.Kind == item.Null {
			t.ContainsNull = true
			continue // null's own type never promotes/demotes Type
		}
		t.Type = promote(t.Type, rowType)
	}

	switch t.Type {
	case Number:
		measureNumbers(t, rows, mo)
	case Array, Object:
		buildNested(t, rows, mo)
	case Simple, Unknown:
		for _, row := range rows {
			if row.Kind == item.Null {
				continue
			}
			v := mo.width(row.Value)
			t.MaxValueLength = maxInt(t.MaxValueLength, v)
			t.MaxAtomicValueLength = maxInt(t.MaxAtomicValueLength, v)
		}
	}

	applyNullAdjustment(t)
	recompute(t)
	return t
}

// buildNested recurses one level into Array/Object-typed rows: for Object
// rows it indexes sub-columns by the union of property names (demoting to
// Simple if any row-object has a duplicate key); for Array rows it indexes
// positionally. Recursion stops once maxDepth is exhausted, at which point
// the column is measured as an opaque Simple value using each row's own
// MinimumTotalLength (set by widthpass) as its atomic width.
func buildNested(t *Template, rows []*item.Item, mo measureOptions) {
	if mo.maxDepth <= 0 {
		t.Type = Simple
		for _, row := range rows {
			v := row.MinimumTotalLength
			t.MaxValueLength = maxInt(t.MaxValueLength, v)
			t.MaxAtomicValueLength = maxInt(t.MaxAtomicValueLength, v)
		}
		return
	}

	if hasDuplicateKeys(rows) {
		t.Type = Simple
		for _, row := range rows {
			v := row.MinimumTotalLength
			t.MaxValueLength = maxInt(t.MaxValueLength, v)
			t.MaxAtomicValueLength = maxInt(t.MaxAtomicValueLength, v)
		}
		return
	}

	t.Children = map[string]*Template{}
	nested := mo
	nested.maxDepth = mo.maxDepth - 1

	if t.Type == Object {
		keys := unionPropertyNames(rows)
		for _, key := range keys {
			var col []*item.Item
			for _, row := range rows {
				col = append(col, memberNamed(row, key))
			}
			t.Children[key] = build(filterNonNil(col), key, nested)
			t.childOrder = append(t.childOrder, key)
		}
	} else {
		width := maxArrayWidth(rows)
		for i := 0; i < width; i++ {
			var col []*item.Item
			for _, row := range rows {
				col = append(col, elementAt(row, i))
			}
			key := indexKey(i)
			t.Children[key] = build(filterNonNil(col), key, nested)
			t.childOrder = append(t.childOrder, key)
		}
	}

	for _, key := range t.childOrder {
		child := t.Children[key]
		t.MaxValueLength = maxInt(t.MaxValueLength, child.TotalLength)
		t.MaxAtomicValueLength = maxInt(t.MaxAtomicValueLength, child.TotalLength)
		if child.RequiresMultipleLines {
			t.RequiresMultipleLines = true
		}
	}
}

func kindToColumnType(k item.Kind) ColumnType {
	switch k {
	case item.Null:
		return Unknown
	case item.Number:
		return Number
	case item.Array:
		return Array
	case item.Object:
		return Object
	default:
		return Simple
	}
}

func promote(current, next ColumnType) ColumnType {
	switch current {
	case Unknown:
		return next
	case next:
		return current
	default:
		return Mixed
	}
}

func applyNullAdjustment(t *Template) {
	if !t.ContainsNull || t.Type == Mixed || t.Type == Unknown {
		return
	}
	nullWidth := 4 // len("null")
	nonNullWidth := t.CompositeValueLength
	if nonNullWidth == 0 {
		nonNullWidth = t.MaxValueLength
	}
	if nonNullWidth < nullWidth {
		t.ShorterThanNullAdjustment = nullWidth - nonNullWidth
	}
}

func recompute(t *Template) {
	t.PadType = PadSimple
	for _, row := range t.rows {
		if row.Kind.IsContainer() && len(row.Children) > 0 {
			t.PadType = PadComplex
			break
		}
	}

	if t.Type != Number {
		t.CompositeValueLength = t.MaxValueLength + t.ShorterThanNullAdjustment
	} else {
		t.CompositeValueLength += t.ShorterThanNullAdjustment
	}

	nameCol := 0
	if t.NameLength > 0 {
		nameCol = t.NameLength + 2 // ": "
	}
	comments := 0
	if t.PrefixCommentLength > 0 {
		comments += t.PrefixCommentLength + 1
	}
	if t.MiddleCommentLength > 0 {
		comments += t.MiddleCommentLength + 1
	}
	if t.PostfixCommentLength > 0 {
		comments += t.PostfixCommentLength + 1
	}
	t.TotalLength = nameCol + t.CompositeValueLength + comments
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minPositive(current, candidate int) int {
	if candidate <= 0 {
		return current
	}
	if current == 0 || candidate < current {
		return candidate
	}
	return current
}

func hasDuplicateKeys(rows []*item.Item) bool {
	for _, row := range rows {
		if row.Kind != item.Object {
			continue
		}
		seen := map[string]bool{}
		for _, child := range row.Children {
			if child.Kind.IsStandaloneComment() {
				continue
			}
			if seen[child.Name] {
				return true
			}
			seen[child.Name] = true
		}
	}
	return false
}

func unionPropertyNames(rows []*item.Item) []string {
	seen := map[string]bool{}
	var order []string
	for _, row := range rows {
		if row.Kind != item.Object {
			continue
		}
		for _, child := range row.Children {
			if child.Kind.IsStandaloneComment() {
				continue
			}
			if !seen[child.Name] {
				seen[child.Name] = true
				order = append(order, child.Name)
			}
		}
	}
	return order
}

func memberNamed(row *item.Item, name string) *item.Item {
	if row.Kind != item.Object {
		return nil
	}
	for _, child := range row.Children {
		if child.Kind.IsStandaloneComment() {
			continue
		}
		if child.Name == name {
			return child
		}
	}
	return nil
}

func maxArrayWidth(rows []*item.Item) int {
	width := 0
	for _, row := range rows {
		if row.Kind != item.Array {
			continue
		}
		n := 0
		for _, child := range row.Children {
			if !child.Kind.IsStandaloneComment() {
				n++
			}
		}
		width = maxInt(width, n)
	}
	return width
}

func elementAt(row *item.Item, i int) *item.Item {
	if row.Kind != item.Array {
		return nil
	}
	idx := 0
	for _, child := range row.Children {
		if child.Kind.IsStandaloneComment() {
			continue
		}
		if idx == i {
			return child
		}
		idx++
	}
	return nil
}

func filterNonNil(items []*item.Item) []*item.Item {
	out := make([]*item.Item, 0, len(items))
	for _, it := range items {
		if it != nil {
			out = append(out, it)
		}
	}
	return out
}

func indexKey(i int) string {
	digits := "0123456789"
	if i < 10 {
		return string(digits[i])
	}
	// Arrays wide enough to need more than one digit are vanishingly rare
	// as table columns; fall back to a simple manual conversion.
	var buf []byte
	for i > 0 {
		buf = append([]byte{digits[i%10]}, buf...)
		i /= 10
	}
	return string(buf)
}
