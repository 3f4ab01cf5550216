// Package widthpass implements a single post-order pass over the item
// tree that fills in every width field package item declares, plus
// RequiresMultipleLines, so layout selection never has to re-measure a
// subtree it has already visited.
package widthpass

import (
	"strings"

	"github.com/simon-lentz/jsonfmt/item"
	"github.com/simon-lentz/jsonfmt/measure"
)

// colonOverhead and commentOverhead are the non-content widths widthpass
// charges a scalar's MinimumTotalLength for: a ": " between a property name
// and its value, plus one space before each attached comment. It intentionally ignores
// comma/bracket padding, which varies by container style and is added by
// later passes — this is a lower bound, not the final rendered width.
const colonOverhead = 2
const commentOverhead = 1

// Run recursively measures it and every descendant, mutating each Item's
// width fields and RequiresMultipleLines flag in place.
func Run(it *item.Item, width measure.Func) {
	if it.Name != "" {
		it.NameLength = width(it.Name)
	}
	it.PrefixCommentLength = width(it.PrefixComment)
	it.MiddleCommentLength = width(it.MiddleComment)
	it.PostfixCommentLength = width(it.PostfixComment)

	if it.Kind.IsContainer() {
		runContainer(it, width)
		return
	}

	it.ValueLength = width(it.Value)
	it.RequiresMultipleLines = containsNewline(it.Value) ||
		containsNewline(it.PrefixComment) ||
		it.MiddleCommentHasNewline ||
		containsNewline(it.PostfixComment)
	it.MinimumTotalLength = scalarMinimum(it)
}

func runContainer(it *item.Item, width measure.Func) {
	requiresMultiple := false
	sum := 0
	n := 0

	for _, child := range it.Children {
		Run(child, width)

		if child.Kind.IsStandaloneComment() {
			requiresMultiple = true
			continue
		}
		n++
		sum += child.MinimumTotalLength
		if child.RequiresMultipleLines {
			requiresMultiple = true
		}
		if child.IsPostCommentLineStyle && child.PostfixComment != "" {
			requiresMultiple = true
		}
	}
	if n > 1 {
		sum += (n - 1) * 2 // minimal ", " between siblings
	}

	it.RequiresMultipleLines = requiresMultiple ||
		containsNewline(it.PrefixComment) ||
		it.MiddleCommentHasNewline ||
		containsNewline(it.PostfixComment)

	// 2 for the bracket pair; commentOverhead-weighted extras added below.
	it.ValueLength = 2 + sum
	it.MinimumTotalLength = it.ValueLength + commentExtras(it)
}

func scalarMinimum(it *item.Item) int {
	total := it.ValueLength
	if it.NameLength > 0 {
		total += it.NameLength + colonOverhead
	}
	return total + commentExtras(it)
}

func commentExtras(it *item.Item) int {
	total := 0
	if it.PrefixCommentLength > 0 {
		total += it.PrefixCommentLength + commentOverhead
	}
	if it.MiddleCommentLength > 0 {
		total += it.MiddleCommentLength + commentOverhead
	}
	if it.PostfixCommentLength > 0 {
		total += it.PostfixCommentLength + commentOverhead
	}
	return total
}

func containsNewline(s string) bool { return strings.ContainsRune(s, '\n') }
