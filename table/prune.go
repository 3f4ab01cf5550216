package table

// Fits reports whether t's measured TotalLength (plus the comma/padding
// overhead the caller already knows about) is within maxWidth.
func (t *Template) Fits(maxWidth int) bool {
	return t.TotalLength <= maxWidth
}

// TryToFit repeatedly prunes nested Array/Object columns to progressively
// shallower complexity until the template fits maxWidth or there is
// nothing left to prune. This lets the caller try the widest table first
// and fall back gracefully.
func (t *Template) TryToFit(maxWidth int, startComplexity int) bool {
	if t.Fits(maxWidth) {
		return true
	}
	for complexity := startComplexity - 1; complexity >= 0; complexity-- {
		t.pruneAndRecompute(complexity)
		if t.Fits(maxWidth) {
			return true
		}
	}
	return false
}

// pruneAndRecompute clears the children of every sub-template whose depth
// exceeds allowedComplexity, or that has fewer than two rows, then
// recomputes composite and total lengths bottom-up.
func (t *Template) pruneAndRecompute(allowedComplexity int) {
	pruneAtDepth(t, allowedComplexity, 0)
}

func pruneAtDepth(t *Template, allowed, depth int) {
	if t.Children == nil {
		return
	}
	if depth >= allowed || len(t.rows) < 2 {
		collapseToSimple(t)
		return
	}
	for _, key := range t.childOrder {
		pruneAtDepth(t.Children[key], allowed, depth+1)
	}
	recomputeFromChildren(t)
}

// collapseToSimple discards a template's nested column structure, folding
// it back to an opaque Simple measurement keyed off each row's own
// MinimumTotalLength.
func collapseToSimple(t *Template) {
	t.Children = nil
	t.childOrder = nil
	t.Type = Simple
	t.MaxValueLength = 0
	t.MaxAtomicValueLength = 0
	for _, row := range t.rows {
		v := row.MinimumTotalLength
		t.MaxValueLength = maxInt(t.MaxValueLength, v)
		t.MaxAtomicValueLength = maxInt(t.MaxAtomicValueLength, v)
	}
	recompute(t)
}

func recomputeFromChildren(t *Template) {
	t.MaxValueLength = 0
	t.MaxAtomicValueLength = 0
	for _, key := range t.childOrder {
		child := t.Children[key]
		t.MaxValueLength = maxInt(t.MaxValueLength, child.TotalLength)
		t.MaxAtomicValueLength = maxInt(t.MaxAtomicValueLength, child.TotalLength)
	}
	recompute(t)
}
