package layout

import (
	"github.com/simon-lentz/jsonfmt/item"
)

// emitContainer chooses a layout for it (already known to be an Array or
// Object) and writes it, leaving the final line pending for the caller to
// finish with a trailing comma/postfix comment.
func (e *Emitter) emitContainer(it *item.Item, depth int, reserveComma bool) error {
	forceExpand := e.opts.AlwaysExpandDepth >= 0 && depth <= e.opts.AlwaysExpandDepth

	avail := e.availableWidth(depth)
	commaWidth := 0
	if reserveComma {
		commaWidth = len(rowComma)
	}

	if !forceExpand {
		if !it.RequiresMultipleLines && it.Complexity <= e.opts.MaxInlineComplexity {
			if text, ok := renderInline(it, e.tok); ok {
				if e.opts.StringWidth(text)+commaWidth <= avail {
					e.buf.Add(text)
					return nil
				}
			}
		}

		if it.Kind == item.Array {
			if ok, err := e.tryCompactMultiline(it, depth, avail); err != nil {
				return err
			} else if ok {
				return nil
			}
		}

		if ok, err := e.tryTable(it, depth, avail, commaWidth); err != nil {
			return err
		} else if ok {
			return nil
		}
	}

	return e.emitExpanded(it, depth)
}
