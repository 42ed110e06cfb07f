package chisel

import "github.com/beevik/etree"

// Range mutator primitives. Every mutation validates its bounds before
// touching the tree and removes elements in strictly descending index
// order, so no step ever dereferences an index invalidated by an earlier
// structural change.

// validateParagraphIndex checks a single paragraph index against the
// document's current paragraph count.
func validateParagraphIndex(index, total int) error {
	if index < 0 || index >= total {
		return NewRangeError("paragraph_index", index,
			"Invalid paragraph index: %d. Document has %d paragraphs.", index, total)
	}
	return nil
}

// validateIndexRange checks an inclusive index range with a granular
// message per failing bound. Used by deletion and read-range operations.
func validateIndexRange(start, end, total int) error {
	if start < 0 {
		return NewRangeError("start_index", start, "start_index (%d) must be >= 0", start)
	}
	if end >= total {
		return NewRangeError("end_index", end, "end_index (%d) exceeds paragraph count (%d)", end, total)
	}
	if start > end {
		return NewRangeError("start_index", start, "start_index (%d) > end_index (%d)", start, end)
	}
	return nil
}

// validateReplaceRange checks replace bounds with a combined message that
// names the document's actual index range.
func validateReplaceRange(start, end, total int) error {
	if start < 0 || end >= total || start > end {
		return NewRangeError("range", start,
			"Invalid range [%d, %d]. Document has %d paragraphs (0-%d).", start, end, total, total-1)
	}
	return nil
}

// resolveNewStyle resolves the style display name new paragraphs receive.
// Precedence: explicit style, then the style of the paragraph at start
// when preserve is set, then "Normal". An explicit style missing from the
// document fails under StrictStyles and falls back to "Normal" with a
// warning otherwise.
func (d *Document) resolveNewStyle(explicit string, preserve bool, startPara *Paragraph, cfg *Config) (string, error) {
	if explicit != "" {
		if _, defined := d.styles.IDFor(explicit); !defined && d.styles.Len() > 0 {
			if cfg.StrictStyles {
				return "", NewNotFoundError("style", explicit)
			}
			Warn("style %q not defined in document, falling back to Normal", explicit)
			return "Normal", nil
		}
		return explicit, nil
	}
	if preserve && startPara != nil {
		return startPara.Style(), nil
	}
	return "Normal", nil
}

// deleteParagraphRange removes body paragraphs [start, end] inclusive,
// highest index first.
func (d *Document) deleteParagraphRange(start, end int) error {
	paras := d.Paragraphs()
	if err := validateIndexRange(start, end, len(paras)); err != nil {
		return err
	}
	for i := end; i >= start; i-- {
		d.removeElement(paras[i].el)
	}
	return nil
}

// replaceParagraphRange removes body paragraphs [start, end] inclusive and
// inserts texts as new paragraphs in their place, each carrying style.
// The insertion point is captured as the element before start (body start
// when start is 0) so the new paragraphs land anchor-relative regardless
// of what the deletion renumbered. Empty strings become blank spacer
// paragraphs.
func (d *Document) replaceParagraphRange(start, end int, texts []string, style string) error {
	paras := d.Paragraphs()
	if err := validateReplaceRange(start, end, len(paras)); err != nil {
		return err
	}

	var anchor *etree.Element
	if start > 0 {
		anchor = paras[start-1].el
	}

	for i := end; i >= start; i-- {
		d.removeElement(paras[i].el)
	}

	d.insertParagraphsAfter(anchor, texts, style)
	return nil
}

// insertParagraphsAfter inserts texts as new styled paragraphs immediately
// after anchor, preserving input order exactly. A nil anchor inserts at
// the start of the body.
func (d *Document) insertParagraphsAfter(anchor *etree.Element, texts []string, style string) {
	prev := anchor
	for _, text := range texts {
		p := d.newParagraph(text, style)
		if prev == nil {
			d.insertAtBodyStart(p.el)
		} else {
			d.insertAfter(prev, p.el)
		}
		prev = p.el
	}
}
