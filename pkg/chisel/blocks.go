package chisel

// Composite block operations. All of them resolve a start anchor with the
// two-pass matcher, let a boundary policy produce the end index, delete
// strictly between the two (the start element itself is preserved), and
// insert new content immediately after the still-present start element.

// blockInfo reports what a composite block operation did.
type blockInfo struct {
	startIndex int
	removed    int
	inserted   int
	styleUsed  string
}

// replaceBlockBelowHeader replaces everything between the header paragraph
// and the next heading or TOC paragraph with new text paragraphs. The
// header itself is preserved.
func (d *Document) replaceBlockBelowHeader(header string, texts []string, style string, cfg *Config) (*blockInfo, error) {
	info, err := d.deleteBlockBelowHeader(header)
	if err != nil {
		return nil, err
	}

	styleUsed, err := d.resolveNewStyle(style, false, nil, cfg)
	if err != nil {
		return nil, err
	}

	// The header element survived the deletion, so it is still a valid
	// insertion anchor.
	headerEl := d.Paragraphs()[info.startIndex].el
	d.insertParagraphsAfter(headerEl, texts, styleUsed)

	info.inserted = len(texts)
	info.styleUsed = styleUsed
	return info, nil
}

// deleteBlockBelowHeader removes every paragraph after the header (by
// text) and before the next heading/TOC paragraph (by style). Returns the
// header's index and how many paragraphs were removed.
func (d *Document) deleteBlockBelowHeader(header string) (*blockInfo, error) {
	paras := d.Paragraphs()

	headerIdx := resolveAnchor(paras, header, anchorOptions{
		scope:   scopeHeaderish,
		fold:    true,
		skipTOC: true,
		after:   -1,
	})
	if headerIdx < 0 {
		return nil, NewNotFoundError("header", header)
	}

	end := nextBlockEnd(paras, headerIdx)

	for i := end - 1; i > headerIdx; i-- {
		d.removeElement(paras[i].el)
	}

	Debug("deleted block below header %q: paragraphs %d-%d", header, headerIdx+1, end-1)
	return &blockInfo{startIndex: headerIdx, removed: end - headerIdx - 1}, nil
}

// deleteBetweenAnchors resolves the start anchor and the block's end over
// the body element sequence (tables included) and removes every element
// strictly between them. endAnchor selects the explicit end-anchor policy;
// empty endAnchor selects the visual-distinctness heuristic. Returns the
// start element index and the removal count.
func (d *Document) deleteBetweenAnchors(startAnchor, endAnchor string) (*blockInfo, error) {
	elements := d.BlockElements()

	startIdx := resolveElementAnchor(d, elements, startAnchor, -1)
	if startIdx < 0 {
		return nil, NewNotFoundError("start anchor", startAnchor)
	}

	var endIdx int
	if endAnchor != "" {
		endIdx = resolveElementAnchor(d, elements, endAnchor, startIdx)
		if endIdx < 0 {
			return nil, NewNotFoundError("end anchor", endAnchor)
		}
	} else {
		endIdx = nextVisuallyDistinct(d, elements, startIdx)
	}

	for i := endIdx - 1; i > startIdx; i-- {
		d.removeElement(elements[i])
	}

	Debug("deleted block between anchors: elements %d-%d", startIdx+1, endIdx-1)
	return &blockInfo{startIndex: startIdx, removed: endIdx - startIdx - 1}, nil
}

// replaceBlockBetweenAnchors is the full anchor-pair replacement: delete
// the block, persist, re-open the saved document, re-resolve the start
// anchor from the persisted state, insert the new paragraphs after it,
// and persist again. The captured element handle is deliberately not
// trusted across the save/reload boundary.
func replaceBlockBetweenAnchors(path, startAnchor, endAnchor string, texts []string, style string, cfg *Config) (*blockInfo, error) {
	doc, err := Open(path)
	if err != nil {
		return nil, err
	}

	info, err := doc.deleteBetweenAnchors(startAnchor, endAnchor)
	if err != nil {
		return nil, err
	}

	if err := doc.Save(); err != nil {
		return nil, err
	}

	doc, err = Open(path)
	if err != nil {
		return nil, err
	}

	elements := doc.BlockElements()
	anchorIdx := resolveElementAnchor(doc, elements, startAnchor, -1)
	if anchorIdx < 0 {
		return nil, &NotFoundError{
			Kind:   "start anchor",
			Query:  startAnchor,
			Detail: "not found after deletion",
		}
	}

	styleUsed, err := doc.resolveNewStyle(style, false, nil, cfg)
	if err != nil {
		return nil, err
	}

	doc.insertParagraphsAfter(elements[anchorIdx], texts, styleUsed)

	if err := doc.Save(); err != nil {
		return nil, err
	}

	info.inserted = len(texts)
	info.styleUsed = styleUsed
	return info, nil
}
