package chisel

// ParagraphRecord is one paragraph as inspection operations report it.
type ParagraphRecord struct {
	Index     int
	Text      string
	Style     string
	IsHeading bool
}

// SectionResult describes a heading and the paragraphs of its section.
// ContentStartIndex and ContentEndIndex are nil when the section has no
// content paragraphs; NextHeadingIndex is nil when the section runs to
// the end of the document.
type SectionResult struct {
	HeadingIndex      int
	HeadingText       string
	HeadingStyle      string
	HeadingLevel      int
	ContentStartIndex *int
	ContentEndIndex   *int
	NextHeadingIndex  *int
	Paragraphs        []ParagraphRecord
}

// getSection locates a heading by text and collects its section: every
// paragraph up to (not including) the next heading of the same or a higher
// level. Deeper subsection headings stay inside the section as content.
func (d *Document) getSection(headingText string, includeHeading bool) (*SectionResult, error) {
	paras := d.Paragraphs()

	headingIdx := resolveAnchor(paras, headingText, anchorOptions{
		scope: scopeHeadingsOnly,
		fold:  true,
		after: -1,
	})
	if headingIdx < 0 {
		return nil, NewNotFoundError("heading", headingText)
	}

	heading := paras[headingIdx]
	level := heading.HeadingLevel()
	if level == 0 {
		level = 1
	}

	result := &SectionResult{
		HeadingIndex: headingIdx,
		HeadingText:  heading.GetText(),
		HeadingStyle: heading.Style(),
		HeadingLevel: level,
	}

	contentEnd := len(paras) - 1
	if next := nextHeadingAtLevel(paras, headingIdx, level); next >= 0 {
		result.NextHeadingIndex = intPtr(next)
		contentEnd = next - 1
	}

	if headingIdx+1 <= contentEnd {
		result.ContentStartIndex = intPtr(headingIdx + 1)
	}
	if contentEnd > headingIdx {
		result.ContentEndIndex = intPtr(contentEnd)
	}

	start := headingIdx
	if !includeHeading {
		start = headingIdx + 1
	}
	for i := start; i <= contentEnd; i++ {
		result.Paragraphs = append(result.Paragraphs, paragraphRecord(i, paras[i]))
	}

	return result, nil
}

func paragraphRecord(index int, p *Paragraph) ParagraphRecord {
	return ParagraphRecord{
		Index:     index,
		Text:      p.GetText(),
		Style:     p.Style(),
		IsHeading: p.IsHeading(),
	}
}

func intPtr(n int) *int {
	return &n
}
