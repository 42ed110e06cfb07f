package chisel

// Cross-run text replacement. A paragraph's visible text may span several
// runs with independent formatting, so a literal match on the concatenated
// text can begin and end inside different runs. The replacer builds an
// explicit character-to-run offset map per replacement, which makes the
// single-run and multi-run cases symmetric: both resolve the match to
// (run, offset) pairs before any text moves.

// runePos addresses one character of a paragraph's concatenated text.
type runePos struct {
	run int // run index within the paragraph
	off int // rune offset within that run's text
}

// replaceInParagraph replaces every occurrence of old with new inside one
// paragraph and returns the count. A match inside a single run is spliced
// in place. A match spanning runs puts the whole replacement into the
// first spanned run (whose formatting wins), empties the intermediate
// runs without removing them, and leaves the last run holding only its
// suffix after the match. Scanning resumes after each spliced
// replacement, so the loop terminates even when new contains old.
func replaceInParagraph(p *Paragraph, old, new string) int {
	if old == "" {
		return 0
	}
	oldRunes := []rune(old)
	newRunes := []rune(new)

	count := 0
	searchFrom := 0
	for {
		runs := p.Runs()
		if len(runs) == 0 {
			return count
		}

		var full []rune
		var offsets []runePos
		runTexts := make([][]rune, len(runs))
		for ri, r := range runs {
			text := []rune(r.GetText())
			runTexts[ri] = text
			for ci := range text {
				offsets = append(offsets, runePos{run: ri, off: ci})
			}
			full = append(full, text...)
		}

		start := indexRunes(full, oldRunes, searchFrom)
		if start < 0 {
			return count
		}
		end := start + len(oldRunes) // exclusive

		first := offsets[start]
		last := offsets[end-1]

		if first.run == last.run {
			text := runTexts[first.run]
			runs[first.run].SetText(string(text[:first.off]) + new + string(text[last.off+1:]))
		} else {
			runs[first.run].SetText(string(runTexts[first.run][:first.off]) + new)
			for ri := first.run + 1; ri < last.run; ri++ {
				runs[ri].SetText("")
			}
			runs[last.run].SetText(string(runTexts[last.run][last.off+1:]))
		}

		count++
		searchFrom = start + len(newRunes)
	}
}

// indexRunes returns the index of the first occurrence of needle in
// haystack at or after from, or -1.
func indexRunes(haystack, needle []rune, from int) int {
	if from < 0 {
		from = 0
	}
	for i := from; i+len(needle) <= len(haystack); i++ {
		match := true
		for j := range needle {
			if haystack[i+j] != needle[j] {
				match = false
				break
			}
		}
		if match {
			return i
		}
	}
	return -1
}

// findAndReplace replaces old with new throughout the document: body
// paragraphs first, then paragraphs inside table cells. TOC-styled
// paragraphs hold generated text, not source of truth, and are never
// scanned. Returns the total replacement count.
func (d *Document) findAndReplace(old, new string) int {
	count := 0
	for _, p := range d.Paragraphs() {
		if p.IsTOC() {
			continue
		}
		count += replaceInParagraph(p, old, new)
	}
	for _, t := range d.Tables() {
		for _, row := range t.Rows() {
			for _, cell := range row.Cells() {
				for _, p := range cell.Paragraphs() {
					if p.IsTOC() {
						continue
					}
					count += replaceInParagraph(p, old, new)
				}
			}
		}
	}
	return count
}
