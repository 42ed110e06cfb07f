package chisel

import "strings"

// Position says which side of the target paragraph an insert lands on.
type Position string

const (
	Before Position = "before"
	After  Position = "after"
)

// InsertTarget selects the paragraph an insert operation anchors on:
// by index when Index >= 0, otherwise the first paragraph whose text
// contains Text. TOC paragraphs are skipped in text search.
type InsertTarget struct {
	Text  string
	Index int
}

// TargetIndex selects a target paragraph by index.
func TargetIndex(i int) InsertTarget {
	return InsertTarget{Index: i}
}

// TargetText selects the first non-TOC paragraph containing text.
func TargetText(text string) InsertTarget {
	return InsertTarget{Text: text, Index: -1}
}

// resolveInsertTarget maps an InsertTarget to a concrete paragraph and
// its index.
func (d *Document) resolveInsertTarget(target InsertTarget) (*Paragraph, int, error) {
	paras := d.Paragraphs()

	if target.Index >= 0 {
		if target.Index >= len(paras) {
			return nil, -1, NewRangeError("target_paragraph_index", target.Index,
				"Invalid target_paragraph_index: %d. Document has %d paragraphs.", target.Index, len(paras))
		}
		return paras[target.Index], target.Index, nil
	}

	for i, p := range paras {
		if p.IsTOC() {
			continue
		}
		if target.Text != "" && containsText(p.GetText(), target.Text) {
			return p, i, nil
		}
	}
	return nil, -1, &NotFoundError{
		Kind:   "target paragraph",
		Query:  target.Text,
		Detail: "TOC paragraphs are skipped in text search",
	}
}

// attachNear places the detached paragraph on the requested side of the
// target.
func (d *Document) attachNear(target *Paragraph, p *Paragraph, position Position) {
	if position == Before {
		d.insertBefore(target.el, p.el)
	} else {
		d.insertAfter(target.el, p.el)
	}
}

// insertParagraphNear inserts one new paragraph next to the target. The
// style comes from the explicit parameter or, absent one, from the target
// paragraph. When copyFormatFrom names a paragraph index, the character
// formatting of that paragraph's first run is copied onto the new
// paragraph's first run; this is additive to the paragraph style, not a
// substitute for it.
func (d *Document) insertParagraphNear(target InsertTarget, text string, position Position, style string, copyFormatFrom *int, cfg *Config) (int, string, error) {
	targetPara, targetIdx, err := d.resolveInsertTarget(target)
	if err != nil {
		return -1, "", err
	}

	styleUsed, err := d.resolveNewStyle(style, true, targetPara, cfg)
	if err != nil {
		return -1, "", err
	}

	p := d.newParagraph(text, styleUsed)

	if copyFormatFrom != nil {
		paras := d.Paragraphs()
		if *copyFormatFrom >= 0 && *copyFormatFrom < len(paras) {
			sourceRuns := paras[*copyFormatFrom].Runs()
			newRuns := p.Runs()
			if len(sourceRuns) > 0 && len(newRuns) > 0 {
				newRuns[0].CopyFormatFrom(sourceRuns[0])
			}
		}
	}

	d.attachNear(targetPara, p, position)
	return targetIdx, styleUsed, nil
}

// insertHeaderNear inserts a heading paragraph next to the target, styled
// with the requested heading style subject to the strict-styles rule.
func (d *Document) insertHeaderNear(target InsertTarget, title string, position Position, style string, cfg *Config) (int, string, error) {
	targetPara, targetIdx, err := d.resolveInsertTarget(target)
	if err != nil {
		return -1, "", err
	}

	styleUsed, err := d.resolveNewStyle(style, false, nil, cfg)
	if err != nil {
		return -1, "", err
	}

	p := d.newParagraph(title, styleUsed)
	d.attachNear(targetPara, p, position)
	return targetIdx, styleUsed, nil
}

// numbering definition ids Word documents conventionally carry.
const (
	numIDBullet  = 1
	numIDDecimal = 2
)

// insertListNear inserts items as a bulleted or numbered list next to the
// target. Each item gets list-paragraph styling (first defined of "List
// Paragraph", "ListParagraph", "Normal") plus explicit w:numPr numbering.
// Items land in input order on both sides of the target.
func (d *Document) insertListNear(target InsertTarget, items []string, position Position, numbered bool) (int, int, error) {
	targetPara, targetIdx, err := d.resolveInsertTarget(target)
	if err != nil {
		return -1, 0, err
	}

	numID := numIDBullet
	if numbered {
		numID = numIDDecimal
	}

	styleName := ""
	for _, candidate := range []string{"List Paragraph", "ListParagraph", "Normal"} {
		if _, defined := d.styles.IDFor(candidate); defined {
			styleName = candidate
			break
		}
	}

	build := func(item string) *Paragraph {
		p := d.newParagraph(item, styleName)
		p.setNumbering(numID, 0)
		return p
	}

	if position == Before {
		for _, item := range items {
			d.attachNear(targetPara, build(item), Before)
		}
	} else {
		for i := len(items) - 1; i >= 0; i-- {
			d.attachNear(targetPara, build(items[i]), After)
		}
	}

	return targetIdx, len(items), nil
}

// containsText reports whether haystack contains needle literally. Insert
// targeting is a raw substring check; only anchor and header resolution
// normalize.
func containsText(haystack, needle string) bool {
	return needle != "" && strings.Contains(haystack, needle)
}
