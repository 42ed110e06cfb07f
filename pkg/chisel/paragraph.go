package chisel

import (
	"strings"

	"github.com/beevik/etree"
)

// Paragraph wraps a w:p element. Its visible text is always the
// concatenation of its runs' texts in order; runs may be emptied without
// the paragraph losing its identity or position.
type Paragraph struct {
	el     *etree.Element
	styles *StyleMap
}

// GetText returns the concatenated text of all runs in the paragraph.
func (p *Paragraph) GetText() string {
	var b strings.Builder
	for _, r := range p.Runs() {
		b.WriteString(r.GetText())
	}
	return b.String()
}

// Runs returns the paragraph's runs in document order.
func (p *Paragraph) Runs() []*Run {
	var runs []*Run
	for _, child := range p.el.ChildElements() {
		if child.Tag == "r" {
			runs = append(runs, &Run{el: child})
		}
	}
	return runs
}

// AddRun appends a run with the given text and returns it.
func (p *Paragraph) AddRun(text string) *Run {
	r := p.el.CreateElement("w:r")
	appendRunContent(r, text)
	return &Run{el: r}
}

// clearRuns removes every run from the paragraph, leaving paragraph
// properties untouched.
func (p *Paragraph) clearRuns() {
	for _, child := range p.el.ChildElements() {
		if child.Tag == "r" {
			p.el.RemoveChild(child)
		}
	}
}

// StyleID returns the raw w:pStyle id, or "" when the paragraph has none.
func (p *Paragraph) StyleID() string {
	pPr := p.properties()
	if pPr == nil {
		return ""
	}
	pStyle := pPr.SelectElement("w:pStyle")
	if pStyle == nil {
		return ""
	}
	return pStyle.SelectAttrValue("w:val", "")
}

// Style returns the display name of the paragraph's style. A paragraph
// without an explicit style is "Normal".
func (p *Paragraph) Style() string {
	id := p.StyleID()
	if id == "" {
		return "Normal"
	}
	return p.styles.NameFor(id)
}

// SetStyle applies a style by display name or raw id. An empty name removes
// the explicit style, reverting the paragraph to "Normal".
func (p *Paragraph) SetStyle(name string) {
	pPr := p.properties()
	if name == "" || strings.EqualFold(name, "Normal") {
		if pPr != nil {
			if pStyle := pPr.SelectElement("w:pStyle"); pStyle != nil {
				pPr.RemoveChild(pStyle)
			}
		}
		return
	}
	id, _ := p.styles.IDFor(name)
	pPr = p.ensureProperties()
	pStyle := pPr.SelectElement("w:pStyle")
	if pStyle == nil {
		pStyle = etree.NewElement("w:pStyle")
		pPr.InsertChildAt(0, pStyle)
	}
	pStyle.CreateAttr("w:val", id)
}

// IsHeading reports whether the paragraph's style is a heading style.
func (p *Paragraph) IsHeading() bool {
	return isHeadingStyle(p.Style())
}

// IsTOC reports whether the paragraph carries generated table-of-contents
// content. TOC paragraphs are excluded from text search and replacement.
func (p *Paragraph) IsTOC() bool {
	return isTOCStyle(p.Style())
}

// HeadingLevel returns N for a "Heading N" style and 1 for any other
// heading style name. Non-heading paragraphs report 0.
func (p *Paragraph) HeadingLevel() int {
	if !p.IsHeading() {
		return 0
	}
	if level, ok := parseHeadingLevel(p.Style()); ok {
		return level
	}
	return 1
}

// properties returns the w:pPr child, or nil when the paragraph has none.
func (p *Paragraph) properties() *etree.Element {
	return p.el.SelectElement("w:pPr")
}

// ensureProperties returns the w:pPr child, creating it as the first child
// when missing. OOXML requires paragraph properties before paragraph content.
func (p *Paragraph) ensureProperties() *etree.Element {
	if pPr := p.properties(); pPr != nil {
		return pPr
	}
	pPr := etree.NewElement("w:pPr")
	p.el.InsertChildAt(0, pPr)
	return pPr
}

// setNumbering attaches w:numPr numbering to the paragraph: numID selects
// the numbering definition (1 bullet, 2 decimal) and level the indentation.
// Existing numbering is replaced, not duplicated.
func (p *Paragraph) setNumbering(numID, level int) {
	pPr := p.ensureProperties()
	if existing := pPr.SelectElement("w:numPr"); existing != nil {
		pPr.RemoveChild(existing)
	}
	numPr := pPr.CreateElement("w:numPr")
	ilvl := numPr.CreateElement("w:ilvl")
	ilvl.CreateAttr("w:val", itoa(level))
	num := numPr.CreateElement("w:numId")
	num.CreateAttr("w:val", itoa(numID))
}

// hasAnchorFormatting reports whether any run in the paragraph carries
// bold, all-caps, or an explicit font size. The block-boundary heuristic
// treats such a paragraph as the next anchor-like paragraph, which also
// means a legitimately bold word inside body content terminates a block.
func (p *Paragraph) hasAnchorFormatting() bool {
	for _, r := range p.Runs() {
		if r.hasProperty("w:b") || r.hasProperty("w:caps") || r.hasProperty("w:sz") {
			return true
		}
	}
	return false
}
