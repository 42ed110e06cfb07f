package chisel

import (
	"strings"

	"github.com/beevik/etree"
)

// Run wraps a w:r element, the atomic unit of character-uniform text inside
// a paragraph. A run is exclusively owned by its parent paragraph;
// formatting is copied, never shared, when it moves between runs.
type Run struct {
	el *etree.Element
}

// GetText returns the visible text of the run. Tab elements contribute "\t"
// and break/carriage-return elements contribute "\n", matching how the text
// is later spliced back into content elements.
func (r *Run) GetText() string {
	var b strings.Builder
	for _, child := range r.el.ChildElements() {
		switch child.Tag {
		case "t":
			b.WriteString(child.Text())
		case "tab":
			b.WriteByte('\t')
		case "br", "cr":
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// SetText replaces the run's content with s, keeping the w:rPr formatting
// slot intact. Tabs and newlines in s become w:tab and w:br elements. An
// empty s empties the run without removing it.
func (r *Run) SetText(s string) {
	for _, child := range r.el.ChildElements() {
		if child.Tag == "rPr" {
			continue
		}
		r.el.RemoveChild(child)
	}
	appendRunContent(r.el, s)
}

// appendRunContent appends text content to a w:r element, translating tab
// and newline characters into their OOXML elements.
func appendRunContent(run *etree.Element, s string) {
	flush := func(text string) {
		if text == "" {
			return
		}
		t := run.CreateElement("w:t")
		t.SetText(text)
		if text != strings.TrimSpace(text) {
			t.CreateAttr("xml:space", "preserve")
		}
	}

	var pending strings.Builder
	for _, ch := range s {
		switch ch {
		case '\t':
			flush(pending.String())
			pending.Reset()
			run.CreateElement("w:tab")
		case '\n', '\r':
			flush(pending.String())
			pending.Reset()
			run.CreateElement("w:br")
		default:
			pending.WriteRune(ch)
		}
	}
	flush(pending.String())
}

// properties returns the w:rPr child, or nil when the run has none.
func (r *Run) properties() *etree.Element {
	return r.el.SelectElement("w:rPr")
}

// ensureProperties returns the w:rPr child, creating it as the first child
// when missing. OOXML requires run properties to precede run content.
func (r *Run) ensureProperties() *etree.Element {
	if rPr := r.properties(); rPr != nil {
		return rPr
	}
	rPr := etree.NewElement("w:rPr")
	r.el.InsertChildAt(0, rPr)
	return rPr
}

// hasProperty reports whether the run's w:rPr carries the given child
// element, regardless of its value. Presence is what the visual-distinctness
// boundary heuristic keys on.
func (r *Run) hasProperty(tag string) bool {
	rPr := r.properties()
	if rPr == nil {
		return false
	}
	return rPr.SelectElement(tag) != nil
}

// Bold reports whether the run is bold
func (r *Run) Bold() bool {
	return r.togglePropertyOn("w:b")
}

// SetBold adds or removes bold formatting
func (r *Run) SetBold(on bool) {
	r.setToggleProperty("w:b", on)
}

// Italic reports whether the run is italic
func (r *Run) Italic() bool {
	return r.togglePropertyOn("w:i")
}

// SetItalic adds or removes italic formatting
func (r *Run) SetItalic(on bool) {
	r.setToggleProperty("w:i", on)
}

// Underlined reports whether the run carries any underline
func (r *Run) Underlined() bool {
	rPr := r.properties()
	if rPr == nil {
		return false
	}
	u := rPr.SelectElement("w:u")
	if u == nil {
		return false
	}
	val := u.SelectAttrValue("w:val", "")
	return val != "none" && val != "0" && val != "false"
}

// SetUnderline adds or removes single underline formatting
func (r *Run) SetUnderline(on bool) {
	rPr := r.ensureProperties()
	if existing := rPr.SelectElement("w:u"); existing != nil {
		rPr.RemoveChild(existing)
	}
	if on {
		u := rPr.CreateElement("w:u")
		u.CreateAttr("w:val", "single")
	}
}

// togglePropertyOn reads an OOXML on/off property: present with no value
// means on, an explicit false value means off.
func (r *Run) togglePropertyOn(tag string) bool {
	rPr := r.properties()
	if rPr == nil {
		return false
	}
	el := rPr.SelectElement(tag)
	if el == nil {
		return false
	}
	val := el.SelectAttrValue("w:val", "")
	return val != "0" && val != "false" && val != "off"
}

func (r *Run) setToggleProperty(tag string, on bool) {
	rPr := r.ensureProperties()
	if existing := rPr.SelectElement(tag); existing != nil {
		rPr.RemoveChild(existing)
	}
	if on {
		rPr.CreateElement(tag)
	}
}

// FontName returns the ascii font name, or "" when inherited
func (r *Run) FontName() string {
	rPr := r.properties()
	if rPr == nil {
		return ""
	}
	fonts := rPr.SelectElement("w:rFonts")
	if fonts == nil {
		return ""
	}
	return fonts.SelectAttrValue("w:ascii", "")
}

// SetFontName sets the ascii and hAnsi font name
func (r *Run) SetFontName(name string) {
	rPr := r.ensureProperties()
	fonts := rPr.SelectElement("w:rFonts")
	if fonts == nil {
		fonts = rPr.CreateElement("w:rFonts")
	}
	fonts.CreateAttr("w:ascii", name)
	fonts.CreateAttr("w:hAnsi", name)
}

// SizeHalfPoints returns the explicit font size in half-points, 0 when
// inherited
func (r *Run) SizeHalfPoints() int {
	rPr := r.properties()
	if rPr == nil {
		return 0
	}
	sz := rPr.SelectElement("w:sz")
	if sz == nil {
		return 0
	}
	return atoiOrZero(sz.SelectAttrValue("w:val", ""))
}

// SetSizeHalfPoints sets an explicit font size in half-points
func (r *Run) SetSizeHalfPoints(halfPoints int) {
	rPr := r.ensureProperties()
	sz := rPr.SelectElement("w:sz")
	if sz == nil {
		sz = rPr.CreateElement("w:sz")
	}
	sz.CreateAttr("w:val", itoa(halfPoints))
}

// Color returns the run color as a hex string, or "" when inherited
func (r *Run) Color() string {
	rPr := r.properties()
	if rPr == nil {
		return ""
	}
	color := rPr.SelectElement("w:color")
	if color == nil {
		return ""
	}
	return color.SelectAttrValue("w:val", "")
}

// SetColor sets the run color from a hex string like "FF0000"
func (r *Run) SetColor(hex string) {
	rPr := r.ensureProperties()
	color := rPr.SelectElement("w:color")
	if color == nil {
		color = rPr.CreateElement("w:color")
	}
	color.CreateAttr("w:val", hex)
}

// CopyFormatFrom copies character-level formatting from src onto r: the
// bold/italic/underline toggles always (absence copies as absence), and
// font name, size and color only when src sets them explicitly.
func (r *Run) CopyFormatFrom(src *Run) {
	for _, tag := range []string{"w:b", "w:i", "w:u"} {
		r.copyProperty(src, tag)
	}
	if name := src.FontName(); name != "" {
		r.SetFontName(name)
	}
	if size := src.SizeHalfPoints(); size != 0 {
		r.SetSizeHalfPoints(size)
	}
	if color := src.Color(); color != "" {
		r.SetColor(color)
	}
}

// copyProperty replaces r's rPr child tag with a deep copy of src's, or
// removes it when src has none.
func (r *Run) copyProperty(src *Run, tag string) {
	srcPr := src.properties()
	var srcEl *etree.Element
	if srcPr != nil {
		srcEl = srcPr.SelectElement(tag)
	}

	dstPr := r.properties()
	if srcEl == nil {
		if dstPr != nil {
			if existing := dstPr.SelectElement(tag); existing != nil {
				dstPr.RemoveChild(existing)
			}
		}
		return
	}

	dstPr = r.ensureProperties()
	if existing := dstPr.SelectElement(tag); existing != nil {
		dstPr.RemoveChild(existing)
	}
	dstPr.AddChild(srcEl.Copy())
}
