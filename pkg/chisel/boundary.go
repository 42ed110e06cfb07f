package chisel

import "github.com/beevik/etree"

// Block-boundary policies. Each one takes a resolved start index and
// produces a single exclusive end index, so the range mutator never needs
// to know which policy delimited the block. A start at the last element
// yields an empty block, which is a valid result, not an error.

// nextBlockEnd returns the index of the first paragraph after start whose
// style terminates a header block (heading, localized heading, or TOC
// entry), or len(paras) when no such paragraph exists.
func nextBlockEnd(paras []*Paragraph, start int) int {
	for i := start + 1; i < len(paras); i++ {
		if isBlockEndStyle(paras[i].Style()) {
			return i
		}
	}
	return len(paras)
}

// nextHeadingAtLevel returns the index of the first heading after start
// whose level is at or above level (numerically <= level), or -1 when the
// section runs to the end of the document. Deeper subsection headings are
// content, not terminators.
func nextHeadingAtLevel(paras []*Paragraph, start, level int) int {
	for i := start + 1; i < len(paras); i++ {
		p := paras[i]
		if p.IsHeading() && p.HeadingLevel() <= level {
			return i
		}
	}
	return -1
}

// nextVisuallyDistinct returns the index of the first paragraph after
// start that looks like the next anchor: bold, all-caps, or an explicit
// font size on any run. With no such paragraph the block extends to the
// end of the element sequence. A paragraph with a bold word inside body
// content terminates the block too.
func nextVisuallyDistinct(d *Document, elements []*etree.Element, start int) int {
	for i := start + 1; i < len(elements); i++ {
		if elements[i].Tag != "p" {
			continue
		}
		if d.paragraphFor(elements[i]).hasAnchorFormatting() {
			return i
		}
	}
	return len(elements)
}
