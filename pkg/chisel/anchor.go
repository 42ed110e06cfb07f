package chisel

import (
	"strings"

	"github.com/beevik/etree"
)

// anchorScope controls which paragraphs each resolution pass may match.
type anchorScope int

const (
	// scopeAny lets both passes scan every paragraph.
	scopeAny anchorScope = iota
	// scopeHeaderish lets the exact pass scan every paragraph but restricts
	// the contains fallback to heading-styled paragraphs, so a prefixed
	// heading like "1. Section One" matches the query "Section One" without
	// body text elsewhere matching too.
	scopeHeaderish
	// scopeHeadingsOnly restricts both passes to heading-styled paragraphs.
	scopeHeadingsOnly
)

// anchorOptions carries the constraints for one resolution.
type anchorOptions struct {
	scope   anchorScope
	fold    bool // case-insensitive comparison
	skipTOC bool
	after   int // only indices strictly greater than after are eligible; -1 for all
}

// resolveAnchor maps query text to a paragraph index using the two-pass
// policy: an exact pass over normalized text, then a contains fallback.
// Within a pass the first match in document order wins. Returns -1 when
// neither pass matches.
func resolveAnchor(paras []*Paragraph, query string, opts anchorOptions) int {
	canon := Normalize
	if opts.fold {
		canon = normalizeFold
	}
	want := canon(query)

	eligible := func(p *Paragraph, headingsOnly bool) bool {
		if opts.skipTOC && p.IsTOC() {
			return false
		}
		if headingsOnly && !p.IsHeading() {
			return false
		}
		return true
	}

	// Pass 1: exact normalized match.
	exactHeadingsOnly := opts.scope == scopeHeadingsOnly
	for i, p := range paras {
		if i <= opts.after || !eligible(p, exactHeadingsOnly) {
			continue
		}
		if canon(p.GetText()) == want {
			return i
		}
	}

	// Pass 2: contains fallback.
	containsHeadingsOnly := opts.scope != scopeAny
	for i, p := range paras {
		if i <= opts.after || !eligible(p, containsHeadingsOnly) {
			continue
		}
		text := canon(p.GetText())
		if strings.Contains(text, want) {
			Debug("anchor matched via contains: %q contains %q", p.GetText(), query)
			return i
		}
	}

	return -1
}

// resolveElementAnchor maps query text to a position in the body's block
// element sequence. Only paragraphs can carry anchor text; tables are
// skipped but keep their positions, so the returned index addresses the
// full element sequence. Comparison is exact-normalized with a contains
// fallback, case preserved. Returns -1 when nothing matches.
func resolveElementAnchor(d *Document, elements []*etree.Element, query string, after int) int {
	want := Normalize(query)

	// Pass 1: exact normalized match.
	for i, el := range elements {
		if i <= after || el.Tag != "p" {
			continue
		}
		if Normalize(d.paragraphFor(el).GetText()) == want {
			return i
		}
	}

	// Pass 2: contains fallback.
	for i, el := range elements {
		if i <= after || el.Tag != "p" {
			continue
		}
		text := d.paragraphFor(el).GetText()
		if strings.Contains(Normalize(text), want) {
			Debug("anchor matched via contains: %q contains %q", text, query)
			return i
		}
	}

	return -1
}
