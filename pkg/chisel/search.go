package chisel

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// contextRunes is how many runes of a paragraph a search occurrence quotes
// when the full paragraph text is not requested.
const contextRunes = 100

// Occurrence is one match of a search query. Body matches carry the
// paragraph index; matches inside tables carry a Location string and a
// ParagraphIndex of -1. Position is the rune offset of the match, or the
// word index under whole-word search. Text and Style are filled when the
// caller asked for full paragraph text, Context otherwise.
type Occurrence struct {
	ParagraphIndex int
	Location       string
	Position       int
	Text           string
	Style          string
	Context        string
}

// FindResult is the outcome of one text search. Error is set on per-query
// failures inside a batch search, where one bad query must not fail the
// whole batch.
type FindResult struct {
	Query       string
	MatchCase   bool
	WholeWord   bool
	Occurrences []Occurrence
	TotalCount  int
	Error       string
}

// findOptions carries the search parameters shared by all scanned
// paragraphs.
type findOptions struct {
	matchCase            bool
	wholeWord            bool
	includeParagraphText bool
	maxResults           int // 0 means unlimited
}

// findText scans body paragraphs first, then table cell paragraphs, and
// collects every occurrence of query. TOC-styled paragraphs hold generated
// text and are never scanned, matching the replace side.
func (d *Document) findText(query string, opts findOptions) FindResult {
	result := FindResult{
		Query:     query,
		MatchCase: opts.matchCase,
		WholeWord: opts.wholeWord,
	}

	full := func() bool {
		return opts.maxResults > 0 && result.TotalCount >= opts.maxResults
	}

	for i, p := range d.Paragraphs() {
		if p.IsTOC() {
			continue
		}
		if full() {
			return result
		}
		base := Occurrence{ParagraphIndex: i}
		collectOccurrences(&result, p, query, base, opts)
	}

	for ti, t := range d.Tables() {
		for ri, row := range t.Rows() {
			for ci, cell := range row.Cells() {
				for _, p := range cell.Paragraphs() {
					if p.IsTOC() {
						continue
					}
					if full() {
						return result
					}
					base := Occurrence{
						ParagraphIndex: -1,
						Location:       fmt.Sprintf("Table %d, Row %d, Column %d", ti, ri, ci),
					}
					collectOccurrences(&result, p, query, base, opts)
				}
			}
		}
	}

	return result
}

// collectOccurrences appends every match of query within one paragraph to
// the result, filling the template occurrence with position and either
// full text or truncated context.
func collectOccurrences(result *FindResult, p *Paragraph, query string, base Occurrence, opts findOptions) {
	text := p.GetText()
	haystack, needle := text, query
	if !opts.matchCase {
		// Rune-wise lowering keeps rune offsets aligned with the original.
		haystack = lowerRunes(haystack)
		needle = lowerRunes(needle)
	}

	emit := func(position int) {
		occ := base
		occ.Position = position
		if opts.includeParagraphText {
			occ.Text = text
			occ.Style = p.Style()
		} else {
			occ.Context = truncateRunes(text, contextRunes)
		}
		result.Occurrences = append(result.Occurrences, occ)
		result.TotalCount++
	}

	if opts.wholeWord {
		for wordIdx, word := range strings.Fields(haystack) {
			if word == needle {
				emit(wordIdx)
				if opts.maxResults > 0 && result.TotalCount >= opts.maxResults {
					return
				}
			}
		}
		return
	}

	from := 0
	for {
		pos := strings.Index(haystack[from:], needle)
		if pos == -1 {
			return
		}
		byteOff := from + pos
		emit(utf8.RuneCountInString(haystack[:byteOff]))
		if opts.maxResults > 0 && result.TotalCount >= opts.maxResults {
			return
		}
		from = byteOff + len(needle)
		if needle == "" {
			return
		}
	}
}

// truncateRunes returns the first n runes of s, appending "..." when s is
// longer. A 200-rune paragraph yields exactly n+3 runes.
func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}
