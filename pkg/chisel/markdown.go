package chisel

import "regexp"

// markdownPattern matches ***bold italic***, **bold**, or *italic* spans.
// Alternation order matters: *** before ** before *.
var markdownPattern = regexp.MustCompile(`\*{3}(.+?)\*{3}|\*{2}(.+?)\*{2}|\*(.+?)\*`)

// runSpec describes one run to create: its text and emphasis flags.
type runSpec struct {
	Text   string
	Bold   bool
	Italic bool
}

// parseMarkdownRuns tokenizes markdown-style emphasis into run specs.
// Text outside emphasis spans stays plain, and unmatched markers are
// literal text: "2 * 3 = 6" comes back untouched.
func parseMarkdownRuns(text string) []runSpec {
	if text == "" {
		return []runSpec{{Text: ""}}
	}

	var specs []runSpec
	lastEnd := 0
	for _, m := range markdownPattern.FindAllStringSubmatchIndex(text, -1) {
		start, end := m[0], m[1]
		if start > lastEnd {
			specs = append(specs, runSpec{Text: text[lastEnd:start]})
		}
		switch {
		case m[2] >= 0:
			specs = append(specs, runSpec{Text: text[m[2]:m[3]], Bold: true, Italic: true})
		case m[4] >= 0:
			specs = append(specs, runSpec{Text: text[m[4]:m[5]], Bold: true})
		case m[6] >= 0:
			specs = append(specs, runSpec{Text: text[m[6]:m[7]], Italic: true})
		}
		lastEnd = end
	}
	if lastEnd < len(text) {
		specs = append(specs, runSpec{Text: text[lastEnd:]})
	}

	if len(specs) == 0 {
		specs = append(specs, runSpec{Text: text})
	}
	return specs
}

// setParagraphRuns replaces a paragraph's runs with the given specs.
func setParagraphRuns(p *Paragraph, specs []runSpec) {
	p.clearRuns()
	for _, spec := range specs {
		r := p.AddRun(spec.Text)
		if spec.Bold {
			r.SetBold(true)
		}
		if spec.Italic {
			r.SetItalic(true)
		}
	}
}
