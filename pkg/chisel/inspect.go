package chisel

import (
	"strings"

	"github.com/beevik/etree"
)

// corePartName is the archive entry holding document metadata.
const corePartName = "docProps/core.xml"

// HeadingRecord is one outline entry. Level is parsed from a "Heading N"
// style name and reported as 0 when the name does not parse.
type HeadingRecord struct {
	Index int
	Text  string
	Style string
	Level int
}

// PropertiesResult carries document metadata and counting statistics.
// WordCount covers body paragraphs only; table text is counted separately
// in TableWordCount, and the method note spells that out for operators
// comparing against a word processor's built-in count.
type PropertiesResult struct {
	Title           string
	Author          string
	Subject         string
	Keywords        string
	Created         string
	Modified        string
	LastModifiedBy  string
	Revision        int
	PageCount       int
	ParagraphCount  int
	TableCount      int
	WordCount       int
	WordCountMethod string
	WordCountNote   string
	TableWordCount  int
	Headings        []HeadingRecord
}

const wordCountNote = "Counts words in body paragraphs only using whitespace splitting. " +
	"Does not include text in tables, headers, footers, footnotes, or textboxes. " +
	"May differ from Microsoft Word's built-in word count."

// getProperties collects metadata from docProps/core.xml (when present)
// and derives the counting statistics from the body.
func (d *Document) getProperties(includeOutline bool) *PropertiesResult {
	result := &PropertiesResult{
		WordCountMethod: "body_paragraphs_whitespace_split",
		WordCountNote:   wordCountNote,
	}

	if coreXML, err := d.container.GetPart(corePartName); err == nil {
		parseCoreProperties(coreXML, result)
	}

	paras := d.Paragraphs()
	result.ParagraphCount = len(paras)
	for _, p := range paras {
		result.WordCount += len(strings.Fields(p.GetText()))
	}

	tables := d.Tables()
	result.TableCount = len(tables)
	for _, t := range tables {
		for _, row := range t.Rows() {
			for _, cell := range row.Cells() {
				for _, p := range cell.Paragraphs() {
					result.TableWordCount += len(strings.Fields(p.GetText()))
				}
			}
		}
	}

	result.PageCount = countDescendants(d.tree.Root(), "sectPr")

	if includeOutline {
		result.Headings = d.outline(paras)
	}

	return result
}

// outline collects the heading paragraphs in document order.
func (d *Document) outline(paras []*Paragraph) []HeadingRecord {
	var headings []HeadingRecord
	for i, p := range paras {
		if !p.IsHeading() {
			continue
		}
		level, ok := parseHeadingLevel(p.Style())
		if !ok {
			level = 0
		}
		headings = append(headings, HeadingRecord{
			Index: i,
			Text:  p.GetText(),
			Style: p.Style(),
			Level: level,
		})
	}
	return headings
}

// parseCoreProperties fills metadata fields from docProps/core.xml.
// Element tags are matched without their namespace prefix; the part mixes
// dc, cp and dcterms vocabularies.
func parseCoreProperties(coreXML []byte, result *PropertiesResult) {
	tree := etree.NewDocument()
	if err := tree.ReadFromBytes(coreXML); err != nil {
		return
	}
	root := tree.Root()
	if root == nil {
		return
	}
	for _, child := range root.ChildElements() {
		switch child.Tag {
		case "title":
			result.Title = child.Text()
		case "creator":
			result.Author = child.Text()
		case "subject":
			result.Subject = child.Text()
		case "keywords":
			result.Keywords = child.Text()
		case "created":
			result.Created = child.Text()
		case "modified":
			result.Modified = child.Text()
		case "lastModifiedBy":
			result.LastModifiedBy = child.Text()
		case "revision":
			result.Revision = atoiOrZero(child.Text())
		}
	}
}

// countDescendants counts elements with the given tag anywhere under el,
// including el itself.
func countDescendants(el *etree.Element, tag string) int {
	if el == nil {
		return 0
	}
	count := 0
	if el.Tag == tag {
		count++
	}
	for _, child := range el.ChildElements() {
		count += countDescendants(child, tag)
	}
	return count
}

// ParagraphPreview is one paragraph in a structure listing, its text
// truncated for display.
type ParagraphPreview struct {
	Index int
	Text  string
	Style string
}

// TablePreview summarizes one table: its dimensions and the text of at
// most the first 3x3 cells, each cell truncated at 20 runes.
type TablePreview struct {
	Index   int
	Rows    int
	Columns int
	Preview [][]string
}

// StructureResult is the document's block structure at a glance.
type StructureResult struct {
	Paragraphs []ParagraphPreview
	Tables     []TablePreview
}

// getStructure lists paragraphs with truncated previews and summarizes
// tables.
func (d *Document) getStructure() *StructureResult {
	result := &StructureResult{}

	for i, p := range d.Paragraphs() {
		result.Paragraphs = append(result.Paragraphs, ParagraphPreview{
			Index: i,
			Text:  truncateRunes(p.GetText(), contextRunes),
			Style: p.Style(),
		})
	}

	for i, t := range d.Tables() {
		rows := t.Rows()
		preview := TablePreview{
			Index:   i,
			Rows:    len(rows),
			Columns: t.ColumnCount(),
		}
		for ri := 0; ri < len(rows) && ri < 3; ri++ {
			cells := rows[ri].Cells()
			var rowData []string
			for ci := 0; ci < preview.Columns && ci < 3; ci++ {
				if ci < len(cells) {
					rowData = append(rowData, truncateRunes(cells[ci].GetText(), 20))
				} else {
					rowData = append(rowData, "N/A")
				}
			}
			preview.Preview = append(preview.Preview, rowData)
		}
		result.Tables = append(result.Tables, preview)
	}

	return result
}

// extractText returns every body paragraph's text followed by every table
// cell paragraph's text, newline-joined.
func (d *Document) extractText() string {
	var lines []string
	for _, p := range d.Paragraphs() {
		lines = append(lines, p.GetText())
	}
	for _, t := range d.Tables() {
		for _, row := range t.Rows() {
			for _, cell := range row.Cells() {
				for _, p := range cell.Paragraphs() {
					lines = append(lines, p.GetText())
				}
			}
		}
	}
	return strings.Join(lines, "\n")
}
