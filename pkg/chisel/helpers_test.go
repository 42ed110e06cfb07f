package chisel

import (
	"archive/zip"
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// Fixture builders shared by the package tests. They assemble minimal but
// well-formed DOCX archives in memory so tests never depend on files
// checked into the repo.

const fixtureStylesXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:styles xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:style w:type="paragraph" w:styleId="Normal"><w:name w:val="Normal"/></w:style>
  <w:style w:type="paragraph" w:styleId="Heading1"><w:name w:val="Heading 1"/></w:style>
  <w:style w:type="paragraph" w:styleId="Heading2"><w:name w:val="Heading 2"/></w:style>
  <w:style w:type="paragraph" w:styleId="Heading3"><w:name w:val="Heading 3"/></w:style>
  <w:style w:type="paragraph" w:styleId="Title"><w:name w:val="Title"/></w:style>
  <w:style w:type="paragraph" w:styleId="TOC1"><w:name w:val="TOC 1"/></w:style>
  <w:style w:type="paragraph" w:styleId="ListParagraph"><w:name w:val="List Paragraph"/></w:style>
</w:styles>`

// xmlPara builds a w:p with an optional style id and one plain run per
// text argument.
func xmlPara(styleID string, texts ...string) string {
	var b strings.Builder
	b.WriteString("<w:p>")
	if styleID != "" {
		fmt.Fprintf(&b, `<w:pPr><w:pStyle w:val="%s"/></w:pPr>`, styleID)
	}
	for _, text := range texts {
		b.WriteString(xmlRun("", text))
	}
	b.WriteString("</w:p>")
	return b.String()
}

// xmlParaRuns builds a w:p from raw run XML.
func xmlParaRuns(styleID string, runs ...string) string {
	var b strings.Builder
	b.WriteString("<w:p>")
	if styleID != "" {
		fmt.Fprintf(&b, `<w:pPr><w:pStyle w:val="%s"/></w:pPr>`, styleID)
	}
	for _, r := range runs {
		b.WriteString(r)
	}
	b.WriteString("</w:p>")
	return b.String()
}

// xmlRun builds a w:r. props is raw rPr content like "<w:b/>".
func xmlRun(props, text string) string {
	var b strings.Builder
	b.WriteString("<w:r>")
	if props != "" {
		b.WriteString("<w:rPr>" + props + "</w:rPr>")
	}
	fmt.Fprintf(&b, `<w:t xml:space="preserve">%s</w:t>`, text)
	b.WriteString("</w:r>")
	return b.String()
}

// xmlTable builds a w:tbl. Each row is a slice of cell texts.
func xmlTable(rows ...[]string) string {
	var b strings.Builder
	b.WriteString("<w:tbl><w:tblGrid>")
	cols := 0
	for _, row := range rows {
		if len(row) > cols {
			cols = len(row)
		}
	}
	for i := 0; i < cols; i++ {
		b.WriteString("<w:gridCol/>")
	}
	b.WriteString("</w:tblGrid>")
	for _, row := range rows {
		b.WriteString("<w:tr>")
		for _, cell := range row {
			b.WriteString("<w:tc>" + xmlPara("", cell) + "</w:tc>")
		}
		b.WriteString("</w:tr>")
	}
	b.WriteString("</w:tbl>")
	return b.String()
}

// xmlDocument wraps body content in the document/body envelope with a
// trailing sectPr.
func xmlDocument(body ...string) string {
	return `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
		`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>` +
		strings.Join(body, "") +
		`<w:sectPr><w:pgSz w:w="12240" w:h="15840"/></w:sectPr></w:body></w:document>`
}

// buildDocx assembles a DOCX archive with the given document.xml, a
// default styles part, and the extra parts.
func buildDocx(t *testing.T, documentXML string, extraParts map[string]string) []byte {
	t.Helper()
	buf := new(bytes.Buffer)
	w := zip.NewWriter(buf)

	parts := map[string]string{
		"word/document.xml": documentXML,
		"word/styles.xml":   fixtureStylesXML,
		"_rels/.rels":       `<?xml version="1.0" encoding="UTF-8"?><Relationships/>`,
	}
	for name, content := range extraParts {
		parts[name] = content
	}

	for name, content := range parts {
		f, err := w.Create(name)
		if err != nil {
			t.Fatalf("failed to create part %s: %v", name, err)
		}
		if _, err := f.Write([]byte(content)); err != nil {
			t.Fatalf("failed to write part %s: %v", name, err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("failed to close zip: %v", err)
	}
	return buf.Bytes()
}

// writeDocx writes a fixture DOCX to a temp file and returns its path.
func writeDocx(t *testing.T, documentXML string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.docx")
	if err := os.WriteFile(path, buildDocx(t, documentXML, nil), 0644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}
	return path
}

// openFixture writes a fixture and opens it as a Document.
func openFixture(t *testing.T, documentXML string) *Document {
	t.Helper()
	doc, err := Open(writeDocx(t, documentXML))
	if err != nil {
		t.Fatalf("failed to open fixture: %v", err)
	}
	return doc
}

// paragraphTexts returns the document's body paragraph texts in order.
func paragraphTexts(d *Document) []string {
	var texts []string
	for _, p := range d.Paragraphs() {
		texts = append(texts, p.GetText())
	}
	return texts
}

// reopen re-reads a saved document from disk.
func reopen(t *testing.T, path string) *Document {
	t.Helper()
	doc, err := Open(path)
	if err != nil {
		t.Fatalf("failed to reopen %s: %v", path, err)
	}
	return doc
}
