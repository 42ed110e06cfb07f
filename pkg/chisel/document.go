package chisel

import (
	"fmt"
	"os"
	"strconv"

	"github.com/beevik/etree"
)

// Document is the in-memory handle for one edit session: the zip container,
// the parsed document.xml tree, and the style name map. The handle owns the
// tree exclusively until Save; nothing touches the file in between, so a
// failed operation never leaves a partial write behind.
type Document struct {
	path      string
	container *Container
	tree      *etree.Document
	body      *etree.Element
	styles    *StyleMap
}

// Open reads and parses a DOCX file into an editable Document. A missing
// path is reported as a file error that IsMissingFileError recognizes.
func Open(path string) (*Document, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, NewFileError("open", path, err)
	}

	container, err := ContainerFromFile(path)
	if err != nil {
		return nil, NewFileError("open", path, err)
	}

	documentXML, err := container.GetDocumentXML()
	if err != nil {
		return nil, NewFileError("read", path, err)
	}

	tree := etree.NewDocument()
	if err := tree.ReadFromBytes(documentXML); err != nil {
		return nil, NewFileError("parse", path, err)
	}

	root := tree.Root()
	if root == nil {
		return nil, NewFileError("parse", path, fmt.Errorf("document.xml has no root element"))
	}
	body := root.SelectElement("w:body")
	if body == nil {
		return nil, NewFileError("parse", path, fmt.Errorf("document.xml has no w:body element"))
	}

	styles := newStyleMap()
	if stylesXML, err := container.GetPart(stylesPartName); err == nil {
		parsed, err := parseStyleMap(stylesXML)
		if err != nil {
			return nil, NewFileError("parse", path, err)
		}
		styles = parsed
	}

	return &Document{
		path:      path,
		container: container,
		tree:      tree,
		body:      body,
		styles:    styles,
	}, nil
}

// Path returns the file path the document was opened from.
func (d *Document) Path() string {
	return d.path
}

// Styles returns the document's style name map.
func (d *Document) Styles() *StyleMap {
	return d.styles
}

// Save serializes the document tree and rewrites the archive to the path
// the document was opened from.
func (d *Document) Save() error {
	return d.SaveAs(d.path)
}

// SaveAs builds the complete output archive in memory before a single
// write call, so a serialization failure leaves the target untouched.
func (d *Document) SaveAs(path string) error {
	documentXML, err := d.tree.WriteToBytes()
	if err != nil {
		return NewFileError("serialize", path, err)
	}
	archive, err := d.container.Rewrite(documentXML)
	if err != nil {
		return NewFileError("rewrite", path, err)
	}
	if err := os.WriteFile(path, archive, 0644); err != nil {
		return NewFileError("save", path, err)
	}
	return nil
}

// Paragraphs returns the body-level paragraphs in document order.
// Paragraphs inside table cells are not included; index-based operations
// address body paragraphs only.
func (d *Document) Paragraphs() []*Paragraph {
	var paras []*Paragraph
	for _, child := range d.body.ChildElements() {
		if child.Tag == "p" {
			paras = append(paras, &Paragraph{el: child, styles: d.styles})
		}
	}
	return paras
}

// Tables returns the body-level tables in document order.
func (d *Document) Tables() []*Table {
	var tables []*Table
	for _, child := range d.body.ChildElements() {
		if child.Tag == "tbl" {
			tables = append(tables, &Table{el: child, styles: d.styles})
		}
	}
	return tables
}

// BlockElements returns the body's block-level children (paragraphs and
// tables) in document order. The trailing w:sectPr is not a block element
// and is never part of the sequence, so block operations cannot disturb it.
func (d *Document) BlockElements() []*etree.Element {
	var elements []*etree.Element
	for _, child := range d.body.ChildElements() {
		if child.Tag == "p" || child.Tag == "tbl" {
			elements = append(elements, child)
		}
	}
	return elements
}

// paragraphFor wraps a body child element known to be a w:p.
func (d *Document) paragraphFor(el *etree.Element) *Paragraph {
	return &Paragraph{el: el, styles: d.styles}
}

// newParagraph builds a detached paragraph with the given text and style
// display name. The caller attaches it with insertAfter or insertBefore.
func (d *Document) newParagraph(text, style string) *Paragraph {
	p := &Paragraph{el: etree.NewElement("w:p"), styles: d.styles}
	p.SetStyle(style)
	p.AddRun(text)
	return p
}

// insertAfter places el immediately after anchor among the body's
// children. The position is anchor-relative by construction: an anchor
// before the trailing sectPr keeps the insert before it too.
func (d *Document) insertAfter(anchor, el *etree.Element) {
	d.body.InsertChildAt(anchor.Index()+1, el)
}

// insertBefore places el immediately before anchor.
func (d *Document) insertBefore(anchor, el *etree.Element) {
	d.body.InsertChildAt(anchor.Index(), el)
}

// insertAtBodyStart places el as the first body child.
func (d *Document) insertAtBodyStart(el *etree.Element) {
	d.body.InsertChildAt(0, el)
}

// removeElement unlinks a block element from the body. Removal from the
// tree is destruction; there is no further cleanup.
func (d *Document) removeElement(el *etree.Element) {
	d.body.RemoveChild(el)
}

func atoiOrZero(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
