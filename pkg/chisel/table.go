package chisel

import (
	"strings"

	"github.com/beevik/etree"
)

// Table wraps a w:tbl element. Tables participate in body-element ordering
// alongside paragraphs but are opaque to paragraph-index operations; only
// body-element operations traverse into them.
type Table struct {
	el     *etree.Element
	styles *StyleMap
}

// Rows returns the table's rows in order.
func (t *Table) Rows() []*TableRow {
	var rows []*TableRow
	for _, child := range t.el.ChildElements() {
		if child.Tag == "tr" {
			rows = append(rows, &TableRow{el: child, styles: t.styles})
		}
	}
	return rows
}

// ColumnCount returns the number of columns from the table grid, falling
// back to the widest row when the grid is missing.
func (t *Table) ColumnCount() int {
	if grid := t.el.SelectElement("w:tblGrid"); grid != nil {
		count := 0
		for _, child := range grid.ChildElements() {
			if child.Tag == "gridCol" {
				count++
			}
		}
		if count > 0 {
			return count
		}
	}
	max := 0
	for _, row := range t.Rows() {
		if n := len(row.Cells()); n > max {
			max = n
		}
	}
	return max
}

// GetText returns the text of all cell paragraphs, newline-joined.
func (t *Table) GetText() string {
	var parts []string
	for _, row := range t.Rows() {
		for _, cell := range row.Cells() {
			for _, p := range cell.Paragraphs() {
				parts = append(parts, p.GetText())
			}
		}
	}
	return strings.Join(parts, "\n")
}

// TableRow wraps a w:tr element.
type TableRow struct {
	el     *etree.Element
	styles *StyleMap
}

// Cells returns the row's cells in order.
func (r *TableRow) Cells() []*TableCell {
	var cells []*TableCell
	for _, child := range r.el.ChildElements() {
		if child.Tag == "tc" {
			cells = append(cells, &TableCell{el: child, styles: r.styles})
		}
	}
	return cells
}

// TableCell wraps a w:tc element, itself containing paragraphs.
type TableCell struct {
	el     *etree.Element
	styles *StyleMap
}

// Paragraphs returns the cell's paragraphs in order.
func (c *TableCell) Paragraphs() []*Paragraph {
	var paras []*Paragraph
	for _, child := range c.el.ChildElements() {
		if child.Tag == "p" {
			paras = append(paras, &Paragraph{el: child, styles: c.styles})
		}
	}
	return paras
}

// GetText returns the cell's text, paragraph texts newline-joined.
func (c *TableCell) GetText() string {
	var parts []string
	for _, p := range c.Paragraphs() {
		parts = append(parts, p.GetText())
	}
	return strings.Join(parts, "\n")
}
