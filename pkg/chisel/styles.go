package chisel

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/beevik/etree"
)

// stylesPartName is the archive entry holding style definitions.
const stylesPartName = "word/styles.xml"

// StyleMap resolves between style ids (what w:pStyle references) and style
// display names (what operations accept and report, e.g. "Heading 1").
// Both directions fall back to the given string when no definition exists,
// so documents without a styles part still behave sensibly.
type StyleMap struct {
	nameByID map[string]string
	idByName map[string]string
}

// parseStyleMap parses word/styles.xml into a StyleMap
func parseStyleMap(stylesXML []byte) (*StyleMap, error) {
	tree := etree.NewDocument()
	if err := tree.ReadFromBytes(stylesXML); err != nil {
		return nil, fmt.Errorf("failed to parse styles.xml: %w", err)
	}

	m := newStyleMap()
	root := tree.Root()
	if root == nil {
		return m, nil
	}

	for _, style := range root.ChildElements() {
		if style.Tag != "style" {
			continue
		}
		id := style.SelectAttrValue("w:styleId", "")
		if id == "" {
			continue
		}
		name := id
		if nameEl := style.SelectElement("w:name"); nameEl != nil {
			if v := nameEl.SelectAttrValue("w:val", ""); v != "" {
				name = v
			}
		}
		m.nameByID[id] = name
		if _, exists := m.idByName[name]; !exists {
			m.idByName[name] = id
		}
	}

	return m, nil
}

func newStyleMap() *StyleMap {
	return &StyleMap{
		nameByID: make(map[string]string),
		idByName: make(map[string]string),
	}
}

// NameFor returns the display name for a style id. Unknown ids are returned
// as-is so heading detection keeps working on documents with no styles part.
func (m *StyleMap) NameFor(id string) string {
	if m == nil {
		return id
	}
	if name, ok := m.nameByID[id]; ok {
		return name
	}
	return id
}

// IDFor resolves a display name (or raw id) to a style id. The boolean
// reports whether the style is actually defined in the document.
func (m *StyleMap) IDFor(name string) (string, bool) {
	if m == nil {
		return name, false
	}
	if id, ok := m.idByName[name]; ok {
		return id, true
	}
	if _, ok := m.nameByID[name]; ok {
		return name, true
	}
	return name, false
}

// Len returns the number of defined styles
func (m *StyleMap) Len() int {
	if m == nil {
		return 0
	}
	return len(m.nameByID)
}

// isHeadingStyle reports whether a style display name is a heading style
// ("Heading 1", "Heading 2", ...).
func isHeadingStyle(name string) bool {
	return strings.HasPrefix(strings.ToLower(name), "heading")
}

// isTOCStyle reports whether a style display name marks generated
// table-of-contents content.
func isTOCStyle(name string) bool {
	return strings.HasPrefix(strings.ToUpper(name), "TOC")
}

// isBlockEndStyle reports whether a style display name terminates a header
// block: headings (including the localized "Título" family) and TOC entries.
func isBlockEndStyle(name string) bool {
	lower := strings.ToLower(name)
	return strings.HasPrefix(lower, "heading") ||
		strings.HasPrefix(lower, "título") ||
		strings.HasPrefix(lower, "toc")
}

// parseHeadingLevel extracts N from a "Heading N" style name.
func parseHeadingLevel(name string) (int, bool) {
	parts := strings.Split(name, " ")
	if len(parts) < 2 {
		return 0, false
	}
	level, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, false
	}
	return level, true
}
