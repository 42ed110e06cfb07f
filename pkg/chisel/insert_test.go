package chisel

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func insertFixture() string {
	return xmlDocument(
		xmlPara("", "first paragraph"),
		xmlPara("TOC1", "target in TOC"),
		xmlPara("Heading1", "target heading"),
		xmlPara("", "last paragraph"),
	)
}

func TestResolveInsertTarget(t *testing.T) {
	doc := openFixture(t, insertFixture())

	t.Run("by index", func(t *testing.T) {
		_, idx, err := doc.resolveInsertTarget(TargetIndex(3))
		if err != nil || idx != 3 {
			t.Errorf("got (%d, %v), want (3, nil)", idx, err)
		}
	})

	t.Run("invalid index names actual count", func(t *testing.T) {
		_, _, err := doc.resolveInsertTarget(TargetIndex(9))
		if err == nil {
			t.Fatal("expected error")
		}
		want := "Invalid target_paragraph_index: 9. Document has 4 paragraphs."
		if err.Error() != want {
			t.Errorf("error = %q, want %q", err.Error(), want)
		}
	})

	t.Run("by text skips TOC paragraphs", func(t *testing.T) {
		_, idx, err := doc.resolveInsertTarget(TargetText("target"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// Paragraph 1 contains "target" but is TOC-styled.
		if idx != 2 {
			t.Errorf("index = %d, want 2", idx)
		}
	})

	t.Run("not found", func(t *testing.T) {
		_, _, err := doc.resolveInsertTarget(TargetText("nope"))
		if !IsNotFoundError(err) {
			t.Errorf("expected NotFoundError, got %v", err)
		}
	})
}

func TestInsertParagraphNear(t *testing.T) {
	cfg := DefaultConfig()

	t.Run("after target with copied style", func(t *testing.T) {
		doc := openFixture(t, insertFixture())
		_, styleUsed, err := doc.insertParagraphNear(TargetText("target heading"), "new text", After, "", nil, cfg)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if styleUsed != "Heading 1" {
			t.Errorf("style = %q, want copied Heading 1", styleUsed)
		}
		texts := paragraphTexts(doc)
		want := []string{"first paragraph", "target in TOC", "target heading", "new text", "last paragraph"}
		if diff := cmp.Diff(want, texts); diff != "" {
			t.Errorf("order mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("before target with explicit style", func(t *testing.T) {
		doc := openFixture(t, insertFixture())
		_, styleUsed, err := doc.insertParagraphNear(TargetIndex(0), "preface", Before, "Title", nil, cfg)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if styleUsed != "Title" {
			t.Errorf("style = %q, want Title", styleUsed)
		}
		if got := paragraphTexts(doc)[0]; got != "preface" {
			t.Errorf("first paragraph = %q, want preface", got)
		}
	})

}

func TestInsertParagraphNear_CopyFormat(t *testing.T) {
	doc := openFixture(t, xmlDocument(
		xmlParaRuns("", xmlRun(`<w:b/><w:sz w:val="28"/>`, "formatted source")),
		xmlPara("", "target"),
	))
	source := 0
	_, _, err := doc.insertParagraphNear(TargetIndex(1), "styled text", After, "", &source, DefaultConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	inserted := doc.Paragraphs()[2]
	run := inserted.Runs()[0]
	if !run.Bold() {
		t.Error("inserted run missing copied bold")
	}
	if got := run.SizeHalfPoints(); got != 28 {
		t.Errorf("inserted run size = %d, want 28", got)
	}
}

func TestInsertHeaderNear(t *testing.T) {
	doc := openFixture(t, insertFixture())
	anchorIdx, styleUsed, err := doc.insertHeaderNear(TargetIndex(3), "New Chapter", Before, "Heading 2", DefaultConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if anchorIdx != 3 || styleUsed != "Heading 2" {
		t.Errorf("got (%d, %q), want (3, Heading 2)", anchorIdx, styleUsed)
	}
	p := doc.Paragraphs()[3]
	if p.GetText() != "New Chapter" || p.Style() != "Heading 2" {
		t.Errorf("inserted heading = (%q, %q)", p.GetText(), p.Style())
	}
}

func TestInsertHeaderNear_UnknownStyleStrict(t *testing.T) {
	doc := openFixture(t, insertFixture())
	_, _, err := doc.insertHeaderNear(TargetIndex(0), "H", After, "Heading 99", DefaultConfig())
	if !IsNotFoundError(err) {
		t.Errorf("expected NotFoundError under strict styles, got %v", err)
	}
}

func TestInsertListNear_OrderPreserved(t *testing.T) {
	items := []string{"one", "two", "three"}

	t.Run("after", func(t *testing.T) {
		doc := openFixture(t, xmlDocument(xmlPara("", "anchor"), xmlPara("", "tail")))
		if _, _, err := doc.insertListNear(TargetIndex(0), items, After, false); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := []string{"anchor", "one", "two", "three", "tail"}
		if diff := cmp.Diff(want, paragraphTexts(doc)); diff != "" {
			t.Errorf("order mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("before", func(t *testing.T) {
		doc := openFixture(t, xmlDocument(xmlPara("", "anchor"), xmlPara("", "tail")))
		if _, _, err := doc.insertListNear(TargetIndex(0), items, Before, true); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := []string{"one", "two", "three", "anchor", "tail"}
		if diff := cmp.Diff(want, paragraphTexts(doc)); diff != "" {
			t.Errorf("order mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestInsertListNear_NumberingXML(t *testing.T) {
	doc := openFixture(t, xmlDocument(xmlPara("", "anchor")))
	if _, _, err := doc.insertListNear(TargetIndex(0), []string{"item"}, After, true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	item := doc.Paragraphs()[1]
	if got := item.Style(); got != "List Paragraph" {
		t.Errorf("list item style = %q, want List Paragraph", got)
	}
	pPr := item.properties()
	numPr := pPr.SelectElement("w:numPr")
	if numPr == nil {
		t.Fatal("list item missing w:numPr")
	}
	if got := numPr.SelectElement("w:numId").SelectAttrValue("w:val", ""); got != "2" {
		t.Errorf("numId = %s, want 2 (decimal)", got)
	}
	if got := numPr.SelectElement("w:ilvl").SelectAttrValue("w:val", ""); got != "0" {
		t.Errorf("ilvl = %s, want 0", got)
	}
}

func TestInsertListNear_BulletNumID(t *testing.T) {
	doc := openFixture(t, xmlDocument(xmlPara("", "anchor")))
	if _, _, err := doc.insertListNear(TargetIndex(0), []string{"item"}, After, false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	numPr := doc.Paragraphs()[1].properties().SelectElement("w:numPr")
	if got := numPr.SelectElement("w:numId").SelectAttrValue("w:val", ""); got != "1" {
		t.Errorf("numId = %s, want 1 (bullet)", got)
	}
}

func TestInsertNearLastParagraph_KeepsSectPrLast(t *testing.T) {
	doc := openFixture(t, xmlDocument(xmlPara("", "only paragraph")))
	if _, _, err := doc.insertParagraphNear(TargetIndex(0), "appended", After, "", nil, DefaultConfig()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := doc.Save(); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	reopened := reopen(t, doc.Path())
	children := reopened.body.ChildElements()
	if last := children[len(children)-1]; last.Tag != "sectPr" {
		t.Errorf("last body child = %s, want sectPr", last.Tag)
	}
	xml, _ := reopened.container.GetDocumentXML()
	if !strings.Contains(string(xml), "appended") {
		t.Error("inserted paragraph not persisted")
	}
}
