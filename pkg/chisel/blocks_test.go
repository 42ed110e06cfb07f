package chisel

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func headerBlockFixture() string {
	return xmlDocument(
		xmlPara("Heading1", "Introduction"), // 0
		xmlPara("", "old intro line one"),   // 1
		xmlPara("", "old intro line two"),   // 2
		xmlPara("Heading1", "Details"),      // 3
		xmlPara("", "details content"),      // 4
	)
}

func TestDeleteBlockBelowHeader(t *testing.T) {
	doc := openFixture(t, headerBlockFixture())

	info, err := doc.deleteBlockBelowHeader("Introduction")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if info.startIndex != 0 || info.removed != 2 {
		t.Errorf("info = (%d, %d), want (0, 2)", info.startIndex, info.removed)
	}

	want := []string{"Introduction", "Details", "details content"}
	if diff := cmp.Diff(want, paragraphTexts(doc)); diff != "" {
		t.Errorf("paragraphs mismatch (-want +got):\n%s", diff)
	}
}

func TestDeleteBlockBelowHeader_NormalizedMatch(t *testing.T) {
	doc := openFixture(t, xmlDocument(
		xmlPara("Heading1", "Quarterly   Report"),
		xmlPara("", "content"),
	))
	info, err := doc.deleteBlockBelowHeader("quarterly report")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if info.startIndex != 0 || info.removed != 1 {
		t.Errorf("info = (%d, %d), want (0, 1)", info.startIndex, info.removed)
	}
}

func TestDeleteBlockBelowHeader_NotFound(t *testing.T) {
	doc := openFixture(t, headerBlockFixture())
	if _, err := doc.deleteBlockBelowHeader("No Such Header"); !IsNotFoundError(err) {
		t.Errorf("expected NotFoundError, got %v", err)
	}
}

func TestDeleteBlockBelowHeader_LastHeaderRunsToEnd(t *testing.T) {
	doc := openFixture(t, headerBlockFixture())
	info, err := doc.deleteBlockBelowHeader("Details")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if info.removed != 1 {
		t.Errorf("removed = %d, want 1", info.removed)
	}
	want := []string{"Introduction", "old intro line one", "old intro line two", "Details"}
	if diff := cmp.Diff(want, paragraphTexts(doc)); diff != "" {
		t.Errorf("paragraphs mismatch (-want +got):\n%s", diff)
	}
}

func TestReplaceBlockBelowHeader(t *testing.T) {
	doc := openFixture(t, headerBlockFixture())

	info, err := doc.replaceBlockBelowHeader("Introduction",
		[]string{"new line", "", "closing line"}, "", DefaultConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if info.removed != 2 || info.inserted != 3 || info.styleUsed != "Normal" {
		t.Errorf("info = %+v", info)
	}

	want := []string{"Introduction", "new line", "", "closing line", "Details", "details content"}
	if diff := cmp.Diff(want, paragraphTexts(doc)); diff != "" {
		t.Errorf("paragraphs mismatch (-want +got):\n%s", diff)
	}
}

func TestDeleteBetweenAnchors(t *testing.T) {
	t.Run("explicit end anchor spans a table", func(t *testing.T) {
		doc := openFixture(t, xmlDocument(
			xmlPara("", "START"),
			xmlPara("", "doomed paragraph"),
			xmlTable([]string{"doomed table"}),
			xmlPara("", "END"),
		))
		info, err := doc.deleteBetweenAnchors("START", "END")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if info.removed != 2 {
			t.Errorf("removed = %d, want 2", info.removed)
		}
		if len(doc.Tables()) != 0 {
			t.Error("table between anchors survived")
		}
		want := []string{"START", "END"}
		if diff := cmp.Diff(want, paragraphTexts(doc)); diff != "" {
			t.Errorf("paragraphs mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("missing start anchor", func(t *testing.T) {
		doc := openFixture(t, xmlDocument(xmlPara("", "text")))
		if _, err := doc.deleteBetweenAnchors("ABSENT", ""); !IsNotFoundError(err) {
			t.Errorf("expected NotFoundError, got %v", err)
		}
	})

	t.Run("missing end anchor when one was named", func(t *testing.T) {
		doc := openFixture(t, xmlDocument(xmlPara("", "START"), xmlPara("", "text")))
		if _, err := doc.deleteBetweenAnchors("START", "ABSENT"); !IsNotFoundError(err) {
			t.Errorf("expected NotFoundError, got %v", err)
		}
	})

	t.Run("heuristic end at visually distinct paragraph", func(t *testing.T) {
		doc := openFixture(t, xmlDocument(
			xmlPara("", "START"),
			xmlPara("", "plain body"),
			xmlParaRuns("", xmlRun("<w:b/>", "NEXT SECTION")),
			xmlPara("", "preserved"),
		))
		info, err := doc.deleteBetweenAnchors("START", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if info.removed != 1 {
			t.Errorf("removed = %d, want 1", info.removed)
		}
		want := []string{"START", "NEXT SECTION", "preserved"}
		if diff := cmp.Diff(want, paragraphTexts(doc)); diff != "" {
			t.Errorf("paragraphs mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("heuristic with no distinct paragraph deletes to end", func(t *testing.T) {
		doc := openFixture(t, xmlDocument(
			xmlPara("", "START"),
			xmlPara("", "one"),
			xmlPara("", "two"),
		))
		info, err := doc.deleteBetweenAnchors("START", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if info.removed != 2 {
			t.Errorf("removed = %d, want 2", info.removed)
		}
		if diff := cmp.Diff([]string{"START"}, paragraphTexts(doc)); diff != "" {
			t.Errorf("paragraphs mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("start at last element yields empty block", func(t *testing.T) {
		doc := openFixture(t, xmlDocument(
			xmlPara("", "body"),
			xmlPara("", "START"),
		))
		info, err := doc.deleteBetweenAnchors("START", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if info.removed != 0 {
			t.Errorf("removed = %d, want 0", info.removed)
		}
	})
}

func TestReplaceBlockBetweenAnchors_FullCycle(t *testing.T) {
	path := writeDocx(t, xmlDocument(
		xmlPara("", "START MARKER"),
		xmlPara("", "stale content"),
		xmlTable([]string{"stale table"}),
		xmlPara("", "END MARKER"),
		xmlPara("", "untouched tail"),
	))

	info, err := replaceBlockBetweenAnchors(path, "START MARKER", "END MARKER",
		[]string{"fresh one", "fresh two"}, "", DefaultConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if info.removed != 2 || info.inserted != 2 {
		t.Errorf("info = %+v", info)
	}

	// The operation saved twice; what matters is the persisted state.
	doc := reopen(t, path)
	want := []string{"START MARKER", "fresh one", "fresh two", "END MARKER", "untouched tail"}
	if diff := cmp.Diff(want, paragraphTexts(doc)); diff != "" {
		t.Errorf("persisted paragraphs mismatch (-want +got):\n%s", diff)
	}
	if len(doc.Tables()) != 0 {
		t.Error("table between anchors survived the replacement")
	}
}

func TestReplaceBlockBetweenAnchors_FailureLeavesFileUntouched(t *testing.T) {
	path := writeDocx(t, xmlDocument(
		xmlPara("", "only paragraph"),
	))
	before, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	_, err = replaceBlockBetweenAnchors(path, "ABSENT", "", []string{"x"}, "", DefaultConfig())
	if !IsNotFoundError(err) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}

	after, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !cmp.Equal(before, after) {
		t.Error("file changed despite failed anchor resolution")
	}
}

func TestReplaceBlockBetweenAnchors_MissingFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "absent.docx")
	_, err := replaceBlockBetweenAnchors(missing, "A", "", nil, "", DefaultConfig())
	if !IsMissingFileError(err) {
		t.Errorf("expected missing-file error, got %v", err)
	}
}
