package chisel

import (
	"fmt"
	"os"
)

// Editor is the path-level operation layer. Every method is a total
// function from (path, parameters) to either a result or a typed error:
// it opens the document fresh, validates fully, mutates in memory, and
// saves once at the end, so the on-disk file is never partially modified.
type Editor struct {
	config *Config
	logger *Logger
}

// Option configures an Editor.
type Option func(*Editor)

// WithConfig replaces the editor's whole configuration.
func WithConfig(cfg *Config) Option {
	return func(e *Editor) {
		e.config = cfg
	}
}

// WithLogLevel sets the editor's log level (debug, info, warn, error).
func WithLogLevel(level string) Option {
	return func(e *Editor) {
		e.config.LogLevel = level
		e.logger = NewLogger(os.Stderr, parseLogLevel(level))
	}
}

// WithStrictStyles controls whether an unknown explicit style fails the
// operation or falls back to "Normal" with a warning.
func WithStrictStyles(on bool) Option {
	return func(e *Editor) {
		e.config.StrictStyles = on
	}
}

// WithMaxFindResults caps how many occurrences a search collects. 0 means
// unlimited.
func WithMaxFindResults(n int) Option {
	return func(e *Editor) {
		e.config.MaxFindResults = n
	}
}

// WithLogger sets an explicit logger.
func WithLogger(l *Logger) Option {
	return func(e *Editor) {
		e.logger = l
	}
}

// NewEditor creates an Editor. Without options it uses the global
// configuration and logger.
func NewEditor(opts ...Option) *Editor {
	e := &Editor{
		config: GetGlobalConfig(),
		logger: GetLogger(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// guard converts a panic escaping an operation into an OperationError, so
// callers always receive a descriptive failure instead of a raw fault.
func (e *Editor) guard(op, path string, err *error) {
	if r := recover(); r != nil {
		e.logger.Error("unexpected failure during %s of %s: %v", op, path, r)
		*err = NewOperationError(op, path, RecoverError(r))
	}
}

// BlockReplaceResult reports a composite block replacement.
type BlockReplaceResult struct {
	Header      string
	StartAnchor string
	EndAnchor   string
	Inserted    int
	Removed     int
	Style       string
}

func (r *BlockReplaceResult) String() string {
	if r.Header != "" {
		return fmt.Sprintf("Replaced content under '%s' with %d paragraph(s), style: %s, removed %d elements.",
			r.Header, r.Inserted, r.Style, r.Removed)
	}
	end := r.EndAnchor
	if end == "" {
		end = "next logical header"
	}
	return fmt.Sprintf("Replaced content between '%s' and '%s' with %d paragraph(s), style: %s, removed %d elements.",
		r.StartAnchor, end, r.Inserted, r.Style, r.Removed)
}

// BlockDeleteResult reports a block deletion below a header.
type BlockDeleteResult struct {
	Header      string
	HeaderIndex int
	Removed     int
}

func (r *BlockDeleteResult) String() string {
	return fmt.Sprintf("Deleted %d element(s) under '%s'.", r.Removed, r.Header)
}

// RangeReplaceResult reports an index-range replacement.
type RangeReplaceResult struct {
	StartIndex int
	EndIndex   int
	Removed    int
	Inserted   int
	Style      string
}

func (r *RangeReplaceResult) String() string {
	return fmt.Sprintf("Replaced %d paragraph(s) (indices %d-%d) with %d new paragraph(s).",
		r.Removed, r.StartIndex, r.EndIndex, r.Inserted)
}

// RangeDeleteResult reports an index-range deletion.
type RangeDeleteResult struct {
	StartIndex int
	EndIndex   int
	Deleted    int
}

func (r *RangeDeleteResult) String() string {
	return fmt.Sprintf("Successfully deleted %d paragraph(s) (indices %d-%d).",
		r.Deleted, r.StartIndex, r.EndIndex)
}

// ParagraphEditResult reports a single-paragraph text replacement.
type ParagraphEditResult struct {
	Index int
}

func (r *ParagraphEditResult) String() string {
	return fmt.Sprintf("Paragraph at index %d replaced successfully.", r.Index)
}

// ReplaceTextResult reports a document-wide find and replace.
type ReplaceTextResult struct {
	Old   string
	New   string
	Count int
}

func (r *ReplaceTextResult) String() string {
	return fmt.Sprintf("Replaced %d occurrence(s) of '%s'.", r.Count, r.Old)
}

// ParagraphRangeResult carries the paragraph records of a read range.
type ParagraphRangeResult struct {
	Paragraphs []ParagraphRecord
	Count      int
}

// InsertResult reports an insert operation near a target paragraph.
type InsertResult struct {
	Kind        string // "paragraph", "header", "bulleted list", "numbered list"
	Title       string // header text or paragraph text
	AnchorIndex int
	Position    Position
	Style       string
	Items       int
}

func (r *InsertResult) String() string {
	switch r.Kind {
	case "header":
		return fmt.Sprintf("Header '%s' (style: %s) inserted %s paragraph (index %d).",
			r.Title, r.Style, r.Position, r.AnchorIndex)
	case "bulleted list", "numbered list":
		return fmt.Sprintf("%s with %d items inserted %s paragraph (index %d).",
			capitalize(r.Kind), r.Items, r.Position, r.AnchorIndex)
	default:
		return fmt.Sprintf("Line/paragraph inserted %s paragraph (index %d) with style '%s'.",
			r.Position, r.AnchorIndex, r.Style)
	}
}

// ReplaceBlockBetweenAnchors replaces all content between two anchor
// paragraphs. With an empty endAnchor the block runs to the next visually
// distinct paragraph (bold, all-caps, or explicit font size), or the end
// of the document. The start anchor paragraph itself is preserved and the
// new paragraphs are inserted after it.
func (e *Editor) ReplaceBlockBetweenAnchors(path, startAnchor, endAnchor string, newParagraphs []string, style string) (result *BlockReplaceResult, err error) {
	defer e.guard("replace block between anchors", path, &err)

	info, err := replaceBlockBetweenAnchors(path, startAnchor, endAnchor, newParagraphs, style, e.config)
	if err != nil {
		return nil, err
	}

	e.logger.Info("replaced block between anchors in %s: removed %d, inserted %d", path, info.removed, info.inserted)
	return &BlockReplaceResult{
		StartAnchor: startAnchor,
		EndAnchor:   endAnchor,
		Inserted:    info.inserted,
		Removed:     info.removed,
		Style:       info.styleUsed,
	}, nil
}

// ReplaceBlockBelowHeader replaces everything under a header (matched by
// text) up to the next heading or TOC paragraph (matched by style).
func (e *Editor) ReplaceBlockBelowHeader(path, header string, newParagraphs []string, style string) (result *BlockReplaceResult, err error) {
	defer e.guard("replace block below header", path, &err)

	doc, err := Open(path)
	if err != nil {
		return nil, err
	}
	info, err := doc.replaceBlockBelowHeader(header, newParagraphs, style, e.config)
	if err != nil {
		return nil, err
	}
	if err := doc.Save(); err != nil {
		return nil, err
	}

	e.logger.Info("replaced block below header %q in %s: removed %d, inserted %d", header, path, info.removed, info.inserted)
	return &BlockReplaceResult{
		Header:   header,
		Inserted: info.inserted,
		Removed:  info.removed,
		Style:    info.styleUsed,
	}, nil
}

// DeleteBlockBelowHeader deletes everything under a header up to the next
// heading or TOC paragraph, keeping the header.
func (e *Editor) DeleteBlockBelowHeader(path, header string) (result *BlockDeleteResult, err error) {
	defer e.guard("delete block below header", path, &err)

	doc, err := Open(path)
	if err != nil {
		return nil, err
	}
	info, err := doc.deleteBlockBelowHeader(header)
	if err != nil {
		return nil, err
	}
	if err := doc.Save(); err != nil {
		return nil, err
	}

	return &BlockDeleteResult{Header: header, HeaderIndex: info.startIndex, Removed: info.removed}, nil
}

// ReplaceParagraphRange replaces paragraphs [start, end] inclusive with
// new paragraphs. The style precedence is explicit style, then the style
// of the paragraph at start when preserveStyle is set, then "Normal".
func (e *Editor) ReplaceParagraphRange(path string, start, end int, newParagraphs []string, style string, preserveStyle bool) (result *RangeReplaceResult, err error) {
	defer e.guard("replace paragraph range", path, &err)

	doc, err := Open(path)
	if err != nil {
		return nil, err
	}

	paras := doc.Paragraphs()
	if err := validateReplaceRange(start, end, len(paras)); err != nil {
		return nil, err
	}

	styleUsed, err := doc.resolveNewStyle(style, preserveStyle, paras[start], e.config)
	if err != nil {
		return nil, err
	}

	if err := doc.replaceParagraphRange(start, end, newParagraphs, styleUsed); err != nil {
		return nil, err
	}
	if err := doc.Save(); err != nil {
		return nil, err
	}

	return &RangeReplaceResult{
		StartIndex: start,
		EndIndex:   end,
		Removed:    end - start + 1,
		Inserted:   len(newParagraphs),
		Style:      styleUsed,
	}, nil
}

// DeleteParagraphRange deletes paragraphs [start, end] inclusive.
func (e *Editor) DeleteParagraphRange(path string, start, end int) (result *RangeDeleteResult, err error) {
	defer e.guard("delete paragraph range", path, &err)

	doc, err := Open(path)
	if err != nil {
		return nil, err
	}
	if err := doc.deleteParagraphRange(start, end); err != nil {
		return nil, err
	}
	if err := doc.Save(); err != nil {
		return nil, err
	}

	return &RangeDeleteResult{StartIndex: start, EndIndex: end, Deleted: end - start + 1}, nil
}

// ReplaceParagraphText replaces the text of the paragraph at index. With
// parseMarkdown set, *italic*, **bold** and ***bold italic*** spans become
// formatted runs. With preserveStyle unset the paragraph reverts to
// "Normal".
func (e *Editor) ReplaceParagraphText(path string, index int, newText string, preserveStyle, parseMarkdown bool) (result *ParagraphEditResult, err error) {
	defer e.guard("replace paragraph text", path, &err)

	doc, err := Open(path)
	if err != nil {
		return nil, err
	}

	paras := doc.Paragraphs()
	if err := validateParagraphIndex(index, len(paras)); err != nil {
		return nil, err
	}

	p := paras[index]
	if parseMarkdown {
		setParagraphRuns(p, parseMarkdownRuns(newText))
	} else {
		p.clearRuns()
		p.AddRun(newText)
	}
	if !preserveStyle {
		p.SetStyle("Normal")
	}

	if err := doc.Save(); err != nil {
		return nil, err
	}
	return &ParagraphEditResult{Index: index}, nil
}

// FindText finds all occurrences of query in the document's paragraphs
// and table cells.
func (e *Editor) FindText(path, query string, matchCase, wholeWord, includeParagraphText bool) (result *FindResult, err error) {
	defer e.guard("find text", path, &err)

	doc, err := Open(path)
	if err != nil {
		return nil, err
	}
	if query == "" {
		return nil, &ValidationError{Issues: []ValidationIssue{
			{Field: "query", Message: "search text cannot be empty"},
		}}
	}

	found := doc.findText(query, findOptions{
		matchCase:            matchCase,
		wholeWord:            wholeWord,
		includeParagraphText: includeParagraphText,
		maxResults:           e.config.MaxFindResults,
	})
	e.logger.Debug("found %d occurrence(s) of %q in %s", found.TotalCount, query, path)
	return &found, nil
}

// FindTexts runs one search per query against a single open of the
// document. An empty query yields an error entry for that query; an empty
// query list yields an empty map.
func (e *Editor) FindTexts(path string, queries []string, matchCase, wholeWord, includeParagraphText bool) (results map[string]*FindResult, err error) {
	defer e.guard("find texts", path, &err)

	doc, err := Open(path)
	if err != nil {
		return nil, err
	}

	results = make(map[string]*FindResult, len(queries))
	for _, query := range queries {
		if query == "" {
			results[query] = &FindResult{Query: query, Error: "search text cannot be empty"}
			continue
		}
		found := doc.findText(query, findOptions{
			matchCase:            matchCase,
			wholeWord:            wholeWord,
			includeParagraphText: includeParagraphText,
			maxResults:           e.config.MaxFindResults,
		})
		results[query] = &found
	}
	return results, nil
}

// FindAndReplaceText replaces every occurrence of old with new throughout
// the document, including table cells and across run boundaries. TOC
// paragraphs are never touched.
func (e *Editor) FindAndReplaceText(path, old, new string) (result *ReplaceTextResult, err error) {
	defer e.guard("find and replace text", path, &err)

	doc, err := Open(path)
	if err != nil {
		return nil, err
	}

	count := doc.findAndReplace(old, new)
	if count > 0 {
		if err := doc.Save(); err != nil {
			return nil, err
		}
	}

	e.logger.Info("replaced %d occurrence(s) of %q in %s", count, old, path)
	return &ReplaceTextResult{Old: old, New: new, Count: count}, nil
}

// GetParagraphText returns one paragraph's record.
func (e *Editor) GetParagraphText(path string, index int) (result *ParagraphRecord, err error) {
	defer e.guard("get paragraph text", path, &err)

	doc, err := Open(path)
	if err != nil {
		return nil, err
	}

	paras := doc.Paragraphs()
	if err := validateParagraphIndex(index, len(paras)); err != nil {
		return nil, err
	}

	record := paragraphRecord(index, paras[index])
	return &record, nil
}

// GetParagraphRange returns the records of paragraphs [start, end]
// inclusive.
func (e *Editor) GetParagraphRange(path string, start, end int) (result *ParagraphRangeResult, err error) {
	defer e.guard("get paragraph range", path, &err)

	doc, err := Open(path)
	if err != nil {
		return nil, err
	}

	paras := doc.Paragraphs()
	if err := validateIndexRange(start, end, len(paras)); err != nil {
		return nil, err
	}

	rangeResult := &ParagraphRangeResult{}
	for i := start; i <= end; i++ {
		rangeResult.Paragraphs = append(rangeResult.Paragraphs, paragraphRecord(i, paras[i]))
	}
	rangeResult.Count = len(rangeResult.Paragraphs)
	return rangeResult, nil
}

// GetSectionParagraphs returns all paragraphs under a heading until the
// next heading of the same or a higher level.
func (e *Editor) GetSectionParagraphs(path, headingText string, includeHeading bool) (result *SectionResult, err error) {
	defer e.guard("get section paragraphs", path, &err)

	doc, err := Open(path)
	if err != nil {
		return nil, err
	}
	return doc.getSection(headingText, includeHeading)
}

// InsertParagraphNearText inserts a paragraph before or after the target.
// copyFormatFrom optionally names a paragraph whose first run's character
// formatting is copied onto the new paragraph's first run.
func (e *Editor) InsertParagraphNearText(path string, target InsertTarget, text string, position Position, style string, copyFormatFrom *int) (result *InsertResult, err error) {
	defer e.guard("insert paragraph", path, &err)

	doc, err := Open(path)
	if err != nil {
		return nil, err
	}
	anchorIdx, styleUsed, err := doc.insertParagraphNear(target, text, position, style, copyFormatFrom, e.config)
	if err != nil {
		return nil, err
	}
	if err := doc.Save(); err != nil {
		return nil, err
	}

	return &InsertResult{
		Kind:        "paragraph",
		Title:       text,
		AnchorIndex: anchorIdx,
		Position:    position,
		Style:       styleUsed,
	}, nil
}

// InsertHeaderNearText inserts a heading paragraph before or after the
// target, styled with the requested heading style.
func (e *Editor) InsertHeaderNearText(path string, target InsertTarget, title string, position Position, style string) (result *InsertResult, err error) {
	defer e.guard("insert header", path, &err)

	if style == "" {
		style = "Heading 1"
	}

	doc, err := Open(path)
	if err != nil {
		return nil, err
	}
	anchorIdx, styleUsed, err := doc.insertHeaderNear(target, title, position, style, e.config)
	if err != nil {
		return nil, err
	}
	if err := doc.Save(); err != nil {
		return nil, err
	}

	return &InsertResult{
		Kind:        "header",
		Title:       title,
		AnchorIndex: anchorIdx,
		Position:    position,
		Style:       styleUsed,
	}, nil
}

// InsertNumberedListNearText inserts a bulleted or numbered list before
// or after the target, in input order on both sides.
func (e *Editor) InsertNumberedListNearText(path string, target InsertTarget, items []string, position Position, numbered bool) (result *InsertResult, err error) {
	defer e.guard("insert list", path, &err)

	doc, err := Open(path)
	if err != nil {
		return nil, err
	}
	anchorIdx, count, err := doc.insertListNear(target, items, position, numbered)
	if err != nil {
		return nil, err
	}
	if err := doc.Save(); err != nil {
		return nil, err
	}

	kind := "bulleted list"
	if numbered {
		kind = "numbered list"
	}
	return &InsertResult{
		Kind:        kind,
		AnchorIndex: anchorIdx,
		Position:    position,
		Items:       count,
	}, nil
}

// GetDocumentProperties returns document metadata and counting
// statistics, with the heading outline when includeOutline is set.
func (e *Editor) GetDocumentProperties(path string, includeOutline bool) (result *PropertiesResult, err error) {
	defer e.guard("get document properties", path, &err)

	doc, err := Open(path)
	if err != nil {
		return nil, err
	}
	return doc.getProperties(includeOutline), nil
}

// GetDocumentStructure returns paragraph previews and table summaries.
func (e *Editor) GetDocumentStructure(path string) (result *StructureResult, err error) {
	defer e.guard("get document structure", path, &err)

	doc, err := Open(path)
	if err != nil {
		return nil, err
	}
	return doc.getStructure(), nil
}

// ExtractText returns all document text: body paragraphs, then table
// cell paragraphs, newline-joined.
func (e *Editor) ExtractText(path string) (text string, err error) {
	defer e.guard("extract text", path, &err)

	doc, err := Open(path)
	if err != nil {
		return "", err
	}
	return doc.extractText(), nil
}

// GetDocumentXML returns the raw word/document.xml content.
func (e *Editor) GetDocumentXML(path string) (xml string, err error) {
	defer e.guard("get document xml", path, &err)

	if _, err := os.Stat(path); err != nil {
		return "", NewFileError("open", path, err)
	}
	container, err := ContainerFromFile(path)
	if err != nil {
		return "", NewFileError("open", path, err)
	}
	content, err := container.GetDocumentXML()
	if err != nil {
		return "", NewFileError("read", path, err)
	}
	return string(content), nil
}

// capitalize upper-cases the first byte of an ASCII string.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	if s[0] >= 'a' && s[0] <= 'z' {
		return string(s[0]-'a'+'A') + s[1:]
	}
	return s
}
