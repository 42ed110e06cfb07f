// Package chisel edits Microsoft Word documents (DOCX) in place: it locates
// paragraphs, headings and anchor text by normalized matching, and performs
// structural edits (replace, delete, insert) that preserve styles and
// run-level formatting.
//
// # Quick Start
//
// All operations go through an Editor and take the document path; each call
// opens the file, edits fully in memory, and saves once on success:
//
//	ed := chisel.NewEditor()
//
//	result, err := ed.ReplaceBlockBelowHeader("report.docx", "Summary",
//	    []string{"Q3 revenue grew 12%.", "", "Full detail in appendix."}, "")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result)
//
// # Anchor matching
//
// Human-authored anchor text rarely matches the document byte for byte.
// Queries and paragraph text are both canonicalized (Unicode NFKC,
// whitespace collapsed, trimmed) and matched in two passes: exact first,
// then substring. The substring fallback is what lets the query
// "Section One" find the auto-numbered heading "1. Section One".
//
// # Block boundaries
//
// Operations that act on a block below a start point determine the block's
// end by one of three policies: an explicit end anchor, the next heading or
// TOC paragraph by style, or the first visually distinct paragraph (bold,
// all-caps, or an explicit font size) when no end anchor is given.
//
// # Failure behavior
//
// Every operation either completes and saves, or fails before the save and
// leaves the file untouched. Failures are typed (NotFoundError, RangeError,
// FileError, OperationError) and their messages name the offending
// parameter and the document's actual bounds.
package chisel
