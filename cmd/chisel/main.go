package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/benjaminschreck/go-chisel/pkg/chisel"
)

const usage = `Usage: chisel <command> [arguments]

Commands:
  text <file>                              Extract all document text
  xml <file>                               Print raw word/document.xml
  properties <file>                        Show document properties
  structure <file>                         Show paragraphs and tables
  outline <file>                           Show document headings
  find <file> <query>                      Find text occurrences
  replace <file> <old> <new>               Find and replace text everywhere
  replace-range <file> <start> <end> <p>…  Replace a paragraph range
  delete-range <file> <start> <end>        Delete a paragraph range
  section <file> <heading>                 Show paragraphs of a section
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}

	ed := chisel.NewEditor()
	if err := run(ed, os.Args[1], os.Args[2:]); err != nil {
		fmt.Fprintln(os.Stderr, "chisel:", err)
		os.Exit(1)
	}
}

func run(ed *chisel.Editor, command string, args []string) error {
	switch command {
	case "text":
		if len(args) != 1 {
			return fmt.Errorf("text requires <file>")
		}
		text, err := ed.ExtractText(args[0])
		if err != nil {
			return err
		}
		fmt.Println(text)

	case "xml":
		if len(args) != 1 {
			return fmt.Errorf("xml requires <file>")
		}
		xml, err := ed.GetDocumentXML(args[0])
		if err != nil {
			return err
		}
		fmt.Println(xml)

	case "properties":
		if len(args) != 1 {
			return fmt.Errorf("properties requires <file>")
		}
		props, err := ed.GetDocumentProperties(args[0], false)
		if err != nil {
			return err
		}
		printProperties(props)

	case "structure":
		if len(args) != 1 {
			return fmt.Errorf("structure requires <file>")
		}
		structure, err := ed.GetDocumentStructure(args[0])
		if err != nil {
			return err
		}
		printStructure(structure)

	case "outline":
		if len(args) != 1 {
			return fmt.Errorf("outline requires <file>")
		}
		props, err := ed.GetDocumentProperties(args[0], true)
		if err != nil {
			return err
		}
		for _, h := range props.Headings {
			fmt.Printf("%s[%d] %s (%s)\n", strings.Repeat("  ", h.Level), h.Index, h.Text, h.Style)
		}

	case "find":
		if len(args) != 2 {
			return fmt.Errorf("find requires <file> <query>")
		}
		found, err := ed.FindText(args[0], args[1], true, false, false)
		if err != nil {
			return err
		}
		fmt.Printf("%d occurrence(s) of %q\n", found.TotalCount, found.Query)
		for _, occ := range found.Occurrences {
			where := occ.Location
			if where == "" {
				where = fmt.Sprintf("Paragraph %d", occ.ParagraphIndex)
			}
			fmt.Printf("  %s, position %d: %s\n", where, occ.Position, occ.Context)
		}

	case "replace":
		if len(args) != 3 {
			return fmt.Errorf("replace requires <file> <old> <new>")
		}
		result, err := ed.FindAndReplaceText(args[0], args[1], args[2])
		if err != nil {
			return err
		}
		fmt.Println(result)

	case "replace-range":
		if len(args) < 3 {
			return fmt.Errorf("replace-range requires <file> <start> <end> [paragraph]...")
		}
		start, end, err := parseRange(args[1], args[2])
		if err != nil {
			return err
		}
		result, err := ed.ReplaceParagraphRange(args[0], start, end, args[3:], "", false)
		if err != nil {
			return err
		}
		fmt.Println(result)

	case "delete-range":
		if len(args) != 3 {
			return fmt.Errorf("delete-range requires <file> <start> <end>")
		}
		start, end, err := parseRange(args[1], args[2])
		if err != nil {
			return err
		}
		result, err := ed.DeleteParagraphRange(args[0], start, end)
		if err != nil {
			return err
		}
		fmt.Println(result)

	case "section":
		if len(args) != 2 {
			return fmt.Errorf("section requires <file> <heading>")
		}
		section, err := ed.GetSectionParagraphs(args[0], args[1], true)
		if err != nil {
			return err
		}
		fmt.Printf("Section %q (%s, level %d)\n", section.HeadingText, section.HeadingStyle, section.HeadingLevel)
		for _, p := range section.Paragraphs {
			fmt.Printf("  [%d] %s\n", p.Index, p.Text)
		}

	default:
		return fmt.Errorf("unknown command: %s", command)
	}
	return nil
}

func parseRange(startArg, endArg string) (int, int, error) {
	start, err := strconv.Atoi(startArg)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid start index %q", startArg)
	}
	end, err := strconv.Atoi(endArg)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid end index %q", endArg)
	}
	return start, end, nil
}

func printProperties(props *chisel.PropertiesResult) {
	fmt.Printf("Title:            %s\n", props.Title)
	fmt.Printf("Author:           %s\n", props.Author)
	fmt.Printf("Subject:          %s\n", props.Subject)
	fmt.Printf("Created:          %s\n", props.Created)
	fmt.Printf("Modified:         %s\n", props.Modified)
	fmt.Printf("Last modified by: %s\n", props.LastModifiedBy)
	fmt.Printf("Revision:         %d\n", props.Revision)
	fmt.Printf("Pages:            %d\n", props.PageCount)
	fmt.Printf("Paragraphs:       %d\n", props.ParagraphCount)
	fmt.Printf("Tables:           %d\n", props.TableCount)
	fmt.Printf("Words (body):     %d\n", props.WordCount)
	fmt.Printf("Words (tables):   %d\n", props.TableWordCount)
}

func printStructure(structure *chisel.StructureResult) {
	for _, p := range structure.Paragraphs {
		fmt.Printf("[%d] (%s) %s\n", p.Index, p.Style, p.Text)
	}
	for _, t := range structure.Tables {
		fmt.Printf("Table %d: %d rows x %d columns\n", t.Index, t.Rows, t.Columns)
		for _, row := range t.Preview {
			fmt.Printf("  | %s |\n", strings.Join(row, " | "))
		}
	}
}
