package chisel

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"os"
)

// documentPartName is the archive entry every DOCX must contain.
const documentPartName = "word/document.xml"

// Container handles reading and rewriting the parts of a DOCX package.
// The package is a zip archive; the container keeps the source bytes so a
// rewrite can copy every untouched part byte for byte in original order.
type Container struct {
	source []byte
	reader *zip.Reader
	Parts  map[string]*zip.File
}

// NewContainer creates a container from DOCX bytes
func NewContainer(data []byte) (*Container, error) {
	zipReader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("failed to read zip file: %w", err)
	}

	c := &Container{
		source: data,
		reader: zipReader,
		Parts:  make(map[string]*zip.File),
	}

	// Index all parts by name
	for _, file := range zipReader.File {
		c.Parts[file.Name] = file
	}

	// Check if this is a valid DOCX file by looking for required parts
	if _, ok := c.Parts[documentPartName]; !ok {
		return nil, fmt.Errorf("not a valid DOCX file: missing %s", documentPartName)
	}

	return c, nil
}

// ContainerFromFile creates a container from a file path
func ContainerFromFile(path string) (*Container, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, NewFileError("open", path, err)
	}
	return NewContainer(content)
}

// GetDocumentXML retrieves the content of word/document.xml
func (c *Container) GetDocumentXML() ([]byte, error) {
	return c.GetPart(documentPartName)
}

// GetPart retrieves the content of a specific part
func (c *Container) GetPart(partName string) ([]byte, error) {
	file, ok := c.Parts[partName]
	if !ok {
		return nil, fmt.Errorf("part %s not found", partName)
	}

	rc, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open part %s: %w", partName, err)
	}
	defer rc.Close()

	content, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("failed to read part %s: %w", partName, err)
	}

	return content, nil
}

// ListParts returns a list of all part names in the DOCX
func (c *Container) ListParts() []string {
	parts := make([]string, 0, len(c.Parts))
	for name := range c.Parts {
		parts = append(parts, name)
	}
	return parts
}

// Rewrite builds a complete new archive with word/document.xml replaced by
// documentXML and every other part copied unchanged. Nothing is written to
// disk; the caller persists the returned bytes in a single step so a failed
// rewrite can never leave a half-written document behind.
func (c *Container) Rewrite(documentXML []byte) ([]byte, error) {
	buf := new(bytes.Buffer)
	w := zip.NewWriter(buf)

	for _, file := range c.reader.File {
		fw, err := w.Create(file.Name)
		if err != nil {
			return nil, fmt.Errorf("failed to create %s: %w", file.Name, err)
		}

		if file.Name == documentPartName {
			if _, err := fw.Write(documentXML); err != nil {
				return nil, fmt.Errorf("failed to write %s: %w", file.Name, err)
			}
			continue
		}

		fr, err := file.Open()
		if err != nil {
			return nil, fmt.Errorf("failed to open %s: %w", file.Name, err)
		}

		_, err = io.Copy(fw, fr)
		fr.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to copy %s: %w", file.Name, err)
		}
	}

	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("failed to close zip writer: %w", err)
	}

	return buf.Bytes(), nil
}
