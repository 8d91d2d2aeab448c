package importer

import (
	"fmt"
	"io"
)

// TextImporter handles native archive files; the bytes are the
// archive.
type TextImporter struct{}

func (p *TextImporter) Extract(r io.Reader, filename string) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", filename, err)
	}
	return string(data), nil
}
