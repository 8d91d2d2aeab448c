package importer

import (
	"strings"
	"testing"
)

func TestForFile_Dispatch(t *testing.T) {
	imp, err := ForFile("people.arch")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := imp.(*TextImporter); !ok {
		t.Errorf("expected a text importer for .arch, got %T", imp)
	}

	imp, _ = ForFile("notes.md")
	if _, ok := imp.(*MarkdownImporter); !ok {
		t.Errorf("expected a markdown importer for .md, got %T", imp)
	}

	imp, _ = ForFile("page.htm")
	if _, ok := imp.(*HTMLImporter); !ok {
		t.Errorf("expected an html importer for .htm, got %T", imp)
	}

	imp, _ = ForFile("sheet.PDF")
	if _, ok := imp.(*PDFImporter); !ok {
		t.Errorf("expected a pdf importer for .PDF, got %T", imp)
	}

	imp, _ = ForFile("contacts.docx")
	if _, ok := imp.(*DOCXImporter); !ok {
		t.Errorf("expected a docx importer for .docx, got %T", imp)
	}

	if _, err := ForFile("data.xlsx"); err == nil {
		t.Error("expected an error for an unsupported extension")
	}
}

func TestIsSupportedExtension(t *testing.T) {
	for _, name := range []string{"a.txt", "a.arch", "a.md", "b.html", "c.pdf", "d.docx", "UPPER.TXT"} {
		if !IsSupportedExtension(name) {
			t.Errorf("expected %q to be supported", name)
		}
	}
	for _, name := range []string{"a.xlsx", "a", "archive.zip"} {
		if IsSupportedExtension(name) {
			t.Errorf("expected %q to be unsupported", name)
		}
	}
}

func TestTextImporter_Passthrough(t *testing.T) {
	input := "user markov\n   email home\n      address mark@x.y\n"
	imp := &TextImporter{}
	got, err := imp.Extract(strings.NewReader(input), "people.arch")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != input {
		t.Errorf("expected the bytes untouched, got %q", got)
	}
}
