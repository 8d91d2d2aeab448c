package importer

import (
	"strings"
	"testing"
)

func TestMarkdownImporter_FencedBlocks(t *testing.T) {
	input := "# Contacts\n\nPeople I know:\n\n```archive\nuser markov\n    email home\n       address mark@x.y\n```\n\nSome closing prose.\n"
	imp := &MarkdownImporter{}
	got, err := imp.Extract(strings.NewReader(input), "contacts.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(got, "user markov\n") {
		t.Errorf("expected the block content, got %q", got)
	}
	if !strings.Contains(got, "    email home\n") {
		t.Errorf("expected indentation preserved, got %q", got)
	}
	if strings.Contains(got, "People I know") || strings.Contains(got, "Contacts") {
		t.Errorf("expected prose and headings dropped, got %q", got)
	}
}

func TestMarkdownImporter_UntaggedAndTaggedBlocks(t *testing.T) {
	input := "```\nuser a\n   nickname one\n```\n\n```archive\nuser b\n   nickname two\n```\n\n```go\nfunc main() {}\n```\n"
	imp := &MarkdownImporter{}
	got, err := imp.Extract(strings.NewReader(input), "mixed.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(got, "user a") || !strings.Contains(got, "user b") {
		t.Errorf("expected untagged and archive blocks, got %q", got)
	}
	if strings.Contains(got, "func main") {
		t.Errorf("expected other languages skipped, got %q", got)
	}
}

func TestMarkdownImporter_IndentedBlocks(t *testing.T) {
	input := "Notes:\n\n    user markov\n       nickname mark\n\nDone.\n"
	imp := &MarkdownImporter{}
	got, err := imp.Extract(strings.NewReader(input), "indented.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(got, "user markov") {
		t.Errorf("expected the indented block, got %q", got)
	}
}

func TestMarkdownImporter_NoBlocksIsAnError(t *testing.T) {
	imp := &MarkdownImporter{}
	_, err := imp.Extract(strings.NewReader("# Just prose\n\nNothing else.\n"), "prose.md")
	if err == nil {
		t.Fatal("expected an error when no archive blocks exist")
	}
	if !strings.Contains(err.Error(), "no archive blocks") {
		t.Errorf("expected a clear message, got %q", err.Error())
	}
}
