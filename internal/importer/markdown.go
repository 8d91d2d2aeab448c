package importer

import (
	"fmt"
	"io"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// MarkdownImporter pulls archive text out of Markdown notes. Archives
// live in code blocks: fenced blocks with no language or tagged
// "archive", plus indented code blocks. Prose and headings are
// ignored.
type MarkdownImporter struct{}

func (p *MarkdownImporter) Extract(r io.Reader, filename string) (string, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", filename, err)
	}

	md := goldmark.New()
	doc := md.Parser().Parse(text.NewReader(src))

	var blocks []string
	err = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *ast.FencedCodeBlock:
			lang := string(node.Language(src))
			if lang == "" || lang == "archive" {
				blocks = append(blocks, blockText(node, src))
			}
		case *ast.CodeBlock:
			blocks = append(blocks, blockText(node, src))
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		return "", fmt.Errorf("walk markdown: %w", err)
	}

	if len(blocks) == 0 {
		return "", fmt.Errorf("no archive blocks in %s", filename)
	}
	return strings.Join(blocks, "\n"), nil
}

// blockText reassembles a code block's lines from the source bytes.
func blockText(n ast.Node, src []byte) string {
	var buf strings.Builder
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		buf.Write(seg.Value(src))
	}
	return buf.String()
}
