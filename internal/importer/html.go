package importer

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// HTMLImporter pulls archive text out of HTML pages. Archives are
// expected in <pre> elements, the one place HTML keeps whitespace
// intact; everything else is ignored.
type HTMLImporter struct{}

func (p *HTMLImporter) Extract(r io.Reader, filename string) (string, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return "", fmt.Errorf("parse html: %w", err)
	}

	var blocks []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style":
				return
			case "pre":
				blocks = append(blocks, rawText(n))
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	if len(blocks) == 0 {
		return "", fmt.Errorf("no <pre> archive blocks in %s", filename)
	}
	return strings.Join(blocks, "\n"), nil
}

// rawText concatenates text nodes without trimming; indentation
// inside <pre> is significant. The newline right after the opening
// tag is dropped, as renderers do.
func rawText(n *html.Node) string {
	var buf strings.Builder
	var extract func(*html.Node)
	extract = func(n *html.Node) {
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extract(c)
		}
	}
	extract(n)
	return strings.TrimPrefix(buf.String(), "\n")
}
