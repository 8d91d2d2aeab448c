package archive

import (
	"fmt"
	"strings"

	"dossier/internal/identity"
)

// Problem is one non-fatal diagnostic, tied to a source label and the
// 1-based starter line of the block it came from.
type Problem struct {
	Source  string `json:"source"`
	Line    int    `json:"line"`
	Message string `json:"message"`
}

func (p Problem) String() string {
	return fmt.Sprintf("%s:%d: %s", p.Source, p.Line, p.Message)
}

// splitKeyword cuts a line at the first whitespace run: the first
// token, and the remainder trimmed of surrounding space.
func splitKeyword(text string) (keyword, rest string) {
	text = strings.TrimSpace(text)
	i := strings.IndexAny(text, " \t")
	if i < 0 {
		return text, ""
	}
	return text[:i], strings.TrimSpace(text[i:])
}

// isReference reports whether a line has reference shape: an equals
// sign with one or two whitespace-separated tokens before it, as in
// "home = ..." or "location home = ...". References are recognized
// and counted but never resolved.
func isReference(text string) bool {
	s := strings.TrimSpace(text)
	eq := strings.IndexByte(s, '=')
	if eq < 0 {
		return false
	}
	n := len(strings.Fields(s[:eq]))
	return n == 1 || n == 2
}

// parser walks the logical-line stream of one input.
type parser struct {
	lines    *lineReader
	registry *Registry
	source   string
	maxDepth int
	depth    int

	problems []Problem
	refs     int
}

// parseBlock consumes the block introduced by starter and returns its
// record, or nil when the block produces nothing. The loop stops on
// the first line whose indent is at or below the starter's; that line
// stays unconsumed for the caller.
func (p *parser) parseBlock(starter *line) (identity.Record, error) {
	if p.maxDepth > 0 && p.depth >= p.maxDepth {
		return nil, fmt.Errorf("%s:%d: blocks nested deeper than %d levels", p.source, starter.num, p.maxDepth)
	}
	p.depth++
	defer func() { p.depth-- }()

	keyword, name := splitKeyword(starter.text)
	factory, known := p.registry.Resolve(keyword)

	var fields []identity.Field
	var nested []identity.Record

	for {
		cur, ok := p.lines.peek()
		if !ok || cur.indent <= starter.indent {
			break
		}
		p.lines.advance()

		if !known {
			// Skip mode: the dedent check above already bounds the
			// subtree, so every line under an unknown keyword is
			// consumed and dropped without a diagnostic.
			continue
		}

		nextIndent := -1
		if after, ok := p.lines.peek(); ok {
			nextIndent = after.indent
		}
		if cur.indent < nextIndent {
			// A further-indented follower makes this line a nested
			// block starter. The comparison is against the following
			// line only, never against the block starter.
			child, err := p.parseBlock(cur)
			if err != nil {
				return nil, err
			}
			if child != nil {
				nested = append(nested, child)
			}
			continue
		}

		if isReference(cur.text) {
			p.refs++
			continue
		}

		fname, fvalue := splitKeyword(cur.text)
		fields = append(fields, identity.Field{Name: fname, Value: fvalue})
	}

	// Unknown keywords and empty blocks vanish silently.
	if !known || (len(fields) == 0 && len(nested) == 0) {
		return nil, nil
	}

	rec, err := p.construct(factory, name, fields, starter)
	if err != nil {
		return nil, err
	}
	for _, child := range nested {
		var warn identity.Warnings
		rec.Attach(child, &warn)
		p.collect(starter, warn)
	}
	return rec, nil
}

// construct runs a factory with a sink scoped to this one call and
// re-emits whatever it captured as contextualized problems. A factory
// error is fatal and aborts the parse.
func (p *parser) construct(factory Factory, name string, fields []identity.Field, starter *line) (identity.Record, error) {
	var warn identity.Warnings
	rec, err := factory(name, fields, &warn)
	p.collect(starter, warn)
	if err != nil {
		return nil, fmt.Errorf("%s:%d: %w", p.source, starter.num, err)
	}
	return rec, nil
}

func (p *parser) collect(starter *line, warn identity.Warnings) {
	for _, msg := range warn {
		p.problems = append(p.problems, Problem{Source: p.source, Line: starter.num, Message: msg})
	}
}
