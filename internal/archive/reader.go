package archive

import (
	"fmt"
	"io"
	"os"

	"dossier/internal/identity"
)

// Sink receives finished top-level records as they complete.
type Sink interface {
	Add(rec identity.Record)
}

// Result is what one parse produced.
type Result struct {
	Records    []identity.Record `json:"records"` // top-level records in document order
	Problems   []Problem         `json:"problems"`
	References int               `json:"references"` // reference lines recognized, left unresolved
}

// Reader parses plain-text identity archives. The zero value is
// usable. A Reader holds no per-parse state, so one Reader may serve
// many goroutines as long as nothing mutates its registry mid-parse.
type Reader struct {
	// Registry resolves block keywords. Nil means DefaultRegistry.
	Registry *Registry
	// TabWidth is the tab stop width input starts with. Values below
	// 1 mean DefaultTabWidth; a tabstop directive in the input changes
	// the width from that point on.
	TabWidth int
	// MaxDepth bounds block nesting. Zero means unbounded.
	MaxDepth int
}

// Parse reads the whole input and returns its top-level records in
// document order. The source label names the input in problems and
// errors.
func (r *Reader) Parse(src io.Reader, source string) (*Result, error) {
	buffered := &recordList{}
	res, err := r.ParseInto(buffered, src, source)
	if err != nil {
		return nil, err
	}
	res.Records = buffered.recs
	if res.Records == nil {
		res.Records = []identity.Record{}
	}
	return res, nil
}

// ParseInto parses like Parse but hands each finished top-level
// record to sink as it completes instead of accumulating them on the
// Result.
func (r *Reader) ParseInto(sink Sink, src io.Reader, source string) (*Result, error) {
	data, err := io.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", source, err)
	}

	registry := r.Registry
	if registry == nil {
		registry = DefaultRegistry()
	}
	p := &parser{
		lines:    newLineReader(string(data), r.TabWidth),
		registry: registry,
		source:   source,
		maxDepth: r.MaxDepth,
	}

	// Every top-level logical line starts a block.
	for {
		starter, ok := p.lines.peek()
		if !ok {
			break
		}
		p.lines.advance()
		rec, err := p.parseBlock(starter)
		if err != nil {
			return nil, err
		}
		if rec != nil {
			sink.Add(rec)
		}
	}
	problems := p.problems
	if problems == nil {
		problems = []Problem{}
	}
	return &Result{Problems: problems, References: p.refs}, nil
}

// ParseFile opens path and parses it, closing the file on all return
// paths. The path doubles as the source label.
func (r *Reader) ParseFile(path string) (*Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open archive: %w", err)
	}
	defer f.Close()
	return r.Parse(f, path)
}

// recordList is the buffering sink behind Parse.
type recordList struct {
	recs []identity.Record
}

func (l *recordList) Add(rec identity.Record) { l.recs = append(l.recs, rec) }
