package archive

import (
	"regexp"
	"strconv"
	"strings"
)

// line is one logical line: comments and blanks dropped,
// continuations joined, tabstop directives already consumed.
type line struct {
	text   string // assembled text, leading whitespace included
	indent int    // tab-expanded column of the first non-whitespace character
	num    int    // 1-based number of the first physical line
}

var tabstopRe = regexp.MustCompile(`^\s*tabstop\s*=\s*(\d+)\s*$`)

// lineReader assembles logical lines from physical lines and exposes
// a one-line lookahead over the stream.
type lineReader struct {
	raw   []string
	pos   int // index of the next unread physical line
	width int // current tab stop width
	ahead *line
}

func newLineReader(text string, tabWidth int) *lineReader {
	if tabWidth < 1 {
		tabWidth = DefaultTabWidth
	}
	raw := strings.Split(text, "\n")
	for i, l := range raw {
		raw[i] = strings.TrimSuffix(l, "\r")
	}
	return &lineReader{raw: raw, width: tabWidth}
}

// peek returns the current logical line without consuming it.
func (r *lineReader) peek() (*line, bool) {
	if r.ahead == nil {
		r.ahead = r.next()
	}
	return r.ahead, r.ahead != nil
}

// advance consumes the line peek returned.
func (r *lineReader) advance() {
	if r.ahead == nil {
		r.ahead = r.next()
	}
	r.ahead = nil
}

// next assembles the next logical line, or nil at end of input.
// Blank and comment checks apply to the physical line that starts a
// logical line; continuation lines are joined verbatim after that.
func (r *lineReader) next() *line {
	for r.pos < len(r.raw) {
		text := r.raw[r.pos]
		num := r.pos + 1
		r.pos++

		trimmed := strings.TrimSpace(text)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		// A trailing backslash is removed and the next physical line
		// is appended as-is, leading whitespace and all.
		for strings.HasSuffix(text, `\`) {
			text = text[:len(text)-1]
			if r.pos >= len(r.raw) {
				break
			}
			text += r.raw[r.pos]
			r.pos++
		}

		// The directive is recognized after joining and never
		// reaches the parser. Widths below 1 leave the width alone.
		if m := tabstopRe.FindStringSubmatch(text); m != nil {
			if w, err := strconv.Atoi(m[1]); err == nil && w >= 1 {
				r.width = w
			}
			continue
		}

		ws, _ := splitIndent(text)
		return &line{text: text, indent: indentColumn(ws, r.width), num: num}
	}
	return nil
}
