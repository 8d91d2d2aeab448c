package archive

import (
	"strings"
	"testing"
)

func TestIndentColumn_SpacesCountOneEach(t *testing.T) {
	for _, width := range []int{1, 2, 4, 8} {
		for n := 0; n < 12; n++ {
			got := indentColumn(strings.Repeat(" ", n), width)
			if got != n {
				t.Errorf("width %d: expected %d for %d spaces, got %d", width, n, n, got)
			}
		}
	}
}

func TestIndentColumn_TabAdvancesToNextStop(t *testing.T) {
	cases := []struct {
		ws    string
		width int
		want  int
	}{
		{"\t", 8, 8},
		{"\t", 4, 4},
		{"\t\t", 8, 16},
		{"   \t", 8, 8},  // tab after 3 spaces still lands on the first stop
		{"       \t", 8, 8},
		{"        \t", 8, 16},
		{" \t ", 4, 5},
		{"\t  ", 8, 10},
	}
	for _, c := range cases {
		got := indentColumn(c.ws, c.width)
		if got != c.want {
			t.Errorf("indentColumn(%q, %d): expected %d, got %d", c.ws, c.width, c.want, got)
		}
	}
}

func TestSplitIndent(t *testing.T) {
	cases := []struct {
		line     string
		ws, rest string
	}{
		{"", "", ""},
		{"user markov", "", "user markov"},
		{"   country NL", "   ", "country NL"},
		{"\t \taddress x", "\t \t", "address x"},
		{"   ", "   ", ""},
	}
	for _, c := range cases {
		ws, rest := splitIndent(c.line)
		if ws != c.ws || rest != c.rest {
			t.Errorf("splitIndent(%q): expected (%q, %q), got (%q, %q)", c.line, c.ws, c.rest, ws, rest)
		}
	}
}

func TestIndentColumn_EqualPrefixEqualColumn(t *testing.T) {
	// Two lines with the same whitespace prefix must land on the same
	// column no matter what follows.
	a, _ := splitIndent(" \t country NL")
	b, _ := splitIndent(" \t email home")
	if indentColumn(a, 8) != indentColumn(b, 8) {
		t.Errorf("equal prefixes gave different columns: %d vs %d", indentColumn(a, 8), indentColumn(b, 8))
	}
}
