package archive

// DefaultTabWidth applies until a tabstop directive changes it.
const DefaultTabWidth = 8

// splitIndent separates a line into its leading whitespace run and
// the rest.
func splitIndent(line string) (ws, rest string) {
	for i := 0; i < len(line); i++ {
		if line[i] != ' ' && line[i] != '\t' {
			return line[:i], line[i:]
		}
	}
	return line, ""
}

// indentColumn computes the display column of the first character
// after the leading whitespace run. A space advances one column; a
// tab advances to the next multiple of the tab width.
func indentColumn(ws string, tabWidth int) int {
	col := 0
	for i := 0; i < len(ws); i++ {
		if ws[i] == '\t' {
			col = col/tabWidth*tabWidth + tabWidth
		} else {
			col++
		}
	}
	return col
}
