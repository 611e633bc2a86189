package lexer

import "strings"

const docIndent = "    "

// Normalize strips comments from a captured block. Non-documentation
// line comments truncate the line at the comment marker, block comments
// are removed wherever they appear, and each run of consecutive
// documentation comment lines collapses to its first line at a uniform
// indent.
func Normalize(lines []string) []string {
	s := NewScanner()
	out := make([]string, 0, len(lines))
	inDocRun := false

	for _, raw := range lines {
		line := s.Scan(raw)

		if line.Doc {
			if !inDocRun {
				out = append(out, docIndent+strings.TrimSpace(line.Text))
				inDocRun = true
			}
			continue
		}

		inDocRun = false
		out = append(out, strings.TrimRight(line.Text, " \t"))
	}

	return out
}
