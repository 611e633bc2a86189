package signature

import (
	"regexp"
	"strings"

	"traitscope/core/logger"
	"traitscope/core/models"
)

var (
	// headPattern locates the start of a method declaration: optional
	// modifier keywords, the fn keyword, the method name, and the
	// opening parenthesis of the parameter list.
	headPattern     = regexp.MustCompile(`\b(?:(?:pub|async)\s+)*fn\s+([A-Za-z_][A-Za-z0-9_]*)\s*\(`)
	modifierPattern = regexp.MustCompile(`\b(?:async|pub)\b`)
	spacePattern    = regexp.MustCompile(`\s+`)
)

// Normalize produces the comparison form of a signature: modifier
// keywords that do not change the calling contract drop out as whole
// tokens, every whitespace run collapses to a single space, and the
// result is trimmed. A parameter list wrapped across lines also sheds
// the spacing and trailing comma the wrapping introduced, so the same
// declaration formatted two ways compares equal. Parameter names,
// types, and order all survive.
func Normalize(raw string) string {
	s := modifierPattern.ReplaceAllString(raw, "")
	s = spacePattern.ReplaceAllString(s, " ")
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, "( ", "(")
	s = strings.ReplaceAll(s, " )", ")")
	s = strings.ReplaceAll(s, " ,", ",")
	s = strings.ReplaceAll(s, ",)", ")")
	s = strings.ReplaceAll(s, " ;", ";")
	return s
}

// Table scans a comment-normalized trait block and returns its method
// signature table. The body is the text strictly between the block's
// first opening brace and last closing brace. A declaration ends at the
// first semicolon outside parentheses and brackets; a declaration that
// opens a default body instead, or never reaches a semicolon, is skipped.
// A duplicated method name keeps its first position in the table but the
// later signature wins.
func Table(lines []string, source string) *models.SignatureTable {
	table := models.NewSignatureTable()

	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "///") {
			continue
		}
		kept = append(kept, line)
	}
	text := strings.Join(kept, "\n")

	first := strings.Index(text, "{")
	last := strings.LastIndex(text, "}")
	if first < 0 || last <= first {
		return table
	}
	body := text[first+1 : last]

	pos := 0
	for pos < len(body) {
		loc := headPattern.FindStringSubmatchIndex(body[pos:])
		if loc == nil {
			break
		}
		start := pos + loc[0]
		name := body[pos+loc[2] : pos+loc[3]]

		end, next, ok := signatureEnd(body, pos+loc[1])
		if !ok {
			logger.Warn("Skipping method %s in %s: declaration does not end at a semicolon", name, source)
			pos = next
			continue
		}

		raw := body[start:end]
		table.Put(models.MethodSignature{Name: name, Raw: raw, Normalized: Normalize(raw)})
		pos = end
	}

	logger.Debug("Extracted %d method signatures from %s", table.Len(), source)
	return table
}

// signatureEnd walks from the character after the parameter list's
// opening parenthesis to the terminating semicolon. Semicolons inside
// parentheses or brackets (array types, nested tuples) do not terminate.
// A brace at top level means the method carries a default body; the walk
// skips past the balanced body and reports no match.
func signatureEnd(body string, from int) (end, next int, ok bool) {
	parens := 1
	brackets := 0

	for i := from; i < len(body); i++ {
		switch body[i] {
		case '(':
			parens++
		case ')':
			parens--
		case '[':
			brackets++
		case ']':
			brackets--
		case ';':
			if parens == 0 && brackets == 0 {
				return i + 1, i + 1, true
			}
		case '{':
			if parens == 0 && brackets == 0 {
				return 0, skipBody(body, i), false
			}
		}
	}

	return 0, len(body), false
}

func skipBody(body string, i int) int {
	depth := 0
	for ; i < len(body); i++ {
		switch body[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i + 1
			}
		}
	}
	return len(body)
}
