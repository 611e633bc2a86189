package lexer

import "strings"

// Line is the classification of one source line produced by a Scanner.
// Code carries the line with comments removed and literal interiors
// blanked, suitable for marker and keyword matching. Text carries the
// line with non-documentation comments removed but literals intact,
// suitable for reassembling normalized source. Opens and Closes count
// only braces that sit outside comments and literals.
type Line struct {
	Raw    string
	Code   string
	Text   string
	Opens  int
	Closes int
	Doc    bool
}

// Scanner classifies source lines one at a time, carrying block comment
// and string literal state across calls. Lines must be fed in source
// order.
type Scanner struct {
	blockDepth int
	inString   bool
}

func NewScanner() *Scanner {
	return &Scanner{}
}

func (s *Scanner) Reset() {
	s.blockDepth = 0
	s.inString = false
}

func (s *Scanner) Scan(raw string) Line {
	var code, text strings.Builder
	line := Line{Raw: raw}

	i := 0
	n := len(raw)
	for i < n {
		c := raw[i]

		if s.blockDepth > 0 {
			if c == '*' && i+1 < n && raw[i+1] == '/' {
				s.blockDepth--
				i += 2
				if s.blockDepth == 0 {
					text.WriteByte(' ')
					code.WriteByte(' ')
				}
				continue
			}
			if c == '/' && i+1 < n && raw[i+1] == '*' {
				s.blockDepth++
				i += 2
				continue
			}
			i++
			continue
		}

		if s.inString {
			text.WriteByte(c)
			code.WriteByte(' ')
			if c == '\\' && i+1 < n {
				text.WriteByte(raw[i+1])
				code.WriteByte(' ')
				i += 2
				continue
			}
			if c == '"' {
				s.inString = false
			}
			i++
			continue
		}

		switch c {
		case '"':
			s.inString = true
			text.WriteByte(c)
			code.WriteByte(' ')
			i++
		case '\'':
			// 'x' and escaped forms are char literals, a lone quote
			// introduces a lifetime and stays code.
			if end, ok := charLiteralEnd(raw, i); ok {
				text.WriteString(raw[i:end])
				code.WriteString(strings.Repeat(" ", end-i))
				i = end
			} else {
				text.WriteByte(c)
				code.WriteByte(c)
				i++
			}
		case '/':
			if i+1 < n && raw[i+1] == '/' {
				doc := i+2 < n && raw[i+2] == '/'
				if doc {
					text.WriteString(raw[i:])
				}
				line.Code = code.String()
				line.Text = text.String()
				line.Doc = doc && strings.TrimSpace(line.Code) == ""
				return line
			}
			if i+1 < n && raw[i+1] == '*' {
				s.blockDepth++
				i += 2
				continue
			}
			text.WriteByte(c)
			code.WriteByte(c)
			i++
		case '{':
			line.Opens++
			text.WriteByte(c)
			code.WriteByte(c)
			i++
		case '}':
			line.Closes++
			text.WriteByte(c)
			code.WriteByte(c)
			i++
		default:
			text.WriteByte(c)
			code.WriteByte(c)
			i++
		}
	}

	line.Code = code.String()
	line.Text = text.String()
	return line
}

// charLiteralEnd returns the index one past a char literal opening at i,
// or false when the quote starts a lifetime instead.
func charLiteralEnd(s string, i int) (int, bool) {
	if i+1 >= len(s) {
		return 0, false
	}

	if s[i+1] == '\\' {
		j := i + 2
		if j+1 < len(s) && s[j] == 'u' && s[j+1] == '{' {
			for j < len(s) && s[j] != '}' {
				j++
			}
		}
		j++
		if j < len(s) && s[j] == '\'' {
			return j + 1, true
		}
		return 0, false
	}

	if i+2 < len(s) && s[i+2] == '\'' {
		return i + 3, true
	}

	return 0, false
}
