package scanner

// codeStripper blanks out comments and the contents of string and character
// literals of C source lines. Removed characters are replaced by spaces so
// that columns stay valid. Block comments can span multiple lines.
type codeStripper struct {
	inBlockComment bool
}

func (s *codeStripper) strip(line string) string {
	out := []byte(line)

	for i := 0; i < len(out); i++ {
		if s.inBlockComment {
			if out[i] == '*' && i+1 < len(out) && out[i+1] == '/' {
				out[i], out[i+1] = ' ', ' '
				s.inBlockComment = false
				i++
				continue
			}
			out[i] = ' '
			continue
		}

		switch out[i] {
		case '/':
			if i+1 >= len(out) {
				continue
			}
			switch out[i+1] {
			case '/':
				blank(out[i:])
				return string(out)
			case '*':
				out[i], out[i+1] = ' ', ' '
				s.inBlockComment = true
				i++
			}

		case '"', '\'':
			i = blankLiteral(out, i)
		}
	}

	return string(out)
}

// blankLiteral blanks the contents of the literal starting with the quote at
// index start and returns the index of the closing quote. An unterminated
// literal is blanked until the end of the line.
func blankLiteral(out []byte, start int) int {
	quote := out[start]
	for i := start + 1; i < len(out); i++ {
		switch out[i] {
		case '\\':
			out[i] = ' '
			if i+1 < len(out) {
				out[i+1] = ' '
				i++
			}
		case quote:
			return i
		default:
			out[i] = ' '
		}
	}
	return len(out)
}

// stripAsmComment blanks a ';' comment of an assembly line, ignoring
// semicolons inside of string and character literals.
func stripAsmComment(line string) string {
	out := []byte(line)
	for i := 0; i < len(out); i++ {
		switch out[i] {
		case '"', '\'':
			i = blankLiteral(out, i)
		case ';':
			blank(out[i:])
			return string(out)
		}
	}
	return string(out)
}

func blank(b []byte) {
	for i := range b {
		b[i] = ' '
	}
}
