package toml

import "strings"

// String parsing for the four TOML string forms, grounded on the teacher's
// unquoteBasicStr/parserProcessBasicEscapes (parser.go) and the stricter
// escape-validation tables in validate.go (validateBasicEscape,
// validateUnicodeEscape), folded into a single scan-and-decode pass since
// this package does not need to preserve the original token text.

// parseBasicString consumes a `"..."` or `"""..."""` string starting with
// the Scanner positioned on the opening quote, decodes escapes, and returns
// the Go string value.
func parseBasicString(s *Scanner, lim Limits) (string, error) {
	multi := isTripleQuote(s, '"')
	if multi {
		s.Advance()
		s.Advance()
		s.Advance()
		// A newline immediately after the opening delimiter is trimmed.
		if s.Current() == '\n' {
			s.Advance()
		} else if s.Current() == '\r' {
			s.Advance()
			if s.Current() == '\n' {
				s.Advance()
			}
		}
	} else {
		s.Advance()
	}

	var out strings.Builder
	for {
		if !s.HasMore() {
			return "", newParseErr(ErrDecode, s.Line(), s.Column(), s.source, "unterminated string")
		}
		c := s.Current()
		if c == '"' {
			if multi {
				run := 0
				for peekAt(s, run) == '"' {
					run++
				}
				if run >= 3 {
					// The final three quotes of the run close the string; any
					// quotes before that are literal content (TOML allows up
					// to two before the closing delimiter).
					for i := 0; i < run-3; i++ {
						out.WriteByte('"')
						s.Advance()
					}
					s.Advance()
					s.Advance()
					s.Advance()
					break
				}
				for i := 0; i < run; i++ {
					out.WriteByte('"')
					s.Advance()
				}
				continue
			}
			s.Advance()
			break
		}
		if isControlByte(c) && c != '\n' {
			return "", newParseErr(ErrDecode, s.Line(), s.Column(), s.source, "control character in string")
		}
		if c == '\n' && !multi {
			return "", newParseErr(ErrDecode, s.Line(), s.Column(), s.source, "newline in single-line string")
		}
		if c == '\\' {
			s.Advance()
			if multi && isLineEndingBackslash(s) {
				// Line-ending backslash: consume whitespace/newlines up to the
				// next non-whitespace, producing no output.
				for s.HasMore() && (isWhitespace(s.Current()) || isNewline(s.Current())) {
					s.Advance()
				}
				continue
			}
			r, err := decodeEscape(s)
			if err != nil {
				return "", err
			}
			out.WriteRune(r)
			continue
		}
		out.WriteByte(c)
		if out.Len() > lim.MaxStringLen {
			return "", newParseErr(ErrBufferOverflow, s.Line(), s.Column(), s.source, "string exceeds maximum length")
		}
		s.Advance()
	}
	return out.String(), nil
}

// parseLiteralString consumes a `'...'` or `'''...'''` string. No escape
// processing occurs; the content is copied verbatim.
func parseLiteralString(s *Scanner, lim Limits) (string, error) {
	multi := isTripleQuote(s, '\'')
	if multi {
		s.Advance()
		s.Advance()
		s.Advance()
		if s.Current() == '\n' {
			s.Advance()
		} else if s.Current() == '\r' {
			s.Advance()
			if s.Current() == '\n' {
				s.Advance()
			}
		}
	} else {
		s.Advance()
	}

	var out strings.Builder
	for {
		if !s.HasMore() {
			return "", newParseErr(ErrDecode, s.Line(), s.Column(), s.source, "unterminated string")
		}
		c := s.Current()
		if c == '\'' {
			if multi {
				run := 0
				for peekAt(s, run) == '\'' {
					run++
				}
				if run >= 3 {
					for i := 0; i < run-3; i++ {
						out.WriteByte('\'')
						s.Advance()
					}
					s.Advance()
					s.Advance()
					s.Advance()
					break
				}
				for i := 0; i < run; i++ {
					out.WriteByte('\'')
					s.Advance()
				}
				continue
			}
			s.Advance()
			break
		}
		if isControlByte(c) && c != '\n' {
			return "", newParseErr(ErrDecode, s.Line(), s.Column(), s.source, "control character in string")
		}
		if c == '\n' && !multi {
			return "", newParseErr(ErrDecode, s.Line(), s.Column(), s.source, "newline in single-line string")
		}
		out.WriteByte(c)
		if out.Len() > lim.MaxStringLen {
			return "", newParseErr(ErrBufferOverflow, s.Line(), s.Column(), s.source, "string exceeds maximum length")
		}
		s.Advance()
	}
	return out.String(), nil
}

// isTripleQuote checks (without consuming) whether the scanner sits on three
// consecutive occurrences of quote.
func isTripleQuote(s *Scanner, quote byte) bool {
	return s.Current() == quote && peekAt(s, 1) == quote && peekAt(s, 2) == quote
}

// peekAt returns the byte n positions ahead of the cursor without consuming
// anything, reading the buffer directly (Scanner retains the full buffer so
// this never backtracks). n is not bounded; past the end it returns NUL.
func peekAt(s *Scanner, n int) byte {
	idx := s.pos + n
	if idx >= len(s.buf) {
		return 0
	}
	return s.buf[idx]
}

func isLineEndingBackslash(s *Scanner) bool {
	if s.Current() == '\n' || s.Current() == '\r' {
		return true
	}
	if isWhitespace(s.Current()) {
		i := s.pos
		for i < len(s.buf) && (s.buf[i] == ' ' || s.buf[i] == '\t') {
			i++
		}
		return i < len(s.buf) && (s.buf[i] == '\n' || s.buf[i] == '\r')
	}
	return false
}

func decodeEscape(s *Scanner) (rune, error) {
	c := s.Current()
	switch c {
	case 'b':
		s.Advance()
		return '\b', nil
	case 't':
		s.Advance()
		return '\t', nil
	case 'n':
		s.Advance()
		return '\n', nil
	case 'f':
		s.Advance()
		return '\f', nil
	case 'r':
		s.Advance()
		return '\r', nil
	case '"':
		s.Advance()
		return '"', nil
	case '\\':
		s.Advance()
		return '\\', nil
	case 'u':
		s.Advance()
		return decodeHexEscape(s, 4)
	case 'U':
		s.Advance()
		return decodeHexEscape(s, 8)
	}
	return 0, newParseErr(ErrDecode, s.Line(), s.Column(), s.source, "invalid escape sequence \\%c", c)
}

func decodeHexEscape(s *Scanner, n int) (rune, error) {
	var v rune
	for i := 0; i < n; i++ {
		c := s.Current()
		if !isHexDigit(c) {
			return 0, newParseErr(ErrDecode, s.Line(), s.Column(), s.source, "invalid unicode escape")
		}
		v = v<<4 | rune(hexVal(c))
		s.Advance()
	}
	if v > 0x10FFFF || (v >= 0xD800 && v <= 0xDFFF) {
		return 0, newParseErr(ErrDecode, s.Line(), s.Column(), s.source, "escape sequence outside valid unicode scalar range")
	}
	return v, nil
}

func hexVal(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10
	default:
		return int(c-'A') + 10
	}
}
