package toml

import "strings"

// Key-syntax parsing: bare keys, quoted keys, dotted key paths, table
// headers and array-table headers. Grounded on the teacher's
// parseKey/parseSimpleKey (parser.go), generalized from its KeyPart/trivia
// model down to plain []string segments since source formatting is not
// retained.

// skipInlineWhitespace advances past spaces and tabs (not newlines).
func skipInlineWhitespace(s *Scanner) {
	for s.HasMore() && isWhitespace(s.Current()) {
		s.Advance()
	}
}

// parseKeyPath parses a dotted sequence of bare/quoted key segments,
// stopping before '=' (key-value lines) or ']' (table headers).
func parseKeyPath(s *Scanner, lim Limits) ([]string, error) {
	var segs []string
	for {
		skipInlineWhitespace(s)
		seg, err := parseKeySegment(s, lim)
		if err != nil {
			return nil, err
		}
		segs = append(segs, seg)
		skipInlineWhitespace(s)
		if s.Current() == '.' {
			s.Advance()
			continue
		}
		break
	}
	return segs, nil
}

func parseKeySegment(s *Scanner, lim Limits) (string, error) {
	switch {
	case isBasicStringDelim(s.Current()):
		str, err := parseBasicString(s, lim)
		if err != nil {
			return "", err
		}
		return checkIDLength(str, s, lim)
	case isLiteralStringDelim(s.Current()):
		str, err := parseLiteralString(s, lim)
		if err != nil {
			return "", err
		}
		return checkIDLength(str, s, lim)
	default:
		start := s.pos
		for s.HasMore() && isBareKeyByte(s.Current()) {
			s.Advance()
		}
		if s.pos == start {
			return "", newParseErr(ErrDecode, s.Line(), s.Column(), s.source, "expected key")
		}
		return checkIDLength(string(s.buf[start:s.pos]), s, lim)
	}
}

func checkIDLength(id string, s *Scanner, lim Limits) (string, error) {
	if len(id) > lim.MaxIDLength {
		return "", newParseErr(ErrBufferOverflow, s.Line(), s.Column(), s.source, "key %q exceeds maximum length", id)
	}
	return id, nil
}

// parseTableHeader parses the body of a `[a.b.c]` or `[[a.b.c]]` header,
// having already consumed the leading bracket(s). It returns the segment
// path and whether it was an array-of-tables header.
func parseTableHeader(s *Scanner, lim Limits) (segs []string, isArrayTable bool, err error) {
	if s.Current() == '[' {
		isArrayTable = true
		s.Advance()
	}
	segs, err = parseKeyPath(s, lim)
	if err != nil {
		return nil, false, err
	}
	skipInlineWhitespace(s)
	if s.Current() != ']' {
		return nil, false, newParseErr(ErrMissingSeparator, s.Line(), s.Column(), s.source, "expected ']' to close table header")
	}
	s.Advance()
	if isArrayTable {
		if s.Current() != ']' {
			return nil, false, newParseErr(ErrMissingSeparator, s.Line(), s.Column(), s.source, "expected ']]' to close array-table header")
		}
		s.Advance()
	}
	return segs, isArrayTable, nil
}

// joinSegs renders a segment path for diagnostics only.
func joinSegs(segs []string) string {
	return strings.Join(segs, ".")
}
