package toml

import (
	"math"
	"strconv"
)

// Number scanning and classification, grounded on the teacher's
// classifyNumber/looksLikeNumber (lexer.go) and the underscore/leading-zero
// shape checks in validate.go's validateNumberText, restated as a
// scan-then-strconv pipeline instead of a pure regex cascade.

// scanNumberToken consumes the raw text of a number literal (decimal, or a
// 0x/0o/0b prefixed integer), stopping before whitespace, a comma, a
// closing bracket/brace, a comment, or a newline. It does not validate
// shape; parseNumberValue does.
func scanNumberToken(s *Scanner) string {
	start := s.pos
	if s.Current() == '+' || s.Current() == '-' {
		s.Advance()
	}
	if s.Current() == 'i' || s.Current() == 'n' {
		// Signed special float: +inf, -inf, +nan, -nan.
		for s.HasMore() && s.Current() >= 'a' && s.Current() <= 'z' {
			s.Advance()
		}
		return string(s.buf[start:s.pos])
	}
	for s.HasMore() {
		c := s.Current()
		if isDigit(c) || c == '_' || c == '.' || c == 'e' || c == 'E' ||
			c == '+' || c == '-' || c == 'x' || c == 'o' || c == 'b' ||
			isHexDigit(c) {
			s.Advance()
			continue
		}
		break
	}
	return string(s.buf[start:s.pos])
}

// parseNumberValue classifies and decodes tok into a *Value of kind
// KindInteger or KindFloat.
func parseNumberValue(tok string, line, col int, source string) (*Value, error) {
	if tok == "inf" || tok == "+inf" {
		return &Value{Kind: KindFloat, Float: math.Inf(1)}, nil
	}
	if tok == "-inf" {
		return &Value{Kind: KindFloat, Float: math.Inf(-1)}, nil
	}
	if tok == "nan" || tok == "+nan" || tok == "-nan" {
		return &Value{Kind: KindFloat, Float: math.NaN()}, nil
	}

	if len(tok) > 2 && tok[0] == '0' {
		switch tok[1] {
		case 'x':
			return parseRadixInt(tok, 16, line, col, source)
		case 'o':
			return parseRadixInt(tok, 8, line, col, source)
		case 'b':
			return parseRadixInt(tok, 2, line, col, source)
		}
	}

	isFloat, scientific := numberShapeIsFloat(tok)
	for i := 1; i+1 < len(tok); i++ {
		if tok[i] == '_' && (!isDigit(tok[i-1]) || !isDigit(tok[i+1])) {
			return nil, newParseErr(ErrDecode, line, col, source, "misplaced underscore in number %q", tok)
		}
	}
	clean, err := stripNumericUnderscores(tok, line, col, source)
	if err != nil {
		return nil, err
	}

	if err := validateLeadingZero(tok, line, col, source); err != nil {
		return nil, err
	}

	if isFloat {
		f, err := strconv.ParseFloat(clean, 64)
		if err != nil {
			return nil, newParseErr(ErrDecode, line, col, source, "invalid float literal %q", tok)
		}
		return &Value{Kind: KindFloat, Float: f, Precision: countMantissaDigits(clean), Scientific: scientific}, nil
	}

	i, err := strconv.ParseInt(clean, 10, 64)
	if err != nil {
		return nil, newParseErr(ErrDecode, line, col, source, "invalid integer literal %q", tok)
	}
	return &Value{Kind: KindInteger, Integer: i}, nil
}

func parseRadixInt(tok string, base int, line, col int, source string) (*Value, error) {
	digits := tok[2:]
	clean, err := stripNumericUnderscores(digits, line, col, source)
	if err != nil {
		return nil, err
	}
	if clean == "" {
		return nil, newParseErr(ErrDecode, line, col, source, "empty digits in %q", tok)
	}
	u, err := strconv.ParseUint(clean, base, 64)
	if err != nil {
		return nil, newParseErr(ErrDecode, line, col, source, "invalid base-%d integer %q", base, tok)
	}
	return &Value{Kind: KindInteger, Integer: int64(u)}, nil
}

func numberShapeIsFloat(tok string) (isFloat bool, scientific bool) {
	for i := 0; i < len(tok); i++ {
		switch tok[i] {
		case '.':
			isFloat = true
		case 'e', 'E':
			isFloat = true
			scientific = true
		}
	}
	return
}

// stripNumericUnderscores removes grouping underscores, rejecting leading,
// trailing, or doubled underscores and underscores adjacent to a byte that
// is not a hex digit. Decimal literals are checked against decimal digits
// by parseNumberValue before this runs.
func stripNumericUnderscores(tok string, line, col int, source string) (string, error) {
	if tok == "" {
		return tok, nil
	}
	out := make([]byte, 0, len(tok))
	for i := 0; i < len(tok); i++ {
		c := tok[i]
		if c == '_' {
			if i == 0 || i == len(tok)-1 || !isDigitOrHex(tok[i-1]) || !isDigitOrHex(tok[i+1]) {
				return "", newParseErr(ErrDecode, line, col, source, "misplaced underscore in number %q", tok)
			}
			continue
		}
		out = append(out, c)
	}
	return string(out), nil
}

func isDigitOrHex(b byte) bool { return isHexDigit(b) }

// validateLeadingZero rejects decimal literals like "007" or "01.5" while
// allowing a bare "0" and fractional forms such as "0.5".
func validateLeadingZero(tok string, line, col int, source string) error {
	i := 0
	if i < len(tok) && (tok[i] == '+' || tok[i] == '-') {
		i++
	}
	if i+1 < len(tok) && tok[i] == '0' && isDigit(tok[i+1]) {
		return newParseErr(ErrDecode, line, col, source, "leading zero in number %q", tok)
	}
	return nil
}

func countMantissaDigits(s string) int {
	n := 0
	for i := 0; i < len(s); i++ {
		if isDigit(s[i]) {
			n++
		}
		if s[i] == 'e' || s[i] == 'E' {
			break
		}
	}
	return n
}
