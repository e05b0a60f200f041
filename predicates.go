package toml

// Lexical predicates, grounded on the classification helpers in the
// teacher's lexer.go (isSpecialFloat, looksLikeNumber et al.) but
// restated as pure byte predicates the scanner-driven parsers can share.

func isWhitespace(b byte) bool { return b == ' ' || b == '\t' }

func isNewline(b byte) bool { return b == '\n' || b == '\r' }

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func isHexDigit(b byte) bool {
	return isDigit(b) || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

func isOctalDigit(b byte) bool { return b >= '0' && b <= '7' }

func isBinaryDigit(b byte) bool { return b == '0' || b == '1' }

func isBareKeyByte(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || isDigit(b) || b == '-' || b == '_'
}

func isControlByte(b byte) bool {
	return b < 0x20 && b != '\t' || b == 0x7f
}

func isBasicStringDelim(b byte) bool { return b == '"' }

func isLiteralStringDelim(b byte) bool { return b == '\'' }

func isCommentStart(b byte) bool { return b == '#' }

func isKeySep(b byte) bool { return b == '.' }

func isKeyValueSep(b byte) bool { return b == '=' }

func isArrayOpen(b byte) bool { return b == '[' }
func isArrayClose(b byte) bool { return b == ']' }
func isInlineTableOpen(b byte) bool { return b == '{' }
func isInlineTableClose(b byte) bool { return b == '}' }
func isArraySep(b byte) bool { return b == ',' }

// isEscapableBasicChar reports whether b may legally follow a backslash in
// a basic string, per the single-character escape table.
func isEscapableBasicChar(b byte) bool {
	switch b {
	case 'b', 't', 'n', 'f', 'r', '"', '\\', 'u', 'U':
		return true
	}
	return false
}
