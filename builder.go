package toml

// builder drives the Scanner across top-level constructs (comments, blank
// lines, table headers, array-table headers, key-value lines), threading
// the "active table" pointer the way the teacher's parser.go threads
// tableTarget, and applies Limits that attachChild itself cannot see.
type builder struct {
	root   *Key
	active *Key
	lim    Limits
}

func newBuilder(lim Limits) *builder {
	root := NewRoot()
	return &builder{root: root, active: root, lim: lim}
}

// build consumes the whole input and returns the populated document root.
func (b *builder) build(s *Scanner) (*Key, error) {
	for {
		skipLineTrivia(s)
		if !s.HasMore() {
			break
		}
		if s.Current() == '[' {
			if err := b.parseHeaderLine(s); err != nil {
				return nil, err
			}
			continue
		}
		if err := b.parseKeyValueLine(s); err != nil {
			return nil, err
		}
	}
	return b.root, nil
}

// skipLineTrivia advances past whitespace, blank lines, and comments that
// occupy an entire line on their own.
func skipLineTrivia(s *Scanner) {
	for s.HasMore() {
		c := s.Current()
		if isWhitespace(c) || isNewline(c) {
			s.Advance()
			continue
		}
		if isCommentStart(c) {
			for s.HasMore() && !isNewline(s.Current()) {
				s.Advance()
			}
			continue
		}
		break
	}
}

func (b *builder) parseHeaderLine(s *Scanner) error {
	s.Advance() // consume '['
	segs, isArrayTable, err := parseTableHeader(s, b.lim)
	if err != nil {
		return err
	}
	if len(segs) == 0 {
		return newParseErr(ErrDecode, s.Line(), s.Column(), s.source, "empty table header")
	}

	cur := b.root
	for i, seg := range segs {
		last := i == len(segs)-1
		kind := TableBranch
		switch {
		case last && isArrayTable:
			kind = ArrayTable
		case last:
			kind = TableLeaf
		}
		next, err := attachChild(cur, seg, kind, s.Line(), s.Column(), s.source)
		if err != nil {
			return err
		}
		if len(cur.Children) > b.lim.MaxSubkeys {
			return newParseErr(ErrBufferOverflow, s.Line(), s.Column(), s.source, "table %q exceeds maximum subkeys", joinSegs(segs))
		}
		if kind == ArrayTable && len(next.Parent.Value.Array) > b.lim.MaxArrayLength {
			return newParseErr(ErrBufferOverflow, s.Line(), s.Column(), s.source, "array of tables %q exceeds maximum length", joinSegs(segs))
		}
		cur = next
	}
	b.active = cur

	return skipTrailingLineTrivia(s)
}

func (b *builder) parseKeyValueLine(s *Scanner) error {
	segs, err := parseKeyPath(s, b.lim)
	if err != nil {
		return err
	}
	skipInlineWhitespace(s)
	if s.Current() != '=' {
		return newParseErr(ErrMissingSeparator, s.Line(), s.Column(), s.source, "expected '=' after key")
	}
	s.Advance()
	skipInlineWhitespace(s)

	v, err := parseValue(s, b.lim)
	if err != nil {
		return err
	}
	if err := attachValuePath(b.active, segs, v, b.lim, s.Line(), s.Column(), s.source); err != nil {
		return err
	}

	return skipTrailingLineTrivia(s)
}

// skipTrailingLineTrivia consumes optional whitespace, an optional comment,
// and the terminating newline (or EOF) after a header or key-value line.
func skipTrailingLineTrivia(s *Scanner) error {
	skipInlineWhitespace(s)
	if isCommentStart(s.Current()) {
		for s.HasMore() && !isNewline(s.Current()) {
			s.Advance()
		}
	}
	if !s.HasMore() {
		return nil
	}
	if !isNewline(s.Current()) {
		return newParseErr(ErrDecode, s.Line(), s.Column(), s.source, "unexpected trailing content")
	}
	if s.Current() == '\r' {
		s.Advance()
	}
	if s.Current() == '\n' {
		s.Advance()
	}
	return nil
}
