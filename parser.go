package toml

import "io"

// Document is the root of a parsed TOML document tree.
type Document struct {
	Root *Key
}

// Parse parses TOML source held entirely in memory. The returned Document
// is independent of data; no reference to the input buffer is retained
// beyond what string values copy into Go strings.
func Parse(data []byte, opts ...ParseOption) (*Document, error) {
	return parseNamed(data, "", opts)
}

// ParseString parses TOML held in a Go string.
func ParseString(s string, opts ...ParseOption) (*Document, error) {
	return parseNamed([]byte(s), "", opts)
}

// ParseReader reads r fully (bounded by Limits.MaxFileSize) and parses it.
func ParseReader(r io.Reader, opts ...ParseOption) (*Document, error) {
	lim := resolveLimits(opts)
	buf, err := readBounded(r, lim.MaxFileSize)
	if err != nil {
		return nil, err
	}
	return parseNamed(buf, "", opts)
}

// ParseFile reads and parses the file at path.
func ParseFile(path string, opts ...ParseOption) (*Document, error) {
	lim := resolveLimits(opts)
	buf, err := readFileBounded(path, lim.MaxFileSize)
	if err != nil {
		return nil, err
	}
	return parseNamed(buf, path, opts)
}

func parseNamed(data []byte, source string, opts []ParseOption) (*Document, error) {
	lim := resolveLimits(opts)
	if len(data) > lim.MaxFileSize {
		return nil, newParseErr(ErrBufferOverflow, 0, 0, source, "input exceeds maximum file size of %d bytes", lim.MaxFileSize)
	}
	s := NewScanner(data, source)
	b := newBuilder(lim)
	root, err := b.build(s)
	if err != nil {
		return nil, err
	}
	return &Document{Root: root}, nil
}

// Get resolves a dotted path of bare-key segments against the document's
// root table.
func (d *Document) Get(path string) (*Key, bool) {
	return d.Root.Lookup(path)
}
