package toml

import (
	"io"
	"os"
)

// readBounded reads all of r into memory, rejecting input larger than
// maxBytes rather than growing without bound. Grounded on the bounded-read
// discipline spec.md §6.1 calls for (no streaming parser; one full buffer
// per document).
func readBounded(r io.Reader, maxBytes int) ([]byte, error) {
	limited := io.LimitReader(r, int64(maxBytes)+1)
	buf, err := io.ReadAll(limited)
	if err != nil {
		return nil, newParseErr(ErrRead, 0, 0, "", "reading input: %v", err)
	}
	if len(buf) > maxBytes {
		return nil, newParseErr(ErrBufferOverflow, 0, 0, "", "input exceeds maximum file size of %d bytes", maxBytes)
	}
	return buf, nil
}

// readFileBounded opens and reads path under the same size bound.
func readFileBounded(path string, maxBytes int) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, newParseErr(ErrRead, 0, 0, path, "opening file: %v", err)
	}
	defer f.Close()
	return readBounded(f, maxBytes)
}
