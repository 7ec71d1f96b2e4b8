package content

import (
	"bytes"
	"errors"
)

var (
	ErrNoFrontMatter      = errors.New("missing front matter block")
	ErrUnterminatedHeader = errors.New("front matter block is not closed")
)

var (
	fence = []byte("---")
	bom   = []byte("\xef\xbb\xbf")
)

// SplitFrontMatter separates a leading "---" fenced YAML block from the
// body that follows it.
func SplitFrontMatter(data []byte) (front, body []byte, err error) {
	data = bytes.TrimPrefix(data, bom)
	first, rest, found := cutLine(data)
	if !found || !bytes.Equal(bytes.TrimSpace(first), fence) {
		return nil, nil, ErrNoFrontMatter
	}

	start := rest
	for len(rest) > 0 {
		line, next, found := cutLine(rest)
		if bytes.Equal(bytes.TrimSpace(line), fence) {
			return start[:len(start)-len(rest)], next, nil
		}
		if !found {
			break
		}
		rest = next
	}
	return nil, nil, ErrUnterminatedHeader
}

// cutLine returns the first line without its terminator.
func cutLine(b []byte) (line, rest []byte, found bool) {
	line, rest, found = bytes.Cut(b, []byte("\n"))
	return bytes.TrimSuffix(line, []byte("\r")), rest, found
}
