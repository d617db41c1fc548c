package frontmatter

import (
	"strconv"
	"strings"

	"github.com/goliatone/go-docs/document"
)

// Marker opens and closes a metadata block: a line containing exactly "---".
const Marker = "---"

// Parse splits raw markdown into frontmatter metadata and the remaining body.
// It is a pure function of its input.
//
// Input without an opening marker (ignoring leading blank lines) is returned
// whole as the body with empty metadata; that is plain markdown, not an
// error. An opening marker with no closing marker before end-of-input is a
// malformed document and fails with document.ErrUnterminatedFrontmatter.
//
// Block lines are "key: value" pairs. Keys are trimmed and case-sensitive;
// a duplicated key keeps the last value written. Values decode by appearance:
// integers when the whole value is digits (optionally sign-prefixed),
// booleans for literal true/false, opaque strings for everything else,
// structured YAML shapes included. Lines without a colon are ignored.
//
// The body is everything after the closing marker line with at most one
// leading blank line stripped.
func Parse(source []byte) (document.Document, error) {
	doc := document.Document{Metadata: document.Metadata{}, Body: source}
	text := string(source)

	pos := 0
	for pos < len(text) {
		line, next := readLine(text, pos)
		if strings.TrimSpace(line) != "" {
			break
		}
		pos = next
	}

	line, next := readLine(text, pos)
	if strings.TrimSpace(line) != Marker {
		return doc, nil
	}

	pos = next
	closed := false
	for pos < len(text) {
		line, next = readLine(text, pos)
		if strings.TrimSpace(line) == Marker {
			closed = true
			pos = next
			break
		}
		if key, value, ok := strings.Cut(line, ":"); ok {
			if key = strings.TrimSpace(key); key != "" {
				doc.Metadata[key] = coerce(strings.TrimSpace(value))
			}
		}
		pos = next
	}
	if !closed {
		return document.Document{}, document.ErrUnterminatedFrontmatter
	}

	body := text[pos:]
	if strings.HasPrefix(body, "\r\n") {
		body = body[2:]
	} else if strings.HasPrefix(body, "\n") {
		body = body[1:]
	}
	doc.Body = []byte(body)
	return doc, nil
}

// readLine returns the line starting at pos without its terminator and the
// offset of the following line.
func readLine(text string, pos int) (string, int) {
	if idx := strings.IndexByte(text[pos:], '\n'); idx >= 0 {
		return strings.TrimSuffix(text[pos:pos+idx], "\r"), pos + idx + 1
	}
	return strings.TrimSuffix(text[pos:], "\r"), len(text)
}

func coerce(value string) any {
	switch value {
	case "true":
		return true
	case "false":
		return false
	}
	if isInteger(value) {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return value
}

func isInteger(value string) bool {
	digits := strings.TrimPrefix(value, "-")
	if digits == "" {
		return false
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return false
		}
	}
	return true
}
