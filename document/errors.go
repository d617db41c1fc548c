package document

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnterminatedFrontmatter = errors.New("document: unterminated frontmatter block")
	ErrPageNotFound            = errors.New("document: page not found")
)

// ParseError attaches the offending file path to a frontmatter parse failure
// so build errors point at the broken document.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	if e == nil {
		return ErrUnterminatedFrontmatter.Error()
	}
	path := strings.TrimSpace(e.Path)
	if path == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %s", path, e.Err.Error())
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// NotFoundError reports a page lookup that resolved to no file on disk.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	if e == nil || strings.TrimSpace(e.Path) == "" {
		return ErrPageNotFound.Error()
	}
	return fmt.Sprintf("%s: %s", ErrPageNotFound.Error(), e.Path)
}

func (e *NotFoundError) Unwrap() error {
	return ErrPageNotFound
}
