package navigation

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrContentDirRequired = errors.New("navigation: content directory is required")
	ErrContentDirNotFound = errors.New("navigation: content directory not found")
	ErrDuplicatePath      = errors.New("navigation: duplicate navigation path")
)

// ContentDirNotFoundError reports a build against a missing or unreadable
// content directory.
type ContentDirNotFoundError struct {
	Dir string
}

func (e *ContentDirNotFoundError) Error() string {
	if e == nil || strings.TrimSpace(e.Dir) == "" {
		return ErrContentDirNotFound.Error()
	}
	return fmt.Sprintf("%s: %s", ErrContentDirNotFound.Error(), e.Dir)
}

func (e *ContentDirNotFoundError) Unwrap() error {
	return ErrContentDirNotFound
}

// DuplicatePathError reports two source files collapsing onto the same
// navigation href. The tree invariant is that a path appears at most once,
// so the build fails rather than silently shadowing a page.
type DuplicatePathError struct {
	Href     string
	Path     string
	Existing string
}

func (e *DuplicatePathError) Error() string {
	if e == nil {
		return ErrDuplicatePath.Error()
	}
	return fmt.Sprintf("%s: %s (from %s and %s)", ErrDuplicatePath.Error(), e.Href, e.Existing, e.Path)
}

func (e *DuplicatePathError) Unwrap() error {
	return ErrDuplicatePath
}
