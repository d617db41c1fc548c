package docsource

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"

	"github.com/goliatone/go-docs/document"
	"github.com/goliatone/go-docs/internal/frontmatter"
	"github.com/goliatone/go-docs/internal/logging"
	"github.com/goliatone/go-docs/navigation"
	"github.com/goliatone/go-docs/pkg/interfaces"
)

// Config controls how documents are discovered and resolved.
type Config struct {
	// Dir is the content root on the host filesystem. Used by Open; recorded
	// for error reporting either way.
	Dir string
	// Extensions lists recognized markdown suffixes. Defaults to [".md"].
	Extensions []string
	// Logger receives discovery diagnostics. Defaults to a no-op logger.
	Logger interfaces.Logger
}

// Source reads markdown documents out of a single content directory. It is
// the filesystem half of the navigation build: enumeration order is the
// lexical per-directory order fs.WalkDir guarantees, so repeated runs over an
// unchanged tree produce identical listings on every platform.
type Source struct {
	fsys   fs.FS
	dir    string
	exts   []string
	logger interfaces.Logger
}

var (
	_ navigation.Source = (*Source)(nil)
	_ document.Service  = (*Source)(nil)
)

// New constructs a Source over the provided filesystem. Callers that want a
// host directory should use Open instead.
func New(fsys fs.FS, cfg Config) *Source {
	exts := cfg.Extensions
	if len(exts) == 0 {
		exts = []string{".md"}
	}
	logger := cfg.Logger
	if logger == nil {
		logger = logging.NoOp()
	}
	return &Source{
		fsys:   fsys,
		dir:    cfg.Dir,
		exts:   append([]string(nil), exts...),
		logger: logger,
	}
}

// Open stats the configured directory and returns a Source rooted there. A
// missing or unreadable directory is an error, not an empty source.
func Open(cfg Config) (*Source, error) {
	dir := strings.TrimSpace(cfg.Dir)
	if dir == "" {
		return nil, navigation.ErrContentDirRequired
	}
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return nil, &navigation.ContentDirNotFoundError{Dir: dir}
	}
	cfg.Dir = dir
	return New(os.DirFS(dir), cfg), nil
}

// List returns the slash-separated relative path of every markdown file under
// the source root, in deterministic walk order.
func (s *Source) List(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var paths []string
	err := fs.WalkDir(s.fsys, ".", func(p string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			if p == "." && errors.Is(walkErr, fs.ErrNotExist) {
				return &navigation.ContentDirNotFoundError{Dir: s.dir}
			}
			return walkErr
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if !s.isMarkdown(p) {
			return nil
		}
		paths = append(paths, p)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Debug("docsource.list", "dir", s.dir, "files", len(paths))
	return paths, nil
}

// Load reads and parses the markdown file at the relative path. Parse
// failures carry the offending path; the caller decides whether the whole
// build fails (it should).
func (s *Source) Load(ctx context.Context, rel string) (document.Document, error) {
	if err := ctx.Err(); err != nil {
		return document.Document{}, err
	}

	data, err := fs.ReadFile(s.fsys, rel)
	if err != nil {
		return document.Document{}, fmt.Errorf("docsource: read %s: %w", rel, err)
	}

	doc, err := frontmatter.Parse(data)
	if err != nil {
		return document.Document{}, &document.ParseError{Path: rel, Err: err}
	}
	return doc, nil
}

// LoadPage resolves an extension-less page path ("guides/install") to its
// markdown file and returns the parsed page. Title falls back to a humanized
// filename stem, description to empty.
func (s *Source) LoadPage(ctx context.Context, pagePath string) (*document.Page, error) {
	rel, err := s.resolve(ctx, pagePath)
	if err != nil {
		return nil, err
	}

	doc, err := s.Load(ctx, rel)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &document.NotFoundError{Path: pagePath}
		}
		return nil, err
	}

	title, ok := doc.Metadata.Text("title")
	if !ok || strings.TrimSpace(title) == "" {
		title = document.TitleFromPath(rel)
	}
	description, _ := doc.Metadata.Text("description")

	return &document.Page{
		Path:        strings.TrimSuffix(rel, path.Ext(rel)),
		Title:       title,
		Description: description,
		Body:        string(doc.Body),
		Metadata:    doc.Metadata,
	}, nil
}

// LoadRaw returns the page's file bytes verbatim, frontmatter included.
func (s *Source) LoadRaw(ctx context.Context, pagePath string) ([]byte, error) {
	rel, err := s.resolve(ctx, pagePath)
	if err != nil {
		return nil, err
	}

	data, err := fs.ReadFile(s.fsys, rel)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &document.NotFoundError{Path: pagePath}
		}
		return nil, fmt.Errorf("docsource: read %s: %w", rel, err)
	}
	return data, nil
}

// resolve maps an extension-less page path onto the markdown file backing it.
// The stem is tried literally against every configured extension first; when
// no file matches, the walk is consulted for a file whose slug-normalized
// stem equals the request, so the hrefs a navigation build emits resolve even
// when normalization rewrote a filename.
func (s *Source) resolve(ctx context.Context, pagePath string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	stem := path.Clean(strings.Trim(strings.TrimSpace(pagePath), "/"))
	if stem == "" || stem == "." || !fs.ValidPath(stem) {
		return "", &document.NotFoundError{Path: pagePath}
	}

	for _, ext := range s.exts {
		rel := stem + ext
		if !fs.ValidPath(rel) {
			continue
		}
		if _, err := fs.Stat(s.fsys, rel); err == nil {
			return rel, nil
		}
	}

	paths, err := s.List(ctx)
	if err != nil {
		return "", err
	}
	for _, rel := range paths {
		if navigation.SlugPath(strings.TrimSuffix(rel, path.Ext(rel))) == stem {
			return rel, nil
		}
	}
	return "", &document.NotFoundError{Path: pagePath}
}

func (s *Source) isMarkdown(p string) bool {
	ext := path.Ext(p)
	for _, candidate := range s.exts {
		if strings.EqualFold(ext, candidate) {
			return true
		}
	}
	return false
}
