package document

import "context"

// Service exposes per-page document loads for the route layer. Paths are
// extension-less, slash-separated, and relative to the configured content
// directory ("guides/install" resolves "guides/install.md").
type Service interface {
	// LoadPage reads and parses a single page, deriving Title and
	// Description from its frontmatter.
	LoadPage(ctx context.Context, path string) (*Page, error)
	// LoadRaw returns the page's file content verbatim, frontmatter included.
	LoadRaw(ctx context.Context, path string) ([]byte, error)
}
