package navigation

import (
	"context"
	"path"
	"sort"
	"strings"

	"github.com/goliatone/go-slug"
	"github.com/google/uuid"

	"github.com/goliatone/go-docs/document"
	"github.com/goliatone/go-docs/internal/logging"
	"github.com/goliatone/go-docs/pkg/interfaces"
)

// DefaultBasePath prefixes generated hrefs when BuildOptions carries none.
const DefaultBasePath = "/docs"

// Source supplies the documents a build groups into a tree. List must return
// slash-separated relative paths in a deterministic order; Load must fail,
// not skip, on unreadable or malformed files.
type Source interface {
	List(ctx context.Context) ([]string, error)
	Load(ctx context.Context, rel string) (document.Document, error)
}

// Service describes navigation generation.
type Service interface {
	Build(ctx context.Context, opts BuildOptions) (Tree, error)
}

// Builder assembles an ordered, sectioned navigation tree from a document
// source. It holds no cache and performs one enumeration pass per call; any
// memoization policy belongs to the route layer.
type Builder struct {
	source Source
	logger interfaces.Logger
}

// BuilderOption configures a Builder.
type BuilderOption func(*Builder)

// WithLogger supplies the logger used for build diagnostics.
func WithLogger(logger interfaces.Logger) BuilderOption {
	return func(b *Builder) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// NewBuilder constructs a Builder over the provided source.
func NewBuilder(source Source, opts ...BuilderOption) *Builder {
	b := &Builder{
		source: source,
		logger: logging.NoOp(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

type navEntry struct {
	title    string
	href     string
	order    int
	hasOrder bool
	source   string
}

// Build walks the source once and returns the resulting tree. Items sort by
// (order ascending, unset order last, title ascending case-insensitive);
// sections named in SectionOrder lead in that order, the rest follow in
// first-encounter order of the walk. Any unreadable or malformed file fails
// the whole build: a silently incomplete site map is worse than a loud error.
func (b *Builder) Build(ctx context.Context, opts BuildOptions) (Tree, error) {
	buildID := uuid.NewString()
	basePath := normalizeBasePath(opts.BasePath)

	paths, err := b.source.List(ctx)
	if err != nil {
		return nil, err
	}
	b.logger.Debug("navigation.build.start", "build_id", buildID, "base_path", basePath, "files", len(paths))

	var sectionTitles []string
	buckets := map[string][]navEntry{}
	sources := map[string]string{}
	pages := 0

	for _, rel := range paths {
		doc, err := b.source.Load(ctx, rel)
		if err != nil {
			return nil, err
		}

		stem := strings.TrimSuffix(rel, path.Ext(rel))
		isIndex := opts.IndexPage != "" && stem == opts.IndexPage

		section, _ := doc.Metadata.Text("section")
		section = strings.TrimSpace(section)
		if isIndex && section == "" {
			// The landing page is reachable at the base path already; without
			// an explicit section it stays out of the sidebar.
			b.logger.Debug("navigation.build.skip_index", "build_id", buildID, "path", rel)
			continue
		}
		if section == "" {
			section = DefaultSection
		}

		href := basePath
		if !isIndex {
			href = joinHref(basePath, SlugPath(stem))
		}
		if existing, ok := sources[href]; ok {
			return nil, &DuplicatePathError{Href: href, Path: rel, Existing: existing}
		}
		sources[href] = rel

		title, ok := doc.Metadata.Text("title")
		if !ok || strings.TrimSpace(title) == "" {
			title = document.TitleFromPath(rel)
		}
		order, hasOrder := doc.Metadata.Int("order")

		if _, ok := buckets[section]; !ok {
			sectionTitles = append(sectionTitles, section)
		}
		buckets[section] = append(buckets[section], navEntry{
			title:    title,
			href:     href,
			order:    order,
			hasOrder: hasOrder,
			source:   rel,
		})
		pages++
	}

	tree := make(Tree, 0, len(sectionTitles))
	for _, title := range orderSections(sectionTitles, opts.SectionOrder) {
		entries := buckets[title]
		sortEntries(entries)

		items := make([]Item, 0, len(entries))
		for _, entry := range entries {
			items = append(items, Item{Title: entry.title, Href: entry.href})
		}
		tree = append(tree, Section{Title: title, Items: items})
	}

	b.logger.Info("navigation.build.complete", "build_id", buildID, "sections", len(tree), "pages", pages)
	return tree, nil
}

// sortEntries orders items within a section: explicit order first (ascending),
// unordered items after, case-insensitive title as tie-break, source path as
// the final fallback so the sort is total.
func sortEntries(entries []navEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.hasOrder != b.hasOrder {
			return a.hasOrder
		}
		if a.hasOrder && a.order != b.order {
			return a.order < b.order
		}
		at, bt := strings.ToLower(a.title), strings.ToLower(b.title)
		if at != bt {
			return at < bt
		}
		return a.source < b.source
	})
}

// orderSections applies the caller precedence list, then appends remaining
// sections in first-encounter order.
func orderSections(encountered []string, precedence []string) []string {
	ordered := make([]string, 0, len(encountered))
	used := map[string]bool{}

	present := map[string]bool{}
	for _, title := range encountered {
		present[title] = true
	}
	for _, title := range precedence {
		if present[title] && !used[title] {
			ordered = append(ordered, title)
			used[title] = true
		}
	}
	for _, title := range encountered {
		if !used[title] {
			ordered = append(ordered, title)
			used[title] = true
		}
	}
	return ordered
}

func normalizeBasePath(basePath string) string {
	trimmed := strings.Trim(strings.TrimSpace(basePath), "/")
	if trimmed == "" && strings.TrimSpace(basePath) == "" {
		return DefaultBasePath
	}
	return "/" + trimmed
}

func joinHref(basePath, rel string) string {
	if basePath == "/" {
		return "/" + rel
	}
	return basePath + "/" + rel
}

// SlugPath normalizes every segment of an extension-less path so generated
// hrefs stay URL-safe even for unruly filenames. Segments the normalizer
// rejects pass through unchanged. Document sources resolve page paths through
// the same function, so every href a build emits is loadable.
func SlugPath(stem string) string {
	segments := strings.Split(stem, "/")
	for i, segment := range segments {
		if normalized, err := slug.Normalize(segment); err == nil && normalized != "" {
			segments[i] = normalized
		}
	}
	return strings.Join(segments, "/")
}

var _ Service = (*Builder)(nil)
