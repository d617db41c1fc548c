package navigation

// Item is a single sidebar entry pointing at one documentation page.
type Item struct {
	Title string `json:"title"`
	Href  string `json:"href"`
}

// Section groups ordered items under a named documentation category.
type Section struct {
	Title string `json:"title"`
	Items []Item `json:"items"`
}

// Tree is the ordered section sequence consumed by the rendering layer. The
// JSON shape ({title, items: [{title, href}]}) is the wire contract handed
// across the server-to-client boundary.
type Tree []Section

// DefaultSection receives every page whose frontmatter names no section.
// Unsectioned pages stay visible rather than being dropped.
const DefaultSection = "Other"

// BuildOptions configures a single navigation build. ContentDir is bound by
// the Source; everything here shapes the produced tree.
type BuildOptions struct {
	// BasePath is prefixed to every generated href. Defaults to "/docs".
	BasePath string
	// SectionOrder lists section titles in display precedence. Sections not
	// named follow in the order they are first encountered during the walk.
	SectionOrder []string
	// IndexPage names the extension-less path stem whose page collapses to
	// BasePath itself. When the index page declares no section it is left
	// out of the tree; with an explicit section it is listed like any other
	// page.
	IndexPage string
}
