package document

import (
	"path"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English, cases.NoLower)

// TitleFromPath derives a display title from a file path when the frontmatter
// carries no title: the extension is dropped, separators and hyphens become
// spaces, and each word is capitalized ("getting-started.md" -> "Getting
// Started"). Existing capitalization is preserved.
func TitleFromPath(p string) string {
	stem := path.Base(strings.TrimSuffix(p, path.Ext(p)))
	stem = strings.NewReplacer("-", " ", "_", " ").Replace(stem)
	stem = strings.Join(strings.Fields(stem), " ")
	if stem == "" {
		return ""
	}
	return titleCaser.String(stem)
}
