package document

import "strconv"

// Metadata holds the scalar key/value pairs extracted from a frontmatter
// block. Values are typed by appearance: all-digit values decode as int,
// literal true/false as bool, and everything else stays a string. Keys are
// case-sensitive; duplicated keys resolve last-write-wins.
type Metadata map[string]any

// String returns the value for key when it is present and a string.
func (m Metadata) String(key string) (string, bool) {
	value, ok := m[key].(string)
	return value, ok
}

// Text returns the value for key rendered as a string regardless of how it
// was coerced: strings verbatim, ints and bools formatted. A frontmatter
// author who writes "section: 2" means the literal text, not a number.
func (m Metadata) Text(key string) (string, bool) {
	switch value := m[key].(type) {
	case string:
		return value, true
	case int:
		return strconv.Itoa(value), true
	case bool:
		return strconv.FormatBool(value), true
	}
	return "", false
}

// Int returns the value for key when it is present and an int.
func (m Metadata) Int(key string) (int, bool) {
	value, ok := m[key].(int)
	return value, ok
}

// Bool returns the value for key when it is present and a bool.
func (m Metadata) Bool(key string) (bool, bool) {
	value, ok := m[key].(bool)
	return value, ok
}

// Has reports whether key is present in the metadata.
func (m Metadata) Has(key string) bool {
	_, ok := m[key]
	return ok
}

// Document is the result of splitting a markdown file into its frontmatter
// metadata and remaining body. Metadata and Body together losslessly
// represent the source when the fenced-frontmatter convention is followed.
// Documents are constructed fresh per file read and never mutated.
type Document struct {
	Metadata Metadata
	Body     []byte
}

// Page is a single loaded documentation page, ready to hand to a route or
// rendering layer. Title falls back to a humanized filename stem when the
// frontmatter carries none.
type Page struct {
	Path        string   `json:"path"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Body        string   `json:"body"`
	Metadata    Metadata `json:"metadata,omitempty"`
}
