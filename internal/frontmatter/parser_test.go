package frontmatter

import (
	"bytes"
	"errors"
	"testing"

	"github.com/goliatone/go-docs/document"
)

func TestParse(t *testing.T) {
	source := []byte("---\ntitle: Getting Started\nsection: Guide\norder: 2\ndraft: true\n---\n\n# Getting Started\n\nBody text.\n")

	doc, err := Parse(source)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if title, _ := doc.Metadata.String("title"); title != "Getting Started" {
		t.Fatalf("title mismatch, got %q", title)
	}
	if section, _ := doc.Metadata.String("section"); section != "Guide" {
		t.Fatalf("section mismatch, got %q", section)
	}
	if order, ok := doc.Metadata.Int("order"); !ok || order != 2 {
		t.Fatalf("order mismatch, got %v (%v)", order, ok)
	}
	if draft, ok := doc.Metadata.Bool("draft"); !ok || !draft {
		t.Fatalf("draft mismatch: %#v", doc.Metadata)
	}
	if got := string(doc.Body); got != "# Getting Started\n\nBody text.\n" {
		t.Fatalf("body mismatch: %q", got)
	}
}

func TestParse_NoFrontmatterPassthrough(t *testing.T) {
	source := []byte("# Plain Markdown\n\nNo metadata here.\n")

	doc, err := Parse(source)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(doc.Metadata) != 0 {
		t.Fatalf("expected empty metadata, got %#v", doc.Metadata)
	}
	if !bytes.Equal(doc.Body, source) {
		t.Fatalf("body must be the input unchanged, got %q", doc.Body)
	}
}

func TestParse_UnterminatedBlock(t *testing.T) {
	_, err := Parse([]byte("---\ntitle: Broken\nNo closing marker follows.\n"))
	if !errors.Is(err, document.ErrUnterminatedFrontmatter) {
		t.Fatalf("expected ErrUnterminatedFrontmatter, got %v", err)
	}
}

func TestParse_DuplicateKeyLastWins(t *testing.T) {
	doc, err := Parse([]byte("---\ntitle: First\ntitle: Second\n---\nbody\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if title, _ := doc.Metadata.String("title"); title != "Second" {
		t.Fatalf("duplicate key must keep the last value, got %q", title)
	}
}

func TestParse_ValueTyping(t *testing.T) {
	cases := []struct {
		name  string
		value string
		want  any
	}{
		{"string", "Hello World", "Hello World"},
		{"int", "42", 42},
		{"negative int", "-7", -7},
		{"bool true", "true", true},
		{"bool false", "false", false},
		{"mixed digits", "1.5", "1.5"},
		{"list stays opaque", "[a, b, c]", "[a, b, c]"},
		{"boolish word", "True", "True"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			doc, err := Parse([]byte("---\nkey: " + tc.value + "\n---\nbody"))
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			if got := doc.Metadata["key"]; got != tc.want {
				t.Fatalf("value %q decoded as %#v, want %#v", tc.value, got, tc.want)
			}
		})
	}
}

func TestParse_ColonValueKeepsRemainder(t *testing.T) {
	doc, err := Parse([]byte("---\nurl: https://example.com/docs\n---\nbody"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if url, _ := doc.Metadata.String("url"); url != "https://example.com/docs" {
		t.Fatalf("value with colons mismatch, got %q", url)
	}
}

func TestParse_IgnoresLinesWithoutColon(t *testing.T) {
	doc, err := Parse([]byte("---\ntitle: Kept\nnot a pair\n---\nbody"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(doc.Metadata) != 1 {
		t.Fatalf("expected single key, got %#v", doc.Metadata)
	}
}

func TestParse_LeadingBlankLinesBeforeMarker(t *testing.T) {
	doc, err := Parse([]byte("\n\n---\ntitle: Padded\n---\nbody"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if title, _ := doc.Metadata.String("title"); title != "Padded" {
		t.Fatalf("marker after blank lines must still open the block, got %#v", doc.Metadata)
	}
}

func TestParse_StripsAtMostOneBlankLine(t *testing.T) {
	doc, err := Parse([]byte("---\ntitle: T\n---\n\n\nbody\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got := string(doc.Body); got != "\nbody\n" {
		t.Fatalf("only one leading blank line may be stripped, got %q", got)
	}
}

func TestParse_CRLF(t *testing.T) {
	doc, err := Parse([]byte("---\r\ntitle: Windows\r\norder: 3\r\n---\r\nbody\r\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if title, _ := doc.Metadata.String("title"); title != "Windows" {
		t.Fatalf("title mismatch, got %q", title)
	}
	if order, ok := doc.Metadata.Int("order"); !ok || order != 3 {
		t.Fatalf("order mismatch, got %v (%v)", order, ok)
	}
	if got := string(doc.Body); got != "body\r\n" {
		t.Fatalf("body mismatch: %q", got)
	}
}

func TestParse_EmptyInput(t *testing.T) {
	doc, err := Parse(nil)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(doc.Metadata) != 0 || len(doc.Body) != 0 {
		t.Fatalf("empty input must produce an empty document, got %#v", doc)
	}
}
