package ui

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/five82/gallery/internal/catalog"
)

func TestWriteListing(t *testing.T) {
	items := testCatalog()[:2]
	var b strings.Builder
	if err := WriteListing(&b, items, func(id string) bool { return id == "a1" }); err != nil {
		t.Fatalf("WriteListing: %v", err)
	}

	lines := strings.Split(strings.TrimRight(b.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2:\n%s", len(lines), b.String())
	}

	tests := []struct {
		line   string
		prefix string
		fields []string
	}{
		{lines[0], "♥", []string{"♥", "a1", "Sunrise", "Rin", "/", "2001", "#sea"}},
		{lines[1], " ", []string{"a2", "Night", "Kai", "#city"}},
	}
	for _, tt := range tests {
		if !strings.HasPrefix(tt.line, tt.prefix) {
			t.Fatalf("line %q does not start with %q", tt.line, tt.prefix)
		}
		got := strings.Fields(tt.line)
		if strings.Join(got, "|") != strings.Join(tt.fields, "|") {
			t.Fatalf("fields = %v, want %v", got, tt.fields)
		}
	}

	if column(lines[0], "Sunrise") != column(lines[1], "Night") {
		t.Fatalf("title column not aligned:\n%s", b.String())
	}
}

func TestWriteListing_NilFavorites(t *testing.T) {
	var b strings.Builder
	if err := WriteListing(&b, []catalog.Artwork{{ID: "x", Title: "T", Artist: "A"}}, nil); err != nil {
		t.Fatalf("WriteListing: %v", err)
	}
	if strings.Contains(b.String(), "♥") {
		t.Fatalf("unexpected favorite mark: %q", b.String())
	}
}

func TestCaptionMarkdown(t *testing.T) {
	md := captionMarkdown(catalog.Artwork{
		Title:  "Sunrise",
		Artist: "Rin",
		Year:   "2001",
		Tags:   []string{"sea"},
		Image:  "/images/sunrise.jpg",
	})
	for _, want := range []string{"## Sunrise", "*Rin / 2001*", "#sea", "`/images/sunrise.jpg`"} {
		if !strings.Contains(md, want) {
			t.Fatalf("caption markdown missing %q:\n%s", want, md)
		}
	}
}

// column returns the rune offset of sub in line.
func column(line, sub string) int {
	return utf8.RuneCountInString(line[:strings.Index(line, sub)])
}
