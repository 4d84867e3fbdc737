package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Artwork is a single catalog entry.
type Artwork struct {
	ID     string   `json:"id" yaml:"id"`
	Title  string   `json:"title" yaml:"title"`
	Artist string   `json:"artist" yaml:"artist"`
	Year   string   `json:"year,omitempty" yaml:"year,omitempty"`
	Tags   []string `json:"tags" yaml:"tags"`
	Image  string   `json:"image" yaml:"image"`
}

// Byline returns "artist / year", or just the artist when the year is unknown.
func (a Artwork) Byline() string {
	if strings.TrimSpace(a.Year) == "" {
		return a.Artist
	}
	return a.Artist + " / " + a.Year
}

// Catalog is the immutable, ordered artwork list.
type Catalog []Artwork

// ByID looks up an artwork by id.
func (c Catalog) ByID(id string) (Artwork, bool) {
	for _, art := range c {
		if art.ID == id {
			return art, true
		}
	}
	return Artwork{}, false
}

// Format identifies the encoding of a catalog file.
type Format int

const (
	FormatJSON Format = iota
	FormatYAML
)

var (
	// ErrMissingID reports a record without an id.
	ErrMissingID = errors.New("artwork id is empty")
	// ErrDuplicateID reports two records sharing an id.
	ErrDuplicateID = errors.New("duplicate artwork id")
)

// Load reads the catalog at path. An empty path returns the embedded catalog.
func Load(path string) (Catalog, error) {
	if strings.TrimSpace(path) == "" {
		return Default()
	}

	format, err := formatFor(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	return Parse(data, format)
}

// Parse decodes and validates catalog data.
func Parse(data []byte, format Format) (Catalog, error) {
	var items []Artwork
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &items); err != nil {
			return nil, fmt.Errorf("parse catalog: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &items); err != nil {
			return nil, fmt.Errorf("parse catalog: %w", err)
		}
	}

	if err := validate(items); err != nil {
		return nil, fmt.Errorf("validate catalog: %w", err)
	}
	for i := range items {
		if items[i].Tags == nil {
			items[i].Tags = []string{}
		}
	}
	return Catalog(items), nil
}

func validate(items []Artwork) error {
	seen := make(map[string]struct{}, len(items))
	for i, art := range items {
		if strings.TrimSpace(art.ID) == "" {
			return fmt.Errorf("record %d: %w", i, ErrMissingID)
		}
		if _, ok := seen[art.ID]; ok {
			return fmt.Errorf("record %d (%s): %w", i, art.ID, ErrDuplicateID)
		}
		seen[art.ID] = struct{}{}
	}
	return nil
}

func formatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return 0, fmt.Errorf("unsupported catalog format %q", filepath.Ext(path))
	}
}
