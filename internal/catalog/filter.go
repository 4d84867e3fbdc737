package catalog

import (
	"sort"
	"strings"
)

// AllArtists is the artist selector value that disables artist filtering.
const AllArtists = "all"

// Criteria is the transient filter input owned by the view.
type Criteria struct {
	Query  string
	Artist string
}

// IsZero reports whether the criteria select the whole catalog.
func (cr Criteria) IsZero() bool {
	return normalizeQuery(cr.Query) == "" && matchesAnyArtist(cr.Artist)
}

// Artists returns the distinct artist names of c in ascending order.
func Artists(c Catalog) []string {
	seen := make(map[string]struct{}, len(c))
	out := make([]string, 0, len(c))
	for _, art := range c {
		if _, ok := seen[art.Artist]; ok {
			continue
		}
		seen[art.Artist] = struct{}{}
		out = append(out, art.Artist)
	}
	sort.Strings(out)
	return out
}

// Filter returns the entries of c matching cr, in catalog order.
func Filter(c Catalog, cr Criteria) []Artwork {
	q := normalizeQuery(cr.Query)
	out := make([]Artwork, 0, len(c))
	for _, art := range c {
		if matches(art, q, cr.Artist) {
			out = append(out, art)
		}
	}
	return out
}

// Matches reports whether a single artwork satisfies cr.
func Matches(a Artwork, cr Criteria) bool {
	return matches(a, normalizeQuery(cr.Query), cr.Artist)
}

func matches(a Artwork, q, artist string) bool {
	if !matchesAnyArtist(artist) && a.Artist != artist {
		return false
	}
	if q == "" {
		return true
	}
	if strings.Contains(strings.ToLower(a.Title), q) || strings.Contains(strings.ToLower(a.Artist), q) {
		return true
	}
	for _, tag := range a.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}

// An empty selector behaves like "all" so a zero Criteria shows everything.
func matchesAnyArtist(artist string) bool {
	return artist == "" || artist == AllArtists
}

func normalizeQuery(q string) string {
	return strings.ToLower(strings.TrimSpace(q))
}
