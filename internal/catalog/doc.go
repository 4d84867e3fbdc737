// Package catalog holds the artwork catalog and the pure functions derived
// from it.
//
// # Overview
//
// The catalog is a fixed, ordered list of artworks supplied at build or
// deploy time. It is loaded once at startup and never mutated afterwards.
// Everything else in the gallery reads from it:
//
//	┌──────────────┐     ┌──────────────┐     ┌──────────────┐
//	│   Load()     │────>│   Catalog    │────>│  Filter()    │──> grid
//	└──────────────┘     └──────┬───────┘     └──────────────┘
//	                            │
//	                            └────────────> Artists()     ──> artist selector
//
// # Sources
//
// Load accepts JSON (.json) or YAML (.yaml, .yml) files. An empty path
// selects the catalog embedded in the binary (see Default).
//
// Example JSON record:
//
//	{
//	  "id": "a1",
//	  "title": "Sunset",
//	  "artist": "Rin",
//	  "year": "2021",
//	  "tags": ["warm", "landscape"],
//	  "image": "/images/sunset.jpg"
//	}
//
// The year is optional. A missing tag list is treated as empty.
//
// # Validation
//
// Every record needs a non-empty id and ids must be unique; violations are
// reported with ErrMissingID and ErrDuplicateID.
//
// # Filtering
//
// Filter and Artists are pure functions taking the catalog as an explicit
// argument. Filter keeps the catalog's original order; there is no ranking.
// Matching is case-insensitive substring matching of the trimmed query
// against title, artist and tags, combined with an exact artist selector.
package catalog
