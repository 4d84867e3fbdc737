package catalog

import _ "embed"

//go:embed artworks.json
var defaultCatalog []byte

// Default returns the catalog shipped with the binary.
func Default() (Catalog, error) {
	return Parse(defaultCatalog, FormatJSON)
}
