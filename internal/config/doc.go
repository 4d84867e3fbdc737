// Package config loads the gallery's TOML configuration.
//
// # Configuration Discovery
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/gallery/config.toml
//  3. If the file doesn't exist, use defaults
//  4. Fields that are missing or blank keep their defaults
//
// # Fields
//
//	catalog_path    = "~/art/catalog.json"   # empty: catalog embedded in the binary
//	storage_backend = "file"                 # file | sqlite | memory
//	storage_path    = "~/.local/share/gallery/storage.json"
//	log_path        = "~/.local/share/gallery/gallery.log"
//	playlist_url    = "https://open.spotify.com/embed/playlist/..."
//
// Choosing the sqlite backend without a storage_path moves the default to
// ~/.local/share/gallery/storage.db. Tilde expansion applies to every path.
//
// # Error Handling
//
// Load returns errors for path expansion failures, read errors other than
// os.ErrNotExist, and TOML parse errors. A missing file is not an error.
package config
