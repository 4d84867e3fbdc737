// Package app provides the orchestration layer for the gallery.
//
// # Overview
//
// This package wires together configuration, logging, the catalog, local
// storage and the favorites store, then hands them to the UI. It is the
// composition root: nothing below it knows how the others are built.
//
// # Startup Order
//
//	┌──────────────┐
//	│   Open()     │
//	└──────┬───────┘
//	       │
//	       ├─────> config.Load()      Read ~/.config/gallery/config.toml
//	       ├─────> logging.New()      zap logger writing to the log file
//	       ├─────> catalog.Load()     Embedded catalog or catalog_path
//	       ├─────> storage.Open()     file, sqlite or memory backend
//	       └─────> favorites.Load()   Persisted favorite ids
//
//	Run() = Open() + prefs.Load() + ui.Run()
//
// # Error Handling
//
// Fatal errors (returned from Open and Run):
//   - Config file unreadable or invalid
//   - Log file cannot be created
//   - Catalog missing, unparsable or with invalid ids
//   - Storage backend unknown or unopenable
//
// Recoverable errors (logged, startup continues):
//   - Malformed or unreadable favorites: the set starts empty
//   - Preferences: defaults are used
//
// # Usage Example
//
//	env, err := app.Open(app.Options{})
//	if err != nil {
//		return err
//	}
//	defer env.Close()
//	fmt.Println(len(env.Catalog), "artworks")
package app
