// Package ui provides the terminal user interface for the gallery.
//
// # Architecture Overview
//
// The UI is a single Bubble Tea model. It renders a header with the search
// input and artist selector, a responsive grid (or list) of artwork cards,
// an optional audio panel and a footer with key hints. Selecting a card opens
// a modal viewer on top of the grid.
//
// # Package Structure
//
//   - app.go: Model, Options, Update loop and Run
//   - grid.go: card layout geometry, cursor movement and grid/list rendering
//   - viewer.go: the modal viewer and its glamour caption cache
//   - mouse.go: hit testing for cards, favorite icons and the modal backdrop
//   - header.go: header, footer and audio panel
//   - pager.go: pages the filtered list through ov
//   - help.go: the keyboard shortcut overlay
//   - keys.go: key bindings shown in the footer
//   - theme.go: color themes
//
// # State Flow
//
// The filtered list is derived from the catalog and the current criteria on
// every query or artist change. The viewer state, grid cursor and modal
// marker are reconciled right after, so the viewer never points past the end
// of the filtered list.
//
// While the viewer is open, keys are routed through viewer.Keyboard first and
// the grid ignores navigation keys. Favorite toggles are persisted through the
// favorites store immediately; write failures are logged and otherwise
// ignored.
//
// # Usage Example
//
//	err := ui.Run(ctx, ui.Options{
//		Catalog:   cat,
//		Favorites: favs,
//		Logger:    logger,
//		ThemeName: p.Theme,
//		Layout:    p.Layout,
//	})
package ui
