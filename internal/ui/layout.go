package ui

// Card geometry. Widths and heights include the border.
const (
	cardWidth  = 28
	cardHeight = 6
	cardGap    = 1
)

// Screen regions, in lines.
const (
	headerHeight = 4
	footerHeight = 1
	audioHeight  = 3
)

// Viewer modal limits.
const (
	modalMaxWidth   = 64
	modalImageLines = 7
)

// favoriteColumn is the x offset of the favorite icon inside a card or list
// row.
const favoriteColumn = 2

// windowTitle is shown by terminals that support OSC titles.
const windowTitle = "Art Gallary"
