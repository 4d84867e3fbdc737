package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the gallery.
type keyMap struct {
	// Global
	Quit       key.Binding
	Help       key.Binding
	CycleTheme key.Binding
	Layout     key.Binding
	Audio      key.Binding
	Pager      key.Binding

	// Filters
	Search     key.Binding
	NextArtist key.Binding
	PrevArtist key.Binding
	Reset      key.Binding

	// Grid
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	Open     key.Binding
	Favorite key.Binding

	// Search input
	Confirm key.Binding
	Cancel  key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "theme"),
		),
		Layout: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "grid/list"),
		),
		Audio: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "audio"),
		),
		Pager: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pager"),
		),

		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		NextArtist: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "next artist"),
		),
		PrevArtist: key.NewBinding(
			key.WithKeys("A"),
			key.WithHelp("A", "prev artist"),
		),
		Reset: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "reset filters"),
		),

		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/up", "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/down", "move down"),
		),
		Left: key.NewBinding(
			key.WithKeys("h", "left"),
			key.WithHelp("h/left", "move left"),
		),
		Right: key.NewBinding(
			key.WithKeys("l", "right"),
			key.WithHelp("l/right", "move right"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "view"),
		),
		Favorite: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "favorite"),
		),

		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "done"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "done"),
		),
	}
}

// ShortHelp returns key bindings for the footer.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Search, k.NextArtist, k.Open, k.Favorite, k.Help, k.Quit}
}

// FullHelp returns key bindings for the expanded help view.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right, k.Open},
		{k.Search, k.NextArtist, k.PrevArtist, k.Reset},
		{k.Favorite, k.Pager, k.Audio, k.Layout},
		{k.CycleTheme, k.Help, k.Quit},
	}
}

// viewerKeyMap is shown in the footer while the viewer is open.
type viewerKeyMap struct {
	Prev     key.Binding
	Next     key.Binding
	Close    key.Binding
	ToggleUI key.Binding
	Favorite key.Binding
}

func defaultViewerKeyMap() viewerKeyMap {
	return viewerKeyMap{
		Prev: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "prev"),
		),
		Next: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "next"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
		ToggleUI: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "hide caption"),
		),
		Favorite: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "favorite"),
		),
	}
}

func (k viewerKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Close, k.ToggleUI, k.Favorite}
}

func (k viewerKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
