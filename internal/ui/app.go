package ui

import (
	"context"
	"errors"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/five82/gallery/internal/catalog"
	"github.com/five82/gallery/internal/favorites"
	"github.com/five82/gallery/internal/prefs"
	"github.com/five82/gallery/internal/storage"
	"github.com/five82/gallery/internal/viewer"
)

// Options configures the UI.
type Options struct {
	Catalog     catalog.Catalog
	Favorites   *favorites.Store
	Logger      *zap.Logger
	ThemeName   string
	Layout      string
	PrefsPath   string // empty disables saving preferences
	PlaylistURL string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Data
	catalog   catalog.Catalog
	artists   []string
	favorites *favorites.Store
	logger    *zap.Logger

	// Configuration
	prefsPath   string
	playlistURL string

	// UI state
	theme      Theme
	layout     string
	keys       keyMap
	viewerKeys viewerKeyMap
	help       help.Model
	width      int
	height     int
	ready      bool

	// Filters
	search    textinput.Model
	searching bool
	artistIdx int // 0 selects all artists

	// Grid
	filtered []catalog.Artwork
	cursor   int
	scroll   int // first visible row

	// Viewer
	viewer   viewer.State
	keyboard *viewer.Keyboard
	classes  viewer.ClassList
	captions *captionRenderer

	// Overlays
	showHelp  bool
	showAudio bool
}

// New creates a new Bubble Tea model and attaches the viewer key listener.
func New(opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	favs := opts.Favorites
	if favs == nil {
		favs = favorites.New(storage.NewMemory())
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = "Nightfox"
	}

	layout := opts.Layout
	if layout != prefs.LayoutList {
		layout = prefs.LayoutGrid
	}

	search := textinput.New()
	search.Prompt = "/ "
	search.Placeholder = "Search title, artist or tag"
	search.CharLimit = 80

	keyboard := &viewer.Keyboard{}
	keyboard.Attach()

	m := Model{
		catalog:     opts.Catalog,
		artists:     catalog.Artists(opts.Catalog),
		favorites:   favs,
		logger:      logger,
		prefsPath:   opts.PrefsPath,
		playlistURL: opts.PlaylistURL,
		theme:       GetTheme(themeName),
		layout:      layout,
		keys:        DefaultKeyMap(),
		viewerKeys:  defaultViewerKeyMap(),
		help:        help.New(),
		search:      search,
		keyboard:    keyboard,
		classes:     viewer.ClassList{},
		captions:    newCaptionRenderer(),
	}
	m.refilter()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle(windowTitle)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = max(msg.Width-2, 0)
		m.search.Width = max(16, msg.Width/2)
		m.ready = true
		m.ensureCursorVisible()
		return m, nil

	case pagerExitMsg:
		if msg.err != nil {
			m.logger.Warn("pager exited with error", zap.Error(msg.err))
		}
		return m, nil
	}

	if m.searching {
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelp()
	}

	if m.viewer.IsOpen() {
		return m.renderViewer()
	}

	return m.renderMain()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m.quit()
	}

	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	if m.viewer.IsOpen() {
		return m.handleViewerKey(msg)
	}

	if m.searching {
		return m.handleSearchKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.savePrefs()

	case key.Matches(msg, m.keys.Layout):
		if m.layout == prefs.LayoutList {
			m.layout = prefs.LayoutGrid
		} else {
			m.layout = prefs.LayoutList
		}
		m.scroll = 0
		m.ensureCursorVisible()
		m.savePrefs()

	case key.Matches(msg, m.keys.Audio):
		m.showAudio = !m.showAudio
		m.ensureCursorVisible()

	case key.Matches(msg, m.keys.Pager):
		return m, m.pagerCmd()

	case key.Matches(msg, m.keys.Search):
		m.searching = true
		return m, m.search.Focus()

	case key.Matches(msg, m.keys.NextArtist):
		m.cycleArtist(1)

	case key.Matches(msg, m.keys.PrevArtist):
		m.cycleArtist(-1)

	case key.Matches(msg, m.keys.Reset):
		m.search.SetValue("")
		m.artistIdx = 0
		m.refilter()

	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-m.columns())

	case key.Matches(msg, m.keys.Down):
		m.moveCursor(m.columns())

	case key.Matches(msg, m.keys.Left):
		m.moveCursor(-1)

	case key.Matches(msg, m.keys.Right):
		m.moveCursor(1)

	case key.Matches(msg, m.keys.Open):
		m.openAt(m.cursor)

	case key.Matches(msg, m.keys.Favorite):
		m.toggleFavoriteAt(m.cursor)
	}

	return m, nil
}

// handleViewerKey routes keys through the viewer listener. Grid keys are
// ignored while the viewer is open.
func (m Model) handleViewerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if k := viewerKey(msg); k != viewer.KeyNone {
		if next, handled := m.keyboard.Handle(m.viewer, k, len(m.filtered)); handled {
			m.setViewer(next)
			return m, nil
		}
	}

	switch {
	case key.Matches(msg, m.viewerKeys.Favorite):
		if i, ok := m.viewer.Index(); ok {
			m.toggleFavoriteAt(i)
		}
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
	}
	return m, nil
}

// handleSearchKey feeds the search input and refilters on every edit.
func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Confirm) || key.Matches(msg, m.keys.Cancel) {
		m.searching = false
		m.search.Blur()
		return m, nil
	}

	before := m.search.Value()
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if m.search.Value() != before {
		m.refilter()
	}
	return m, cmd
}

// viewerKey maps a terminal key to a viewer key.
func viewerKey(msg tea.KeyMsg) viewer.Key {
	switch msg.Type {
	case tea.KeyEsc:
		return viewer.KeyEscape
	case tea.KeyRight:
		return viewer.KeyArrowRight
	case tea.KeyLeft:
		return viewer.KeyArrowLeft
	case tea.KeySpace:
		return viewer.KeySpace
	case tea.KeyRunes:
		if string(msg.Runes) == " " {
			return viewer.KeySpace
		}
	}
	return viewer.KeyNone
}

// criteria returns the current filter criteria.
func (m Model) criteria() catalog.Criteria {
	return catalog.Criteria{
		Query:  m.search.Value(),
		Artist: m.selectedArtist(),
	}
}

func (m Model) selectedArtist() string {
	if m.artistIdx <= 0 || m.artistIdx > len(m.artists) {
		return catalog.AllArtists
	}
	return m.artists[m.artistIdx-1]
}

func (m Model) artistLabel() string {
	if m.selectedArtist() == catalog.AllArtists {
		return "All artists"
	}
	return m.selectedArtist()
}

// cycleArtist steps through "all" followed by every artist.
func (m *Model) cycleArtist(delta int) {
	options := len(m.artists) + 1
	m.artistIdx = ((m.artistIdx+delta)%options + options) % options
	m.refilter()
}

// refilter recomputes the filtered list and repairs everything that indexes
// into it.
func (m *Model) refilter() {
	m.filtered = catalog.Filter(m.catalog, m.criteria())
	m.cursor = clamp(m.cursor, 0, max(len(m.filtered)-1, 0))
	m.viewer = m.viewer.Reconcile(len(m.filtered))
	viewer.SyncMarker(m.classes, m.viewer)
	m.ensureCursorVisible()
}

// setViewer installs a new viewer state and keeps the grid cursor on the
// shown artwork.
func (m *Model) setViewer(next viewer.State) {
	m.viewer = next
	viewer.SyncMarker(m.classes, m.viewer)
	if i, ok := m.viewer.Index(); ok {
		m.cursor = i
		m.ensureCursorVisible()
	}
}

func (m *Model) openAt(i int) {
	if i < 0 || i >= len(m.filtered) {
		return
	}
	m.cursor = i
	m.setViewer(m.viewer.Open(i))
}

// toggleFavoriteAt flips the favorite flag of the i-th filtered artwork.
// Persistence failures are logged only.
func (m *Model) toggleFavoriteAt(i int) {
	if i < 0 || i >= len(m.filtered) {
		return
	}
	id := m.filtered[i].ID
	if err := m.favorites.Toggle(id); err != nil {
		m.logger.Warn("persist favorites", zap.String("id", id), zap.Error(err))
		return
	}
	m.logger.Debug("favorite toggled",
		zap.String("id", id),
		zap.Bool("favorite", m.favorites.Has(id)),
	)
}

func (m Model) savePrefs() {
	if m.prefsPath == "" {
		return
	}
	p := prefs.Prefs{Theme: m.theme.Name, Layout: m.layout}
	if err := prefs.Save(m.prefsPath, p); err != nil {
		m.logger.Warn("save preferences", zap.String("path", m.prefsPath), zap.Error(err))
	}
}

// unmount detaches the key listener and clears the modal marker.
func (m Model) unmount() {
	m.keyboard.Detach()
	m.classes.Remove(viewer.ModalOpenClass)
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.unmount()
	return m, tea.Quit
}

// Run starts the Bubble Tea program and blocks until it exits or ctx is
// cancelled.
func Run(ctx context.Context, opts Options) error {
	if ctx == nil {
		ctx = context.Background()
	}
	m := New(opts)
	defer m.unmount()

	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
