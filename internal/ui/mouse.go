package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/gallery/internal/prefs"
)

// rect is a screen rectangle in cells.
type rect struct {
	x, y, w, h int
}

func (r rect) contains(x, y int) bool {
	return x >= r.x && x < r.x+r.w && y >= r.y && y < r.y+r.h
}

// handleMouse processes mouse input.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		if !m.viewer.IsOpen() && !m.showHelp {
			m.moveCursor(-m.columns())
		}
		return m, nil
	case tea.MouseButtonWheelDown:
		if !m.viewer.IsOpen() && !m.showHelp {
			m.moveCursor(m.columns())
		}
		return m, nil
	case tea.MouseButtonLeft:
		if msg.Action != tea.MouseActionPress {
			return m, nil
		}
	default:
		return m, nil
	}

	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	if m.viewer.IsOpen() {
		m.handleViewerClick(msg.X, msg.Y)
		return m, nil
	}

	idx, onFavorite, ok := m.cardAt(msg.X, msg.Y)
	if !ok {
		return m, nil
	}
	m.cursor = idx
	if onFavorite {
		m.toggleFavoriteAt(idx)
		return m, nil
	}
	m.openAt(idx)
	return m, nil
}

// handleViewerClick closes the viewer on backdrop clicks and handles the
// controls line.
func (m *Model) handleViewerClick(x, y int) {
	r := m.modalRect()
	if !r.contains(x, y) {
		m.setViewer(m.viewer.Close())
		return
	}
	if !m.viewer.UIVisible() || y != r.y+r.h-3 {
		return
	}

	n := len(m.filtered)
	inner := m.modalInner()
	third := inner / 3
	cx := x - r.x - 3 // border and padding
	switch {
	case cx < 0 || cx >= inner:
	case cx < third:
		m.setViewer(m.viewer.Prev(n))
	case cx >= inner-third:
		m.setViewer(m.viewer.Next(n))
	default:
		m.setViewer(m.viewer.Close())
	}
}

// modalRect returns where renderViewer places the viewer box.
func (m Model) modalRect() rect {
	box := m.renderModalBox()
	w := lipgloss.Width(box)
	h := lipgloss.Height(box)
	return rect{
		x: max(0, (m.width-w)/2),
		y: max(0, (m.height-h)/2),
		w: w,
		h: h,
	}
}

// cardAt returns the filtered index under (x, y) and whether the point is on
// the favorite icon.
func (m Model) cardAt(x, y int) (index int, onFavorite bool, ok bool) {
	localY := y - headerHeight
	if x < 0 || localY < 0 || localY >= m.bodyHeight() {
		return 0, false, false
	}
	rowH := m.rowHeight()
	if localY/rowH >= m.visibleRows() {
		return 0, false, false
	}
	row := localY/rowH + m.scroll

	if m.layout == prefs.LayoutList {
		if row >= len(m.filtered) || x >= m.width {
			return 0, false, false
		}
		return row, onIcon(x), true
	}

	stride := cardWidth + cardGap
	col := x / stride
	if col >= m.columns() || x%stride >= cardWidth {
		return 0, false, false
	}
	idx := row*m.columns() + col
	if idx >= len(m.filtered) {
		return 0, false, false
	}
	return idx, localY%rowH == 1 && onIcon(x%stride), true
}

// onIcon reports whether column x hits the favorite icon or the space after
// it.
func onIcon(x int) bool {
	return x == favoriteColumn || x == favoriteColumn+1
}
