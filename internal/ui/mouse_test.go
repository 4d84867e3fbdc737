package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/gallery/internal/favorites"
	"github.com/five82/gallery/internal/storage"
)

func click(t *testing.T, m Model, x, y int) Model {
	t.Helper()
	return update(t, m, tea.MouseMsg{
		X:      x,
		Y:      y,
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonLeft,
	})
}

func TestMouse_ClickCardOpensViewer(t *testing.T) {
	m := newTestModel(t, Options{})

	m = click(t, m, cardWidth+cardGap+10, headerHeight+3)
	if got := viewerIndex(t, m); got != 1 {
		t.Fatalf("opened at %d, want 1", got)
	}
}

func TestMouse_ClickOutsideCardsDoesNothing(t *testing.T) {
	m := newTestModel(t, Options{})

	for _, pt := range [][2]int{
		{0, 0},                         // header
		{cardWidth, headerHeight + 2},  // gap between cards
		{3*(cardWidth+cardGap) + 5, 6}, // no fourth artwork
	} {
		m = click(t, m, pt[0], pt[1])
		if m.viewer.IsOpen() {
			t.Fatalf("click at %v opened the viewer", pt)
		}
	}
}

func TestMouse_ClickHeartTogglesFavorite(t *testing.T) {
	favs := favorites.New(storage.NewMemory())
	m := newTestModel(t, Options{Favorites: favs})

	m = click(t, m, cardWidth+cardGap+favoriteColumn, headerHeight+1)
	if m.viewer.IsOpen() {
		t.Fatalf("heart click opened the viewer")
	}
	if !favs.Has("a2") {
		t.Fatalf("heart click did not favorite a2")
	}
	if m.cursor != 1 {
		t.Fatalf("cursor = %d, want 1", m.cursor)
	}
}

func TestMouse_BackdropClosesViewer(t *testing.T) {
	m := newTestModel(t, Options{})
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	r := m.modalRect()
	m = click(t, m, r.x+r.w/2, r.y+1)
	if !m.viewer.IsOpen() {
		t.Fatalf("click inside the box closed the viewer")
	}

	m = click(t, m, 0, 0)
	if m.viewer.IsOpen() {
		t.Fatalf("backdrop click left the viewer open")
	}
}

func TestMouse_ViewerControls(t *testing.T) {
	m := newTestModel(t, Options{})
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	r := m.modalRect()
	controls := r.y + r.h - 3
	left := r.x + 3
	right := left + m.modalInner() - 1

	m = click(t, m, right, controls)
	if got := viewerIndex(t, m); got != 1 {
		t.Fatalf("next click: index %d, want 1", got)
	}

	m = click(t, m, left, controls)
	m = click(t, m, left, controls)
	if got := viewerIndex(t, m); got != 2 {
		t.Fatalf("prev clicks: index %d, want 2", got)
	}

	m = click(t, m, left+m.modalInner()/2, controls)
	if m.viewer.IsOpen() {
		t.Fatalf("close click left the viewer open")
	}
}

func TestMouse_ListLayout(t *testing.T) {
	favs := favorites.New(storage.NewMemory())
	m := newTestModel(t, Options{Favorites: favs, Layout: "list"})

	m = click(t, m, favoriteColumn, headerHeight+2)
	if !favs.Has("a3") {
		t.Fatalf("list heart click did not favorite a3")
	}

	m = click(t, m, 20, headerHeight)
	if got := viewerIndex(t, m); got != 0 {
		t.Fatalf("list click opened %d, want 0", got)
	}
}

func TestMouse_WheelMovesCursor(t *testing.T) {
	m := newTestModel(t, Options{Layout: "list"})
	m = update(t, m, tea.MouseMsg{Button: tea.MouseButtonWheelDown, Action: tea.MouseActionPress})
	if m.cursor != 1 {
		t.Fatalf("cursor = %d, want 1", m.cursor)
	}
}
