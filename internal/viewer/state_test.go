package viewer

import (
	"math/rand"
	"testing"
)

func mustIndex(t *testing.T, s State) int {
	t.Helper()
	i, ok := s.Index()
	if !ok {
		t.Fatalf("state is closed, want open")
	}
	return i
}

func TestZeroValueIsClosed(t *testing.T) {
	var s State
	if s.IsOpen() {
		t.Fatalf("zero State is open")
	}
	if _, ok := s.Index(); ok {
		t.Fatalf("zero State has an index")
	}
	if !s.UIVisible() {
		t.Fatalf("zero State hides the UI")
	}
}

func TestOpenShowsUI(t *testing.T) {
	s := Closed().Open(3)
	if got := mustIndex(t, s); got != 3 {
		t.Fatalf("index = %d, want 3", got)
	}
	if !s.UIVisible() {
		t.Fatalf("Open should show the UI")
	}
}

func TestCloseResetsUIVisibility(t *testing.T) {
	s := Closed().Open(0).ToggleUI()
	if s.UIVisible() {
		t.Fatalf("ToggleUI did not hide the UI")
	}
	s = s.Close()
	if s.IsOpen() {
		t.Fatalf("Close left the viewer open")
	}
	s = s.Open(1)
	if !s.UIVisible() {
		t.Fatalf("UI should be visible after reopening")
	}
}

func TestNextPrevWrap(t *testing.T) {
	s := Closed().Open(1)
	s = s.Next(2)
	if got := mustIndex(t, s); got != 0 {
		t.Fatalf("Next from 1 of 2 = %d, want 0", got)
	}
	s = s.Prev(2)
	if got := mustIndex(t, s); got != 1 {
		t.Fatalf("Prev from 0 of 2 = %d, want 1", got)
	}
}

func TestNavigationKeepsUIFlag(t *testing.T) {
	s := Closed().Open(0).ToggleUI().Next(3).Prev(3).Prev(3)
	if s.UIVisible() {
		t.Fatalf("navigation changed UI visibility")
	}
}

func TestTransitionsWhileClosedAreNoOps(t *testing.T) {
	s := Closed()
	for _, next := range []State{s.Next(3), s.Prev(3), s.ToggleUI(), s.Reconcile(0), s.Reconcile(5)} {
		if next != s {
			t.Fatalf("closed transition changed state: %#v", next)
		}
	}
}

func TestToggleUIKeepsIndex(t *testing.T) {
	s := Closed().Open(4).ToggleUI()
	if got := mustIndex(t, s); got != 4 {
		t.Fatalf("index = %d, want 4", got)
	}
	if s.ToggleUI().UIVisible() != true {
		t.Fatalf("double ToggleUI should show the UI")
	}
}

func TestIndexStaysInRange(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for round := 0; round < 200; round++ {
		n := rng.Intn(9) + 1
		s := Closed().Open(rng.Intn(n))
		for step := 0; step < 50; step++ {
			if rng.Intn(2) == 0 {
				s = s.Next(n)
			} else {
				s = s.Prev(n)
			}
			i := mustIndex(t, s)
			if i < 0 || i >= n {
				t.Fatalf("round %d step %d: index %d out of [0,%d)", round, step, i, n)
			}
		}
	}
}

func TestReconcile(t *testing.T) {
	cases := []struct {
		name     string
		index    int
		n        int
		wantOpen bool
		want     int
	}{
		{"shrinks to empty", 0, 0, false, 0},
		{"shrinks below index", 5, 3, true, 2},
		{"shrinks to one", 1, 1, true, 0},
		{"index still valid", 1, 4, true, 1},
		{"grows", 2, 10, true, 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := Closed().Open(tc.index).Reconcile(tc.n)
			if s.IsOpen() != tc.wantOpen {
				t.Fatalf("IsOpen = %v, want %v", s.IsOpen(), tc.wantOpen)
			}
			if tc.wantOpen {
				if got := mustIndex(t, s); got != tc.want {
					t.Fatalf("index = %d, want %d", got, tc.want)
				}
			}
		})
	}
}

func TestReconcileKeepsUIFlag(t *testing.T) {
	s := Closed().Open(5).ToggleUI().Reconcile(2)
	if s.UIVisible() {
		t.Fatalf("Reconcile changed UI visibility")
	}
}

func TestOpenClampsNegative(t *testing.T) {
	if got := mustIndex(t, Closed().Open(-2)); got != 0 {
		t.Fatalf("Open(-2) index = %d, want 0", got)
	}
}
