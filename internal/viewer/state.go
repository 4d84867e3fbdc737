package viewer

// State is the viewer state. The zero value is Closed.
type State struct {
	open bool
	// hidden is stored inverted so the zero value shows the UI.
	hidden bool
	index  int
}

// Closed returns the closed state.
func Closed() State {
	return State{}
}

// Open shows the artwork at index i with the UI visible.
func (s State) Open(i int) State {
	if i < 0 {
		i = 0
	}
	return State{open: true, index: i}
}

// Close hides the viewer and resets UI visibility for the next open.
func (s State) Close() State {
	return State{}
}

// Next advances one entry, wrapping to the start of a list of length n.
func (s State) Next(n int) State {
	if !s.open || n <= 0 {
		return s
	}
	s.index = (s.index + 1) % n
	return s
}

// Prev moves back one entry, wrapping to the end of a list of length n.
func (s State) Prev(n int) State {
	if !s.open || n <= 0 {
		return s
	}
	s.index = (s.index - 1 + n) % n
	return s
}

// ToggleUI flips caption/control visibility without moving.
func (s State) ToggleUI() State {
	if !s.open {
		return s
	}
	s.hidden = !s.hidden
	return s
}

// Reconcile repairs the index after the filtered list changed to length n.
func (s State) Reconcile(n int) State {
	if !s.open {
		return s
	}
	if n <= 0 {
		return s.Close()
	}
	if s.index >= n {
		s.index = n - 1
	}
	return s
}

// IsOpen reports whether the viewer is showing an artwork.
func (s State) IsOpen() bool {
	return s.open
}

// Index returns the active index; ok is false when closed.
func (s State) Index() (int, bool) {
	if !s.open {
		return 0, false
	}
	return s.index, true
}

// UIVisible reports whether captions and controls are shown.
func (s State) UIVisible() bool {
	return !s.hidden
}
