package viewer

// Key is a key the viewer reacts to.
type Key int

const (
	KeyNone Key = iota
	KeyEscape
	KeyArrowRight
	KeyArrowLeft
	KeySpace
)

func (k Key) String() string {
	switch k {
	case KeyEscape:
		return "Escape"
	case KeyArrowRight:
		return "ArrowRight"
	case KeyArrowLeft:
		return "ArrowLeft"
	case KeySpace:
		return "Space"
	default:
		return "None"
	}
}

// Transition applies key k to s for a filtered list of length n. handled is
// true when the key was consumed and its default action must be suppressed.
func Transition(s State, k Key, n int) (next State, handled bool) {
	if !s.open {
		return s, false
	}
	switch k {
	case KeyEscape:
		return s.Close(), true
	case KeyArrowRight:
		return s.Next(n), true
	case KeyArrowLeft:
		return s.Prev(n), true
	case KeySpace:
		return s.ToggleUI(), true
	default:
		return s, false
	}
}

// Keyboard is the page-level key listener for the viewer. Registration is
// global but keys are ignored while the viewer is closed.
type Keyboard struct {
	attached bool
}

// Attach registers the listener. It returns Detach for symmetric cleanup.
func (k *Keyboard) Attach() (detach func()) {
	k.attached = true
	return k.Detach
}

// Detach removes the listener. Calling it twice is harmless.
func (k *Keyboard) Detach() {
	k.attached = false
}

// Attached reports whether the listener is registered.
func (k *Keyboard) Attached() bool {
	return k.attached
}

// Handle routes key through Transition when attached.
func (k *Keyboard) Handle(s State, key Key, n int) (State, bool) {
	if !k.attached {
		return s, false
	}
	return Transition(s, key, n)
}
