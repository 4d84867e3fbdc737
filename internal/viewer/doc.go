// Package viewer models the modal artwork viewer.
//
// # States
//
//	Closed ──Open(i)──> Open(i, ui=true)
//	Open(i, v) ──Next/Prev──> Open((i±1) mod n, v)
//	Open(i, v) ──ToggleUI──> Open(i, !v)
//	any ──Close──> Closed
//
// The index points into the current filtered list, not the full catalog.
// Whenever that list changes, callers run Reconcile so the index stays in
// range: an empty list closes the viewer, a shorter list clamps the index to
// the last entry.
//
// # Keyboard
//
// Transition maps Escape, ArrowRight, ArrowLeft and Space onto the state
// machine. Keyboard wraps it with listener registration: it is attached once
// when the view mounts, detached when it unmounts, and ignores keys while the
// viewer is closed.
//
// # Page marker
//
// While the viewer is open the page carries ModalOpenClass. The UI uses it to
// lock grid scrolling behind the modal. SyncMarker keeps a ClassList in step
// with the state.
package viewer
