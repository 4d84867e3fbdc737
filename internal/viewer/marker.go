package viewer

import "sort"

// ModalOpenClass marks the page while the viewer is open.
const ModalOpenClass = "modal-open"

// ClassList is a set of page-level class names.
type ClassList map[string]struct{}

// Toggle adds name when on is true and removes it otherwise.
func (cl ClassList) Toggle(name string, on bool) {
	if on {
		cl[name] = struct{}{}
		return
	}
	delete(cl, name)
}

// Remove drops name.
func (cl ClassList) Remove(name string) {
	delete(cl, name)
}

// Has reports membership.
func (cl ClassList) Has(name string) bool {
	_, ok := cl[name]
	return ok
}

// Names returns the classes in sorted order.
func (cl ClassList) Names() []string {
	out := make([]string, 0, len(cl))
	for name := range cl {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// SyncMarker applies ModalOpenClass exactly while s is open.
func SyncMarker(cl ClassList, s State) {
	cl.Toggle(ModalOpenClass, s.IsOpen())
}
