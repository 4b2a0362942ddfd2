package macroui

// Dispatch offers an input event to the tree and reports whether a widget
// absorbed it. Each node offers the event to its children, last added
// first, before handling it itself; the first widget that absorbs it ends
// the walk. Events outside CategoryInput reach no widget.
//
// FlagHidden is not only a drawing flag here: a hidden node and its whole
// subtree are skipped, so hidden widgets take no input either.
//
// Handlers may add or destroy nodes. Nodes destroyed during the walk are
// skipped.
func (t *Tree) Dispatch(ev Event) bool {
	if ev.Category != CategoryInput {
		return false
	}
	return t.dispatch(t.root, ev)
}

func (t *Tree) dispatch(h Handle, ev Event) bool {
	n := t.lookup(h)
	if n == nil || n.flags&FlagHidden != 0 {
		return false
	}

	// Copy the child list: handlers may append to or remove from it.
	kids := make([]Handle, len(n.children))
	copy(kids, n.children)
	for i := len(kids) - 1; i >= 0; i-- {
		if t.dispatch(kids[i], ev) {
			return true
		}
	}

	n = t.lookup(h)
	if n == nil {
		return false
	}
	return n.widget.handle(t, h, ev)
}
