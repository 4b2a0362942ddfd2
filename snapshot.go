package macroui

// DrawItem is an immutable copy of one visible node, as a renderer needs it.
type DrawItem struct {
	Handle Handle
	ID     ID
	Kind   Kind
	Flags  Flags
	// Depth is 0 for the root.
	Depth int
	// Parent is the index of the parent's item in the snapshot, -1 for the root.
	Parent int
	// Local is relative to the parent's world box. Under a zero-size
	// parent that box is singular and Local equals World; draw from World.
	Local  Affine
	World  Affine
	Width  float64
	Height float64
	Color  Color
	// Text is the content of Text and Input nodes.
	Text string
}

// Snapshot returns the visible nodes in pre-order. A hidden node suppresses
// its whole subtree. The result shares no memory with the tree and may be
// handed to another goroutine.
func (t *Tree) Snapshot() []DrawItem {
	if !t.Valid(t.root) {
		return nil
	}
	items := make([]DrawItem, 0, t.live)
	return t.snapshot(t.root, 0, -1, items)
}

func (t *Tree) snapshot(h Handle, depth, parent int, items []DrawItem) []DrawItem {
	n := t.node(h)
	if n.flags&FlagHidden != 0 {
		return items
	}
	item := DrawItem{
		Handle: h,
		ID:     n.id,
		Kind:   n.widget.Kind(),
		Flags:  n.flags,
		Depth:  depth,
		Parent: parent,
		Local:  n.local,
		World:  n.world,
		Width:  n.effW,
		Height: n.effH,
		Color:  n.display,
	}
	switch w := n.widget.(type) {
	case *Text:
		item.Text = w.Content.String()
	case *Input:
		item.Text = w.Content.String()
	}
	self := len(items)
	items = append(items, item)
	for _, c := range n.children {
		items = t.snapshot(c, depth+1, self, items)
	}
	return items
}
