package macroui

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrSizeOutOfRange is returned by SetSize when an extent is outside (0, MaxExtent].
	ErrSizeOutOfRange = errors.New("size out of range")
	// ErrDuplicateID is returned when a child reuses an id already in the tree.
	ErrDuplicateID = errors.New("duplicate node id")
	// ErrReservedID is returned when a child asks for RootID.
	ErrReservedID = errors.New("reserved node id")
	// ErrStaleHandle is returned when a handle refers to a destroyed node.
	ErrStaleHandle = errors.New("stale node handle")
)

// Handle refers to a node in a Tree. Handles stay valid while siblings are
// added; a destroyed node's handle goes stale and is never reused. The zero
// Handle refers to nothing.
type Handle struct {
	index uint32
	gen   uint32
}

// IsZero reports whether h is the zero Handle.
func (h Handle) IsZero() bool {
	return h.gen == 0
}

func (h Handle) String() string {
	if h.IsZero() {
		return "Handle(none)"
	}
	return fmt.Sprintf("Handle(%d.%d)", h.index, h.gen)
}

// Placement reports where AddChildByID attached a new node.
type Placement uint8

const (
	// PlacedUnderParent means the requested parent id was found.
	PlacedUnderParent Placement = iota
	// PlacedUnderRoot means the parent id was not found and the root was used.
	PlacedUnderRoot
)

// Descriptor holds everything needed to create a node. A nil Widget creates
// a container.
type Descriptor struct {
	ID       ID
	Flags    Flags
	Size     Size
	Position Vec2
	Color    Color
	Widget   Widget
}

// node is the per-node state stored in the arena.
type node struct {
	id       ID
	flags    Flags
	size     Size
	effW     float64
	effH     float64
	pos      Vec2
	global   Vec2
	local    Affine
	world    Affine
	color    Color
	display  Color
	widget   Widget
	parent   Handle
	children []Handle
}

// slot is one arena cell. gen is bumped every time the slot is freed so
// handles to the previous occupant go stale.
type slot struct {
	gen  uint32
	live bool
	n    node
}

// Tree is a retained-mode UI tree. Nodes live in an arena addressed by
// Handle; parent and child links are handles, so growth of the arena never
// invalidates them. A Tree must only be used from one goroutine.
type Tree struct {
	slots []slot
	free  []uint32
	ids   map[ID]Handle
	root  Handle
	live  int
	sink  EventSink
	debug bool
}

// NewTree creates a tree whose root is built from d. The root's id is
// always RootID.
func NewTree(d Descriptor) *Tree {
	t := &Tree{
		slots: make([]slot, 0, 16),
		ids:   make(map[ID]Handle),
	}
	d.ID = RootID
	t.root = t.alloc(d, Handle{})
	t.updateMatrix(t.root)
	return t
}

// alloc stores a new node and returns its handle. It does not link the node
// into its parent's child list.
func (t *Tree) alloc(d Descriptor, parent Handle) Handle {
	w := d.Widget
	if w == nil {
		w = NewContainer()
	}
	n := node{
		id:      d.ID,
		flags:   d.Flags,
		size:    d.Size,
		pos:     d.Position,
		color:   d.Color,
		display: d.Color,
		widget:  w,
		parent:  parent,
	}

	var h Handle
	if k := len(t.free); k > 0 {
		idx := t.free[k-1]
		t.free = t.free[:k-1]
		s := &t.slots[idx]
		s.live = true
		s.n = n
		h = Handle{index: idx, gen: s.gen}
	} else {
		t.slots = append(t.slots, slot{gen: 1, live: true, n: n})
		h = Handle{index: uint32(len(t.slots) - 1), gen: 1}
	}
	if d.ID != NoID {
		t.ids[d.ID] = h
	}
	t.live++
	return h
}

// lookup returns the node for h, or nil when h is zero or stale. The pointer
// is only valid until the next node is allocated.
func (t *Tree) lookup(h Handle) *node {
	if h.IsZero() || int(h.index) >= len(t.slots) {
		return nil
	}
	s := &t.slots[h.index]
	if !s.live || s.gen != h.gen {
		return nil
	}
	return &s.n
}

// node is lookup for callers that require a live handle.
func (t *Tree) node(h Handle) *node {
	n := t.lookup(h)
	if n == nil {
		panic("macroui: stale node handle")
	}
	return n
}

// Root returns the root handle.
func (t *Tree) Root() Handle {
	return t.root
}

// Valid reports whether h refers to a live node of t.
func (t *Tree) Valid(h Handle) bool {
	return t.lookup(h) != nil
}

// Len returns the number of live nodes, root included.
func (t *Tree) Len() int {
	return t.live
}

// AddChild creates a node from d as the last child of parent and computes
// its transforms. Existing handles remain valid.
func (t *Tree) AddChild(parent Handle, d Descriptor) (Handle, error) {
	if t.lookup(parent) == nil {
		return Handle{}, fmt.Errorf("macroui: add child to %v: %w", parent, ErrStaleHandle)
	}
	if d.ID == RootID {
		return Handle{}, fmt.Errorf("macroui: add child: id %d: %w", d.ID, ErrReservedID)
	}
	if d.ID != NoID {
		if _, taken := t.ids[d.ID]; taken {
			return Handle{}, fmt.Errorf("macroui: add child: id %d: %w", d.ID, ErrDuplicateID)
		}
	}

	h := t.alloc(d, parent)
	p := t.node(parent)
	p.children = append(p.children, h)
	t.updateMatrix(h)

	if t.debug {
		t.debugCheckDepth(h)
		t.debugCheckChildCount(parent)
	}
	return h, nil
}

// AddChildByID looks up parentID from the root and adds a child under it.
// When the id is not found the child is attached to the root and the
// returned Placement is PlacedUnderRoot.
func (t *Tree) AddChildByID(parentID ID, d Descriptor) (Handle, Placement, error) {
	parent, ok := t.FindByID(t.root, parentID)
	placement := PlacedUnderParent
	if !ok {
		parent = t.root
		placement = PlacedUnderRoot
		if t.debug {
			t.debugWarnf("parent id %d not found, placing id %d under root", parentID, d.ID)
		}
	}
	h, err := t.AddChild(parent, d)
	if err != nil {
		return Handle{}, placement, err
	}
	return h, placement, nil
}

// FindByID searches the subtree at from in depth-first pre-order and returns
// the first node whose id is id. NoID matches from itself.
func (t *Tree) FindByID(from Handle, id ID) (Handle, bool) {
	n := t.lookup(from)
	if n == nil {
		return Handle{}, false
	}
	if id == NoID || n.id == id {
		return from, true
	}
	for _, c := range n.children {
		if h, ok := t.FindByID(c, id); ok {
			return h, true
		}
	}
	return Handle{}, false
}

// SetPosition sets h's position relative to its parent and recomputes the
// transforms of h and its descendants.
func (t *Tree) SetPosition(h Handle, pos Vec2) error {
	n := t.lookup(h)
	if n == nil {
		return fmt.Errorf("macroui: set position on %v: %w", h, ErrStaleHandle)
	}
	n.pos = pos
	t.updateMatrix(h)
	return nil
}

// SetSize sets h's size and recomputes the transforms of h and its
// descendants. Both extents must lie in (0, MaxExtent]; otherwise nothing
// changes and ErrSizeOutOfRange is returned.
func (t *Tree) SetSize(h Handle, size Size) error {
	n := t.lookup(h)
	if n == nil {
		return fmt.Errorf("macroui: set size on %v: %w", h, ErrStaleHandle)
	}
	if !extentInRange(size.Width) || !extentInRange(size.Height) {
		return fmt.Errorf("macroui: set size %gx%g: %w", size.Width, size.Height, ErrSizeOutOfRange)
	}
	n.size = size
	t.updateMatrix(h)
	return nil
}

func extentInRange(v float64) bool {
	return !math.IsNaN(v) && v > 0 && v <= MaxExtent
}

// Destroy removes h and its whole subtree from the tree. Descendants are
// released before their ancestors. Destroying the root leaves an empty tree
// whose root handle is stale.
func (t *Tree) Destroy(h Handle) error {
	n := t.lookup(h)
	if n == nil {
		return fmt.Errorf("macroui: destroy %v: %w", h, ErrStaleHandle)
	}
	if p := t.lookup(n.parent); p != nil {
		removeHandle(&p.children, h)
	}
	t.release(h)
	return nil
}

// release frees h's subtree in post-order.
func (t *Tree) release(h Handle) {
	n := t.node(h)
	children := n.children
	for _, c := range children {
		t.release(c)
	}

	s := &t.slots[h.index]
	if s.n.id != NoID && t.ids[s.n.id] == h {
		delete(t.ids, s.n.id)
	}
	if s.n.widget != nil {
		s.n.widget.release()
	}
	s.n = node{}
	s.live = false
	s.gen++
	if s.gen == 0 {
		s.gen = 1
	}
	t.free = append(t.free, h.index)
	t.live--
}

func removeHandle(list *[]Handle, h Handle) {
	s := *list
	for i, c := range s {
		if c == h {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = Handle{}
			*list = s[:len(s)-1]
			return
		}
	}
}

// IsHovered reports whether point lies strictly inside h's box: the global
// position plus or minus half the effective size on each axis.
func (t *Tree) IsHovered(h Handle, point Vec2) bool {
	n := t.lookup(h)
	if n == nil {
		return false
	}
	hw, hh := n.effW/2, n.effH/2
	return point.X > n.global.X-hw && point.X < n.global.X+hw &&
		point.Y > n.global.Y-hh && point.Y < n.global.Y+hh
}

// --- Accessors. They panic on a stale handle. ---

// ID returns h's application id.
func (t *Tree) ID(h Handle) ID { return t.node(h).id }

// Kind returns h's widget variant.
func (t *Tree) Kind(h Handle) Kind { return t.node(h).widget.Kind() }

// Widget returns h's widget payload.
func (t *Tree) Widget(h Handle) Widget { return t.node(h).widget }

// Flags returns h's flag set.
func (t *Tree) Flags(h Handle) Flags { return t.node(h).flags }

// SetFlags sets the given flags on h.
func (t *Tree) SetFlags(h Handle, f Flags) { t.node(h).flags |= f }

// ClearFlags clears the given flags on h.
func (t *Tree) ClearFlags(h Handle, f Flags) { t.node(h).flags &^= f }

// Position returns h's position relative to its parent.
func (t *Tree) Position(h Handle) Vec2 { return t.node(h).pos }

// GlobalPosition returns h's accumulated position in tree space.
func (t *Tree) GlobalPosition(h Handle) Vec2 { return t.node(h).global }

// Size returns h's stored size.
func (t *Tree) Size(h Handle) Size { return t.node(h).size }

// EffectiveSize returns h's extent after fill flags are resolved.
func (t *Tree) EffectiveSize(h Handle) (float64, float64) {
	n := t.node(h)
	return n.effW, n.effH
}

// LocalMatrix returns h's matrix relative to its parent's world matrix.
func (t *Tree) LocalMatrix(h Handle) Affine { return t.node(h).local }

// WorldMatrix returns the matrix mapping the unit square onto h's box.
func (t *Tree) WorldMatrix(h Handle) Affine { return t.node(h).world }

// Color returns h's base color.
func (t *Tree) Color(h Handle) Color { return t.node(h).color }

// DisplayColor returns the color h is currently drawn with.
func (t *Tree) DisplayColor(h Handle) Color { return t.node(h).display }

// SetColor sets h's base and display color.
func (t *Tree) SetColor(h Handle, c Color) {
	n := t.node(h)
	n.color = c
	n.display = c
}

// Parent returns h's parent, or the zero Handle for the root.
func (t *Tree) Parent(h Handle) Handle { return t.node(h).parent }

// Children returns a copy of h's children in insertion order.
func (t *Tree) Children(h Handle) []Handle {
	c := t.node(h).children
	out := make([]Handle, len(c))
	copy(out, c)
	return out
}

// Walk visits the subtree at h in pre-order with each node's depth relative
// to h. Returning false from fn skips that node's children. fn must not
// add or destroy nodes.
func (t *Tree) Walk(h Handle, fn func(h Handle, depth int) bool) {
	t.walk(h, 0, fn)
}

func (t *Tree) walk(h Handle, depth int, fn func(Handle, int) bool) {
	if t.lookup(h) == nil {
		return
	}
	if !fn(h, depth) {
		return
	}
	for _, c := range t.node(h).children {
		t.walk(c, depth+1, fn)
	}
}

// SetSink installs the consumer of application events emitted by widgets.
// A nil sink discards them.
func (t *Tree) SetSink(s EventSink) {
	t.sink = s
}

func (t *Tree) emit(ev AppEvent) {
	if t.sink != nil {
		t.sink.Emit(ev)
	}
}

// SetDebugMode enables or disables debug warnings on stderr: fallback
// placement, deep trees and nodes with very many children.
func (t *Tree) SetDebugMode(enabled bool) {
	t.debug = enabled
}
