package macroui

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"testing"
)

func newTestTree() *Tree {
	return NewTree(Descriptor{Size: Size{Width: 2, Height: 2}, Color: ColorWhite})
}

func TestNewTreeRoot(t *testing.T) {
	tr := newTestTree()
	root := tr.Root()
	if !tr.Valid(root) {
		t.Fatal("root should be valid")
	}
	if tr.ID(root) != RootID {
		t.Errorf("root id = %d, want %d", tr.ID(root), RootID)
	}
	if tr.Kind(root) != KindContainer {
		t.Errorf("root kind = %v, want container", tr.Kind(root))
	}
	if !tr.Parent(root).IsZero() {
		t.Errorf("root parent = %v, want zero", tr.Parent(root))
	}
	if tr.Len() != 1 {
		t.Errorf("Len = %d, want 1", tr.Len())
	}
}

func TestNewTreeForcesRootID(t *testing.T) {
	tr := NewTree(Descriptor{ID: 55})
	if tr.ID(tr.Root()) != RootID {
		t.Errorf("root id = %d, want %d", tr.ID(tr.Root()), RootID)
	}
	if _, ok := tr.FindByID(tr.Root(), 55); ok {
		t.Error("id 55 should not be registered")
	}
}

// Root 2x2, vertical container 2x0.9 at (0,-1), input at (0.5, 0.5) inside
// the container.
func TestConcreteScenarioInputGlobalPosition(t *testing.T) {
	tr := newTestTree()
	box, err := tr.AddChild(tr.Root(), Descriptor{
		ID:       1,
		Flags:    FlagOrderVertical,
		Size:     Size{Width: 2, Height: 0.9},
		Position: Vec2{0, -1},
	})
	if err != nil {
		t.Fatal(err)
	}
	in, err := tr.AddChild(box, Descriptor{
		ID:       2,
		Size:     Size{Width: 0.5, Height: 0.1},
		Position: Vec2{0.5, 0.5},
		Widget:   NewInput(""),
	})
	if err != nil {
		t.Fatal(err)
	}
	assertVec(t, "input global", tr.GlobalPosition(in), Vec2{0.5, -0.5})
	if tr.Kind(in) != KindInput {
		t.Errorf("kind = %v, want input", tr.Kind(in))
	}
}

func TestParentLinksSurviveGrowth(t *testing.T) {
	tr := newTestTree()
	type link struct{ child, parent Handle }
	var links []link

	// Build a 6-level tree with fan-out 3 so the arena reallocates many times.
	level := []Handle{tr.Root()}
	next := ID(1)
	for depth := 0; depth < 6; depth++ {
		var children []Handle
		for _, p := range level {
			for k := 0; k < 3; k++ {
				h, err := tr.AddChild(p, Descriptor{ID: next, Size: Size{Width: 0.1, Height: 0.1}})
				if err != nil {
					t.Fatal(err)
				}
				next++
				links = append(links, link{h, p})
				children = append(children, h)

				for _, l := range links {
					if tr.Parent(l.child) != l.parent {
						t.Fatalf("after id %d: parent of %v = %v, want %v", next-1, l.child, tr.Parent(l.child), l.parent)
					}
				}
			}
		}
		level = children
	}

	// Every child list contains exactly the handles whose parent it is.
	tr.Walk(tr.Root(), func(h Handle, _ int) bool {
		for _, c := range tr.Children(h) {
			if tr.Parent(c) != h {
				t.Errorf("child %v of %v has parent %v", c, h, tr.Parent(c))
			}
		}
		return true
	})
}

func TestGlobalPositionIsSumOfLocals(t *testing.T) {
	tr := newTestTree()
	var hs []Handle
	parent := tr.Root()
	for i := 1; i <= 8; i++ {
		h, err := tr.AddChild(parent, Descriptor{
			ID:       ID(i),
			Position: Vec2{float64(i) * 0.01, -float64(i) * 0.02},
			Size:     Size{Width: 0.5, Height: 0.5},
		})
		if err != nil {
			t.Fatal(err)
		}
		hs = append(hs, h)
		if i%2 == 0 {
			parent = h
		}
	}

	moves := []struct {
		idx int
		pos Vec2
	}{
		{0, Vec2{0.3, 0.3}},
		{3, Vec2{-0.1, 0.2}},
		{7, Vec2{0.05, 0}},
		{1, Vec2{0, -0.4}},
	}
	if err := tr.SetPosition(tr.Root(), Vec2{0.1, 0.1}); err != nil {
		t.Fatal(err)
	}
	for _, m := range moves {
		if err := tr.SetPosition(hs[m.idx], m.pos); err != nil {
			t.Fatal(err)
		}
		tr.Walk(tr.Root(), func(h Handle, _ int) bool {
			var sum Vec2
			for p := h; !p.IsZero(); p = tr.Parent(p) {
				sum = sum.Add(tr.Position(p))
			}
			assertVec(t, fmt.Sprintf("global %v", h), tr.GlobalPosition(h), sum)
			return true
		})
	}
}

func TestSetSizeValidation(t *testing.T) {
	tr := newTestTree()
	h, _ := tr.AddChild(tr.Root(), Descriptor{ID: 1, Size: Size{Width: 0.5, Height: 0.5}, Position: Vec2{0.1, 0.2}})
	before := tr.WorldMatrix(h)
	beforeLocal := tr.LocalMatrix(h)

	bad := []Size{
		{Width: 0, Height: 0.5},
		{Width: 0.5, Height: 0},
		{Width: -0.1, Height: 0.5},
		{Width: 1.02, Height: 0.5},
		{Width: 0.5, Height: 1.5},
		{Width: math.NaN(), Height: 0.5},
		{Width: 0.5, Height: math.Inf(1)},
	}
	for _, s := range bad {
		t.Run(fmt.Sprintf("%gx%g", s.Width, s.Height), func(t *testing.T) {
			err := tr.SetSize(h, s)
			if !errors.Is(err, ErrSizeOutOfRange) {
				t.Fatalf("err = %v, want ErrSizeOutOfRange", err)
			}
			assertMatrix(t, "world unchanged", tr.WorldMatrix(h), before)
			assertMatrix(t, "local unchanged", tr.LocalMatrix(h), beforeLocal)
			if tr.Size(h) != (Size{Width: 0.5, Height: 0.5}) {
				t.Errorf("size changed to %v", tr.Size(h))
			}
		})
	}

	for _, s := range []Size{{Width: MaxExtent, Height: MaxExtent}, {Width: 1e-6, Height: 0.3}} {
		if err := tr.SetSize(h, s); err != nil {
			t.Errorf("SetSize(%v) = %v, want nil", s, err)
		}
	}
}

func TestSetSizeIdempotent(t *testing.T) {
	tr := newTestTree()
	h, _ := tr.AddChild(tr.Root(), Descriptor{ID: 1, Size: Size{Width: 0.2, Height: 0.2}})
	c, _ := tr.AddChild(h, Descriptor{ID: 2, Size: Size{Fill: FillWidth, Height: 0.1}})

	s := Size{Width: 0.75, Height: 0.4}
	if err := tr.SetSize(h, s); err != nil {
		t.Fatal(err)
	}
	w1, l1, cw1 := tr.WorldMatrix(h), tr.LocalMatrix(h), tr.WorldMatrix(c)
	if err := tr.SetSize(h, s); err != nil {
		t.Fatal(err)
	}
	if tr.WorldMatrix(h) != w1 || tr.LocalMatrix(h) != l1 || tr.WorldMatrix(c) != cw1 {
		t.Error("second SetSize with the same value changed matrices")
	}
}

func TestAddChildErrors(t *testing.T) {
	tr := newTestTree()
	if _, err := tr.AddChild(tr.Root(), Descriptor{ID: 3}); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name   string
		parent Handle
		id     ID
		want   error
	}{
		{"reserved", tr.Root(), RootID, ErrReservedID},
		{"duplicate", tr.Root(), 3, ErrDuplicateID},
		{"zero parent", Handle{}, 4, ErrStaleHandle},
		{"out of range parent", Handle{index: 99, gen: 1}, 4, ErrStaleHandle},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tr.AddChild(tt.parent, Descriptor{ID: tt.id})
			if !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
			if !strings.HasPrefix(err.Error(), "macroui: ") {
				t.Errorf("error %q should carry the package prefix", err)
			}
		})
	}
	if tr.Len() != 2 {
		t.Errorf("Len = %d, want 2", tr.Len())
	}
}

func TestAnonymousNodesMayRepeat(t *testing.T) {
	tr := newTestTree()
	for i := 0; i < 3; i++ {
		if _, err := tr.AddChild(tr.Root(), Descriptor{ID: NoID}); err != nil {
			t.Fatalf("anonymous child %d: %v", i, err)
		}
	}
	if tr.Len() != 4 {
		t.Errorf("Len = %d, want 4", tr.Len())
	}
}

func TestAddChildByID(t *testing.T) {
	tr := newTestTree()
	form, _ := tr.AddChild(tr.Root(), Descriptor{ID: 10})

	h, placement, err := tr.AddChildByID(10, Descriptor{ID: 11})
	if err != nil {
		t.Fatal(err)
	}
	if placement != PlacedUnderParent || tr.Parent(h) != form {
		t.Errorf("placement = %v parent = %v, want under %v", placement, tr.Parent(h), form)
	}

	h, placement, err = tr.AddChildByID(999, Descriptor{ID: 12})
	if err != nil {
		t.Fatal(err)
	}
	if placement != PlacedUnderRoot || tr.Parent(h) != tr.Root() {
		t.Errorf("placement = %v parent = %v, want fallback to root", placement, tr.Parent(h))
	}

	_, placement, err = tr.AddChildByID(999, Descriptor{ID: 12})
	if !errors.Is(err, ErrDuplicateID) {
		t.Errorf("err = %v, want ErrDuplicateID", err)
	}
	if placement != PlacedUnderRoot {
		t.Errorf("placement on error = %v, want PlacedUnderRoot", placement)
	}
}

func TestFindByID(t *testing.T) {
	tr := newTestTree()
	a, _ := tr.AddChild(tr.Root(), Descriptor{ID: 1})
	b, _ := tr.AddChild(a, Descriptor{ID: 2})
	c, _ := tr.AddChild(tr.Root(), Descriptor{ID: 3})

	tests := []struct {
		name string
		from Handle
		id   ID
		want Handle
		ok   bool
	}{
		{"root", tr.Root(), RootID, tr.Root(), true},
		{"nested", tr.Root(), 2, b, true},
		{"sibling", tr.Root(), 3, c, true},
		{"from subtree", a, 2, b, true},
		{"outside subtree", a, 3, Handle{}, false},
		{"missing", tr.Root(), 42, Handle{}, false},
		{"no id matches from", c, NoID, c, true},
		{"stale from", Handle{index: 50, gen: 3}, 1, Handle{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tr.FindByID(tt.from, tt.id)
			if got != tt.want || ok != tt.ok {
				t.Errorf("FindByID = (%v, %v), want (%v, %v)", got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestDestroySubtree(t *testing.T) {
	tr := newTestTree()
	a, _ := tr.AddChild(tr.Root(), Descriptor{ID: 1})
	b, _ := tr.AddChild(a, Descriptor{ID: 2, Widget: NewInput("x")})
	c, _ := tr.AddChild(b, Descriptor{ID: 3})
	keep, _ := tr.AddChild(tr.Root(), Descriptor{ID: 4})

	if err := tr.Destroy(a); err != nil {
		t.Fatal(err)
	}
	for _, h := range []Handle{a, b, c} {
		if tr.Valid(h) {
			t.Errorf("%v should be stale", h)
		}
	}
	if !tr.Valid(keep) {
		t.Error("sibling should survive")
	}
	if got := tr.Children(tr.Root()); len(got) != 1 || got[0] != keep {
		t.Errorf("root children = %v, want [%v]", got, keep)
	}
	if tr.Len() != 2 {
		t.Errorf("Len = %d, want 2", tr.Len())
	}
	if _, ok := tr.FindByID(tr.Root(), 2); ok {
		t.Error("destroyed id should not be found")
	}

	// Ids of destroyed nodes may be reused.
	if _, err := tr.AddChild(tr.Root(), Descriptor{ID: 2}); err != nil {
		t.Errorf("reuse id: %v", err)
	}
}

func TestDestroyedHandleStaysStaleAfterSlotReuse(t *testing.T) {
	tr := newTestTree()
	old, _ := tr.AddChild(tr.Root(), Descriptor{ID: 1})
	if err := tr.Destroy(old); err != nil {
		t.Fatal(err)
	}
	fresh, _ := tr.AddChild(tr.Root(), Descriptor{ID: 1})
	if fresh.index != old.index {
		t.Fatalf("expected slot reuse, got index %d vs %d", fresh.index, old.index)
	}
	if tr.Valid(old) {
		t.Error("old handle should be stale after slot reuse")
	}

	if err := tr.SetPosition(old, Vec2{}); !errors.Is(err, ErrStaleHandle) {
		t.Errorf("SetPosition stale = %v", err)
	}
	if err := tr.SetSize(old, Size{Width: 0.5, Height: 0.5}); !errors.Is(err, ErrStaleHandle) {
		t.Errorf("SetSize stale = %v", err)
	}
	if err := tr.Destroy(old); !errors.Is(err, ErrStaleHandle) {
		t.Errorf("Destroy stale = %v", err)
	}
	if _, err := tr.AddChild(old, Descriptor{ID: 9}); !errors.Is(err, ErrStaleHandle) {
		t.Errorf("AddChild stale = %v", err)
	}
}

func TestAccessorOnStaleHandlePanics(t *testing.T) {
	tr := newTestTree()
	h, _ := tr.AddChild(tr.Root(), Descriptor{ID: 1})
	_ = tr.Destroy(h)

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic on stale handle")
		}
		if !strings.Contains(fmt.Sprint(r), "stale") {
			t.Errorf("panic message should mention 'stale', got: %v", r)
		}
	}()
	tr.GlobalPosition(h)
}

func TestDestroyRoot(t *testing.T) {
	tr := newTestTree()
	_, _ = tr.AddChild(tr.Root(), Descriptor{ID: 1})
	if err := tr.Destroy(tr.Root()); err != nil {
		t.Fatal(err)
	}
	if tr.Len() != 0 {
		t.Errorf("Len = %d, want 0", tr.Len())
	}
	if tr.Snapshot() != nil {
		t.Error("snapshot of empty tree should be nil")
	}
	if tr.Dispatch(ClickEvent(Vec2{})) {
		t.Error("dispatch on empty tree should not absorb")
	}
}

func TestIsHoveredStrict(t *testing.T) {
	tr := newTestTree()
	h, _ := tr.AddChild(tr.Root(), Descriptor{ID: 1, Position: Vec2{0.5, 0.5}, Size: Size{Width: 0.5, Height: 0.25}})

	tests := []struct {
		name string
		p    Vec2
		want bool
	}{
		{"center", Vec2{0.5, 0.5}, true},
		{"inside", Vec2{0.74, 0.62}, true},
		{"left edge", Vec2{0.25, 0.5}, false},
		{"right edge", Vec2{0.75, 0.5}, false},
		{"top edge", Vec2{0.5, 0.625}, false},
		{"bottom edge", Vec2{0.5, 0.375}, false},
		{"outside", Vec2{0, 0}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tr.IsHovered(h, tt.p); got != tt.want {
				t.Errorf("IsHovered(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
	if tr.IsHovered(Handle{}, Vec2{}) {
		t.Error("zero handle should never be hovered")
	}
}

func TestFlagsAndColor(t *testing.T) {
	tr := newTestTree()
	h, _ := tr.AddChild(tr.Root(), Descriptor{ID: 1, Flags: FlagWireframe, Color: Color{0.2, 0.2, 0.2, 1}})

	tr.SetFlags(h, FlagHidden|FlagFocused)
	if tr.Flags(h) != FlagWireframe|FlagHidden|FlagFocused {
		t.Errorf("flags = %b", tr.Flags(h))
	}
	tr.ClearFlags(h, FlagHidden)
	if tr.Flags(h)&FlagHidden != 0 {
		t.Error("hidden should be cleared")
	}

	c := Color{1, 0, 0, 1}
	tr.SetColor(h, c)
	if tr.Color(h) != c || tr.DisplayColor(h) != c {
		t.Errorf("color = %v display = %v", tr.Color(h), tr.DisplayColor(h))
	}
}

func TestWalkDepthAndSkip(t *testing.T) {
	tr := newTestTree()
	a, _ := tr.AddChild(tr.Root(), Descriptor{ID: 1})
	_, _ = tr.AddChild(a, Descriptor{ID: 2})
	_, _ = tr.AddChild(tr.Root(), Descriptor{ID: 3})

	var got []string
	tr.Walk(tr.Root(), func(h Handle, depth int) bool {
		got = append(got, fmt.Sprintf("%d@%d", tr.ID(h), depth))
		return tr.ID(h) != 1
	})
	want := "0@0 1@1 3@1"
	if strings.Join(got, " ") != want {
		t.Errorf("walk = %q, want %q", strings.Join(got, " "), want)
	}
}

func TestChildrenIsCopy(t *testing.T) {
	tr := newTestTree()
	_, _ = tr.AddChild(tr.Root(), Descriptor{ID: 1})
	kids := tr.Children(tr.Root())
	kids[0] = Handle{}
	if tr.Children(tr.Root())[0].IsZero() {
		t.Error("Children should return a copy")
	}
}
