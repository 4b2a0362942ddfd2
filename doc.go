// Package macroui is a small retained-mode UI core for [Ebitengine] tools.
//
// It provides the node tree, hierarchical transforms, widget behaviors,
// event dispatch and a code-point string that the macro tracker's entry
// form is built from. The core draws nothing and reads no devices: the
// ebitenui package turns Ebitengine input into [Event] values and renders
// [Tree.Snapshot].
//
// # Quick start
//
//	tree := macroui.NewTree(macroui.Descriptor{
//		Size: macroui.Size{Width: 2, Height: 2},
//	})
//	box, _ := tree.AddChild(tree.Root(), macroui.Descriptor{
//		ID:       1,
//		Flags:    macroui.FlagOrderVertical,
//		Size:     macroui.Size{Width: 2, Height: 0.9},
//		Position: macroui.Vec2{Y: -1},
//	})
//	in, _ := tree.AddChild(box, macroui.Descriptor{
//		ID:       2,
//		Size:     macroui.Size{Width: 0.5, Height: 0.1},
//		Position: macroui.Vec2{X: 0.5, Y: 0.5},
//		Widget:   macroui.NewInput(""),
//	})
//
//	var pending macroui.EventStack
//	pending.Push(macroui.ClickEvent(tree.GlobalPosition(in)))
//	for _, ev := range pending.Drain() {
//		tree.Dispatch(ev)
//	}
//
// # Tree space
//
// Positions and sizes are in normalized units: x spans [-1, 1] across the
// window, y is up, and a node's position is the centre of its box relative
// to its parent's centre. Sizes passed to [Tree.SetSize] must lie in
// (0, [MaxExtent]] on both axes. [FillWidth] and [FillHeight] make an axis
// follow the direct parent's stored extent.
//
// # Nodes
//
// Nodes live in an arena and are addressed by [Handle]. Handles stay valid
// while the tree grows; [Tree.Destroy] makes a subtree's handles stale.
// Application ids ([ID]) are unique per tree and independent of storage.
//
// # Widgets and dispatch
//
// A node's payload is one of [Container], [Text], [Button] or [Input].
// [Tree.Dispatch] offers an input event to children, last added first,
// then to the node itself, and stops at the first widget that absorbs it.
// Widgets report application events through an [EventSink].
//
// [Ebitengine]: https://ebitengine.org
package macroui
