// Package ebitenui runs a [macroui.Tree] inside an Ebitengine window.
//
// [Game] polls the mouse and keyboard into a [macroui.EventStack], drains it
// into the tree every tick, and draws the tree's snapshot with a white-pixel
// quad per box and Go Regular text. Window pixels map to tree space with
// [Normalize]: x spans [-1, 1] and y points up. The right mouse button pans
// the [Camera], Home recentres it and Escape closes the window.
package ebitenui
