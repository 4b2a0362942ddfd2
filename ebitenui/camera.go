package ebitenui

import (
	"github.com/phanxgames/macroui"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// DefaultPanSpeed is the camera offset per dragged pixel, in tree units.
const DefaultPanSpeed = 0.001

// scrollAnim holds active scroll-to tweens for camera X and Y.
type scrollAnim struct {
	tweenX *gween.Tween
	tweenY *gween.Tween
	doneX  bool
	doneY  bool
}

// Camera offsets the whole tree on screen. X and Y chase a target set by
// dragging; ScrollTo animates both directly.
type Camera struct {
	X, Y float64
	// Zoom scales the view about the window centre. 1 is no zoom.
	Zoom float64
	// Lerp is the fraction of the remaining distance to the target covered
	// per second of update time.
	Lerp float64
	// PanSpeed is the offset per dragged screen pixel.
	PanSpeed float64

	targetX, targetY float64
	anchorX, anchorY float64
	dragging         bool

	scrollTween *scrollAnim
}

// NewCamera returns a centred camera with no zoom.
func NewCamera() *Camera {
	return &Camera{Zoom: 1, Lerp: 1, PanSpeed: DefaultPanSpeed}
}

// Target returns the position the camera is moving toward.
func (c *Camera) Target() (x, y float64) { return c.targetX, c.targetY }

// Dragging reports whether a drag is in progress.
func (c *Camera) Dragging() bool { return c.dragging }

// BeginDrag anchors a drag at the current target.
func (c *Camera) BeginDrag() {
	c.dragging = true
	c.anchorX, c.anchorY = c.targetX, c.targetY
	c.scrollTween = nil
}

// DragBy moves the target by a screen-space drag of (dx, dy) pixels
// measured from where the drag began. Screen y grows downward.
func (c *Camera) DragBy(dx, dy float64) {
	if !c.dragging {
		return
	}
	c.targetX = c.anchorX + dx*c.PanSpeed
	c.targetY = c.anchorY - dy*c.PanSpeed
}

// EndDrag finishes a drag. The camera keeps easing toward the last target.
func (c *Camera) EndDrag() { c.dragging = false }

// ScrollTo animates the camera to (x, y) over duration seconds.
func (c *Camera) ScrollTo(x, y float64, duration float32, easeFn ease.TweenFunc) {
	c.scrollTween = &scrollAnim{
		tweenX: gween.New(float32(c.X), float32(x), duration, easeFn),
		tweenY: gween.New(float32(c.Y), float32(y), duration, easeFn),
	}
	c.targetX, c.targetY = x, y
}

// Update advances the scroll animation or the chase toward the target.
func (c *Camera) Update(dt float32) {
	if c.scrollTween != nil {
		if !c.scrollTween.doneX {
			val, done := c.scrollTween.tweenX.Update(dt)
			c.X = float64(val)
			c.scrollTween.doneX = done
		}
		if !c.scrollTween.doneY {
			val, done := c.scrollTween.tweenY.Update(dt)
			c.Y = float64(val)
			c.scrollTween.doneY = done
		}
		if c.scrollTween.doneX && c.scrollTween.doneY {
			c.scrollTween = nil
			c.X, c.Y = c.targetX, c.targetY
		}
		return
	}

	f := c.Lerp * float64(dt)
	if f > 1 {
		f = 1
	}
	c.X += (c.targetX - c.X) * f
	c.Y += (c.targetY - c.Y) * f
}

// View returns the tree-to-view matrix.
func (c *Camera) View() macroui.Affine {
	return macroui.Translate(c.X, c.Y).Mul(macroui.Scale(c.Zoom, c.Zoom))
}

// ViewToTree maps a point in normalized view space back into tree space.
func (c *Camera) ViewToTree(p macroui.Vec2) macroui.Vec2 {
	return c.View().Invert().Apply(p)
}
