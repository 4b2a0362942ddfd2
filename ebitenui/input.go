package ebitenui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/phanxgames/macroui"
)

// Key repeat timing in ticks at 60 TPS; scaled to the actual TPS.
const (
	repeatDelayTicks    = 30
	repeatIntervalTicks = 3
)

// keyMap lists the keys forwarded to the tree, in polling order.
var keyMap = []struct {
	ebiten ebiten.Key
	key    macroui.Key
}{
	{ebiten.KeyBackspace, macroui.KeyBackspace},
	{ebiten.KeyEnter, macroui.KeyEnter},
	{ebiten.KeyEscape, macroui.KeyEscape},
	{ebiten.KeyTab, macroui.KeyTab},
	{ebiten.KeyHome, macroui.KeyHome},
	{ebiten.KeyDelete, macroui.KeyDelete},
	{ebiten.KeyArrowLeft, macroui.KeyLeft},
	{ebiten.KeyArrowRight, macroui.KeyRight},
	{ebiten.KeyArrowUp, macroui.KeyUp},
	{ebiten.KeyArrowDown, macroui.KeyDown},
}

// repeatAction classifies a key held for d ticks. The first tick is a press;
// after delay ticks it repeats every interval ticks.
func repeatAction(d, delay, interval int) (macroui.Action, bool) {
	switch {
	case d == 1:
		return macroui.ActionPress, true
	case d <= delay || interval <= 0:
		return 0, false
	case (d-delay)%interval == 0:
		return macroui.ActionRepeat, true
	}
	return 0, false
}

// scaleTicks converts a 60 TPS tick count to tps.
func scaleTicks(n, tps int) int {
	if tps <= 0 {
		return n
	}
	s := n * tps / 60
	if s < 1 {
		s = 1
	}
	return s
}

// Input polls Ebitengine devices once per tick and turns them into tree
// events. The right mouse button drags the camera.
type Input struct {
	camera *Camera

	width, height int

	cursorX, cursorY int
	hasCursor        bool
	dragX, dragY     int

	chars []rune
}

// NewInput creates an input poller that pans cam. cam may be nil.
func NewInput(cam *Camera) *Input {
	return &Input{camera: cam}
}

// SetScreenSize sets the window size used to normalize cursor positions.
func (in *Input) SetScreenSize(w, h int) {
	in.width, in.height = w, h
}

// Poll pushes the events produced since the previous tick onto dst.
func (in *Input) Poll(dst *macroui.EventStack) {
	x, y := ebiten.CursorPosition()
	p := ScreenToTree(float64(x), float64(y), in.width, in.height, in.camera)

	if !in.hasCursor || x != in.cursorX || y != in.cursorY {
		in.cursorX, in.cursorY = x, y
		in.hasCursor = true
		dst.Push(macroui.MouseMoveEvent(p))
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		dst.Push(macroui.ClickEvent(p))
	}

	in.pollDrag(x, y)

	in.chars = ebiten.AppendInputChars(in.chars[:0])
	for _, r := range in.chars {
		dst.Push(macroui.CharEvent(r))
	}

	tps := ebiten.TPS()
	delay := scaleTicks(repeatDelayTicks, tps)
	interval := scaleTicks(repeatIntervalTicks, tps)
	for _, k := range keyMap {
		if inpututil.IsKeyJustReleased(k.ebiten) {
			dst.Push(macroui.KeyEvent(k.key, macroui.ActionRelease))
			continue
		}
		if a, ok := repeatAction(inpututil.KeyPressDuration(k.ebiten), delay, interval); ok {
			dst.Push(macroui.KeyEvent(k.key, a))
		}
	}
}

func (in *Input) pollDrag(x, y int) {
	if in.camera == nil {
		return
	}
	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight):
		in.dragX, in.dragY = x, y
		in.camera.BeginDrag()
	case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonRight):
		in.camera.EndDrag()
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight):
		in.camera.DragBy(float64(x-in.dragX), float64(y-in.dragY))
	}
}
