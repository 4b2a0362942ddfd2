package ebitenui

import (
	"bytes"
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/phanxgames/macroui"
	"golang.org/x/image/font/gofont/goregular"
)

const (
	// DefaultFontSize is the text size in pixels.
	DefaultFontSize = 28
	// wireWidth is the outline thickness of wireframe nodes, in pixels.
	wireWidth = 1
	// caretWidth is the caret thickness, in pixels.
	caretWidth = 2
	// textPadding is the gap between a box's left edge and its text, in pixels.
	textPadding = 6
)

// Renderer draws a [macroui.Tree] snapshot onto an Ebitengine image.
type Renderer struct {
	// Background clears the screen before drawing. Nil leaves it untouched.
	Background color.Color
	// TextColor is used for Text and Input content.
	TextColor macroui.Color

	face       *text.GoTextFace
	lineHeight float64
	white      *ebiten.Image
	caret      *Caret
	fps        *fpsOverlay
	showFPS    bool

	width, height int
	op            ebiten.DrawImageOptions
}

// NewRenderer creates a renderer using the Go Regular font at size pixels.
// Non-positive sizes fall back to DefaultFontSize.
func NewRenderer(size float64) (*Renderer, error) {
	if size <= 0 {
		size = DefaultFontSize
	}
	source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("ebitenui: load font: %w", err)
	}
	return &Renderer{
		Background: color.RGBA{0x1e, 0x1e, 0x24, 0xff},
		TextColor:  macroui.ColorWhite,
		face:       &text.GoTextFace{Source: source, Size: size},
		lineHeight: size * 1.2,
		caret:      NewCaret(),
		fps:        newFPSOverlay(),
		showFPS:    true,
	}, nil
}

// SetShowFPS toggles the frame rate overlay.
func (r *Renderer) SetShowFPS(show bool) { r.showFPS = show }

// Resize records the window size. It is driven by render-category events.
func (r *Renderer) Resize(w, h int) {
	r.width, r.height = w, h
}

// Size returns the last recorded window size.
func (r *Renderer) Size() (w, h int) { return r.width, r.height }

// Caret returns the caret drawn in focused inputs.
func (r *Renderer) Caret() *Caret { return r.caret }

// Update advances time-based effects by dt seconds.
func (r *Renderer) Update(dt float32) {
	r.caret.Update(dt)
	r.fps.update(float64(dt))
}

// Draw renders items, viewed through view, onto screen.
func (r *Renderer) Draw(screen *ebiten.Image, items []macroui.DrawItem, view macroui.Affine) {
	if r.Background != nil {
		screen.Fill(r.Background)
	}
	w, h := r.width, r.height
	if w <= 0 || h <= 0 {
		b := screen.Bounds()
		w, h = b.Dx(), b.Dy()
	}
	screenM := Projection(w, h).Mul(view)

	for i := range items {
		it := &items[i]
		x0, y0, x1, y1 := itemRect(screenM, it)

		if it.Color.A > 0 {
			if it.Flags&macroui.FlagWireframe != 0 {
				r.strokeRect(screen, x0, y0, x1, y1, it.Color)
			} else {
				r.fillRect(screen, x0, y0, x1-x0, y1-y0, it.Color, 1)
			}
		}

		switch it.Kind {
		case macroui.KindText, macroui.KindInput:
			r.drawText(screen, it, x0, y0, y1)
		}
	}

	if r.showFPS {
		r.fps.draw(screen)
	}
}

func (r *Renderer) drawText(screen *ebiten.Image, it *macroui.DrawItem, x0, y0, y1 float64) {
	x := x0 + textPadding
	cy := (y0 + y1) / 2

	if it.Text != "" {
		op := &text.DrawOptions{}
		op.GeoM.Translate(x, cy)
		op.ColorScale.Scale(
			float32(r.TextColor.R),
			float32(r.TextColor.G),
			float32(r.TextColor.B),
			float32(r.TextColor.A),
		)
		op.LineSpacing = r.lineHeight
		op.SecondaryAlign = text.AlignCenter
		text.Draw(screen, it.Text, r.face, op)
	}

	if it.Kind == macroui.KindInput && it.Flags&macroui.FlagFocused != 0 {
		tw, _ := text.Measure(it.Text, r.face, r.lineHeight)
		r.fillRect(screen, x+tw, cy-r.face.Size/2, caretWidth, r.face.Size, r.TextColor, r.caret.Alpha())
	}
}

// itemRect returns the screen bounds of it under screenM. Locals do not
// compose back to World under a zero-size ancestor, so World is used as is.
func itemRect(screenM macroui.Affine, it *macroui.DrawItem) (x0, y0, x1, y1 float64) {
	return screenRect(screenM.Mul(it.World))
}

// screenRect returns the axis-aligned screen bounds of the unit box
// centred on the origin under m.
func screenRect(m macroui.Affine) (x0, y0, x1, y1 float64) {
	a := m.Apply(macroui.Vec2{X: -0.5, Y: -0.5})
	b := m.Apply(macroui.Vec2{X: 0.5, Y: 0.5})
	return math.Min(a.X, b.X), math.Min(a.Y, b.Y), math.Max(a.X, b.X), math.Max(a.Y, b.Y)
}

// affineGeoM converts a [6]float64 transform into an ebiten.GeoM.
func affineGeoM(t macroui.Affine) ebiten.GeoM {
	var m ebiten.GeoM
	m.SetElement(0, 0, t[0])
	m.SetElement(1, 0, t[1])
	m.SetElement(0, 1, t[2])
	m.SetElement(1, 1, t[3])
	m.SetElement(0, 2, t[4])
	m.SetElement(1, 2, t[5])
	return m
}

func (r *Renderer) fillRect(dst *ebiten.Image, x, y, w, h float64, c macroui.Color, alpha float32) {
	if w <= 0 || h <= 0 {
		return
	}
	r.op.GeoM.Reset()
	r.op.GeoM.Concat(affineGeoM(macroui.Translate(x, y).Mul(macroui.Scale(w, h))))
	r.op.ColorScale.Reset()
	a := float32(c.A) * alpha
	r.op.ColorScale.Scale(float32(c.R)*a, float32(c.G)*a, float32(c.B)*a, a)
	dst.DrawImage(r.whitePixel(), &r.op)
}

func (r *Renderer) strokeRect(dst *ebiten.Image, x0, y0, x1, y1 float64, c macroui.Color) {
	w, h := x1-x0, y1-y0
	r.fillRect(dst, x0, y0, w, wireWidth, c, 1)
	r.fillRect(dst, x0, y1-wireWidth, w, wireWidth, c, 1)
	r.fillRect(dst, x0, y0, wireWidth, h, c, 1)
	r.fillRect(dst, x1-wireWidth, y0, wireWidth, h, c, 1)
}

// whitePixel returns a lazily-initialized 1x1 white image.
func (r *Renderer) whitePixel() *ebiten.Image {
	if r.white == nil {
		r.white = ebiten.NewImage(1, 1)
		r.white.Fill(color.RGBA{255, 255, 255, 255})
	}
	return r.white
}
