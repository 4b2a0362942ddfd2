package ebitenui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// fpsRefresh is how often the overlay text is redrawn, in seconds.
const fpsRefresh = 0.5

// fpsOverlay shows the measured frame and tick rates in the top-left corner.
type fpsOverlay struct {
	img     *ebiten.Image
	elapsed float64
	label   string
	dirty   bool
}

func newFPSOverlay() *fpsOverlay {
	return &fpsOverlay{label: fpsLabel(0, 0), dirty: true}
}

func fpsLabel(fps, tps float64) string {
	return fmt.Sprintf("FPS: %.1f\nTPS: %.1f", fps, tps)
}

func (o *fpsOverlay) update(dt float64) {
	o.elapsed += dt
	if o.elapsed < fpsRefresh {
		return
	}
	o.elapsed = 0
	o.label = fpsLabel(ebiten.ActualFPS(), ebiten.ActualTPS())
	o.dirty = true
}

func (o *fpsOverlay) draw(screen *ebiten.Image) {
	if o.img == nil {
		// 100x32 fits two debug-font lines.
		o.img = ebiten.NewImage(100, 32)
	}
	if o.dirty {
		o.img.Clear()
		o.img.Fill(color.RGBA{0, 0, 0, 128})
		ebitenutil.DebugPrint(o.img, o.label)
		o.dirty = false
	}
	screen.DrawImage(o.img, nil)
}
