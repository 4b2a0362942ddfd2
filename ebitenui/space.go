package ebitenui

import "github.com/phanxgames/macroui"

// Normalize maps a screen pixel to normalized view space for a w×h window:
// x spans [-1, 1] left to right and y spans [-h/w, h/w] bottom to top, so
// one unit is the same length on both axes.
func Normalize(sx, sy float64, w, h int) macroui.Vec2 {
	if w <= 0 || h <= 0 {
		return macroui.Vec2{}
	}
	half := float64(w) / 2
	return macroui.Vec2{
		X: sx/half - 1,
		Y: (float64(h)/2 - sy) / half,
	}
}

// Projection returns the view-to-screen matrix for a w×h window, the
// inverse of Normalize.
func Projection(w, h int) macroui.Affine {
	half := float64(w) / 2
	return macroui.Affine{half, 0, 0, -half, half, float64(h) / 2}
}

// ScreenToTree maps a screen pixel through the camera into tree space.
func ScreenToTree(sx, sy float64, w, h int, cam *Camera) macroui.Vec2 {
	p := Normalize(sx, sy, w, h)
	if cam == nil {
		return p
	}
	return cam.ViewToTree(p)
}
