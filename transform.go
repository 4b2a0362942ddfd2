package macroui

// Affine is a 2D affine matrix laid out as [a, b, c, d, tx, ty]:
//
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
type Affine [6]float64

// Identity is the identity affine matrix.
var Identity = Affine{1, 0, 0, 1, 0, 0}

// Translate returns a translation by (x, y).
func Translate(x, y float64) Affine {
	return Affine{1, 0, 0, 1, x, y}
}

// Scale returns a scale by (sx, sy) about the origin.
func Scale(sx, sy float64) Affine {
	return Affine{sx, 0, 0, sy, 0, 0}
}

// Mul returns m * c, so c is applied first.
func (m Affine) Mul(c Affine) Affine {
	return Affine{
		m[0]*c[0] + m[2]*c[1],
		m[1]*c[0] + m[3]*c[1],
		m[0]*c[2] + m[2]*c[3],
		m[1]*c[2] + m[3]*c[3],
		m[0]*c[4] + m[2]*c[5] + m[4],
		m[1]*c[4] + m[3]*c[5] + m[5],
	}
}

// Invert returns the inverse of m.
// Returns Identity if the matrix is singular (determinant ≈ 0).
func (m Affine) Invert() Affine {
	det := m[0]*m[3] - m[2]*m[1]
	if det > -1e-12 && det < 1e-12 {
		return Identity
	}
	invDet := 1.0 / det
	a := m[3] * invDet
	b := -m[1] * invDet
	c := -m[2] * invDet
	d := m[0] * invDet
	return Affine{
		a, b, c, d,
		-(a*m[4] + c*m[5]),
		-(b*m[4] + d*m[5]),
	}
}

// Apply transforms point p by m.
func (m Affine) Apply(p Vec2) Vec2 {
	return Vec2{m[0]*p.X + m[2]*p.Y + m[4], m[1]*p.X + m[3]*p.Y + m[5]}
}

// effectiveSize resolves fill flags against the direct parent's stored size.
// The root has no parent and always uses its own size.
func effectiveSize(own Size, parent *node) (w, h float64) {
	w, h = own.Width, own.Height
	if parent == nil {
		return w, h
	}
	if own.Fill&FillWidth != 0 {
		w = parent.size.Width
	}
	if own.Fill&FillHeight != 0 {
		h = parent.size.Height
	}
	return w, h
}

// updateMatrix recomputes h and its descendants in pre-order. Global
// position is the local position plus the parent's global position. The
// world matrix maps the unit square centred on the origin onto the node's
// box; the local matrix is relative to the parent's world matrix.
func (t *Tree) updateMatrix(h Handle) {
	n := t.node(h)
	var parent *node
	if !n.parent.IsZero() {
		parent = t.node(n.parent)
	}

	n.global = n.pos
	parentWorld := Identity
	if parent != nil {
		n.global = n.pos.Add(parent.global)
		parentWorld = parent.world
	}
	n.effW, n.effH = effectiveSize(n.size, parent)
	n.world = Translate(n.global.X, n.global.Y).Mul(Scale(n.effW, n.effH))
	n.local = parentWorld.Invert().Mul(n.world)

	for _, c := range n.children {
		t.updateMatrix(c)
	}
}
