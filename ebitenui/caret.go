package ebitenui

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// caretHalfPeriod is the fade time of one caret blink phase, in seconds.
const caretHalfPeriod = 0.5

// Caret fades the text cursor of the focused input in and out.
type Caret struct {
	tween  *gween.Tween
	fading bool
	alpha  float32
}

// NewCaret returns a fully visible caret that starts fading out.
func NewCaret() *Caret {
	c := &Caret{}
	c.Reset()
	return c
}

// Alpha returns the current caret opacity in [0, 1].
func (c *Caret) Alpha() float32 { return c.alpha }

// Reset makes the caret fully visible and restarts the blink. Typing calls
// it so the caret never hides while the user edits.
func (c *Caret) Reset() {
	c.tween = gween.New(1, 0, caretHalfPeriod, ease.InOutQuad)
	c.fading = true
	c.alpha = 1
}

// Update advances the blink by dt seconds.
func (c *Caret) Update(dt float32) {
	val, done := c.tween.Update(dt)
	c.alpha = val
	if !done {
		return
	}
	c.fading = !c.fading
	if c.fading {
		c.tween = gween.New(1, 0, caretHalfPeriod, ease.InOutQuad)
	} else {
		c.tween = gween.New(0, 1, caretHalfPeriod, ease.InOutQuad)
	}
}
