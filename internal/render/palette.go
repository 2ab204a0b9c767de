package render

import (
	"image/color"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// HueCycle is a background color whose hue drifts every tick. The foreground
// sits opposite the background on the color wheel.
type HueCycle struct {
	hue, sat, light float64
	step            float64
}

// NewHueCycle starts at base and shifts the hue by step degrees per Advance.
func NewHueCycle(base color.Color, step float64) *HueCycle {
	c, _ := colorful.MakeColor(base)
	h, s, l := c.Hsl()
	if math.IsNaN(h) {
		h = 0
	}
	return &HueCycle{hue: h, sat: s, light: l, step: step}
}

// DefaultHueCycle starts at pure red and shifts half a degree per tick.
func DefaultHueCycle() *HueCycle {
	return NewHueCycle(color.RGBA{R: 255, A: 255}, 0.5)
}

// Advance moves the hue forward by one step.
func (h *HueCycle) Advance() {
	h.hue = math.Mod(h.hue+h.step, 360)
	if h.hue < 0 {
		h.hue += 360
	}
}

// Hue returns the current background hue in degrees.
func (h *HueCycle) Hue() float64 { return h.hue }

// Background returns the current background color.
func (h *HueCycle) Background() color.RGBA {
	return toRGBA(colorful.Hsl(h.hue, h.sat, h.light))
}

// Foreground returns the color used for live cells.
func (h *HueCycle) Foreground() color.RGBA {
	return toRGBA(colorful.Hsl(math.Mod(h.hue+180, 360), h.sat, h.light))
}

func toRGBA(c colorful.Color) color.RGBA {
	r, g, b := c.Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}
