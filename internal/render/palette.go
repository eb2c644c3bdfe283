package render

import (
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// goldenRatioConjugate is the hue step between consecutive colors.
// Stepping by this amount modulo 1 never revisits a hue and keeps
// consecutive colors well separated on the wheel.
const goldenRatioConjugate = 0.61803

// Fixed saturation and value: saturated enough to tell components apart,
// dark enough that none of them reads as background white.
const (
	sequenceSaturation = 0.7
	sequenceValue      = 0.8
)

// Sequence produces a deterministic, non-repeating series of RGB colors.
// The hue starts at zero and advances before each draw, so identical call
// order always yields identical colors.
type Sequence struct {
	hue float64
}

// NewSequence returns a sequence positioned before its first color.
func NewSequence() *Sequence {
	return &Sequence{}
}

// Next advances the hue and returns the next color in the series, fully
// opaque.
func (s *Sequence) Next() color.RGBA {
	s.hue += goldenRatioConjugate
	if s.hue >= 1 {
		s.hue--
	}
	r, g, b := colorful.Hsv(s.hue*360, sequenceSaturation, sequenceValue).RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}
