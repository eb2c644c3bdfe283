package render

import (
	"image"
	"image/color"

	"github.com/AxissXs/component-find/internal/labeling"
)

// background is the fixed color for unlabeled pixels.
var background = color.RGBA{A: 255}

// Components renders a completed labeling result as an RGB image of the
// same dimensions.
//
// The pass walks the grid in raster order; each canonical label consumes
// the next sequence color the first time it appears, so the palette
// assignment is reproducible. Background pixels are always (0, 0, 0).
//
// The result must come from a finished scan. Mid-scan labels may still be
// aliases that a later merge would collapse, and coloring them would split
// one component across several colors.
func Components(res *labeling.Result) *image.RGBA {
	labels := res.Labels
	out := image.NewRGBA(image.Rect(0, 0, labels.Width(), labels.Height()))

	seq := NewSequence()
	assigned := make(map[labeling.Label]color.RGBA, res.Components)

	scan := labeling.NewScanner(labels.Width(), labels.Height())
	for p, ok := scan.Next(); ok; p, ok = scan.Next() {
		l := labels.Lookup(p)
		if l == labeling.Background {
			out.SetRGBA(p.X, p.Y, background)
			continue
		}

		c, ok := assigned[l]
		if !ok {
			c = seq.Next()
			assigned[l] = c
		}
		out.SetRGBA(p.X, p.Y, c)
	}
	return out
}
