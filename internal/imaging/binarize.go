package imaging

import (
	"image"

	"github.com/anthonynsimon/bild/segment"
)

// Binarize converts an image into a foreground/background bitmap.
//
// The image is converted to grayscale and thresholded: pixels whose
// grayscale value is at or above level become foreground, the rest become
// background. A level of 128 splits the nominal 8-bit range in half, which
// matches the common "convert to 1-bit" behavior of image editors.
//
// The returned bitmap has the image's pixel dimensions with its origin
// normalized to (0, 0).
func Binarize(img image.Image, level uint8) *Bitmap {
	gray := segment.Threshold(img, level)

	bounds := gray.Bounds()
	bm := NewBitmap(bounds.Dx(), bounds.Dy())
	for y := 0; y < bm.Height; y++ {
		for x := 0; x < bm.Width; x++ {
			if gray.GrayAt(bounds.Min.X+x, bounds.Min.Y+y).Y > 0 {
				bm.Set(x, y, true)
			}
		}
	}
	return bm
}
