package imaging

// Bitmap is a Width×Height grid of boolean pixels: true is foreground,
// false is background. The zero coordinate is the top-left corner.
type Bitmap struct {
	Width  int
	Height int
	pixels []bool
}

// NewBitmap returns an all-background bitmap of the given dimensions.
func NewBitmap(width, height int) *Bitmap {
	return &Bitmap{
		Width:  width,
		Height: height,
		pixels: make([]bool, width*height),
	}
}

// At reports whether the pixel at (x, y) is foreground.
// Coordinates must be in bounds.
func (b *Bitmap) At(x, y int) bool {
	return b.pixels[y*b.Width+x]
}

// Set marks the pixel at (x, y) as foreground or background.
// Coordinates must be in bounds.
func (b *Bitmap) Set(x, y int, foreground bool) {
	b.pixels[y*b.Width+x] = foreground
}
