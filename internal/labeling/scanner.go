package labeling

// Point is a pixel coordinate in a raster grid.
type Point struct {
	X int `json:"x"` // Horizontal position (0 = leftmost)
	Y int `json:"y"` // Vertical position (0 = topmost)
}

// Scanner enumerates the coordinates of a width×height grid in raster
// order: top-to-bottom, left-to-right. Both the labeling pass and the
// render pass walk the grid through a Scanner so they agree on ordering.
type Scanner struct {
	width, height int
	next          int
}

// NewScanner returns a scanner over a width×height grid.
func NewScanner(width, height int) *Scanner {
	return &Scanner{width: width, height: height}
}

// Next returns the next coordinate in raster order. The boolean is false
// once all width×height coordinates have been produced.
func (s *Scanner) Next() (Point, bool) {
	if s.width <= 0 || s.next >= s.width*s.height {
		return Point{}, false
	}
	p := Point{X: s.next % s.width, Y: s.next / s.width}
	s.next++
	return p, true
}
