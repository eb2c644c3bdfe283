package labeling

import "fmt"

// Connectivity selects which pixels count as adjacent when forming
// components.
type Connectivity int

const (
	// Connect4 treats only horizontal and vertical neighbors as adjacent.
	Connect4 Connectivity = 4

	// Connect8 additionally treats the four diagonal neighbors as adjacent.
	Connect8 Connectivity = 8
)

func (c Connectivity) validate() error {
	switch c {
	case Connect4, Connect8:
		return nil
	}
	return fmt.Errorf("connectivity must be 4 or 8, got %d", int(c))
}

// CausalNeighbors appends to dst the in-bounds neighbors of (x, y) that
// precede it in raster order, and returns the extended slice.
//
// For Connect8 these are up-left, up, up-right, and left. The up-right
// neighbor is load-bearing: a region that touches the current pixel only
// diagonally from the upper right would otherwise never be linked to it.
// For Connect4 only up and left qualify.
//
// (x, y) must itself be in bounds; causal neighbors can never exceed the
// grid height, so only the width is needed to clip up-right.
func CausalNeighbors(dst []Point, x, y, width int, conn Connectivity) []Point {
	if y > 0 {
		if conn == Connect8 && x > 0 {
			dst = append(dst, Point{X: x - 1, Y: y - 1})
		}
		dst = append(dst, Point{X: x, Y: y - 1})
		if conn == Connect8 && x+1 < width {
			dst = append(dst, Point{X: x + 1, Y: y - 1})
		}
	}
	if x > 0 {
		dst = append(dst, Point{X: x - 1, Y: y})
	}
	return dst
}
