package labeling

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Bounds is a rectangular bounding box in pixel coordinates.
//
// (X1, Y1) is the top-left corner (inclusive); (X2, Y2) is the
// bottom-right corner (exclusive).
type Bounds struct {
	X1 int `json:"x1"` // Left edge (inclusive)
	Y1 int `json:"y1"` // Top edge (inclusive)
	X2 int `json:"x2"` // Right edge
	Y2 int `json:"y2"` // Bottom edge
}

// Region describes one resolved connected component.
type Region struct {
	// Label is the component's canonical label.
	Label Label `json:"label"`

	// Area is the component's pixel count.
	Area int `json:"area"`

	// Bounds is the bounding box enclosing the component.
	Bounds Bounds `json:"bounds"`

	// CentroidX and CentroidY locate the component's center of mass.
	CentroidX float64 `json:"centroid_x"`
	CentroidY float64 `json:"centroid_y"`
}

// Regions extracts per-component measurements from a completed labeling
// result, sorted by area (largest first; ties by label for stability).
func Regions(res *Result) []Region {
	labels := res.Labels
	byLabel := make(map[Label]int, res.Components)
	regions := make([]Region, 0, res.Components)

	scan := NewScanner(labels.Width(), labels.Height())
	for p, ok := scan.Next(); ok; p, ok = scan.Next() {
		l := labels.Lookup(p)
		if l == Background {
			continue
		}

		i, seen := byLabel[l]
		if !seen {
			i = len(regions)
			regions = append(regions, Region{
				Label:  l,
				Bounds: Bounds{X1: p.X, Y1: p.Y, X2: p.X + 1, Y2: p.Y + 1},
			})
			byLabel[l] = i
		}
		r := &regions[i]

		r.Area++
		if p.X < r.Bounds.X1 {
			r.Bounds.X1 = p.X
		}
		if p.X+1 > r.Bounds.X2 {
			r.Bounds.X2 = p.X + 1
		}
		if p.Y+1 > r.Bounds.Y2 {
			r.Bounds.Y2 = p.Y + 1
		}
		// Y1 needs no update: raster order visits a component's topmost
		// row first.
		r.CentroidX += float64(p.X)
		r.CentroidY += float64(p.Y)
	}

	for i := range regions {
		regions[i].CentroidX /= float64(regions[i].Area)
		regions[i].CentroidY /= float64(regions[i].Area)
	}

	sort.Slice(regions, func(i, j int) bool {
		if regions[i].Area != regions[j].Area {
			return regions[i].Area > regions[j].Area
		}
		return regions[i].Label < regions[j].Label
	})
	return regions
}

// Summary aggregates the areas of a set of regions.
type Summary struct {
	Count    int     `json:"count"`
	MeanArea float64 `json:"mean_area"`
	StdDev   float64 `json:"std_dev"`
	MinArea  int     `json:"min_area"`
	MaxArea  int     `json:"max_area"`
}

// Summarize computes area statistics over regions. An empty input yields
// the zero Summary.
func Summarize(regions []Region) Summary {
	if len(regions) == 0 {
		return Summary{}
	}

	areas := make([]float64, len(regions))
	minArea, maxArea := regions[0].Area, regions[0].Area
	for i, r := range regions {
		areas[i] = float64(r.Area)
		if r.Area < minArea {
			minArea = r.Area
		}
		if r.Area > maxArea {
			maxArea = r.Area
		}
	}

	s := Summary{
		Count:    len(regions),
		MeanArea: stat.Mean(areas, nil),
		MinArea:  minArea,
		MaxArea:  maxArea,
	}
	if len(areas) > 1 {
		s.StdDev = stat.StdDev(areas, nil)
	}
	return s
}
