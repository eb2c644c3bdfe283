package labeling

import (
	"fmt"
	"log"
	"slices"

	"github.com/AxissXs/component-find/internal/imaging"
)

// Options configures a labeling pass.
type Options struct {
	// Connectivity selects 4- or 8-way adjacency. It must be set
	// explicitly; the zero value is rejected.
	Connectivity Connectivity

	// Trace, when non-nil, receives a line for every created label and
	// every merge of two or more. Useful when debugging neighbor
	// filtering; leave nil for quiet operation.
	Trace *log.Logger
}

// Result is the outcome of a completed labeling pass. The equivalence map
// is fully resolved: every coordinate of a connected component observes the
// same canonical label.
type Result struct {
	// Labels maps each coordinate to its component's canonical label,
	// or Background.
	Labels *EquivalenceMap

	// Components is the number of distinct components, background excluded.
	Components int
}

// FindComponents scans bm in raster order and labels its connected
// foreground regions.
//
// For each foreground pixel the canonical labels of its causal neighbors
// form the candidate set: if empty, the pixel starts a new component;
// otherwise the candidates are merged and the pixel joins the survivor.
// A solid row converges to one label through a chain of such merges even
// though distinct labels exist transiently mid-row.
//
// The only error paths are an invalid connectivity value and the internal
// ErrBackgroundMerge invariant; given a valid grid and connectivity, the
// scan always succeeds.
func FindComponents(bm *imaging.Bitmap, opts Options) (*Result, error) {
	if err := opts.Connectivity.validate(); err != nil {
		return nil, err
	}

	em := NewEquivalenceMap(bm.Width, bm.Height)
	neighbors := make([]Point, 0, 4)
	candidates := make([]Label, 0, 4)

	scan := NewScanner(bm.Width, bm.Height)
	for p, ok := scan.Next(); ok; p, ok = scan.Next() {
		if !bm.At(p.X, p.Y) {
			continue
		}

		neighbors = CausalNeighbors(neighbors[:0], p.X, p.Y, bm.Width, opts.Connectivity)
		candidates = candidates[:0]
		for _, n := range neighbors {
			l := em.Lookup(n)
			if l == Background || slices.Contains(candidates, l) {
				continue
			}
			candidates = append(candidates, l)
		}

		if len(candidates) == 0 {
			l := em.Create(p)
			if opts.Trace != nil {
				opts.Trace.Printf("created component %d at (%d,%d)", l, p.X, p.Y)
			}
			continue
		}

		canonical, err := em.Merge(candidates)
		if err != nil {
			return nil, fmt.Errorf("labeling (%d,%d): %w", p.X, p.Y, err)
		}
		if opts.Trace != nil && len(candidates) > 1 {
			opts.Trace.Printf("merged %v into %d at (%d,%d)", candidates, canonical, p.X, p.Y)
		}
		em.Assign(p, canonical)
	}

	return &Result{Labels: em, Components: em.DistinctCount()}, nil
}
