package labeling

import "errors"

// Label identifies a component candidate. Labels are positive integers
// issued in increasing order starting at 1; Background (0) marks pixels
// that carry no label.
type Label int

// Background is the reserved sentinel for background pixels and unlabeled
// coordinates.
const Background Label = 0

// ErrBackgroundMerge reports a merge attempted with the background sentinel
// in its input set. This is an internal invariant violation — the caller's
// candidate filtering is broken — never the result of bad user input, and
// must be treated as fatal rather than ignored.
var ErrBackgroundMerge = errors.New("labeling: merge set contains the background sentinel")

// EquivalenceMap binds coordinates to labels and supports retroactive
// merging of labels that turn out to denote the same component.
//
// The coordinate binding is a flat slice indexed by raster position. Label
// equivalence lives in a separate union-find forest (parent pointers, path
// compression, union by rank), so a merge is near-constant amortized work
// instead of a rewrite of every binding that carries a superseded label.
// Lookup resolves a stored label to its canonical representative, so once
// the scan is complete every coordinate of a component observes the same
// value.
type EquivalenceMap struct {
	width, height int
	cells         []Label // coordinate → issued label; Background when unset
	parent        []Label // forest over issued labels; parent[Background] unused
	rank          []uint8
	live          int // distinct canonical labels bound to at least one coordinate
}

// NewEquivalenceMap returns an empty map for a width×height grid.
func NewEquivalenceMap(width, height int) *EquivalenceMap {
	return &EquivalenceMap{
		width:  width,
		height: height,
		cells:  make([]Label, width*height),
		parent: make([]Label, 1),
		rank:   make([]uint8, 1),
	}
}

// Width returns the grid width the map was created for.
func (m *EquivalenceMap) Width() int { return m.width }

// Height returns the grid height the map was created for.
func (m *EquivalenceMap) Height() int { return m.height }

func (m *EquivalenceMap) index(p Point) int { return p.Y*m.width + p.X }

// find resolves l to its root, compressing the path along the way.
func (m *EquivalenceMap) find(l Label) Label {
	root := l
	for m.parent[root] != root {
		root = m.parent[root]
	}
	for m.parent[l] != root {
		m.parent[l], l = root, m.parent[l]
	}
	return root
}

// Lookup returns the canonical label bound to p, or Background if p has no
// binding. The resolved value is written back to the cell, so repeated
// lookups after a merge settle to direct hits.
func (m *EquivalenceMap) Lookup(p Point) Label {
	i := m.index(p)
	l := m.cells[i]
	if l == Background {
		return Background
	}
	root := m.find(l)
	m.cells[i] = root
	return root
}

// Create issues the next unused label and binds it to p.
func (m *EquivalenceMap) Create(p Point) Label {
	l := Label(len(m.parent))
	m.parent = append(m.parent, l)
	m.rank = append(m.rank, 0)
	m.cells[m.index(p)] = l
	m.live++
	return l
}

// Assign binds an existing label to p. Merge rewrites only pre-existing
// bindings of superseded labels, so the pixel that triggered the merge must
// be bound explicitly through Assign.
func (m *EquivalenceMap) Assign(p Point, l Label) {
	m.cells[m.index(p)] = l
}

// Merge declares every label in set equivalent and returns the canonical
// representative. The representative is always drawn from the inputs (or
// their existing representatives), never synthesized, and the choice is
// deterministic: on equal rank the smaller label survives. Background in
// the set returns ErrBackgroundMerge.
func (m *EquivalenceMap) Merge(set []Label) (Label, error) {
	if len(set) == 0 {
		return Background, errors.New("labeling: merge of empty set")
	}
	for _, l := range set {
		if l == Background {
			return Background, ErrBackgroundMerge
		}
	}

	base := m.find(set[0])
	for _, l := range set[1:] {
		base = m.union(base, m.find(l))
	}
	return base, nil
}

// union links two roots and returns the survivor.
func (m *EquivalenceMap) union(a, b Label) Label {
	if a == b {
		return a
	}
	if m.rank[a] < m.rank[b] {
		a, b = b, a
	} else if m.rank[a] == m.rank[b] {
		if b < a {
			a, b = b, a
		}
		m.rank[a]++
	}
	m.parent[b] = a
	m.live--
	return a
}

// DistinctCount returns the number of distinct canonical labels currently
// bound to at least one coordinate. Background is never bound and never
// counted.
func (m *EquivalenceMap) DistinctCount() int { return m.live }

// LabelCount returns the number of labels ever issued, including labels
// since superseded by a merge.
func (m *EquivalenceMap) LabelCount() int { return len(m.parent) - 1 }
