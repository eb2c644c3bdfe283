// Package labeling finds the connected components of a binary pixel grid.
//
// The engine makes a single raster-order pass over the grid, resolving
// component membership through an equivalence map with retroactive merging.
// It never looks ahead: each foreground pixel is linked only to neighbors
// already visited, and labels that later turn out to denote the same
// component are merged after the fact.
//
// # Algorithm
//
// For each coordinate in raster order (top-to-bottom, left-to-right):
//
//  1. Background pixels are skipped; no label is ever bound to them.
//  2. For a foreground pixel, the labels of its causal neighbors — the
//     in-bounds neighbors already visited under raster order — are looked
//     up, background results discarded, and the rest deduplicated into a
//     candidate set.
//  3. An empty candidate set means the pixel is not (yet) connected to
//     anything seen so far: a fresh label is issued.
//  4. A non-empty set is merged into one canonical label, which the pixel
//     then joins.
//
// Labels are transient until the scan completes. A U-shaped region, for
// example, carries two distinct labels down its arms until the bottom row
// links them; only the finished map gives every pixel of a component the
// same label. Callers must therefore never interpret labels mid-scan.
//
// # Connectivity
//
// Connect4 links pixels through shared edges only; Connect8 also links
// through shared corners. The choice changes which regions are distinct:
// two pixels touching only diagonally form one component under Connect8
// and two under Connect4. Connectivity must be chosen explicitly — the
// zero value is rejected rather than silently defaulted.
//
// # Equivalence Resolution
//
// EquivalenceMap keeps the coordinate→label binding as a flat slice indexed
// by raster position and tracks label equivalence separately in a
// union-find forest with path compression and union by rank, so merges are
// near-constant amortized cost regardless of how many pixels already carry
// the superseded label.
package labeling
