package labeling

import (
	"bytes"
	"log"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AxissXs/component-find/internal/imaging"
)

// parseBitmap builds a bitmap from rows of '#' (foreground) and '.'
// (background).
func parseBitmap(t *testing.T, rows ...string) *imaging.Bitmap {
	t.Helper()

	height := len(rows)
	width := 0
	if height > 0 {
		width = len(rows[0])
	}

	bm := imaging.NewBitmap(width, height)
	for y, row := range rows {
		require.Len(t, row, width, "ragged test grid")
		for x, c := range row {
			bm.Set(x, y, c == '#')
		}
	}
	return bm
}

// referencePartition is an independent flood-fill implementation used to
// cross-check the scan-order labeler. It returns a component id per
// coordinate (-1 for background) and the component count.
func referencePartition(bm *imaging.Bitmap, conn Connectivity) ([]int, int) {
	offsets := [][2]int{{0, -1}, {-1, 0}, {1, 0}, {0, 1}}
	if conn == Connect8 {
		offsets = append(offsets,
			[2]int{-1, -1}, [2]int{1, -1}, [2]int{-1, 1}, [2]int{1, 1})
	}

	ids := make([]int, bm.Width*bm.Height)
	for i := range ids {
		ids[i] = -1
	}

	count := 0
	for y := 0; y < bm.Height; y++ {
		for x := 0; x < bm.Width; x++ {
			if !bm.At(x, y) || ids[y*bm.Width+x] >= 0 {
				continue
			}
			stack := []Point{{X: x, Y: y}}
			ids[y*bm.Width+x] = count
			for len(stack) > 0 {
				p := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				for _, d := range offsets {
					nx, ny := p.X+d[0], p.Y+d[1]
					if nx < 0 || nx >= bm.Width || ny < 0 || ny >= bm.Height {
						continue
					}
					if !bm.At(nx, ny) || ids[ny*bm.Width+nx] >= 0 {
						continue
					}
					ids[ny*bm.Width+nx] = count
					stack = append(stack, Point{X: nx, Y: ny})
				}
			}
			count++
		}
	}
	return ids, count
}

func mustLabel(t *testing.T, bm *imaging.Bitmap, conn Connectivity) *Result {
	t.Helper()
	res, err := FindComponents(bm, Options{Connectivity: conn})
	require.NoError(t, err)
	return res
}

func TestFindComponents_RequiresExplicitConnectivity(t *testing.T) {
	bm := imaging.NewBitmap(2, 2)

	_, err := FindComponents(bm, Options{})
	require.Error(t, err, "zero connectivity must be rejected, not defaulted")

	_, err = FindComponents(bm, Options{Connectivity: 6})
	require.Error(t, err)
}

func TestFindComponents_AllBackground(t *testing.T) {
	bm := parseBitmap(t,
		"...",
		"...",
		"...",
	)
	res := mustLabel(t, bm, Connect8)

	assert.Equal(t, 0, res.Components)
	assert.Equal(t, 0, res.Labels.LabelCount())
	scan := NewScanner(3, 3)
	for p, ok := scan.Next(); ok; p, ok = scan.Next() {
		assert.Equal(t, Background, res.Labels.Lookup(p))
	}
}

func TestFindComponents_SinglePixel(t *testing.T) {
	bm := parseBitmap(t,
		"...",
		".#.",
		"...",
	)
	res := mustLabel(t, bm, Connect8)

	assert.Equal(t, 1, res.Components)
	assert.Equal(t, Label(1), res.Labels.Lookup(Point{X: 1, Y: 1}))
	assert.Equal(t, Background, res.Labels.Lookup(Point{X: 0, Y: 0}))
}

func TestFindComponents_CornersAndCenter(t *testing.T) {
	// Each corner touches the center diagonally: one component under
	// 8-connectivity, five isolated pixels under 4-connectivity.
	bm := parseBitmap(t,
		"#.#",
		".#.",
		"#.#",
	)

	res8 := mustLabel(t, bm, Connect8)
	assert.Equal(t, 1, res8.Components)

	res4 := mustLabel(t, bm, Connect4)
	assert.Equal(t, 5, res4.Components)
}

func TestFindComponents_DistantDiagonalCorners(t *testing.T) {
	// (0,0) and (2,2) are two apart: separate under either connectivity.
	bm := parseBitmap(t,
		"#..",
		"...",
		"..#",
	)

	assert.Equal(t, 2, mustLabel(t, bm, Connect8).Components)
	assert.Equal(t, 2, mustLabel(t, bm, Connect4).Components)
}

func TestFindComponents_SingleDiagonalLink(t *testing.T) {
	// The left segment reaches the right one only through the up-right
	// diagonal at (1,1)-(2,0). An implementation missing the up-right
	// causal neighbor would report two components under Connect8.
	bm := parseBitmap(t,
		"..##",
		"##..",
	)

	assert.Equal(t, 1, mustLabel(t, bm, Connect8).Components)
	assert.Equal(t, 2, mustLabel(t, bm, Connect4).Components)
}

func TestFindComponents_SolidRowConvergesToOneLabel(t *testing.T) {
	bm := parseBitmap(t, "#####")
	res := mustLabel(t, bm, Connect4)

	assert.Equal(t, 1, res.Components)
	for x := 0; x < 5; x++ {
		assert.Equal(t, Label(1), res.Labels.Lookup(Point{X: x, Y: 0}))
	}
}

func TestFindComponents_URegionMergesArms(t *testing.T) {
	// The arms carry two distinct labels until the bottom row links them;
	// the finished map must show a single label everywhere.
	bm := parseBitmap(t,
		"#.#",
		"#.#",
		"###",
	)
	res := mustLabel(t, bm, Connect4)

	assert.Equal(t, 1, res.Components)
	assert.Equal(t, 2, res.Labels.LabelCount(), "both arms should have been issued labels")

	canonical := res.Labels.Lookup(Point{X: 0, Y: 0})
	require.NotEqual(t, Background, canonical)
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			if !bm.At(x, y) {
				continue
			}
			assert.Equal(t, canonical, res.Labels.Lookup(Point{X: x, Y: y}))
		}
	}
}

func TestFindComponents_TraceLogsCreatesAndMerges(t *testing.T) {
	bm := parseBitmap(t,
		"#.#",
		"###",
	)

	var buf bytes.Buffer
	_, err := FindComponents(bm, Options{
		Connectivity: Connect4,
		Trace:        log.New(&buf, "", 0),
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "created component 1")
	assert.Contains(t, out, "created component 2")
	assert.Contains(t, out, "merged")
}

func TestFindComponents_MatchesFloodFillOnRandomGrids(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for trial := 0; trial < 40; trial++ {
		width := 1 + rng.Intn(16)
		height := 1 + rng.Intn(16)
		density := rng.Float64()

		bm := imaging.NewBitmap(width, height)
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				bm.Set(x, y, rng.Float64() < density)
			}
		}

		for _, conn := range []Connectivity{Connect4, Connect8} {
			res := mustLabel(t, bm, conn)
			ids, want := referencePartition(bm, conn)

			require.Equal(t, want, res.Components,
				"component count mismatch (trial %d, %dx%d, conn %d)", trial, width, height, conn)

			// The resolved labels must induce exactly the flood-fill
			// partition: one label per reference component and vice versa.
			labelToID := make(map[Label]int)
			idToLabel := make(map[int]Label)
			scan := NewScanner(width, height)
			for p, ok := scan.Next(); ok; p, ok = scan.Next() {
				l := res.Labels.Lookup(p)
				id := ids[p.Y*width+p.X]
				if id < 0 {
					require.Equal(t, Background, l)
					continue
				}
				require.NotEqual(t, Background, l)
				if prev, seen := labelToID[l]; seen {
					require.Equal(t, prev, id, "label %d spans two reference components", l)
				}
				if prev, seen := idToLabel[id]; seen {
					require.Equal(t, prev, l, "reference component %d spans two labels", id)
				}
				labelToID[l] = id
				idToLabel[id] = l
			}
		}
	}
}

func TestFindComponents_NoOrphanLabels(t *testing.T) {
	// Every label ever issued must resolve to a canonical label that some
	// coordinate still observes: merge survivors are always drawn from
	// live candidates, so no label may dangle at scan end.
	rng := rand.New(rand.NewSource(7))

	for trial := 0; trial < 25; trial++ {
		width := 1 + rng.Intn(12)
		height := 1 + rng.Intn(12)

		bm := imaging.NewBitmap(width, height)
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				bm.Set(x, y, rng.Intn(2) == 0)
			}
		}

		for _, conn := range []Connectivity{Connect4, Connect8} {
			res := mustLabel(t, bm, conn)
			em := res.Labels

			reachable := make(map[Label]bool)
			scan := NewScanner(width, height)
			for p, ok := scan.Next(); ok; p, ok = scan.Next() {
				if l := em.Lookup(p); l != Background {
					reachable[l] = true
				}
			}
			require.Len(t, reachable, res.Components)

			for l := Label(1); int(l) <= em.LabelCount(); l++ {
				assert.True(t, reachable[em.find(l)],
					"label %d resolves to %d, which no coordinate holds", l, em.find(l))
			}
		}
	}
}

func TestFindComponents_Deterministic(t *testing.T) {
	bm := parseBitmap(t,
		"##..#",
		".#.##",
		"#..#.",
	)

	first := mustLabel(t, bm, Connect8)
	second := mustLabel(t, bm, Connect8)

	scan := NewScanner(5, 3)
	for p, ok := scan.Next(); ok; p, ok = scan.Next() {
		assert.Equal(t, first.Labels.Lookup(p), second.Labels.Lookup(p))
	}
	assert.Equal(t, first.Components, second.Components)
}
