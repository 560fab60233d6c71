package tlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// suboptimalStart returns a feasible but non-optimal basic solution for a
// 3×3 instance whose optimum is 1284, reachable in exactly two pivots.
func suboptimalStart(t *testing.T) (*Problem, [][]float64, *basis) {
	t.Helper()

	p, err := NewProblem(
		[]float64{30, 40, 50},
		[]float64{35, 28, 57},
		[][]float64{
			{8, 6, 10},
			{9, 12, 13},
			{14, 9, 16},
		},
	)
	require.NoError(t, err)

	alloc := [][]float64{
		{30, 0, 0},
		{5, 28, 7},
		{0, 0, 50},
	}
	bs := newBasis(3, 3)
	for _, c := range []Cell{{0, 0}, {1, 0}, {1, 1}, {1, 2}, {2, 2}} {
		bs.add(c.Row, c.Col)
	}

	return p, alloc, bs
}

// TestOptimize_ConvergesToOptimum drives the MODI loop from a handcrafted
// suboptimal basis and checks pivots, final flows and the certificate.
func TestOptimize_ConvergesToOptimum(t *testing.T) {
	p, alloc, bs := suboptimalStart(t)

	pivots, u, v, err := optimize(p, alloc, bs, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, 2, pivots)

	want := [][]float64{
		{0, 0, 30},
		{35, 0, 5},
		{0, 28, 22},
	}
	for i := range want {
		for j := range want[i] {
			assert.InDelta(t, want[i][j], alloc[i][j], 1e-9, "alloc[%d][%d]", i, j)
		}
	}

	// Optimality certificate from the returned potentials.
	for i := 0; i < p.Rows(); i++ {
		for j := 0; j < p.Cols(); j++ {
			assert.GreaterOrEqual(t, p.cost[i][j]-u[i]-v[j], -DefaultEps,
				"reduced cost at (%d,%d)", i, j)
		}
	}

	assert.Equal(t, 5, bs.size, "basis size invariant after pivoting")
}

// TestOptimize_IterationCap verifies best-effort state alongside
// ErrMaxIterations when the cap cuts the loop short.
func TestOptimize_IterationCap(t *testing.T) {
	p, alloc, bs := suboptimalStart(t)

	opts := DefaultOptions()
	opts.MaxIterations = 1

	pivots, u, v, err := optimize(p, alloc, bs, opts)
	assert.ErrorIs(t, err, ErrMaxIterations)
	assert.Equal(t, 1, pivots)
	require.Len(t, u, 3)
	require.Len(t, v, 3)

	// The interrupted allocation must still be feasible.
	supply := []float64{30, 40, 50}
	demand := []float64{35, 28, 57}
	for i, s := range supply {
		var sum float64
		for j := range demand {
			sum += alloc[i][j]
		}
		assert.InDelta(t, s, sum, 1e-9, "row %d", i)
	}
	for j, d := range demand {
		var sum float64
		for i := range supply {
			sum += alloc[i][j]
		}
		assert.InDelta(t, d, sum, 1e-9, "col %d", j)
	}
}

// TestOptimize_Canceled verifies the cooperative cancel check fires before
// the first round and still reports usable potentials.
func TestOptimize_Canceled(t *testing.T) {
	p, alloc, bs := suboptimalStart(t)

	cancel := make(chan struct{})
	close(cancel)
	opts := DefaultOptions()
	opts.Cancel = cancel

	pivots, u, v, err := optimize(p, alloc, bs, opts)
	assert.ErrorIs(t, err, ErrCanceled)
	assert.Equal(t, 0, pivots)
	assert.Len(t, u, 3)
	assert.Len(t, v, 3)
	assert.Equal(t, 30.0, alloc[0][0], "allocation untouched before the first pivot")
}

// TestPivot_DegenerateThetaZero verifies a θ=0 pivot rotates the basis
// without moving flow.
func TestPivot_DegenerateThetaZero(t *testing.T) {
	alloc := [][]float64{
		{10, 5},
		{0, 0},
	}
	bs := newBasis(2, 2)
	bs.add(0, 0)
	bs.add(0, 1)
	bs.add(1, 1) // degenerate zero basic on a '−' position

	loop := []Cell{{1, 0}, {0, 0}, {0, 1}, {1, 1}}
	pivot(alloc, bs, loop, DefaultEps)

	assert.Equal(t, 10.0, alloc[0][0], "θ=0 moves no flow")
	assert.Equal(t, 5.0, alloc[0][1])
	assert.Equal(t, 0.0, alloc[1][0])
	assert.True(t, bs.has(1, 0), "entering cell joins")
	assert.False(t, bs.has(1, 1), "the zero '−' cell leaves")
	assert.Equal(t, 3, bs.size)
}

// TestPivot_LeavingTieLowestIndex verifies the leaving rule when two '−'
// cells tie at θ: only the row-major smallest leaves.
func TestPivot_LeavingTieLowestIndex(t *testing.T) {
	alloc := [][]float64{
		{5, 0},
		{0, 5},
	}
	bs := newBasis(2, 2)
	bs.add(0, 0)
	bs.add(0, 1)
	bs.add(1, 1)

	loop := []Cell{{1, 0}, {0, 0}, {0, 1}, {1, 1}}
	pivot(alloc, bs, loop, DefaultEps)

	assert.Equal(t, 5.0, alloc[1][0])
	assert.Equal(t, 0.0, alloc[0][0])
	assert.Equal(t, 5.0, alloc[0][1])
	assert.Equal(t, 0.0, alloc[1][1])
	assert.False(t, bs.has(0, 0), "(0,0) precedes (1,1) and leaves")
	assert.True(t, bs.has(1, 1), "(1,1) stays as a degenerate zero basic")
	assert.Equal(t, 3, bs.size)
}
