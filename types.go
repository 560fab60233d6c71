package tlp

// Cell addresses one route (source row, sink column) in the transportation
// grid. Cells order lexicographically by Row, then Col; every deterministic
// tie-break in the solver resolves to the smallest cell in that order.
type Cell struct {
	Row, Col int
}

// less reports whether c precedes d in row-major order.
func (c Cell) less(d Cell) bool {
	if c.Row != d.Row {
		return c.Row < d.Row
	}

	return c.Col < d.Col
}

// Result holds the outcome of a solve, adjusted to the original problem
// size: any dummy row or column introduced by balancing is stripped from
// Allocation, U and V, and excluded from Cost.
type Result struct {
	// Allocation is the m×n shipment plan; Allocation[i][j] is the quantity
	// routed from source i to sink j.
	Allocation [][]float64

	// Cost is the total transport cost over real (non-dummy) routes,
	// stabilized to 1e-9 precision.
	Cost float64

	// Iterations is the number of stepping-stone pivots performed; an
	// initial solution that is already optimal reports 0.
	Iterations int

	// U and V are the final dual potentials per source and per sink.
	// Optimality certificate: cost[i][j] - U[i] - V[j] ≥ -Eps for all i, j.
	U, V []float64
}
