// Package tlp - the Potentials (MODI) optimization loop.
//
// State machine per round:
//
//	ComputePotentials → TestOptimality → {Optimal |
//	    SelectEntering → FindCycle → Pivot → ComputePotentials}
//
// Each round rebuilds the duals over the basis tree, scans reduced costs of
// non-basic cells, and either terminates (all ≥ −Eps) or pivots flow around
// the stepping-stone loop of the most negative cell. The leaving rule keeps
// the basis at exactly m+n−1 members under degeneracy: only one '−' cell
// leaves even when several tie at the pivot quantity θ.

package tlp

// optimize iterates the allocation and basic-cell set in place until
// optimal, capped, or canceled. It returns the number of pivots performed
// and the final potentials; alloc and bs always hold the best (latest)
// state, so callers can package a usable result even on error.
//
// Errors: ErrMaxIterations, ErrCanceled, ErrNoCycle (defensive).
//
// Complexity: O(m·n) per round.
func optimize(p *Problem, alloc [][]float64, bs *basis, opts Options) (pivots int, u, v []float64, err error) {
	var (
		m = p.Rows()
		n = p.Cols()

		i, j    int
		red     float64
		minRed  float64
		enter   Cell
		improve bool
		loop    []Cell
	)

	for {
		// Cooperative cancellation point; a single round is cheap enough
		// that no intra-round check is needed.
		if canceled(opts) {
			u, v = computePotentials(p.cost, bs)

			return pivots, u, v, ErrCanceled
		}

		// ComputePotentials.
		u, v = computePotentials(p.cost, bs)

		// TestOptimality + SelectEntering in one scan: the most negative
		// reduced cost among non-basic cells, lowest row-then-col on ties.
		improve = false
		for i = 0; i < m; i++ {
			for j = 0; j < n; j++ {
				if bs.has(i, j) {
					continue
				}
				red = p.cost[i][j] - u[i] - v[j]
				if red < -opts.Eps && (!improve || red < minRed) {
					minRed, enter, improve = red, Cell{Row: i, Col: j}, true
				}
			}
		}
		if !improve {
			return pivots, u, v, nil
		}
		if pivots >= opts.MaxIterations {
			return pivots, u, v, ErrMaxIterations
		}

		// FindCycle.
		loop, err = findCycle(enter, bs)
		if err != nil {
			return pivots, u, v, err
		}

		// Pivot.
		pivot(alloc, bs, loop, opts.Eps)
		pivots++
	}
}

// pivot shifts θ units of flow around the stepping-stone loop: plus on even
// positions, minus on odd. θ is the smallest '−' allocation (θ = 0 for a
// degenerate pivot). Exactly one '−' cell attaining θ leaves the basis —
// the lowest row-then-col one — and any other '−' cell driven to zero stays
// as a degenerate basic, preserving the m+n−1 basis size. The entering
// cell (loop[0]) joins the basis.
//
// Complexity: O(len(loop)).
func pivot(alloc [][]float64, bs *basis, loop []Cell, eps float64) {
	var (
		theta    float64
		haveMin  bool
		c        Cell
		idx      int
		leaving  Cell
		haveLeav bool
	)

	// θ = min allocation over '−' cells (odd positions).
	for idx = 1; idx < len(loop); idx += 2 {
		c = loop[idx]
		if !haveMin || alloc[c.Row][c.Col] < theta {
			theta, haveMin = alloc[c.Row][c.Col], true
		}
	}

	// Shift flow around the loop.
	for idx, c = range loop {
		if idx%2 == 0 {
			alloc[c.Row][c.Col] += theta
		} else {
			alloc[c.Row][c.Col] -= theta
		}
	}

	// Snap '−' cells that hit zero and pick the single leaving cell.
	for idx = 1; idx < len(loop); idx += 2 {
		c = loop[idx]
		if alloc[c.Row][c.Col] <= eps {
			alloc[c.Row][c.Col] = 0
			if !haveLeav || c.less(leaving) {
				leaving, haveLeav = c, true
			}
		}
	}

	bs.add(loop[0].Row, loop[0].Col)
	if haveLeav {
		bs.remove(leaving.Row, leaving.Col)
	}
}
