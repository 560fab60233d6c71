// Package tlp - Vogel's Approximation Method (VAM).
//
// VAM builds the initial basic feasible solution. Each round scores every
// live row and column with a penalty — the regret of not using its cheapest
// live cell — then allocates as much as possible to the cheapest cell of
// the highest-penalty line. Ties resolve deterministically: higher penalty,
// then lower line minimum cost, then rows before columns, then lower index.
//
// Degeneracy convention: when an allocation exhausts its row and column
// simultaneously, only the row retires; the column stays live and later
// receives a zero-valued basic cell, keeping the basis on course for
// exactly rows+cols−1 members. Any residual shortfall (possible when the
// main loop ends early) is closed by basis.complete.

package tlp

import "math"

// vogelAllocate computes the initial allocation and basic-cell set for a
// balanced model.
//
// Postconditions:
//   - row sums equal supply, column sums equal demand (within eps);
//   - the basis holds exactly Rows()+Cols()−1 cells and spans the grid.
//
// Returns ErrInfeasible if supply or demand remains unexhausted after the
// greedy loop — unreachable for a balanced model, kept as a guard.
//
// Complexity: O((m+n)·m·n) time, O(m·n) memory.
func vogelAllocate(p *Problem, eps float64) ([][]float64, *basis, error) {
	var (
		m = p.Rows()
		n = p.Cols()

		remSupply = append([]float64(nil), p.supply...)
		remDemand = append([]float64(nil), p.demand...)

		liveRow = make([]bool, m)
		liveCol = make([]bool, n)
		nRows   = m
		nCols   = n

		alloc = make([][]float64, m)
		bs    = newBasis(m, n)
	)
	for i := range alloc {
		alloc[i] = make([]float64, n)
		liveRow[i] = true
	}
	for j := range liveCol {
		liveCol[j] = true
	}

	var (
		i, j       int
		pen        float64
		lineMin    float64
		bestPen    float64
		bestMin    float64
		bestIdx    int
		bestIsRow  bool
		haveBest   bool
		sel        int
		selCost    float64
		amount     float64
		rowDrained bool
		colDrained bool
	)

	for nRows > 0 && nCols > 0 {
		// Stage 1: penalties over live lines, rows first so that a full tie
		// (penalty and line minimum both equal) selects the row.
		haveBest = false
		for i = 0; i < m; i++ {
			if !liveRow[i] {
				continue
			}
			pen, lineMin = rowPenalty(p.cost, liveCol, i)
			if !haveBest || pen > bestPen || (pen == bestPen && lineMin < bestMin) {
				bestPen, bestMin, bestIdx, bestIsRow, haveBest = pen, lineMin, i, true, true
			}
		}
		for j = 0; j < n; j++ {
			if !liveCol[j] {
				continue
			}
			pen, lineMin = colPenalty(p.cost, liveRow, j)
			if !haveBest || pen > bestPen || (pen == bestPen && lineMin < bestMin) {
				bestPen, bestMin, bestIdx, bestIsRow, haveBest = pen, lineMin, j, false, true
			}
		}
		if !haveBest {
			break
		}

		// Stage 2: cheapest live cell within the selected line; the
		// ascending scan makes the lowest index win cost ties.
		if bestIsRow {
			i = bestIdx
			sel = -1
			for j = 0; j < n; j++ {
				if liveCol[j] && (sel < 0 || p.cost[i][j] < selCost) {
					sel, selCost = j, p.cost[i][j]
				}
			}
			j = sel
		} else {
			j = bestIdx
			sel = -1
			for i = 0; i < m; i++ {
				if liveRow[i] && (sel < 0 || p.cost[i][j] < selCost) {
					sel, selCost = i, p.cost[i][j]
				}
			}
			i = sel
		}

		// Stage 3: allocate and mark basic.
		amount = math.Min(remSupply[i], remDemand[j])
		alloc[i][j] += amount
		bs.add(i, j)
		remSupply[i] -= amount
		remDemand[j] -= amount

		// Stage 4: retire exhausted lines. On simultaneous exhaustion only
		// the row retires; the live zero-demand column picks up a
		// degenerate zero cell in a later round.
		rowDrained = remSupply[i] <= eps
		colDrained = remDemand[j] <= eps
		switch {
		case rowDrained:
			// Covers simultaneous exhaustion too: the column stays live.
			liveRow[i] = false
			nRows--
		case colDrained:
			liveCol[j] = false
			nCols--
		}
	}

	// Feasibility guard: a balanced model always drains completely.
	for i = 0; i < m; i++ {
		if remSupply[i] > eps {
			return nil, nil, ErrInfeasible
		}
	}
	for j = 0; j < n; j++ {
		if remDemand[j] > eps {
			return nil, nil, ErrInfeasible
		}
	}

	// Top up the basis to a spanning tree of exactly m+n−1 cells.
	bs.complete(p.cost)

	return alloc, bs, nil
}

// rowPenalty returns the VAM penalty for row i over live columns: second
// smallest minus smallest cost, or the sole cost when one column remains.
// The second return is the row's minimum live cost, used for tie-breaks.
//
// Complexity: O(n).
func rowPenalty(cost [][]float64, liveCol []bool, i int) (pen, lineMin float64) {
	var (
		first  = math.Inf(1)
		second = math.Inf(1)
		count  int
	)
	for j, live := range liveCol {
		if !live {
			continue
		}
		count++
		switch c := cost[i][j]; {
		case c < first:
			first, second = c, first
		case c < second:
			second = c
		}
	}
	if count == 1 {
		return first, first
	}

	return second - first, first
}

// colPenalty is rowPenalty transposed: the penalty for column j over live
// rows.
//
// Complexity: O(m).
func colPenalty(cost [][]float64, liveRow []bool, j int) (pen, lineMin float64) {
	var (
		first  = math.Inf(1)
		second = math.Inf(1)
		count  int
	)
	for i, live := range liveRow {
		if !live {
			continue
		}
		count++
		switch c := cost[i][j]; {
		case c < first:
			first, second = c, first
		case c < second:
			second = c
		}
	}
	if count == 1 {
		return first, first
	}

	return second - first, first
}

// InitialBasis runs Vogel's Approximation Method on a balanced model and
// returns the initial allocation, the basic cells in row-major order, and
// the allocation's total cost over the balanced grid (dummy cells carry
// zero cost, so they never contribute).
//
// The result satisfies the feasibility invariant — row sums equal supply,
// column sums equal demand — and holds exactly Rows()+Cols()−1 basic cells
// counting degenerate zero-valued ones.
//
// Complexity: O((m+n)·m·n).
func InitialBasis(p *Problem) ([][]float64, []Cell, float64, error) {
	alloc, bs, err := vogelAllocate(p, DefaultEps)
	if err != nil {
		return nil, nil, 0, err
	}

	var (
		total float64
		c     Cell
		basic = bs.cells()
	)
	for _, c = range basic {
		total += alloc[c.Row][c.Col] * p.cost[c.Row][c.Col]
	}

	return alloc, basic, round1e9(total), nil
}
