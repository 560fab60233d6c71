// Package tlp - dual potentials over the basis spanning tree.
//
// For every basic cell (i, j) the potentials satisfy u[i] + v[j] = cost[i][j].
// The system is defined up to a constant, so u[0] anchors at 0 and the rest
// propagates by breadth-first traversal over the basis graph. Potentials are
// recomputed from scratch each optimization round and never persisted.

package tlp

// computePotentials solves u[i] + v[j] = cost[i][j] over the basic cells.
//
// If the basic set does not span all row/column nodes (possible after
// certain degenerate pivots), the gap is repaired by adding zero-valued
// basic cells at the cheapest connecting positions, then propagation is
// retried. The repair mutates bs.
//
// Complexity: O(m·n) per attempt; repair adds at most m+n−1 cells total.
func computePotentials(cost [][]float64, bs *basis) (u, v []float64) {
	var (
		m = bs.rows
		n = bs.cols

		rowCells, colCells [][]int
		rowSeen, colSeen   []bool
		queue              []int
		node, next         int
		reached            int
	)

	for {
		rowCells, colCells = bs.adjacency()

		u = make([]float64, m)
		v = make([]float64, n)
		rowSeen = make([]bool, m)
		colSeen = make([]bool, n)

		// Anchor: the dual system has one degree of freedom.
		u[0] = 0
		rowSeen[0] = true
		reached = 1

		queue = append(queue[:0], 0)
		for len(queue) > 0 {
			node = queue[0]
			queue = queue[1:]

			if node < m {
				for _, next = range rowCells[node] {
					if !colSeen[next] {
						v[next] = cost[node][next] - u[node]
						colSeen[next] = true
						reached++
						queue = append(queue, m+next)
					}
				}
			} else {
				for _, next = range colCells[node-m] {
					if !rowSeen[next] {
						u[next] = cost[next][node-m] - v[node-m]
						rowSeen[next] = true
						reached++
						queue = append(queue, next)
					}
				}
			}
		}

		if reached == m+n {
			return u, v
		}

		// Disconnected basis: splice in zero-valued basics and retry.
		bs.complete(cost)
	}
}

// Potentials computes the dual vectors for an arbitrary basic-cell set over
// a cost grid, anchored at u[0] = 0. It is the standalone counterpart of
// the optimizer's internal round, useful for rechecking the optimality
// certificate of a Result from outside the solver.
//
// A basic set that does not span every row and column is completed with
// zero-valued cells first (the caller's slice is never modified).
//
// Contract:
//   - cost must be a non-empty rectangular grid: ErrShapeMismatch otherwise.
//   - every cell must lie inside the grid: ErrShapeMismatch otherwise.
//
// Complexity: O(m·n + |basic|).
func Potentials(cost [][]float64, basic []Cell) (u, v []float64, err error) {
	m := len(cost)
	if m == 0 || len(cost[0]) == 0 {
		return nil, nil, ErrShapeMismatch
	}
	n := len(cost[0])

	var i int
	for i = 0; i < m; i++ {
		if len(cost[i]) != n {
			return nil, nil, ErrShapeMismatch
		}
	}

	bs := newBasis(m, n)
	var c Cell
	for _, c = range basic {
		if c.Row < 0 || c.Row >= m || c.Col < 0 || c.Col >= n {
			return nil, nil, ErrShapeMismatch
		}
		bs.add(c.Row, c.Col)
	}

	u, v = computePotentials(cost, bs)

	return u, v, nil
}
