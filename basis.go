// Package tlp - basic-cell set and its view as a bipartite graph.
//
// The basis is the set of (row, col) positions currently "in the basis":
// all positive-allocation cells plus the zero-valued degenerate cells that
// keep the set at exactly rows+cols−1 members. Viewed as a graph — row and
// column indices as nodes, basic cells as edges — a valid basis is a
// spanning tree; potentials propagate over it and each pivot rewires it.
//
// Membership lives in a boolean grid rather than a map: O(1) lookups and,
// critically, deterministic row-major iteration, which every tie-break in
// the solver relies on.

package tlp

// basis is the mutable basic-cell set for one solve. Not safe for
// concurrent use; each solve owns its own instance.
type basis struct {
	rows, cols int
	in         [][]bool // membership grid, rows×cols
	size       int      // number of basic cells
}

// newBasis returns an empty basic-cell set for a rows×cols grid.
//
// Complexity: O(rows·cols).
func newBasis(rows, cols int) *basis {
	in := make([][]bool, rows)
	for i := range in {
		in[i] = make([]bool, cols)
	}

	return &basis{rows: rows, cols: cols, in: in}
}

// has reports membership of (i, j).
func (b *basis) has(i, j int) bool { return b.in[i][j] }

// add inserts (i, j); inserting an existing member is a no-op.
func (b *basis) add(i, j int) {
	if !b.in[i][j] {
		b.in[i][j] = true
		b.size++
	}
}

// remove deletes (i, j); deleting a non-member is a no-op.
func (b *basis) remove(i, j int) {
	if b.in[i][j] {
		b.in[i][j] = false
		b.size--
	}
}

// cells returns the members in row-major order.
//
// Complexity: O(rows·cols).
func (b *basis) cells() []Cell {
	out := make([]Cell, 0, b.size)

	var i, j int
	for i = 0; i < b.rows; i++ {
		for j = 0; j < b.cols; j++ {
			if b.in[i][j] {
				out = append(out, Cell{Row: i, Col: j})
			}
		}
	}

	return out
}

// adjacency builds the bipartite adjacency lists: for every row, the basic
// columns in it; for every column, the basic rows in it. Column and row
// indices come out ascending because the scan is row-major. The structure
// is rebuilt fresh each time — the basis changes on every pivot, so
// persistent graph objects would only go stale.
//
// Complexity: O(rows·cols).
func (b *basis) adjacency() (rowCells [][]int, colCells [][]int) {
	rowCells = make([][]int, b.rows)
	colCells = make([][]int, b.cols)

	var i, j int
	for i = 0; i < b.rows; i++ {
		for j = 0; j < b.cols; j++ {
			if b.in[i][j] {
				rowCells[i] = append(rowCells[i], j)
				colCells[j] = append(colCells[j], i)
			}
		}
	}

	return rowCells, colCells
}

// reach runs a BFS over the basis graph starting from row 0 and marks every
// row and column node it can touch.
//
// Complexity: O(rows·cols).
func (b *basis) reach() (rowSeen, colSeen []bool) {
	rowSeen = make([]bool, b.rows)
	colSeen = make([]bool, b.cols)

	rowCells, colCells := b.adjacency()

	// Nodes 0..rows-1 are rows, rows..rows+cols-1 are columns.
	var (
		queue = make([]int, 0, b.rows+b.cols)
		node  int
		next  int
	)
	rowSeen[0] = true
	queue = append(queue, 0)

	for len(queue) > 0 {
		node = queue[0]
		queue = queue[1:]

		if node < b.rows {
			for _, next = range rowCells[node] {
				if !colSeen[next] {
					colSeen[next] = true
					queue = append(queue, b.rows+next)
				}
			}
		} else {
			for _, next = range colCells[node-b.rows] {
				if !rowSeen[next] {
					rowSeen[next] = true
					queue = append(queue, next)
				}
			}
		}
	}

	return rowSeen, colSeen
}

// complete connects the basis into a spanning tree by adding zero-valued
// basic cells. Each round picks the cheapest cell joining the component
// containing row 0 to an unreached node (lowest row-then-col on cost ties)
// and repeats until every node is reached. Starting from a forest of k
// components this adds exactly k−1 cells, landing the basis on
// rows+cols−1 members.
//
// Complexity: O((rows+cols)·rows·cols) worst case.
func (b *basis) complete(cost [][]float64) {
	var (
		rowSeen, colSeen []bool
		i, j             int
		best             Cell
		bestCost         float64
		found            bool
		connects         bool
	)

	for {
		rowSeen, colSeen = b.reach()

		found = false
		for i = 0; i < b.rows; i++ {
			for j = 0; j < b.cols; j++ {
				if b.in[i][j] {
					continue
				}
				// A connector joins a reached node to an unreached one.
				connects = rowSeen[i] != colSeen[j]
				if !connects {
					continue
				}
				if !found || cost[i][j] < bestCost {
					best, bestCost, found = Cell{Row: i, Col: j}, cost[i][j], true
				}
			}
		}
		if !found {
			// Every node reached: the basis spans the grid.
			return
		}

		b.add(best.Row, best.Col)
	}
}
