// Package tlp - stepping-stone loop detection.
//
// Adding one entering cell to a spanning-tree basis creates exactly one
// cycle in the bipartite row/column graph. Equivalently: the basis tree
// holds a unique path from the entering cell's column node back to its row
// node, and that path's edges, prefixed with the entering cell, form the
// loop. The traversal is an explicit stack DFS — no recursion, depth
// bounded by m+n — per the degeneracy-safety design of the optimizer.

package tlp

// findCycle returns the stepping-stone loop for an entering non-basic cell.
// The loop starts at the entering cell, alternates horizontal and vertical
// moves, and has even length ≥ 4. Signs follow position parity: '+' on
// even indices (entering cell included), '−' on odd.
//
// Returns ErrNoCycle when the basis graph holds no path between the
// entering cell's column and row — impossible for a connected basis, kept
// as a defensive guard.
//
// Complexity: O(m·n) time and memory.
func findCycle(enter Cell, bs *basis) ([]Cell, error) {
	var (
		m = bs.rows
		n = bs.cols

		rowCells, colCells = bs.adjacency()

		// Nodes 0..m-1 are rows, m..m+n-1 are columns.
		total   = m + n
		start   = m + enter.Col
		target  = enter.Row
		parent  = make([]int, total)
		visited = make([]bool, total)
		stack   = make([]int, 0, total)

		node, next int
		neighbors  []int
	)
	for node = range parent {
		parent[node] = -1
	}

	visited[start] = true
	stack = append(stack, start)

	for len(stack) > 0 {
		node = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if node == target {
			break
		}

		if node < m {
			neighbors = rowCells[node]
		} else {
			neighbors = colCells[node-m]
		}
		for _, next = range neighbors {
			if node < m {
				// Row node: neighbors are column indices; shift to node ids.
				next += m
			}
			if !visited[next] {
				visited[next] = true
				parent[next] = node
				stack = append(stack, next)
			}
		}
	}

	if !visited[target] {
		return nil, ErrNoCycle
	}

	// Reconstruct the node path start → … → target.
	var path []int
	for node = target; node != -1; node = parent[node] {
		path = append(path, node)
	}
	// path is target-first; reverse to walk away from the entering column.
	for l, r := 0, len(path)-1; l < r; l, r = l+1, r-1 {
		path[l], path[r] = path[r], path[l]
	}

	// Translate consecutive node pairs into basic cells. Each pair is one
	// row node and one column node, i.e. the cell at their crossing.
	loop := make([]Cell, 0, len(path))
	loop = append(loop, enter)

	var a, b, i int
	for i = 0; i+1 < len(path); i++ {
		a, b = path[i], path[i+1]
		if a < m {
			loop = append(loop, Cell{Row: a, Col: b - m})
		} else {
			loop = append(loop, Cell{Row: b, Col: a - m})
		}
	}

	return loop, nil
}
