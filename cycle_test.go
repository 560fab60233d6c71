package tlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFindCycle_Square verifies the minimal 2×2 loop in traversal order.
func TestFindCycle_Square(t *testing.T) {
	bs := newBasis(2, 2)
	bs.add(0, 0)
	bs.add(0, 1)
	bs.add(1, 1)

	loop, err := findCycle(Cell{Row: 1, Col: 0}, bs)
	require.NoError(t, err)

	want := []Cell{{1, 0}, {0, 0}, {0, 1}, {1, 1}}
	assert.Equal(t, want, loop, "loop starts at the entering cell and alternates moves")
}

// TestFindCycle_Alternation verifies the alternating horizontal/vertical
// structure on a wider basis tree.
func TestFindCycle_Alternation(t *testing.T) {
	// Spanning tree over 3×3:
	//   (0,0) (0,1) (1,1) (1,2) (2,2)
	bs := newBasis(3, 3)
	bs.add(0, 0)
	bs.add(0, 1)
	bs.add(1, 1)
	bs.add(1, 2)
	bs.add(2, 2)

	loop, err := findCycle(Cell{Row: 2, Col: 0}, bs)
	require.NoError(t, err)

	require.GreaterOrEqual(t, len(loop), 4)
	require.Equal(t, 0, len(loop)%2, "loop length must be even")
	assert.Equal(t, Cell{Row: 2, Col: 0}, loop[0])

	// Consecutive cells (cyclically) share exactly one coordinate,
	// alternating column and row.
	for k := range loop {
		cur, nxt := loop[k], loop[(k+1)%len(loop)]
		sameRow := cur.Row == nxt.Row
		sameCol := cur.Col == nxt.Col
		require.True(t, sameRow != sameCol, "cells %v and %v must share exactly one axis", cur, nxt)
		if k%2 == 0 {
			assert.Equal(t, cur.Col, nxt.Col, "even step moves vertically")
		} else {
			assert.Equal(t, cur.Row, nxt.Row, "odd step moves horizontally")
		}
	}
}

// TestFindCycle_NoPath verifies the defensive sentinel on a broken basis.
func TestFindCycle_NoPath(t *testing.T) {
	bs := newBasis(2, 2)
	bs.add(1, 1) // entering (0,0) has no route between c0 and r0

	_, err := findCycle(Cell{Row: 0, Col: 0}, bs)
	assert.ErrorIs(t, err, ErrNoCycle)
}
