// Package tlp - solver driver.
//
// Solve wires the pipeline: options validation → NewProblem (validate +
// balance) → Vogel initialization → MODI optimization → result packaging.
// Errors from earlier stages surface unchanged; a malformed problem is
// reported, never silently patched beyond the explicit balancing step.

package tlp

import "math"

// roundScale stabilizes reported costs to 1e-9 absolute precision,
// preventing cross-platform floating-point drift in results and tests.
const roundScale = 1e9

// Solve runs the full transportation pipeline and returns the minimum-cost
// shipment plan for the given supply, demand and unit-cost grid.
//
// Contract:
//   - len(supply) = m ≥ 1, len(demand) = n ≥ 1, cost is m×n; entries are
//     finite and non-negative. Violations yield ErrShapeMismatch or
//     ErrNegativeValue before any computation.
//   - Unequal totals are balanced internally with one zero-cost dummy line;
//     the returned Result is already stripped back to m×n, and dummy flows
//     (unmet demand / unused supply) never contribute to Result.Cost.
//
// On ErrMaxIterations and ErrCanceled the Result still carries the best
// allocation found so far, letting the caller accept a possibly-suboptimal
// answer. Any other error returns a zero Result.
//
// Determinism: fixed tie-break rules make Solve a pure function of its
// inputs — identical allocation, cost and iteration count on every run.
//
// Complexity: O((m+n)·m·n) initialization plus O(m·n) per pivot.
func Solve(supply, demand []float64, cost [][]float64, opts Options) (Result, error) {
	if err := validateOptions(opts); err != nil {
		return Result{}, err
	}

	p, err := NewProblem(supply, demand, cost)
	if err != nil {
		return Result{}, err
	}

	alloc, bs, err := vogelAllocate(p, opts.Eps)
	if err != nil {
		return Result{}, err
	}

	pivots, u, v, oerr := optimize(p, alloc, bs, opts)

	// Package the result even when the optimizer stopped early: alloc holds
	// the best state reached.
	return buildResult(p, alloc, u, v, pivots), oerr
}

// buildResult strips any dummy row/column from the allocation and the
// potentials, and totals the cost over real routes only.
//
// Complexity: O(m·n).
func buildResult(p *Problem, alloc [][]float64, u, v []float64, pivots int) Result {
	var (
		m = p.origRows
		n = p.origCols

		out   = make([][]float64, m)
		total float64
		i, j  int
	)
	for i = 0; i < m; i++ {
		out[i] = append([]float64(nil), alloc[i][:n]...)
		for j = 0; j < n; j++ {
			total += out[i][j] * p.cost[i][j]
		}
	}

	return Result{
		Allocation: out,
		Cost:       round1e9(total),
		Iterations: pivots,
		U:          append([]float64(nil), u[:m]...),
		V:          append([]float64(nil), v[:n]...),
	}
}

// round1e9 returns x rounded to 1e-9 absolute precision.
func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}
