// Package tlp solves the classical Transportation Problem: given m supply
// sources, n demand sinks and an m×n unit-cost grid, find the shipment plan
// that satisfies every supply and demand constraint at minimum total cost.
//
// The pipeline has three phases:
//
//  1. Modeling — NewProblem validates the inputs and balances unequal
//     totals by appending one zero-cost dummy source or sink.
//
//  2. Initialization — Vogel's Approximation Method (VAM) builds an initial
//     basic feasible solution from penalty-driven greedy allocation.
//     Complexity: O((m+n)·m·n).
//
//  3. Optimization — the Potentials (U–V / MODI) method computes dual
//     potentials over the basis spanning tree, tests reduced costs, and
//     performs stepping-stone pivots until no improving move exists.
//     Complexity: O(m·n) per pivot.
//
// Every selection step (penalty ties, minimum-cost ties, entering and
// leaving cells) uses a fixed lowest-index tie-break, so solving the same
// problem twice yields identical allocations, costs and iteration counts.
//
// Errors:
//   - ErrShapeMismatch  — cost grid dimensions do not match supply/demand.
//   - ErrNegativeValue  — a negative supply, demand or cost entry.
//   - ErrInfeasible     — pathological input (all-zero supply and demand).
//   - ErrMaxIterations  — the iteration cap was hit; the best allocation
//     found so far is still returned alongside the error.
//   - ErrCanceled       — cooperative cancellation was observed between
//     optimization rounds; partial result returned as above.
//
// Use Solve for the full pipeline, or NewProblem + InitialBasis when only
// the balanced model or the VAM starting point is needed.
package tlp
