// Package tlp: sentinel error set.
// All public operations return these sentinels and tests match them via
// errors.Is. No function panics on user-supplied input.

package tlp

import "errors"

var (
	// ErrShapeMismatch is returned when the cost grid is not a rectangular
	// m×n grid matching len(supply)×len(demand), or when a NaN/±Inf entry
	// violates the finite-number policy.
	ErrShapeMismatch = errors.New("tlp: cost matrix shape does not match supply/demand")

	// ErrNegativeValue is returned when any supply, demand or cost entry
	// is negative.
	ErrNegativeValue = errors.New("tlp: negative supply, demand or cost value")

	// ErrInfeasible is returned for pathological inputs that admit no basis,
	// such as all-zero total supply and demand. Balancing makes this
	// unreachable for ordinary inputs; it is kept as a defensive sentinel.
	ErrInfeasible = errors.New("tlp: infeasible problem")

	// ErrMaxIterations is returned when the optimizer hits the configured
	// iteration cap. The Result returned next to it holds the best
	// allocation found so far.
	ErrMaxIterations = errors.New("tlp: iteration cap exceeded")

	// ErrCanceled is returned when Options.Cancel fires between optimizer
	// rounds. The Result returned next to it holds the current allocation.
	ErrCanceled = errors.New("tlp: solve canceled")

	// ErrNoCycle signals that no stepping-stone loop exists for the entering
	// cell. A connected basis always admits exactly one loop, so this is a
	// defensive sentinel for a corrupted basic set.
	ErrNoCycle = errors.New("tlp: no stepping-stone cycle for entering cell")

	// ErrBadOptions is returned when Options carry a negative tolerance or
	// a non-positive iteration cap.
	ErrBadOptions = errors.New("tlp: invalid options")
)
