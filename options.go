package tlp

// Options configures a solve.
//
// Fields:
//   - MaxIterations — cap on optimizer pivots, guarding against cycling
//     under heavy degeneracy. Hitting the cap yields ErrMaxIterations
//     together with the best allocation found so far.
//   - Eps — numeric tolerance: reduced costs ≥ −Eps count as non-negative,
//     allocations below Eps count as exhausted, and supply/demand totals
//     within Eps count as balanced.
//   - Cancel — optional cooperative cancellation. The driver inspects the
//     channel before each optimization round; once it is closed (or
//     signaled), the solve stops with ErrCanceled and the current
//     allocation. A single pivot is cheap, so no intra-round check exists.
//
// Example:
//
//	opts := tlp.DefaultOptions()
//	opts.MaxIterations = 500
//	res, err := tlp.Solve(supply, demand, cost, opts)
type Options struct {
	MaxIterations int
	Eps           float64
	Cancel        <-chan struct{}
}

const (
	// DefaultMaxIterations bounds the optimizer loop; the deterministic
	// tie-break rules make convergence far earlier the expected case.
	DefaultMaxIterations = 10000

	// DefaultEps absorbs floating-point noise in feasibility, balance and
	// optimality comparisons.
	DefaultEps = 1e-9
)

// DefaultOptions returns the canonical solver configuration.
//
// Complexity: O(1).
func DefaultOptions() Options {
	return Options{
		MaxIterations: DefaultMaxIterations,
		Eps:           DefaultEps,
	}
}

// validateOptions rejects configurations that would invert comparison logic
// (negative Eps) or disable the loop guard (non-positive cap).
//
// Complexity: O(1).
func validateOptions(opts Options) error {
	if opts.MaxIterations <= 0 {
		return ErrBadOptions
	}
	if opts.Eps < 0 {
		return ErrBadOptions
	}

	return nil
}

// canceled reports whether opts.Cancel has fired, without blocking.
//
// Complexity: O(1).
func canceled(opts Options) bool {
	if opts.Cancel == nil {
		return false
	}
	select {
	case <-opts.Cancel:
		return true
	default:
		return false
	}
}
