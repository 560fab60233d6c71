// Package tlp - problem modeling: validation and balancing.
//
// NewProblem is the single entry for raw inputs. It performs staged
// validation (shape → numeric policy → sign → feasibility), deep-copies
// every slice so the model is immutable for the duration of a solve, and
// equalizes total supply and total demand by appending one zero-cost dummy
// source or sink. Downstream components only ever see a balanced model.

package tlp

import "math"

// Problem is a validated, balanced transportation model. The zero value is
// not usable; construct with NewProblem. A Problem is read-only after
// construction and safe to share across concurrent solves.
type Problem struct {
	supply []float64   // balanced supply vector, length rows
	demand []float64   // balanced demand vector, length cols
	cost   [][]float64 // rows×cols unit costs, zero on the dummy line

	origRows int // source count before balancing
	origCols int // sink count before balancing

	dummyRow bool // last row is a synthetic source (unmet demand)
	dummyCol bool // last column is a synthetic sink (unused supply)
}

// NewProblem validates raw supply, demand and cost inputs and returns the
// balanced model.
//
// Contract:
//   - len(supply) ≥ 1, len(demand) ≥ 1, cost has len(supply) rows of
//     len(demand) entries each, otherwise ErrShapeMismatch.
//   - NaN or ±Inf anywhere violates the numeric policy: ErrShapeMismatch.
//   - Any negative entry: ErrNegativeValue.
//   - All-zero total supply and demand: ErrInfeasible.
//
// Balancing uses DefaultEps for the totals comparison, so the model can be
// built standalone without Options; when totals differ by more than that,
// one dummy source (demand surplus) or dummy sink (supply surplus) with
// zero cost is appended carrying the shortfall.
//
// Complexity: O(m·n) time and memory.
func NewProblem(supply, demand []float64, cost [][]float64) (*Problem, error) {
	var (
		m = len(supply)
		n = len(demand)
	)

	// Stage 1: shape.
	if m == 0 || n == 0 || len(cost) != m {
		return nil, ErrShapeMismatch
	}
	var i, j int
	for i = 0; i < m; i++ {
		if len(cost[i]) != n {
			return nil, ErrShapeMismatch
		}
	}

	// Stage 2: numeric policy and sign.
	var (
		v           float64
		totalSupply float64
		totalDemand float64
	)
	for i = 0; i < m; i++ {
		v = supply[i]
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, ErrShapeMismatch
		}
		if v < 0 {
			return nil, ErrNegativeValue
		}
		totalSupply += v
	}
	for j = 0; j < n; j++ {
		v = demand[j]
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, ErrShapeMismatch
		}
		if v < 0 {
			return nil, ErrNegativeValue
		}
		totalDemand += v
	}
	for i = 0; i < m; i++ {
		for j = 0; j < n; j++ {
			v = cost[i][j]
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, ErrShapeMismatch
			}
			if v < 0 {
				return nil, ErrNegativeValue
			}
		}
	}

	// Stage 3: feasibility. Nothing to ship and nothing to receive admits
	// no basis; reject instead of manufacturing an empty answer.
	if totalSupply <= DefaultEps && totalDemand <= DefaultEps {
		return nil, ErrInfeasible
	}

	// Stage 4: copy and balance.
	p := &Problem{
		supply:   append([]float64(nil), supply...),
		demand:   append([]float64(nil), demand...),
		cost:     make([][]float64, 0, m+1),
		origRows: m,
		origCols: n,
	}
	for i = 0; i < m; i++ {
		p.cost = append(p.cost, append([]float64(nil), cost[i]...))
	}

	diff := totalSupply - totalDemand
	switch {
	case diff > DefaultEps:
		// Supply surplus: dummy sink absorbs the unused quantity.
		p.demand = append(p.demand, diff)
		for i = 0; i < m; i++ {
			p.cost[i] = append(p.cost[i], 0)
		}
		p.dummyCol = true
	case diff < -DefaultEps:
		// Demand surplus: dummy source represents unmet demand.
		p.supply = append(p.supply, -diff)
		p.cost = append(p.cost, make([]float64, n))
		p.dummyRow = true
	}

	return p, nil
}

// Rows returns the balanced source count (including a dummy source, if any).
func (p *Problem) Rows() int { return len(p.supply) }

// Cols returns the balanced sink count (including a dummy sink, if any).
func (p *Problem) Cols() int { return len(p.demand) }

// DummyRow reports whether the last row is a synthetic source.
func (p *Problem) DummyRow() bool { return p.dummyRow }

// DummyCol reports whether the last column is a synthetic sink.
func (p *Problem) DummyCol() bool { return p.dummyCol }

// Balanced reports whether the raw input was already balanced, i.e. no
// dummy line was appended.
func (p *Problem) Balanced() bool { return !p.dummyRow && !p.dummyCol }

// TotalSupply returns the balanced total supply.
//
// Complexity: O(m).
func (p *Problem) TotalSupply() float64 {
	var sum float64
	for _, s := range p.supply {
		sum += s
	}

	return sum
}

// TotalDemand returns the balanced total demand.
//
// Complexity: O(n).
func (p *Problem) TotalDemand() float64 {
	var sum float64
	for _, d := range p.demand {
		sum += d
	}

	return sum
}

// Supply returns a copy of the balanced supply vector.
func (p *Problem) Supply() []float64 {
	return append([]float64(nil), p.supply...)
}

// Demand returns a copy of the balanced demand vector.
func (p *Problem) Demand() []float64 {
	return append([]float64(nil), p.demand...)
}

// Cost returns a deep copy of the balanced cost grid.
//
// Complexity: O(m·n).
func (p *Problem) Cost() [][]float64 {
	out := make([][]float64, len(p.cost))
	for i := range p.cost {
		out[i] = append([]float64(nil), p.cost[i]...)
	}

	return out
}
