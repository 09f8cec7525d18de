// SPDX-License-Identifier: MIT
//
// Package solver: adapter interfaces, assignment type and sentinel errors.
package solver

import (
	"errors"

	"github.com/katalvlaran/afmend/cnfio"
)

// ErrUnsat indicates the hard-clause set admits no assignment. An empty
// clause in the pool is reported the same way: it is trivially
// unsatisfiable.
var ErrUnsat = errors.New("solver: hard clauses unsatisfiable")

// Assignment maps variable ids to their truth values; index 0 is unused.
type Assignment []bool

// Value reports the binding of v, false for variables beyond the range.
func (a Assignment) Value(v int) bool {
	if v < 1 || v >= len(a) {
		return false
	}

	return a[v]
}

// MaxSAT is the optimization façade: accumulate hard and weighted soft
// clauses, then solve to the optimum.
type MaxSAT interface {
	// AddHard appends a hard clause to the formula.
	AddHard(c cnfio.Clause)
	// AddSoft appends a soft clause with the given positive weight.
	AddSoft(weight int, c cnfio.Clause)
	// Solve blocks until the engine returns an optimal assignment over
	// every variable appearing in the formula, together with the optimum
	// cost (total weight of falsified soft clauses). ErrUnsat when the
	// hard set is infeasible.
	Solve() (Assignment, int, error)
}

// SAT is the decision façade used by the CEGAR verification oracle.
type SAT interface {
	// AddClause appends a clause to the formula.
	AddClause(c cnfio.Clause)
	// Solve reports satisfiability; on sat the assignment covers every
	// variable of the formula.
	Solve() (Assignment, bool, error)
}

// maxVar returns the largest variable id mentioned by the pool.
func maxVar(pools ...[]cnfio.Clause) int {
	m := 0
	for _, pool := range pools {
		for _, c := range pool {
			for _, lit := range c {
				v := lit
				if v < 0 {
					v = -v
				}
				if v > m {
					m = v
				}
			}
		}
	}

	return m
}
