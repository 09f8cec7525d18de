// Package solver: decision-SAT adapter over gini.
package solver

import (
	"github.com/go-air/gini"
	"github.com/go-air/gini/z"

	"github.com/katalvlaran/afmend/cnfio"
)

// Gini is the gini-backed decision-SAT adapter. Like the MaxSAT side,
// clauses persist and every Solve replays them into a fresh engine.
type Gini struct {
	clauses []cnfio.Clause
}

// NewSAT returns an empty gini-backed decision-SAT adapter.
func NewSAT() *Gini {
	return &Gini{}
}

// AddClause appends a clause (copied).
func (s *Gini) AddClause(c cnfio.Clause) {
	s.clauses = append(s.clauses, append(cnfio.Clause(nil), c...))
}

// Solve reports satisfiability of the accumulated clause pool; on sat
// the assignment covers variables 1..maxVar.
func (s *Gini) Solve() (Assignment, bool, error) {
	for _, c := range s.clauses {
		if len(c) == 0 {
			return nil, false, nil
		}
	}
	nbVars := maxVar(s.clauses)

	engine := gini.New()
	for _, c := range s.clauses {
		for _, lit := range c {
			engine.Add(z.Dimacs2Lit(lit))
		}
		engine.Add(z.LitNull)
	}

	if engine.Solve() != 1 {
		return nil, false, nil
	}
	assignment := make(Assignment, nbVars+1)
	for v := 1; v <= nbVars; v++ {
		assignment[v] = engine.Value(z.Dimacs2Lit(v))
	}

	return assignment, true, nil
}
