// Package solver: MaxSAT adapter over gophersat.
package solver

import (
	gophersat "github.com/crillab/gophersat/solver"

	"github.com/katalvlaran/afmend/cnfio"
)

// Gopher is the gophersat-backed MaxSAT adapter. Clauses persist across
// Solve calls; every call translates the accumulated pools into a fresh
// engine instance (the rebuild-from-scratch contract), attaches one
// blocking literal per soft clause and minimizes the blocking sum.
type Gopher struct {
	hard []cnfio.Clause
	soft []weighted
}

type weighted struct {
	weight int
	clause cnfio.Clause
}

// NewMaxSAT returns an empty gophersat-backed MaxSAT adapter.
func NewMaxSAT() *Gopher {
	return &Gopher{}
}

// AddHard appends a hard clause. The clause is copied; callers may reuse
// the slice.
func (g *Gopher) AddHard(c cnfio.Clause) {
	g.hard = append(g.hard, append(cnfio.Clause(nil), c...))
}

// AddSoft appends a soft clause with the given weight.
func (g *Gopher) AddSoft(weight int, c cnfio.Clause) {
	g.soft = append(g.soft, weighted{weight: weight, clause: append(cnfio.Clause(nil), c...)})
}

// Solve rebuilds the engine over the accumulated pools and runs it to
// the optimum. The returned assignment covers variables 1..maxVar of the
// caller's formula; blocking literals are stripped.
func (g *Gopher) Solve() (Assignment, int, error) {
	for _, c := range g.hard {
		if len(c) == 0 {
			return nil, 0, ErrUnsat
		}
	}
	nbVars := maxVar(g.hard, softClauses(g.soft))

	cnf := make([][]int, 0, len(g.hard)+len(g.soft))
	for _, c := range g.hard {
		cnf = append(cnf, append([]int(nil), c...))
	}
	blockLits := make([]gophersat.Lit, 0, len(g.soft))
	blockWeights := make([]int, 0, len(g.soft))
	block := nbVars
	for _, s := range g.soft {
		block++
		relaxed := make([]int, 0, len(s.clause)+1)
		relaxed = append(relaxed, s.clause...)
		relaxed = append(relaxed, block)
		cnf = append(cnf, relaxed)
		blockLits = append(blockLits, gophersat.IntToLit(int32(block)))
		blockWeights = append(blockWeights, s.weight)
	}

	pb := gophersat.ParseSlice(cnf)
	if len(blockLits) > 0 {
		pb.SetCostFunc(blockLits, blockWeights)
	}
	engine := gophersat.New(pb)
	cost := engine.Minimize()
	if cost < 0 {
		return nil, 0, ErrUnsat
	}

	model := engine.Model()
	assignment := make(Assignment, nbVars+1)
	for v := 1; v <= nbVars && v-1 < len(model); v++ {
		assignment[v] = model[v-1]
	}

	return assignment, cost, nil
}

func softClauses(soft []weighted) []cnfio.Clause {
	clauses := make([]cnfio.Clause, len(soft))
	for i, s := range soft {
		clauses[i] = s.clause
	}

	return clauses
}
