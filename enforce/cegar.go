// Package enforce: the grounded refinement loop.
//
// The direct grounded ladder adds a full block of relay variables and
// clauses for every level,
// so -c trades it for a weak abstraction (complete / admissible plus the
// level-one base) and verifies each optimal candidate against the real
// fixpoint. A falsified candidate is excluded not by forbidding its full
// attack pattern but by the labeling-driven clause below, which rules
// out the whole class of assignments that fail the same way.
package enforce

import (
	"github.com/katalvlaran/afmend/af"
	"github.com/katalvlaran/afmend/cnfio"
	"github.com/katalvlaran/afmend/encode"
	"github.com/katalvlaran/afmend/grounded"
)

// groundedCEGAR runs strict / non-strict grounded enforcement through
// the refinement loop.
func groundedCEGAR(f *af.Framework, mode af.Mode, o *Options) (*Result, error) {
	strict := mode == af.Strict
	if err := f.Initialize(mode, af.Grounded, true); err != nil {
		return nil, err
	}

	ms := o.NewMaxSAT()
	for _, c := range groundedHard(f, strict, true) {
		ms.AddHard(c)
	}
	for _, c := range encode.Soft(f) {
		ms.AddSoft(1, c)
	}

	iters := 0
	for {
		iters++
		assignment, cost, err := ms.Solve()
		if err != nil {
			return nil, solveErr(strict, err)
		}
		temp := rebuild(f, assignment)

		var verified bool
		if strict {
			verified = grounded.IsGrounded(temp, f.Enforcements())
		} else {
			verified = grounded.IsSubsetOfGrounded(temp, f.Enforcements())
		}
		if verified {
			o.Logger.WithField("iterations", iters).Info("refinement converged")

			return &Result{Output: temp, Cost: cost + forcedEdits(f), Changes: changes(f, temp), Iterations: iters}, nil
		}
		ms.AddHard(groundedRefinement(f, temp, grounded.Labeling(temp)))
	}
}

// groundedRefinement derives the refinement clause from the candidate's
// grounded labeling. Per attack pair (skipping fixed pairs):
//
//	present, ACCEPTED→REJECTED   : ¬attVar  (the edge did its job; drop it elsewhere)
//	present, UNDECIDED→UNDECIDED : ¬attVar  (the edge keeps a cycle alive)
//	absent,  ACCEPTED→{ACC,UND}  : +attVar  (an accepted source could break the target)
//	absent,  {REJ,UND}→ACCEPTED  : +attVar  (a new attacker could unseat the target)
//
// Any other combination contributes nothing. This table is load-bearing:
// it is what guarantees each iteration excludes a fresh class of
// assignments.
func groundedRefinement(f *af.Framework, temp *af.Framework, labels map[int]grounded.Label) cnfio.Clause {
	var clause cnfio.Clause
	for i := 1; i <= f.N(); i++ {
		for j := 1; j <= f.N(); j++ {
			v := f.AttVar(i, j)
			if v == 0 {
				continue
			}
			li, lj := labels[i], labels[j]
			if temp.AttackExists(i, j) {
				if (li == grounded.Accepted && lj == grounded.Rejected) ||
					(li == grounded.Undecided && lj == grounded.Undecided) {
					clause = append(clause, -v)
				}
				continue
			}
			if (li == grounded.Accepted && (lj == grounded.Accepted || lj == grounded.Undecided)) ||
				(lj == grounded.Accepted && (li == grounded.Rejected || li == grounded.Undecided)) {
				clause = append(clause, v)
			}
		}
	}

	return clause
}
