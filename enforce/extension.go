// Package enforce: extension-enforcement pipelines - the one-shot MaxSAT
// path and the maximality refinement loop for preferred, semi-stable and
// stage semantics.
package enforce

import (
	"github.com/katalvlaran/afmend/af"
	"github.com/katalvlaran/afmend/cnfio"
	"github.com/katalvlaran/afmend/encode"
	"github.com/katalvlaran/afmend/solver"
)

// extensionHard selects the hard-clause set of a direct extension
// encoding. Stage has no strict clause set of its own: the empty pool
// leaves everything to the refinement loop.
func extensionHard(f *af.Framework, strict bool, sem af.Semantics) []cnfio.Clause {
	if strict {
		switch sem {
		case af.Admissible:
			return encode.AdmissibleStrict(f)
		case af.Complete, af.Preferred, af.SemiStable:
			return encode.CompleteStrict(f)
		case af.Stable:
			return encode.StableStrict(f)
		default:
			return nil
		}
	}
	switch sem {
	case af.Stage:
		return encode.ConflictFreeNonStrict(f)
	case af.Admissible, af.SemiStable:
		return encode.AdmissibleNonStrict(f)
	case af.Stable:
		return encode.StableNonStrict(f)
	default:
		return nil
	}
}

// groundedHard selects the grounded clause set: the full ladder with its
// final acceptance units for the direct encoding, or the complete /
// admissible abstraction with the level-one base for CEGAR.
func groundedHard(f *af.Framework, strict, cegar bool) []cnfio.Clause {
	if !cegar {
		if strict {
			hard := encode.GroundedStrict(f)
			last := len(f.Enforcements())
			for _, e := range f.Enforcements() {
				hard = append(hard, cnfio.Clause{f.LevelVar(last, e)})
			}

			return hard
		}
		hard := encode.GroundedNonStrict(f)
		last := (f.N() + 1) / 2
		for _, e := range f.Enforcements() {
			hard = append(hard, cnfio.Clause{f.LevelVar(last, e)})
		}

		return hard
	}
	if strict {
		return append(encode.CompleteStrict(f), encode.LevelOneStrict(f)...)
	}

	return append(encode.AdmissibleNonStrict(f), encode.LevelOneNonStrict(f)...)
}

// enforceExtension runs strict / non-strict extension enforcement for
// every semantics except the grounded CEGAR variant: a single MaxSAT
// call where the encoding is exact, the maximality refinement loop for
// preferred (strict), semi-stable and stage.
func enforceExtension(f *af.Framework, mode af.Mode, sem af.Semantics, o *Options) (*Result, error) {
	strict := mode == af.Strict
	if err := f.Initialize(mode, sem, false); err != nil {
		return nil, err
	}

	var hard []cnfio.Clause
	if sem == af.Grounded {
		hard = groundedHard(f, strict, false)
	} else {
		hard = extensionHard(f, strict, sem)
	}
	ms := o.NewMaxSAT()
	for _, c := range hard {
		ms.AddHard(c)
	}
	for _, c := range encode.Soft(f) {
		ms.AddSoft(1, c)
	}

	secondLevel := sem == af.SemiStable || sem == af.Stage || (strict && sem == af.Preferred)
	if !secondLevel {
		assignment, cost, err := ms.Solve()
		if err != nil {
			return nil, solveErr(strict, err)
		}
		out := rebuild(f, assignment)

		return &Result{Output: out, Cost: cost + forcedEdits(f), Changes: changes(f, out)}, nil
	}

	// Maximality lives one level up: solve the abstraction, then ask the
	// decision oracle for a counterexample extension.
	if !strict {
		for _, c := range encode.RangeNonStrict(f) {
			ms.AddHard(c)
		}
		if sem == af.Stage {
			for _, c := range encode.AttackVarDefs(f) {
				ms.AddHard(c)
			}
		}
	}
	iters := 0
	for {
		iters++
		assignment, cost, err := ms.Solve()
		if err != nil {
			return nil, solveErr(strict, err)
		}
		cand := candidate(f, assignment, !strict)
		counterexample, err := maximalityCounterexample(f, cand, sem, o)
		if err != nil {
			return nil, err
		}
		if !counterexample {
			o.Logger.WithField("iterations", iters).Info("refinement converged")
			out := rebuild(f, assignment)

			return &Result{Output: out, Cost: cost + forcedEdits(f), Changes: changes(f, out), Iterations: iters}, nil
		}
		clause := forbidPattern(f, assignment)
		if !strict {
			for i := 1; i <= f.N(); i++ {
				if !cand.InRange(i) {
					clause = append(clause, f.RangeVar(i))
				}
			}
		}
		ms.AddHard(clause)
	}
}

// candidate materializes the framework proposed by an assignment: the
// input's arguments, the true attack bits, the enforced set, and - in
// non-strict mode - the extension read off the argument variables.
func candidate(f *af.Framework, assignment solver.Assignment, withExtension bool) *af.Framework {
	cand := rebuild(f, assignment)
	for _, e := range f.Enforcements() {
		_ = cand.AddEnforcement(f.Name(e))
	}
	if withExtension {
		for v := 1; v <= f.VarCount(); v++ {
			if id, ok := f.VarArg(v); ok && assignment.Value(v) {
				_ = cand.AddEnforcement(f.Name(id))
			}
		}
	}

	return cand
}

// maximalityCounterexample asks the decision oracle whether the
// candidate's extension is beaten: by a complete strict superset
// (preferred) or by an extension with strictly larger range
// (semi-stable: complete; stage: conflict-free).
func maximalityCounterexample(f *af.Framework, cand *af.Framework, sem af.Semantics, o *Options) (bool, error) {
	cand.InitializeEnum(sem)
	var check []cnfio.Clause
	if sem != af.Stage {
		check = encode.OracleComplete(cand)
	} else {
		check = encode.OracleConflictFree(cand)
	}
	if sem == af.Preferred {
		for i := 1; i <= f.N(); i++ {
			if f.Enforced(i) {
				check = append(check, cnfio.Clause{cand.ArgVar(i)})
			}
		}
		var superset cnfio.Clause
		for i := 1; i <= f.N(); i++ {
			if !f.Enforced(i) {
				superset = append(superset, cand.ArgVar(i))
			}
		}
		check = append(check, superset)
	} else {
		for i := 1; i <= cand.N(); i++ {
			if cand.InRange(i) {
				check = append(check, cnfio.Clause{cand.RangeVar(i)})
			}
		}
		var wider cnfio.Clause
		for i := 1; i <= cand.N(); i++ {
			if !cand.InRange(i) {
				wider = append(wider, cand.RangeVar(i))
			}
		}
		check = append(check, wider)
		check = append(check, encode.OracleRange(cand)...)
	}

	oracle := o.NewSAT()
	for _, c := range check {
		oracle.AddClause(c)
	}
	_, sat, err := oracle.Solve()

	return sat, err
}
