// Package enforce: credulous and skeptical status pipelines.
package enforce

import (
	"github.com/katalvlaran/afmend/af"
	"github.com/katalvlaran/afmend/cnfio"
	"github.com/katalvlaran/afmend/encode"
)

// enforceCred runs credulous status enforcement: each positive target
// must be credulously accepted, no negative target may be. Without
// negative targets the witness encoding is exact and one MaxSAT call
// suffices; otherwise every candidate is checked for an extension that
// slips in a negative target, and falsified candidates are forbidden.
func enforceCred(f *af.Framework, sem af.Semantics, o *Options) (*Result, error) {
	f.InitializeCred()

	var hard []cnfio.Clause
	if sem == af.Admissible {
		hard = encode.CredAdmissible(f)
	} else {
		hard = encode.CredStable(f)
	}
	ms := o.NewMaxSAT()
	for _, c := range hard {
		ms.AddHard(c)
	}
	for _, c := range encode.Soft(f) {
		ms.AddSoft(1, c)
	}

	if len(f.NegEnforcements()) == 0 {
		assignment, cost, err := ms.Solve()
		if err != nil {
			return nil, solveErr(true, err)
		}
		out := rebuild(f, assignment)

		return &Result{Output: out, Cost: cost + forcedEdits(f), Changes: changes(f, out)}, nil
	}

	iters := 0
	for {
		iters++
		assignment, cost, err := ms.Solve()
		if err != nil {
			return nil, solveErr(true, err)
		}
		temp := rebuild(f, assignment)
		temp.InitializeEnum(sem)

		var check []cnfio.Clause
		if sem == af.Admissible {
			check = encode.OracleAdmissible(temp)
		} else {
			check = encode.OracleStable(temp)
		}
		// Counterexample: some extension contains a negative target.
		var intruder cnfio.Clause
		for _, t := range f.NegEnforcements() {
			intruder = append(intruder, temp.ArgVar(t))
		}
		check = append(check, intruder)

		oracle := o.NewSAT()
		for _, c := range check {
			oracle.AddClause(c)
		}
		_, sat, err := oracle.Solve()
		if err != nil {
			return nil, err
		}
		if !sat {
			o.Logger.WithField("iterations", iters).Info("refinement converged")

			return &Result{Output: temp, Cost: cost + forcedEdits(f), Changes: changes(f, temp), Iterations: iters}, nil
		}
		ms.AddHard(forbidPattern(f, assignment))
	}
}

// enforceSkept runs skeptical status enforcement under stable semantics.
// The witness encoding guarantees some stable extension contains E+ (and
// per-target witnesses avoid each negative target); skeptical acceptance
// of E+ itself is certified by the loop: a candidate survives only when
// no stable extension misses a positive target.
func enforceSkept(f *af.Framework, o *Options) (*Result, error) {
	f.InitializeSkept()

	ms := o.NewMaxSAT()
	for _, c := range encode.SkeptStable(f) {
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
			return nil, solveErr(true, err)
		}
		temp := rebuild(f, assignment)
		temp.InitializeEnum(af.Stable)

		check := encode.OracleStable(temp)
		// Counterexample: some stable extension misses a positive target.
		var missing cnfio.Clause
		for _, t := range f.Enforcements() {
			missing = append(missing, -temp.ArgVar(t))
		}
		check = append(check, missing)

		oracle := o.NewSAT()
		for _, c := range check {
			oracle.AddClause(c)
		}
		_, sat, err := oracle.Solve()
		if err != nil {
			return nil, err
		}
		if !sat {
			o.Logger.WithField("iterations", iters).Info("refinement converged")

			return &Result{Output: temp, Cost: cost + forcedEdits(f), Changes: changes(f, temp), Iterations: iters}, nil
		}
		ms.AddHard(forbidPattern(f, assignment))
	}
}
