// Package encode: witness-subgraph clauses for credulous and skeptical
// status enforcement.
//
// Each positive (credulous) or negative (skeptical) target t carries its
// own witness extension over WitnessArgVar(t,·): an admissible or stable
// extension of the output AF that contains t (credulous) or avoids t
// (skeptical). WitnessAttVar(t,(k,j)) relays "k is in t's witness and
// the attack (k,j) is present", defined by the usual three clauses.
package encode

import (
	"github.com/katalvlaran/afmend/af"
	"github.com/katalvlaran/afmend/cnfio"
)

// credConflictFree forbids attacks inside the witness of each positive
// target: between two witness members, onto or from the target itself,
// and self-attacks of witness members.
func credConflictFree(f *af.Framework) []cnfio.Clause {
	var clauses []cnfio.Clause
	for _, t := range f.Enforcements() {
		for j := 1; j <= f.N(); j++ {
			for k := 1; k <= f.N(); k++ {
				if j != k && j != t && k != t && !f.NegEnforced(j) && !f.NegEnforced(k) {
					clauses = append(clauses, cnfio.Clause{
						-f.WitnessArgVar(t, j), -f.WitnessArgVar(t, k), -f.AttVar(j, k)})
				}
			}
			if !f.Enforced(j) && !f.NegEnforced(j) {
				clauses = append(clauses, cnfio.Clause{-f.WitnessArgVar(t, j), -f.AttVar(j, j)})
			}
			if j != t && !f.NegEnforced(j) {
				clauses = append(clauses,
					cnfio.Clause{-f.WitnessArgVar(t, j), -f.AttVar(t, j)},
					cnfio.Clause{-f.WitnessArgVar(t, j), -f.AttVar(j, t)})
			}
		}
	}

	return clauses
}

// CredAdmissible enforces, for each positive target t, the existence of
// an admissible witness extension containing t and avoiding E−.
func CredAdmissible(f *af.Framework) []cnfio.Clause {
	clauses := credConflictFree(f)
	for _, t := range f.Enforcements() {
		// Defense of witness members: every attacker k of a member j is
		// counter-attacked by the witness or by t itself.
		for j := 1; j <= f.N(); j++ {
			if j == t || f.NegEnforced(j) {
				continue
			}
			for k := 1; k <= f.N(); k++ {
				if k == t || k == j {
					continue
				}
				clause := cnfio.Clause{-f.WitnessArgVar(t, j), -f.AttVar(k, j)}
				for l := 1; l <= f.N(); l++ {
					if (!f.Enforced(k) || l != k) && l != t && !f.NegEnforced(l) {
						clause = append(clause, f.WitnessAttVar(t, l, k))
					}
				}
				clause = append(clause, f.AttVar(t, k))
				clauses = append(clauses, clause)
			}
		}
		// Defense of the target: every attacker of t is counter-attacked.
		for j := 1; j <= f.N(); j++ {
			if j == t {
				continue
			}
			clause := cnfio.Clause{-f.AttVar(j, t)}
			for k := 1; k <= f.N(); k++ {
				if (!f.Enforced(j) || k != j) && k != t && !f.NegEnforced(k) {
					clause = append(clause, f.WitnessAttVar(t, k, j))
				}
			}
			clause = append(clause, f.AttVar(t, j))
			clauses = append(clauses, clause)
		}
	}
	// Relay definitions: witAtt(t,(k,j)) ↔ witArg(t,k) ∧ att(k,j).
	for _, t := range f.Enforcements() {
		for j := 1; j <= f.N(); j++ {
			if j == t {
				continue
			}
			for k := 1; k <= f.N(); k++ {
				if (!f.Enforced(j) || k != j) && k != t && !f.NegEnforced(k) {
					clauses = append(clauses,
						cnfio.Clause{-f.WitnessAttVar(t, k, j), f.WitnessArgVar(t, k)},
						cnfio.Clause{-f.WitnessAttVar(t, k, j), f.AttVar(k, j)},
						cnfio.Clause{-f.WitnessArgVar(t, k), -f.AttVar(k, j), f.WitnessAttVar(t, k, j)})
				}
			}
		}
	}

	return clauses
}

// CredStable enforces, for each positive target t, the existence of a
// stable witness extension containing t and avoiding E−: conflict-free
// witnesses whose range covers every other argument.
func CredStable(f *af.Framework) []cnfio.Clause {
	clauses := credConflictFree(f)
	for _, t := range f.Enforcements() {
		for j := 1; j <= f.N(); j++ {
			if j == t {
				continue
			}
			var clause cnfio.Clause
			if !f.NegEnforced(j) {
				clause = append(clause, f.WitnessArgVar(t, j))
			}
			for k := 1; k <= f.N(); k++ {
				if k != t && k != j && !f.NegEnforced(k) {
					clause = append(clause, f.WitnessAttVar(t, k, j))
				}
			}
			clause = append(clause, f.AttVar(t, j))
			clauses = append(clauses, clause)
		}
	}
	for _, t := range f.Enforcements() {
		for j := 1; j <= f.N(); j++ {
			if j == t {
				continue
			}
			for k := 1; k <= f.N(); k++ {
				if k != t && k != j && !f.NegEnforced(k) {
					clauses = append(clauses,
						cnfio.Clause{-f.WitnessAttVar(t, k, j), f.WitnessArgVar(t, k)},
						cnfio.Clause{-f.WitnessAttVar(t, k, j), f.AttVar(k, j)},
						cnfio.Clause{-f.WitnessArgVar(t, k), -f.AttVar(k, j), f.WitnessAttVar(t, k, j)})
				}
			}
		}
	}

	return clauses
}

// SkeptStable emits the hard clauses of skeptical status enforcement
// under stable semantics. With empty E− an anonymous witness (target 0)
// encodes "some stable extension contains E+"; otherwise each negative
// target t gets a witness stable extension avoiding t. The skeptical
// acceptance of E+ itself is verified by the CEGAR loop, not encoded.
func SkeptStable(f *af.Framework) []cnfio.Clause {
	var clauses []cnfio.Clause
	if len(f.NegEnforcements()) == 0 {
		for i := 1; i <= f.N(); i++ {
			for j := 1; j <= f.N(); j++ {
				switch {
				case !f.Enforced(i) && !f.Enforced(j):
					clauses = append(clauses, cnfio.Clause{
						-f.WitnessArgVar(0, i), -f.WitnessArgVar(0, j), -f.AttVar(i, j)})
				case f.Enforced(i) && !f.Enforced(j):
					clauses = append(clauses, cnfio.Clause{-f.WitnessArgVar(0, j), -f.AttVar(i, j)})
				case !f.Enforced(i) && f.Enforced(j):
					clauses = append(clauses, cnfio.Clause{-f.WitnessArgVar(0, i), -f.AttVar(i, j)})
				}
			}
			if !f.Enforced(i) {
				clauses = append(clauses, cnfio.Clause{-f.WitnessArgVar(0, i), -f.AttVar(i, i)})
			}
		}
		for i := 1; i <= f.N(); i++ {
			if f.Enforced(i) {
				continue
			}
			clause := cnfio.Clause{f.WitnessArgVar(0, i)}
			for j := 1; j <= f.N(); j++ {
				if !f.Enforced(j) {
					clause = append(clause, f.WitnessAttVar(0, j, i))
				}
			}
			for _, e := range f.Enforcements() {
				clause = append(clause, f.AttVar(e, i))
			}
			clauses = append(clauses, clause)
		}
		for i := 1; i <= f.N(); i++ {
			if f.Enforced(i) {
				continue
			}
			for j := 1; j <= f.N(); j++ {
				if !f.Enforced(j) {
					clauses = append(clauses,
						cnfio.Clause{-f.WitnessAttVar(0, j, i), f.WitnessArgVar(0, j)},
						cnfio.Clause{-f.WitnessAttVar(0, j, i), f.AttVar(j, i)},
						cnfio.Clause{-f.WitnessArgVar(0, j), -f.AttVar(j, i), f.WitnessAttVar(0, j, i)})
				}
			}
		}

		return clauses
	}

	for _, t := range f.NegEnforcements() {
		for j := 1; j <= f.N(); j++ {
			for k := 1; k <= f.N(); k++ {
				if j == k || j == t || k == t {
					continue
				}
				switch {
				case !f.Enforced(j) && !f.Enforced(k):
					clauses = append(clauses, cnfio.Clause{
						-f.WitnessArgVar(t, j), -f.WitnessArgVar(t, k), -f.AttVar(j, k)})
				case f.Enforced(j) && !f.Enforced(k):
					clauses = append(clauses, cnfio.Clause{-f.WitnessArgVar(t, k), -f.AttVar(j, k)})
				case !f.Enforced(j) && f.Enforced(k):
					clauses = append(clauses, cnfio.Clause{-f.WitnessArgVar(t, j), -f.AttVar(j, k)})
				}
			}
			if j != t && !f.Enforced(j) {
				clauses = append(clauses, cnfio.Clause{-f.WitnessArgVar(t, j), -f.AttVar(j, j)})
			}
		}
	}
	for _, t := range f.NegEnforcements() {
		for j := 1; j <= f.N(); j++ {
			if f.Enforced(j) {
				continue
			}
			var clause cnfio.Clause
			if j != t {
				clause = append(clause, f.WitnessArgVar(t, j))
			}
			for k := 1; k <= f.N(); k++ {
				if k != t && !f.Enforced(k) {
					clause = append(clause, f.WitnessAttVar(t, k, j))
				}
			}
			for _, e := range f.Enforcements() {
				clause = append(clause, f.AttVar(e, j))
			}
			clauses = append(clauses, clause)
		}
	}
	for _, t := range f.NegEnforcements() {
		for j := 1; j <= f.N(); j++ {
			if f.Enforced(j) {
				continue
			}
			for k := 1; k <= f.N(); k++ {
				if k != t && !f.Enforced(k) {
					clauses = append(clauses,
						cnfio.Clause{-f.WitnessAttVar(t, k, j), f.WitnessArgVar(t, k)},
						cnfio.Clause{-f.WitnessAttVar(t, k, j), f.AttVar(k, j)},
						cnfio.Clause{-f.WitnessArgVar(t, k), -f.AttVar(k, j), f.WitnessAttVar(t, k, j)})
				}
			}
		}
	}

	return clauses
}
