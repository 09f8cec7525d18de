// Package encode: the layered encoding of the grounded fixpoint.
//
// Acceptance is stratified into levels: level(1,i) holds iff i has no
// surviving attacker, level(n,i) iff every attacker of i has been
// neutralized by level n−1. Two relay families keep the CNF expansion
// linear per level:
//
//	level_attack(n−1,(k,j))       ↔ att(k,j) ∧ level(n−1,k)
//	not_defended(n−1,(j,i))       ↔ att(j,i) ∧ ⋀_k ¬level_attack(n−1,(k,j))
//	level(n,i)                    ↔ ⋀_j ¬not_defended(n−1,(j,i))
//
// The strict ladder runs |E+| levels over enforced targets; the
// non-strict ladder runs ⌈n/2⌉ levels over all arguments. The final
// "enforced arguments reach the last level" units are appended by the
// enforcement driver.
package encode

import (
	"github.com/katalvlaran/afmend/af"
	"github.com/katalvlaran/afmend/cnfio"
)

// LevelOneStrict emits the level-one equivalence for each enforced
// target (accepted at level one iff no non-enforced attacker remains)
// and requires some enforced argument on level one.
func LevelOneStrict(f *af.Framework) []cnfio.Clause {
	var clauses []cnfio.Clause
	for i := 1; i <= f.N(); i++ {
		if !f.Enforced(i) {
			continue
		}
		for j := 1; j <= f.N(); j++ {
			if !f.Enforced(j) {
				clauses = append(clauses, cnfio.Clause{-f.LevelVar(1, i), -f.AttVar(j, i)})
			}
		}
		clause := cnfio.Clause{f.LevelVar(1, i)}
		for j := 1; j <= f.N(); j++ {
			if !f.Enforced(j) {
				clause = append(clause, f.AttVar(j, i))
			}
		}
		clauses = append(clauses, clause)
	}
	var some cnfio.Clause
	for i := 1; i <= f.N(); i++ {
		if f.Enforced(i) {
			some = append(some, f.LevelVar(1, i))
		}
	}
	clauses = append(clauses, some)

	return clauses
}

// LevelOneNonStrict emits the level-one equivalence for every argument,
// requires some argument on level one, and ties level-one roots into the
// chosen extension.
func LevelOneNonStrict(f *af.Framework) []cnfio.Clause {
	var clauses []cnfio.Clause
	for i := 1; i <= f.N(); i++ {
		for j := 1; j <= f.N(); j++ {
			if !f.Enforced(i) || !f.Enforced(j) {
				clauses = append(clauses, cnfio.Clause{-f.LevelVar(1, i), -f.AttVar(j, i)})
			}
		}
		clause := cnfio.Clause{f.LevelVar(1, i)}
		for j := 1; j <= f.N(); j++ {
			if !f.Enforced(i) || !f.Enforced(j) {
				clause = append(clause, f.AttVar(j, i))
			}
		}
		clauses = append(clauses, clause)
	}
	var some cnfio.Clause
	for i := 1; i <= f.N(); i++ {
		some = append(some, f.LevelVar(1, i))
	}
	clauses = append(clauses, some)
	for i := 1; i <= f.N(); i++ {
		if !f.Enforced(i) {
			clauses = append(clauses, cnfio.Clause{-f.LevelVar(1, i), f.ArgVar(i)})
		}
	}

	return clauses
}

// GroundedStrict is the full strict ladder: level one, levels 2..|E+|
// with the relay definitions, level propagation, and the complete
// closure block keeping non-enforced arguments out of the defended set.
func GroundedStrict(f *af.Framework) []cnfio.Clause {
	var clauses []cnfio.Clause
	levels := len(f.Enforcements())

	// Level one, inlined rather than via LevelOneStrict so the clause
	// order matches the canonical direct encoding.
	for i := 1; i <= f.N(); i++ {
		if !f.Enforced(i) {
			continue
		}
		for j := 1; j <= f.N(); j++ {
			if !f.Enforced(j) {
				clauses = append(clauses, cnfio.Clause{-f.LevelVar(1, i), -f.AttVar(j, i)})
			}
		}
		clause := cnfio.Clause{f.LevelVar(1, i)}
		for j := 1; j <= f.N(); j++ {
			if !f.Enforced(j) {
				clause = append(clause, f.AttVar(j, i))
			}
		}
		clauses = append(clauses, clause)
	}
	var some cnfio.Clause
	for i := 1; i <= f.N(); i++ {
		if f.Enforced(i) {
			some = append(some, f.LevelVar(1, i))
		}
	}
	clauses = append(clauses, some)

	for n := 2; n <= levels; n++ {
		for i := 1; i <= f.N(); i++ {
			if !f.Enforced(i) {
				continue
			}
			for j := 1; j <= f.N(); j++ {
				if !f.Enforced(j) {
					clauses = append(clauses, cnfio.Clause{-f.LevelVar(n, i), -f.LevelNotDefendedVar(n-1, j, i)})
				}
			}
			clause := cnfio.Clause{f.LevelVar(n, i)}
			for j := 1; j <= f.N(); j++ {
				if !f.Enforced(j) {
					clause = append(clause, f.LevelNotDefendedVar(n-1, j, i))
				}
			}
			clauses = append(clauses, clause)
		}
		// level_attack(n−1,(k,j)) ↔ att(k,j) ∧ level(n−1,k)
		for j := 1; j <= f.N(); j++ {
			if f.Enforced(j) {
				continue
			}
			for k := 1; k <= f.N(); k++ {
				if !f.Enforced(k) {
					continue
				}
				clauses = append(clauses,
					cnfio.Clause{-f.LevelAttackVar(n-1, k, j), f.AttVar(k, j)},
					cnfio.Clause{-f.LevelAttackVar(n-1, k, j), f.LevelVar(n-1, k)},
					cnfio.Clause{f.LevelAttackVar(n-1, k, j), -f.AttVar(k, j), -f.LevelVar(n-1, k)})
			}
		}
		// not_defended(n−1,(j,i)) ↔ att(j,i) ∧ ⋀_k ¬level_attack(n−1,(k,j))
		for i := 1; i <= f.N(); i++ {
			if !f.Enforced(i) {
				continue
			}
			for j := 1; j <= f.N(); j++ {
				if f.Enforced(j) {
					continue
				}
				clauses = append(clauses, cnfio.Clause{-f.LevelNotDefendedVar(n-1, j, i), f.AttVar(j, i)})
				for k := 1; k <= f.N(); k++ {
					if f.Enforced(k) {
						clauses = append(clauses, cnfio.Clause{-f.LevelNotDefendedVar(n-1, j, i), -f.LevelAttackVar(n-1, k, j)})
					}
				}
				clause := cnfio.Clause{f.LevelNotDefendedVar(n-1, j, i), -f.AttVar(j, i)}
				for k := 1; k <= f.N(); k++ {
					if f.Enforced(k) {
						clause = append(clause, f.LevelAttackVar(n-1, k, j))
					}
				}
				clauses = append(clauses, clause)
			}
		}
	}
	// Level propagation: once accepted, stay accepted.
	for i := 1; i <= f.N(); i++ {
		if !f.Enforced(i) {
			continue
		}
		for n := 2; n <= levels; n++ {
			clauses = append(clauses, cnfio.Clause{-f.LevelVar(n-1, i), f.LevelVar(n, i)})
		}
	}
	clauses = append(clauses, completeClosure(f)...)

	return clauses
}

// GroundedNonStrict is the ladder quantified over all arguments with
// bound ⌈n/2⌉; attack variables of fixed (doubly enforced) pairs drop
// out of the relay definitions.
func GroundedNonStrict(f *af.Framework) []cnfio.Clause {
	var clauses []cnfio.Clause
	levels := (f.N() + 1) / 2

	for i := 1; i <= f.N(); i++ {
		for j := 1; j <= f.N(); j++ {
			if !f.Enforced(i) || !f.Enforced(j) {
				clauses = append(clauses, cnfio.Clause{-f.LevelVar(1, i), -f.AttVar(j, i)})
			}
		}
		clause := cnfio.Clause{f.LevelVar(1, i)}
		for j := 1; j <= f.N(); j++ {
			if !f.Enforced(i) || !f.Enforced(j) {
				clause = append(clause, f.AttVar(j, i))
			}
		}
		clauses = append(clauses, clause)
	}
	var some cnfio.Clause
	for i := 1; i <= f.N(); i++ {
		some = append(some, f.LevelVar(1, i))
	}
	clauses = append(clauses, some)

	for n := 2; n <= levels; n++ {
		for i := 1; i <= f.N(); i++ {
			for j := 1; j <= f.N(); j++ {
				clauses = append(clauses, cnfio.Clause{-f.LevelVar(n, i), -f.LevelNotDefendedVar(n-1, j, i)})
			}
			clause := cnfio.Clause{f.LevelVar(n, i)}
			for j := 1; j <= f.N(); j++ {
				clause = append(clause, f.LevelNotDefendedVar(n-1, j, i))
			}
			clauses = append(clauses, clause)
		}
		for j := 1; j <= f.N(); j++ {
			for k := 1; k <= f.N(); k++ {
				clause := cnfio.Clause{-f.LevelAttackVar(n-1, k, j)}
				if !f.Enforced(k) || !f.Enforced(j) {
					clause = append(clause, f.AttVar(k, j))
				}
				clauses = append(clauses, clause)
				clauses = append(clauses, cnfio.Clause{-f.LevelAttackVar(n-1, k, j), f.LevelVar(n-1, k)})
				if !f.Enforced(k) || !f.Enforced(j) {
					clauses = append(clauses, cnfio.Clause{f.LevelAttackVar(n-1, k, j), -f.AttVar(k, j), -f.LevelVar(n-1, k)})
				}
			}
		}
		for i := 1; i <= f.N(); i++ {
			for j := 1; j <= f.N(); j++ {
				clause := cnfio.Clause{-f.LevelNotDefendedVar(n-1, j, i)}
				if !f.Enforced(j) || !f.Enforced(i) {
					clause = append(clause, f.AttVar(j, i))
				}
				clauses = append(clauses, clause)
				for k := 1; k <= f.N(); k++ {
					clauses = append(clauses, cnfio.Clause{-f.LevelNotDefendedVar(n-1, j, i), -f.LevelAttackVar(n-1, k, j)})
				}
				if !f.Enforced(j) || !f.Enforced(i) {
					clause = cnfio.Clause{f.LevelNotDefendedVar(n-1, j, i), -f.AttVar(j, i)}
					for k := 1; k <= f.N(); k++ {
						clause = append(clause, f.LevelAttackVar(n-1, k, j))
					}
					clauses = append(clauses, clause)
				}
			}
		}
	}
	for i := 1; i <= f.N(); i++ {
		for n := 2; n <= levels; n++ {
			clauses = append(clauses, cnfio.Clause{-f.LevelVar(n-1, i), f.LevelVar(n, i)})
		}
	}

	return clauses
}
