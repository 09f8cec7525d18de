// Package encode: hard clauses for extension enforcement under the
// conflict-free, admissible, complete and stable semantics.
package encode

import (
	"github.com/katalvlaran/afmend/af"
	"github.com/katalvlaran/afmend/cnfio"
)

// AdmissibleStrict requires every attacker j of an enforced argument i
// to be counter-attacked by some enforced argument:
// ¬att(j,i) ∨ ⋁_{k∈E+} att(k,j).
func AdmissibleStrict(f *af.Framework) []cnfio.Clause {
	var clauses []cnfio.Clause
	for i := 1; i <= f.N(); i++ {
		if !f.Enforced(i) {
			continue
		}
		for j := 1; j <= f.N(); j++ {
			if f.Enforced(j) {
				continue
			}
			clause := cnfio.Clause{-f.AttVar(j, i)}
			for k := 1; k <= f.N(); k++ {
				if f.Enforced(k) {
					clause = append(clause, f.AttVar(k, j))
				}
			}
			clauses = append(clauses, clause)
		}
	}

	return clauses
}

// completeClosure forces every non-enforced argument to be either
// attacked by the enforced extension or to have some attacker that no
// enforced argument attacks (so it is not defended), via the attackVar
// gadget:
// attackVar(i,j) ↔ att(j,i) ∧ ⋀_{k∈E+} ¬att(k,j).
func completeClosure(f *af.Framework) []cnfio.Clause {
	var clauses []cnfio.Clause
	for i := 1; i <= f.N(); i++ {
		if f.Enforced(i) {
			continue
		}
		var clause cnfio.Clause
		for j := 1; j <= f.N(); j++ {
			if !f.Enforced(j) {
				clause = append(clause, f.AttackVar(i, j))
			} else {
				clause = append(clause, f.AttVar(j, i))
			}
		}
		clauses = append(clauses, clause)
	}
	for i := 1; i <= f.N(); i++ {
		if f.Enforced(i) {
			continue
		}
		for j := 1; j <= f.N(); j++ {
			if !f.Enforced(j) {
				clauses = append(clauses, cnfio.Clause{-f.AttackVar(i, j), f.AttVar(j, i)})
			}
		}
	}
	for i := 1; i <= f.N(); i++ {
		if f.Enforced(i) {
			continue
		}
		for j := 1; j <= f.N(); j++ {
			if f.Enforced(j) {
				continue
			}
			for k := 1; k <= f.N(); k++ {
				if f.Enforced(k) {
					clauses = append(clauses, cnfio.Clause{-f.AttackVar(i, j), -f.AttVar(k, j)})
				}
			}
		}
	}
	for i := 1; i <= f.N(); i++ {
		if f.Enforced(i) {
			continue
		}
		for j := 1; j <= f.N(); j++ {
			if f.Enforced(j) {
				continue
			}
			clause := cnfio.Clause{-f.AttVar(j, i)}
			for k := 1; k <= f.N(); k++ {
				if f.Enforced(k) {
					clause = append(clause, f.AttVar(k, j))
				}
			}
			clause = append(clause, f.AttackVar(i, j))
			clauses = append(clauses, clause)
		}
	}

	return clauses
}

// CompleteStrict is AdmissibleStrict plus the closure gadget binding
// attackVar and forcing non-enforced arguments out of the defended set.
func CompleteStrict(f *af.Framework) []cnfio.Clause {
	return append(AdmissibleStrict(f), completeClosure(f)...)
}

// StableStrict requires every non-enforced argument to be attacked by
// some enforced argument.
func StableStrict(f *af.Framework) []cnfio.Clause {
	var clauses []cnfio.Clause
	for i := 1; i <= f.N(); i++ {
		if f.Enforced(i) {
			continue
		}
		var clause cnfio.Clause
		for j := 1; j <= f.N(); j++ {
			if f.Enforced(j) {
				clause = append(clause, f.AttVar(j, i))
			}
		}
		clauses = append(clauses, clause)
	}

	return clauses
}

// ConflictFreeNonStrict forbids attacks inside the chosen extension:
// ¬att(i,j) ∨ ¬in(i) ∨ ¬in(j), dropping the membership disjunct of an
// enforced endpoint and specializing i = j.
func ConflictFreeNonStrict(f *af.Framework) []cnfio.Clause {
	var clauses []cnfio.Clause
	for i := 1; i <= f.N(); i++ {
		for j := 1; j <= f.N(); j++ {
			switch {
			case !f.Enforced(i) && !f.Enforced(j):
				clause := cnfio.Clause{-f.AttVar(i, j), -f.ArgVar(i)}
				if i != j {
					clause = append(clause, -f.ArgVar(j))
				}
				clauses = append(clauses, clause)
			case !f.Enforced(i):
				clauses = append(clauses, cnfio.Clause{-f.AttVar(i, j), -f.ArgVar(i)})
			case !f.Enforced(j):
				clauses = append(clauses, cnfio.Clause{-f.AttVar(i, j), -f.ArgVar(j)})
			}
		}
	}

	return clauses
}

// attackedVarDefs ties attackedVar(i,j) to "i is in the extension and is
// attacked by j", one implication direction per clause.
func attackedVarDefs(f *af.Framework) []cnfio.Clause {
	var clauses []cnfio.Clause
	for i := 1; i <= f.N(); i++ {
		for j := 1; j <= f.N(); j++ {
			if !f.Enforced(i) && !f.Enforced(j) {
				clauses = append(clauses, cnfio.Clause{f.ArgVar(i), -f.AttackedVar(i, j)})
			}
		}
	}
	for i := 1; i <= f.N(); i++ {
		for j := 1; j <= f.N(); j++ {
			if !f.Enforced(i) && !f.Enforced(j) {
				clauses = append(clauses, cnfio.Clause{f.AttVar(j, i), -f.AttackedVar(i, j)})
			}
		}
	}
	for i := 1; i <= f.N(); i++ {
		for j := 1; j <= f.N(); j++ {
			if !f.Enforced(i) && !f.Enforced(j) {
				clauses = append(clauses, cnfio.Clause{-f.ArgVar(i), -f.AttVar(j, i), f.AttackedVar(i, j)})
			}
		}
	}

	return clauses
}

// AttackVarDefs ties attackVar(i,j) to "i is in the extension and
// attacks j". Shared by the non-strict admissible/stable encodings and
// the stage CEGAR abstraction.
func AttackVarDefs(f *af.Framework) []cnfio.Clause {
	var clauses []cnfio.Clause
	for i := 1; i <= f.N(); i++ {
		for j := 1; j <= f.N(); j++ {
			if !f.Enforced(i) && !f.Enforced(j) {
				clauses = append(clauses, cnfio.Clause{f.ArgVar(i), -f.AttackVar(i, j)})
			}
		}
	}
	for i := 1; i <= f.N(); i++ {
		for j := 1; j <= f.N(); j++ {
			if !f.Enforced(i) && !f.Enforced(j) {
				clauses = append(clauses, cnfio.Clause{f.AttVar(i, j), -f.AttackVar(i, j)})
			}
		}
	}
	for i := 1; i <= f.N(); i++ {
		for j := 1; j <= f.N(); j++ {
			if !f.Enforced(i) && !f.Enforced(j) {
				clauses = append(clauses, cnfio.Clause{-f.ArgVar(i), -f.AttVar(i, j), f.AttackVar(i, j)})
			}
		}
	}

	return clauses
}

// AdmissibleNonStrict is ConflictFreeNonStrict plus the defense
// constraint through the attackedVar gadget and the definitions of both
// gadget families.
func AdmissibleNonStrict(f *af.Framework) []cnfio.Clause {
	clauses := ConflictFreeNonStrict(f)
	for i := 1; i <= f.N(); i++ {
		if !f.Enforced(i) {
			for j := 1; j <= f.N(); j++ {
				if f.Enforced(j) {
					continue
				}
				clause := cnfio.Clause{-f.AttackedVar(i, j)}
				for k := 1; k <= f.N(); k++ {
					if !f.Enforced(k) {
						clause = append(clause, f.AttackVar(k, j))
					} else {
						clause = append(clause, f.AttVar(k, j))
					}
				}
				clauses = append(clauses, clause)
			}
			continue
		}
		for j := 1; j <= f.N(); j++ {
			if f.Enforced(j) {
				continue
			}
			clause := cnfio.Clause{-f.AttVar(j, i)}
			for k := 1; k <= f.N(); k++ {
				if !f.Enforced(k) {
					clause = append(clause, f.AttackVar(k, j))
				} else {
					clause = append(clause, f.AttVar(k, j))
				}
			}
			clauses = append(clauses, clause)
		}
	}
	clauses = append(clauses, attackedVarDefs(f)...)
	clauses = append(clauses, AttackVarDefs(f)...)

	return clauses
}

// StableNonStrict is ConflictFreeNonStrict plus full-range coverage:
// every argument outside the extension is attacked by it.
func StableNonStrict(f *af.Framework) []cnfio.Clause {
	clauses := ConflictFreeNonStrict(f)
	for i := 1; i <= f.N(); i++ {
		if f.Enforced(i) {
			continue
		}
		clause := cnfio.Clause{f.ArgVar(i)}
		for j := 1; j <= f.N(); j++ {
			if f.Enforced(j) {
				clause = append(clause, f.AttVar(j, i))
			} else {
				clause = append(clause, f.AttackVar(j, i))
			}
		}
		clauses = append(clauses, clause)
	}
	clauses = append(clauses, AttackVarDefs(f)...)

	return clauses
}
