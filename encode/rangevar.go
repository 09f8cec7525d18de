// Package encode: range-variable clauses for the semi-stable and stage
// abstractions.
package encode

import (
	"github.com/katalvlaran/afmend/af"
	"github.com/katalvlaran/afmend/cnfio"
)

// RangeNonStrict ties rangeVar(i) to "i is in the chosen extension or
// attacked by it", with enforced attackers contributing through attVar
// and non-enforced ones through the attackVar gadget. Added to the
// MaxSAT abstraction before the semi-stable / stage CEGAR loop.
func RangeNonStrict(f *af.Framework) []cnfio.Clause {
	var clauses []cnfio.Clause
	for i := 1; i <= f.N(); i++ {
		if f.Enforced(i) {
			continue
		}
		clause := cnfio.Clause{-f.RangeVar(i), f.ArgVar(i)}
		for j := 1; j <= f.N(); j++ {
			if f.Enforced(j) {
				clause = append(clause, f.AttVar(j, i))
			} else {
				clause = append(clause, f.AttackVar(j, i))
			}
		}
		clauses = append(clauses, clause)
	}
	for i := 1; i <= f.N(); i++ {
		if !f.Enforced(i) {
			clauses = append(clauses, cnfio.Clause{-f.ArgVar(i), f.RangeVar(i)})
		}
	}
	for i := 1; i <= f.N(); i++ {
		if f.Enforced(i) {
			continue
		}
		for j := 1; j <= f.N(); j++ {
			if f.Enforced(j) {
				clauses = append(clauses, cnfio.Clause{-f.AttVar(j, i), f.RangeVar(i)})
			} else {
				clauses = append(clauses, cnfio.Clause{-f.AttackVar(j, i), f.RangeVar(i)})
			}
		}
	}

	return clauses
}
