// Package encode: the edit-distance objective.
package encode

import (
	"github.com/katalvlaran/afmend/af"
	"github.com/katalvlaran/afmend/cnfio"
)

// Soft emits one unit soft clause of weight 1 per mutable attack pair,
// in ascending (from, to) order: the positive attVar literal when the
// attack exists in the input (falsified by deleting it), the negated
// literal otherwise (falsified by adding it). Pairs without an attack
// variable - fixed under the current initialization - are skipped, so
// the optimum cost is exactly the symmetric difference over mutable
// pairs.
func Soft(f *af.Framework) []cnfio.Clause {
	var clauses []cnfio.Clause
	for i := 1; i <= f.N(); i++ {
		for j := 1; j <= f.N(); j++ {
			v := f.AttVar(i, j)
			if v == 0 {
				continue
			}
			if f.AttackExists(i, j) {
				clauses = append(clauses, cnfio.Clause{v})
			} else {
				clauses = append(clauses, cnfio.Clause{-v})
			}
		}
	}

	return clauses
}
