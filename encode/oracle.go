// Package encode: clause sets over a candidate framework for the CEGAR
// verification checks.
//
// The candidate is initialized with InitializeEnum, which makes every
// argument its own acceptance variable; the generators below describe
// extensions of the candidate AF itself (its concrete attack list), not
// of the attVar abstraction. The driver appends the per-check units:
// superset units for preferred maximality, range units for semi-stable
// and stage, the missing-target clause for the skeptical check.
package encode

import (
	"github.com/katalvlaran/afmend/af"
	"github.com/katalvlaran/afmend/cnfio"
)

// OracleConflictFree forbids both endpoints of every attack.
func OracleConflictFree(g *af.Framework) []cnfio.Clause {
	var clauses []cnfio.Clause
	for _, a := range g.Atts() {
		clauses = append(clauses, cnfio.Clause{-g.ArgVar(a.From), -g.ArgVar(a.To)})
	}

	return clauses
}

// OracleAdmissible adds defense: the target of an attack is in the
// extension only if some attacker of the attack's source is.
func OracleAdmissible(g *af.Framework) []cnfio.Clause {
	clauses := OracleConflictFree(g)
	for _, a := range g.Atts() {
		clause := cnfio.Clause{-g.ArgVar(a.To)}
		for _, k := range g.Attackers(a.From) {
			clause = append(clause, g.ArgVar(k))
		}
		clauses = append(clauses, clause)
	}

	return clauses
}

// OracleComplete adds the defended-implies-member direction through the
// defendVar family: defend(i) ↔ some attacker of i is accepted (i is
// attacked by the extension), and an argument whose attackers all have
// defend set belongs to the extension.
func OracleComplete(g *af.Framework) []cnfio.Clause {
	clauses := OracleAdmissible(g)
	for i := 1; i <= g.N(); i++ {
		var clause cnfio.Clause
		for _, j := range g.Attackers(i) {
			clause = append(clause, -g.DefendVar(j))
		}
		clause = append(clause, g.ArgVar(i))
		clauses = append(clauses, clause)
	}
	for i := 1; i <= g.N(); i++ {
		clause := cnfio.Clause{-g.DefendVar(i)}
		for _, k := range g.Attackers(i) {
			clause = append(clause, g.ArgVar(k))
		}
		clauses = append(clauses, clause)
	}
	for i := 1; i <= g.N(); i++ {
		for _, j := range g.Attackers(i) {
			clauses = append(clauses, cnfio.Clause{-g.ArgVar(j), g.DefendVar(i)})
		}
	}

	return clauses
}

// OracleStable requires every argument to be in the extension or
// attacked by a member.
func OracleStable(g *af.Framework) []cnfio.Clause {
	clauses := OracleConflictFree(g)
	for i := 1; i <= g.N(); i++ {
		clause := cnfio.Clause{g.ArgVar(i)}
		for _, k := range g.Attackers(i) {
			clause = append(clause, g.ArgVar(k))
		}
		clauses = append(clauses, clause)
	}

	return clauses
}

// OracleRange defines rangeVar over the candidate's concrete attacks:
// range(i) ↔ in(i) ∨ some attacker of i in the extension. Used by the
// semi-stable and stage maximality checks.
func OracleRange(g *af.Framework) []cnfio.Clause {
	var clauses []cnfio.Clause
	for i := 1; i <= g.N(); i++ {
		clause := cnfio.Clause{-g.RangeVar(i), g.ArgVar(i)}
		for _, j := range g.Attackers(i) {
			clause = append(clause, g.ArgVar(j))
		}
		clauses = append(clauses, clause)
	}
	for i := 1; i <= g.N(); i++ {
		clauses = append(clauses, cnfio.Clause{-g.ArgVar(i), g.RangeVar(i)})
	}
	for i := 1; i <= g.N(); i++ {
		for _, j := range g.Attackers(i) {
			clauses = append(clauses, cnfio.Clause{-g.ArgVar(j), g.RangeVar(i)})
		}
	}

	return clauses
}
