// Package cnfio defines the signed-literal clause representation shared
// by the clause generators and solver adapters, and serializes weighted
// instances to the two interchange formats the enforcement CLI emits.
//
// What
//
//   - Clause: an ordered sequence of signed variable ids (positive id =
//     positive literal, negative id = negated literal).
//   - WriteWCNF: the DIMACS-style weighted CNF layout - a
//     "p wcnf nbvar nbclauses top" header, one line per hard clause
//     prefixed with top, one line per soft clause prefixed with its
//     weight of 1, each terminated by 0.
//   - WriteLP: the standard MaxSAT→ILP translation - minimize the sum of
//     per-soft-clause slack variables b_i subject to one ≥-constraint per
//     clause, with binary bounds on every variable (integrality is
//     implied by the bounds; solvers are configured externally).
//   - MaxVar: the largest variable id mentioned by a clause set, used for
//     the header and bounds sections.
//
// Determinism
//
//	Output is a pure function of the clause slices: clauses are written
//	in the order given, literals in the order they appear in each clause.
package cnfio
