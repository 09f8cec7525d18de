// Package afmend repairs abstract argumentation frameworks: given a
// directed attack graph and a set of desired arguments, it computes a
// minimally edited attack relation under which the desired set is
// accepted by a chosen argumentation semantics.
//
// 🚀 What is afmend?
//
//	A weighted-MaxSAT approach to the enforcement problem:
//
//	  • Extension enforcement: strict (the set IS an extension) and
//	    non-strict (the set is contained in one), under admissible,
//	    complete, stable, preferred, semi-stable, stage and grounded
//	    semantics
//	  • Status enforcement: credulous and skeptical acceptance targets,
//	    positive and negative
//	  • Optimality: the number of added + removed attacks is minimum
//
// How it works
//
//	Hard clauses encode the semantic constraint over one Boolean per
//	mutable attack pair; unit soft clauses charge one per flipped pair,
//	so the MaxSAT optimum is the edit distance. Semantics beyond the
//	direct encodings run a counterexample-guided refinement loop: an
//	optimistic abstraction is solved, the candidate is verified (by the
//	grounded fixpoint or a decision SAT oracle) and falsified candidates
//	are excluded by refinement clauses.
//
// The packages:
//
//	af/        — framework store: arguments, attacks, enforcements,
//	             Boolean variable tables
//	grounded/  — grounded extension, labeling and membership predicates
//	encode/    — hard-clause generators, soft objective, CEGAR oracles
//	cnfio/     — clause representation, WCNF and LP writers
//	solver/    — MaxSAT (gophersat) and decision-SAT (gini) adapters
//	enforce/   — dispatch, direct pipelines and refinement loops
//	apx/       — the .apx instance reader and writer
//	cmd/afmend — the command-line front end
//
// Quick example:
//
//	f := af.New()
//	_ = f.AddArgument("a")
//	_ = f.AddArgument("b")
//	_ = f.AddAttack("b", "a")
//	_ = f.AddEnforcement("a")
//	res, err := enforce.Enforce(f, af.NonStrict, af.Grounded)
//	// res.Output: a,b with no attacks; res.Cost: 1
//
// See DESIGN.md for the encoding catalogue and the refinement-clause
// schemas.
package afmend
