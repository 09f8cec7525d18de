// Package solver wraps the third-party optimization and decision engines
// behind two narrow interfaces so that no engine type leaks into the
// enforcement pipeline.
//
// What
//
//   - MaxSAT: AddHard / AddSoft / Solve, returning a variable assignment
//     and the optimum cost. The implementation rides
//     github.com/crillab/gophersat: soft clauses receive fresh blocking
//     literals above the caller's variable range, the cost function
//     minimizes the weighted blocking sum, and Minimize drives the
//     search to the optimum.
//   - SAT: AddClause / Solve, returning satisfiability plus a model on
//     sat. The implementation rides github.com/go-air/gini with the
//     DIMACS literal mapping from its z package.
//
// Contract
//
//	Clauses accumulate across Solve calls; each call rebuilds the engine
//	from scratch over the accumulated pool, which keeps incremental
//	clause addition trivially correct between CEGAR iterations. The
//	returned Assignment is indexed by variable id (index 0 unused) and
//	only covers the caller's variables - blocking literals stay private
//	to the adapter.
//
// Failure
//
//	An unsatisfiable hard set yields ErrUnsat from MaxSAT.Solve; the
//	decision variant reports unsat through its boolean, reserving the
//	error for engine faults.
package solver
