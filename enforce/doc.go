// Package enforce is the entry point of the pipeline: it dispatches a
// mode × semantics × cegar-flag request to the matching encoding, runs
// either a one-shot MaxSAT call or a counterexample-guided refinement
// loop, and rebuilds the optimally repaired framework from the returned
// assignment.
//
// What
//
//   - Enforce(f, mode, sem, opts...): compute a minimally edited AF in
//     which E+ is (exactly / at least) an extension under the chosen
//     semantics, or in which the status targets hold. Minimality is in
//     the cardinality of the symmetric difference of attack relations.
//   - Clauses(f, mode, sem, cegar): the hard and soft clause pools of
//     the instance, for WCNF / LP emission without solving.
//
// Pipelines
//
//   - Direct (admissible, complete strict, stable, grounded direct):
//     allocate variables, generate hard + soft clauses, one MaxSAT call,
//     rebuild the AF from the true attack bits.
//   - Grounded CEGAR (-c): a complete (strict) or admissible
//     (non-strict) abstraction plus the level-one base is solved
//     optimistically; candidates are verified against the true
//     fixpoint by package grounded and falsified candidates are excluded
//     by the labeling-driven refinement clause.
//   - Preferred / semi-stable / stage: a weaker abstraction is solved
//     (complete for strict preferred and semi-stable, admissible for
//     non-strict semi-stable, conflict-free for non-strict stage, none
//     for strict stage); a decision SAT oracle searches for a
//     counterexample extension (a complete superset, or one with larger
//     range); forbidden truth patterns accumulate until none exists.
//   - Status modes: per-target witness encodings, with a refinement loop
//     whenever negative targets (credulous) or skeptical acceptance
//     itself must be certified.
//
// Every invocation owns its clause pools and solver instances; nothing
// is shared between calls. Cancellation is not supported: a solve runs
// to optimum. Timeouts belong to the embedding process.
//
// Errors
//
//   - ErrInfeasible         - a strict instance is unattainable even with
//     unlimited edits.
//   - ErrUnsupportedOutput  - clause emission requested for a semantics
//     that only exists behind the refinement loop.
package enforce
