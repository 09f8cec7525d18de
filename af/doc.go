// Package af implements the argumentation-framework store: arguments,
// the directed attack relation, enforcement requests, and the Boolean
// variable tables consumed by the clause generators in package encode.
//
// What
//
//   - Framework holds a finite set of named arguments with dense integer
//     ids (insertion order, starting at 1), an attack relation with O(1)
//     membership, per-argument attacker/attacked adjacency in insertion
//     order, and the positive (E+) and negative (E−) enforcement sets.
//   - Initialize(mode, sem, cegar) populates the variable tables for the
//     chosen enforcement variant; InitializeCred, InitializeSkept and
//     InitializeEnum cover the status and oracle variants. Variable ids
//     are contiguous from 1 and allocated in a fixed order per variant,
//     so WCNF/LP output is byte-stable for a given input.
//   - NumberOfConflicts counts attacks internal to E+; such attacks are
//     unavoidable edits under strict enforcement and are excluded from
//     the variable tables.
//
// Determinism
//
//	All iteration is in ascending argument id. Re-running Initialize with
//	the same parameters rebuilds identical tables.
//
// Concurrency
//
//	A Framework is not safe for concurrent mutation; the enforcement
//	pipeline is single-threaded by design and every call owns its
//	Framework instances.
//
// Errors
//
//   - ErrDuplicateArgument       - argument name already present.
//   - ErrUnknownArgument         - attack or enforcement names a missing argument.
//   - ErrConflictingEnforcement  - argument enforced both positively and negatively.
//   - ErrInvalidCombination      - mode and semantics are incompatible.
package af
