// Package grounded computes the grounded extension and labeling of an
// argumentation framework via the stratified fixpoint, and exposes the
// two membership predicates the CEGAR verifier relies on.
//
// What
//
//   - Extension(f): the unique grounded extension as a list of ids.
//   - Labeling(f): id → Accepted / Rejected; arguments never entering
//     either set stay Undecided (absent from the map).
//   - IsGrounded(f, s): s is exactly the grounded extension of f.
//   - IsSubsetOfGrounded(f, s): s is contained in the grounded extension.
//
// Algorithm
//
//	Maintain disjoint accepted and rejected sets. Each round scans the
//	unlabeled arguments in ascending id and collects every argument all
//	of whose attackers are attacked by an already-accepted argument; the
//	round's winners join accepted and everything they attack joins
//	rejected. The fixpoint is reached when a round produces nothing.
//
// Determinism
//
//	Iteration is in ascending argument id within each round, so the
//	returned extension order is reproducible; the extension itself is
//	insertion-order independent (set equality).
//
// Complexity
//
//   - Time:   O(rounds · Σ_i deg⁻(i) · |accepted|) on the dictionary
//     representation; rounds ≤ ⌈n/2⌉.
//   - Memory: O(n).
//
// The fixpoint itself never fails; both predicates report false rather
// than returning an error.
package grounded
