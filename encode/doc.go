// Package encode turns an initialized af.Framework into the hard and
// soft clause sets of the enforcement MaxSAT instance, and produces the
// oracle clause sets the CEGAR verifier feeds to the decision SAT solver.
//
// What
//
//   - Extension enforcement: AdmissibleStrict, CompleteStrict,
//     StableStrict, ConflictFreeNonStrict, AdmissibleNonStrict,
//     StableNonStrict.
//   - Grounded level ladder: GroundedStrict, GroundedNonStrict, and the
//     LevelOneStrict / LevelOneNonStrict abstractions for CEGAR.
//   - Status enforcement: CredAdmissible, CredStable, SkeptStable
//     (per-target witness subgraphs with attack relays).
//   - Range abstraction for semi-stable / stage CEGAR: RangeNonStrict,
//     AttackVarDefs.
//   - Objective: Soft - one unit soft clause per mutable attack pair,
//     positive when the attack exists in the input, negated otherwise, so
//     the optimum cost is the edit distance over mutable pairs.
//   - Oracle clause sets over a candidate framework initialized with
//     InitializeEnum: OracleConflictFree, OracleAdmissible,
//     OracleComplete, OracleStable, OracleRange.
//
// Every generator is a pure function of the store's tables: clauses
// reference previously allocated variable ids only and no auxiliary
// variables are minted here. Iteration is in ascending argument id, so
// for a fixed input the emitted clause sequence is canonical.
package encode
