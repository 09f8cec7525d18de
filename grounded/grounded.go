// Package grounded: the stratified fixpoint and its membership predicates.
package grounded

import "github.com/katalvlaran/afmend/af"

// Label is the status an argument ends up with after the fixpoint.
type Label uint8

const (
	// Undecided: the argument entered neither set (absent from Labeling maps).
	Undecided Label = iota
	// Accepted: the argument is in the grounded extension.
	Accepted
	// Rejected: the argument is attacked by the grounded extension.
	Rejected
)

// String returns a short spelling for diagnostics.
func (l Label) String() string {
	switch l {
	case Accepted:
		return "in"
	case Rejected:
		return "out"
	default:
		return "undec"
	}
}

// fixpoint carries the per-run state of one stratified computation.
type fixpoint struct {
	f          *af.Framework
	accepted   []int
	isAccepted []bool
	isRejected []bool
}

// countered reports whether some already-accepted argument attacks the
// given attacker.
func (fp *fixpoint) countered(attacker int) bool {
	for _, k := range fp.accepted {
		if fp.f.AttackExists(k, attacker) {
			return true
		}
	}

	return false
}

// defended reports whether every attacker of id is countered by the
// accepted set.
func (fp *fixpoint) defended(id int) bool {
	for _, j := range fp.f.Attackers(id) {
		if !fp.countered(j) {
			return false
		}
	}

	return true
}

// round scans unlabeled arguments in ascending id and returns the
// arguments newly defended this round.
func (fp *fixpoint) round() []int {
	var next []int
	for i := 1; i <= fp.f.N(); i++ {
		if fp.isAccepted[i] || fp.isRejected[i] {
			continue
		}
		if fp.defended(i) {
			next = append(next, i)
		}
	}

	return next
}

// commit adds the round winners to accepted and their targets to rejected.
func (fp *fixpoint) commit(next []int) {
	for _, w := range next {
		fp.accepted = append(fp.accepted, w)
		fp.isAccepted[w] = true
		for _, t := range fp.f.Attacked(w) {
			if !fp.isRejected[t] {
				fp.isRejected[t] = true
			}
		}
	}
}

// Extension returns the grounded extension of f in derivation order
// (ascending id within each round). Nil framework yields nil.
func Extension(f *af.Framework) []int {
	if f == nil {
		return nil
	}
	fp := &fixpoint{f: f, isAccepted: make([]bool, f.N()+1), isRejected: make([]bool, f.N()+1)}
	for {
		next := fp.round()
		if len(next) == 0 {
			break
		}
		fp.commit(next)
	}

	return fp.accepted
}

// Labeling returns the grounded labeling: Accepted and Rejected entries
// only; undecided arguments are absent.
func Labeling(f *af.Framework) map[int]Label {
	labels := make(map[int]Label)
	if f == nil {
		return labels
	}
	fp := &fixpoint{f: f, isAccepted: make([]bool, f.N()+1), isRejected: make([]bool, f.N()+1)}
	for {
		next := fp.round()
		if len(next) == 0 {
			break
		}
		for _, w := range next {
			fp.accepted = append(fp.accepted, w)
			fp.isAccepted[w] = true
			labels[w] = Accepted
			for _, t := range fp.f.Attacked(w) {
				if !fp.isRejected[t] {
					fp.isRejected[t] = true
					labels[t] = Rejected
				}
			}
		}
	}

	return labels
}

// IsGrounded reports whether subset is exactly the grounded extension of
// f. The derivation fails fast: the moment a defended argument outside
// subset appears, the answer is false. At fixpoint every element of
// subset must have been derived.
func IsGrounded(f *af.Framework, subset []int) bool {
	if f == nil {
		return len(subset) == 0
	}
	inSubset := make([]bool, f.N()+1)
	for _, s := range subset {
		if s < 1 || s > f.N() {
			return false
		}
		inSubset[s] = true
	}
	fp := &fixpoint{f: f, isAccepted: make([]bool, f.N()+1), isRejected: make([]bool, f.N()+1)}
	for {
		var next []int
		for i := 1; i <= f.N(); i++ {
			if fp.isAccepted[i] {
				continue
			}
			if fp.defended(i) {
				if !inSubset[i] {
					return false
				}
				next = append(next, i)
			}
		}
		if len(next) == 0 {
			break
		}
		for _, w := range next {
			fp.accepted = append(fp.accepted, w)
			fp.isAccepted[w] = true
		}
	}
	for _, s := range subset {
		if !fp.isAccepted[s] {
			return false
		}
	}

	return true
}

// IsSubsetOfGrounded reports whether subset is contained in the grounded
// extension of f; subset plays no role during the derivation.
func IsSubsetOfGrounded(f *af.Framework, subset []int) bool {
	if f == nil {
		return len(subset) == 0
	}
	fp := &fixpoint{f: f, isAccepted: make([]bool, f.N()+1), isRejected: make([]bool, f.N()+1)}
	for {
		var next []int
		for i := 1; i <= f.N(); i++ {
			if fp.isAccepted[i] {
				continue
			}
			if fp.defended(i) {
				next = append(next, i)
			}
		}
		if len(next) == 0 {
			break
		}
		for _, w := range next {
			fp.accepted = append(fp.accepted, w)
			fp.isAccepted[w] = true
		}
	}
	for _, s := range subset {
		if s < 1 || s > f.N() || !fp.isAccepted[s] {
			return false
		}
	}

	return true
}
