// Package af: Framework mutators and read-only queries.
//
// Arguments receive dense ids in insertion order starting at 1; adjacency
// stays in insertion order so that every downstream iteration (fixpoint
// rounds, clause emission, output writing) is reproducible.
package af

// AddArgument appends a fresh argument with the given name.
// Returns ErrDuplicateArgument if the name is already present.
// Complexity: O(1) amortized.
func (f *Framework) AddArgument(name string) error {
	if _, exists := f.ids[name]; exists {
		return ErrDuplicateArgument
	}
	f.n++
	f.names = append(f.names, name)
	f.ids[name] = f.n
	f.attackers = append(f.attackers, nil)
	f.attacked = append(f.attacked, nil)
	f.enforced = append(f.enforced, false)
	f.negEnforced = append(f.negEnforced, false)
	f.inRange = append(f.inRange, false)

	return nil
}

// AddAttack records the attack from → to.
// Duplicate attacks are silently idempotent; unknown endpoints return
// ErrUnknownArgument.
// Complexity: O(1) amortized.
func (f *Framework) AddAttack(from, to string) error {
	u, ok := f.ids[from]
	if !ok {
		return ErrUnknownArgument
	}
	v, ok := f.ids[to]
	if !ok {
		return ErrUnknownArgument
	}
	a := Att{From: u, To: v}
	if f.attExists[a] {
		return nil // idempotent
	}
	f.atts = append(f.atts, a)
	f.attackers[v] = append(f.attackers[v], u)
	f.attacked[u] = append(f.attacked[u], v)
	f.attExists[a] = true

	return nil
}

// AddEnforcement adds the named argument to E+ and marks it, together
// with every argument it attacks, as in range.
func (f *Framework) AddEnforcement(name string) error {
	id, ok := f.ids[name]
	if !ok {
		return ErrUnknownArgument
	}
	if f.negEnforced[id] {
		return ErrConflictingEnforcement
	}
	if f.enforced[id] {
		return nil // idempotent
	}
	f.enforced[id] = true
	f.enfs = append(f.enfs, id)
	f.inRange[id] = true
	for _, t := range f.attacked[id] {
		f.inRange[t] = true
	}

	return nil
}

// AddNegEnforcement adds the named argument to E− (status modes only).
func (f *Framework) AddNegEnforcement(name string) error {
	id, ok := f.ids[name]
	if !ok {
		return ErrUnknownArgument
	}
	if f.enforced[id] {
		return ErrConflictingEnforcement
	}
	if f.negEnforced[id] {
		return nil // idempotent
	}
	f.negEnforced[id] = true
	f.negEnfs = append(f.negEnfs, id)

	return nil
}

// N reports the number of arguments; valid ids are 1..N.
func (f *Framework) N() int { return f.n }

// Name returns the external name of id; empty for out-of-range ids.
func (f *Framework) Name(id int) string {
	if id < 1 || id > f.n {
		return ""
	}

	return f.names[id]
}

// ID returns the internal id of name, or 0 when absent.
func (f *Framework) ID(name string) int { return f.ids[name] }

// Atts returns the attack list in insertion order. The slice is shared;
// callers must not mutate it.
func (f *Framework) Atts() []Att { return f.atts }

// AttackExists reports whether the attack from → to is present.
func (f *Framework) AttackExists(from, to int) bool {
	return f.attExists[Att{From: from, To: to}]
}

// Attackers returns the attackers of id in insertion order (shared slice).
func (f *Framework) Attackers(id int) []int { return f.attackers[id] }

// Attacked returns the targets attacked by id in insertion order (shared slice).
func (f *Framework) Attacked(id int) []int { return f.attacked[id] }

// Enforced reports whether id ∈ E+.
func (f *Framework) Enforced(id int) bool { return f.enforced[id] }

// NegEnforced reports whether id ∈ E−.
func (f *Framework) NegEnforced(id int) bool { return f.negEnforced[id] }

// Enforcements returns E+ in insertion order (shared slice).
func (f *Framework) Enforcements() []int { return f.enfs }

// NegEnforcements returns E− in insertion order (shared slice).
func (f *Framework) NegEnforcements() []int { return f.negEnfs }

// InRange reports whether id ∈ E+ ∪ attacked(E+).
func (f *Framework) InRange(id int) bool { return f.inRange[id] }

// NumberOfConflicts counts attacks whose endpoints both lie in E+.
// These are unavoidable edits under strict enforcement: they carry no
// attack variable and are removed from the instance up front.
func (f *Framework) NumberOfConflicts() int {
	conflicts := 0
	for _, a := range f.atts {
		if f.enforced[a.From] && f.enforced[a.To] {
			conflicts++
		}
	}

	return conflicts
}

// Top returns the hard-clause weight for extension enforcement:
// n·n − |E+|·|E+| + 1, one more than the number of soft clauses.
func (f *Framework) Top() int {
	return f.n*f.n - len(f.enfs)*len(f.enfs) + 1
}

// TopStatus returns the hard-clause weight for status enforcement,
// where only enforced self-attacks are fixed: n·n + 1.
func (f *Framework) TopStatus() int {
	return f.n*f.n + 1
}

// Clone returns a Framework with the same arguments, attacks and
// enforcements but fresh (empty) variable tables.
func (f *Framework) Clone() *Framework {
	c := New()
	for id := 1; id <= f.n; id++ {
		_ = c.AddArgument(f.names[id])
	}
	for _, a := range f.atts {
		_ = c.AddAttack(f.names[a.From], f.names[a.To])
	}
	for _, e := range f.enfs {
		_ = c.AddEnforcement(f.names[e])
	}
	for _, e := range f.negEnfs {
		_ = c.AddNegEnforcement(f.names[e])
	}

	return c
}
