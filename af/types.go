// SPDX-License-Identifier: MIT
//
// Package af: central types, enums and sentinel errors.
//
// This file declares Att, Mode, Semantics, the Framework store, and the
// package sentinel errors. Mutators live in methods.go, variable-table
// allocation in vars.go.
package af

import "errors"

// Sentinel errors for framework construction and dispatch validation.
var (
	// ErrDuplicateArgument indicates AddArgument was called twice with the
	// same name. Names are unique; the name↔id mapping stays bijective.
	ErrDuplicateArgument = errors.New("af: duplicate argument name")

	// ErrUnknownArgument indicates an attack or enforcement referenced a
	// name that was never added.
	ErrUnknownArgument = errors.New("af: unknown argument")

	// ErrConflictingEnforcement indicates an argument was enforced both
	// positively and negatively.
	ErrConflictingEnforcement = errors.New("af: conflicting enforcement")

	// ErrInvalidCombination indicates the requested mode × semantics pair
	// is not supported by any encoding.
	ErrInvalidCombination = errors.New("af: invalid mode and semantics combination")
)

// Att is an ordered attack pair: From attacks To.
type Att struct {
	From int
	To   int
}

// Mode selects the enforcement variant.
type Mode uint8

const (
	// Strict enforcement: the enforced set must equal the extension.
	Strict Mode = iota
	// NonStrict enforcement: the enforced set must be contained in some extension.
	NonStrict
	// Credulous status enforcement: each positive target is in some extension,
	// no negative target is.
	Credulous
	// Skeptical status enforcement: each positive target is in every extension,
	// no negative target is.
	Skeptical
)

// String returns the CLI spelling of the mode.
func (m Mode) String() string {
	switch m {
	case Strict:
		return "strict"
	case NonStrict:
		return "non-strict"
	case Credulous:
		return "cred"
	case Skeptical:
		return "skept"
	default:
		return "unknown"
	}
}

// ParseMode maps a CLI mode word to its Mode value.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "strict":
		return Strict, nil
	case "non-strict":
		return NonStrict, nil
	case "cred":
		return Credulous, nil
	case "skept":
		return Skeptical, nil
	default:
		return 0, ErrInvalidCombination
	}
}

// Semantics selects the acceptability criterion.
type Semantics uint8

const (
	Admissible Semantics = iota
	Complete
	Stable
	Preferred
	SemiStable
	Stage
	Grounded
)

// String returns the CLI spelling of the semantics.
func (s Semantics) String() string {
	switch s {
	case Admissible:
		return "adm"
	case Complete:
		return "com"
	case Stable:
		return "stb"
	case Preferred:
		return "prf"
	case SemiStable:
		return "sem"
	case Stage:
		return "stg"
	case Grounded:
		return "grd"
	default:
		return "unknown"
	}
}

// ParseSemantics maps a CLI semantics word to its Semantics value.
func ParseSemantics(s string) (Semantics, error) {
	switch s {
	case "adm":
		return Admissible, nil
	case "com":
		return Complete, nil
	case "stb":
		return Stable, nil
	case "prf":
		return Preferred, nil
	case "sem":
		return SemiStable, nil
	case "stg":
		return Stage, nil
	case "grd":
		return Grounded, nil
	default:
		return 0, ErrInvalidCombination
	}
}

// ValidateCombination rejects the mode × semantics pairs no encoding
// supports: admissible under skeptical status, semi-stable/stage under
// credulous status, and anything but stable under skeptical status.
// Grounded semantics is an extension-enforcement variant only.
func ValidateCombination(m Mode, s Semantics) error {
	switch m {
	case Credulous:
		if s == SemiStable || s == Stage || s == Grounded {
			return ErrInvalidCombination
		}
	case Skeptical:
		if s != Stable {
			return ErrInvalidCombination
		}
	default:
		// strict / non-strict: every semantics has an encoding.
	}

	return nil
}

// Framework is the AF store: arguments, attacks, enforcement flags, and
// the Boolean-variable tables for the currently initialized variant.
// The zero value is unusable; call New.
type Framework struct {
	n int // number of arguments; ids are 1..n

	names []string       // id → external name; index 0 unused
	ids   map[string]int // external name → id

	atts      []Att        // attack list in insertion order
	attExists map[Att]bool // O(1) attack membership
	attackers [][]int      // id → attackers of id, insertion order
	attacked  [][]int      // id → targets attacked by id, insertion order

	enfs        []int  // E+ in insertion order
	negEnfs     []int  // E− in insertion order
	enforced    []bool // id → id ∈ E+
	negEnforced []bool // id → id ∈ E−
	inRange     []bool // id → id ∈ E+ ∪ attacked(E+)

	vars varTables
}

// New returns an empty Framework.
func New() *Framework {
	return &Framework{
		names:       []string{""},
		ids:         make(map[string]int),
		attExists:   make(map[Att]bool),
		attackers:   [][]int{nil},
		attacked:    [][]int{nil},
		enforced:    []bool{false},
		negEnforced: []bool{false},
		inRange:     []bool{false},
	}
}
