package encode_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/afmend/af"
	"github.com/katalvlaran/afmend/cnfio"
	"github.com/katalvlaran/afmend/encode"
)

// oracleGraphs is a small zoo of attack structures over a,b,c used to
// cross-check the oracle clause sets against direct set semantics.
var oracleGraphs = [][][2]string{
	nil,
	{{"a", "b"}},
	{{"a", "b"}, {"b", "a"}},
	{{"a", "b"}, {"b", "c"}},
	{{"a", "b"}, {"b", "c"}, {"c", "a"}},
	{{"a", "a"}},
	{{"a", "b"}, {"c", "b"}, {"b", "a"}},
	{{"a", "b"}, {"b", "a"}, {"a", "c"}, {"b", "c"}},
}

// evalClauses evaluates a clause set under a full truth assignment.
func evalClauses(clauses []cnfio.Clause, value func(v int) bool) bool {
	for _, c := range clauses {
		sat := false
		for _, lit := range c {
			if (lit > 0 && value(lit)) || (lit < 0 && !value(-lit)) {
				sat = true
				break
			}
		}
		if !sat {
			return false
		}
	}

	return true
}

// subsets enumerates all subsets of 1..n as membership vectors.
func subsets(n int) [][]bool {
	var all [][]bool
	for mask := 0; mask < 1<<n; mask++ {
		in := make([]bool, n+1)
		for i := 1; i <= n; i++ {
			in[i] = mask&(1<<(i-1)) != 0
		}
		all = append(all, in)
	}

	return all
}

func isConflictFree(f *af.Framework, in []bool) bool {
	for _, a := range f.Atts() {
		if in[a.From] && in[a.To] {
			return false
		}
	}

	return true
}

// attackedBy reports whether some member of the set attacks id.
func attackedBy(f *af.Framework, in []bool, id int) bool {
	for _, j := range f.Attackers(id) {
		if in[j] {
			return true
		}
	}

	return false
}

func isAdmissible(f *af.Framework, in []bool) bool {
	if !isConflictFree(f, in) {
		return false
	}
	for i := 1; i <= f.N(); i++ {
		if !in[i] {
			continue
		}
		for _, j := range f.Attackers(i) {
			if !attackedBy(f, in, j) {
				return false
			}
		}
	}

	return true
}

func isComplete(f *af.Framework, in []bool) bool {
	if !isAdmissible(f, in) {
		return false
	}
	for i := 1; i <= f.N(); i++ {
		if in[i] {
			continue
		}
		defended := true
		for _, j := range f.Attackers(i) {
			if !attackedBy(f, in, j) {
				defended = false
				break
			}
		}
		if defended {
			return false
		}
	}

	return true
}

func isStable(f *af.Framework, in []bool) bool {
	if !isConflictFree(f, in) {
		return false
	}
	for i := 1; i <= f.N(); i++ {
		if !in[i] && !attackedBy(f, in, i) {
			return false
		}
	}

	return true
}

// oracleValue extends a membership vector to the oracle's auxiliary
// variables: defendVar(i) and rangeVar(i) both mean "i has an attacker
// in the set" resp. "i is in the set or attacked by it".
func oracleValue(f *af.Framework, in []bool) func(v int) bool {
	return func(v int) bool {
		for i := 1; i <= f.N(); i++ {
			switch v {
			case f.ArgVar(i):
				return in[i]
			case f.DefendVar(i):
				return attackedBy(f, in, i)
			case f.RangeVar(i):
				return in[i] || attackedBy(f, in, i)
			}
		}

		return false
	}
}

func TestOracleConflictFree_MatchesSemantics(t *testing.T) {
	names := []string{"a", "b", "c"}
	for _, atts := range oracleGraphs {
		f := buildAF(t, names, atts, nil)
		f.InitializeEnum(af.Stage)
		clauses := encode.OracleConflictFree(f)
		for _, in := range subsets(f.N()) {
			assert.Equal(t, isConflictFree(f, in), evalClauses(clauses, oracleValue(f, in)),
				"graph %v set %v", atts, in)
		}
	}
}

func TestOracleAdmissible_MatchesSemantics(t *testing.T) {
	names := []string{"a", "b", "c"}
	for _, atts := range oracleGraphs {
		f := buildAF(t, names, atts, nil)
		f.InitializeEnum(af.Admissible)
		clauses := encode.OracleAdmissible(f)
		for _, in := range subsets(f.N()) {
			assert.Equal(t, isAdmissible(f, in), evalClauses(clauses, oracleValue(f, in)),
				"graph %v set %v", atts, in)
		}
	}
}

func TestOracleComplete_MatchesSemantics(t *testing.T) {
	names := []string{"a", "b", "c"}
	for _, atts := range oracleGraphs {
		f := buildAF(t, names, atts, nil)
		f.InitializeEnum(af.Complete)
		clauses := encode.OracleComplete(f)
		for _, in := range subsets(f.N()) {
			assert.Equal(t, isComplete(f, in), evalClauses(clauses, oracleValue(f, in)),
				"graph %v set %v", atts, in)
		}
	}
}

func TestOracleStable_MatchesSemantics(t *testing.T) {
	names := []string{"a", "b", "c"}
	for _, atts := range oracleGraphs {
		f := buildAF(t, names, atts, nil)
		f.InitializeEnum(af.Stable)
		clauses := encode.OracleStable(f)
		for _, in := range subsets(f.N()) {
			assert.Equal(t, isStable(f, in), evalClauses(clauses, oracleValue(f, in)),
				"graph %v set %v", atts, in)
		}
	}
}

func TestOracleRange_DefinitionHolds(t *testing.T) {
	names := []string{"a", "b", "c"}
	for _, atts := range oracleGraphs {
		f := buildAF(t, names, atts, nil)
		f.InitializeEnum(af.SemiStable)
		clauses := encode.OracleRange(f)
		for _, in := range subsets(f.N()) {
			// The semantic range valuation always satisfies the definition.
			require.True(t, evalClauses(clauses, oracleValue(f, in)),
				"graph %v set %v", atts, in)
		}
	}
}
