package af_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/afmend/af"
)

// buildTriangle creates a,b,c with a→b, b→c, c→a.
func buildTriangle(t *testing.T) *af.Framework {
	t.Helper()
	f := af.New()
	for _, name := range []string{"a", "b", "c"} {
		require.NoError(t, f.AddArgument(name))
	}
	require.NoError(t, f.AddAttack("a", "b"))
	require.NoError(t, f.AddAttack("b", "c"))
	require.NoError(t, f.AddAttack("c", "a"))

	return f
}

func TestAddArgument_AssignsDenseIDs(t *testing.T) {
	f := buildTriangle(t)
	assert.Equal(t, 3, f.N())
	assert.Equal(t, 1, f.ID("a"))
	assert.Equal(t, 2, f.ID("b"))
	assert.Equal(t, 3, f.ID("c"))
	assert.Equal(t, "b", f.Name(2))
	assert.Equal(t, "", f.Name(4))
}

func TestAddArgument_Duplicate(t *testing.T) {
	f := af.New()
	require.NoError(t, f.AddArgument("a"))
	assert.ErrorIs(t, f.AddArgument("a"), af.ErrDuplicateArgument)
	assert.Equal(t, 1, f.N())
}

func TestAddAttack_UnknownEndpoint(t *testing.T) {
	f := af.New()
	require.NoError(t, f.AddArgument("a"))
	assert.ErrorIs(t, f.AddAttack("a", "x"), af.ErrUnknownArgument)
	assert.ErrorIs(t, f.AddAttack("x", "a"), af.ErrUnknownArgument)
}

func TestAddAttack_Idempotent(t *testing.T) {
	f := af.New()
	require.NoError(t, f.AddArgument("a"))
	require.NoError(t, f.AddArgument("b"))
	require.NoError(t, f.AddAttack("a", "b"))
	require.NoError(t, f.AddAttack("a", "b"))
	assert.Len(t, f.Atts(), 1)
	assert.Equal(t, []int{1}, f.Attackers(2))
}

func TestAdjacency_InsertionOrder(t *testing.T) {
	f := buildTriangle(t)
	assert.Equal(t, []int{3}, f.Attackers(1))
	assert.Equal(t, []int{2}, f.Attacked(1))
	assert.Equal(t, []af.Att{{From: 1, To: 2}, {From: 2, To: 3}, {From: 3, To: 1}}, f.Atts())
	assert.True(t, f.AttackExists(1, 2))
	assert.False(t, f.AttackExists(2, 1))
}

func TestEnforcement_MarksRange(t *testing.T) {
	f := buildTriangle(t)
	require.NoError(t, f.AddEnforcement("a"))
	assert.True(t, f.Enforced(1))
	assert.True(t, f.InRange(1))
	assert.True(t, f.InRange(2)) // a attacks b
	assert.False(t, f.InRange(3))
	assert.Equal(t, []int{1}, f.Enforcements())
}

func TestEnforcement_Conflicting(t *testing.T) {
	f := buildTriangle(t)
	require.NoError(t, f.AddEnforcement("a"))
	assert.ErrorIs(t, f.AddNegEnforcement("a"), af.ErrConflictingEnforcement)

	require.NoError(t, f.AddNegEnforcement("b"))
	assert.ErrorIs(t, f.AddEnforcement("b"), af.ErrConflictingEnforcement)
}

func TestNumberOfConflicts(t *testing.T) {
	f := buildTriangle(t)
	require.NoError(t, f.AddEnforcement("a"))
	assert.Equal(t, 0, f.NumberOfConflicts())

	require.NoError(t, f.AddEnforcement("b"))
	// a→b now lies inside E+.
	assert.Equal(t, 1, f.NumberOfConflicts())
}

func TestTopWeights(t *testing.T) {
	f := buildTriangle(t)
	require.NoError(t, f.AddEnforcement("a"))
	assert.Equal(t, 3*3-1*1+1, f.Top())
	assert.Equal(t, 3*3+1, f.TopStatus())
}

func TestClone_SharesNothing(t *testing.T) {
	f := buildTriangle(t)
	require.NoError(t, f.AddEnforcement("a"))
	c := f.Clone()
	require.NoError(t, c.AddAttack("a", "c"))
	assert.True(t, c.AttackExists(1, 3))
	assert.False(t, f.AttackExists(1, 3))
	assert.Equal(t, f.Enforcements(), c.Enforcements())
}

func TestValidateCombination(t *testing.T) {
	cases := []struct {
		mode af.Mode
		sem  af.Semantics
		ok   bool
	}{
		{af.Strict, af.Admissible, true},
		{af.Strict, af.Grounded, true},
		{af.NonStrict, af.Stage, true},
		{af.Credulous, af.Admissible, true},
		{af.Credulous, af.Stable, true},
		{af.Credulous, af.SemiStable, false},
		{af.Credulous, af.Stage, false},
		{af.Skeptical, af.Stable, true},
		{af.Skeptical, af.Admissible, false},
		{af.Skeptical, af.Complete, false},
		{af.Skeptical, af.Preferred, false},
	}
	for _, tc := range cases {
		err := af.ValidateCombination(tc.mode, tc.sem)
		if tc.ok {
			assert.NoError(t, err, "%s/%s", tc.mode, tc.sem)
		} else {
			assert.ErrorIs(t, err, af.ErrInvalidCombination, "%s/%s", tc.mode, tc.sem)
		}
	}
}

func TestParseRoundTrip(t *testing.T) {
	for _, m := range []af.Mode{af.Strict, af.NonStrict, af.Credulous, af.Skeptical} {
		parsed, err := af.ParseMode(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, parsed)
	}
	for _, s := range []af.Semantics{af.Admissible, af.Complete, af.Stable, af.Preferred, af.SemiStable, af.Stage, af.Grounded} {
		parsed, err := af.ParseSemantics(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, parsed)
	}
	_, err := af.ParseMode("bogus")
	assert.ErrorIs(t, err, af.ErrInvalidCombination)
}
