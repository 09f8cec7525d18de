package enforce_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/afmend/af"
	"github.com/katalvlaran/afmend/enforce"
)

func TestSkeptStable_AddsCoveringAttack(t *testing.T) {
	// a,b unconnected, pos(a), neg(b): the cheapest repair lets a cover b.
	f := buildAF(t, []string{"a", "b"}, nil, []string{"a"}, []string{"b"})
	res, err := enforce.Enforce(f, af.Skeptical, af.Stable)
	require.NoError(t, err)

	assert.Equal(t, 1, res.Cost)
	assert.Equal(t, 1, res.Changes)
	assert.True(t, res.Output.AttackExists(1, 2))
	// In the output every stable extension contains a and excludes b.
	for _, in := range subsets(res.Output.N()) {
		if isStable(res.Output, in) {
			assert.True(t, in[1])
			assert.False(t, in[2])
		}
	}
}

func TestSkeptStable_NoNegTargets(t *testing.T) {
	// a→b with pos(b): b must sit in every stable extension.
	f := buildAF(t, []string{"a", "b"}, [][2]string{{"a", "b"}}, []string{"b"}, nil)
	res, err := enforce.Enforce(f, af.Skeptical, af.Stable)
	require.NoError(t, err)

	for _, in := range subsets(res.Output.N()) {
		if isStable(res.Output, in) {
			assert.True(t, in[2])
		}
	}
	assert.GreaterOrEqual(t, res.Iterations, 1)
}

func TestSkeptStable_EmptyTargetsIsIdentity(t *testing.T) {
	f := buildAF(t, []string{"a", "b"}, [][2]string{{"a", "b"}}, nil, nil)
	res, err := enforce.Enforce(f, af.Skeptical, af.Stable)
	require.NoError(t, err)
	assert.Zero(t, res.Cost)
	assert.Equal(t, attSet(f), attSet(res.Output))
}

func TestCredAdmissible_DefendsTarget(t *testing.T) {
	// b attacks a and nothing defends a: one edit fixes it.
	f := buildAF(t, []string{"a", "b"}, [][2]string{{"b", "a"}}, []string{"a"}, nil)
	res, err := enforce.Enforce(f, af.Credulous, af.Admissible)
	require.NoError(t, err)

	assert.Equal(t, 1, res.Cost)
	assert.True(t, hasExtension(res.Output, isAdmissible, []int{1}))
}

func TestCredAdmissible_MinimalByBruteForce(t *testing.T) {
	f := buildAF(t, []string{"a", "b", "c"},
		[][2]string{{"b", "a"}, {"c", "b"}}, []string{"a"}, nil)
	res, err := enforce.Enforce(f, af.Credulous, af.Admissible)
	require.NoError(t, err)

	assert.True(t, hasExtension(res.Output, isAdmissible, []int{1}))
	optimum := bruteForceOptimum(t, f, func(g *af.Framework) bool {
		return hasExtension(g, isAdmissible, []int{1})
	})
	assert.Equal(t, optimum, res.Changes)
}

func TestCredStable_WithNegTarget(t *testing.T) {
	// pos(a), neg(b) over a↔b: a must be in some stable extension and b
	// in none.
	f := buildAF(t, []string{"a", "b"},
		[][2]string{{"a", "b"}, {"b", "a"}}, []string{"a"}, []string{"b"})
	res, err := enforce.Enforce(f, af.Credulous, af.Stable)
	require.NoError(t, err)

	found := false
	for _, in := range subsets(res.Output.N()) {
		if isStable(res.Output, in) {
			found = found || in[1]
			assert.False(t, in[2], "negative target slipped into a stable extension")
		}
	}
	assert.True(t, found)
	assert.GreaterOrEqual(t, res.Iterations, 1)
}

func TestCredulous_CompleteCollapsesToAdmissible(t *testing.T) {
	build := func() *af.Framework {
		return buildAF(t, []string{"a", "b"}, [][2]string{{"b", "a"}}, []string{"a"}, nil)
	}
	com, err := enforce.Enforce(build(), af.Credulous, af.Complete)
	require.NoError(t, err)
	adm, err := enforce.Enforce(build(), af.Credulous, af.Admissible)
	require.NoError(t, err)
	assert.Equal(t, adm.Cost, com.Cost)
}
