package csp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tennergrid/csp"
)

// mustVar builds a variable or fails the test immediately.
func mustVar(t *testing.T, name string, domain []int) *csp.Variable {
	t.Helper()
	v, err := csp.NewVariable(name, domain)
	require.NoError(t, err)

	return v
}

// TestNewConstraint_Errors verifies the construction sentinels.
func TestNewConstraint_Errors(t *testing.T) {
	x := mustVar(t, "x", []int{0, 1})

	_, err := csp.NewConstraint("", []*csp.Variable{x})
	assert.ErrorIs(t, err, csp.ErrEmptyName)

	_, err = csp.NewConstraint("c", nil)
	assert.ErrorIs(t, err, csp.ErrEmptyScope)

	_, err = csp.NewConstraint("c", []*csp.Variable{x, nil})
	assert.ErrorIs(t, err, csp.ErrNilVariable)
}

// TestConstraint_AddSatisfyingTuples covers arity checking, deduplication,
// and membership probes.
func TestConstraint_AddSatisfyingTuples(t *testing.T) {
	x := mustVar(t, "x", []int{0, 1})
	y := mustVar(t, "y", []int{0, 1})
	con, err := csp.NewConstraint("x≠y", []*csp.Variable{x, y})
	require.NoError(t, err)

	err = con.AddSatisfyingTuples([][]int{{0, 1, 2}})
	assert.ErrorIs(t, err, csp.ErrArityMismatch)
	assert.Equal(t, 0, con.TupleCount())

	require.NoError(t, con.AddSatisfyingTuples([][]int{{0, 1}, {1, 0}, {0, 1}}))
	assert.Equal(t, 2, con.TupleCount(), "duplicate tuples must collapse")

	assert.True(t, con.Satisfies([]int{0, 1}))
	assert.True(t, con.Satisfies([]int{1, 0}))
	assert.False(t, con.Satisfies([]int{0, 0}))
	assert.False(t, con.Satisfies([]int{0, 1, 0}), "wrong arity is never satisfied")
}

// TestConstraint_SatisfyingTuplesOrderAndCopies verifies first-insertion
// order and that returned tuples are detached copies.
func TestConstraint_SatisfyingTuplesOrderAndCopies(t *testing.T) {
	x := mustVar(t, "x", []int{0, 1, 2})
	con, err := csp.NewConstraint("c", []*csp.Variable{x})
	require.NoError(t, err)
	require.NoError(t, con.AddSatisfyingTuples([][]int{{2}, {0}, {1}}))

	got := con.SatisfyingTuples()
	assert.Equal(t, [][]int{{2}, {0}, {1}}, got)

	got[0][0] = 99
	assert.True(t, con.Satisfies([]int{2}), "mutating a returned tuple must not affect the constraint")
}

// TestConstraint_ScopeAndHasVariable verifies scope copying and the
// pointer-identity membership probe.
func TestConstraint_ScopeAndHasVariable(t *testing.T) {
	x := mustVar(t, "x", []int{0})
	y := mustVar(t, "y", []int{0})
	other := mustVar(t, "x", []int{0}) // same name, different variable

	con, err := csp.NewConstraint("c", []*csp.Variable{x, y})
	require.NoError(t, err)

	assert.Equal(t, 2, con.Arity())
	scope := con.Scope()
	require.Len(t, scope, 2)
	assert.Same(t, x, scope[0])
	assert.Same(t, y, scope[1])

	assert.True(t, con.HasVariable(x))
	assert.False(t, con.HasVariable(other), "membership is pointer identity, not name equality")
}
