package tenner_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tennergrid/csp"
	"github.com/katalvlaran/tennergrid/tenner"
)

// freeVar builds an unassigned variable over the given domain.
func freeVar(t *testing.T, name string, domain []int) *csp.Variable {
	t.Helper()
	v, err := csp.NewVariable(name, domain)
	require.NoError(t, err)

	return v
}

// fixedVar builds a singleton-domain variable assigned to its only value,
// exactly the shape BuildVariables produces for a fixed cell.
func fixedVar(t *testing.T, name string, value int) *csp.Variable {
	t.Helper()
	v, err := csp.NewVariable(name, []int{value})
	require.NoError(t, err)
	require.NoError(t, v.Assign(value))

	return v
}

//----------------------------------------------------------------------------//
// AllDifferentTuples
//----------------------------------------------------------------------------//

// TestAllDifferentTuples_TwoFree enumerates two free variables over {0,1,2}
// and expects exactly the six ordered distinct pairs, in lexicographic order.
func TestAllDifferentTuples_TwoFree(t *testing.T) {
	scope := []*csp.Variable{
		freeVar(t, "a", []int{0, 1, 2}),
		freeVar(t, "b", []int{0, 1, 2}),
	}

	got := tenner.AllDifferentTuples(scope)
	want := [][]int{{0, 1}, {0, 2}, {1, 0}, {1, 2}, {2, 0}, {2, 1}}
	assert.Equal(t, want, got)
}

// TestAllDifferentTuples_FixedPrunes verifies an assigned variable
// contributes only its assigned value.
func TestAllDifferentTuples_FixedPrunes(t *testing.T) {
	scope := []*csp.Variable{
		fixedVar(t, "a", 4),
		freeVar(t, "b", []int{3, 4, 5}),
	}

	got := tenner.AllDifferentTuples(scope)
	assert.Equal(t, [][]int{{4, 3}, {4, 5}}, got, "4 must be excluded from b's column")
}

// TestAllDifferentTuples_FullPairCount verifies the 90-of-100 property for
// two free digit cells.
func TestAllDifferentTuples_FullPairCount(t *testing.T) {
	digits := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	scope := []*csp.Variable{
		freeVar(t, "a", digits),
		freeVar(t, "b", digits),
	}

	got := tenner.AllDifferentTuples(scope)
	require.Len(t, got, 90)
	for _, tpl := range got {
		assert.NotEqual(t, tpl[0], tpl[1])
	}
}

// TestAllDifferentTuples_SingleVariable degenerates to one tuple per value.
func TestAllDifferentTuples_SingleVariable(t *testing.T) {
	got := tenner.AllDifferentTuples([]*csp.Variable{freeVar(t, "a", []int{7, 8})})
	assert.Equal(t, [][]int{{7}, {8}}, got)
}

//----------------------------------------------------------------------------//
// ColumnSumTuples
//----------------------------------------------------------------------------//

// TestColumnSumTuples_Degenerate covers the n=1 case: the single cell must
// equal the target exactly.
func TestColumnSumTuples_Degenerate(t *testing.T) {
	assert.Equal(t, [][]int{{9}}, tenner.ColumnSumTuples(1, 9))
	assert.Equal(t, [][]int{{0}}, tenner.ColumnSumTuples(1, 0))
	assert.Empty(t, tenner.ColumnSumTuples(1, 10), "10 is unreachable by one digit")
}

// TestColumnSumTuples_Extremes pins the single-tuple corners of the range.
func TestColumnSumTuples_Extremes(t *testing.T) {
	assert.Equal(t, [][]int{{0, 0}}, tenner.ColumnSumTuples(2, 0))
	assert.Equal(t, [][]int{{9, 9}}, tenner.ColumnSumTuples(2, 18))
	assert.Empty(t, tenner.ColumnSumTuples(2, 19))
	assert.Empty(t, tenner.ColumnSumTuples(2, -1))
	assert.Empty(t, tenner.ColumnSumTuples(0, 0))
}

// TestColumnSumTuples_MatchesBruteForce cross-checks a 3-row enumeration
// against a plain triple loop.
func TestColumnSumTuples_MatchesBruteForce(t *testing.T) {
	const target = 10
	var want [][]int
	for a := 0; a <= 9; a++ {
		for b := 0; b <= 9; b++ {
			for c := 0; c <= 9; c++ {
				if a+b+c == target {
					want = append(want, []int{a, b, c})
				}
			}
		}
	}

	got := tenner.ColumnSumTuples(3, target)
	assert.Equal(t, want, got, "pruned enumeration must match product-then-filter")
}

// TestColumnSumTuples_AlphabetOnly verifies every emitted value stays in 0..9.
func TestColumnSumTuples_AlphabetOnly(t *testing.T) {
	for _, tpl := range tenner.ColumnSumTuples(4, 31) {
		require.Len(t, tpl, 4)
		sum := 0
		for _, v := range tpl {
			assert.GreaterOrEqual(t, v, 0)
			assert.LessOrEqual(t, v, 9)
			sum += v
		}
		assert.Equal(t, 31, sum)
	}
}
