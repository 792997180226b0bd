package tenner

import (
	"fmt"

	"github.com/katalvlaran/tennergrid/csp"
)

// ColumnSumConstraints generates one constraint per column, labelled
// "Col i", whose scope runs top to bottom through the column's n cells and
// whose tuples are every length-n digit combination reaching the column's
// target sum (ColumnSumTuples — full alphabet, per-cell domains ignored).
// Always exactly ten constraints, one per column, regardless of the row
// encoding chosen.
//
// A target outside [0, 9n] yields a constraint with an empty tuple table,
// which a solver will report as immediately unsatisfiable; that mirrors the
// board simply having no solution.
//
// Complexity: O(10^n) tuple enumeration per column.
func ColumnSumConstraints(vars [][]*csp.Variable, sums []int) ([]*csp.Constraint, error) {
	if len(sums) != Columns {
		return nil, ErrSumCount
	}
	n := len(vars)
	cons := make([]*csp.Constraint, 0, Columns)
	for i := 0; i < Columns; i++ {
		scope := make([]*csp.Variable, n)
		for k := 0; k < n; k++ {
			scope[k] = vars[k][i]
		}
		name := fmt.Sprintf("Col %d", i)
		con, err := csp.NewConstraint(name, scope)
		if err != nil {
			return nil, fmt.Errorf("tenner: constraint %q: %w", name, err)
		}
		if err = con.AddSatisfyingTuples(ColumnSumTuples(n, sums[i])); err != nil {
			return nil, fmt.Errorf("tenner: constraint %q: %w", name, err)
		}
		cons = append(cons, con)
	}

	return cons, nil
}
