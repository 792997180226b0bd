package tenner

import (
	"fmt"

	"github.com/katalvlaran/tennergrid/csp"
)

// newAllDiffConstraint builds one extensional constraint over scope whose
// satisfying tuples are exactly the pairwise-distinct combinations of the
// scope's current domains. Shared by the row and adjacency generators.
func newAllDiffConstraint(name string, scope []*csp.Variable) (*csp.Constraint, error) {
	con, err := csp.NewConstraint(name, scope)
	if err != nil {
		return nil, fmt.Errorf("tenner: constraint %q: %w", name, err)
	}
	if err = con.AddSatisfyingTuples(AllDifferentTuples(scope)); err != nil {
		return nil, fmt.Errorf("tenner: constraint %q: %w", name, err)
	}

	return con, nil
}

// RowBinaryConstraints generates the binary-row encoding: for every row k
// and every column pair i<j, one "values differ" constraint over the two
// cells, labelled "(k, i), (k, j)". 45 constraints per row, emitted row by
// row with i ascending then j ascending — the label and emission order are
// stable across builds.
//
// Complexity: O(n·45) constraints, each with at most 90 tuples.
func RowBinaryConstraints(vars [][]*csp.Variable) ([]*csp.Constraint, error) {
	cons := make([]*csp.Constraint, 0, len(vars)*Columns*(Columns-1)/2)
	for k, row := range vars {
		for i := 0; i < Columns-1; i++ {
			for j := i + 1; j < Columns; j++ {
				name := fmt.Sprintf("(%d, %d), (%d, %d)", k, i, k, j)
				con, err := newAllDiffConstraint(name, []*csp.Variable{row[i], row[j]})
				if err != nil {
					return nil, err
				}
				cons = append(cons, con)
			}
		}
	}

	return cons, nil
}

// RowAllDiffConstraints generates the n-ary row encoding: one constraint
// per row, labelled "Row k", whose scope is the entire row and whose tuples
// are every repetition-free combination of the ten current domains. This is
// logically equivalent to the 45 binary constraints of the same row, but a
// propagating solver extracts weaker bounds from the single table — keeping
// both encodings separate is deliberate.
//
// Complexity: up to 10! tuples per fully free row; fixed cells divide the
// count by their pruned alternatives.
func RowAllDiffConstraints(vars [][]*csp.Variable) ([]*csp.Constraint, error) {
	cons := make([]*csp.Constraint, 0, len(vars))
	for k, row := range vars {
		scope := make([]*csp.Variable, Columns)
		copy(scope, row)
		con, err := newAllDiffConstraint(fmt.Sprintf("Row %d", k), scope)
		if err != nil {
			return nil, err
		}
		cons = append(cons, con)
	}

	return cons, nil
}
