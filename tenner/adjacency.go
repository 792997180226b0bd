package tenner

import (
	"fmt"

	"github.com/katalvlaran/tennergrid/csp"
)

// AdjacencyConstraints generates the contiguity rules between consecutive
// rows: for each row pair (k, k+1) and each column i, a binary "values
// differ" constraint to the same-column cell below, plus one to each
// existing diagonal neighbor (down-left when i>0, down-right when i<9).
// Labels follow "(k, i), (k+1, j)". Boundary columns therefore carry one
// diagonal constraint, interior columns two, for (n−1)·28 constraints in
// total.
//
// Horizontal neighbors inside a row are already covered by the row
// generators, so no same-row constraints are produced here.
//
// Complexity: O(n·28) constraints, each with at most 90 tuples.
func AdjacencyConstraints(vars [][]*csp.Variable) ([]*csp.Constraint, error) {
	if len(vars) == 0 {
		return nil, nil
	}
	cons := make([]*csp.Constraint, 0, (len(vars)-1)*(3*Columns-2))
	add := func(k, i, j int) error {
		name := fmt.Sprintf("(%d, %d), (%d, %d)", k, i, k+1, j)
		con, err := newAllDiffConstraint(name, []*csp.Variable{vars[k][i], vars[k+1][j]})
		if err != nil {
			return err
		}
		cons = append(cons, con)

		return nil
	}
	for k := 0; k < len(vars)-1; k++ {
		for i := 0; i < Columns; i++ {
			// Vertical neighbor, then down-left, then down-right.
			if err := add(k, i, i); err != nil {
				return nil, err
			}
			if i > 0 {
				if err := add(k, i, i-1); err != nil {
					return nil, err
				}
			}
			if i < Columns-1 {
				if err := add(k, i, i+1); err != nil {
					return nil, err
				}
			}
		}
	}

	return cons, nil
}
