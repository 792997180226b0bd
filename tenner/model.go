package tenner

import (
	"fmt"

	"github.com/katalvlaran/tennergrid/csp"
)

// rowGenerator is a row-encoding strategy: either the exploded binary set
// or the single all-different table per row.
type rowGenerator func(vars [][]*csp.Variable) ([]*csp.Constraint, error)

// ModelBinary builds the binary-row model: per row, 45 pairwise ≠
// constraints; plus the shared adjacency and column-sum constraints. The
// returned grid gives direct access to every cell's variable, which is how
// callers read assignments back after an external solver has run.
//
// Registration order is fixed: all 10n variables row-major, then row
// constraints, then adjacency constraints, then sum constraints.
// Construction is all-or-nothing — the first failure is returned and no
// partial model escapes.
func ModelBinary(b *Board) (*csp.CSP, [][]*csp.Variable, error) {
	return assemble("tenner-binary", b, RowBinaryConstraints)
}

// ModelAllDiff builds the n-ary-row model: one all-different constraint per
// row instead of the exploded binary set, with the same adjacency and
// column-sum constraints and the same registration order as ModelBinary.
// Both models accept exactly the same full assignments; they differ only in
// how much a propagating solver can prune from the row tables.
func ModelAllDiff(b *Board) (*csp.CSP, [][]*csp.Variable, error) {
	return assemble("tenner-alldiff", b, RowAllDiffConstraints)
}

// assemble wires the variable builder, the chosen row generator, and the
// shared adjacency/sum generators into one registered model.
func assemble(name string, b *Board, rows rowGenerator) (*csp.CSP, [][]*csp.Variable, error) {
	vars, err := BuildVariables(b)
	if err != nil {
		return nil, nil, err
	}

	rowCons, err := rows(vars)
	if err != nil {
		return nil, nil, err
	}
	adjCons, err := AdjacencyConstraints(vars)
	if err != nil {
		return nil, nil, err
	}
	sumCons, err := ColumnSumConstraints(vars, b.ColumnSums())
	if err != nil {
		return nil, nil, err
	}

	model := csp.New(name)
	for _, row := range vars {
		for _, v := range row {
			if err = model.AddVariable(v); err != nil {
				return nil, nil, fmt.Errorf("tenner: register variables: %w", err)
			}
		}
	}
	for _, group := range [][]*csp.Constraint{rowCons, adjCons, sumCons} {
		for _, con := range group {
			if err = model.AddConstraint(con); err != nil {
				return nil, nil, fmt.Errorf("tenner: register constraints: %w", err)
			}
		}
	}

	return model, vars, nil
}
