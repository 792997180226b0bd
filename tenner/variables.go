package tenner

import (
	"fmt"

	"github.com/katalvlaran/tennergrid/csp"
)

// fullDomain is the shared source domain for free cells; NewVariable copies
// it, so the shared slice is never aliased by a Variable.
var fullDomain = []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}

// cellName formats the canonical variable name for position (row, col).
// Constraint labels reuse the same "(row, col)" text, so the format is part
// of the model's stable surface.
func cellName(row, col int) string {
	return fmt.Sprintf("(%d, %d)", row, col)
}

// BuildVariables derives the variable grid from a board: one csp.Variable
// per cell, shaped exactly like the board. An Empty cell yields domain
// {0..9} and no assignment; a fixed cell yields the singleton domain
// {digit} and is assigned that digit immediately, so its CurDomain is
// already pruned before any constraint is generated.
//
// Complexity: O(n×10) time and memory.
func BuildVariables(b *Board) ([][]*csp.Variable, error) {
	grid := make([][]*csp.Variable, b.Rows())
	for i := range grid {
		grid[i] = make([]*csp.Variable, Columns)
		for j := 0; j < Columns; j++ {
			var (
				v   *csp.Variable
				err error
			)
			if cell := b.Cell(i, j); cell == Empty {
				v, err = csp.NewVariable(cellName(i, j), fullDomain)
			} else {
				v, err = csp.NewVariable(cellName(i, j), []int{cell})
				if err == nil {
					err = v.Assign(cell)
				}
			}
			if err != nil {
				return nil, fmt.Errorf("tenner: build variable (%d, %d): %w", i, j, err)
			}
			grid[i][j] = v
		}
	}

	return grid, nil
}
