// Package tenner core types and constants for Tenner Grid boards.
package tenner

// Board geometry and cell encoding.
const (
	// Columns is the fixed width of every Tenner Grid board.
	Columns = 10

	// MinRows and MaxRows bound the standard puzzle sizes. They are
	// documentation, not enforcement: degenerate boards (a single row) still
	// build, and their column-sum constraints collapse to singletons.
	MinRows = 3
	MaxRows = 7

	// Empty marks an unconstrained cell in board input.
	Empty = -1

	// minDigit and maxDigit delimit the value alphabet of every cell.
	minDigit = 0
	maxDigit = 9
)

// Board is a Tenner Grid instance: n rows of ten cells, each a digit 0–9 or
// Empty, plus one target sum per column. Both slices are deep-copied by
// NewBoard, so a Board never aliases caller memory.
type Board struct {
	cells [][]int
	sums  []int
}

// NewBoard validates and deep-copies a board. cells must be a non-empty
// rectangular n×10 grid of digits 0–9 or Empty; sums must hold exactly one
// target per column.
//
// Returns ErrNoRows, ErrRowLength, ErrCellValue, or ErrSumCount.
//
// Complexity: O(n×10) time and memory.
func NewBoard(cells [][]int, sums []int) (*Board, error) {
	if len(cells) == 0 {
		return nil, ErrNoRows
	}
	if len(sums) != Columns {
		return nil, ErrSumCount
	}
	cp := make([][]int, len(cells))
	for i, row := range cells {
		if len(row) != Columns {
			return nil, ErrRowLength
		}
		for _, c := range row {
			if c != Empty && (c < minDigit || c > maxDigit) {
				return nil, ErrCellValue
			}
		}
		cp[i] = make([]int, Columns)
		copy(cp[i], row)
	}
	sc := make([]int, Columns)
	copy(sc, sums)

	return &Board{cells: cp, sums: sc}, nil
}

// Rows returns the number of board rows.
func (b *Board) Rows() int { return len(b.cells) }

// Cell returns the raw input value at (row, col): a digit 0–9 or Empty.
// Out-of-range positions are the caller's bug and panic via slice indexing.
func (b *Board) Cell(row, col int) int { return b.cells[row][col] }

// ColumnSum returns the target sum for the given column.
func (b *Board) ColumnSum(col int) int { return b.sums[col] }

// ColumnSums returns a copy of all ten column targets.
func (b *Board) ColumnSums() []int {
	out := make([]int, Columns)
	copy(out, b.sums)

	return out
}
