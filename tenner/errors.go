package tenner

import "errors"

// Sentinel errors for board validation. Branch with errors.Is; generator and
// assembler failures wrap csp sentinels with position context instead.
var (
	// ErrNoRows indicates an input grid with zero rows.
	ErrNoRows = errors.New("tenner: board must have at least one row")

	// ErrRowLength indicates a row that is not exactly ten cells wide.
	ErrRowLength = errors.New("tenner: every row must have exactly 10 cells")

	// ErrCellValue indicates a cell outside 0..9 that is not the Empty marker.
	ErrCellValue = errors.New("tenner: cell must be a digit 0..9 or Empty")

	// ErrSumCount indicates a column-sum list that is not exactly ten long.
	ErrSumCount = errors.New("tenner: column sums must have exactly 10 entries")
)
