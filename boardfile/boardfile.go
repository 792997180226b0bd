package boardfile

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/katalvlaran/tennergrid/tenner"
)

// boardSchema mirrors the two attributes of a board file.
type boardSchema struct {
	Rows       [][]int `hcl:"rows"`
	ColumnSums []int   `hcl:"column_sums"`
}

// evalContext binds the identifiers available inside board files.
// `empty` marks an unconstrained cell.
func evalContext() *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"empty": cty.NumberIntVal(tenner.Empty),
		},
	}
}

// Parse decodes HCL source into a validated board. filename is used only
// for diagnostics.
func Parse(src []byte, filename string) (*tenner.Board, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("boardfile: parse %s: %w", filename, diags)
	}

	var schema boardSchema
	if diags = gohcl.DecodeBody(file.Body, evalContext(), &schema); diags.HasErrors() {
		return nil, fmt.Errorf("boardfile: decode %s: %w", filename, diags)
	}

	board, err := tenner.NewBoard(schema.Rows, schema.ColumnSums)
	if err != nil {
		return nil, fmt.Errorf("boardfile: %s: %w", filename, err)
	}

	return board, nil
}

// Load reads and decodes the board file at path.
func Load(path string) (*tenner.Board, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("boardfile: read %s: %w", path, err)
	}

	return Parse(src, path)
}
