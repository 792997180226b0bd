// File: csp/example_test.go
package csp_test

import (
	"fmt"

	"github.com/katalvlaran/tennergrid/csp"
)

// Example demonstrates building a two-variable "not equal" model by hand:
// construct variables, attach an extensional constraint, and probe it.
func Example() {
	x, _ := csp.NewVariable("x", []int{0, 1, 2})
	y, _ := csp.NewVariable("y", []int{0, 1, 2})

	con, _ := csp.NewConstraint("x≠y", []*csp.Variable{x, y})
	_ = con.AddSatisfyingTuples([][]int{
		{0, 1}, {0, 2}, {1, 0}, {1, 2}, {2, 0}, {2, 1},
	})

	model := csp.New("pair")
	_ = model.AddVariable(x)
	_ = model.AddVariable(y)
	_ = model.AddConstraint(con)

	fmt.Println("variables:", model.VariableCount())
	fmt.Println("tuples:", con.TupleCount())
	fmt.Println("(1,1) allowed:", con.Satisfies([]int{1, 1}))
	fmt.Println("(1,2) allowed:", con.Satisfies([]int{1, 2}))

	// Output:
	// variables: 2
	// tuples: 6
	// (1,1) allowed: false
	// (1,2) allowed: true
}
