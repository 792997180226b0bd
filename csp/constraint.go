package csp

import (
	"fmt"
	"strconv"
	"strings"
)

// Constraint is an extensional CSP constraint: a name, an ordered scope of
// variables, and the explicit set of value tuples it accepts. Tuple values
// are position-aligned with the scope, so scope order matters and is
// preserved exactly as given at construction.
type Constraint struct {
	name  string
	scope []*Variable
	// set holds packed tuple keys for O(k) membership probes; order keeps
	// first-insertion order for deterministic SatisfyingTuples output.
	set   map[string]struct{}
	order [][]int
}

// NewConstraint constructs a Constraint over the given scope. The scope
// slice is deep-copied. Returns ErrEmptyName, ErrEmptyScope, or
// ErrNilVariable.
//
// Complexity: O(k) for a scope of k variables.
func NewConstraint(name string, scope []*Variable) (*Constraint, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if len(scope) == 0 {
		return nil, fmt.Errorf("constraint %q: %w", name, ErrEmptyScope)
	}
	sc := make([]*Variable, len(scope))
	for i, v := range scope {
		if v == nil {
			return nil, fmt.Errorf("constraint %q, scope position %d: %w", name, i, ErrNilVariable)
		}
		sc[i] = v
	}

	return &Constraint{
		name:  name,
		scope: sc,
		set:   make(map[string]struct{}),
	}, nil
}

// Name returns the constraint's name.
func (c *Constraint) Name() string { return c.name }

// Arity returns the scope length.
func (c *Constraint) Arity() int { return len(c.scope) }

// Scope returns a copy of the ordered scope.
// Complexity: O(k).
func (c *Constraint) Scope() []*Variable {
	out := make([]*Variable, len(c.scope))
	copy(out, c.scope)

	return out
}

// HasVariable reports whether v appears in the scope (pointer identity).
// Complexity: O(k).
func (c *Constraint) HasVariable(v *Variable) bool {
	for _, s := range c.scope {
		if s == v {
			return true
		}
	}

	return false
}

// AddSatisfyingTuples records each tuple as an accepted joint assignment.
// Tuples are deep-copied and deduplicated; a tuple whose length differs
// from the scope length yields ErrArityMismatch and leaves the constraint
// unchanged for that tuple and all following ones.
//
// Complexity: O(t·k) for t tuples over a scope of k variables.
func (c *Constraint) AddSatisfyingTuples(tuples [][]int) error {
	for _, tpl := range tuples {
		if len(tpl) != len(c.scope) {
			return fmt.Errorf("constraint %q, tuple %v: %w", c.name, tpl, ErrArityMismatch)
		}
		key := packTuple(tpl)
		if _, dup := c.set[key]; dup {
			continue
		}
		cp := make([]int, len(tpl))
		copy(cp, tpl)
		c.set[key] = struct{}{}
		c.order = append(c.order, cp)
	}

	return nil
}

// Satisfies reports whether the position-aligned tuple is accepted.
// A tuple of the wrong length is simply not accepted (no error).
// Complexity: O(k).
func (c *Constraint) Satisfies(tuple []int) bool {
	if len(tuple) != len(c.scope) {
		return false
	}
	_, ok := c.set[packTuple(tuple)]

	return ok
}

// TupleCount returns the number of distinct satisfying tuples.
func (c *Constraint) TupleCount() int { return len(c.order) }

// SatisfyingTuples returns copies of all satisfying tuples in first-insertion
// order. Complexity: O(t·k) time and memory.
func (c *Constraint) SatisfyingTuples() [][]int {
	out := make([][]int, len(c.order))
	for i, tpl := range c.order {
		cp := make([]int, len(tpl))
		copy(cp, tpl)
		out[i] = cp
	}

	return out
}

// packTuple encodes a tuple as a comma-joined decimal key, e.g. "3,0,7".
// Values are arbitrary ints, so a positional separator is required.
func packTuple(tuple []int) string {
	var sb strings.Builder
	for i, v := range tuple {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(v))
	}

	return sb.String()
}
