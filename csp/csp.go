package csp

import "fmt"

// CSP is the model container: a name, the registered variables, and the
// registered constraints, both in registration order. Constraints may only be
// attached after every variable in their scope has been registered.
type CSP struct {
	name  string
	vars  []*Variable
	index map[string]*Variable
	cons  []*Constraint
}

// New returns an empty model with the given name.
func New(name string) *CSP {
	return &CSP{
		name:  name,
		index: make(map[string]*Variable),
	}
}

// Name returns the model's name.
func (m *CSP) Name() string { return m.name }

// AddVariable registers v. Returns ErrNilVariable, or ErrDuplicateVariable
// when a variable with the same name is already registered.
// Complexity: O(1).
func (m *CSP) AddVariable(v *Variable) error {
	if v == nil {
		return fmt.Errorf("model %q: %w", m.name, ErrNilVariable)
	}
	if _, dup := m.index[v.name]; dup {
		return fmt.Errorf("model %q, variable %q: %w", m.name, v.name, ErrDuplicateVariable)
	}
	m.index[v.name] = v
	m.vars = append(m.vars, v)

	return nil
}

// AddConstraint registers c. Every scope member must already be registered
// (by pointer identity under its name), otherwise ErrUnknownVariable.
// Complexity: O(k) for a scope of k variables.
func (m *CSP) AddConstraint(c *Constraint) error {
	if c == nil {
		return fmt.Errorf("model %q: %w", m.name, ErrNilConstraint)
	}
	for _, v := range c.scope {
		if reg, ok := m.index[v.name]; !ok || reg != v {
			return fmt.Errorf("model %q, constraint %q, variable %q: %w",
				m.name, c.name, v.name, ErrUnknownVariable)
		}
	}
	m.cons = append(m.cons, c)

	return nil
}

// Variable returns the registered variable with the given name, or nil.
// Complexity: O(1).
func (m *CSP) Variable(name string) *Variable { return m.index[name] }

// Variables returns a copy of the registered variables in registration order.
func (m *CSP) Variables() []*Variable {
	out := make([]*Variable, len(m.vars))
	copy(out, m.vars)

	return out
}

// Constraints returns a copy of the registered constraints in registration order.
func (m *CSP) Constraints() []*Constraint {
	out := make([]*Constraint, len(m.cons))
	copy(out, m.cons)

	return out
}

// VariableCount returns the number of registered variables.
func (m *CSP) VariableCount() int { return len(m.vars) }

// ConstraintCount returns the number of registered constraints.
func (m *CSP) ConstraintCount() int { return len(m.cons) }

// ConstraintsWith returns every registered constraint whose scope contains
// v, in registration order. Solvers use this to wake the constraints
// affected by a single variable.
// Complexity: O(C·k) over C constraints.
func (m *CSP) ConstraintsWith(v *Variable) []*Constraint {
	var out []*Constraint
	for _, c := range m.cons {
		if c.HasVariable(v) {
			out = append(out, c)
		}
	}

	return out
}
