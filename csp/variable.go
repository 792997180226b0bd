package csp

import "fmt"

// Variable is a single CSP variable: a unique name, an ordered integer
// domain fixed at construction time, and at most one current assignment.
//
// A Variable is safe to share between constraints; only Assign/Unassign
// mutate it, and model construction performs those exactly once per fixed
// cell. It is not safe for concurrent mutation.
type Variable struct {
	name     string
	dom      []int
	inDom    map[int]struct{}
	assigned bool
	value    int
}

// NewVariable constructs a Variable with the given name and domain.
// The domain is deep-copied; its order is preserved and drives the order of
// enumerated tuples downstream.
//
// Returns ErrEmptyName, ErrEmptyDomain, or ErrDuplicateDomainValue on
// invalid input.
//
// Complexity: O(|domain|) time and memory.
func NewVariable(name string, domain []int) (*Variable, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if len(domain) == 0 {
		return nil, fmt.Errorf("variable %q: %w", name, ErrEmptyDomain)
	}
	dom := make([]int, len(domain))
	copy(dom, domain)
	inDom := make(map[int]struct{}, len(dom))
	for _, d := range dom {
		if _, dup := inDom[d]; dup {
			return nil, fmt.Errorf("variable %q, value %d: %w", name, d, ErrDuplicateDomainValue)
		}
		inDom[d] = struct{}{}
	}

	return &Variable{name: name, dom: dom, inDom: inDom}, nil
}

// Name returns the variable's unique name.
func (v *Variable) Name() string { return v.name }

// Domain returns a copy of the construction-time domain, in original order.
// Complexity: O(|domain|).
func (v *Variable) Domain() []int {
	out := make([]int, len(v.dom))
	copy(out, v.dom)

	return out
}

// CurDomain returns the values the variable may currently take: the
// singleton {assigned value} while assigned, otherwise a copy of the full
// domain. Tuple enumeration is always driven by CurDomain, which is how a
// fixed cell prunes the combinatorics to a single column of values.
// Complexity: O(|domain|).
func (v *Variable) CurDomain() []int {
	if v.assigned {
		return []int{v.value}
	}

	return v.Domain()
}

// DomainSize returns len(CurDomain()) without allocating.
func (v *Variable) DomainSize() int {
	if v.assigned {
		return 1
	}

	return len(v.dom)
}

// InDomain reports whether val belongs to the construction-time domain.
// Complexity: O(1).
func (v *Variable) InDomain(val int) bool {
	_, ok := v.inDom[val]

	return ok
}

// Assign fixes the variable to val. Assigning outside the domain returns
// ErrValueNotInDomain; re-assigning an assigned variable simply replaces
// the value (the model builder never does so, but a solver may).
func (v *Variable) Assign(val int) error {
	if !v.InDomain(val) {
		return fmt.Errorf("variable %q, value %d: %w", v.name, val, ErrValueNotInDomain)
	}
	v.assigned = true
	v.value = val

	return nil
}

// Unassign clears the current assignment, restoring the full CurDomain.
func (v *Variable) Unassign() {
	v.assigned = false
	v.value = 0
}

// Assigned reports whether the variable currently holds an assignment.
func (v *Variable) Assigned() bool { return v.assigned }

// AssignedValue returns the current assignment and true, or (0, false) when
// the variable is unassigned.
func (v *Variable) AssignedValue() (int, bool) {
	if !v.assigned {
		return 0, false
	}

	return v.value, true
}
