// Package csp sentinel errors.
//
// Error policy (teacher-wide convention):
//   - Only package-level sentinel variables are exposed.
//   - Callers branch with errors.Is(err, ErrX), never by message string.
//   - Implementations attach context via fmt.Errorf("...: %w", ErrX).
package csp

import "errors"

var (
	// ErrEmptyName indicates a variable or constraint was given an empty name.
	ErrEmptyName = errors.New("csp: name must be non-empty")

	// ErrEmptyDomain indicates a variable was constructed with no domain values.
	ErrEmptyDomain = errors.New("csp: domain must contain at least one value")

	// ErrDuplicateDomainValue indicates a repeated value in a variable's domain.
	ErrDuplicateDomainValue = errors.New("csp: domain values must be distinct")

	// ErrValueNotInDomain indicates an assignment outside the variable's domain.
	ErrValueNotInDomain = errors.New("csp: value not in variable domain")

	// ErrNilVariable indicates a nil *Variable where a variable is required.
	ErrNilVariable = errors.New("csp: variable must be non-nil")

	// ErrEmptyScope indicates a constraint was constructed over zero variables.
	ErrEmptyScope = errors.New("csp: constraint scope must be non-empty")

	// ErrArityMismatch indicates a tuple whose length differs from the scope length.
	ErrArityMismatch = errors.New("csp: tuple length does not match constraint arity")

	// ErrNilConstraint indicates a nil *Constraint where a constraint is required.
	ErrNilConstraint = errors.New("csp: constraint must be non-nil")

	// ErrDuplicateVariable indicates a second registration under an already-used name.
	ErrDuplicateVariable = errors.New("csp: variable name already registered")

	// ErrUnknownVariable indicates a constraint scope member that was never registered.
	ErrUnknownVariable = errors.New("csp: scope variable not registered in model")
)
