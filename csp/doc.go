// Package csp provides the building blocks of an extensional Constraint
// Satisfaction Problem: variables with integer domains, constraints that
// carry an explicit table of satisfying tuples, and the CSP container that
// registers both.
//
// What:
//
//   - Variable: a named cell with an ordered integer domain and at most one
//     current assignment. CurDomain collapses to the singleton {value} while
//     assigned.
//   - Constraint: a named, ordered scope of variables plus the exact set of
//     value tuples (position-aligned with the scope) it accepts.
//   - CSP: a named container; variables register first, constraints may only
//     reference variables already registered.
//
// Why:
//
//   - Extensional ("table") constraints keep the model fully declarative:
//     a downstream solver needs nothing beyond tuple membership tests.
//   - Registration order is preserved everywhere, so two constructions of
//     the same model are indistinguishable.
//
// Complexity:
//
//   - Satisfies: O(k) for a scope of size k (hash probe on a packed key).
//   - AddSatisfyingTuples: O(t·k) for t tuples.
//   - AddVariable / AddConstraint: O(1) and O(k) respectively.
//
// Errors:
//
//   - Sentinel errors only (ErrEmptyDomain, ErrValueNotInDomain,
//     ErrArityMismatch, ErrDuplicateVariable, ErrUnknownVariable, ...);
//     branch with errors.Is. No panics on user input.
package csp
