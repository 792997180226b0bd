// Package tenner builds extensional CSP models from Tenner Grid boards.
//
// What:
//
//   - Board wraps a validated n×10 grid (digits 0–9 or Empty) plus the ten
//     column-sum targets.
//   - BuildVariables derives one csp.Variable per cell: full domain {0..9}
//     for an Empty cell, a singleton domain with an immediate assignment
//     for a fixed cell.
//   - Four constraint generators produce the puzzle rules as explicit
//     satisfying-tuple tables: RowBinaryConstraints (45 pairwise ≠ per
//     row), RowAllDiffConstraints (one n-ary all-different per row),
//     AdjacencyConstraints (vertical plus both diagonals between
//     consecutive rows), ColumnSumConstraints (one per column).
//   - ModelBinary and ModelAllDiff assemble variables and generators into a
//     csp.CSP and additionally return the variable grid so callers can read
//     solved values back cell by cell.
//
// Why two row encodings:
//
//   - The 45 binary constraints and the single all-different constraint
//     accept exactly the same row assignments, but an arc-consistency
//     solver propagates much more from the exploded binary set. Keeping
//     both assemblers makes that trade explicit and testable.
//
// Enumeration semantics:
//
//   - AllDifferentTuples enumerates over each variable's CurDomain, so a
//     fixed cell contributes exactly one value and prunes the product.
//   - ColumnSumTuples deliberately ignores per-cell domains and ranges over
//     the full digit alphabet; a sum tuple may therefore place an
//     infeasible digit on a fixed cell, and reconciling that is the
//     downstream solver's job.
//
// Complexity:
//
//   - AllDifferentTuples: ≤ 10^k products for a scope of k free cells
//     (k ≤ 10; a fully free row enumerates 10! = 3,628,800 tuples).
//   - ColumnSumTuples: ≤ 10^n for n rows (n ≤ 7 on standard boards).
//   - ModelBinary on an n-row board registers 10n variables and
//     45n + 28(n−1) + 10 constraints; ModelAllDiff registers
//     n + 28(n−1) + 10.
//
// Errors:
//
//   - ErrNoRows, ErrRowLength, ErrCellValue, ErrSumCount from NewBoard;
//     everything after a valid Board is deterministic construction and
//     only surfaces wrapped csp sentinels on internal misuse.
package tenner
