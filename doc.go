// Package tennergrid turns partially-filled Tenner Grid puzzles into
// fully extensional Constraint Satisfaction Problem (CSP) models that any
// table-driven solver can consume.
//
// 🚀 What is tennergrid?
//
//	A small, deterministic model-construction library:
//		• csp/       — generic variables, extensional constraints, and the
//		               model container that holds them
//		• tenner/    — the Tenner Grid board, tuple enumerators, constraint
//		               generators, and the two model assemblers
//		• boardfile/ — HCL board files ("rows", "column_sums", the `empty`
//		               keyword) decoded into tenner.Board values
//		• cmd/tennergrid — CLI that loads a board and reports model statistics
//
// ✨ Why choose tennergrid?
//
//   - Declarative output – every constraint carries its exact satisfying
//     tuple table; nothing is hidden in closures
//   - Two row encodings – 45 binary ≠ constraints per row, or one n-ary
//     all-different per row, sharing adjacency and column-sum generators
//   - Deterministic – same board in, byte-for-byte same model out
//   - Pure Go library core – no cgo, no I/O outside boardfile
//
// A Tenner Grid is an n×10 board (n usually 3..7) filled with digits 0–9 so
// that every row holds ten distinct digits, vertically or diagonally
// touching cells across consecutive rows differ, and each column sums to a
// given target:
//
//	|6| |1|5|7| | | |3| |
//	| |9|7| | |2|1| | | |
//	| | | | | |0| | | |1|
//	 37 24 27 25 38 ...   ← column sums
//
// Model construction only: solving, propagation, and constraint compilation
// belong to whatever engine the produced model is handed to.
package tennergrid
