// Package boardfile loads Tenner Grid boards from HCL files.
//
// A board file is a plain HCL document with two attributes:
//
//	rows = [
//	  [6, empty, 1, 5, 7, empty, empty, empty, 3, empty],
//	  [empty, 9, 7, empty, empty, 2, 1, empty, empty, empty],
//	  [empty, empty, empty, empty, empty, 0, empty, empty, empty, 1],
//	]
//	column_sums = [18, 21, 17, 18, 14, 8, 15, 14, 12, 13]
//
// The identifier `empty` denotes an unconstrained cell; it is bound to
// tenner.Empty through the evaluation context, so board files never need to
// spell the sentinel value. Decoded boards pass through tenner.NewBoard and
// inherit its shape validation.
//
// Errors are wrapped HCL diagnostics or tenner sentinels; both carry the
// source filename.
package boardfile
