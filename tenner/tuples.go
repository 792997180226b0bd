package tenner

import "github.com/katalvlaran/tennergrid/csp"

// AllDifferentTuples enumerates the Cartesian product of the scope's
// current domains and keeps exactly the tuples whose values are pairwise
// distinct. Tuple order is lexicographic with respect to each variable's
// domain order, matching a plain product-then-filter enumeration; values
// already used on the prefix are skipped early instead, which changes cost
// but not output.
//
// An assigned variable contributes only its assigned value (CurDomain), so
// fixed cells collapse their column of the product to a single choice.
//
// Complexity: O(∏ |CurDomain|) worst case, far smaller on boards with
// fixed cells. Memory: O(t·k) for t result tuples over k variables.
func AllDifferentTuples(scope []*csp.Variable) [][]int {
	domains := make([][]int, len(scope))
	for i, v := range scope {
		domains[i] = v.CurDomain()
	}

	var (
		out    [][]int
		prefix = make([]int, 0, len(scope))
		used   = make(map[int]struct{}, len(scope))
	)
	var walk func(pos int)
	walk = func(pos int) {
		if pos == len(domains) {
			tpl := make([]int, len(prefix))
			copy(tpl, prefix)
			out = append(out, tpl)

			return
		}
		for _, val := range domains[pos] {
			if _, taken := used[val]; taken {
				continue
			}
			used[val] = struct{}{}
			prefix = append(prefix, val)
			walk(pos + 1)
			prefix = prefix[:len(prefix)-1]
			delete(used, val)
		}
	}
	walk(0)

	return out
}

// ColumnSumTuples enumerates every length-rows tuple over the digit
// alphabet 0..9 whose values sum to exactly target. Per-cell domains are
// intentionally ignored: sum constraints range over the full alphabet even
// where a fixed cell makes some positions infeasible, and the downstream
// solver reconciles those tuples against the actual domains.
//
// Tuple order is lexicographic over digits. Branches whose remaining
// positions cannot reach the target any more are cut, which again changes
// cost but not output.
//
// Complexity: O(10^rows) worst case; the result is empty when target lies
// outside [0, 9·rows].
func ColumnSumTuples(rows, target int) [][]int {
	if rows <= 0 || target < 0 || target > maxDigit*rows {
		return nil
	}

	var (
		out    [][]int
		prefix = make([]int, 0, rows)
	)
	var walk func(pos, remaining int)
	walk = func(pos, remaining int) {
		if pos == rows {
			if remaining == 0 {
				tpl := make([]int, len(prefix))
				copy(tpl, prefix)
				out = append(out, tpl)
			}

			return
		}
		left := rows - pos - 1
		for d := minDigit; d <= maxDigit; d++ {
			rest := remaining - d
			if rest < 0 || rest > maxDigit*left {
				continue
			}
			prefix = append(prefix, d)
			walk(pos+1, rest)
			prefix = prefix[:len(prefix)-1]
		}
	}
	walk(0, target)

	return out
}
