package editdist

import (
	"errors"
	"fmt"
)

// Levenshtein edit distance
//
// Description:
//
//	The edit distance between two sequences is the minimum number of
//	single-element edits (insert, delete, substitute) that turn one into
//	the other. Equal elements are kept for free. The metric is symmetric,
//	zero exactly on equal sequences, and obeys the triangle inequality.
//
// Algorithm Outline (TwoRows):
//  1. Let m = len(s), n = len(t); transpose so that n ≤ m (the metric is
//     symmetric, and the rows then hold only min(m,n)+1 cells).
//  2. previous[j] = j for j=0..n (distance from the empty prefix).
//  3. For i = 1..m:
//     current[0] = i
//     For j = 1..n:
//     cost      = 0 if s[i-1] == t[j-1], else 1
//     deletion  = previous[j] + 1
//     insertion = current[j-1] + 1
//     diagonal  = previous[j-1] + cost
//     current[j] = min(deletion, insertion, diagonal)
//     Swap previous and current.
//  4. distance = previous[n] (the swap just moved the finished row there).
//  5. With a MaxDistance budget, stop after any row whose minimum already
//     exceeds the budget: row minima never decrease, so the final
//     distance cannot come back under it.
//
// Memory Modes:
//   - TwoRows    — two rolling rows, O(min(m,n)) memory, no script.
//   - FullMatrix — whole (m+1)×(n+1) table, O(m·n) memory, supports
//     script recovery (see script.go).
//
// Complexity:
//
//	Time   = O(m·n)
//	Memory = O(min(m,n)) (TwoRows) or O(m·n) (FullMatrix)
//
// Errors:
//   - ErrScriptNeedsMatrix — if ReturnScript=true with TwoRows mode.
//   - ErrBadOption         — unknown MemoryMode or MaxDistance < -1.
var (
	// ErrScriptNeedsMatrix indicates that script recovery requires FullMatrix mode.
	ErrScriptNeedsMatrix = errors.New("editdist: ReturnScript requires MemoryMode=FullMatrix")

	// ErrBadOption indicates an option field outside its documented range.
	ErrBadOption = errors.New("editdist: invalid option value")
)

// Distance computes the Levenshtein distance between s and t.
// Returns (distance, script, error); script is nil unless
// opts.ReturnScript is set and the budget was not exceeded.
//
// A nil opts means DefaultOptions(). Empty inputs are valid: the distance
// to an empty sequence is the length of the other one.
//
// Example:
//
//	opts := editdist.DefaultOptions()
//	opts.ReturnScript = true
//	opts.MemoryMode = editdist.FullMatrix
//	dist, script, err := editdist.Distance([]rune("book"), []rune("back"), &opts)
func Distance[E comparable](s, t []E, opts *Options) (distance int, script []Op, err error) {
	// Apply options or defaults
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if o.MaxDistance < Unlimited {
		return 0, nil, fmt.Errorf("Distance: MaxDistance %d: %w", o.MaxDistance, ErrBadOption)
	}
	if o.MemoryMode != TwoRows && o.MemoryMode != FullMatrix {
		return 0, nil, fmt.Errorf("Distance: MemoryMode %d: %w", int(o.MemoryMode), ErrBadOption)
	}
	if o.ReturnScript && o.MemoryMode != FullMatrix {
		return 0, nil, ErrScriptNeedsMatrix
	}

	if o.MemoryMode == FullMatrix {
		dp := distanceTable(s, t)
		distance = dp[len(dp)-1]
		// The budget is applied after the full table: FullMatrix trades the
		// early exit for backtracking support.
		if o.MaxDistance >= 0 && distance > o.MaxDistance {
			return o.MaxDistance + 1, nil, nil
		}
		if o.ReturnScript {
			script = backtrack(dp, s, t)
		}

		return distance, script, nil
	}

	return rollingDistance(s, t, o.MaxDistance), nil, nil
}

// Strings computes the Levenshtein distance between two strings by runes,
// so multi-byte characters count as single elements. Same options and
// results as Distance.
func Strings(s, t string, opts *Options) (int, []Op, error) {
	return Distance([]rune(s), []rune(t), opts)
}

// Ratio condenses a rune-wise string comparison into a similarity in
// [0,1]: 1 - distance/max(m,n). Two empty strings are fully similar (1).
func Ratio(s, t string) float64 {
	rs, rt := []rune(s), []rune(t)
	longer := len(rs)
	if len(rt) > longer {
		longer = len(rt)
	}
	if longer == 0 {
		return 1
	}

	d, _, _ := Distance(rs, rt, nil) // defaults are always valid

	return 1 - float64(d)/float64(longer)
}

// rollingDistance is the TwoRows implementation: two (n+1)-cell rows,
// swapped after every outer iteration, with an optional budget cutoff.
// maxDist < 0 means no budget.
func rollingDistance[E comparable](s, t []E, maxDist int) int {
	// Transpose so the rows span the shorter sequence.
	if len(t) > len(s) {
		s, t = t, s
	}
	m, n := len(s), len(t)

	previous := make([]int, n+1)
	current := make([]int, n+1)

	var i, j, cost, rowMin int
	for j = 0; j <= n; j++ {
		previous[j] = j // distance from the empty prefix
	}

	for i = 1; i <= m; i++ {
		current[0] = i
		rowMin = current[0]
		for j = 1; j <= n; j++ {
			cost = 1
			if s[i-1] == t[j-1] {
				cost = 0
			}
			current[j] = min3(
				previous[j]+1,      // deletion
				current[j-1]+1,     // insertion
				previous[j-1]+cost, // keep or substitute
			)
			if current[j] < rowMin {
				rowMin = current[j]
			}
		}
		// Row minima never decrease, so once a whole row is over the
		// budget the final distance is too.
		if maxDist >= 0 && rowMin > maxDist {
			return maxDist + 1
		}
		previous, current = current, previous // reuse the older row's storage
	}

	if maxDist >= 0 && previous[n] > maxDist {
		return maxDist + 1
	}

	return previous[n]
}

// min3 returns the minimum of three int values.
func min3(a, b, c int) int {
	if a < b {
		if a < c {
			return a
		}
		return c
	}
	if b < c {
		return b
	}
	return c
}
