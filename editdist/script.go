package editdist

// FullMatrix support: the complete DP table and the edit-script backtrack.
//
// The table is stored flat in row-major order, dp[i*(n+1)+j], so the whole
// computation touches one allocation. Backtracking walks from (m,n) to
// (0,0) preferring the step that explains the cell's value in a fixed
// order: diagonal (match/substitute), then delete, then insert. The order
// makes the recovered script deterministic when several scripts are
// equally cheap.

// distanceTable fills the full (m+1)×(n+1) Levenshtein table for s and t.
// dp[i*(n+1)+j] holds the distance between s[:i] and t[:j]; the last cell
// is the final distance.
func distanceTable[E comparable](s, t []E) []int {
	m, n := len(s), len(t)
	cols := n + 1
	dp := make([]int, (m+1)*cols)

	var i, j, base, cost int
	for j = 0; j <= n; j++ {
		dp[j] = j // first row: build t[:j] from nothing
	}
	for i = 1; i <= m; i++ {
		base = i * cols
		dp[base] = i // first column: erase s[:i]
		for j = 1; j <= n; j++ {
			cost = 1
			if s[i-1] == t[j-1] {
				cost = 0
			}
			dp[base+j] = min3(
				dp[base-cols+j]+1,      // deletion
				dp[base+j-1]+1,         // insertion
				dp[base-cols+j-1]+cost, // keep or substitute
			)
		}
	}

	return dp
}

// backtrack recovers the edit script from a filled table. The result is
// ordered from the start of the sequences to the end and its non-match
// steps count exactly the distance.
func backtrack[E comparable](dp []int, s, t []E) []Op {
	m, n := len(s), len(t)
	cols := n + 1

	script := make([]Op, 0, m+n)
	i, j := m, n
	for i > 0 || j > 0 {
		switch {
		case i > 0 && j > 0 && s[i-1] == t[j-1] && dp[(i-1)*cols+j-1] == dp[i*cols+j]:
			script = append(script, Op{Kind: OpMatch, I: i - 1, J: j - 1})
			i--
			j--
		case i > 0 && j > 0 && dp[(i-1)*cols+j-1]+1 == dp[i*cols+j]:
			script = append(script, Op{Kind: OpSubstitute, I: i - 1, J: j - 1})
			i--
			j--
		case i > 0 && dp[(i-1)*cols+j]+1 == dp[i*cols+j]:
			script = append(script, Op{Kind: OpDelete, I: i - 1, J: j})
			i--
		default: // only reachable with j > 0: the first column always admits a delete
			script = append(script, Op{Kind: OpInsert, I: i, J: j - 1})
			j--
		}
	}

	// reverse the script in-place: it was collected end-to-start
	for l, r := 0, len(script)-1; l < r; l, r = l+1, r-1 {
		script[l], script[r] = script[r], script[l]
	}

	return script
}
