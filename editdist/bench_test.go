package editdist_test

import (
	"testing"

	"github.com/kivetran/sundry/editdist"
)

// benchmarkDistance is a helper that runs Distance on synthetic rune
// sequences of lengths m and n using opts. It resets the timer before
// entering the loop and fails on unexpected errors.
func benchmarkDistance(b *testing.B, m, n int, opts editdist.Options) {
	// Two overlapping 7-letter alphabets give a realistic mix of matches
	// and edits.
	s := make([]rune, m)
	t := make([]rune, n)
	for i := 0; i < m; i++ {
		s[i] = rune('a' + i%7)
	}
	for j := 0; j < n; j++ {
		t[j] = rune('a' + (j*3)%7)
	}

	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		_, _, err := editdist.Distance(s, t, &opts)
		if err != nil {
			b.Fatalf("Distance failed: %v", err)
		}
	}
}

// BenchmarkDistance_TwoRowsSmall benchmarks rolling mode on 100x100 inputs.
func BenchmarkDistance_TwoRowsSmall(b *testing.B) {
	benchmarkDistance(b, 100, 100, editdist.DefaultOptions())
}

// BenchmarkDistance_TwoRowsMedium benchmarks rolling mode on 500x500 inputs.
func BenchmarkDistance_TwoRowsMedium(b *testing.B) {
	benchmarkDistance(b, 500, 500, editdist.DefaultOptions())
}

// BenchmarkDistance_FullMatrixSmall benchmarks table mode on 100x100 inputs.
func BenchmarkDistance_FullMatrixSmall(b *testing.B) {
	opts := editdist.DefaultOptions()
	opts.MemoryMode = editdist.FullMatrix
	benchmarkDistance(b, 100, 100, opts)
}

// BenchmarkDistance_FullMatrixMedium benchmarks table mode on 500x500 inputs.
func BenchmarkDistance_FullMatrixMedium(b *testing.B) {
	opts := editdist.DefaultOptions()
	opts.MemoryMode = editdist.FullMatrix
	benchmarkDistance(b, 500, 500, opts)
}

// BenchmarkDistance_BudgetCutoff benchmarks the early exit on 500x500
// inputs whose distance far exceeds a small budget.
func BenchmarkDistance_BudgetCutoff(b *testing.B) {
	opts := editdist.DefaultOptions()
	opts.MaxDistance = 5
	benchmarkDistance(b, 500, 500, opts)
}

// BenchmarkDistance_ScriptMedium benchmarks table mode plus backtracking
// on 200x200 inputs.
func BenchmarkDistance_ScriptMedium(b *testing.B) {
	opts := editdist.DefaultOptions()
	opts.MemoryMode = editdist.FullMatrix
	opts.ReturnScript = true
	benchmarkDistance(b, 200, 200, opts)
}
