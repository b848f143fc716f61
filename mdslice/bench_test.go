package mdslice_test

import (
	"testing"

	"github.com/kivetran/sundry/mdslice"
)

// benchView builds a 16x16x16 view filled through the flat buffer, so the
// benchmarks exercise only the accessor under test.
func benchView(b *testing.B, opts ...mdslice.Option) *mdslice.MdSlice[int] {
	buf := make([]int, 16*16*16)
	for i := 0; i < len(buf); i++ {
		buf[i] = i
	}
	v, err := mdslice.New(buf, 0, []int{16, 16, 16}, opts...)
	if err != nil {
		b.Fatalf("New failed: %v", err)
	}

	return v
}

// BenchmarkAt_Checked measures reads with the default per-coordinate guard.
func BenchmarkAt_Checked(b *testing.B) {
	v := benchView(b)

	b.ResetTimer() // ignore setup time
	var sink int
	for i := 0; i < b.N; i++ {
		x, err := v.At(i&15, (i>>4)&15, (i>>8)&15)
		if err != nil {
			b.Fatalf("At failed: %v", err)
		}
		sink += x
	}
	_ = sink
}

// BenchmarkAt_Unchecked measures reads with the guard elided.
func BenchmarkAt_Unchecked(b *testing.B) {
	v := benchView(b, mdslice.WithUncheckedBounds())

	b.ResetTimer()
	var sink int
	for i := 0; i < b.N; i++ {
		x, err := v.At(i&15, (i>>4)&15, (i>>8)&15)
		if err != nil {
			b.Fatalf("At failed: %v", err)
		}
		sink += x
	}
	_ = sink
}

// BenchmarkSet_Checked measures writes with the default guard.
func BenchmarkSet_Checked(b *testing.B) {
	v := benchView(b)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := v.Set(i, i&15, (i>>4)&15, (i>>8)&15); err != nil {
			b.Fatalf("Set failed: %v", err)
		}
	}
}

// BenchmarkSet_Unchecked measures writes with the guard elided.
func BenchmarkSet_Unchecked(b *testing.B) {
	v := benchView(b, mdslice.WithUncheckedBounds())

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := v.Set(i, i&15, (i>>4)&15, (i>>8)&15); err != nil {
			b.Fatalf("Set failed: %v", err)
		}
	}
}

// BenchmarkFlatIndex measures the always-validated coordinate mapping.
func BenchmarkFlatIndex(b *testing.B) {
	v := benchView(b)

	b.ResetTimer()
	var sink int
	for i := 0; i < b.N; i++ {
		off, err := v.FlatIndex(i&15, (i>>4)&15, (i>>8)&15)
		if err != nil {
			b.Fatalf("FlatIndex failed: %v", err)
		}
		sink += off
	}
	_ = sink
}
