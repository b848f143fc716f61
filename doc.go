// Package sundry is a small collection of generic helper routines for the
// boring parts of data plumbing: flat-buffer views, sequence distances,
// numeric casts and quick one-line diagnostics.
//
// 🚀 What is sundry?
//
//	A focused, almost-dependency-free library that brings together:
//		• Multi-dimensional views: address a flat []T by coordinates, with
//		  a checked or unchecked bounds policy
//		• Edit distance: generic Levenshtein with rolling-row or
//		  full-table storage and edit-script recovery
//		• Numeric casts: constraint-checked conversions that fail to
//		  compile for non-numeric pairings
//		• Debug printing: one-line diagnostics onto stderr, string-like
//		  values bare, everything else spew-rendered
//
// ✨ Why choose sundry?
//
//   - Beginner-friendly – a handful of entry points with obvious names
//   - Rock-solid guarantees – sentinel errors, no panics on user input
//     at the checked surfaces, invariants spelled out in the docs
//   - Pure Go – no cgo, generics over reflection wherever possible
//   - Test-backed – every documented property has a test next to it
//
// Under the hood, everything is organized under four subpackages:
//
//	mdslice/  — N-dimensional views over caller-owned flat buffers
//	editdist/ — Levenshtein distance, similarity ratio & edit scripts
//	numcast/  — numeric conversion helpers over a shared Number constraint
//	dump/     — ", "-joined one-line debug printing onto stderr
//
// Quick example:
//
//	buf := make([]int, 3*7*9)
//	grid, _ := mdslice.New(buf, 0, []int{3, 7, 9})
//	_ = grid.Set(42, 2, 6, 8)
//
//	dist, _, _ := editdist.Strings("kitten", "sitting", nil)
//	dump.Println("distance", numcast.To[int64](dist))
//
// Dive into the per-package doc.go files for invariants, error contracts
// and runnable examples.
//
//	go get github.com/kivetran/sundry
package sundry
