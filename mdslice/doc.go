// Package mdslice provides a multi-dimensional view over a flat,
// caller-owned slice, with a fixed stride layout and a selectable
// bounds-checking policy.
//
// 🚀 What is MdSlice?
//
//	MdSlice[T] interprets a contiguous []T as an N-dimensional array
//	without copying it.  The dimensionality is fixed at construction
//	and every access uses the same linear formula:
//	  • stride[0] = 1
//	  • stride[k] = stride[k-1] · lengths[k-1]
//	  • flat      = Σ pos[k] · stride[k]
//	The first coordinate varies fastest in memory.
//
// ✨ Key features:
//   - non-owning: the view aliases the caller's buffer; writes through
//     the view land in the original storage, and overlapping views
//     observe each other's writes. The buffer's owner must outlive the
//     view, and concurrent mutation of the buffer needs external
//     synchronization; the view adds none of its own
//   - checked mode (default): At/Set validate every coordinate and
//     return ErrOutOfRange instead of panicking
//   - unchecked mode (WithUncheckedBounds): the per-axis guard is
//     elided for hot loops; see options.go for the exact contract
//   - FlatIndex / Coordinate convert between positions and flat
//     offsets for interop with code that walks the buffer directly
//
// ⚙️ Usage:
//
//	import "github.com/kivetran/sundry/mdslice"
//
//	buf := make([]int, 3*7*9)
//	v, err := mdslice.New(buf, 0, []int{3, 7, 9})
//	if err != nil {
//	  // handle ErrBadShape / ErrShortBuffer / ...
//	}
//
//	_ = v.Set(42, 2, 6, 8)   // value first, then the coordinates
//	x, _ := v.At(2, 6, 8)    // x == 42
//
// Performance:
//
//   - At/Set/FlatIndex: O(rank)
//   - New/Clone/Fill/String: O(size)
//
// See example_test.go for runnable scenarios.
package mdslice
