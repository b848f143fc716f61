// SPDX-License-Identifier: MIT

// Package mdslice - N-dimensional view over a flat buffer & safe accessors.
//
// Purpose:
//   - Interpret a caller-owned []T as an N-dimensional array with the explicit
//     index formula flat = Σ pos[k]·stride[k], stride[0]=1,
//     stride[k]=stride[k-1]·lengths[k-1] (first coordinate fastest).
//   - Guarantee safety at the public surface: checked At/Set return errors
//     instead of panicking; the unchecked policy is opt-in and documented.
//   - Keep the view non-owning: no copy at construction, writes go through to
//     the base buffer, overlapping views alias each other.
//   - Support copy-based independence via Clone.
//
// AI-Hints:
//   - Use FlatIndex/Coordinate when handing offsets to code that walks the
//     flat buffer directly; both stay validated in every mode.
//   - Prefer the default checked policy; switch a view to WithUncheckedBounds
//     only around loops whose coordinates are proven in-range upstream.
//
// Complexity quicksheet:
//   - New: O(rank) validation; At/Set/FlatIndex/Coordinate: O(rank);
//     Fill/Clone/String: O(size).

package mdslice

import (
	"fmt"
	"math"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt    = "At"         // method tag used in error wrappers
	ctxSet   = "Set"        // method tag used in error wrappers
	ctxFlat  = "FlatIndex"  // method tag used in error wrappers
	ctxCoord = "Coordinate" // method tag used in error wrappers
)

// ---------- Formatting literals ----------

const (
	_fmtOpen  = "["
	_fmtClose = "]"
	_fmtSep   = ", "
)

// viewErrorf wraps an error with a uniform MdSlice context and the callsite
// coordinate list.
// MAIN DESCRIPTION:
//   - Attach method context and coordinates to a sentinel error for diagnostics.
//
// Implementation:
//   - Stage 1: format "MdSlice.<method>([p0 p1 ...]): %w".
//   - Stage 2: return wrapped error.
//
// Behavior highlights:
//   - Stable, human-friendly messages; preserves sentinel via %w.
//
// Complexity:
//   - Time O(rank), Space O(rank) for formatting.
func viewErrorf(method string, pos []int, err error) error {
	return fmt.Errorf("MdSlice.%s(%v): %w", method, pos, err)
}

// MdSlice is a fixed-rank view over a flat buffer.
//   - data aliases the caller's storage window (never copied by New).
//   - lens holds per-axis lengths (all > 0); rank == len(lens).
//   - strides holds per-axis step sizes with strides[0] == 1.
//   - size is the element count Π lens[k] (== len(data)).
//   - checked selects the bounds policy for At/Set (policy default from
//     options.go).
type MdSlice[T any] struct {
	data    []T   // shared flat storage (len == size)
	lens    []int // axis lengths, private copy of the constructor argument
	strides []int // strides[0]=1; strides[k]=strides[k-1]*lens[k-1]
	size    int   // total element count
	checked bool  // bounds policy for At/Set
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*MdSlice[int])(nil)

// New creates an N-dimensional view over buf starting at offset.
// MAIN DESCRIPTION:
//   - Public constructor with strict shape validation and no copying.
//
// Implementation:
//   - Stage 1: reject an empty shape, then a negative offset.
//   - Stage 2: validate every axis length > 0 and guard the size product
//     against int overflow.
//   - Stage 3: verify the buffer holds size elements at offset.
//   - Stage 4: derive strides and capture the storage window.
//
// Behavior highlights:
//   - No panics on user errors; returns sentinel errors.
//   - The view ALIASES buf[offset : offset+size]: it never copies, writes
//     through Set are visible to the caller and to any overlapping view,
//     and the caller's own writes are visible through At. The window is
//     capacity-limited, so appends elsewhere cannot grow into it.
//   - lengths is copied; the caller may reuse or mutate it afterwards.
//
// Inputs:
//   - buf: caller-owned flat storage.
//   - offset: first element of the view inside buf (>= 0).
//   - lengths: per-axis extents, all > 0, at least one axis.
//   - opts: bounds policy, see options.go.
//
// Returns:
//   - *MdSlice[T]: the configured view.
//
// Errors:
//   - ErrBadShape (no axes, axis <= 0, or size overflows int).
//   - ErrBadOffset (offset < 0).
//   - ErrShortBuffer (buf cannot hold the shape at offset).
//
// Complexity:
//   - Time O(rank), Space O(rank).
//
// AI-Hints:
//   - For an independent lifetime, call Clone on the result.
func New[T any](buf []T, offset int, lengths []int, opts ...Option) (*MdSlice[T], error) {
	if len(lengths) == 0 {
		return nil, fmt.Errorf("MdSlice.New: empty shape: %w", ErrBadShape)
	}
	if offset < 0 {
		return nil, fmt.Errorf("MdSlice.New: offset %d: %w", offset, ErrBadOffset)
	}

	// Validate axes and accumulate the element count with an overflow guard.
	size := 1
	var axis, length int
	for axis = 0; axis < len(lengths); axis++ {
		length = lengths[axis]
		if length <= 0 {
			return nil, fmt.Errorf("MdSlice.New: axis %d length %d: %w", axis, length, ErrBadShape)
		}
		if size > math.MaxInt/length {
			return nil, fmt.Errorf("MdSlice.New: shape overflows int: %w", ErrBadShape)
		}
		size *= length
	}

	// The window [offset, offset+size) must fit inside buf.
	if offset > len(buf) || size > len(buf)-offset {
		return nil, fmt.Errorf("MdSlice.New: need %d elements at offset %d, have %d: %w",
			size, offset, len(buf), ErrShortBuffer)
	}

	// Private copies keep the view immune to caller-side mutation of lengths.
	lens := make([]int, len(lengths))
	copy(lens, lengths)

	// strides[0]=1; each later axis steps over the full extent of the earlier ones.
	strides := make([]int, len(lens))
	strides[0] = 1
	for axis = 1; axis < len(lens); axis++ {
		strides[axis] = strides[axis-1] * lens[axis-1]
	}

	o := gatherOptions(opts...)

	return &MdSlice[T]{
		data:    buf[offset : offset+size : offset+size], // alias, capacity-limited
		lens:    lens,
		strides: strides,
		size:    size,
		checked: o.checkedBounds,
	}, nil
}

// Rank returns the number of axes. No side effects.
// Complexity: O(1).
func (s *MdSlice[T]) Rank() int { return len(s.lens) }

// Size returns the total element count Π lengths[k]. No side effects.
// Complexity: O(1).
func (s *MdSlice[T]) Size() int { return s.size }

// Checked reports whether At/Set validate coordinates on this view.
// Complexity: O(1).
func (s *MdSlice[T]) Checked() bool { return s.checked }

// Lengths returns a copy of the per-axis extents.
// Complexity: O(rank).
func (s *MdSlice[T]) Lengths() []int {
	out := make([]int, len(s.lens))
	copy(out, s.lens)

	return out
}

// flatIndex resolves pos into a flat offset under the view's bounds policy.
// MAIN DESCRIPTION:
//   - Shared resolver behind At/Set; rank is checked in every mode, the
//     per-axis test only when the checked policy is active.
//
// Implementation:
//   - Stage 1: reject len(pos) != rank (both modes).
//   - Stage 2 (checked): test 0 <= pos[k] < lens[k] per axis and accumulate
//     pos[k]*strides[k]; violations surface as ErrOutOfRange.
//   - Stage 2 (unchecked): accumulate without the per-axis test.
//
// Behavior highlights:
//   - The unchecked branch can return an offset outside [0, size); the
//     caller's slice access then aliases another element or panics. That
//     trade is the documented contract of WithUncheckedBounds.
//
// Returns:
//   - (offset, nil) on success; (0, wrapped sentinel) otherwise.
//
// Complexity:
//   - Time O(rank), Space O(1).
func (s *MdSlice[T]) flatIndex(method string, pos []int) (int, error) {
	if len(pos) != len(s.lens) {
		return 0, viewErrorf(method, pos, ErrRankMismatch)
	}

	var k, flat int
	if s.checked {
		for k = 0; k < len(pos); k++ {
			if pos[k] < 0 || pos[k] >= s.lens[k] {
				return 0, viewErrorf(method, pos, ErrOutOfRange)
			}
			flat += pos[k] * s.strides[k]
		}

		return flat, nil
	}

	// Unchecked: the guard is elided on purpose.
	for k = 0; k < len(pos); k++ {
		flat += pos[k] * s.strides[k]
	}

	return flat, nil
}

// At returns the element at pos.
// MAIN DESCRIPTION:
//   - Safe element read at an N-dimensional coordinate.
//
// Implementation:
//   - Stage 1: resolve the flat offset via flatIndex (policy-aware).
//   - Stage 2: load from the flat buffer.
//
// Behavior highlights:
//   - Checked views never panic; unchecked views follow the documented
//     WithUncheckedBounds contract.
//
// Returns:
//   - (value, nil) on success; (zero T, error) otherwise.
//
// Errors:
//   - ErrRankMismatch (always), ErrOutOfRange (checked mode).
//
// Complexity:
//   - Time O(rank), Space O(1).
func (s *MdSlice[T]) At(pos ...int) (T, error) {
	flat, err := s.flatIndex(ctxAt, pos)
	if err != nil {
		var zero T
		return zero, err
	}

	return s.data[flat], nil
}

// Set stores v at pos (value first, then the coordinates).
// MAIN DESCRIPTION:
//   - Safe element write at an N-dimensional coordinate.
//
// Implementation:
//   - Stage 1: resolve the flat offset via flatIndex (policy-aware).
//   - Stage 2: write through into the shared buffer.
//
// Behavior highlights:
//   - The write lands in the caller's storage; any overlapping view
//     observes it immediately.
//
// Returns:
//   - nil on success; wrapped sentinel otherwise.
//
// Errors:
//   - ErrRankMismatch (always), ErrOutOfRange (checked mode).
//
// Complexity:
//   - Time O(rank), Space O(1).
func (s *MdSlice[T]) Set(v T, pos ...int) error {
	flat, err := s.flatIndex(ctxSet, pos)
	if err != nil {
		return err
	}
	s.data[flat] = v // write through

	return nil
}

// FlatIndex converts pos into its flat offset, fully validated in every mode.
// MAIN DESCRIPTION:
//   - Coordinate-to-offset mapping for interop with flat-buffer code.
//
// Implementation:
//   - Stage 1: reject len(pos) != rank.
//   - Stage 2: test every coordinate and accumulate pos[k]*strides[k].
//
// Behavior highlights:
//   - Ignores the bounds policy: a diagnostic/interop surface must not
//     hand out offsets it has not proven in-range.
//
// Returns:
//   - (offset, nil) with 0 <= offset < Size(); (0, wrapped sentinel) otherwise.
//
// Errors:
//   - ErrRankMismatch, ErrOutOfRange.
//
// Complexity:
//   - Time O(rank), Space O(1).
func (s *MdSlice[T]) FlatIndex(pos ...int) (int, error) {
	if len(pos) != len(s.lens) {
		return 0, viewErrorf(ctxFlat, pos, ErrRankMismatch)
	}

	var k, flat int
	for k = 0; k < len(pos); k++ {
		if pos[k] < 0 || pos[k] >= s.lens[k] {
			return 0, viewErrorf(ctxFlat, pos, ErrOutOfRange)
		}
		flat += pos[k] * s.strides[k]
	}

	return flat, nil
}

// Coordinate converts a flat offset back into per-axis coordinates.
// MAIN DESCRIPTION:
//   - Offset-to-coordinate mapping, the inverse of FlatIndex.
//
// Implementation:
//   - Stage 1: reject flat outside [0, size).
//   - Stage 2: peel axes from slowest to fastest: pos[k] = rem / strides[k],
//     rem %= strides[k].
//
// Behavior highlights:
//   - Round-trip law: Coordinate(FlatIndex(p)) == p for every valid p.
//
// Returns:
//   - ([]int of length Rank(), nil); (nil, wrapped sentinel) otherwise.
//
// Errors:
//   - ErrOutOfRange.
//
// Complexity:
//   - Time O(rank), Space O(rank).
func (s *MdSlice[T]) Coordinate(flat int) ([]int, error) {
	if flat < 0 || flat >= s.size {
		return nil, fmt.Errorf("MdSlice.%s(%d): %w", ctxCoord, flat, ErrOutOfRange)
	}

	pos := make([]int, len(s.lens))
	rem := flat
	var k int
	for k = len(s.lens) - 1; k >= 0; k-- { // slowest axis first
		pos[k] = rem / s.strides[k]
		rem %= s.strides[k]
	}

	return pos, nil
}

// Fill stores v into every element of the view.
// MAIN DESCRIPTION:
//   - Bulk write through the shared storage.
//
// Behavior highlights:
//   - Visible to the caller and to every overlapping view.
//
// Complexity:
//   - Time O(size), Space O(1).
func (s *MdSlice[T]) Fill(v T) {
	var i int
	for i = 0; i < len(s.data); i++ {
		s.data[i] = v
	}
}

// Clone returns a deep copy (new buffer, same shape and policy).
// MAIN DESCRIPTION:
//   - Produce an independent view with identical shape/data/policy.
//
// Implementation:
//   - Stage 1: allocate a fresh buffer of len size and copy the data.
//   - Stage 2: copy shape metadata and the policy flag.
//
// Behavior highlights:
//   - Independence: mutations on the clone do not affect the original, and
//     vice versa; this is the escape hatch from the aliasing contract.
//
// Complexity:
//   - Time O(size), Space O(size).
func (s *MdSlice[T]) Clone() *MdSlice[T] {
	cp := make([]T, len(s.data)) // allocate same length
	copy(cp, s.data)             // deep copy elements

	lens := make([]int, len(s.lens))
	copy(lens, s.lens)
	strides := make([]int, len(s.strides))
	copy(strides, s.strides)

	return &MdSlice[T]{
		data:    cp,
		lens:    lens,
		strides: strides,
		size:    s.size,
		checked: s.checked, // preserve bounds policy
	}
}

// String renders the view as nested bracketed lists for diagnostics.
// MAIN DESCRIPTION:
//   - Human-readable dump; grouping follows memory order, innermost run
//     along axis 0.
//
// Implementation:
//   - Stage 1: recurse from the slowest axis down to axis 0.
//   - Stage 2: write values with %v into a strings.Builder.
//
// Behavior highlights:
//   - Intended for debugging and logs; not for hot paths.
//
// Complexity:
//   - Time O(size), Space O(size) for formatting.
func (s *MdSlice[T]) String() string {
	var b strings.Builder
	s.render(&b, len(s.lens)-1, 0)

	return b.String()
}

// render writes the sub-block at base spanned by axes [0..axis] into b.
func (s *MdSlice[T]) render(b *strings.Builder, axis, base int) {
	b.WriteString(_fmtOpen)
	var k int
	if axis == 0 {
		for k = 0; k < s.lens[0]; k++ { // contiguous innermost run
			if k > 0 {
				b.WriteString(_fmtSep)
			}
			fmt.Fprintf(b, "%v", s.data[base+k])
		}
	} else {
		for k = 0; k < s.lens[axis]; k++ {
			if k > 0 {
				b.WriteString(_fmtSep)
			}
			s.render(b, axis-1, base+k*s.strides[axis])
		}
	}
	b.WriteString(_fmtClose)
}
