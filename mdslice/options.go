// SPDX-License-Identifier: MIT

// Package mdslice: functional configuration for the bounds policy.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors,
//   - gatherOptions helper (internal) that resolves defaults.
//
// Design goals:
//   - Deterministic behavior: no global state, the policy is per view.
//   - No dead switches: the flag changes At/Set behavior and is covered by tests.
//   - Reusability: Options fields are unexported; public APIs consume ...Option.

package mdslice

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultCheckedBounds toggles coordinate validation in At/Set.
	// true ⇒ every coordinate is tested against its axis length and
	// violations surface as ErrOutOfRange.
	DefaultCheckedBounds = true
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported to prevent external mutation; New accepts `...Option`
// and internally resolves them via gatherOptions.
type Options struct {
	checkedBounds bool // DefaultCheckedBounds
}

// ---------- Constructors (WithX) ----------

// WithCheckedBounds enables per-coordinate validation in At/Set (default).
// Implementation:
//   - Stage 1: set checkedBounds=true.
//
// Behavior highlights:
//   - Out-of-range coordinates surface as ErrOutOfRange; no panics.
//
// Returns:
//   - Option: functional setter.
//
// Complexity:
//   - Time O(1), Space O(1).
func WithCheckedBounds() Option {
	return func(o *Options) { o.checkedBounds = true }
}

// WithUncheckedBounds elides the per-axis guard in At/Set (use with care).
// Implementation:
//   - Stage 1: set checkedBounds=false.
//
// Behavior highlights:
//   - At/Set skip the per-coordinate test; only the rank check remains.
//   - A coordinate outside its axis is NOT reported: the stride formula
//     still produces a flat offset, so the access either aliases a
//     different element of the view (offset lands inside the buffer) or
//     panics at the slice access (offset lands outside it).
//   - FlatIndex and Coordinate stay fully validated in every mode.
//
// Returns:
//   - Option: functional setter.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// Notes:
//   - The flag is fixed at construction and preserved by Clone.
//
// AI-Hints:
//   - Enable only in hot loops whose coordinates are proven in-range
//     upstream (e.g., produced by iterating 0..Lengths()[k]).
func WithUncheckedBounds() Option {
	return func(o *Options) { o.checkedBounds = false }
}

// --------------------------- Option Resolution ---------------------------

// gatherOptions applies user-provided Option setters on top of defaults.
// Implementation:
//   - Stage 1: start from the Default* constants.
//   - Stage 2: apply setters in order (last-writer-wins).
//
// Returns:
//   - Options: fully resolved configuration.
//
// Complexity:
//   - Time O(k), Space O(1) for k=len(user).
func gatherOptions(user ...Option) Options {
	o := Options{
		checkedBounds: DefaultCheckedBounds,
	}
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}
