// SPDX-License-Identifier: MIT
// Package mdslice: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the mdslice
// package. All operations MUST return these sentinels and tests MUST check them
// via errors.Is. No operation panics on user-triggered error conditions while
// bounds checking is enabled; unchecked mode is the single documented exception.

package mdslice

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "mdslice: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary — callers will still use errors.Is to match.
//
// ERROR PRIORITY (documented, enforced in tests):
// shape -> offset -> buffer length -> rank mismatch -> coordinate range.

var (
	// ErrBadShape is returned when the requested shape is invalid: no axes,
	// an axis length <= 0, or a total size that overflows int.
	// New must validate the shape before touching the buffer.
	ErrBadShape = errors.New("mdslice: invalid shape")

	// ErrBadOffset indicates a negative starting offset into the base buffer.
	ErrBadOffset = errors.New("mdslice: negative offset")

	// ErrShortBuffer indicates the base buffer cannot hold the requested
	// shape at the requested offset (offset + size exceeds len(buf)).
	ErrShortBuffer = errors.New("mdslice: buffer too short for shape")

	// ErrRankMismatch indicates a coordinate list whose length differs from
	// the view's rank. This is checked in every mode, including unchecked.
	ErrRankMismatch = errors.New("mdslice: coordinate count does not match rank")

	// ErrOutOfRange indicates a coordinate outside [0, length) on its axis,
	// or a flat offset outside [0, size). Checked accessors MUST return
	// this, not panic.
	ErrOutOfRange = errors.New("mdslice: coordinate out of range")
)
