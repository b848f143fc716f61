// Package editdist computes the Levenshtein edit distance between two
// sequences of comparable elements, with optional edit-script recovery
// and memory optimizations.
//
// What:
//
//   - Distance compares two []E under unit costs for insert, delete and
//     substitute; equal elements cost nothing.
//   - Strings compares two strings by runes, so multi-byte characters
//     count as single edits.
//   - Ratio condenses a string comparison into a [0,1] similarity.
//   - An edit script (match/substitute/insert/delete steps) can be
//     recovered in FullMatrix mode.
//
// Why:
//
//   - Fuzzy lookup: rank candidate strings by closeness to a query.
//   - Spell checking: accept corrections within a small distance budget.
//   - Record linkage and deduplication over arbitrary comparable slices.
//
// Complexity:
//
//   - Time O(m·n) in both modes.
//   - Memory O(min(m,n)) in TwoRows mode, O(m·n) in FullMatrix mode.
//   - MaxDistance ≥ 0 lets TwoRows mode stop as soon as the budget is
//     provably exceeded.
//
// Options:
//
//   - Options.MemoryMode: TwoRows (default) or FullMatrix.
//   - Options.ReturnScript: also backtrack the edit script; requires
//     MemoryMode=FullMatrix.
//   - Options.MaxDistance: non-negative budget; a larger true distance is
//     reported as MaxDistance+1. Unlimited (-1) disables the budget.
//
// Errors:
//
//   - ErrScriptNeedsMatrix: ReturnScript=true with MemoryMode=TwoRows.
//   - ErrBadOption: unknown MemoryMode or MaxDistance < -1.
//   - Empty inputs are NOT errors: the distance to an empty sequence is
//     the length of the other one.
//
// Allocation is the only other failure mode, and it follows the usual
// runtime semantics: scratch rows and the table are function-scoped and
// become collectable on every return path. Calls share no state, so
// concurrent calls from multiple goroutines are safe.
//
// See examples in example_test.go for runnable scenarios.
package editdist
