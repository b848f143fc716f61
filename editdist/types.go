package editdist

import "fmt"

// MemoryMode controls how Distance stores its DP rows.
//
//   - TwoRows — keep only two rolling rows (previous and current).
//     Memory: O(min(m,n)). Cannot recover the edit script.
//
//   - FullMatrix — keep the entire (m+1)×(n+1) table in memory.
//     Allows distance + full backtrack for the edit script.
//     Memory: O(m·n).
type MemoryMode int

const (
	// TwoRows mode: two rolling rows, no script recovery, O(min(m,n)) memory.
	TwoRows MemoryMode = iota

	// FullMatrix mode: full table, supports script recovery, O(m·n) memory.
	FullMatrix
)

// Unlimited disables the MaxDistance budget.
const Unlimited = -1

// Options configures Distance.
//
// Fields:
//   - MemoryMode  — choose TwoRows or FullMatrix storage.
//   - ReturnScript — if true, Distance backtracks and returns the edit
//     script. Requires MemoryMode=FullMatrix.
//   - MaxDistance — non-negative distance budget. When the true distance
//     exceeds it, Distance reports MaxDistance+1 (and no script).
//     Unlimited (-1) disables the budget.
//
// Construct via DefaultOptions and override fields as needed:
//
//	opts := editdist.DefaultOptions()
//	opts.ReturnScript = true
//	opts.MemoryMode = editdist.FullMatrix
//
//	dist, script, err := editdist.Strings("book", "back", &opts)
//	if err != nil {
//	  // handle ErrScriptNeedsMatrix or ErrBadOption
//	}
type Options struct {
	MemoryMode   MemoryMode
	ReturnScript bool
	MaxDistance  int
}

// DefaultOptions returns the documented defaults: TwoRows storage, no
// script, no distance budget.
func DefaultOptions() Options {
	return Options{
		MemoryMode:   TwoRows,
		ReturnScript: false,
		MaxDistance:  Unlimited,
	}
}

// OpKind labels a single edit-script step.
type OpKind int

const (
	// OpMatch keeps an element that is equal in both sequences (cost 0).
	OpMatch OpKind = iota

	// OpSubstitute replaces s[I] with t[J] (cost 1).
	OpSubstitute

	// OpInsert inserts t[J] (cost 1).
	OpInsert

	// OpDelete removes s[I] (cost 1).
	OpDelete
)

// String returns the lower-case step name for diagnostics.
func (k OpKind) String() string {
	switch k {
	case OpMatch:
		return "match"
	case OpSubstitute:
		return "substitute"
	case OpInsert:
		return "insert"
	case OpDelete:
		return "delete"
	default:
		return fmt.Sprintf("OpKind(%d)", int(k))
	}
}

// Op is one edit-script step. I indexes the first sequence and J the
// second; for OpInsert, I is the position in the first sequence where the
// element is inserted, and for OpDelete, J is the position reached in the
// second sequence when the element is removed.
type Op struct {
	Kind OpKind
	I, J int
}

// String renders the step as "kind(I,J)" for diagnostics.
func (op Op) String() string {
	return fmt.Sprintf("%s(%d,%d)", op.Kind, op.I, op.J)
}
