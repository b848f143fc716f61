package numcast

import "golang.org/x/exp/constraints"

// Number is the set of types this package converts between: every integer
// and floating-point type, including named types whose underlying type is
// one of them.
type Number interface {
	constraints.Integer | constraints.Float
}

// To converts v to the target numeric type T.
// Float-to-integer conversion truncates toward zero, never rounds.
// The target type is the first type parameter so call sites read as
// numcast.To[int32](u) with F inferred from the argument.
// Complexity: O(1).
func To[T Number, F Number](v F) T {
	return T(v)
}

// Abs returns the absolute value of x.
// For unsigned types x is returned unchanged; for the most negative value
// of a signed integer type the result wraps, as Go negation does.
// Complexity: O(1).
func Abs[T Number](x T) T {
	if x < 0 {
		return -x
	}

	return x
}

// InRange reports whether v lies within [lo, hi], both bounds inclusive.
// Complexity: O(1).
func InRange[T Number](lo, v, hi T) bool {
	return lo <= v && v <= hi
}
