// Package numcast converts values between Go's numeric types with the
// source/target pairing fixed at compile time.
//
// What:
//
//   - To[T, F] converts any integer or floating-point value to any other
//     integer or floating-point type in a single expression.
//   - Number is the type set accepted by every function here; any pairing
//     outside it fails to compile rather than at run time.
//   - Abs and InRange cover the small arithmetic checks that tend to
//     accumulate next to conversions.
//
// Why:
//
//   - Index arithmetic: loop counters, lengths and offsets move between
//     int, int64 and unsigned widths constantly; To names the intent.
//   - Measurement plumbing: sensor or price feeds arrive in one width and
//     are consumed in another.
//
// Semantics:
//
//   - Integer-to-integer and integer-to-float follow Go conversion rules.
//   - Float-to-integer truncates toward zero: To[int32](float32(10.6)) == 10
//     and To[int32](float32(-10.6)) == -10. No rounding ever occurs.
//   - Out-of-range conversions keep Go's conversion behavior; no checked
//     or saturating variants are provided.
//
// Errors:
//
//   - none. Every misuse this package guards against is a compile error.
package numcast
