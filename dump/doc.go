// Package dump writes ad-hoc diagnostic lines for debugging sessions.
//
// What:
//
//   - Println renders any mix of values onto one line and writes it to
//     os.Stderr, the unbuffered diagnostic stream.
//   - String-like values (string, []byte, error, fmt.Stringer) appear as
//     bare text; everything else is rendered through go-spew so nested
//     structs, maps and pointers stay legible.
//   - Values are joined with ", " and the line ends with a single newline.
//
// Why:
//
//   - Sprinkling fmt.Println+%#v while hunting a bug produces noisy,
//     inconsistent output; one helper keeps throwaway diagnostics uniform
//     and easy to grep out again.
//
// Failure policy:
//
//   - Write failures on the diagnostic stream are silently discarded.
//     This is deliberate and is the only place in the module where an
//     error is swallowed: a debugging aid must never alter control flow.
//
// Usage:
//
//	dump.Println("state before merge", view, "rows:", n)
package dump
