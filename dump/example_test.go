package dump_test

import (
	"errors"
	"os"

	"github.com/kivetran/sundry/dump"
)

// ExampleFprintln shows the one-line join: string-like values render as
// bare text, separated by ", ", with a single trailing newline. Println
// does the same onto stderr.
func ExampleFprintln() {
	// Scenario: a quick trace of mixed string-like values.
	dump.Fprintln(os.Stdout, "loading", []byte("chunk-7"))
	dump.Fprintln(os.Stdout, "failed", errors.New("connection reset"))

	// Output:
	// loading, chunk-7
	// failed, connection reset
}

// ExampleSprint shows building the joined line without writing it,
// useful when the caller owns the destination.
func ExampleSprint() {
	line := dump.Sprint("state", "ready")
	os.Stdout.WriteString(line + "\n")

	// Output:
	// state, ready
}
