package dump_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/kivetran/sundry/dump"
	"github.com/stretchr/testify/assert"
)

// stamp is a fmt.Stringer used to verify bare-text rendering.
type stamp struct{ id int }

func (s stamp) String() string { return "stamp#42" }

// failWriter always refuses the write, to prove failures stay silent.
type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("disk gone") }

// TestSprint_StringLikeBareText verifies string, []byte, error and
// fmt.Stringer values pass through without quoting or type annotations.
func TestSprint_StringLikeBareText(t *testing.T) {
	assert.Equal(t, "plain", dump.Sprint("plain"), "string must stay bare")
	assert.Equal(t, "raw-bytes", dump.Sprint([]byte("raw-bytes")), "[]byte must render as text")
	assert.Equal(t, "boom", dump.Sprint(errors.New("boom")), "error must render via Error()")
	assert.Equal(t, "stamp#42", dump.Sprint(stamp{id: 42}), "Stringer must render via String()")
}

// TestSprint_JoinsWithCommaSpace verifies the ", " separator between values
// and that a single value gets no separator.
func TestSprint_JoinsWithCommaSpace(t *testing.T) {
	assert.Equal(t, "a, b, c", dump.Sprint("a", "b", "c"))
	assert.Equal(t, "solo", dump.Sprint("solo"))
	assert.Equal(t, "", dump.Sprint(), "no values renders the empty line")
}

// TestSprint_GenericDebugRepresentation verifies non-string values carry
// their content (and type information) through the spew renderer.
func TestSprint_GenericDebugRepresentation(t *testing.T) {
	out := dump.Sprint(42)
	assert.Contains(t, out, "42", "value must be visible")
	assert.Contains(t, out, "int", "type must be visible")

	type pt struct{ X, Y int }
	out = dump.Sprint(pt{X: 3, Y: 9})
	assert.Contains(t, out, "3")
	assert.Contains(t, out, "9")
}

// TestSprint_NilValue verifies a bare nil does not panic and renders a
// recognizable placeholder.
func TestSprint_NilValue(t *testing.T) {
	assert.Equal(t, "<nil>", dump.Sprint(nil))
}

// TestFprintln_AppendsNewline verifies exactly one trailing newline is
// written after the joined line.
func TestFprintln_AppendsNewline(t *testing.T) {
	var b strings.Builder
	dump.Fprintln(&b, "left", "right")

	assert.Equal(t, "left, right\n", b.String())
}

// TestFprintln_SwallowsWriteFailure verifies a failing diagnostic stream
// neither panics nor reports anything.
func TestFprintln_SwallowsWriteFailure(t *testing.T) {
	assert.NotPanics(t, func() {
		dump.Fprintln(failWriter{}, "lost", 1, 2, 3)
	})
}

// TestPrintln_Smoke verifies the stderr entry point is callable; output is
// not captured here because stderr is the whole point of the helper.
func TestPrintln_Smoke(t *testing.T) {
	assert.NotPanics(t, func() {
		dump.Println("smoke", []byte("test"))
	})
}
