package dump

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/davecgh/go-spew/spew"
)

// Separator and terminator literals for rendered lines.
const (
	_sep     = ", "
	_newline = "\n"
)

// cfg renders non-string values inline with their types, so a joined line
// stays a single line. SortKeys keeps map output deterministic.
var cfg = spew.ConfigState{Indent: " ", SortKeys: true}

// Sprint renders vals into a single line: string-like values as bare text,
// all other values via a generic debug representation, joined with ", ".
// No trailing newline is appended.
// Complexity: O(total rendered length).
func Sprint(vals ...any) string {
	var b strings.Builder
	for i, v := range vals {
		if i > 0 {
			b.WriteString(_sep)
		}
		b.WriteString(render(v))
	}

	return b.String()
}

// Fprintln writes the rendered line plus a trailing newline to w.
// Write failures are silently discarded; this helper exists for debugging
// and must never alter the caller's control flow.
func Fprintln(w io.Writer, vals ...any) {
	_, _ = io.WriteString(w, Sprint(vals...)+_newline)
}

// Println writes the rendered line to os.Stderr, the unbuffered diagnostic
// stream. Write failures are silently discarded.
func Println(vals ...any) {
	Fprintln(os.Stderr, vals...)
}

// render resolves one value: recognized string-like types pass through as
// bare text, everything else goes through the spew formatter with types
// attached.
func render(v any) string {
	switch s := v.(type) {
	case nil:
		return "<nil>"
	case string:
		return s
	case []byte:
		return string(s)
	case error:
		return s.Error()
	case fmt.Stringer:
		return s.String()
	default:
		return cfg.Sprintf("%#v", v)
	}
}
