// format.go — fmt.Formatter implementations for failure reports.
//
// Behavior:
//
//   %s, %v   → Error().
//   %q       → quoted Error().
//   %+v      → verbose, structured multi-line format:
//                kind=<kind> id=<id> msg="<message>"
//                expected: <spew dump>
//                actual: <spew dump>
//                diff (-expected +actual):
//                  <cmp.Diff output>
//                cause: <recursively formatted with %+v>
//                suppressed:
//                  [0] <%+v of each entry>
//                stack:
//                  funcA file.go:123
package xgxassert

import (
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/google/go-cmp/cmp"
)

// dumper renders expected/actual values in verbose output. Pointer addresses
// and capacities are omitted so output is stable across runs.
var dumper = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
	MaxDepth:                8,
}

// exportAll lets cmp.Diff descend into unexported struct fields.
var exportAll = cmp.Exporter(func(reflect.Type) bool { return true })

// formatConcise writes the one-line message (delegates to Error()).
func formatConcise(w io.Writer, e error) {
	_, _ = io.WriteString(w, e.Error())
}

func (e *AssertionFailedError) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			e.formatVerbose(s)
			return
		}
		formatConcise(s, e)
	case 's':
		formatConcise(s, e)
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", e.Error())
	default:
		formatConcise(s, e)
	}
}

func (e *AssertionFailedError) formatVerbose(w io.Writer) {
	_, _ = fmt.Fprintf(w, "kind=%s id=%s msg=%q", e.Kind(), e.id, e.msg)

	if e.IsMismatch() {
		writeValue(w, "expected", e.expected)
		writeValue(w, "actual", e.actual)
		if d := diffValues(e.expected.Get(), e.actual.Get()); d != "" {
			_, _ = io.WriteString(w, "\ndiff (-expected +actual):\n")
			_, _ = io.WriteString(w, indent(strings.TrimRight(d, "\n"), "  "))
		}
	}

	if e.cause != nil {
		_, _ = io.WriteString(w, "\ncause: ")
		_, _ = fmt.Fprintf(w, "%+v", e.cause)
	}

	if len(e.suppressed) > 0 {
		_, _ = io.WriteString(w, "\nsuppressed:")
		for i, s := range e.suppressed {
			_, _ = fmt.Fprintf(w, "\n  [%d] %s", i, indentTail(fmt.Sprintf("%+v", s), "      "))
		}
	}

	if len(e.stk) > 0 {
		_, _ = io.WriteString(w, "\nstack:")
		for _, fr := range e.stk {
			_, _ = fmt.Fprintf(w, "\n  %s %s:%d", fr.Function, fr.File, fr.Line)
		}
	}
}

func writeValue(w io.Writer, label string, v Value) {
	_, _ = fmt.Fprintf(w, "\n%s: %s", label, indentTail(strings.TrimRight(dumpValue(v.Get()), "\n"), "  "))
}

func dumpValue(v any) string {
	if isNil(v) {
		return "nil"
	}
	return dumper.Sdump(v)
}

// diffValues returns a cmp.Diff of expected against actual, or "" when the
// values are equal, of different types, or cannot be compared.
func diffValues(expected, actual any) (out string) {
	if expected == nil || actual == nil {
		return ""
	}
	if reflect.TypeOf(expected) != reflect.TypeOf(actual) {
		return ""
	}
	defer func() {
		if recover() != nil {
			out = ""
		}
	}()
	return cmp.Diff(expected, actual, exportAll)
}

func (m *MultipleFailuresError) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			_, _ = fmt.Fprintf(s, "kind=%s id=%s heading=%q", KindMultiple, m.id, m.heading)
			for i, f := range m.failures {
				_, _ = fmt.Fprintf(s, "\nfailure[%d]: %s", i, indentTail(fmt.Sprintf("%+v", f), "  "))
			}
			return
		}
		formatConcise(s, m)
	case 's':
		formatConcise(s, m)
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", m.Error())
	default:
		formatConcise(s, m)
	}
}

// indent prefixes every line of s.
func indent(s, prefix string) string {
	return prefix + strings.ReplaceAll(s, "\n", "\n"+prefix)
}

// indentTail prefixes every line of s except the first.
func indentTail(s, prefix string) string {
	return strings.ReplaceAll(s, "\n", "\n"+prefix)
}
