// join.go — aggregated failures for soft-assertion groups.
//
// Goals:
//   - Run every check in a group even after one fails, then report all
//     failures together under one heading.
//   - Preserve stdlib semantics: Unwrap() []error exposes every failure to
//     errors.Is/As.
//   - "%+v" renders each failure with its own verbose form (see format.go).
package xgxassert

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// defaultHeading is used when All is given a blank heading.
const defaultHeading = "Multiple Failures"

// MultipleFailuresError aggregates the failures of an assertion group.
type MultipleFailuresError struct {
	id       string
	heading  string
	failures []error // non-nil only
}

func newMultiple(heading string, failures []error) *MultipleFailuresError {
	if strings.TrimSpace(heading) == "" {
		heading = defaultHeading
	}
	return &MultipleFailuresError{id: uuid.NewString(), heading: heading, failures: failures}
}

// Error renders the heading with a failure count, then one tab-indented line
// per failure.
func (m *MultipleFailuresError) Error() string {
	n := len(m.failures)
	sb := strings.Builder{}
	sb.WriteString(m.heading)
	sb.WriteString(" (")
	sb.WriteString(strconv.Itoa(n))
	if n == 1 {
		sb.WriteString(" failure)")
	} else {
		sb.WriteString(" failures)")
	}
	for _, f := range m.failures {
		sb.WriteString("\n\t")
		sb.WriteString(indentTail(f.Error(), "\t"))
	}
	return sb.String()
}

func (m *MultipleFailuresError) ID() string      { return m.id }
func (m *MultipleFailuresError) Heading() string { return m.heading }
func (m *MultipleFailuresError) Kind() Kind      { return KindMultiple }

// Failures returns a copy of the aggregated failures in check order.
func (m *MultipleFailuresError) Failures() []error {
	out := make([]error, len(m.failures))
	copy(out, m.failures)
	return out
}

// Unwrap exposes the failures to stdlib traversal.
func (m *MultipleFailuresError) Unwrap() []error { return m.failures }

// All runs every check and aggregates the failures they raise. A check fails
// by panicking, typically through Builder.Fail. Panics carrying an error are
// collected as-is; any other panic value becomes a plain failure whose message
// is that value. All returns nil when every check passed.
//
// Example:
//
//	err := xgxassert.All("address",
//		func() { checkEqual("Jane", got.First) },
//		func() { checkEqual("Doe", got.Last) },
//	)
func All(heading string, checks ...func()) error {
	var failures []error
	for _, check := range checks {
		if err := runCheck(check); err != nil {
			failures = append(failures, err)
		}
	}
	if len(failures) == 0 {
		return nil
	}
	return newMultiple(heading, failures)
}

// runCheck calls check and converts a panic into an error.
func runCheck(check func()) (err error) {
	if check == nil {
		return nil
	}
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if e, ok := r.(error); ok {
			err = e
			return
		}
		err = New().Message(fmt.Sprint(r)).Build()
	}()
	check()
	return nil
}
