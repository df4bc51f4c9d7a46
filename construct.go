// construct.go — the concrete failure report.
//
// Scope:
//   - AssertionFailedError is the immutable value Builder.Build produces.
//   - A report is either a mismatch (expected and actual recorded) or a plain
//     failure (text and cause only). Both forms may carry suppressed errors.
//
// Interop:
//   - Unwrap returns the cause so errors.Is/As follow the causal chain.
//   - Suppressed errors are NOT part of the unwrap chain; they are auxiliary
//     and reachable through Suppressed, SuppressedErr and Walk.
package xgxassert

import (
	"go.uber.org/multierr"
)

// defaultMessage is returned by Error when a report has no text.
const defaultMessage = "assertion failed"

// AssertionFailedError is the failure report produced by Builder.Build.
type AssertionFailedError struct {
	id         string
	msg        string
	hasMsg     bool
	expected   Value
	actual     Value
	cause      error
	suppressed []error
	stk        Stack
}

// newFailure builds a report without expected/actual values.
func newFailure(id, msg string, hasMsg bool, cause error) *AssertionFailedError {
	return &AssertionFailedError{id: id, msg: msg, hasMsg: hasMsg, cause: cause}
}

// newMismatch builds a report carrying expected and actual values.
func newMismatch(id, msg string, hasMsg bool, expected, actual Value, cause error) *AssertionFailedError {
	e := newFailure(id, msg, hasMsg, cause)
	e.expected = expected
	e.actual = actual
	return e
}

// addSuppressed appends err to the suppressed list, ignoring nil. It is only
// called while the report is still private to the builder.
func (e *AssertionFailedError) addSuppressed(err error) {
	if err == nil {
		return
	}
	e.suppressed = append(e.suppressed, err)
}

func (e *AssertionFailedError) Error() string {
	if !e.hasMsg || e.msg == "" {
		return defaultMessage
	}
	return e.msg
}

func (e *AssertionFailedError) Message() (string, bool) { return e.msg, e.hasMsg }
func (e *AssertionFailedError) ID() string              { return e.id }
func (e *AssertionFailedError) Expected() Value         { return e.expected }
func (e *AssertionFailedError) Actual() Value           { return e.actual }
func (e *AssertionFailedError) Unwrap() error           { return e.cause }

// Cause returns the chained cause; it is the same as Unwrap.
func (e *AssertionFailedError) Cause() error { return e.cause }

// IsMismatch reports whether expected and actual were recorded.
func (e *AssertionFailedError) IsMismatch() bool {
	return e.expected.Defined() || e.actual.Defined()
}

func (e *AssertionFailedError) Kind() Kind {
	if e.IsMismatch() {
		return KindMismatch
	}
	return KindFailure
}

// Suppressed returns a copy of the suppressed errors in insertion order.
func (e *AssertionFailedError) Suppressed() []error {
	if len(e.suppressed) == 0 {
		return nil
	}
	out := make([]error, len(e.suppressed))
	copy(out, e.suppressed)
	return out
}

// SuppressedErr combines the suppressed errors into one error, or nil when
// there are none. multierr.Errors recovers the individual entries.
func (e *AssertionFailedError) SuppressedErr() error {
	return multierr.Combine(e.suppressed...)
}

// Stack returns the frames captured when the report was built. It is empty
// when stack capture is disabled.
func (e *AssertionFailedError) Stack() Stack {
	if len(e.stk) == 0 {
		return nil
	}
	out := make(Stack, len(e.stk))
	copy(out, e.stk)
	return out
}
