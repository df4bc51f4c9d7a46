// error.go — the read-only contract of a failure report.
//
// Design tenets:
//   - Interop-first: reports unwrap to their cause; aggregates expose
//     Unwrap() []error so errors.Is/As see every failure.
//   - Total construction: building a report never fails; only Fail panics.
//   - Immutable results: a built report is never mutated afterwards.
package xgxassert

// Failure is the read-only contract shared by assertion reports.
//
// Implementations MUST be immutable once returned to callers. Accessors that
// return slices return copies.
type Failure interface {
	// error yields the final description. Reports without any text fall
	// back to a fixed placeholder rather than an empty string.
	error

	// Message returns the final description and whether one was produced.
	Message() (string, bool)

	// Kind classifies the report (mismatch, failure, multiple).
	Kind() Kind

	// ID identifies the report in logs and printed output.
	ID() string

	// Expected and Actual return the wrapped comparison values. Both are
	// undefined unless the report is a mismatch.
	Expected() Value
	Actual() Value

	// IsMismatch reports whether the report describes an expected/actual
	// comparison failure.
	IsMismatch() bool

	// Suppressed returns a copy of the auxiliary errors in insertion order.
	Suppressed() []error

	// Unwrap returns the chained cause (or nil).
	Unwrap() error
}

var (
	_ Failure = (*AssertionFailedError)(nil)
)
