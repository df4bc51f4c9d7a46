// wrap.go — turning arbitrary errors into failure reports.
//
// Purpose
//   - Let assertion helpers fail because an operation returned an error,
//     keeping that error as the report's cause.
//   - Preserve interop: the returned report unwraps to the original error.
package xgxassert

// From converts any error into a failure report.
//   - nil → nil
//   - a report (or anything wrapping one) → the first report found
//   - other error → a plain failure with err's text as message and err as cause
func From(err error) *AssertionFailedError {
	if err == nil {
		return nil
	}
	if f := Failures(err); len(f) > 0 {
		return f[0]
	}
	return New().Message(err.Error()).Cause(err).build(1)
}

// Wrap returns a plain failure with the given message whose cause is err.
// A nil err yields a failure without a cause.
func Wrap(err error, message any) *AssertionFailedError {
	return New().Message(message).Cause(err).build(1)
}
