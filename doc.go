// doc.go — package documentation for xgx-assert
//
// Package xgxassert assembles the failure reports returned or raised by
// assertion helpers. It is designed to be:
//   - Ergonomic at call sites (one fluent builder, a handful of helpers)
//   - Interoperable with the stdlib (errors.Is/As/Join, fmt.Formatter)
//   - Quiet (no logging or printing unless asked to)
//
// # Building Reports
//
// A Builder collects optional parts and turns them into an
// *AssertionFailedError:
//
//	err := xgxassert.New().
//		Message("balance after transfer").
//		Expected(100).
//		Actual(90).
//		Build()
//	// err.Error() == "balance after transfer ==> expected: <100> but was: <90>"
//
// Text rules:
//   - message + reason → "<message> ==> <reason>"
//   - only one of them → that one alone
//   - neither → no text; Error() falls back to "assertion failed"
//   - Expected/Actual append "expected: <X> but was: <Y>" to the reason,
//     separated by ", " when a reason was set.
//
// Nil messages are absent rather than printed as "<nil>". Message accepts
// suppliers (func() string) that only run when the report is built.
//
// # Raising
//
//   - Build returns the report.
//   - Fail panics with it; All recovers such panics.
//   - FailNow hands it to testing.TB.Fatal.
//
// # Suppressed Errors
//
// Suppressed errors are auxiliary: they are kept in insertion order and shown
// by %+v, Fprint and the zap adapter, but they are not part of the unwrap
// chain. Use Walk or Failures to reach them.
//
// # Formatting
//
//   - `%v`, `%s`   → Error()
//   - `%+v`        → kind, id, message, value dumps, a diff of expected
//     against actual, cause, suppressed errors and stack
//   - `%q`         → quoted Error()
//
// # Configuration
//
// XGX_ASSERT_* environment variables control stack capture, value truncation
// and color (see Config). Builders may override them with WithConfig.
package xgxassert
