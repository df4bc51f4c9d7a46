// builder.go — fluent assembly of failure reports.
//
// Lifecycle: New, populate through chained setters, then Build (or Fail /
// FailNow) exactly once. A Builder is not safe for concurrent use.
package xgxassert

import (
	"github.com/google/uuid"
)

// Builder accumulates the optional parts of a failure report.
type Builder struct {
	message    any
	reason     string
	cause      error
	suppressed []error
	mismatch   bool
	expected   any
	actual     any
	omitValues bool
	trim       []string
	cfg        *Config
}

// New returns an empty builder.
//
// Example:
//
//	err := xgxassert.New().
//		Message("user count").
//		Expected(3).
//		Actual(len(users)).
//		Build()
func New() *Builder {
	return &Builder{}
}

// Message sets the caller-supplied message. It may be any value; it is only
// rendered at build time. Suppliers (func() string, func() any) are invoked
// then, so expensive messages cost nothing when no failure is built.
func (b *Builder) Message(message any) *Builder {
	b.message = message
	return b
}

// Reason sets a plain explanation of what went wrong.
func (b *Builder) Reason(reason string) *Builder {
	b.reason = reason
	return b
}

// Cause sets the underlying error the report chains to.
func (b *Builder) Cause(cause error) *Builder {
	b.cause = cause
	return b
}

// Suppressed appends auxiliary errors in call order. Nil entries are skipped.
func (b *Builder) Suppressed(errs ...error) *Builder {
	b.suppressed = append(b.suppressed, errs...)
	return b
}

// Expected records the expected value and marks the report as a mismatch.
func (b *Builder) Expected(expected any) *Builder {
	b.mismatch = true
	b.expected = expected
	return b
}

// Actual records the actual value and marks the report as a mismatch.
func (b *Builder) Actual(actual any) *Builder {
	b.mismatch = true
	b.actual = actual
	return b
}

// IncludeValuesInMessage controls whether a mismatch appends the
// "expected: <X> but was: <Y>" clause to the text. It defaults to true; the
// values are recorded on the report either way.
func (b *Builder) IncludeValuesInMessage(include bool) *Builder {
	b.omitValues = !include
	return b
}

// TrimStack hides leading stack frames whose function name starts with
// prefix, typically the package path of an assertion helper library.
func (b *Builder) TrimStack(prefix string) *Builder {
	b.trim = append(b.trim, prefix)
	return b
}

// WithConfig overrides DefaultConfig for this builder.
func (b *Builder) WithConfig(cfg *Config) *Builder {
	b.cfg = cfg
	return b
}

// Build finalizes the report. It never fails.
func (b *Builder) Build() *AssertionFailedError {
	return b.build(1)
}

// Fail builds the report and panics with it.
func (b *Builder) Fail() {
	panic(b.build(1))
}

// TB is the subset of testing.TB used by FailNow.
type TB interface {
	Helper()
	Fatal(args ...any)
}

// FailNow builds the report and hands it to t.Fatal.
func (b *Builder) FailNow(t TB) {
	t.Helper()
	t.Fatal(b.build(1))
}

// build assembles the report; skip counts the frames between the public
// entry point and build.
func (b *Builder) build(skip int) *AssertionFailedError {
	cfg := b.config()

	var expected, actual Value
	if b.mismatch {
		expected = wrapValue(b.expected, cfg.MaxValueLength)
		actual = wrapValue(b.actual, cfg.MaxValueLength)
	}

	reason, hasReason := b.reason, b.reason != ""
	if b.mismatch && !b.omitValues {
		clause := formatValues(expected, actual)
		if hasReason {
			reason = reason + ", " + clause
		} else {
			reason = clause
		}
		hasReason = true
	}

	msg, hasMsg := nullSafeText(b.message)
	if hasReason {
		msg = buildPrefix(msg, hasMsg) + reason
		hasMsg = true
	}

	id := uuid.NewString()
	var report *AssertionFailedError
	if b.mismatch {
		report = newMismatch(id, msg, hasMsg, expected, actual, b.cause)
	} else {
		report = newFailure(id, msg, hasMsg, b.cause)
	}
	for _, s := range b.suppressed {
		report.addSuppressed(s)
	}
	if cfg.CaptureStack {
		report.stk = trimLeading(captureStack(skip+1, cfg.MaxStackDepth), b.trim)
	}
	return report
}

func (b *Builder) config() *Config {
	if b.cfg != nil {
		return b.cfg
	}
	return DefaultConfig()
}
