// predicates.go — stdlib-aligned questions about arbitrary errors.
//
// All helpers use errors.As, so they see reports wrapped with %w, joined with
// errors.Join or aggregated by All.
package xgxassert

import (
	"errors"
)

// IsAssertionFailure reports whether err is (or wraps) a failure report or
// an aggregate of them.
func IsAssertionFailure(err error) bool {
	if err == nil {
		return false
	}
	var f *AssertionFailedError
	if errors.As(err, &f) {
		return true
	}
	var m *MultipleFailuresError
	return errors.As(err, &m)
}

// IsMismatch reports whether the first report found in err is a mismatch.
func IsMismatch(err error) bool {
	var f *AssertionFailedError
	return err != nil && errors.As(err, &f) && f.IsMismatch()
}

// ExpectedActual returns the raw expected and actual values of the first
// mismatch report found in err. ok is false when there is none.
func ExpectedActual(err error) (expected, actual any, ok bool) {
	var f *AssertionFailedError
	if err == nil || !errors.As(err, &f) || !f.IsMismatch() {
		return nil, nil, false
	}
	return f.Expected().Get(), f.Actual().Get(), true
}

// KindOf returns the kind of the first report discovered along err's chain,
// or "" if none.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	var k interface{ Kind() Kind }
	if errors.As(err, &k) {
		return k.Kind()
	}
	return ""
}
