// render.go — null-safe text rendering for report messages and values.
//
// Rules:
//   - nil, including typed nil pointers behind an interface, is absent.
//   - Suppliers (func() string, func() any) are invoked at build time and
//     their result rendered again.
//   - Everything else goes through fmt, which honours Stringer and error.
package xgxassert

import (
	"fmt"
	"reflect"
	"strings"
)

// messageDelimiter separates the caller's message from the reason.
const messageDelimiter = " ==> "

// nullSafeText renders v to text. The boolean is false when v is absent.
func nullSafeText(v any) (string, bool) {
	if isNil(v) {
		return "", false
	}
	switch typed := v.(type) {
	case string:
		return typed, true
	case func() string:
		return typed(), true
	case func() any:
		return nullSafeText(typed())
	default:
		return fmt.Sprint(typed), true
	}
}

// renderValue renders an expected/actual value. Absent values print as "nil".
func renderValue(v any) string {
	if isNil(v) {
		return "nil"
	}
	return fmt.Sprint(v)
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}

// buildPrefix returns "<message> ==> " for a non-blank message and "" otherwise.
func buildPrefix(message string, ok bool) string {
	if !ok || strings.TrimSpace(message) == "" {
		return ""
	}
	return message + messageDelimiter
}

// formatValues renders the expected/actual clause. When both sides print the
// same, each side is qualified with its type if the types differ, or with its
// address if both are distinct pointers of the same type.
func formatValues(expected, actual Value) string {
	e, a := expected.String(), actual.String()
	if e == a {
		if expected.TypeName() != actual.TypeName() {
			return fmt.Sprintf("expected: %s<%s> but was: %s<%s>", expected.TypeName(), e, actual.TypeName(), a)
		}
		if ep, ap, ok := distinctPointers(expected.Get(), actual.Get()); ok {
			return fmt.Sprintf("expected: %s@%#x<%s> but was: %s@%#x<%s>", expected.TypeName(), ep, e, actual.TypeName(), ap, a)
		}
	}
	return fmt.Sprintf("expected: <%s> but was: <%s>", e, a)
}

// distinctPointers reports the addresses of x and y when both are non-nil
// pointers to different locations.
func distinctPointers(x, y any) (uintptr, uintptr, bool) {
	xv, yv := reflect.ValueOf(x), reflect.ValueOf(y)
	if xv.Kind() != reflect.Pointer || yv.Kind() != reflect.Pointer || xv.IsNil() || yv.IsNil() {
		return 0, 0, false
	}
	xp, yp := xv.Pointer(), yv.Pointer()
	return xp, yp, xp != yp
}
