package xgxassert

import (
	"fmt"
	"unicode/utf8"
)

// Value wraps an expected or actual value recorded on a report. The zero
// Value is undefined.
type Value struct {
	raw      any
	typeName string
	text     string
	defined  bool
}

// wrapValue records v together with its type name and display text. Display
// text longer than maxLen runes is truncated; maxLen <= 0 means unbounded.
func wrapValue(v any, maxLen int) Value {
	typeName := "nil"
	if v != nil {
		typeName = fmt.Sprintf("%T", v)
	}
	return Value{
		raw:      v,
		typeName: typeName,
		text:     truncate(renderValue(v), maxLen),
		defined:  true,
	}
}

// Defined reports whether the value was recorded.
func (v Value) Defined() bool { return v.defined }

// Get returns the raw value (nil when undefined).
func (v Value) Get() any { return v.raw }

// TypeName returns the Go type of the raw value as printed by %T, or "nil".
func (v Value) TypeName() string { return v.typeName }

// String returns the display text. Undefined values render as an empty string.
func (v Value) String() string { return v.text }

func truncate(s string, maxLen int) string {
	if maxLen <= 0 || utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	r := []rune(s)
	return string(r[:maxLen]) + "..."
}
