package xgxassert

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

type shout string

func (s shout) String() string { return string(s) + "!" }

func TestNullSafeText(t *testing.T) {
	t.Parallel()

	var nilPtr *int
	var nilFunc func() string
	var nilChan chan int

	cases := []struct {
		name string
		in   any
		want string
		ok   bool
	}{
		{"nil", nil, "", false},
		{"typed_nil_pointer", nilPtr, "", false},
		{"nil_supplier", nilFunc, "", false},
		{"nil_chan", nilChan, "", false},
		{"string", "text", "text", true},
		{"empty_string", "", "", true},
		{"int", 7, "7", true},
		{"stringer", shout("hey"), "hey!", true},
		{"string_supplier", func() string { return "lazy" }, "lazy", true},
		{"any_supplier", func() any { return shout("x") }, "x!", true},
		{"nil_slice_is_present", []int(nil), "[]", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := nullSafeText(tc.in)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestBuildPrefix(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "", buildPrefix("", false))
	assert.Equal(t, "", buildPrefix("", true))
	assert.Equal(t, "", buildPrefix(" \t", true))
	assert.Equal(t, "msg ==> ", buildPrefix("msg", true))
}

func TestFormatValues(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "expected: <1> but was: <2>", formatValues(wrapValue(1, 0), wrapValue(2, 0)))
	assert.Equal(t, "expected: <nil> but was: <x>", formatValues(wrapValue(nil, 0), wrapValue("x", 0)))
	assert.Equal(t, "expected: xgxassert.shout<a!> but was: string<a!>", formatValues(wrapValue(shout("a"), 0), wrapValue("a!", 0)))
}

func TestFormatValues_DistinctPointersShowAddress(t *testing.T) {
	t.Parallel()

	type box struct{ N int }
	x, y := &box{1}, &box{1}

	got := formatValues(wrapValue(x, 0), wrapValue(y, 0))
	want := fmt.Sprintf("expected: %T@%p<&{1}> but was: %T@%p<&{1}>", x, x, y, y)
	assert.Equal(t, want, got)

	assert.Equal(t, "expected: <&{1}> but was: <&{1}>", formatValues(wrapValue(x, 0), wrapValue(x, 0)))
}

func TestWrapValue(t *testing.T) {
	t.Parallel()

	var zero Value
	assert.False(t, zero.Defined())
	assert.Equal(t, "", zero.String())

	v := wrapValue([]int{1, 2}, 0)
	assert.True(t, v.Defined())
	assert.Equal(t, "[]int", v.TypeName())
	assert.Equal(t, "[1 2]", v.String())

	long := wrapValue("héllo wörld", 5)
	assert.Equal(t, "héllo...", long.String())
}
