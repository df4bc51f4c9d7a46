package xgxassert

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// containsInOrder reports whether all needles appear in haystack in order.
func containsInOrder(haystack string, needles ...string) bool {
	pos := 0
	for _, n := range needles {
		i := strings.Index(haystack[pos:], n)
		if i < 0 {
			return false
		}
		pos += i + len(n)
	}
	return true
}

type point struct {
	X, Y int
	tag  string
}

func TestFormat_ConciseVerbs(t *testing.T) {
	t.Parallel()

	err := newQuiet().Message("m").Reason("r").Build()
	assert.Equal(t, "m ==> r", fmt.Sprintf("%v", err))
	assert.Equal(t, "m ==> r", fmt.Sprintf("%s", err))
	assert.Equal(t, `"m ==> r"`, fmt.Sprintf("%q", err))
}

func TestFormat_VerboseMismatch(t *testing.T) {
	t.Parallel()

	err := New().WithConfig(stackConfig()).
		Message("points differ").
		Expected(point{X: 1, Y: 2, tag: "a"}).
		Actual(point{X: 1, Y: 3, tag: "a"}).
		Build()

	verbose := fmt.Sprintf("%+v", err)
	for _, w := range []string{
		"kind=mismatch",
		"id=" + err.ID(),
		`msg="points differ ==> expected: <{1 2 a}> but was: <{1 3 a}>"`,
		"\nexpected: (xgxassert.point)",
		"\nactual: (xgxassert.point)",
		"\ndiff (-expected +actual):",
		"\nstack:",
	} {
		assert.Contains(t, verbose, w)
	}
	assert.True(t, containsInOrder(verbose, "expected:", "actual:", "diff", "stack:"), verbose)
}

func TestFormat_VerboseOmitsDiffForEqualOrDifferentTypes(t *testing.T) {
	t.Parallel()

	equal := fmt.Sprintf("%+v", newQuiet().Expected(1).Actual(1).Build())
	assert.NotContains(t, equal, "diff (-expected +actual)")

	mixed := fmt.Sprintf("%+v", newQuiet().Expected(1).Actual("1").Build())
	assert.NotContains(t, mixed, "diff (-expected +actual)")

	withNil := fmt.Sprintf("%+v", newQuiet().Expected(nil).Actual(1).Build())
	assert.Contains(t, withNil, "\nexpected: nil")
}

func TestFormat_VerboseCauseAndSuppressed(t *testing.T) {
	t.Parallel()

	inner := newQuiet().Reason("inner check").Build()
	err := newQuiet().
		Reason("outer").
		Cause(inner).
		Suppressed(errors.New("cleanup failed"), errors.New("close failed")).
		Build()

	verbose := fmt.Sprintf("%+v", err)
	assert.Contains(t, verbose, "kind=failure")
	assert.Contains(t, verbose, "\ncause: kind=failure")
	assert.Contains(t, verbose, `msg="inner check"`)
	assert.True(t, containsInOrder(verbose, "\nsuppressed:", "[0] cleanup failed", "[1] close failed"), verbose)
	assert.NotContains(t, verbose, "\nstack:")
}

func TestFormat_MultipleFailures(t *testing.T) {
	t.Parallel()

	a := newQuiet().Reason("first").Build()
	b := newQuiet().Expected(1).Actual(2).Build()
	m := newMultiple("group", []error{a, b})

	assert.Equal(t, m.Error(), fmt.Sprintf("%v", m))
	assert.Equal(t, fmt.Sprintf("%q", m.Error()), fmt.Sprintf("%q", m))

	verbose := fmt.Sprintf("%+v", m)
	assert.True(t, containsInOrder(verbose,
		`kind=multiple`, `heading="group"`,
		"failure[0]: kind=failure", "first",
		"failure[1]: kind=mismatch", "expected: <1> but was: <2>",
	), verbose)
}

func TestDiffValues_UnexportedFieldsAndPanics(t *testing.T) {
	t.Parallel()

	d := diffValues(point{X: 1, tag: "a"}, point{X: 1, tag: "b"})
	assert.Contains(t, d, "tag")

	assert.Empty(t, diffValues(point{X: 1}, point{X: 1}))
	assert.Empty(t, diffValues(1, "1"))
	assert.Empty(t, diffValues(nil, 1))

	// Non-nil functions never compare equal; diffing them must still be safe.
	assert.NotPanics(t, func() { _ = diffValues(func() {}, func() {}) })
}
