package xgxassert

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestFprint_Mismatch(t *testing.T) {
	t.Parallel()

	err := New().WithConfig(stackConfig()).
		Message("totals").
		Expected(10).
		Actual(12).
		Cause(errors.New("root cause")).
		Suppressed(errors.New("cleanup")).
		Build()

	var buf bytes.Buffer
	require.NoError(t, FprintWithConfig(&buf, err, &Config{Color: ColorNever}))
	out := buf.String()

	assert.True(t, containsInOrder(out,
		"FAILED totals ==> expected: <10> but was: <12>", "["+err.ID()+"]",
		"  expected: <10> (int)",
		"  actual:   <12> (int)",
		"  cause: root cause",
		"  suppressed[0]: cleanup",
		"  at ", "TestFprint_Mismatch",
	), out)
	assert.NotContains(t, out, "\x1b[")
}

func TestFprint_ColorAlways(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := newQuiet().Expected(1).Actual(2).Build()
	require.NoError(t, FprintWithConfig(&buf, err, &Config{Color: ColorAlways}))
	assert.Contains(t, buf.String(), "\x1b[")
}

func TestFprint_MultipleAndPlain(t *testing.T) {
	t.Parallel()

	m := newMultiple("group", []error{newQuiet().Reason("a").Build(), errors.New("plain")})
	var buf bytes.Buffer
	require.NoError(t, FprintWithConfig(&buf, m, &Config{Color: ColorNever}))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "group (2)", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "FAILED a ["))
	assert.Equal(t, "plain", lines[2])
}

func TestFprint_NilAndWriteErrors(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	assert.NoError(t, FprintWithConfig(&buf, nil, nil))
	assert.Zero(t, buf.Len())

	err := FprintWithConfig(failingWriter{}, newQuiet().Reason("r").Build(), &Config{Color: ColorNever})
	assert.EqualError(t, err, "disk full")
}
