// stack.go — call-site capture for failure reports.
//
// Design goals:
//   - Use runtime.Callers + runtime.CallersFrames for accurate frame
//     resolution (handles inlining correctly).
//   - The first recorded frame is the caller of Build/Fail/FailNow, never
//     this package's plumbing.
//   - Assertion helpers layered on top can hide their own frames with
//     Builder.TrimStack.
package xgxassert

import (
	"runtime"
	"strings"
)

// Frame represents a single call site in a stack trace.
type Frame struct {
	PC       uintptr // program counter of the call return
	File     string  // absolute file path (as provided by runtime)
	Line     int     // line number
	Function string  // fully-qualified function name (pkg.Func or method)
}

// Stack is a slice of Frames from most recent call outward.
type Stack []Frame

const (
	// defaultMaxDepth bounds capture when the configuration does not.
	defaultMaxDepth = 64
)

// captureStack captures up to maxDepth frames, skipping 'skip' frames above
// its caller. skip=0 makes the caller of captureStack the first frame.
//
// Skip accounting:
//   - +1 for runtime.Callers itself
//   - +1 for captureStack
func captureStack(skip, maxDepth int) Stack {
	if maxDepth <= 0 {
		maxDepth = defaultMaxDepth
	}

	pc := make([]uintptr, maxDepth)
	n := runtime.Callers(skip+2, pc)
	if n == 0 {
		return nil
	}
	pc = pc[:n]

	frames := runtime.CallersFrames(pc)
	out := make(Stack, 0, n)

	for {
		fr, more := frames.Next()
		out = append(out, Frame{
			PC:       fr.PC,
			File:     fr.File,
			Line:     fr.Line,
			Function: fr.Function,
		})
		if !more {
			break
		}
	}
	return out
}

// trimLeading drops frames from the top of s while their function name starts
// with any of the prefixes. The whole stack is kept if every frame matches.
func trimLeading(s Stack, prefixes []string) Stack {
	if len(prefixes) == 0 || len(s) == 0 {
		return s
	}
	i := 0
	for i < len(s) && hasAnyPrefix(s[i].Function, prefixes) {
		i++
	}
	if i == len(s) {
		return s
	}
	return s[i:]
}

func hasAnyPrefix(fn string, prefixes []string) bool {
	for _, p := range prefixes {
		if p != "" && strings.HasPrefix(fn, p) {
			return true
		}
	}
	return false
}
