// unwrap.go — traversal over report trees.
//
// A report tree has three kinds of edges:
//   - Unwrap() error     (cause chains, fmt.Errorf %w)
//   - Unwrap() []error   (errors.Join, multierr, MultipleFailuresError)
//   - Suppressed() []error on assertion reports
//
// errors.Is/As only follow the first two. Walk follows all three so printers
// and loggers can find failures hidden in suppressed lists.
//
// The seen set is keyed by the error value itself. Comparability is checked
// on the dynamic VALUE, not its type: a struct error with an `any` field is a
// comparable type but panics as a map key when that field holds a slice or
// map. Such values are not tracked and are treated as acyclic (bounded by
// depth).
package xgxassert

import (
	"reflect"
)

type singleUnwrapper interface{ Unwrap() error }
type multiUnwrapper interface{ Unwrap() []error }
type suppressor interface{ Suppressed() []error }

// markSeen returns true if err was newly marked; false if already seen.
func markSeen(err error, seen map[error]struct{}) bool {
	if err == nil {
		return false
	}
	if !reflect.ValueOf(err).Comparable() {
		return true
	}
	if _, ok := seen[err]; ok {
		return false
	}
	seen[err] = struct{}{}
	return true
}

// children lists the next nodes of err: joined children first, then the
// cause, then suppressed errors.
func children(err error) []error {
	var out []error
	switch typed := err.(type) {
	case multiUnwrapper:
		out = append(out, typed.Unwrap()...)
	case singleUnwrapper:
		if u := typed.Unwrap(); u != nil {
			out = append(out, u)
		}
	}
	if s, ok := err.(suppressor); ok {
		out = append(out, s.Suppressed()...)
	}
	return out
}

// Walk traverses err depth-first and calls visit for each DISTINCT node in
// PRE-ORDER (visit before children). Children are joined errors, the cause
// and suppressed errors, in that order. If visit returns false, traversal
// stops. It is safe on cycles and nil is a no-op.
func Walk(err error, visit func(error) bool) {
	if err == nil || visit == nil {
		return
	}
	const maxDepth = 1 << 12

	stack := make([]error, 0, 8)
	seen := make(map[error]struct{}, 16)

	stack = append(stack, err)
	_ = markSeen(err, seen)

	for len(stack) > 0 && len(stack) < maxDepth {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !visit(cur) {
			return
		}

		// Push in reverse for left-to-right DFS.
		kids := children(cur)
		for i := len(kids) - 1; i >= 0; i-- {
			c := kids[i]
			if c == nil {
				continue
			}
			if markSeen(c, seen) {
				stack = append(stack, c)
			}
		}
	}
}

// Failures returns every assertion report reachable from err in Walk order.
func Failures(err error) []*AssertionFailedError {
	var out []*AssertionFailedError
	Walk(err, func(e error) bool {
		if f, ok := e.(*AssertionFailedError); ok {
			out = append(out, f)
		}
		return true
	})
	return out
}
