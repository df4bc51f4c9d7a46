// codes.go — failure kinds for xgx-assert.
//
// Intent:
//   - Classify reports so adapters (logs, printers) can branch without type switches.
//   - Keep the set small: a report is a value mismatch, a plain failure, or an
//     aggregate of several failures.
package xgxassert

// Kind classifies a failure report.
type Kind string

const (
	// KindFailure is a generic assertion failure without expected/actual values.
	KindFailure Kind = "failure"
	// KindMismatch is an expected/actual comparison failure.
	KindMismatch Kind = "mismatch"
	// KindMultiple is an aggregate of several failures (see All).
	KindMultiple Kind = "multiple"
)

// allKinds is the ordered set of kinds the package ships with.
var allKinds = []Kind{
	KindFailure,
	KindMismatch,
	KindMultiple,
}

var kindSet = map[Kind]struct{}{
	KindFailure:  {},
	KindMismatch: {},
	KindMultiple: {},
}

// Kinds returns a copy of the known kinds in a stable order.
func Kinds() []Kind {
	out := make([]Kind, len(allKinds))
	copy(out, allKinds)
	return out
}

// IsKnown reports whether k is one of the kinds defined by this package.
func (k Kind) IsKnown() bool {
	_, ok := kindSet[k]
	return ok
}

func (k Kind) String() string { return string(k) }
