package sheetengine

import (
	"github.com/pkg/errors"
)

// Sentinel errors returned at the public API boundary. Callers should match them with
// errors.Is rather than string comparison.
var (
	// ErrInvalidPosition is returned whenever a public operation is given a Position that
	// fails IsValid.
	ErrInvalidPosition = errors.New("invalid position")

	// ErrCircularDependency is returned by SetCell when accepting the edit would close a
	// cycle in the dependency graph. The sheet is left observably unchanged.
	ErrCircularDependency = errors.New("circular dependency detected")

	// ErrFormulaParse is the sentinel wrapped by every FormulaException produced by the
	// lexer and parser.
	ErrFormulaParse = errors.New("formula parse error")
)

// FormulaException wraps ErrFormulaParse with the offending text, so that lex and syntax
// failures are distinguishable from evaluation-time FormulaErrors: parse failures are Go
// errors, evaluation failures are values, and the two are never conflated.
type FormulaException struct {
	cause error
}

func newFormulaException(format string, args ...any) error {
	return FormulaException{cause: errors.Wrapf(ErrFormulaParse, format, args...)}
}

func (f FormulaException) Error() string { return f.cause.Error() }

func (f FormulaException) Unwrap() error { return f.cause }

// invalidPositionErr renders ErrInvalidPosition with the offending position for diagnosability.
func invalidPositionErr(pos Position) error {
	return errors.Wrapf(ErrInvalidPosition, "row=%d col=%d", pos.Row, pos.Col)
}

// errorsIsInvalidPosition reports whether err wraps ErrInvalidPosition, used by the parser to
// tell "out of grid range" (a Ref-error-at-eval-time concern) apart from a genuine syntax
// failure in the cell-reference text.
func errorsIsInvalidPosition(err error) bool {
	return errors.Is(err, ErrInvalidPosition)
}
