package sheetengine

import "strconv"

// ErrorCategory tags the kind of failure a formula evaluation produced. Values are ordered by
// precedence: Ref outranks Value outranks Arithmetic, used when an operator sees operand errors
// of more than one category.
type ErrorCategory int

const (
	CategoryRef ErrorCategory = iota
	CategoryValue
	CategoryArithmetic
)

// rank gives each category a precedence number; lower wins when two errors meet at one
// operator. Ref is the most informative failure (a dangling/invalid reference), so it always
// wins over a Value error, which in turn wins over a merely-numeric Arithmetic error.
func (c ErrorCategory) rank() int {
	switch c {
	case CategoryRef:
		return 0
	case CategoryValue:
		return 1
	default:
		return 2
	}
}

// String renders the symbolic literal used on print streams and in FormulaError.Error().
func (c ErrorCategory) String() string {
	switch c {
	case CategoryRef:
		return "#REF!"
	case CategoryValue:
		return "#VALUE!"
	case CategoryArithmetic:
		return "#ARITHM!"
	default:
		return "#ARITHM!"
	}
}

// FormulaError is the value-level failure a formula evaluation can produce. Unlike
// FormulaException (a Go error raised by the parser), FormulaError never escapes evaluation as
// an exception — it is carried inside Value.
type FormulaError struct {
	Category ErrorCategory
}

func (e FormulaError) Error() string { return e.Category.String() }

// higherPrecedence returns whichever of a, b should win when an operator observes both as
// operand errors.
func higherPrecedence(a, b FormulaError) FormulaError {
	if a.Category.rank() <= b.Category.rank() {
		return a
	}
	return b
}

// ValueKind discriminates the arms of Value.
type ValueKind int

const (
	KindText ValueKind = iota
	KindNumber
	KindError
)

// Value is the tagged union a cell or a formula evaluation produces: exactly one of Text,
// Number, or Error applies, selected by Kind.
type Value struct {
	Kind   ValueKind
	Text   string
	Number float64
	Err    FormulaError
}

// TextValue builds a Value holding literal text.
func TextValue(s string) Value { return Value{Kind: KindText, Text: s} }

// NumberValue builds a Value holding a finite number.
func NumberValue(n float64) Value { return Value{Kind: KindNumber, Number: n} }

// ErrorValue builds a Value holding a formula error of the given category.
func ErrorValue(cat ErrorCategory) Value { return Value{Kind: KindError, Err: FormulaError{Category: cat}} }

// String renders the value the way PrintValues does: numbers in the host's default decimal
// format, text verbatim, errors as their symbolic literal.
func (v Value) String() string {
	switch v.Kind {
	case KindNumber:
		return strconv.FormatFloat(v.Number, 'g', -1, 64)
	case KindError:
		return v.Err.Category.String()
	default:
		return v.Text
	}
}

// AsNumber attempts to coerce the value to a number the way formula evaluation does: numbers
// pass through, text is parsed as a float (failure yields a Value error), and errors propagate.
func (v Value) AsNumber() (float64, *FormulaError) {
	switch v.Kind {
	case KindNumber:
		return v.Number, nil
	case KindError:
		return 0, &v.Err
	default:
		n, err := strconv.ParseFloat(v.Text, 64)
		if err != nil {
			fe := FormulaError{Category: CategoryValue}
			return 0, &fe
		}
		return n, nil
	}
}
