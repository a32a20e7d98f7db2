package sheetengine

// tokenize scans expr (the text following the leading '=') into a token stream: a single forward
// pass classifying runs of digits (with an optional decimal point and exponent suffix) as
// numbers, runs of letters-then-digits as cell references, and single characters via a lookup
// table.
func tokenize(expr string) ([]token, error) {
	runes := []rune(expr)
	var tokens []token
	for i := 0; i < len(runes); i++ {
		if runes[i] == ' ' || runes[i] == '\t' {
			continue
		}
		switch {
		case between(runes[i], '0', '9') || isDecimalStart(runes, i):
			start := i
			sawDot := false
			for i < len(runes) && (between(runes[i], '0', '9') || (runes[i] == '.' && !sawDot)) {
				if runes[i] == '.' {
					sawDot = true
				}
				i++
			}
			i = scanExponent(runes, i)
			tokens = append(tokens, token{kind: tokNumber, text: string(runes[start:i])})
			i--
		case between(runes[i], 'A', 'Z'):
			start := i
			for i < len(runes) && (between(runes[i], '0', '9') || between(runes[i], 'A', 'Z')) {
				i++
			}
			tokens = append(tokens, token{kind: tokCellRef, text: string(runes[start:i])})
			i--
		default:
			if kind, ok := singleCharTokens[byte(runes[i])]; ok {
				tokens = append(tokens, token{kind: kind})
			} else {
				return nil, newFormulaException("unexpected character %q", runes[i])
			}
		}
	}
	return tokens, nil
}

// isDecimalStart reports whether runes[i] begins a number written as ".5" (a leading decimal
// point with no integer part).
func isDecimalStart(runes []rune, i int) bool {
	return runes[i] == '.' && i+1 < len(runes) && between(runes[i+1], '0', '9')
}

// scanExponent extends a number token past an 'e'/'E' exponent suffix (with an optional sign)
// when one is present, e.g. the "e-3" in "1.5e-3". It returns i unchanged if runes[i:] doesn't
// hold a well-formed exponent, so a bare trailing "e" is left for the next token to deal with.
func scanExponent(runes []rune, i int) int {
	if i >= len(runes) || (runes[i] != 'e' && runes[i] != 'E') {
		return i
	}
	j := i + 1
	if j < len(runes) && (runes[j] == '+' || runes[j] == '-') {
		j++
	}
	if j >= len(runes) || !between(runes[j], '0', '9') {
		return i
	}
	for j < len(runes) && between(runes[j], '0', '9') {
		j++
	}
	return j
}

// between is true iff target lies in [lb, ub].
func between(target, lb, ub rune) bool {
	return lb <= target && target <= ub
}
