package sheetengine

// cellKind discriminates the three variants a Cell can hold: Empty, Text, Formula.
type cellKind int

const (
	cellEmpty cellKind = iota
	cellText
	cellFormula
)

// Cell is the unit of storage at one grid position. It never outlives the Sheet that created
// it — sheet is a non-owning back-reference used only to resolve references during formula
// evaluation.
type Cell struct {
	sheet *Sheet
	kind  cellKind

	// text is the cell's GetText() result: verbatim for Text cells (including any leading
	// apostrophe escape), and the canonical "=" + printed-expression form for Formula cells.
	text string

	formula *Formula // non-nil only when kind == cellFormula

	referenced bool // derived: true once some other cell's formula references this position
}

func newCell(sheet *Sheet) *Cell {
	return &Cell{sheet: sheet, kind: cellEmpty}
}

// Set assigns new content to the cell. An empty string clears it to Empty; a leading '=' followed
// by at least one more character parses the rest as a formula (returning the parser's
// FormulaException unmodified, and leaving the cell's prior state untouched, on failure);
// anything else becomes literal Text.
func (c *Cell) Set(text string) error {
	if text == "" {
		c.kind = cellEmpty
		c.text = ""
		c.formula = nil
		return nil
	}
	if text[0] == '=' && len(text) > 1 {
		f, err := ParseFormula(text[1:])
		if err != nil {
			return err
		}
		c.kind = cellFormula
		c.formula = f
		c.text = "=" + f.GetExpression()
		return nil
	}
	c.kind = cellText
	c.text = text
	c.formula = nil
	return nil
}

// Clear resets the cell to Empty; equivalent to Set("").
func (c *Cell) Clear() error {
	return c.Set("")
}

// GetValue returns the cell's current value: empty text for Empty, the literal (minus any
// leading apostrophe escape) for Text, and the formula's evaluation for Formula.
func (c *Cell) GetValue() Value {
	switch c.kind {
	case cellText:
		if len(c.text) > 0 && c.text[0] == '\'' {
			return TextValue(c.text[1:])
		}
		return TextValue(c.text)
	case cellFormula:
		return c.formula.Evaluate(c.sheet.lookup)
	default:
		return TextValue("")
	}
}

// GetText returns the cell's source text.
func (c *Cell) GetText() string {
	if c.kind == cellEmpty {
		return ""
	}
	return c.text
}

// GetReferencedCells returns the positions this cell's formula references, or nil for
// non-formula cells.
func (c *Cell) GetReferencedCells() []Position {
	if c.kind != cellFormula {
		return nil
	}
	return c.formula.GetReferencedCells()
}

// IsReferenced reports whether some other cell's formula currently references this cell's
// position. The sheet keeps this derived flag current but does not consult it itself: cache
// invalidation walks the dependency index for every cell, referenced or not.
func (c *Cell) IsReferenced() bool { return c.referenced }

func (c *Cell) setReferenced(state bool) { c.referenced = state }
