package sheetengine

import (
	"io"

	"github.com/rs/zerolog"
	"golang.org/x/exp/maps"
)

// Sheet is a sparse grid of Cells plus the bookkeeping (cached values, dependency edges,
// printable extents) that backs it. The zero value is not usable; construct one with NewSheet.
type Sheet struct {
	data  map[Position]*Cell
	cache map[Position]Value

	// deps maps a formula cell's position to the ordered, deduplicated list of positions it
	// directly references (forward edges).
	deps map[Position][]Position

	// referredFrom is the inverse of deps: for a position p, the set of positions whose
	// formula directly references p. Used to walk dependents for cache invalidation and to keep
	// each cell's IsReferenced flag current; the cycle detector walks deps, not this index.
	referredFrom map[Position]map[Position]struct{}

	height, width int

	log zerolog.Logger
}

// NewSheet constructs an empty Sheet. By default it logs nothing; pass WithLogger to observe
// cycle rejections and cache-invalidation sweeps.
func NewSheet(opts ...Option) *Sheet {
	s := &Sheet{
		data:         make(map[Position]*Cell),
		cache:        make(map[Position]Value),
		deps:         make(map[Position][]Position),
		referredFrom: make(map[Position]map[Position]struct{}),
		log:          zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// lookup resolves pos to its current Value for formula evaluation: an invalid position is a
// Ref error, an absent position is empty text, and a materialized cell yields its own
// (possibly recursively evaluated) GetValue.
func (s *Sheet) lookup(pos Position) Value {
	if !pos.IsValid() {
		return ErrorValue(CategoryRef)
	}
	cell, ok := s.data[pos]
	if !ok {
		return TextValue("")
	}
	return cell.GetValue()
}

// SetCell validates pos, applies text to the cell (creating one if absent), records the
// resulting dependency edges, and rejects the whole edit — restoring the prior text and edges —
// if doing so would close a cycle.
func (s *Sheet) SetCell(pos Position, text string) error {
	if !pos.IsValid() {
		return invalidPositionErr(pos)
	}

	cell, existed := s.data[pos]
	if !existed {
		cell = newCell(s)
	}
	oldText := cell.GetText()

	if err := cell.Set(text); err != nil {
		return err
	}

	newRefs := cell.GetReferencedCells()
	s.setDeps(pos, newRefs)

	if hasCyclicDependency(s.deps, pos) {
		_ = cell.Set(oldText) // old text is always re-parsable; restores kind/text/formula
		s.setDeps(pos, cell.GetReferencedCells())
		s.log.Debug().Stringer("pos", pos).Str("text", text).Msg("rejected edit: circular dependency")
		return ErrCircularDependency
	}

	if !existed {
		s.data[pos] = cell
		cell.setReferenced(len(s.referredFrom[pos]) > 0)
	}
	if pos.Row+1 > s.height {
		s.height = pos.Row + 1
	}
	if pos.Col+1 > s.width {
		s.width = pos.Col + 1
	}

	s.cache[pos] = cell.GetValue()
	s.invalidateDependents(pos)
	return nil
}

// setDeps replaces the forward edges recorded for pos with newDeps, maintaining the inverse
// referredFrom index and each target cell's derived IsReferenced flag.
func (s *Sheet) setDeps(pos Position, newDeps []Position) {
	for _, old := range s.deps[pos] {
		refs, ok := s.referredFrom[old]
		if !ok {
			continue
		}
		delete(refs, pos)
		if len(refs) == 0 {
			delete(s.referredFrom, old)
			if c, ok := s.data[old]; ok {
				c.setReferenced(false)
			}
		}
	}

	if len(newDeps) == 0 {
		delete(s.deps, pos)
		return
	}

	cp := append([]Position(nil), newDeps...)
	s.deps[pos] = cp
	for _, ref := range cp {
		if s.referredFrom[ref] == nil {
			s.referredFrom[ref] = make(map[Position]struct{})
		}
		s.referredFrom[ref][pos] = struct{}{}
		if c, ok := s.data[ref]; ok {
			c.setReferenced(true)
		}
	}
}

// invalidateDependents refreshes cache[d] for every position d transitively reachable by
// following referredFrom edges from pos (i.e. every cell that directly or indirectly
// references pos), so the cache always reflects the current computation rather than the last
// write to that exact cell.
func (s *Sheet) invalidateDependents(pos Position) {
	visited := map[Position]struct{}{pos: {}}
	queue := []Position{pos}
	touched := 0
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, dependent := range maps.Keys(s.referredFrom[cur]) {
			if _, ok := visited[dependent]; ok {
				continue
			}
			visited[dependent] = struct{}{}
			queue = append(queue, dependent)
			touched++
			if c, ok := s.data[dependent]; ok {
				s.cache[dependent] = c.GetValue()
			} else {
				delete(s.cache, dependent)
			}
		}
	}
	if touched > 0 {
		s.log.Debug().Stringer("origin", pos).Int("dependents_refreshed", touched).Msg("refreshed transitive cache")
	}
}

// GetCell returns the materialized cell at pos, or nil if pos has never been set (or has since
// been cleared).
func (s *Sheet) GetCell(pos Position) (*Cell, error) {
	if !pos.IsValid() {
		return nil, invalidPositionErr(pos)
	}
	return s.data[pos], nil
}

// GetConcreteCell is an alias of GetCell, kept for callers that distinguish a polymorphic
// cell-interface accessor from one returning the concrete Cell type; Go's single Cell struct
// makes the distinction moot, but both names resolve to the same lookup.
func (s *Sheet) GetConcreteCell(pos Position) (*Cell, error) {
	return s.GetCell(pos)
}

// ClearCell removes the cell at pos (and its cache and dependency entries), invalidates any
// dependents' cached values, and recomputes the printable extents by scanning what remains.
func (s *Sheet) ClearCell(pos Position) error {
	if !pos.IsValid() {
		return invalidPositionErr(pos)
	}
	if _, ok := s.data[pos]; !ok {
		return nil
	}
	delete(s.data, pos)
	delete(s.cache, pos)
	s.setDeps(pos, nil)
	s.invalidateDependents(pos)
	s.recomputeExtents()
	return nil
}

// recomputeExtents scans the remaining cells to find the smallest (0,0)-anchored rectangle
// containing all of them, per invariant 1: empty data implies a 0x0 rectangle.
func (s *Sheet) recomputeExtents() {
	height, width := 0, 0
	for _, pos := range maps.Keys(s.data) {
		if pos.Row+1 > height {
			height = pos.Row + 1
		}
		if pos.Col+1 > width {
			width = pos.Col + 1
		}
	}
	s.height, s.width = height, width
}

// GetPrintableSize returns the current printable rectangle's (height, width).
func (s *Sheet) GetPrintableSize() (height, width int) {
	return s.height, s.width
}

// PrintValues writes the sheet's printable rectangle row-major to w: each cell's value
// (numbers in host-default format, text verbatim, errors as their symbolic literal), columns
// tab-separated, rows newline-terminated.
func (s *Sheet) PrintValues(w io.Writer) error {
	return s.print(w, func(c *Cell) string {
		if c == nil {
			return ""
		}
		return c.GetValue().String()
	})
}

// PrintTexts writes the sheet's printable rectangle row-major to w: each cell's source text,
// columns tab-separated, rows newline-terminated.
func (s *Sheet) PrintTexts(w io.Writer) error {
	return s.print(w, func(c *Cell) string {
		if c == nil {
			return ""
		}
		return c.GetText()
	})
}

func (s *Sheet) print(w io.Writer, render func(*Cell) string) error {
	for row := 0; row < s.height; row++ {
		for col := 0; col < s.width; col++ {
			cell := s.data[Position{Row: row, Col: col}]
			if _, err := io.WriteString(w, render(cell)); err != nil {
				return err
			}
			if col < s.width-1 {
				if _, err := io.WriteString(w, "\t"); err != nil {
					return err
				}
			}
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}

// GetCachedValue returns the most recently computed Value for pos, or empty text if pos has
// never been set.
func (s *Sheet) GetCachedValue(pos Position) (Value, error) {
	if !pos.IsValid() {
		return Value{}, invalidPositionErr(pos)
	}
	v, ok := s.cache[pos]
	if !ok {
		return TextValue(""), nil
	}
	return v, nil
}

// GetReferencedPositions returns the direct dependency list recorded for pos, or nil if pos
// has no formula (or has never been set).
func (s *Sheet) GetReferencedPositions(pos Position) ([]Position, error) {
	if !pos.IsValid() {
		return nil, invalidPositionErr(pos)
	}
	return append([]Position(nil), s.deps[pos]...), nil
}
