package radial

import (
	"iter"

	"github.com/gogpu/radial/internal/coverage"
)

// Cell is one coverage change within a scanline.
//
// Coverage is the signed change of the running coverage as the scan crosses
// the cell, with 255 standing for one full pixel height. Area is the signed
// part of that change that falls inside pixel X itself, scaled by 512.
type Cell = coverage.Cell

// NoCell terminates a row's cell list.
const NoCell = coverage.NoCell

// RowTable holds the coverage cells of a range of scanlines. The cells of
// every row form a singly linked list, ordered by strictly ascending X,
// stored in one shared arena.
type RowTable struct {
	cells []Cell
	heads []int32

	// hint is the last cell touched on row hintY.
	hintY int
	hint  int32
}

// NewRowTable creates an empty table for rows [0, rows).
func NewRowTable(rows int) *RowTable {
	t := &RowTable{heads: make([]int32, rows)}
	t.Reset()
	return t
}

// Len returns the number of rows.
func (t *RowTable) Len() int {
	return len(t.heads)
}

// NumCells returns the number of cells across all rows.
func (t *RowTable) NumCells() int {
	return len(t.cells)
}

// Reset empties every row, keeping the allocated arena.
func (t *RowTable) Reset() {
	t.cells = t.cells[:0]
	for i := range t.heads {
		t.heads[i] = NoCell
	}
	t.hintY = -1
	t.hint = NoCell
}

// Add accumulates a coverage change at (x, y). A cell already present at
// x absorbs the change; otherwise a new cell is linked in X order. Rows
// outside the table are ignored.
//
// Adding cells of one row left to right runs in constant time per cell.
func (t *RowTable) Add(y, x int, area, cover int32) {
	if y < 0 || y >= len(t.heads) {
		return
	}
	x32 := int32(x) //nolint:gosec // G115: columns fit in int32

	prev, cur := NoCell, t.heads[y]
	if y == t.hintY && t.hint != NoCell && t.cells[t.hint].X <= x32 {
		cur = t.hint
	}
	for cur != NoCell && t.cells[cur].X < x32 {
		prev, cur = cur, t.cells[cur].Next
	}

	if cur != NoCell && t.cells[cur].X == x32 {
		t.cells[cur].Area += area
		t.cells[cur].Coverage += cover
		t.hintY, t.hint = y, cur
		return
	}

	idx := int32(len(t.cells)) //nolint:gosec // G115: arena size fits in int32
	t.cells = append(t.cells, Cell{X: x32, Area: area, Coverage: cover, Next: cur})
	if prev == NoCell {
		t.heads[y] = idx
	} else {
		t.cells[prev].Next = idx
	}
	t.hintY, t.hint = y, idx
}

// Row returns row y. Rows outside the table are empty.
func (t *RowTable) Row(y int) Row {
	if y < 0 || y >= len(t.heads) {
		return Row{head: NoCell}
	}
	return Row{cells: t.cells, head: t.heads[y]}
}

// Cells returns the cell arena. Row lists index into it.
func (t *RowTable) Cells() []Cell {
	return t.cells
}

// Row is either empty or the head of a scanline's cell list.
type Row struct {
	cells []Cell
	head  int32
}

// Empty reports whether the row has no cells.
func (r Row) Empty() bool {
	return r.head == NoCell || len(r.cells) == 0
}

// Head returns the arena index of the first cell, or NoCell.
func (r Row) Head() int32 {
	if r.Empty() {
		return NoCell
	}
	return r.head
}

// All yields the row's cells in ascending X order.
func (r Row) All() iter.Seq[Cell] {
	return func(yield func(Cell) bool) {
		for i := r.Head(); i != NoCell; i = r.cells[i].Next {
			if !yield(r.cells[i]) {
				return
			}
		}
	}
}
