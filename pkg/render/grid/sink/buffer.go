package sink

import (
	"github.com/ganttgrid/ganttgrid/pkg/gantt"
	"github.com/ganttgrid/ganttgrid/pkg/render/grid"
)

// Cell is one buffered grid cell.
type Cell struct {
	Content string
	Style   grid.CellStyle
}

type cellKey struct{ row, col int }

// Buffer accumulates renderer calls so a sink can emit its artifact in one
// pass during Finalize. It implements the WriteHeaderRow and WriteCell
// halves of [grid.Renderer]; embedding sinks add Finalize.
type Buffer struct {
	cells      map[cellKey]Cell
	rows, cols int
	axis       gantt.Axis
	dateFormat string
}

// WriteHeaderRow records the axis and writes each formatted date as a bold
// cell at grid row 0, columns 1..len(axis).
func (b *Buffer) WriteHeaderRow(axis gantt.Axis, dateFormat string) error {
	b.axis = axis
	b.dateFormat = dateFormat
	for i, d := range axis {
		if err := b.WriteCell(0, i+1, d.Format(dateFormat), grid.CellStyle{Bold: true}); err != nil {
			return err
		}
	}
	return nil
}

// WriteCell buffers a single cell and grows the tracked grid dimensions.
func (b *Buffer) WriteCell(row, col int, content string, style grid.CellStyle) error {
	if b.cells == nil {
		b.cells = make(map[cellKey]Cell)
	}
	b.cells[cellKey{row, col}] = Cell{Content: content, Style: style}
	if row+1 > b.rows {
		b.rows = row + 1
	}
	if col+1 > b.cols {
		b.cols = col + 1
	}
	return nil
}

// At returns the buffered cell at (row, col), if any.
func (b *Buffer) At(row, col int) (Cell, bool) {
	c, ok := b.cells[cellKey{row, col}]
	return c, ok
}

// Rows and Cols report the grid dimensions implied by the buffered cells.
func (b *Buffer) Rows() int { return b.rows }

// Cols reports the number of grid columns, including the label column.
func (b *Buffer) Cols() int { return b.cols }

// Axis returns the axis recorded by WriteHeaderRow.
func (b *Buffer) Axis() gantt.Axis { return b.axis }

// DateFormat returns the date layout recorded by WriteHeaderRow.
func (b *Buffer) DateFormat() string { return b.dateFormat }
