package grid

import (
	"github.com/ganttgrid/ganttgrid/pkg/gantt"
)

// Defaults matching the configuration surface: day-month-year dates and the
// orange bar fill, with no in-bar symbol.
const (
	DefaultDateFormat = "02-01-2006"
	DefaultFillColor  = "f79646"
)

// CellStyle carries the formatting for a single cell. Renderers are free to
// approximate (a text renderer has no background colors).
type CellStyle struct {
	Bold bool   // bold text, used for header dates and row labels
	Fill string // background color as hex RGB without '#', empty for none
}

// Renderer is the external collaborator that materializes a chart. The core
// calls it with fully resolved coordinates and never inspects the artifact.
type Renderer interface {
	// WriteHeaderRow writes the date header: one column per axis date at
	// grid row 0, starting at column 1, formatted with dateFormat.
	WriteHeaderRow(axis gantt.Axis, dateFormat string) error

	// WriteCell writes a single grid cell at (row, col).
	WriteCell(row, col int, content string, style CellStyle) error

	// Finalize flushes and closes the output artifact. No further writes
	// may follow.
	Finalize() error
}

// Option configures a Draw call.
type Option func(*driver)

type driver struct {
	dateFormat string
	fill       string
	symbol     string
}

// WithDateFormat sets the Go time layout used for the header row dates.
func WithDateFormat(layout string) Option {
	return func(d *driver) {
		if layout != "" {
			d.dateFormat = layout
		}
	}
}

// WithFillColor sets the bar background color (hex RGB without '#').
func WithFillColor(hex string) Option {
	return func(d *driver) {
		if hex != "" {
			d.fill = hex
		}
	}
}

// WithSymbol sets the in-bar symbol written into every shaded cell.
// The default is blank: the bar is pure background color.
func WithSymbol(s string) Option {
	return func(d *driver) { d.symbol = s }
}

// Rows returns the number of grid rows needed for the placements, including
// the header row.
func Rows(placements []gantt.Placement) int {
	rows := 0
	for _, p := range placements {
		if p.Row+2 > rows {
			rows = p.Row + 2
		}
	}
	if rows < 1 {
		rows = 1
	}
	return rows
}

// Cols returns the number of grid columns: the label column plus one per
// axis date.
func Cols(axis gantt.Axis) int { return len(axis) + 1 }

// Draw drives a Renderer over the resolved chart: the date header, then for
// each placement its row label at column 0 and its shaded span cells.
// Placements are visited in input order and spans left to right, so output
// is deterministic. Finalize is called once after all cells are written.
func Draw(axis gantt.Axis, placements []gantt.Placement, r Renderer, opts ...Option) error {
	d := driver{dateFormat: DefaultDateFormat, fill: DefaultFillColor}
	for _, opt := range opts {
		opt(&d)
	}

	if err := r.WriteHeaderRow(axis, d.dateFormat); err != nil {
		return err
	}

	for _, p := range placements {
		if err := r.WriteCell(p.Row+1, gantt.LabelColumn, p.Label, CellStyle{Bold: true}); err != nil {
			return err
		}
		for col := p.StartCol; col < p.EndCol; col++ {
			if err := r.WriteCell(p.Row+1, col, d.symbol, CellStyle{Fill: d.fill}); err != nil {
				return err
			}
		}
	}

	return r.Finalize()
}
