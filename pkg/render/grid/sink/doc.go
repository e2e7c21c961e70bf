// Package sink provides output format renderers for chart grids.
//
// # Overview
//
// A "sink" is a [grid.Renderer] that materializes the cell stream produced
// by [grid.Draw] into a final artifact. This package provides renderers for:
//
//   - SVG: vector output with colored bar cells
//   - Text: aligned plain-text grid for terminals
//   - CSV: one spreadsheet-like row per chart row
//   - JSON: cell-level data export for external tools
//
// All sinks buffer cells internally and emit the artifact in Finalize, so
// the produced bytes depend only on the cells written — identical input
// yields identical output.
//
// # Usage
//
//	var buf bytes.Buffer
//	r := sink.NewSVG(&buf)
//	if err := grid.Draw(axis, placements, r); err != nil {
//	    return err
//	}
//	// buf now holds the SVG document
//
// # Adding New Formats
//
// To add a new output format, embed [Buffer] for cell bookkeeping and
// implement Finalize. text.go is the smallest complete example.
//
// [grid.Renderer]: github.com/ganttgrid/ganttgrid/pkg/render/grid.Renderer
// [grid.Draw]: github.com/ganttgrid/ganttgrid/pkg/render/grid.Draw
package sink
