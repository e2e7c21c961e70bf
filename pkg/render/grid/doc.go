// Package grid defines the renderer contract and the driver that turns
// resolved placements into renderer calls.
//
// # Architecture
//
// The chart core (pkg/gantt) never touches output formats or formatting
// state. It hands its results to a [Renderer], the single collaborator
// interface every output format implements:
//
//   - WriteHeaderRow: one column per axis date, formatted per the
//     configured date layout
//   - WriteCell: a single grid cell, used for row labels (column 0) and
//     shaded task-span cells
//   - Finalize: flush the output artifact
//
// [Draw] is the only caller of a Renderer. It walks the axis and the
// placements in a deterministic order, so two runs over the same input
// produce byte-identical artifacts from any deterministic Renderer.
//
// # Options
//
//	err := grid.Draw(axis, placements, renderer,
//	    grid.WithDateFormat("02-01-2006"),
//	    grid.WithFillColor("f79646"),
//	    grid.WithSymbol("x"),
//	)
//
// Concrete renderers live in the sink subpackage (SVG, text, JSON, CSV).
package grid
