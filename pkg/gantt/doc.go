// Package gantt implements the chart core: calendar axis construction and
// task layout resolution.
//
// The package is pure — no I/O, no shared state. Each invocation takes an
// immutable task table and exclusion policy and returns freshly derived
// structures, so it is trivially reentrant.
//
// # Pipeline
//
// A chart is computed in two passes:
//
//  1. [BuildAxis] enumerates the calendar dates between the overall minimum
//     start date and maximum end date, dropping weekend days and holidays
//     according to a [Policy]. The result is an [Axis]: the ordered dates
//     that become the chart's columns.
//  2. [Resolve] assigns each [Task] a row (ranked by the earliest start date
//     of its description) and a column span (by locating its start and end
//     dates within the axis). The result is one [Placement] per task, ready
//     to hand to a renderer.
//
// # Grid Coordinates
//
// Placements address a grid in which row 0 is the date header, column 0 is
// reserved for row labels, and grid column k+1 shows the axis date at index
// k. A placement's span is half-open: [StartCol, EndCol) covers the start
// date's column through the end date's column inclusive.
//
// # Excluded Dates
//
// A task whose start or end date was filtered out of the axis (it falls on a
// weekend or holiday) cannot be placed. [Resolve] reports this as a
// DATE_OFF_AXIS error rather than mis-rendering the span; callers decide
// whether to adjust the task or the policy.
//
// # Example
//
//	policy, _ := gantt.NewPolicy([]string{"saturday", "sunday"}, nil)
//	axis, _ := gantt.AxisForTasks(tasks, policy)
//	placements, err := gantt.Resolve(tasks, axis)
package gantt
