// Package table loads task tables from CSV and TOML files.
//
// Loading is where all schema validation happens: required columns must be
// present, no field may be empty, dates must parse, and every task must
// start on or before its end date. A violation is a SCHEMA_ERROR and aborts
// the load before any layout computation — the core only ever sees valid
// tables.
//
// # CSV
//
// CSV files carry a header row; the [Schema] maps the chart's four required
// fields to column names, so tables exported from arbitrary tools load
// without editing:
//
//	schema := table.Schema{
//	    Description: "TASK",
//	    Start:       "START DATE",
//	    End:         "END DATE",
//	    Duration:    "DURATION (days)",
//	}
//	tasks, err := table.LoadCSVFile("plan.csv", schema)
//
// # TOML
//
// TOML files carry the tasks and, optionally, the chart options in one
// document:
//
//	[chart]
//	weekend = ["saturday", "sunday"]
//	holidays = ["2021-01-01"]
//
//	[[task]]
//	description = "Research"
//	start = "2021-01-06"
//	end = "2021-01-12"
//	duration = 5
//
// Dates use the YYYY-MM-DD layout in both formats.
package table
