package gantt

import (
	"time"

	"github.com/ganttgrid/ganttgrid/pkg/errors"
)

// Task is one row of the input table. Description labels the task's chart
// row and need not be unique: tasks sharing a description share a row.
// Duration is informational only; the rendered span is derived from the
// start and end dates.
type Task struct {
	Description string
	Start       time.Time
	End         time.Time
	Duration    int // days, as given in the input table
}

// Validate checks the per-task invariants: no empty fields and Start <= End.
// Violations are SCHEMA_ERRORs, matching the table-level validation.
func (t Task) Validate() error {
	if t.Description == "" {
		return errors.New(errors.ErrCodeSchema, "task has an empty description")
	}
	if t.Start.IsZero() || t.End.IsZero() {
		return errors.New(errors.ErrCodeSchema, "task %q has a missing date", t.Description)
	}
	if day(t.Start).After(day(t.End)) {
		return errors.New(errors.ErrCodeSchema, "task %q starts %s after it ends %s",
			t.Description, t.Start.Format(DateLayout), t.End.Format(DateLayout))
	}
	return nil
}

// ValidateTasks validates every task in the table, failing fast on the
// first violation. Layout never runs over a partially valid table.
func ValidateTasks(tasks []Task) error {
	for _, t := range tasks {
		if err := t.Validate(); err != nil {
			return err
		}
	}
	return nil
}
