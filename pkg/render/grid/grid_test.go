package grid

import (
	"fmt"
	"testing"
	"time"

	"github.com/ganttgrid/ganttgrid/pkg/gantt"
)

func mustDate(s string) time.Time {
	t, err := gantt.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return t
}

// recorder captures renderer calls in order for assertions.
type recorder struct {
	calls     []string
	finalized bool
}

func (r *recorder) WriteHeaderRow(axis gantt.Axis, dateFormat string) error {
	r.calls = append(r.calls, fmt.Sprintf("header %d dates %s", len(axis), dateFormat))
	return nil
}

func (r *recorder) WriteCell(row, col int, content string, style CellStyle) error {
	r.calls = append(r.calls, fmt.Sprintf("cell %d,%d %q bold=%v fill=%s", row, col, content, style.Bold, style.Fill))
	return nil
}

func (r *recorder) Finalize() error {
	r.finalized = true
	return nil
}

func TestDrawCallSequence(t *testing.T) {
	tasks := []gantt.Task{
		{Description: "Research", Start: mustDate("2021-01-06"), End: mustDate("2021-01-12"), Duration: 5},
	}
	policy, _ := gantt.NewPolicy([]string{"saturday", "sunday"}, nil)
	axis, _ := gantt.AxisForTasks(tasks, policy)
	placements, _ := gantt.Resolve(tasks, axis)

	rec := &recorder{}
	if err := Draw(axis, placements, rec, WithSymbol("x"), WithFillColor("aabbcc")); err != nil {
		t.Fatalf("Draw: %v", err)
	}

	want := []string{
		"header 5 dates " + DefaultDateFormat,
		`cell 1,0 "Research" bold=true fill=`,
		`cell 1,1 "x" bold=false fill=aabbcc`,
		`cell 1,2 "x" bold=false fill=aabbcc`,
		`cell 1,3 "x" bold=false fill=aabbcc`,
		`cell 1,4 "x" bold=false fill=aabbcc`,
		`cell 1,5 "x" bold=false fill=aabbcc`,
	}
	if len(rec.calls) != len(want) {
		t.Fatalf("calls = %d, want %d:\n%v", len(rec.calls), len(want), rec.calls)
	}
	for i, w := range want {
		if rec.calls[i] != w {
			t.Errorf("call[%d] = %q, want %q", i, rec.calls[i], w)
		}
	}
	if !rec.finalized {
		t.Error("Finalize was not called")
	}
}

func TestDrawDefaults(t *testing.T) {
	tasks := []gantt.Task{
		{Description: "One", Start: mustDate("2021-01-06"), End: mustDate("2021-01-06"), Duration: 1},
	}
	axis, _ := gantt.AxisForTasks(tasks, gantt.Policy{})
	placements, _ := gantt.Resolve(tasks, axis)

	rec := &recorder{}
	if err := Draw(axis, placements, rec); err != nil {
		t.Fatalf("Draw: %v", err)
	}

	wantBar := `cell 1,1 "" bold=false fill=` + DefaultFillColor
	if rec.calls[2] != wantBar {
		t.Errorf("bar cell = %q, want %q", rec.calls[2], wantBar)
	}
}

func TestRowsAndCols(t *testing.T) {
	placements := []gantt.Placement{
		{Row: 0, StartCol: 1, EndCol: 2},
		{Row: 3, StartCol: 1, EndCol: 2},
	}
	if got := Rows(placements); got != 5 {
		t.Errorf("Rows = %d, want 5", got)
	}
	if got := Rows(nil); got != 1 {
		t.Errorf("Rows(nil) = %d, want 1", got)
	}

	axis := make(gantt.Axis, 7)
	if got := Cols(axis); got != 8 {
		t.Errorf("Cols = %d, want 8", got)
	}
}
