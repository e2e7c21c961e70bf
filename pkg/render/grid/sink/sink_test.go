package sink

import (
	"testing"
	"time"

	"github.com/ganttgrid/ganttgrid/pkg/gantt"
	"github.com/ganttgrid/ganttgrid/pkg/render/grid"
)

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := gantt.ParseDate(s)
	if err != nil {
		t.Fatalf("ParseDate(%s): %v", s, err)
	}
	return d
}

// researchChart resolves the canonical one-task chart: seven calendar days
// with the weekend excluded, leaving five columns.
func researchChart(t *testing.T) (gantt.Axis, []gantt.Placement) {
	t.Helper()
	tasks := []gantt.Task{
		{
			Description: "Research",
			Start:       mustDate(t, "2021-01-06"),
			End:         mustDate(t, "2021-01-12"),
			Duration:    5,
		},
	}
	policy, err := gantt.NewPolicy([]string{"saturday", "sunday"}, nil)
	if err != nil {
		t.Fatalf("NewPolicy: %v", err)
	}
	axis, err := gantt.AxisForTasks(tasks, policy)
	if err != nil {
		t.Fatalf("AxisForTasks: %v", err)
	}
	placements, err := gantt.Resolve(tasks, axis)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	return axis, placements
}

func TestBufferDimensions(t *testing.T) {
	var b Buffer
	if err := b.WriteCell(3, 5, "x", grid.CellStyle{}); err != nil {
		t.Fatalf("WriteCell: %v", err)
	}
	if b.Rows() != 4 || b.Cols() != 6 {
		t.Errorf("dims = %dx%d, want 4x6", b.Rows(), b.Cols())
	}
	if _, ok := b.At(0, 0); ok {
		t.Error("At(0,0) found a cell that was never written")
	}
	if c, ok := b.At(3, 5); !ok || c.Content != "x" {
		t.Errorf("At(3,5) = %+v, %v", c, ok)
	}
}

func TestBufferHeaderRow(t *testing.T) {
	axis, _ := researchChart(t)

	var b Buffer
	if err := b.WriteHeaderRow(axis, grid.DefaultDateFormat); err != nil {
		t.Fatalf("WriteHeaderRow: %v", err)
	}

	c, ok := b.At(0, 1)
	if !ok || c.Content != "06-01-2021" || !c.Style.Bold {
		t.Errorf("header cell (0,1) = %+v, %v; want bold 06-01-2021", c, ok)
	}
	if _, ok := b.At(0, 0); ok {
		t.Error("label column has a header cell")
	}
	if b.Cols() != len(axis)+1 {
		t.Errorf("Cols = %d, want %d", b.Cols(), len(axis)+1)
	}
}
