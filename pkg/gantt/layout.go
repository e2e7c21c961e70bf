package gantt

import (
	"slices"
	"time"

	"github.com/ganttgrid/ganttgrid/pkg/errors"
)

// LabelColumn is the grid column reserved for row labels. Axis date k is
// shown at grid column k+1.
const LabelColumn = 0

// Placement is the resolved grid position for one task: its row, the
// half-open range of shaded columns, and the label to write at column 0.
//
// Rows are a dense 0-based ranking of distinct descriptions by ascending
// earliest start date. The date header occupies grid row 0, so renderers
// draw a placement at grid row Row+1.
type Placement struct {
	Row      int    // 0-based task row (header row excluded)
	StartCol int    // first shaded grid column: axis index of Start, plus 1
	EndCol   int    // one past the last shaded column: axis index of End, plus 2
	Label    string // task description
}

// Columns returns the number of shaded columns in the span.
func (p Placement) Columns() int { return p.EndCol - p.StartCol }

// Resolve maps each task onto the axis, producing one Placement per input
// task in input order.
//
// Row assignment groups tasks by description: each distinct description is
// ranked by the minimum start date among its occurrences, ties broken by
// first appearance in the input. The ordering is deterministic across runs
// on identical input.
//
// Column assignment locates each task's start and end dates in the axis.
// The span covers the start date's column through the end date's column
// inclusive, expressed as the half-open grid range [StartCol, EndCol).
// Excluded dates inside the span simply have no column, so a task spanning
// a weekend occupies fewer columns than its calendar length.
//
// Resolve fails with EMPTY_AXIS when the axis has no dates, and with
// DATE_OFF_AXIS when a task's start or end date was excluded from the axis.
// No placements are returned alongside an error.
func Resolve(tasks []Task, axis Axis) ([]Placement, error) {
	if err := ValidateTasks(tasks); err != nil {
		return nil, err
	}
	if len(axis) == 0 {
		return nil, errors.New(errors.ErrCodeEmptyAxis,
			"axis has no dates; every day in range is excluded")
	}

	rows := rankRows(tasks)

	placements := make([]Placement, 0, len(tasks))
	for _, t := range tasks {
		start, ok := axis.Index(t.Start)
		if !ok {
			return nil, offAxisErr(t, "start", t.Start)
		}
		end, ok := axis.Index(t.End)
		if !ok {
			return nil, offAxisErr(t, "end", t.End)
		}
		placements = append(placements, Placement{
			Row:      rows[t.Description],
			StartCol: start + 1,
			EndCol:   end + 2,
			Label:    t.Description,
		})
	}
	return placements, nil
}

// rankRows assigns each distinct description a dense 0-based row, ordered by
// the minimum start date among the description's tasks. Ties keep the order
// in which the descriptions first appear in the input.
func rankRows(tasks []Task) map[string]int {
	type group struct {
		desc     string
		minStart time.Time
		first    int // index of first appearance, the tie-break key
	}

	byDesc := make(map[string]*group, len(tasks))
	var groups []*group
	for i, t := range tasks {
		g, ok := byDesc[t.Description]
		if !ok {
			g = &group{desc: t.Description, minStart: day(t.Start), first: i}
			byDesc[t.Description] = g
			groups = append(groups, g)
			continue
		}
		if s := day(t.Start); s.Before(g.minStart) {
			g.minStart = s
		}
	}

	slices.SortFunc(groups, func(a, b *group) int {
		if a.minStart.Before(b.minStart) {
			return -1
		}
		if a.minStart.After(b.minStart) {
			return 1
		}
		return a.first - b.first
	})

	rows := make(map[string]int, len(groups))
	for row, g := range groups {
		rows[g.desc] = row
	}
	return rows
}

func offAxisErr(t Task, which string, date time.Time) error {
	return errors.New(errors.ErrCodeDateOffAxis,
		"task %q: %s date %s (%s) is not on the axis; it falls on an excluded day",
		t.Description, which, date.Format(DateLayout), weekdayOf(date))
}
