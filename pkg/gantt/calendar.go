package gantt

import (
	"strings"
	"time"

	"github.com/ganttgrid/ganttgrid/pkg/errors"
)

// DateLayout is the canonical layout for parsing and keying calendar dates.
const DateLayout = "2006-01-02"

// =============================================================================
// Weekday - Explicit Day-Name Enumeration
// =============================================================================

// Weekday identifies a day of the week, Monday through Sunday.
// The zero value is Monday, matching ISO 8601 ordering.
type Weekday int

// The seven canonical weekdays.
const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

// weekdayNames is the canonical lowercase spelling for each Weekday.
var weekdayNames = [...]string{
	"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday",
}

// String returns the lowercase name of the weekday (e.g., "monday").
func (d Weekday) String() string {
	if d < Monday || d > Sunday {
		return "invalid"
	}
	return weekdayNames[d]
}

// ParseWeekday parses a case-insensitive weekday name.
// Returns an INVALID_POLICY error for anything outside monday..sunday.
func ParseWeekday(name string) (Weekday, error) {
	lower := strings.ToLower(strings.TrimSpace(name))
	for i, n := range weekdayNames {
		if n == lower {
			return Weekday(i), nil
		}
	}
	return 0, errors.New(errors.ErrCodeInvalidPolicy, "unknown weekday name: %q", name)
}

// weekdayOf converts a calendar date to its Weekday.
// time.Weekday counts Sunday=0..Saturday=6; shift to Monday=0..Sunday=6.
func weekdayOf(t time.Time) Weekday {
	return Weekday((int(t.Weekday()) + 6) % 7)
}

// =============================================================================
// Policy - Weekend and Holiday Exclusions
// =============================================================================

// DefaultWeekend is the weekend used when none is configured.
var DefaultWeekend = []string{"saturday", "sunday"}

// Policy decides which calendar dates are workdays. A date is excluded when
// its weekday is in the weekend set or the date appears in the holiday set.
//
// The zero Policy excludes nothing ("show all calendar days" mode).
// Construct non-trivial policies with [NewPolicy]; this validates the
// weekend names eagerly so axis construction cannot fail on bad input.
type Policy struct {
	weekend  [7]bool
	holidays map[string]struct{}
}

// NewPolicy builds a Policy from weekday names and holiday dates.
// Weekend names are matched case-insensitively against the seven canonical
// weekday names; any other name yields an INVALID_POLICY error.
func NewPolicy(weekend []string, holidays []time.Time) (Policy, error) {
	var p Policy
	for _, name := range weekend {
		d, err := ParseWeekday(name)
		if err != nil {
			return Policy{}, err
		}
		p.weekend[d] = true
	}
	if len(holidays) > 0 {
		p.holidays = make(map[string]struct{}, len(holidays))
		for _, h := range holidays {
			p.holidays[h.Format(DateLayout)] = struct{}{}
		}
	}
	return p, nil
}

// IsWorkday reports whether t survives the policy's exclusions.
func (p Policy) IsWorkday(t time.Time) bool {
	if p.weekend[weekdayOf(t)] {
		return false
	}
	if _, holiday := p.holidays[t.Format(DateLayout)]; holiday {
		return false
	}
	return true
}

// =============================================================================
// Axis - Ordered Displayable Dates
// =============================================================================

// Axis is the ordered sequence of calendar dates that become the chart's
// columns. Dates are strictly ascending, duplicate-free, and normalized to
// UTC midnight.
type Axis []time.Time

// Index returns the 0-based position of date within the axis via an
// equality scan on the calendar day. The second result reports whether the
// date is present; a date removed by the exclusion policy is not found.
func (a Axis) Index(date time.Time) (int, bool) {
	for i, d := range a {
		if sameDay(d, date) {
			return i, true
		}
	}
	return -1, false
}

// ParseDate parses a date in the canonical YYYY-MM-DD layout.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, errors.Wrap(errors.ErrCodeInvalidDate, err, "invalid date: %q", s)
	}
	return t, nil
}

// BuildAxis enumerates every calendar date from start to end inclusive and
// filters it through the policy. The result is ascending and duplicate-free;
// with a zero policy it is the full inclusive range.
//
// An entirely excluded range yields an empty axis, which is a valid result:
// [Resolve] rejects it, but callers probing a policy may still inspect it.
func BuildAxis(start, end time.Time, p Policy) (Axis, error) {
	start, end = day(start), day(end)
	if start.After(end) {
		return nil, errors.New(errors.ErrCodeInvalidDate,
			"axis start %s is after end %s", start.Format(DateLayout), end.Format(DateLayout))
	}

	var axis Axis
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if p.IsWorkday(d) {
			axis = append(axis, d)
		}
	}
	return axis, nil
}

// AxisForTasks builds the axis spanning the global minimum start date and
// maximum end date over all tasks. An empty task table is a SCHEMA_ERROR.
func AxisForTasks(tasks []Task, p Policy) (Axis, error) {
	if len(tasks) == 0 {
		return nil, errors.New(errors.ErrCodeSchema, "task table is empty")
	}

	min, max := day(tasks[0].Start), day(tasks[0].End)
	for _, t := range tasks[1:] {
		if s := day(t.Start); s.Before(min) {
			min = s
		}
		if e := day(t.End); e.After(max) {
			max = e
		}
	}
	return BuildAxis(min, max, p)
}

// day normalizes a timestamp to UTC midnight so that axis entries compare
// and format consistently regardless of the input's clock time or zone.
func day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// sameDay reports whether two timestamps fall on the same calendar date.
func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
