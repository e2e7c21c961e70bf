package table

import (
	"strconv"
	"strings"
	"time"

	"github.com/ganttgrid/ganttgrid/pkg/errors"
	"github.com/ganttgrid/ganttgrid/pkg/gantt"
	"github.com/ganttgrid/ganttgrid/pkg/render/grid"
)

// Schema maps the four required task fields to their column names in the
// input table. All names are required.
type Schema struct {
	Description string
	Start       string
	End         string
	Duration    string
}

// DefaultSchema returns the column names used by the sample tables.
func DefaultSchema() Schema {
	return Schema{
		Description: "TASK",
		Start:       "START DATE",
		End:         "END DATE",
		Duration:    "DURATION (days)",
	}
}

func (s Schema) validate() error {
	if s.Description == "" || s.Start == "" || s.End == "" || s.Duration == "" {
		return errors.New(errors.ErrCodeSchema, "schema is missing a column name")
	}
	return nil
}

// Options is the chart configuration surface: the exclusion policy inputs
// and the rendering knobs. The zero value means "use the defaults":
// workday-only mode with the Saturday/Sunday weekend, no holidays, the
// default date layout and bar color, and no in-bar symbol.
type Options struct {
	Weekend    []string `toml:"weekend" json:"weekend"`
	Holidays   []string `toml:"holidays" json:"holidays"`
	AllDays    bool     `toml:"all_days" json:"all_days"` // disable workday-only mode
	DateFormat string   `toml:"date_format" json:"date_format"`
	Color      string   `toml:"color" json:"color"`
	Symbol     string   `toml:"symbol" json:"symbol"`
}

// Policy builds the exclusion policy the options describe. With AllDays set
// the policy excludes nothing; otherwise an unset weekend defaults to
// Saturday and Sunday. Holiday strings must parse as YYYY-MM-DD.
func (o Options) Policy() (gantt.Policy, error) {
	if o.AllDays {
		return gantt.Policy{}, nil
	}

	weekend := o.Weekend
	if len(weekend) == 0 {
		weekend = gantt.DefaultWeekend
	}

	holidays := make([]time.Time, 0, len(o.Holidays))
	for _, h := range o.Holidays {
		d, err := gantt.ParseDate(h)
		if err != nil {
			return gantt.Policy{}, err
		}
		holidays = append(holidays, d)
	}

	return gantt.NewPolicy(weekend, holidays)
}

// GridOptions converts the rendering knobs to grid.Draw options.
func (o Options) GridOptions() []grid.Option {
	return []grid.Option{
		grid.WithDateFormat(o.DateFormat),
		grid.WithFillColor(o.Color),
		grid.WithSymbol(o.Symbol),
	}
}

// buildTask assembles and validates one task from raw field values.
// Empty fields are rejected here so the message can name the offending
// column rather than the task.
func buildTask(s Schema, desc, start, end, duration string) (gantt.Task, error) {
	for col, v := range map[string]string{
		s.Description: desc,
		s.Start:       start,
		s.End:         end,
		s.Duration:    duration,
	} {
		if strings.TrimSpace(v) == "" {
			return gantt.Task{}, errors.New(errors.ErrCodeSchema,
				"column %q has an empty value; nulls are not permitted", col)
		}
	}

	startDate, err := gantt.ParseDate(start)
	if err != nil {
		return gantt.Task{}, errors.Wrap(errors.ErrCodeSchema, err, "column %q", s.Start)
	}
	endDate, err := gantt.ParseDate(end)
	if err != nil {
		return gantt.Task{}, errors.Wrap(errors.ErrCodeSchema, err, "column %q", s.End)
	}
	days, err := strconv.Atoi(strings.TrimSpace(duration))
	if err != nil {
		return gantt.Task{}, errors.Wrap(errors.ErrCodeSchema, err,
			"column %q is not a day count", s.Duration)
	}

	t := gantt.Task{
		Description: strings.TrimSpace(desc),
		Start:       startDate,
		End:         endDate,
		Duration:    days,
	}
	if err := t.Validate(); err != nil {
		return gantt.Task{}, err
	}
	return t, nil
}
