package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ganttgrid/ganttgrid/pkg/errors"
	"github.com/ganttgrid/ganttgrid/pkg/gantt"
	"github.com/ganttgrid/ganttgrid/pkg/render/grid"
	"github.com/ganttgrid/ganttgrid/pkg/render/grid/sink"
	"github.com/ganttgrid/ganttgrid/pkg/source/table"
)

// chartOpts holds the command-line flags for the chart command.
type chartOpts struct {
	output     string   // output file path, "-" or empty for stdout
	format     string   // output format: svg, text, json, csv
	weekend    []string // weekday names excluded as weekend
	holidays   []string // explicit holiday dates (YYYY-MM-DD)
	allDays    bool     // show every calendar day, no exclusions
	dateFormat string   // Go time layout for header dates
	color      string   // bar fill color (hex RGB, no '#')
	symbol     string   // in-bar symbol
	schema     table.Schema
}

// chartCommand creates the chart command for rendering task tables.
//
// Default settings:
//   - format: svg
//   - workday-only mode with the Saturday/Sunday weekend
//   - no holidays, default date layout and bar color, blank symbol
func (c *CLI) chartCommand() *cobra.Command {
	opts := chartOpts{
		format: sink.FormatSVG,
		schema: table.DefaultSchema(),
	}

	cmd := &cobra.Command{
		Use:   "chart [file]",
		Short: "Render a task table as a Gantt chart grid",
		Long: `Render a CSV or TOML task table as a Gantt chart grid.

CSV files need a header row; the column names are configurable via the
--col-* flags. TOML files may carry chart options in a [chart] block;
command-line flags override them.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runChart(cmd.Context(), args[0], &opts, cmd.Flags().Changed)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format,
		"output format: "+strings.Join(sink.Formats(), ", "))
	cmd.Flags().StringSliceVar(&opts.weekend, "weekend", gantt.DefaultWeekend,
		"weekday names excluded as weekend")
	cmd.Flags().StringSliceVar(&opts.holidays, "holiday", nil, "holiday dates (YYYY-MM-DD, repeatable)")
	cmd.Flags().BoolVar(&opts.allDays, "all-days", false, "show all calendar days, ignoring weekend and holidays")
	cmd.Flags().StringVar(&opts.dateFormat, "date-format", grid.DefaultDateFormat, "header date layout")
	cmd.Flags().StringVar(&opts.color, "color", grid.DefaultFillColor, "bar fill color (hex RGB)")
	cmd.Flags().StringVar(&opts.symbol, "symbol", "", "symbol written into bar cells")
	cmd.Flags().StringVar(&opts.schema.Description, "col-task", opts.schema.Description, "description column name (CSV)")
	cmd.Flags().StringVar(&opts.schema.Start, "col-start", opts.schema.Start, "start date column name (CSV)")
	cmd.Flags().StringVar(&opts.schema.End, "col-end", opts.schema.End, "end date column name (CSV)")
	cmd.Flags().StringVar(&opts.schema.Duration, "col-duration", opts.schema.Duration, "duration column name (CSV)")

	return cmd
}

func runChart(ctx context.Context, input string, opts *chartOpts, changed func(string) bool) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	tasks, fileOpts, err := loadInput(input, opts.schema)
	if err != nil {
		return err
	}
	logger.Debug("loaded task table", "file", input, "tasks", len(tasks))

	renderOpts := mergeOptions(fileOpts, opts, changed)

	policy, err := renderOpts.Policy()
	if err != nil {
		return err
	}
	axis, err := gantt.AxisForTasks(tasks, policy)
	if err != nil {
		return err
	}
	placements, err := gantt.Resolve(tasks, axis)
	if err != nil {
		return err
	}
	logger.Debug("resolved layout", "rows", grid.Rows(placements)-1, "columns", len(axis))

	w, closeOut, name, err := openOutput(opts.output)
	if err != nil {
		return err
	}
	defer closeOut()

	renderer, err := sink.New(opts.format, w)
	if err != nil {
		return err
	}
	if err := grid.Draw(axis, placements, renderer, renderOpts.GridOptions()...); err != nil {
		return err
	}

	prog.done(fmt.Sprintf("Rendered %d tasks to %s", len(tasks), name))
	return nil
}

// loadInput picks the loader by file extension. TOML files may carry chart
// options; CSV files never do.
func loadInput(path string, schema table.Schema) ([]gantt.Task, table.Options, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		tasks, err := table.LoadCSVFile(path, schema)
		return tasks, table.Options{}, err
	case ".toml":
		return table.LoadTOMLFile(path)
	default:
		return nil, table.Options{}, errors.New(errors.ErrCodeUnsupported,
			"unsupported input file %q (expected .csv or .toml)", path)
	}
}

// mergeOptions layers command-line flags over file-borne options: a flag
// wins when it was set explicitly, otherwise the file value stands and
// the flag's default fills remaining gaps.
func mergeOptions(fileOpts table.Options, opts *chartOpts, changed func(string) bool) table.Options {
	merged := fileOpts
	if changed("weekend") || len(merged.Weekend) == 0 {
		merged.Weekend = opts.weekend
	}
	if changed("holiday") {
		merged.Holidays = opts.holidays
	}
	if changed("all-days") {
		merged.AllDays = opts.allDays
	}
	if changed("date-format") || merged.DateFormat == "" {
		merged.DateFormat = opts.dateFormat
	}
	if changed("color") || merged.Color == "" {
		merged.Color = opts.color
	}
	if changed("symbol") {
		merged.Symbol = opts.symbol
	}
	return merged
}

// openOutput opens the output target. Empty or "-" means stdout, which
// must not be closed.
func openOutput(path string) (io.Writer, func(), string, error) {
	if path == "" || path == "-" {
		return os.Stdout, func() {}, "stdout", nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, "", errors.Wrap(errors.ErrCodeInvalidPath, err, "failed to create %s", path)
	}
	return f, func() { _ = f.Close() }, path, nil
}
