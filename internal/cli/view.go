package cli

import (
	"bytes"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/ganttgrid/ganttgrid/pkg/gantt"
	"github.com/ganttgrid/ganttgrid/pkg/render/grid"
	"github.com/ganttgrid/ganttgrid/pkg/render/grid/sink"
	"github.com/ganttgrid/ganttgrid/pkg/source/table"
)

// viewCommand creates the view command for interactive chart preview.
func (c *CLI) viewCommand() *cobra.Command {
	opts := chartOpts{
		format: sink.FormatText,
		schema: table.DefaultSchema(),
	}

	cmd := &cobra.Command{
		Use:   "view [file]",
		Short: "Preview a task table interactively in the terminal",
		Long: `Render a CSV or TOML task table as a text grid and browse its
tasks with the arrow keys. The selected task's bar is highlighted and
its dates are shown below the grid.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runView(args[0], &opts, cmd.Flags().Changed)
		},
	}

	cmd.Flags().StringSliceVar(&opts.weekend, "weekend", gantt.DefaultWeekend,
		"weekday names excluded as weekend")
	cmd.Flags().StringSliceVar(&opts.holidays, "holiday", nil, "holiday dates (YYYY-MM-DD, repeatable)")
	cmd.Flags().BoolVar(&opts.allDays, "all-days", false, "show all calendar days, ignoring weekend and holidays")
	cmd.Flags().StringVar(&opts.dateFormat, "date-format", grid.DefaultDateFormat, "header date layout")
	cmd.Flags().StringVar(&opts.symbol, "symbol", "", "symbol written into bar cells")

	return cmd
}

func runView(input string, opts *chartOpts, changed func(string) bool) error {
	tasks, fileOpts, err := loadInput(input, opts.schema)
	if err != nil {
		return err
	}
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

	var buf bytes.Buffer
	if err := grid.Draw(axis, placements, sink.NewText(&buf), renderOpts.GridOptions()...); err != nil {
		return err
	}

	m := newChartModel(tasks, placements, renderOpts.DateFormat, buf.String())
	_, err = tea.NewProgram(m).Run()
	return err
}

// =============================================================================
// chartModel - Interactive chart preview
// =============================================================================

// chartModel is the bubbletea model for browsing a rendered chart. The grid
// is rendered once up front; Update only moves the cursor.
type chartModel struct {
	tasks      []gantt.Task
	placements []gantt.Placement
	dateFormat string
	lines      []string // line 0 is the header row, line r+1 is grid row r
	cursor     int
}

func newChartModel(tasks []gantt.Task, placements []gantt.Placement, dateFormat, rendered string) chartModel {
	return chartModel{
		tasks:      tasks,
		placements: placements,
		dateFormat: dateFormat,
		lines:      strings.Split(strings.TrimRight(rendered, "\n"), "\n"),
	}
}

func (m chartModel) Init() tea.Cmd {
	return nil
}

func (m chartModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.placements)-1 {
				m.cursor++
			}
		}
	}
	return m, nil
}

func (m chartModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("ganttgrid"))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("↑/↓ navigate  q quit"))
	b.WriteString("\n\n")

	selectedRow := -1
	if m.cursor < len(m.placements) {
		selectedRow = m.placements[m.cursor].Row
	}

	for i, line := range m.lines {
		switch {
		case i == 0:
			b.WriteString(listHeaderStyle.Render(line))
		case i-1 == selectedRow:
			b.WriteString(listSelectedStyle.Render(line))
		default:
			b.WriteString(listBarStyle.Render(line))
		}
		b.WriteString("\n")
	}

	if m.cursor < len(m.tasks) {
		t := m.tasks[m.cursor]
		p := m.placements[m.cursor]
		b.WriteString("\n")
		b.WriteString(listNormalStyle.Render(t.Description))
		b.WriteString(StyleDim.Render(fmt.Sprintf("  %s → %s  %d columns",
			t.Start.Format(m.dateFormat), t.End.Format(m.dateFormat), p.Columns())))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(StyleDim.Render(fmt.Sprintf("  [%d/%d]", m.cursor+1, len(m.placements))))
	b.WriteString("\n")

	return b.String()
}
