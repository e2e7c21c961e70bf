package table

import (
	"io"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"

	"github.com/ganttgrid/ganttgrid/pkg/errors"
	"github.com/ganttgrid/ganttgrid/pkg/gantt"
)

// Document is a complete TOML chart definition: the task table plus the
// optional [chart] options block.
type Document struct {
	Chart Options   `toml:"chart"`
	Tasks []taskRow `toml:"task"`
}

type taskRow struct {
	Description string `toml:"description"`
	Start       string `toml:"start"`
	End         string `toml:"end"`
	Duration    int    `toml:"duration"`
}

// LoadTOML reads a chart definition from TOML data. TOML tables use fixed
// field names (description, start, end, duration), so no Schema applies;
// every field is still required.
func LoadTOML(r io.Reader) ([]gantt.Task, Options, error) {
	var doc Document
	if _, err := toml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, Options{}, errors.Wrap(errors.ErrCodeSchema, err, "invalid TOML document")
	}

	if len(doc.Tasks) == 0 {
		return nil, Options{}, errors.New(errors.ErrCodeSchema, "task table is empty")
	}

	tasks := make([]gantt.Task, 0, len(doc.Tasks))
	for _, row := range doc.Tasks {
		duration := ""
		if row.Duration != 0 {
			duration = strconv.Itoa(row.Duration)
		}
		t, err := buildTask(Schema{
			Description: "description",
			Start:       "start",
			End:         "end",
			Duration:    "duration",
		}, row.Description, row.Start, row.End, duration)
		if err != nil {
			return nil, Options{}, err
		}
		tasks = append(tasks, t)
	}

	return tasks, doc.Chart, nil
}

// LoadTOMLFile reads a chart definition from a TOML file on disk.
func LoadTOMLFile(path string) ([]gantt.Task, Options, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, Options{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "no such file: %s", path)
		}
		return nil, Options{}, errors.Wrap(errors.ErrCodeInvalidPath, err, "failed to open %s", path)
	}
	defer f.Close()
	return LoadTOML(f)
}
