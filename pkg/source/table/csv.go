package table

import (
	"encoding/csv"
	"io"
	"os"
	"strings"

	"github.com/ganttgrid/ganttgrid/pkg/errors"
	"github.com/ganttgrid/ganttgrid/pkg/gantt"
)

// LoadCSV reads a task table from CSV data. The first record is the header;
// the schema's columns are located by exact name match after trimming
// whitespace. Extra columns are ignored.
func LoadCSV(r io.Reader, s Schema) ([]gantt.Task, error) {
	if err := s.validate(); err != nil {
		return nil, err
	}

	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, errors.New(errors.ErrCodeSchema, "table has no header row")
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeSchema, err, "failed to read header row")
	}

	idx, err := columnIndexes(header, s)
	if err != nil {
		return nil, err
	}

	var tasks []gantt.Task
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeSchema, err, "failed to read record")
		}

		t, err := buildTask(s,
			record[idx.desc], record[idx.start], record[idx.end], record[idx.duration])
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}

	if len(tasks) == 0 {
		return nil, errors.New(errors.ErrCodeSchema, "task table is empty")
	}
	return tasks, nil
}

// LoadCSVFile reads a task table from a CSV file on disk.
func LoadCSVFile(path string, s Schema) ([]gantt.Task, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "no such file: %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "failed to open %s", path)
	}
	defer f.Close()
	return LoadCSV(f, s)
}

type indexes struct {
	desc, start, end, duration int
}

// columnIndexes locates the schema's columns in the header, reporting every
// missing column in one error.
func columnIndexes(header []string, s Schema) (indexes, error) {
	pos := make(map[string]int, len(header))
	for i, name := range header {
		pos[strings.TrimSpace(name)] = i
	}

	idx := indexes{}
	var missing []string
	lookup := func(col string, dst *int) {
		i, ok := pos[col]
		if !ok {
			missing = append(missing, col)
			return
		}
		*dst = i
	}
	lookup(s.Description, &idx.desc)
	lookup(s.Start, &idx.start)
	lookup(s.End, &idx.end)
	lookup(s.Duration, &idx.duration)

	if len(missing) > 0 {
		return indexes{}, errors.New(errors.ErrCodeSchema,
			"missing column(s) %s in table header", strings.Join(missing, ", "))
	}
	return idx, nil
}
