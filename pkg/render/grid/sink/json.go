package sink

import (
	"encoding/json"
	"io"

	"github.com/ganttgrid/ganttgrid/pkg/gantt"
)

// JSON renders the grid as a pretty-printed JSON document: the axis dates,
// grid dimensions, and every written cell in row-major order. This is the
// interchange format for external tooling and for caching rendered charts.
type JSON struct {
	Buffer
	w io.Writer
}

type jsonDoc struct {
	DateFormat string     `json:"date_format"`
	Dates      []string   `json:"dates"`
	Rows       int        `json:"rows"`
	Cols       int        `json:"cols"`
	Cells      []jsonCell `json:"cells"`
}

type jsonCell struct {
	Row     int    `json:"row"`
	Col     int    `json:"col"`
	Content string `json:"content,omitempty"`
	Bold    bool   `json:"bold,omitempty"`
	Fill    string `json:"fill,omitempty"`
}

// NewJSON creates a JSON sink writing to w on Finalize.
func NewJSON(w io.Writer) *JSON {
	return &JSON{w: w}
}

// Finalize writes the buffered grid as an indented JSON document. Cells are
// emitted in row-major order for deterministic output.
func (j *JSON) Finalize() error {
	doc := jsonDoc{
		DateFormat: j.DateFormat(),
		Dates:      formatDates(j.Axis(), j.DateFormat()),
		Rows:       j.Rows(),
		Cols:       j.Cols(),
		Cells:      []jsonCell{},
	}

	for row := 0; row < j.Rows(); row++ {
		for col := 0; col < j.Cols(); col++ {
			c, ok := j.At(row, col)
			if !ok {
				continue
			}
			doc.Cells = append(doc.Cells, jsonCell{
				Row:     row,
				Col:     col,
				Content: c.Content,
				Bold:    c.Style.Bold,
				Fill:    c.Style.Fill,
			})
		}
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = j.w.Write(data)
	return err
}

func formatDates(axis gantt.Axis, layout string) []string {
	dates := make([]string, len(axis))
	for i, d := range axis {
		dates[i] = d.Format(layout)
	}
	return dates
}
