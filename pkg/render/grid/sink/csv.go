package sink

import (
	"encoding/csv"
	"io"
)

// csvMarker fills shaded cells that have no configured symbol. CSV has no
// background colors, so an empty marker would make bars invisible.
const csvMarker = "x"

// CSV renders the grid as comma-separated rows: the date header first, then
// one record per chart row with the label in the first field.
type CSV struct {
	Buffer
	w io.Writer
}

// NewCSV creates a CSV sink writing to w on Finalize.
func NewCSV(w io.Writer) *CSV {
	return &CSV{w: w}
}

// Finalize writes the buffered grid as CSV records.
func (c *CSV) Finalize() error {
	cw := csv.NewWriter(c.w)

	record := make([]string, c.Cols())
	for row := 0; row < c.Rows(); row++ {
		for col := 0; col < c.Cols(); col++ {
			record[col] = ""
			cell, ok := c.At(row, col)
			if !ok {
				continue
			}
			record[col] = cell.Content
			if cell.Style.Fill != "" && cell.Content == "" {
				record[col] = csvMarker
			}
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
