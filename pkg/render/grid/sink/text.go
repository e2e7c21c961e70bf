package sink

import (
	"io"
	"strings"
)

// barRune fills shaded cells that have no configured symbol.
const barRune = "█"

// Text renders the grid as an aligned plain-text table, one line per chart
// row. Shaded cells are filled across their full column width, so spans
// read as continuous bars in a terminal.
type Text struct {
	Buffer
	w io.Writer
}

// NewText creates a text sink writing to w on Finalize.
func NewText(w io.Writer) *Text {
	return &Text{w: w}
}

// Finalize lays out the buffered cells into columns sized to their widest
// content and writes the table.
func (t *Text) Finalize() error {
	widths := t.columnWidths()

	var sb strings.Builder
	for row := 0; row < t.Rows(); row++ {
		for col := 0; col < t.Cols(); col++ {
			if col > 0 {
				sb.WriteString("  ")
			}
			sb.WriteString(t.renderCell(row, col, widths[col]))
		}
		// Trim the padding of the last column on each line.
		line := strings.TrimRight(sb.String(), " ")
		sb.Reset()
		if _, err := io.WriteString(t.w, line+"\n"); err != nil {
			return err
		}
	}
	return nil
}

func (t *Text) columnWidths() []int {
	widths := make([]int, t.Cols())
	for col := range widths {
		for row := 0; row < t.Rows(); row++ {
			c, ok := t.At(row, col)
			if !ok {
				continue
			}
			if w := len([]rune(c.Content)); w > widths[col] {
				widths[col] = w
			}
		}
		if widths[col] < 1 {
			widths[col] = 1
		}
	}
	return widths
}

func (t *Text) renderCell(row, col, width int) string {
	c, ok := t.At(row, col)
	if !ok {
		return strings.Repeat(" ", width)
	}

	content := c.Content
	if c.Style.Fill != "" {
		// A shaded cell fills its column; the symbol repeats to width.
		fill := content
		if fill == "" {
			fill = barRune
		}
		repeated := strings.Repeat(fill, width)
		return string([]rune(repeated)[:width])
	}

	if pad := width - len([]rune(content)); pad > 0 {
		content += strings.Repeat(" ", pad)
	}
	return content
}
