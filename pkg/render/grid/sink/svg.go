package sink

import (
	"bytes"
	"fmt"
	"io"
	"strings"
)

// SVG cell geometry. The label column is wider than date columns so task
// descriptions stay readable without truncation logic.
const (
	svgCellWidth  = 96.0
	svgCellHeight = 28.0
	svgLabelWidth = 180.0
	svgFontSize   = 12.0
	svgTextPad    = 8.0
)

const svgGridColor = "d9d9d9"

var svgEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// SVGOption configures an SVG sink.
type SVGOption func(*SVG)

// WithSVGCellSize overrides the date-column cell dimensions.
func WithSVGCellSize(width, height float64) SVGOption {
	return func(s *SVG) { s.cellW, s.cellH = width, height }
}

// SVG renders the grid as an SVG document: a light rule grid, bold header
// dates, task labels, and filled rects for span cells.
type SVG struct {
	Buffer
	w            io.Writer
	cellW, cellH float64
}

// NewSVG creates an SVG sink writing to w on Finalize.
func NewSVG(w io.Writer, opts ...SVGOption) *SVG {
	s := &SVG{w: w, cellW: svgCellWidth, cellH: svgCellHeight}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Finalize writes the buffered grid as a complete SVG document.
func (s *SVG) Finalize() error {
	width := svgLabelWidth + float64(s.Cols()-1)*s.cellW
	height := float64(s.Rows()) * s.cellH

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		width, height, width, height)
	fmt.Fprintf(&buf, `  <rect x="0" y="0" width="%.1f" height="%.1f" fill="#ffffff"/>`+"\n", width, height)

	s.renderFills(&buf)
	s.renderRules(&buf, width, height)
	s.renderText(&buf)

	buf.WriteString("</svg>\n")
	_, err := s.w.Write(buf.Bytes())
	return err
}

// renderFills draws the background rect of every shaded cell.
func (s *SVG) renderFills(buf *bytes.Buffer) {
	for row := 0; row < s.Rows(); row++ {
		for col := 0; col < s.Cols(); col++ {
			c, ok := s.At(row, col)
			if !ok || c.Style.Fill == "" {
				continue
			}
			x, y := s.cellOrigin(row, col)
			w := s.cellW
			if col == 0 {
				w = svgLabelWidth
			}
			fmt.Fprintf(buf, `  <rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="#%s"/>`+"\n",
				x, y, w, s.cellH, c.Style.Fill)
		}
	}
}

// renderRules draws the separating lines of the grid.
func (s *SVG) renderRules(buf *bytes.Buffer, width, height float64) {
	for row := 0; row <= s.Rows(); row++ {
		y := float64(row) * s.cellH
		fmt.Fprintf(buf, `  <line x1="0" y1="%.1f" x2="%.1f" y2="%.1f" stroke="#%s"/>`+"\n",
			y, width, y, svgGridColor)
	}
	fmt.Fprintf(buf, `  <line x1="0" y1="0" x2="0" y2="%.1f" stroke="#%s"/>`+"\n", height, svgGridColor)
	for col := 1; col <= s.Cols(); col++ {
		x := svgLabelWidth + float64(col-1)*s.cellW
		fmt.Fprintf(buf, `  <line x1="%.1f" y1="0" x2="%.1f" y2="%.1f" stroke="#%s"/>`+"\n",
			x, x, height, svgGridColor)
	}
}

// renderText draws header dates, row labels, and in-bar symbols.
func (s *SVG) renderText(buf *bytes.Buffer) {
	for row := 0; row < s.Rows(); row++ {
		for col := 0; col < s.Cols(); col++ {
			c, ok := s.At(row, col)
			if !ok || c.Content == "" {
				continue
			}
			x, y := s.cellOrigin(row, col)
			baseline := y + s.cellH/2 + svgFontSize/3

			weight := "normal"
			if c.Style.Bold {
				weight = "bold"
			}

			if col == 0 {
				fmt.Fprintf(buf, `  <text x="%.1f" y="%.1f" font-family="sans-serif" font-size="%.0f" font-weight="%s">%s</text>`+"\n",
					x+svgTextPad, baseline, svgFontSize, weight, svgEscaper.Replace(c.Content))
				continue
			}
			fmt.Fprintf(buf, `  <text x="%.1f" y="%.1f" font-family="sans-serif" font-size="%.0f" font-weight="%s" text-anchor="middle">%s</text>`+"\n",
				x+s.cellW/2, baseline, svgFontSize, weight, svgEscaper.Replace(c.Content))
		}
	}
}

// cellOrigin returns the top-left corner of a cell in SVG coordinates.
func (s *SVG) cellOrigin(row, col int) (x, y float64) {
	y = float64(row) * s.cellH
	if col == 0 {
		return 0, y
	}
	return svgLabelWidth + float64(col-1)*s.cellW, y
}
