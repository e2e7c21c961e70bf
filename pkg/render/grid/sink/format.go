package sink

import (
	"io"
	"strings"

	"github.com/ganttgrid/ganttgrid/pkg/errors"
	"github.com/ganttgrid/ganttgrid/pkg/render/grid"
)

// Output formats.
const (
	FormatSVG  = "svg"
	FormatText = "text"
	FormatJSON = "json"
	FormatCSV  = "csv"
)

// Formats lists the supported output formats in display order.
func Formats() []string {
	return []string{FormatSVG, FormatText, FormatJSON, FormatCSV}
}

// New creates the sink for a format, writing to w on Finalize.
// Unknown formats are an INVALID_FORMAT error.
func New(format string, w io.Writer) (grid.Renderer, error) {
	switch strings.ToLower(format) {
	case FormatSVG:
		return NewSVG(w), nil
	case FormatText, "txt":
		return NewText(w), nil
	case FormatJSON:
		return NewJSON(w), nil
	case FormatCSV:
		return NewCSV(w), nil
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat,
			"unknown output format %q (supported: %s)", format, strings.Join(Formats(), ", "))
	}
}

// ContentType returns the MIME type for a format's artifact.
func ContentType(format string) string {
	switch strings.ToLower(format) {
	case FormatSVG:
		return "image/svg+xml"
	case FormatJSON:
		return "application/json"
	case FormatCSV:
		return "text/csv"
	default:
		return "text/plain; charset=utf-8"
	}
}
