package output

import (
	"encoding/json"
	"io"

	"github.com/Viktor-Johnsen/46770-final-project/internal/errors"
)

// JSONFormatter renders a report as indented JSON.
type JSONFormatter struct{}

// Format returns the format type
func (f *JSONFormatter) Format() Format {
	return FormatJSON
}

// Render writes the report to w as JSON.
func (f *JSONFormatter) Render(w io.Writer, report *Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		return errors.Wrap(errors.TypeOutput, "encoding report", err)
	}
	return nil
}
