package output

import (
	"encoding/json"
	"io"
)

// JSONWriter renders a report as a JSON document.
type JSONWriter struct {
	Indent bool
}

// Write encodes the report to the stream.
func (jw *JSONWriter) Write(w io.Writer, report *Report) error {
	enc := json.NewEncoder(w)
	if jw.Indent {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(report)
}
