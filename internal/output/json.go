package output

import (
	"encoding/json"
	"io"
)

// JSONOutput holds multiple reports for array output.
type JSONOutput struct {
	Games []*Report `json:"games"`
}

// OutputReportJSON writes a single report as an indented JSON object.
func OutputReportJSON(w io.Writer, r *Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

// OutputReportsJSON writes reports wrapped in a {"games": [...]} object.
func OutputReportsJSON(w io.Writer, reports []*Report) error {
	if reports == nil {
		reports = []*Report{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(&JSONOutput{Games: reports})
}
