// internal/output/json.go
package output

import (
	"encoding/json"
	"io"

	"seqlens/pkg/api"
)

// WriteJSON writes the v1 report schema, pretty-indented.
func WriteJSON(w io.Writer, r api.ReportV1) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}
