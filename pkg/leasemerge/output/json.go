// Package output renders merge results for terminals and JSON consumers.
package output

import (
	"encoding/json"

	"github.com/ukaji3/leasemerge-go/pkg/leasemerge/models"
)

// ToJSON serializes v, indented when pretty is set.
func ToJSON(v any, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}

// TableRecords converts a table into one header-keyed map per row, the
// shape JSON consumers expect for a data frame.
func TableRecords(t models.Table) []map[string]string {
	out := make([]map[string]string, 0, len(t.Rows))
	for _, row := range t.Rows {
		rec := make(map[string]string, len(t.Headers))
		for i, h := range t.Headers {
			if i < len(row) {
				rec[h] = row[i]
			} else {
				rec[h] = ""
			}
		}
		out = append(out, rec)
	}
	return out
}
