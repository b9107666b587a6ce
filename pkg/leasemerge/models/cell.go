package models

// CellRow represents a single non-empty row of a sheet.
type CellRow struct {
	// R is the row index (1-based).
	R int `json:"r"`
	// C maps column index (string, 1-based) to the cell's formatted value.
	C map[string]string `json:"c"`
}
