package models

// SheetData is a dump of one sheet's occupied rows.
type SheetData struct {
	// Name is the sheet name.
	Name string `json:"name"`
	// Header is row 1 as read from the sheet.
	Header []string `json:"header,omitempty"`
	// Rows contains the non-empty rows, header included.
	Rows []CellRow `json:"rows,omitempty"`
	// MaxRow is the last occupied row (0 for an empty sheet).
	MaxRow int `json:"max_row"`
}
