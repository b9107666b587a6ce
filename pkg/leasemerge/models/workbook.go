package models

// WorkbookData lists a workbook's sheets and, optionally, one sheet's contents.
type WorkbookData struct {
	// BookName is the workbook file name (no path).
	BookName string `json:"book_name"`
	// SheetNames lists the sheets in workbook order.
	SheetNames []string `json:"sheet_names"`
	// Sheet is the dumped sheet, if one was requested and exists.
	Sheet *SheetData `json:"sheet,omitempty"`
}
