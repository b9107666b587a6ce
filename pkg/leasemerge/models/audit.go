package models

import "time"

// AuditEntry records one successful merge. Entries are never mutated.
type AuditEntry struct {
	// ID uniquely identifies the merge run.
	ID string `json:"id"`
	// Record is the extracted data that was written.
	Record ExtractedRecord `json:"record"`
	// SourceLabel names the workbook file the row was merged into.
	SourceLabel string `json:"source_label"`
	// SheetName is the sheet the row was appended to.
	SheetName string `json:"sheet_name"`
	// Row is the 1-based row index written.
	Row int `json:"row"`
	// MergedAt is when the merge completed.
	MergedAt time.Time `json:"merged_at"`
}
