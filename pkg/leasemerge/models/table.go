package models

// Display headers used for summary and history tables.
const (
	HeaderRegion           = "ATC REGION"
	HeaderSiteNumber       = "LESSEE SITE NUMBER"
	HeaderMonthlyTotal     = "TOTAL - per month (exclusive of VAT)"
	HeaderCommencementDate = "RENEWAL TERM COMMENCEMENT DATE"
	HeaderFileName         = "File Name"
)

// Table is a header plus rows of display strings.
type Table struct {
	Headers []string   `json:"headers"`
	Rows    [][]string `json:"rows"`
}

// RecordTable renders a single record as a one-row table.
func RecordTable(r ExtractedRecord) Table {
	return Table{
		Headers: []string{HeaderRegion, HeaderSiteNumber, HeaderMonthlyTotal, HeaderCommencementDate},
		Rows:    [][]string{{r.Region, r.SiteNumber, r.MonthlyTotal, r.CommencementDate}},
	}
}

// AuditTable renders audit entries oldest first, one row per entry.
func AuditTable(entries []AuditEntry) Table {
	t := Table{
		Headers: []string{HeaderRegion, HeaderSiteNumber, HeaderMonthlyTotal, HeaderCommencementDate, HeaderFileName},
		Rows:    make([][]string, 0, len(entries)),
	}
	for _, e := range entries {
		t.Rows = append(t.Rows, []string{
			e.Record.Region,
			e.Record.SiteNumber,
			e.Record.MonthlyTotal,
			e.Record.CommencementDate,
			e.SourceLabel,
		})
	}
	return t
}
