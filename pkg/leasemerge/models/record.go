// Package models defines data structures for lease extraction and merging.
package models

import "fmt"

// Field names, in the fixed order fields are extracted, resolved and written.
const (
	FieldRegion           = "region"
	FieldSiteNumber       = "siteNumber"
	FieldMonthlyTotal     = "monthlyTotal"
	FieldCommencementDate = "commencementDate"
)

// FieldOrder is the order fields are resolved against the header row.
// Column positions of missing fields depend on it.
var FieldOrder = []string{
	FieldRegion,
	FieldSiteNumber,
	FieldMonthlyTotal,
	FieldCommencementDate,
}

// ExtractedRecord holds the four values read from a lease document.
// Values are kept verbatim (trimmed) with no numeric or date parsing.
type ExtractedRecord struct {
	// Region is the text following "ATC REGION".
	Region string `json:"region"`
	// SiteNumber is the text following "LESSEE  SITE NUMBER".
	SiteNumber string `json:"site_number"`
	// MonthlyTotal is the amount before the trailing "R" of the monthly total line.
	MonthlyTotal string `json:"monthly_total"`
	// CommencementDate is the text following "RENEWAL TERM  COMMENCEMENT  DATE".
	CommencementDate string `json:"commencement_date"`
}

// Get returns the value of the named field.
func (r ExtractedRecord) Get(field string) (string, bool) {
	switch field {
	case FieldRegion:
		return r.Region, true
	case FieldSiteNumber:
		return r.SiteNumber, true
	case FieldMonthlyTotal:
		return r.MonthlyTotal, true
	case FieldCommencementDate:
		return r.CommencementDate, true
	}
	return "", false
}

// Set assigns the value of the named field.
func (r *ExtractedRecord) Set(field, value string) error {
	switch field {
	case FieldRegion:
		r.Region = value
	case FieldSiteNumber:
		r.SiteNumber = value
	case FieldMonthlyTotal:
		r.MonthlyTotal = value
	case FieldCommencementDate:
		r.CommencementDate = value
	default:
		return fmt.Errorf("unknown field %q", field)
	}
	return nil
}

// MissingField returns the first field in FieldOrder with an empty value,
// or "" when the record is complete.
func (r ExtractedRecord) MissingField() string {
	for _, field := range FieldOrder {
		if v, _ := r.Get(field); v == "" {
			return field
		}
	}
	return ""
}

// Validate returns an error naming the first empty field.
func (r ExtractedRecord) Validate() error {
	if field := r.MissingField(); field != "" {
		return fmt.Errorf("field %s is empty", field)
	}
	return nil
}

// IsKnownField reports whether field names one of the record's fields.
func IsKnownField(field string) bool {
	_, ok := ExtractedRecord{}.Get(field)
	return ok
}
