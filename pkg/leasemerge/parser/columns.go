package parser

import (
	"github.com/ukaji3/leasemerge-go/pkg/leasemerge/models"
)

// DefaultColumns returns the header labels each field is written under,
// in resolution order.
func DefaultColumns() []models.ColumnSpec {
	return []models.ColumnSpec{
		{Field: models.FieldRegion, Header: "Region"},
		{Field: models.FieldSiteNumber, Header: "External Asset ID"},
		{Field: models.FieldMonthlyTotal, Header: "MinimumLeasePaymentaspercontract"},
		{Field: models.FieldCommencementDate, Header: "Current Lease Commencement Date"},
	}
}

// ResolveColumn finds the column for a field in a header row.
// An exact match of label returns its 1-based position and the header
// unchanged. Otherwise the next free column to the right, len(header)+1,
// is allocated and the returned header grows by one cell: the label when
// labelNew is set, an empty placeholder otherwise. The input slice is
// never modified.
func ResolveColumn(header []string, field, label string, labelNew bool) (models.ColumnBinding, []string) {
	for i, cell := range header {
		if cell == label {
			return models.ColumnBinding{Field: field, Header: label, Column: i + 1}, header
		}
	}

	placeholder := ""
	if labelNew {
		placeholder = label
	}
	updated := make([]string, len(header), len(header)+1)
	copy(updated, header)
	updated = append(updated, placeholder)

	return models.ColumnBinding{
		Field:   field,
		Header:  label,
		Column:  len(header) + 1,
		Created: true,
	}, updated
}

// ResolveColumns resolves every column in order against header, threading the
// updated header through each step so fields missing together land in
// consecutive trailing columns. It returns the bindings and the final header.
func ResolveColumns(header []string, cols []models.ColumnSpec, labelNew bool) (models.ColumnBindings, []string) {
	bindings := make(models.ColumnBindings, 0, len(cols))
	current := header
	for _, col := range cols {
		var b models.ColumnBinding
		b, current = ResolveColumn(current, col.Field, col.Header, labelNew)
		bindings = append(bindings, b)
	}
	return bindings, current
}
