package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/ukaji3/leasemerge-go/pkg/leasemerge/models"
)

func TestResolveColumn(t *testing.T) {
	header := []string{"Lease", "Region", "", "External Asset ID"}

	tests := []struct {
		label    string
		expected int
		created  bool
	}{
		{"Region", 2, false},
		{"External Asset ID", 4, false},
		{"region", 5, true},
		{"Region ", 5, true},
		{"Current Lease Commencement Date", 5, true},
	}

	for _, tt := range tests {
		b, updated := ResolveColumn(header, "f", tt.label, true)
		if b.Column != tt.expected || b.Created != tt.created {
			t.Errorf("ResolveColumn(%q) = %d (created %v), expected %d (created %v)",
				tt.label, b.Column, b.Created, tt.expected, tt.created)
		}
		if tt.created && len(updated) != len(header)+1 {
			t.Errorf("ResolveColumn(%q) header len = %d, expected %d", tt.label, len(updated), len(header)+1)
		}
	}
	assert.Len(t, header, 4, "input header must not be modified")
}

func TestResolveColumnIdempotent(t *testing.T) {
	header := []string{"Region"}
	for _, label := range []string{"Region", "MinimumLeasePaymentaspercontract"} {
		first, _ := ResolveColumn(header, "f", label, true)
		second, _ := ResolveColumn(header, "f", label, true)
		assert.Equal(t, first, second)
	}
}

func TestResolveColumnsEmptyHeader(t *testing.T) {
	for _, labelNew := range []bool{true, false} {
		bindings, header := ResolveColumns(nil, DefaultColumns(), labelNew)
		assert.Equal(t, []int{1, 2, 3, 4}, bindings.Columns())
		assert.Len(t, header, 4)
		for _, b := range bindings {
			assert.True(t, b.Created)
		}
		if labelNew {
			assert.Equal(t, []string{"Region", "External Asset ID", "MinimumLeasePaymentaspercontract", "Current Lease Commencement Date"}, header)
		} else {
			assert.Equal(t, []string{"", "", "", ""}, header)
		}
	}
}

func TestResolveColumnsPartialHeader(t *testing.T) {
	header := []string{"Lease", "MinimumLeasePaymentaspercontract", "Region"}
	bindings, _ := ResolveColumns(header, DefaultColumns(), true)

	assert.Equal(t, 3, bindings.Column(models.FieldRegion))
	assert.Equal(t, 4, bindings.Column(models.FieldSiteNumber))
	assert.Equal(t, 2, bindings.Column(models.FieldMonthlyTotal))
	assert.Equal(t, 5, bindings.Column(models.FieldCommencementDate))
}

func TestResolveColumnsOrderMatters(t *testing.T) {
	specs := DefaultColumns()
	reversed := []models.ColumnSpec{specs[3], specs[2], specs[1], specs[0]}

	bindings, _ := ResolveColumns(nil, reversed, true)
	assert.Equal(t, 1, bindings.Column(models.FieldCommencementDate))
	assert.Equal(t, 4, bindings.Column(models.FieldRegion))
}
