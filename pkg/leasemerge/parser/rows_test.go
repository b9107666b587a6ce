package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/leasemerge-go/pkg/leasemerge/models"
	"github.com/xuri/excelize/v2"
)

const sheet = "Additions and Modification"

var record = models.ExtractedRecord{
	Region:           "East",
	SiteNumber:       "42",
	MonthlyTotal:     "1500",
	CommencementDate: "2024-01-01",
}

func TestEnsureSheet(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	created, err := EnsureSheet(f, sheet)
	require.NoError(t, err)
	assert.True(t, created)
	assert.Contains(t, f.GetSheetList(), sheet)

	created, err = EnsureSheet(f, sheet)
	require.NoError(t, err)
	assert.False(t, created)

	maxRow, err := MaxRow(f, sheet)
	require.NoError(t, err)
	assert.Zero(t, maxRow)
}

func TestAppendRowNewSheet(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	_, err := EnsureSheet(f, sheet)
	require.NoError(t, err)

	header, err := ReadHeader(f, sheet)
	require.NoError(t, err)
	bindings, _ := ResolveColumns(header, DefaultColumns(), false)

	row, err := AppendRow(f, sheet, bindings, record)
	require.NoError(t, err)
	assert.Equal(t, 2, row)

	rows, err := f.GetRows(sheet)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Empty(t, rows[0])
	assert.Equal(t, []string{"East", "42", "1500", "2024-01-01"}, rows[1])
}

func TestAppendRowMonotonic(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	f.SetCellValue("Sheet1", "A1", "Region")
	f.SetCellValue("Sheet1", "B5", "existing")

	bindings, header := ResolveColumns([]string{"Region"}, DefaultColumns(), true)
	require.Len(t, header, 4)
	require.NoError(t, LabelColumns(f, "Sheet1", bindings))

	for want := 6; want <= 8; want++ {
		before, err := MaxRow(f, "Sheet1")
		require.NoError(t, err)

		row, err := AppendRow(f, "Sheet1", bindings, record)
		require.NoError(t, err)
		assert.Equal(t, before+1, row)
		assert.Equal(t, want, row)

		after, err := MaxRow(f, "Sheet1")
		require.NoError(t, err)
		assert.Equal(t, row, after)
	}

	got, err := ReadHeader(f, "Sheet1")
	require.NoError(t, err)
	assert.Equal(t, []string{"Region", "External Asset ID", "MinimumLeasePaymentaspercontract", "Current Lease Commencement Date"}, got)
}

func TestAppendRowInvalidBinding(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	full, _ := ResolveColumns(nil, DefaultColumns(), true)

	_, err := AppendRow(f, "Sheet1", append(full, models.ColumnBinding{Field: "tenant", Column: 5}), record)
	assert.Error(t, err)

	zero := append(models.ColumnBindings{}, full...)
	zero[0].Column = 0
	_, err = AppendRow(f, "Sheet1", zero, record)
	assert.Error(t, err)

	_, err = AppendRow(f, "Missing", full, record)
	assert.Error(t, err)
}

func TestAppendRowUnboundField(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	cols := DefaultColumns()[:1]
	bindings, _ := ResolveColumns(nil, cols, true)

	_, err := AppendRow(f, "Sheet1", bindings, record)
	assert.ErrorIs(t, err, ErrUnboundField)

	rows, err := f.GetRows("Sheet1")
	require.NoError(t, err)
	assert.Empty(t, rows)
}
