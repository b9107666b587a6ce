package parser

import (
	"errors"
	"fmt"

	"github.com/ukaji3/leasemerge-go/pkg/leasemerge/models"
	"github.com/xuri/excelize/v2"
)

// HeaderRow is the row reserved for column labels.
const HeaderRow = 1

// EnsureSheet creates sheetName as an empty sheet when the workbook lacks it.
// It reports whether the sheet was created.
func EnsureSheet(f *excelize.File, sheetName string) (bool, error) {
	idx, err := f.GetSheetIndex(sheetName)
	if err != nil {
		return false, err
	}
	if idx != -1 {
		return false, nil
	}
	if _, err := f.NewSheet(sheetName); err != nil {
		return false, err
	}
	return true, nil
}

// LabelColumns writes the header label of every created binding into row 1.
func LabelColumns(f *excelize.File, sheetName string, bindings models.ColumnBindings) error {
	for _, b := range bindings {
		if !b.Created {
			continue
		}
		if err := setCell(f, sheetName, b.Column, HeaderRow, b.Header); err != nil {
			return err
		}
	}
	return nil
}

// ErrUnboundField indicates a record field has no column binding.
var ErrUnboundField = errors.New("field has no column binding")

// AppendRow writes record into the row after the last occupied one, each
// value in its bound column, and returns the row written. Every record field
// must be bound; nothing is written otherwise. Row 1 is never written, even
// on an empty sheet. Target cells are not checked, so a jagged sheet whose
// lower rows are blank in these columns still appends below its last
// occupied row.
func AppendRow(f *excelize.File, sheetName string, bindings models.ColumnBindings, record models.ExtractedRecord) (int, error) {
	if err := checkBindings(bindings); err != nil {
		return 0, err
	}

	maxRow, err := MaxRow(f, sheetName)
	if err != nil {
		return 0, err
	}
	row := max(maxRow, HeaderRow) + 1

	for _, b := range bindings {
		value, _ := record.Get(b.Field)
		if err := setCell(f, sheetName, b.Column, row, value); err != nil {
			return 0, err
		}
	}
	return row, nil
}

func checkBindings(bindings models.ColumnBindings) error {
	bound := make(map[string]bool, len(bindings))
	for _, b := range bindings {
		if !models.IsKnownField(b.Field) {
			return fmt.Errorf("binding for unknown field %q", b.Field)
		}
		if b.Column < 1 {
			return fmt.Errorf("field %s bound to invalid column %d", b.Field, b.Column)
		}
		bound[b.Field] = true
	}
	for _, field := range models.FieldOrder {
		if !bound[field] {
			return fmt.Errorf("%w: %s", ErrUnboundField, field)
		}
	}
	return nil
}

func setCell(f *excelize.File, sheetName string, col, row int, value string) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	return f.SetCellValue(sheetName, cell, value)
}
