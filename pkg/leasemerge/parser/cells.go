package parser

import (
	"strconv"

	"github.com/ukaji3/leasemerge-go/pkg/leasemerge/models"
	"github.com/xuri/excelize/v2"
)

// ReadSheet reads a sheet's header row, non-empty rows and last occupied row.
func ReadSheet(f *excelize.File, sheetName string) (*models.SheetData, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}

	data := &models.SheetData{Name: sheetName}
	if len(rows) > 0 {
		data.Header = append([]string(nil), rows[0]...)
	}

	for rowIdx, row := range rows {
		rowNum := rowIdx + 1 // 1-based row index
		cellMap := make(map[string]string)

		for colIdx, cellValue := range row {
			if cellValue == "" {
				continue
			}
			cellMap[strconv.Itoa(colIdx+1)] = cellValue
		}

		if len(cellMap) > 0 {
			data.Rows = append(data.Rows, models.CellRow{R: rowNum, C: cellMap})
			data.MaxRow = rowNum
		}
	}

	return data, nil
}

// ReadHeader returns row 1 of a sheet, trimmed of trailing empty cells.
// An empty sheet has an empty header.
func ReadHeader(f *excelize.File, sheetName string) ([]string, error) {
	data, err := ReadSheet(f, sheetName)
	if err != nil {
		return nil, err
	}
	return data.Header, nil
}

// MaxRow returns the last row holding a non-empty cell, or 0 for an empty sheet.
func MaxRow(f *excelize.File, sheetName string) (int, error) {
	data, err := ReadSheet(f, sheetName)
	if err != nil {
		return 0, err
	}
	return data.MaxRow, nil
}
