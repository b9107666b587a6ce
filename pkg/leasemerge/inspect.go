package leasemerge

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/ukaji3/leasemerge-go/pkg/leasemerge/models"
	"github.com/ukaji3/leasemerge-go/pkg/leasemerge/parser"
	"github.com/xuri/excelize/v2"
)

// Inspect lists a workbook's sheets and dumps sheetName when present.
func Inspect(path, sheetName string) (*models.WorkbookData, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFormat, err)
	}
	defer f.Close()

	wb := &models.WorkbookData{
		BookName:   filepath.Base(path),
		SheetNames: f.GetSheetList(),
	}

	if sheetName != "" && slices.Contains(wb.SheetNames, sheetName) {
		sheet, err := parser.ReadSheet(f, sheetName)
		if err != nil {
			return nil, NewMergeError(sheetName, StageHeader, err)
		}
		wb.Sheet = sheet
	}
	return wb, nil
}
