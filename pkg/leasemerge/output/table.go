package output

import (
	"sort"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/ukaji3/leasemerge-go/pkg/leasemerge/models"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

// RenderTable draws t as a bordered terminal table. An empty table renders
// its headers only.
func RenderTable(t models.Table) string {
	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(t.Headers...).
		Rows(t.Rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	return tbl.Render()
}

// SheetTable lays out a sheet dump as a table whose headers are the column
// numbers and whose first column is the row number.
func SheetTable(s *models.SheetData) models.Table {
	maxCol := 0
	for _, row := range s.Rows {
		for key := range row.C {
			if c, err := strconv.Atoi(key); err == nil && c > maxCol {
				maxCol = c
			}
		}
	}

	t := models.Table{Headers: []string{"row"}}
	for c := 1; c <= maxCol; c++ {
		t.Headers = append(t.Headers, strconv.Itoa(c))
	}

	rows := append([]models.CellRow(nil), s.Rows...)
	sort.Slice(rows, func(i, j int) bool { return rows[i].R < rows[j].R })
	for _, row := range rows {
		line := make([]string, maxCol+1)
		line[0] = strconv.Itoa(row.R)
		for c := 1; c <= maxCol; c++ {
			line[c] = row.C[strconv.Itoa(c)]
		}
		t.Rows = append(t.Rows, line)
	}
	return t
}
