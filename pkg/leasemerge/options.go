// Package leasemerge extracts lease agreement fields from document text and
// merges them as a new row into an xlsx workbook.
package leasemerge

import (
	"github.com/ukaji3/leasemerge-go/pkg/leasemerge/models"
	"github.com/ukaji3/leasemerge-go/pkg/leasemerge/parser"
	"go.uber.org/zap"
)

// DefaultSheetName is the sheet rows are appended to.
const DefaultSheetName = "Additions and Modification"

// Options configures merge behavior.
type Options struct {
	// SheetName is the target sheet. Empty means DefaultSheetName.
	SheetName string
	// LabelNewColumns specifies whether a column allocated for a field missing
	// from the header gets its label written into row 1.
	// If nil, defaults to true.
	LabelNewColumns *bool
	// Rules are the extraction rules. Empty means parser.DefaultRules().
	Rules []parser.Rule
	// Columns maps fields to header labels, in resolution order.
	// Empty means parser.DefaultColumns().
	Columns []models.ColumnSpec
	// Logger receives merge progress. Nil disables logging.
	Logger *zap.Logger
}

// DefaultOptions returns default merge options.
func DefaultOptions() Options {
	return Options{
		SheetName: DefaultSheetName,
	}
}

// ShouldLabelNewColumns returns whether to label allocated columns.
func (o Options) ShouldLabelNewColumns() bool {
	if o.LabelNewColumns != nil {
		return *o.LabelNewColumns
	}
	return true
}

func (o Options) sheetName() string {
	if o.SheetName == "" {
		return DefaultSheetName
	}
	return o.SheetName
}

func (o Options) rules() []parser.Rule {
	if len(o.Rules) == 0 {
		return parser.DefaultRules()
	}
	return o.Rules
}

func (o Options) columns() []models.ColumnSpec {
	if len(o.Columns) == 0 {
		return parser.DefaultColumns()
	}
	return o.Columns
}

func (o Options) logger() *zap.Logger {
	if o.Logger == nil {
		return zap.NewNop()
	}
	return o.Logger
}
