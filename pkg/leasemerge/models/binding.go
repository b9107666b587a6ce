package models

// ColumnSpec pairs a record field with the header label of its sheet column.
type ColumnSpec struct {
	Field  string `json:"field" yaml:"field"`
	Header string `json:"header" yaml:"header"`
}

// ColumnBinding is the resolved position of one field in the target sheet.
type ColumnBinding struct {
	// Field is the record field written to this column.
	Field string `json:"field"`
	// Header is the header label the column was resolved against.
	Header string `json:"header"`
	// Column is the 1-based column index.
	Column int `json:"column"`
	// Created is true when the header did not contain the label and a
	// trailing column was allocated.
	Created bool `json:"created"`
}

// ColumnBindings is the ordered result of resolving every field once.
// It is recomputed on every merge and never persisted.
type ColumnBindings []ColumnBinding

// Column returns the bound column index for field, or 0 if unbound.
func (b ColumnBindings) Column(field string) int {
	for _, binding := range b {
		if binding.Field == field {
			return binding.Column
		}
	}
	return 0
}

// Columns returns the bound column indexes in resolution order.
func (b ColumnBindings) Columns() []int {
	cols := make([]int, len(b))
	for i, binding := range b {
		cols[i] = binding.Column
	}
	return cols
}
