package leasemerge

import (
	"errors"
	"fmt"

	"github.com/ukaji3/leasemerge-go/pkg/leasemerge/document"
	"github.com/ukaji3/leasemerge-go/pkg/leasemerge/parser"
)

// ErrFileNotFound indicates an input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the workbook is not a valid xlsx file.
var ErrInvalidFormat = errors.New("invalid xlsx format")

// ErrLabelNotFound indicates a required label is absent from the document text.
var ErrLabelNotFound = parser.ErrLabelNotFound

// ErrEmptyValue indicates a required label is present but has no value.
var ErrEmptyValue = parser.ErrEmptyValue

// ErrNoRule indicates no extraction rule targets a record field.
var ErrNoRule = parser.ErrNoRule

// ErrUnboundField indicates a record field has no target column.
var ErrUnboundField = parser.ErrUnboundField

// ErrNoPages indicates a document produced no page text.
var ErrNoPages = document.ErrNoPages

// Merge stages reported by MergeError.
const (
	StageOpen   = "open"
	StageSheet  = "sheet"
	StageHeader = "header"
	StageAppend = "append"
	StageSave   = "save"
)

// ExtractionError reports a required field that could not be read from the
// document text. Nothing is written when it occurs.
type ExtractionError struct {
	Field string
	Label string
	Err   error
}

func (e *ExtractionError) Error() string {
	if e.Label == "" {
		return fmt.Sprintf("could not extract %s: %v", e.Field, e.Err)
	}
	return fmt.Sprintf("could not extract %s (label %q): %v", e.Field, e.Label, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// NewExtractionError creates a new ExtractionError.
func NewExtractionError(field, label string, err error) *ExtractionError {
	return &ExtractionError{
		Field: field,
		Label: label,
		Err:   err,
	}
}

// MergeError represents a failure after successful extraction, while
// manipulating or saving the workbook.
type MergeError struct {
	SheetName string
	Stage     string // "open", "sheet", "header", "append", "save"
	Err       error
}

func (e *MergeError) Error() string {
	return fmt.Sprintf("merge error in sheet %q (%s): %v", e.SheetName, e.Stage, e.Err)
}

func (e *MergeError) Unwrap() error {
	return e.Err
}

// NewMergeError creates a new MergeError.
func NewMergeError(sheetName, stage string, err error) *MergeError {
	return &MergeError{
		SheetName: sheetName,
		Stage:     stage,
		Err:       err,
	}
}

// PipelineError wraps the first failure of a pipeline run.
type PipelineError struct {
	Source string
	Err    error
}

func (e *PipelineError) Error() string {
	return fmt.Sprintf("merge of %q failed: %v", e.Source, e.Err)
}

func (e *PipelineError) Unwrap() error {
	return e.Err
}

// IsExtraction reports whether err stems from missing document fields.
func IsExtraction(err error) bool {
	var target *ExtractionError
	return errors.As(err, &target)
}

// IsMerge reports whether err stems from workbook manipulation or saving.
func IsMerge(err error) bool {
	var target *MergeError
	return errors.As(err, &target)
}
