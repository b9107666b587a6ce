package leasemerge

import (
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/ukaji3/leasemerge-go/pkg/leasemerge/audit"
	"github.com/ukaji3/leasemerge-go/pkg/leasemerge/models"
	"github.com/ukaji3/leasemerge-go/pkg/leasemerge/parser"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// Result is the outcome of a successful merge.
type Result struct {
	// Record is the extracted data.
	Record models.ExtractedRecord `json:"record"`
	// Bindings are the columns each field was written to.
	Bindings models.ColumnBindings `json:"bindings"`
	// SheetName is the sheet the row was appended to.
	SheetName string `json:"sheet_name"`
	// SheetCreated is true when the sheet did not exist before the merge.
	SheetCreated bool `json:"sheet_created"`
	// Row is the 1-based row written.
	Row int `json:"row"`
	// Workbook is the serialized updated workbook.
	Workbook []byte `json:"workbook"`
	// Entry is the audit entry recorded for this merge.
	Entry models.AuditEntry `json:"entry"`
}

// Summary renders the extracted record as a one-row table.
func (r *Result) Summary() models.Table {
	return models.RecordTable(r.Record)
}

// Pipeline extracts lease fields and merges them into workbooks, recording
// each success in a shared audit log.
type Pipeline struct {
	log   *audit.Log
	opts  Options
	now   func() time.Time
	newID func() string
}

// NewPipeline creates a Pipeline recording into log. A nil log gets a fresh one.
func NewPipeline(log *audit.Log, opts Options) *Pipeline {
	if log == nil {
		log = audit.New()
	}
	return &Pipeline{
		log:   log,
		opts:  opts,
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// AuditLog returns the log the pipeline records into.
func (p *Pipeline) AuditLog() *audit.Log {
	return p.log
}

// Extract reads the lease fields from documentText using the pipeline's rules.
// Nothing is merged or recorded.
func (p *Pipeline) Extract(documentText string) (models.ExtractedRecord, error) {
	return Extract(documentText, p.opts)
}

// Run extracts the lease fields from documentText, appends them as a row to
// a private copy of workbook and returns the serialized copy.
//
// Extraction happens before the workbook is opened, so an *ExtractionError
// leaves both the workbook and the audit log untouched. Any later failure is
// a *MergeError. Both are returned wrapped in *PipelineError. The audit entry
// is recorded only once the updated workbook has been serialized.
func (p *Pipeline) Run(documentText string, workbook io.Reader, sourceLabel string) (*Result, error) {
	runID := p.newID()
	sheetName := p.opts.sheetName()
	logger := p.opts.logger().With(
		zap.String("run_id", runID),
		zap.String("source", sourceLabel),
		zap.String("sheet", sheetName),
	)

	record, err := Extract(documentText, p.opts)
	if err != nil {
		logger.Warn("extraction failed", zap.Error(err))
		return nil, &PipelineError{Source: sourceLabel, Err: err}
	}
	logger.Debug("fields extracted", zap.Any("record", record))

	res, err := p.merge(workbook, sheetName, record)
	if err != nil {
		logger.Error("merge failed", zap.Error(err))
		return nil, &PipelineError{Source: sourceLabel, Err: err}
	}

	res.Entry = models.AuditEntry{
		ID:          runID,
		Record:      record,
		SourceLabel: sourceLabel,
		SheetName:   sheetName,
		Row:         res.Row,
		MergedAt:    p.now(),
	}
	p.log.Record(res.Entry)

	logger.Info("row merged",
		zap.Int("row", res.Row),
		zap.Ints("columns", res.Bindings.Columns()),
		zap.Bool("sheet_created", res.SheetCreated),
		zap.Int("audit_entries", p.log.Len()))

	return res, nil
}

func (p *Pipeline) merge(workbook io.Reader, sheetName string, record models.ExtractedRecord) (*Result, error) {
	f, err := excelize.OpenReader(workbook)
	if err != nil {
		return nil, NewMergeError(sheetName, StageOpen, fmt.Errorf("%w: %w", ErrInvalidFormat, err))
	}
	defer f.Close()

	created, err := parser.EnsureSheet(f, sheetName)
	if err != nil {
		return nil, NewMergeError(sheetName, StageSheet, err)
	}

	header, err := parser.ReadHeader(f, sheetName)
	if err != nil {
		return nil, NewMergeError(sheetName, StageHeader, err)
	}

	labelNew := p.opts.ShouldLabelNewColumns()
	bindings, _ := parser.ResolveColumns(header, p.opts.columns(), labelNew)
	if labelNew {
		if err := parser.LabelColumns(f, sheetName, bindings); err != nil {
			return nil, NewMergeError(sheetName, StageHeader, err)
		}
	}

	row, err := parser.AppendRow(f, sheetName, bindings, record)
	if err != nil {
		return nil, NewMergeError(sheetName, StageAppend, err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, NewMergeError(sheetName, StageSave, err)
	}

	return &Result{
		Record:       record,
		Bindings:     bindings,
		SheetName:    sheetName,
		SheetCreated: created,
		Row:          row,
		Workbook:     buf.Bytes(),
	}, nil
}
