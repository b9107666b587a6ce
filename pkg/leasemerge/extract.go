package leasemerge

import (
	"errors"

	"github.com/ukaji3/leasemerge-go/pkg/leasemerge/models"
	"github.com/ukaji3/leasemerge-go/pkg/leasemerge/parser"
)

// Extract reads the four lease fields from document text.
// A missing or empty field is reported as *ExtractionError naming it.
func Extract(text string, opts Options) (models.ExtractedRecord, error) {
	rec, err := parser.ExtractFields(text, opts.rules())
	if err != nil {
		var fe *parser.FieldError
		if errors.As(err, &fe) {
			return models.ExtractedRecord{}, NewExtractionError(fe.Field, fe.Label, fe.Err)
		}
		return models.ExtractedRecord{}, err
	}
	return rec, nil
}
