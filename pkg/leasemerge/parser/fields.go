// Package parser provides lease text extraction and sheet manipulation helpers.
package parser

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/ukaji3/leasemerge-go/pkg/leasemerge/models"
)

// ErrLabelNotFound indicates a rule's label does not occur in the text.
var ErrLabelNotFound = errors.New("label not found")

// ErrEmptyValue indicates a label was found but nothing followed it.
var ErrEmptyValue = errors.New("empty value")

// Rule is a declarative extraction rule: a literal label, followed by
// whitespace, whose value runs to end of line or to the Until delimiter.
type Rule struct {
	// Field is the record field the captured value is assigned to.
	Field string `json:"field" yaml:"field"`
	// Label is matched literally, including internal spacing.
	Label string `json:"label" yaml:"label"`
	// Until ends the capture at its first occurrence on the same line.
	// Empty means end of line.
	Until string `json:"until,omitempty" yaml:"until,omitempty"`
}

// DefaultRules returns the lease agreement label set.
func DefaultRules() []Rule {
	return []Rule{
		{Field: models.FieldRegion, Label: "ATC REGION"},
		{Field: models.FieldSiteNumber, Label: "LESSEE  SITE NUMBER"},
		{Field: models.FieldMonthlyTotal, Label: "TOTAL  -  per month (exclusive of VAT)", Until: "R"},
		{Field: models.FieldCommencementDate, Label: "RENEWAL TERM  COMMENCEMENT  DATE"},
	}
}

// Pattern compiles the rule into a regular expression with one capture group.
func (r Rule) Pattern() (*regexp.Regexp, error) {
	if r.Label == "" {
		return nil, fmt.Errorf("rule for %q has an empty label", r.Field)
	}
	expr := regexp.QuoteMeta(r.Label) + `\s+(.+)`
	if r.Until != "" {
		expr = regexp.QuoteMeta(r.Label) + `\s+(.+?)` + regexp.QuoteMeta(r.Until)
	}
	return regexp.Compile(expr)
}

// FieldError reports a field that no rule could fill.
type FieldError struct {
	Field string
	Label string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("field %s (label %q): %v", e.Field, e.Label, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// ErrNoRule indicates no rule targets a record field.
var ErrNoRule = errors.New("no rule for field")

type compiledRule struct {
	Rule
	re *regexp.Regexp
}

// compileRules compiles every rule once, rejecting unknown fields and rule
// sets that leave a record field without a rule.
func compileRules(rules []Rule) ([]compiledRule, error) {
	compiled := make([]compiledRule, 0, len(rules))
	covered := make(map[string]bool, len(models.FieldOrder))
	for _, rule := range rules {
		if !models.IsKnownField(rule.Field) {
			return nil, fmt.Errorf("rule targets unknown field %q", rule.Field)
		}
		re, err := rule.Pattern()
		if err != nil {
			return nil, err
		}
		compiled = append(compiled, compiledRule{Rule: rule, re: re})
		covered[rule.Field] = true
	}
	for _, field := range models.FieldOrder {
		if !covered[field] {
			return nil, &FieldError{Field: field, Err: ErrNoRule}
		}
	}
	return compiled, nil
}

// ExtractFields applies rules to text and returns a fully populated record.
// Each rule is evaluated independently against the whole text and only the
// first match counts. When several rules target one field, the first rule
// yielding a non-empty value wins. The first field (in models.FieldOrder)
// left empty is reported as a *FieldError. A field no rule targets fails
// with ErrNoRule before the text is scanned.
func ExtractFields(text string, rules []Rule) (models.ExtractedRecord, error) {
	compiled, err := compileRules(rules)
	if err != nil {
		return models.ExtractedRecord{}, err
	}

	var rec models.ExtractedRecord
	failures := make(map[string]*FieldError)

	for _, rule := range compiled {
		if v, _ := rec.Get(rule.Field); v != "" {
			continue
		}

		value, fe := rule.apply(text)
		if fe != nil {
			if _, seen := failures[rule.Field]; !seen {
				failures[rule.Field] = fe
			}
			continue
		}
		if err := rec.Set(rule.Field, value); err != nil {
			return models.ExtractedRecord{}, err
		}
	}

	if field := rec.MissingField(); field != "" {
		if fe := failures[field]; fe != nil {
			return models.ExtractedRecord{}, fe
		}
		return models.ExtractedRecord{}, &FieldError{Field: field, Err: ErrLabelNotFound}
	}
	return rec, nil
}

func (r compiledRule) apply(text string) (string, *FieldError) {
	m := r.re.FindStringSubmatch(text)
	if m == nil {
		return "", &FieldError{Field: r.Field, Label: r.Label, Err: ErrLabelNotFound}
	}
	value := strings.TrimSpace(m[1])
	if value == "" {
		return "", &FieldError{Field: r.Field, Label: r.Label, Err: ErrEmptyValue}
	}
	return value, nil
}
