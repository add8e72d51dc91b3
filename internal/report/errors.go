package report

import (
	"errors"
	"fmt"
)

// ErrDivisionUndefined is returned when a detection rate is requested for a
// run whose expected-detection count is zero. Callers must treat such runs
// as a distinct case instead of propagating NaN/Inf into aggregates.
var ErrDivisionUndefined = errors.New("detection rate undefined: expected detections is zero")

// MalformedRecordError reports a record that violates the input contract:
// a required field is missing or an invariant does not hold. The field name
// uses the record's JSON path (e.g. "settings.failure_delta").
type MalformedRecordError struct {
	Field  string
	Reason string
}

func (e *MalformedRecordError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("malformed record: field %q: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("malformed record: missing required field %q", e.Field)
}

// missingField builds the error for a required field that is absent.
func missingField(field string) error {
	return &MalformedRecordError{Field: field}
}
