package report

import (
	"errors"
	"strings"
	"testing"
)

// asMalformed is a shorthand for errors.As against MalformedRecordError.
func asMalformed(err error, target **MalformedRecordError) bool {
	return errors.As(err, target)
}

func TestMalformedRecordErrorMessages(t *testing.T) {
	missing := missingField("settings.failure_delta")
	if !strings.Contains(missing.Error(), "settings.failure_delta") {
		t.Errorf("missing-field error does not name the field: %q", missing.Error())
	}

	reasoned := &MalformedRecordError{Field: "result.expected_crashes", Reason: "duplicate scheduled crash for node 3"}
	if !strings.Contains(reasoned.Error(), "duplicate scheduled crash") {
		t.Errorf("reasoned error lost its reason: %q", reasoned.Error())
	}
}
