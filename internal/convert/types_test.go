package convert

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseQuality(t *testing.T) {
	tests := []struct {
		input string
		want  Quality
	}{
		{"Minimum", QualityMinimum},
		{"minimum", QualityMinimum},
		{"Standard", QualityStandard},
		{"Maximum", QualityMaximum},
		{"maximum", QualityMaximum},
		// Unrecognized input falls back to Standard, never an error.
		{"", QualityStandard},
		{"Ultra", QualityStandard},
		{"MINIMUM", QualityStandard},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseQuality(tt.input))
		})
	}
}

func TestQualityHint(t *testing.T) {
	assert.Equal(t, ExportHint{Set: true, Value: 2}, QualityMinimum.Hint())
	assert.Equal(t, ExportHint{Set: true, Value: 0}, QualityStandard.Hint())
	assert.Equal(t, ExportHint{}, QualityMaximum.Hint(), "maximum fidelity passes no hint")
}

func TestFailureKindString(t *testing.T) {
	assert.Equal(t, "InputNotFound", FailureInputNotFound.String())
	assert.Equal(t, "OutputNotWritable", FailureOutputNotWritable.String())
	assert.Equal(t, "AutomationFailure", FailureAutomation.String())
	assert.Equal(t, "Timeout", FailureTimeout.String())
	assert.Equal(t, "UnknownFailure", FailureUnknown.String())
}
