package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateResumePayload(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		valid   bool
	}{
		{"Full shape", `{"personalInfo":{"name":"Test User"},"experience":[{"company":"Test Co"}]}`, true},
		{"Empty object", `{}`, true},
		{"Unknown extra fields tolerated", `{"personalInfo":{},"extra":42}`, true},
		{"Experience must be an array", `{"experience":"lots"}`, false},
		{"Experience items must be objects", `{"experience":["Acme"]}`, false},
		{"Skills must be an object", `{"skills":["Go"]}`, false},
		{"PersonalInfo must be an object", `{"personalInfo":"Test User"}`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateResumePayload(tt.payload)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				var ve *ValidationError
				assert.ErrorAs(t, err, &ve)
				assert.NotEmpty(t, ve.Errors)
			}
		})
	}
}

func TestValidateResumePayloadNotJSON(t *testing.T) {
	err := ValidateResumePayload("definitely not json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not valid JSON")
}
