package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateSubjectID(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name      string
		subjectID string
		wantField bool
	}{
		{"ulid", "01HZY3Q6W8K6M3V1C8T2D5R7FJ", false},
		{"numeric", "1024", false},
		{"dashed", "bio-101_fall", false},
		{"empty", "", true},
		{"blank", "   ", true},
		{"too long", strings.Repeat("a", 65), true},
		{"bad characters", "bio/101", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := v.ValidateSubjectID(tt.subjectID)
			if !tt.wantField {
				assert.Empty(t, errs)
				return
			}
			if assert.Len(t, errs, 1) {
				assert.Equal(t, "subject_id", errs[0].Field)
			}
		})
	}
}
