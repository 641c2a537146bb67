package validation

import (
	"regexp"
	"strings"

	"quiz-forge/internal/domain"
)

const maxSubjectIDLength = 64

var subjectIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// Validator provides request validation functionality
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateSubjectID checks the path parameter naming the subject.
func (v *Validator) ValidateSubjectID(subjectID string) domain.ValidationErrors {
	var errs domain.ValidationErrors

	switch {
	case strings.TrimSpace(subjectID) == "":
		errs = append(errs, domain.NewMissingFieldError("subject_id"))
	case len(subjectID) > maxSubjectIDLength:
		errs = append(errs, domain.NewValidationError("subject_id", "must be at most 64 characters"))
	case !subjectIDPattern.MatchString(subjectID):
		errs = append(errs, domain.NewInvalidFormatError("subject_id", subjectID))
	}

	return errs
}
