package middleware

import (
	"github.com/gofiber/fiber/v2"

	"quiz-forge/internal/validation"
)

// ValidatedSubjectIDKey is the fiber.Locals key holding the checked subject ID.
const ValidatedSubjectIDKey = "validated_subject_id"

// ValidationMiddleware provides request validation middleware
type ValidationMiddleware struct {
	validator *validation.Validator
}

// NewValidationMiddleware creates a new validation middleware instance
func NewValidationMiddleware() *ValidationMiddleware {
	return &ValidationMiddleware{
		validator: validation.NewValidator(),
	}
}

// ValidateSubjectID validates the subjectID path parameter
func (vm *ValidationMiddleware) ValidateSubjectID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		subjectID := c.Params("subjectID")

		if errs := vm.validator.ValidateSubjectID(subjectID); len(errs) > 0 {
			return errs // This will be handled by ErrorHandler middleware
		}

		c.Locals(ValidatedSubjectIDKey, subjectID)
		return c.Next()
	}
}
