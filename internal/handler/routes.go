package handler

import (
	"github.com/gofiber/fiber/v2"

	"quiz-forge/internal/middleware"
)

// RegisterRoutes mounts the API under /api.
func RegisterRoutes(app *fiber.App, drafts *QuizDraftHandler, health *HealthHandler) {
	api := app.Group("/api")
	api.Get("/health", health.Check)

	vm := middleware.NewValidationMiddleware()
	api.Post("/subjects/:subjectID/quiz-drafts", vm.ValidateSubjectID(), drafts.GenerateQuizDraft)
}
