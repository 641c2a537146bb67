package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"quiz-forge/internal/dto"
	"quiz-forge/internal/logger"
	"quiz-forge/internal/middleware"
	"quiz-forge/internal/service"
)

// QuizDraftHandler handles quiz draft HTTP requests
type QuizDraftHandler struct {
	service service.QuizDraftService
}

// NewQuizDraftHandler creates a new QuizDraftHandler instance
func NewQuizDraftHandler(service service.QuizDraftService) *QuizDraftHandler {
	return &QuizDraftHandler{
		service: service,
	}
}

// GenerateQuizDraft godoc
// @Summary Generate a quiz draft
// @Description Builds a quiz draft from the assignments and class materials of a subject
// @Tags quiz-drafts
// @Produce json
// @Param subjectID path string true "Subject ID"
// @Param refresh query bool false "Ignore the cached draft"
// @Param include_answers query bool false "Include correct answers and concepts"
// @Success 200 {object} dto.QuizDraftResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Failure 503 {object} middleware.ErrorResponse
// @Router /subjects/{subjectID}/quiz-drafts [post]
func (h *QuizDraftHandler) GenerateQuizDraft(c *fiber.Ctx) error {
	subjectID, ok := c.Locals(middleware.ValidatedSubjectIDKey).(string)
	if !ok {
		subjectID = c.Params("subjectID")
	}

	opts := service.DraftRequestOptions{Refresh: c.QueryBool("refresh", false)}
	draft, err := h.service.GenerateQuizDraft(c.UserContext(), subjectID, opts)
	if err != nil {
		return err // ErrorHandler maps domain errors to status codes
	}

	logger.Get().Debug("Quiz draft served",
		zap.String("subject_id", subjectID),
		zap.Int("questions", len(draft.Questions)),
		zap.Bool("used_fallback", draft.UsedFallback),
	)
	return c.JSON(dto.NewQuizDraftResponse(draft, c.QueryBool("include_answers", false)))
}
