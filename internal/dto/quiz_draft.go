package dto

import (
	"time"

	"quiz-forge/internal/domain"
)

// QuestionResponse represents a generated question in the API response
// @Description Generated quiz question
type QuestionResponse struct {
	ID            string   `json:"id"`
	Type          string   `json:"type"` // MCQ, TRUE_FALSE, SHORT_ANSWER
	Text          string   `json:"text"`
	Options       []string `json:"options,omitempty"`
	CorrectAnswer string   `json:"correct_answer,omitempty"` // include_answers=false면 비어 있음
	Concept       string   `json:"concept,omitempty"`
}

// QuizDraftResponse represents a quiz draft in the API response
// @Description Quiz draft generated from subject content
type QuizDraftResponse struct {
	SubjectID    string             `json:"subject_id"`
	Questions    []QuestionResponse `json:"questions"`
	UsedFallback bool               `json:"used_fallback"`
	GeneratedAt  time.Time          `json:"generated_at"`
}

// HealthResponse is returned by the health check endpoint
type HealthResponse struct {
	Status string `json:"status"`
	Cache  string `json:"cache"`
}

// NewQuestionResponses maps questions to their API shape. Without
// includeAnswers the correct answer and target concept are left out, which is
// what a student facing, unattempted quiz needs.
func NewQuestionResponses(questions []domain.Question, includeAnswers bool) []QuestionResponse {
	out := make([]QuestionResponse, len(questions))
	for i, q := range questions {
		out[i] = QuestionResponse{
			ID:      q.ID,
			Type:    string(q.Type),
			Text:    q.Text,
			Options: append([]string(nil), q.Options...),
		}
		if includeAnswers {
			out[i].CorrectAnswer = q.CorrectAnswer
			out[i].Concept = q.Concept
		}
	}
	return out
}

// NewQuizDraftResponse converts a domain draft.
func NewQuizDraftResponse(draft *domain.QuizDraft, includeAnswers bool) QuizDraftResponse {
	return QuizDraftResponse{
		SubjectID:    draft.SubjectID,
		Questions:    NewQuestionResponses(draft.Questions, includeAnswers),
		UsedFallback: draft.UsedFallback,
		GeneratedAt:  draft.GeneratedAt,
	}
}
