package domain

import (
	"fmt"
	"strings"
	"time"
)

// QuestionType identifies the shape of a generated question
type QuestionType string

const (
	QuestionTypeMultipleChoice QuestionType = "MCQ"
	QuestionTypeTrueFalse      QuestionType = "TRUE_FALSE"
	QuestionTypeShortAnswer    QuestionType = "SHORT_ANSWER"
)

const (
	AnswerTrue  = "True"
	AnswerFalse = "False"
)

// TrueFalseOptions returns the fixed option list of a true/false question.
func TrueFalseOptions() []string {
	return []string{AnswerTrue, AnswerFalse}
}

// Question represents a single generated quiz question
type Question struct {
	ID            string       `json:"id"`
	Type          QuestionType `json:"type"`
	Text          string       `json:"text"`
	Options       []string     `json:"options,omitempty"` // 객관식/OX 문제에만 존재
	CorrectAnswer string       `json:"correct_answer"`
	Concept       string       `json:"concept,omitempty"` // 빈칸으로 만든 개념, 기본 문제는 비어 있음
}

// HasOptions reports whether the question carries an option list
func (q *Question) HasOptions() bool {
	return len(q.Options) > 0
}

// Validate checks the structural invariants of a question
func (q *Question) Validate() error {
	if strings.TrimSpace(q.Text) == "" {
		return NewValidationError("text", "question text is required")
	}
	if q.CorrectAnswer == "" {
		return NewValidationError("correct_answer", "correct answer is required")
	}

	switch q.Type {
	case QuestionTypeMultipleChoice:
		if len(q.Options) != 4 {
			return NewValidationError("options", fmt.Sprintf("multiple choice requires 4 options, got %d", len(q.Options)))
		}
		seen := make(map[string]struct{}, len(q.Options))
		for _, opt := range q.Options {
			if _, dup := seen[opt]; dup {
				return NewValidationError("options", fmt.Sprintf("duplicate option %q", opt))
			}
			seen[opt] = struct{}{}
		}
	case QuestionTypeTrueFalse:
		if len(q.Options) != 2 || q.Options[0] != AnswerTrue || q.Options[1] != AnswerFalse {
			return NewValidationError("options", "true/false options must be [True, False]")
		}
	case QuestionTypeShortAnswer:
		if len(q.Options) != 0 {
			return NewValidationError("options", "short answer must not carry options")
		}
		return nil
	default:
		return NewValidationError("type", fmt.Sprintf("unknown question type %q", q.Type))
	}

	for _, opt := range q.Options {
		if opt == q.CorrectAnswer {
			return nil
		}
	}
	return NewValidationError("correct_answer", "correct answer must be one of the options")
}

// Clone returns a deep copy so callers may mutate options freely
func (q Question) Clone() Question {
	if q.Options != nil {
		q.Options = append([]string(nil), q.Options...)
	}
	return q
}

// QuizDraft is an unsaved set of questions generated for a subject.
// Instructors review and edit it before it becomes a real quiz.
type QuizDraft struct {
	SubjectID    string     `json:"subject_id"`
	Questions    []Question `json:"questions"`
	UsedFallback bool       `json:"used_fallback"`
	GeneratedAt  time.Time  `json:"generated_at"`
}
