package quizgen

import "quiz-forge/internal/domain"

var fallbackQuestions = []domain.Question{
	{
		Type: domain.QuestionTypeMultipleChoice,
		Text: "Which study habit is most effective for remembering the key ideas of this subject?",
		Options: []string{
			"Reviewing the material regularly and testing yourself",
			"Reading the material once the night before the exam",
			"Skipping the readings and relying on memory",
			"Only memorizing the titles of each section",
		},
		CorrectAnswer: "Reviewing the material regularly and testing yourself",
	},
	{
		Type:          domain.QuestionTypeTrueFalse,
		Text:          "True or False: Summarizing the main concepts of a lesson in your own words improves understanding.",
		Options:       domain.TrueFalseOptions(),
		CorrectAnswer: domain.AnswerTrue,
	},
}

// FallbackQuestions returns fresh copies of the fixed questions used when the
// source material is too thin. They carry no concept.
func FallbackQuestions() []domain.Question {
	out := make([]domain.Question, 0, len(fallbackQuestions))
	for _, q := range fallbackQuestions {
		out = append(out, q.Clone())
	}
	return out
}
