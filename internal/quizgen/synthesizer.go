package quizgen

import (
	"errors"
	"math"
	"regexp"
	"sort"
	"strings"

	"quiz-forge/internal/domain"
)

// Per-sentence failures. Callers skip the sentence and move on.
var (
	ErrNoCandidateConcept      = errors.New("quizgen: sentence holds no unused top concept")
	ErrInsufficientDistractors = errors.New("quizgen: not enough unrelated concepts for distractors")
)

const trueFalsePrefix = "True or False: "

// UsedConcepts tracks concepts already consumed within one draft.
type UsedConcepts map[string]struct{}

func (u UsedConcepts) Has(term string) bool {
	_, ok := u[term]
	return ok
}

func (u UsedConcepts) Add(term string) {
	u[term] = struct{}{}
}

// Synthesizer turns a ranked sentence into a single question.
type Synthesizer struct {
	opts Options
	rnd  RandomSource
}

// NewSynthesizer creates a Synthesizer drawing from rnd.
func NewSynthesizer(opts Options, rnd RandomSource) *Synthesizer {
	return &Synthesizer{opts: opts.withDefaults(), rnd: rnd}
}

// Synthesize picks the best unused concept of sentence, marks it used and
// builds a question around it. The concept stays used even when the question
// is abandoned, so a later sentence cannot pick it again.
func (s *Synthesizer) Synthesize(sentence string, top []Concept, used UsedConcepts) (*domain.Question, error) {
	concept, ok := s.chooseConcept(sentence, top, used)
	if !ok {
		return nil, ErrNoCandidateConcept
	}
	used.Add(concept.Term)

	matcher := regexp.MustCompile("(?i)" + regexp.QuoteMeta(concept.Term))
	match := matcher.FindString(sentence)
	if match == "" {
		return nil, ErrNoCandidateConcept
	}

	switch s.pickShape(s.rnd.Float64()) {
	case domain.QuestionTypeMultipleChoice:
		return s.multipleChoice(sentence, concept, match, matcher, top)
	case domain.QuestionTypeTrueFalse:
		return s.trueFalse(sentence, concept, matcher, top)
	default:
		return &domain.Question{
			Type:          domain.QuestionTypeShortAnswer,
			Text:          matcher.ReplaceAllLiteralString(sentence, BlankPlaceholder),
			CorrectAnswer: concept.Term,
			Concept:       concept.Term,
		}, nil
	}
}

// chooseConcept prefers phrases over single words, then higher scores.
func (s *Synthesizer) chooseConcept(sentence string, top []Concept, used UsedConcepts) (Concept, bool) {
	lower := strings.ToLower(sentence)
	candidates := make([]Concept, 0, 4)
	for _, c := range top {
		if used.Has(c.Term) || !strings.Contains(lower, c.Term) {
			continue
		}
		candidates = append(candidates, c)
	}
	if len(candidates) == 0 {
		return Concept{}, false
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		pi, pj := candidates[i].IsPhrase(), candidates[j].IsPhrase()
		if pi != pj {
			return pi
		}
		return candidates[i].Score > candidates[j].Score
	})
	return candidates[0], true
}

func (s *Synthesizer) pickShape(r float64) domain.QuestionType {
	w := s.opts.Shapes
	mc, tf := w.MultipleChoice, w.TrueFalse
	if total := mc + tf + w.ShortAnswer; math.Abs(total-1) > 1e-9 {
		mc, tf = mc/total, tf/total
	}
	switch {
	case r < mc:
		return domain.QuestionTypeMultipleChoice
	case r < mc+tf:
		return domain.QuestionTypeTrueFalse
	default:
		return domain.QuestionTypeShortAnswer
	}
}

// pickDistractors draws up to n concepts that neither contain nor are
// contained in term.
func (s *Synthesizer) pickDistractors(term string, top []Concept, n int) []string {
	pool := make([]string, 0, len(top))
	for _, c := range top {
		if strings.Contains(c.Term, term) || strings.Contains(term, c.Term) {
			continue
		}
		pool = append(pool, c.Term)
	}
	s.rnd.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })
	if len(pool) > n {
		pool = pool[:n]
	}
	return pool
}

func (s *Synthesizer) multipleChoice(sentence string, concept Concept, match string, matcher *regexp.Regexp, top []Concept) (*domain.Question, error) {
	distractors := s.pickDistractors(concept.Term, top, s.opts.DistractorCount)
	if len(distractors) < s.opts.DistractorCount {
		return nil, ErrInsufficientDistractors
	}

	options := append(distractors, match)
	s.rnd.Shuffle(len(options), func(i, j int) { options[i], options[j] = options[j], options[i] })

	return &domain.Question{
		Type:          domain.QuestionTypeMultipleChoice,
		Text:          matcher.ReplaceAllLiteralString(sentence, BlankPlaceholder),
		Options:       options,
		CorrectAnswer: match,
		Concept:       concept.Term,
	}, nil
}

func (s *Synthesizer) trueFalse(sentence string, concept Concept, matcher *regexp.Regexp, top []Concept) (*domain.Question, error) {
	if s.rnd.Float64() < 0.5 {
		return &domain.Question{
			Type:          domain.QuestionTypeTrueFalse,
			Text:          trueFalsePrefix + sentence,
			Options:       domain.TrueFalseOptions(),
			CorrectAnswer: domain.AnswerTrue,
			Concept:       concept.Term,
		}, nil
	}

	distractors := s.pickDistractors(concept.Term, top, 1)
	if len(distractors) == 0 {
		return nil, ErrInsufficientDistractors
	}
	return &domain.Question{
		Type:          domain.QuestionTypeTrueFalse,
		Text:          trueFalsePrefix + matcher.ReplaceAllLiteralString(sentence, distractors[0]),
		Options:       domain.TrueFalseOptions(),
		CorrectAnswer: domain.AnswerFalse,
		Concept:       concept.Term,
	}, nil
}
