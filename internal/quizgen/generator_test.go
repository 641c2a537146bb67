package quizgen

import (
	"fmt"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"quiz-forge/internal/domain"
)

// networkCorpus has 50 sentences: six about neural networks, four about
// backpropagation and forty fillers made of words seen only once.
func networkCorpus() string {
	var b strings.Builder
	neural, backprop := 0, 0
	for i := 0; i < 50; i++ {
		switch {
		case i%8 == 1 && neural < 6:
			fmt.Fprintf(&b, "A neural network learns pattern%02d from labelled example%02d data. ", i, i)
			neural++
		case i%8 == 5 && backprop < 4:
			fmt.Fprintf(&b, "Training uses backpropagation to adjust weight%02d values carefully. ", i)
			backprop++
		default:
			fmt.Fprintf(&b, "Alpha%02d beta%02d gamma%02d delta%02d epsilon%02d zeta%02d. ", i, i, i, i, i, i)
		}
	}
	return b.String()
}

func assertWellFormed(t *testing.T, questions []domain.Question) {
	t.Helper()
	seen := make(map[string]struct{})
	for i, q := range questions {
		assert.NoError(t, q.Validate(), "question %d", i)
		if q.Concept == "" {
			continue
		}
		_, dup := seen[q.Concept]
		assert.False(t, dup, "concept %q reused", q.Concept)
		seen[q.Concept] = struct{}{}
	}
}

func TestGenerator_ShortContextUsesFallback(t *testing.T) {
	g := NewGenerator(DefaultOptions())

	draft := g.Draft(strings.Repeat("x", 199))

	assert.True(t, draft.UsedFallback)
	assert.Equal(t, FallbackQuestions(), draft.Questions)
	assert.Zero(t, draft.ConceptCount)
}

func TestGenerator_LengthCountsRunes(t *testing.T) {
	g := NewGenerator(DefaultOptions())

	corpus := strings.Repeat("é", 150)
	require.Greater(t, len(corpus), 200)
	require.Less(t, utf8.RuneCountInString(corpus), 200)

	assert.Equal(t, FallbackQuestions(), g.Draft(corpus).Questions)
}

func TestGenerator_ThresholdRunsPipeline(t *testing.T) {
	g := NewGenerator(DefaultOptions())
	corpus := strings.Repeat("Mitochondria produce cellular energy. ", 6)[:200]

	draft := g.Draft(corpus)

	assert.Positive(t, draft.ConceptCount, "200 characters reach the analysis pipeline")
}

func TestGenerator_Draft(t *testing.T) {
	g := NewGenerator(DefaultOptions(), WithRandomFactory(SeededFactory(7)), WithLogger(zap.NewNop()))

	draft := g.Draft(networkCorpus())

	assert.False(t, draft.UsedFallback)
	assert.Len(t, draft.Questions, DefaultTargetQuestionCount)
	assert.Equal(t, 50, draft.RankedSentenceCount)
	assertWellFormed(t, draft.Questions)

	var concepts []string
	for _, q := range draft.Questions {
		concepts = append(concepts, q.Concept)
	}
	assert.Contains(t, concepts, "neural network")
}

func TestGenerator_BigramOutranksRareWords(t *testing.T) {
	g := NewGenerator(DefaultOptions())
	scores := g.Analyzer().ExtractKeyConcepts(networkCorpus())

	assert.InDelta(t, 1.0, scores["neural network"], 1e-9)
	assert.Greater(t, scores["neural network"], scores["backpropagation"])
	for _, rare := range []string{"alpha00", "zeta12", "pattern01", "weight05"} {
		require.Contains(t, scores, rare)
		assert.Greater(t, scores["neural network"], scores[rare], rare)
	}
}

func TestGenerator_InvariantsAcrossSeeds(t *testing.T) {
	corpus := networkCorpus()
	for seed := uint64(1); seed <= 25; seed++ {
		g := NewGenerator(DefaultOptions(), WithRandomFactory(SeededFactory(seed)))
		draft := g.Draft(corpus)

		assert.LessOrEqual(t, len(draft.Questions), DefaultTargetQuestionCount)
		assertWellFormed(t, draft.Questions)
		for _, q := range draft.Questions {
			if q.Type == domain.QuestionTypeTrueFalse && q.CorrectAnswer == domain.AnswerFalse {
				assert.NotContains(t, strings.ToLower(q.Text), q.Concept, "false statement still names its concept")
			}
		}
	}
}

func TestGenerator_SameSeedSameDraft(t *testing.T) {
	corpus := networkCorpus()
	a := NewGenerator(DefaultOptions(), WithRandomFactory(SeededFactory(99))).Draft(corpus)
	b := NewGenerator(DefaultOptions(), WithRandomFactory(SeededFactory(99))).Draft(corpus)

	assert.Equal(t, a, b)
}

func TestGenerator_ShortSentencesNeverUsed(t *testing.T) {
	g := NewGenerator(DefaultOptions(), WithRandomFactory(func() RandomSource { return newSequenceSource(0.95) }))
	corpus := "Neural network rocks. " + networkCorpus()

	draft := g.Draft(corpus)

	for _, q := range draft.Questions {
		assert.NotContains(t, q.Text, "rocks")
	}
}

func TestGenerator_TopsUpWithFallback(t *testing.T) {
	opts := DefaultOptions()
	opts.MinQuestionCount = 2
	g := NewGenerator(opts, WithRandomFactory(func() RandomSource { return newSequenceSource(0.95) }))

	var long strings.Builder
	long.WriteString("Filler")
	for i := 0; i < 45; i++ {
		fmt.Fprintf(&long, " word%02d", i)
	}
	long.WriteString(".")
	corpus := "Mitochondria produce cellular energy through respiration. " + long.String()

	draft := g.Draft(corpus)

	require.Len(t, draft.Questions, 2)
	assert.True(t, draft.UsedFallback)
	assert.Equal(t, 1, draft.RankedSentenceCount)
	assert.NotEmpty(t, draft.Questions[0].Concept)
	assert.Equal(t, FallbackQuestions()[0], draft.Questions[1])
}

func TestGenerator_NoEligibleSentences(t *testing.T) {
	g := NewGenerator(DefaultOptions())
	corpus := strings.Repeat("word ", 60)

	draft := g.Draft(corpus)

	assert.True(t, draft.UsedFallback)
	assert.Zero(t, draft.RankedSentenceCount)
	assert.Equal(t, FallbackQuestions(), draft.Questions)
}

func TestAssembler_Step(t *testing.T) {
	a := &assembler{
		synth:  NewSynthesizer(DefaultOptions(), newSequenceSource(0.95)),
		top:    networkConcepts(),
		target: 1,
		logger: zap.NewNop(),
	}
	ranked := []ScoredSentence{
		{Text: "Completely unrelated words appear here today.", Score: 1},
		{Text: networkSentence, Score: 0.5},
		{Text: networkSentence, Score: 0.4},
	}
	st := assemblyState{phase: phaseAccumulating, used: make(UsedConcepts)}

	st, q := a.step(ranked, st)
	assert.Nil(t, q, "sentence without concept is skipped")
	assert.Equal(t, 1, st.cursor)
	assert.Equal(t, phaseAccumulating, st.phase)

	st, q = a.step(ranked, st)
	require.NotNil(t, q)
	assert.Equal(t, phaseDone, st.phase)
	assert.Equal(t, "DONE", st.phase.String())

	again, q := a.step(ranked, st)
	assert.Nil(t, q)
	assert.Equal(t, st, again, "DONE is terminal")
}

func TestAssembler_StopsWhenSentencesRunOut(t *testing.T) {
	a := &assembler{
		synth:  NewSynthesizer(DefaultOptions(), newSequenceSource(0.95)),
		top:    networkConcepts(),
		target: 10,
		logger: zap.NewNop(),
	}
	st := assemblyState{phase: phaseAccumulating, used: make(UsedConcepts)}

	st, _ = a.step(nil, st)

	assert.Equal(t, phaseDone, st.phase)
	assert.Empty(t, st.questions)
}
