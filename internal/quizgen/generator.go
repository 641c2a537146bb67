package quizgen

import (
	"unicode/utf8"

	"quiz-forge/internal/domain"

	"go.uber.org/zap"
)

// Draft is the outcome of one generation run.
type Draft struct {
	Questions           []domain.Question
	UsedFallback        bool
	ConceptCount        int
	RankedSentenceCount int
}

type draftPhase int

const (
	phaseAccumulating draftPhase = iota
	phaseDone
)

func (p draftPhase) String() string {
	if p == phaseDone {
		return "DONE"
	}
	return "ACCUMULATING"
}

// assemblyState is everything the assembly loop carries between steps.
// The used set is owned by the state and discarded with it.
type assemblyState struct {
	phase     draftPhase
	cursor    int
	questions []domain.Question
	used      UsedConcepts
}

type assembler struct {
	synth  *Synthesizer
	top    []Concept
	target int
	logger *zap.Logger
}

// step consumes at most one ranked sentence and reports the question it
// produced, if any. Once DONE the state no longer changes.
func (a *assembler) step(ranked []ScoredSentence, st assemblyState) (assemblyState, *domain.Question) {
	if st.phase == phaseDone {
		return st, nil
	}
	if len(st.questions) >= a.target || st.cursor >= len(ranked) {
		st.phase = phaseDone
		return st, nil
	}

	sentence := ranked[st.cursor]
	st.cursor++

	q, err := a.synth.Synthesize(sentence.Text, a.top, st.used)
	if err != nil {
		a.logger.Debug("Skipping sentence",
			zap.Int("sentence_index", st.cursor-1),
			zap.Float64("score", sentence.Score),
			zap.Error(err),
		)
		return st, nil
	}

	st.questions = append(st.questions, *q)
	if len(st.questions) >= a.target {
		st.phase = phaseDone
	}
	return st, q
}

// Generator is the quiz draft assembler. It is safe for concurrent use; each
// Draft call owns its random source and used-concept set.
type Generator struct {
	analyzer *Analyzer
	opts     Options
	newRand  RandomFactory
	logger   *zap.Logger
}

// GeneratorOption customizes a Generator.
type GeneratorOption func(*Generator)

// WithRandomFactory replaces the time seeded randomness.
func WithRandomFactory(f RandomFactory) GeneratorOption {
	return func(g *Generator) {
		if f != nil {
			g.newRand = f
		}
	}
}

// WithLogger sets the logger used for per-sentence diagnostics.
func WithLogger(l *zap.Logger) GeneratorOption {
	return func(g *Generator) {
		if l != nil {
			g.logger = l
		}
	}
}

// NewGenerator creates a Generator from immutable options.
func NewGenerator(opts Options, options ...GeneratorOption) *Generator {
	analyzer := NewAnalyzer(opts)
	g := &Generator{
		analyzer: analyzer,
		opts:     analyzer.Options(),
		newRand:  TimeSeededFactory(),
		logger:   zap.NewNop(),
	}
	for _, o := range options {
		o(g)
	}
	return g
}

// Analyzer exposes the analyzer built from the generator options.
func (g *Generator) Analyzer() *Analyzer {
	return g.analyzer
}

// Draft builds up to TargetQuestionCount questions from corpus. Thin corpora
// get the fallback set only; short drafts are topped up with fallback
// questions until MinQuestionCount is reached or the fallback set runs out.
func (g *Generator) Draft(corpus string) Draft {
	if utf8.RuneCountInString(corpus) < g.opts.MinContextLength {
		g.logger.Info("Context too short, using fallback questions",
			zap.Int("length", utf8.RuneCountInString(corpus)),
			zap.Int("min_length", g.opts.MinContextLength),
		)
		return Draft{Questions: FallbackQuestions(), UsedFallback: true}
	}

	concepts := g.analyzer.ExtractKeyConcepts(corpus)
	ranked := g.analyzer.RankSentences(GetSentences(corpus), concepts)

	asm := &assembler{
		synth:  NewSynthesizer(g.opts, g.newRand()),
		top:    TopConcepts(concepts, g.opts.TopConceptLimit),
		target: g.opts.TargetQuestionCount,
		logger: g.logger,
	}
	st := assemblyState{phase: phaseAccumulating, used: make(UsedConcepts)}
	for st.phase != phaseDone {
		st, _ = asm.step(ranked, st)
	}

	draft := Draft{
		Questions:           st.questions,
		ConceptCount:        len(concepts),
		RankedSentenceCount: len(ranked),
	}
	if len(draft.Questions) < g.opts.MinQuestionCount {
		for _, fb := range FallbackQuestions() {
			if len(draft.Questions) >= g.opts.MinQuestionCount {
				break
			}
			draft.Questions = append(draft.Questions, fb)
			draft.UsedFallback = true
		}
	}

	g.logger.Debug("Quiz draft assembled",
		zap.Int("concepts", draft.ConceptCount),
		zap.Int("ranked_sentences", draft.RankedSentenceCount),
		zap.Int("questions", len(draft.Questions)),
		zap.Bool("used_fallback", draft.UsedFallback),
	)
	return draft
}
