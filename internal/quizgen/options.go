package quizgen

// Defaults for the generation thresholds. The bigram count threshold and the
// top concept cutoff are empirical; keep them overridable rather than derived.
const (
	DefaultMinContextLength    = 200
	DefaultTargetQuestionCount = 10
	DefaultMinQuestionCount    = 5
	DefaultTopConceptLimit     = 40
	DefaultBigramMinCount      = 1
	DefaultBigramWeight        = 2.0
	DefaultMinSentenceWords    = 6
	DefaultMaxSentenceWords    = 40
	DefaultDefinitionBoost     = 1.5
	DefaultDistractorCount     = 3

	BlankPlaceholder = "_____"
)

// ShapeWeights is the probability split between question shapes.
// Values are relative; they do not need to sum to 1.
type ShapeWeights struct {
	MultipleChoice float64
	TrueFalse      float64
	ShortAnswer    float64
}

// DefaultShapeWeights is the 60/30/10 split.
func DefaultShapeWeights() ShapeWeights {
	return ShapeWeights{MultipleChoice: 0.6, TrueFalse: 0.3, ShortAnswer: 0.1}
}

// Options is the immutable configuration of one generator. It is passed by
// value so concurrent generators never share mutable state.
type Options struct {
	Lexicon Lexicon

	MinContextLength    int
	TargetQuestionCount int
	MinQuestionCount    int
	TopConceptLimit     int
	BigramMinCount      int
	BigramWeight        float64
	MinSentenceWords    int
	MaxSentenceWords    int
	DefinitionBoost     float64
	DistractorCount     int
	Shapes              ShapeWeights
}

// DefaultOptions returns the stock English configuration.
func DefaultOptions() Options {
	return Options{
		Lexicon:             DefaultLexicon(),
		MinContextLength:    DefaultMinContextLength,
		TargetQuestionCount: DefaultTargetQuestionCount,
		MinQuestionCount:    DefaultMinQuestionCount,
		TopConceptLimit:     DefaultTopConceptLimit,
		BigramMinCount:      DefaultBigramMinCount,
		BigramWeight:        DefaultBigramWeight,
		MinSentenceWords:    DefaultMinSentenceWords,
		MaxSentenceWords:    DefaultMaxSentenceWords,
		DefinitionBoost:     DefaultDefinitionBoost,
		DistractorCount:     DefaultDistractorCount,
		Shapes:              DefaultShapeWeights(),
	}
}

// withDefaults fills zero values so partially specified options stay usable.
func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.Lexicon.StopWords == nil {
		o.Lexicon.StopWords = d.Lexicon.StopWords
	}
	if o.Lexicon.DefinitionMarkers == nil {
		o.Lexicon.DefinitionMarkers = d.Lexicon.DefinitionMarkers
	}
	if o.Lexicon.DiscourseConnectives == nil {
		o.Lexicon.DiscourseConnectives = d.Lexicon.DiscourseConnectives
	}
	if o.MinContextLength <= 0 {
		o.MinContextLength = d.MinContextLength
	}
	if o.TargetQuestionCount <= 0 {
		o.TargetQuestionCount = d.TargetQuestionCount
	}
	if o.MinQuestionCount <= 0 {
		o.MinQuestionCount = d.MinQuestionCount
	}
	if o.MinQuestionCount > o.TargetQuestionCount {
		o.MinQuestionCount = o.TargetQuestionCount
	}
	if o.TopConceptLimit <= 0 {
		o.TopConceptLimit = d.TopConceptLimit
	}
	if o.BigramMinCount < 0 {
		o.BigramMinCount = d.BigramMinCount
	}
	if o.BigramWeight <= 0 {
		o.BigramWeight = d.BigramWeight
	}
	if o.MinSentenceWords <= 0 {
		o.MinSentenceWords = d.MinSentenceWords
	}
	if o.MaxSentenceWords <= 0 {
		o.MaxSentenceWords = d.MaxSentenceWords
	}
	if o.DefinitionBoost <= 0 {
		o.DefinitionBoost = d.DefinitionBoost
	}
	if o.DistractorCount <= 0 {
		o.DistractorCount = d.DistractorCount
	}
	if o.Shapes.MultipleChoice < 0 || o.Shapes.TrueFalse < 0 || o.Shapes.ShortAnswer < 0 ||
		o.Shapes.MultipleChoice+o.Shapes.TrueFalse+o.Shapes.ShortAnswer == 0 {
		o.Shapes = d.Shapes
	}
	return o
}
