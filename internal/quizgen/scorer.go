package quizgen

import (
	"sort"
	"strings"
)

// ScoredSentence is a candidate source sentence and its concept density score.
type ScoredSentence struct {
	Text  string
	Score float64
}

// ScoreSentence rates how much concept material a sentence carries per word.
// Sentences that are too short, too long, open with a connective or ask a
// question score 0.
func (a *Analyzer) ScoreSentence(sentence string, concepts ConceptScores) float64 {
	return a.scoreSentence(sentence, TopConcepts(concepts, -1))
}

// scoreSentence sums over an ordered concept list so repeated runs produce
// bit-identical floating point totals.
func (a *Analyzer) scoreSentence(sentence string, concepts []Concept) float64 {
	wordCount := len(strings.Fields(sentence))
	if wordCount < a.opts.MinSentenceWords || wordCount > a.opts.MaxSentenceWords {
		return 0
	}
	if strings.Contains(sentence, "?") {
		return 0
	}
	if a.startsWithConnective(sentence) {
		return 0
	}

	lower := strings.ToLower(sentence)
	var sum float64
	for _, c := range concepts {
		if strings.Contains(lower, c.Term) {
			sum += c.Score
		}
	}
	density := sum / float64(wordCount)

	for _, marker := range a.opts.Lexicon.DefinitionMarkers {
		if strings.Contains(lower, marker) {
			density *= a.opts.DefinitionBoost
			break
		}
	}
	return density
}

func (a *Analyzer) startsWithConnective(sentence string) bool {
	fields := strings.Fields(Sanitize(sentence))
	if len(fields) == 0 {
		return false
	}
	first := strings.Trim(fields[0], "-")
	for _, c := range a.opts.Lexicon.DiscourseConnectives {
		if first == c {
			return true
		}
	}
	return false
}

// RankSentences scores every sentence, drops non-positive scores and orders the
// rest by descending score. Equal scores keep their original order.
func (a *Analyzer) RankSentences(sentences []string, concepts ConceptScores) []ScoredSentence {
	ordered := TopConcepts(concepts, -1)
	ranked := make([]ScoredSentence, 0, len(sentences))
	for _, s := range sentences {
		score := a.scoreSentence(s, ordered)
		if score <= 0 {
			continue
		}
		ranked = append(ranked, ScoredSentence{Text: s, Score: score})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	return ranked
}
