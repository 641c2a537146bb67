package quizgen

import (
	"regexp"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// sentenceBoundary matches terminal punctuation followed by whitespace and a capital letter.
var sentenceBoundary = regexp.MustCompile(`[.!?]\s+[A-Z]`)

// ConceptScores maps a unigram or two-word phrase to its normalized importance in (0,1].
type ConceptScores map[string]float64

// Concept is a scored concept, used where ordering matters.
type Concept struct {
	Term  string
	Score float64
}

// IsPhrase reports whether the concept is a multi-word phrase.
func (c Concept) IsPhrase() bool {
	return strings.Contains(c.Term, " ")
}

// Analyzer tokenizes course text and computes concept scores.
// It holds only immutable options and is safe for concurrent use.
type Analyzer struct {
	opts Options
}

// NewAnalyzer creates an Analyzer; zero option fields fall back to defaults.
func NewAnalyzer(opts Options) *Analyzer {
	return &Analyzer{opts: opts.withDefaults()}
}

// Options returns the effective options.
func (a *Analyzer) Options() Options {
	return a.opts
}

// Sanitize lowercases text and removes everything except letters, digits, whitespace and hyphens.
func Sanitize(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range strings.ToLower(text) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) || r == '-' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// GetSentences splits text into candidate sentences. A boundary is terminal
// punctuation followed by whitespace and a capital letter, which keeps most
// lowercase abbreviations intact. Text without a boundary is one sentence.
func GetSentences(text string) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	bounds := sentenceBoundary.FindAllStringIndex(text, -1)
	if len(bounds) == 0 {
		return []string{text}
	}

	sentences := make([]string, 0, len(bounds)+1)
	start := 0
	for _, m := range bounds {
		end := m[0] + 1 // keep the punctuation
		if s := strings.TrimSpace(text[start:end]); s != "" {
			sentences = append(sentences, s)
		}
		start = m[1] - 1 // the capital letter opens the next sentence
	}
	if s := strings.TrimSpace(text[start:]); s != "" {
		sentences = append(sentences, s)
	}
	return sentences
}

// GetWords returns lowercase alphanumeric tokens longer than two characters.
func GetWords(text string) []string {
	fields := strings.Fields(text)
	words := make([]string, 0, len(fields))
	for _, f := range fields {
		w := stripNonAlphanumeric(f)
		if utf8.RuneCountInString(w) <= 2 {
			continue
		}
		words = append(words, w)
	}
	return words
}

func stripNonAlphanumeric(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String()
}

// ComputeTermFrequency counts words that are not stop words.
func (a *Analyzer) ComputeTermFrequency(text string) map[string]int {
	freq := make(map[string]int)
	for _, w := range GetWords(text) {
		if a.opts.Lexicon.IsStopWord(w) {
			continue
		}
		freq[w]++
	}
	return freq
}

// ComputeBigrams counts adjacent word pairs where neither word is a stop word.
func (a *Analyzer) ComputeBigrams(text string) map[string]int {
	words := GetWords(text)
	freq := make(map[string]int)
	for i := 0; i+1 < len(words); i++ {
		w1, w2 := words[i], words[i+1]
		if a.opts.Lexicon.IsStopWord(w1) || a.opts.Lexicon.IsStopWord(w2) {
			continue
		}
		freq[w1+" "+w2]++
	}
	return freq
}

// ExtractKeyConcepts merges unigram counts with boosted recurring bigrams and
// normalizes by the largest value, so the strongest concept scores exactly 1.
func (a *Analyzer) ExtractKeyConcepts(text string) ConceptScores {
	raw := make(map[string]float64)
	for w, n := range a.ComputeTermFrequency(text) {
		raw[w] = float64(n)
	}
	for pair, n := range a.ComputeBigrams(text) {
		if n > a.opts.BigramMinCount {
			raw[pair] = float64(n) * a.opts.BigramWeight
		}
	}

	maxVal := 1.0
	for _, v := range raw {
		if v > maxVal {
			maxVal = v
		}
	}

	scores := make(ConceptScores, len(raw))
	for k, v := range raw {
		scores[k] = v / maxVal
	}
	return scores
}

// TopConcepts returns the n highest scoring concepts. Ties are broken
// lexically so the result does not depend on map iteration order.
func TopConcepts(scores ConceptScores, n int) []Concept {
	all := make([]Concept, 0, len(scores))
	for term, score := range scores {
		all = append(all, Concept{Term: term, Score: score})
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].Score != all[j].Score {
			return all[i].Score > all[j].Score
		}
		return all[i].Term < all[j].Term
	})
	if n >= 0 && len(all) > n {
		all = all[:n]
	}
	return all
}
