package quizgen

import "strings"

// Lexicon holds the language dependent word lists used while scoring.
// Swap it to change locale or domain without touching the scoring code.
type Lexicon struct {
	StopWords            map[string]struct{}
	DefinitionMarkers    []string
	DiscourseConnectives []string
}

// NewLexicon builds a lexicon from plain word lists. Entries are lowercased.
func NewLexicon(stopWords, definitionMarkers, discourseConnectives []string) Lexicon {
	set := make(map[string]struct{}, len(stopWords))
	for _, w := range stopWords {
		set[strings.ToLower(strings.TrimSpace(w))] = struct{}{}
	}
	return Lexicon{
		StopWords:            set,
		DefinitionMarkers:    lowerAll(definitionMarkers),
		DiscourseConnectives: lowerAll(discourseConnectives),
	}
}

// DefaultLexicon returns the English lexicon.
func DefaultLexicon() Lexicon {
	return NewLexicon(englishStopWords, englishDefinitionMarkers, englishDiscourseConnectives)
}

// IsStopWord reports whether word is excluded from concept scoring.
func (l Lexicon) IsStopWord(word string) bool {
	_, ok := l.StopWords[word]
	return ok
}

func lowerAll(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		out = append(out, strings.ToLower(s))
	}
	return out
}

var englishDefinitionMarkers = []string{
	"is known as",
	"refers to",
	"means",
	"is a type of",
	"is defined as",
	"called",
	"refers",
}

var englishDiscourseConnectives = []string{
	"however", "therefore", "also", "but", "and", "so", "typically", "usually",
}

var englishStopWords = []string{
	// function words
	"a", "about", "above", "after", "again", "against", "all", "am", "an", "and",
	"any", "are", "aren't", "as", "at", "be", "because", "been", "before", "being",
	"below", "between", "both", "but", "by", "can", "can't", "cannot", "could", "couldn't",
	"did", "didn't", "do", "does", "doesn't", "doing", "don't", "down", "during", "each",
	"few", "for", "from", "further", "had", "hadn't", "has", "hasn't", "have", "haven't",
	"having", "he", "he'd", "he'll", "he's", "her", "here", "here's", "hers", "herself",
	"him", "himself", "his", "how", "how's", "i", "i'd", "i'll", "i'm", "i've",
	"if", "in", "into", "is", "isn't", "it", "it's", "its", "itself", "let's",
	"me", "more", "most", "mustn't", "my", "myself", "no", "nor", "not", "of",
	"off", "on", "once", "only", "or", "other", "ought", "our", "ours", "ourselves",
	"out", "over", "own", "same", "shan't", "she", "she'd", "she'll", "she's", "should",
	"shouldn't", "so", "some", "such", "than", "that", "that's", "the", "their", "theirs",
	"them", "themselves", "then", "there", "there's", "these", "they", "they'd", "they'll", "they're",
	"they've", "this", "those", "through", "to", "too", "under", "until", "up", "very",
	"was", "wasn't", "we", "we'd", "we'll", "we're", "we've", "were", "weren't", "what",
	"what's", "when", "when's", "where", "where's", "which", "while", "who", "who's", "whom",
	"why", "why's", "with", "won't", "would", "wouldn't", "you", "you'd", "you'll", "you're",
	"you've", "your", "yours", "yourself", "yourselves", "also", "however", "therefore", "thus", "hence",
	"may", "might", "must", "will", "shall", "just", "many", "much", "every", "either",
	"neither", "whether", "within", "without", "upon", "among", "via", "etc", "like", "one",
	"two", "three", "first", "second", "new", "used", "using", "use", "uses", "often",
	"usually", "typically", "generally", "known", "called", "refers", "means", "way", "ways", "make",
	// classroom filler
	"topic", "topics", "chapter", "chapters", "generated", "lesson", "lessons", "section", "page", "pages",
	"student", "students", "assignment", "assignments", "material", "materials", "course", "class", "week", "unit",
	"please", "submit", "due", "description", "title", "document", "file", "example", "examples", "include",
}
